package schema_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/effective-security/interviewsim/engine"
	"github.com/effective-security/interviewsim/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keys(s *schema.Schema) []string {
	var res []string
	for pair := s.Parameters.Properties.Oldest(); pair != nil; pair = pair.Next() {
		res = append(res, pair.Key)
	}
	return res
}

func TestSchema_Schedule(t *testing.T) {
	t.Parallel()

	s, err := schema.New(reflect.TypeOf(engine.ScheduleCalendarRequest{}))
	require.NoError(t, err)

	assert.Equal(t, "object", s.Parameters.Type)
	assert.Equal(t, []string{"Date", "Time", "CandidateName", "Topic", "DurationMinutes"}, keys(s))
	assert.Equal(t, []string{"Date", "Time", "CandidateName", "Topic"}, s.Parameters.Required)

	dur, ok := s.Parameters.Properties.Get("DurationMinutes")
	require.True(t, ok)
	assert.Equal(t, "integer", dur.Type)
	assert.Equal(t, "Duration", dur.Title)

	// cached, pointer types resolve to the same schema
	s2, err := schema.New(reflect.TypeOf(&engine.ScheduleCalendarRequest{}))
	require.NoError(t, err)
	assert.Same(t, s, s2)

	var js map[string]any
	require.NoError(t, json.Unmarshal([]byte(s.String()), &js))
	assert.Equal(t, "object", js["type"])
}

func TestSchema_NestedContact(t *testing.T) {
	t.Parallel()

	s := schema.MustNew(reflect.TypeOf(engine.CallContactRequest{}))
	assert.Equal(t, []string{"Contact", "Purpose"}, keys(s))
	assert.Equal(t, []string{"Contact"}, s.Parameters.Required)

	contact, ok := s.Parameters.Properties.Get("Contact")
	require.True(t, ok)
	assert.Empty(t, contact.Ref)
	assert.Equal(t, "object", contact.Type)
	assert.Equal(t, "Contact", contact.Title)
	assert.Equal(t, []string{"Name"}, contact.Required)

	name, ok := contact.Properties.Get("Name")
	require.True(t, ok)
	assert.Equal(t, "string", name.Type)
}

func TestSchema_Enum(t *testing.T) {
	t.Parallel()

	s := schema.MustNew(reflect.TypeOf(engine.ManageNotesRequest{}))
	mode, ok := s.Parameters.Properties.Get("Mode")
	require.True(t, ok)
	assert.Equal(t, []any{"read", "write", "append"}, mode.Enum)
}

func TestSchema_NotStruct(t *testing.T) {
	t.Parallel()

	_, err := schema.New(reflect.TypeOf(""))
	assert.EqualError(t, err, "schema requires a struct type: string")
	assert.Panics(t, func() {
		schema.MustNew(reflect.TypeOf(1))
	})
}
