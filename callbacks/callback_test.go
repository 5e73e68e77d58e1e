package callbacks_test

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/interviewsim/callbacks"
	"github.com/effective-security/interviewsim/encoding"
	"github.com/effective-security/interviewsim/engine"
	"github.com/effective-security/interviewsim/outcome"
	"github.com/effective-security/interviewsim/simmodel"
	"github.com/effective-security/interviewsim/tools/interview"
	"github.com/effective-security/xlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	callbacks.TimeNowFn = func() time.Time { return fixedNow }
	os.Exit(m.Run())
}

func newEngine(cb engine.Callback) *engine.Engine {
	return engine.New(
		engine.WithSeed(1),
		engine.WithCallback(cb),
		engine.WithTimeNowFn(func() time.Time { return fixedNow }),
	)
}

func TestPrinter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var buf bytes.Buffer
	p := callbacks.NewPrinter(&buf, callbacks.ModeDefault).WithNoColor()
	e := newEngine(p)

	_, err := e.ManageNotes(ctx, &engine.ManageNotesRequest{Mode: "append", Text: "Called Sarah"})
	require.NoError(t, err)
	assert.Equal(t, "→ manage_notes\n✓ Note appended, notepad has 1 entries\n", buf.String())

	buf.Reset()
	_, err = e.SendEmail(ctx, &engine.SendEmailRequest{To: "bad"})
	require.Error(t, err)
	assert.Equal(t, "→ send_email\n✗ send_email: email address \"bad\" must be in local@domain format: invalid argument\n", buf.String())

	buf.Reset()
	res, err := e.CallContact(ctx, &engine.CallContactRequest{
		Contact: simmodel.Contact{Name: "Sarah Johnson", Phone: "+1-555-0101"},
	})
	require.NoError(t, err)
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "→ call_contact\n"))
	assert.Contains(t, out, res.Message)
	assert.Contains(t, out, "  Call ID: CALL-000001, Contact: Sarah Johnson (Contact)\n")
	assert.Contains(t, out, "  Next steps: "+res.Call.NextSteps+"\n")
	if !res.Success {
		assert.Contains(t, out, "["+string(res.Status)+"]")
	}
}

func TestPrinter_EmailResponse(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var buf bytes.Buffer
	p := callbacks.NewPrinter(&buf, callbacks.ModeDefault).WithNoColor()
	e := newEngine(p)

	replied := 0
	for range 20 {
		buf.Reset()
		res, err := e.SendEmail(ctx, &engine.SendEmailRequest{
			To:      "sarah.johnson@email.com",
			Subject: "Interview availability",
		})
		require.NoError(t, err)
		line := "  Response (" + res.Email.ResponseTime + "): " + res.Email.RecipientResponse + "\n"
		if res.Email.ResponseTime == outcome.ResponseTimeNA {
			assert.NotContains(t, buf.String(), "Response (")
			continue
		}
		replied++
		assert.Contains(t, buf.String(), line)
	}
	assert.Positive(t, replied)
}

func TestPrinter_Verbose(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var buf bytes.Buffer
	p := callbacks.NewPrinter(&buf, callbacks.ModeVerbose).WithNoColor()
	e := newEngine(p)

	tb, err := interview.NewToolbox(e, encoding.ModeJSON, p)
	require.NoError(t, err)

	_, err = tb.Invoke(ctx, "manage_notes", `{"Mode":"write","Text":"X"}`)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Tool Start: manage_notes\nInput: {\"Mode\":\"write\",\"Text\":\"X\"}\n")
	assert.Contains(t, out, "  [2025-05-20 09:30:00] X\n")
	assert.Contains(t, out, "Tool End: manage_notes\nOutput: ")

	buf.Reset()
	_, err = tb.Invoke(ctx, "human_in_loop", `{}`)
	require.NoError(t, err)
	assert.Equal(t, "Tool Not Found: human_in_loop\n", buf.String())
}

func TestRecorder(t *testing.T) {
	t.Parallel()

	rec := callbacks.NewRecorder(callbacks.ModeDefault)
	rec2 := callbacks.NewRecorder(callbacks.ModeVerbose)
	fan := callbacks.NewFanout(rec, callbacks.NewNoop())
	fan.Add(rec2)

	e := newEngine(fan)
	tb, err := interview.NewToolbox(e, encoding.ModeJSON, fan)
	require.NoError(t, err)

	ctx := simmodel.WithSessionContext(context.Background(), simmodel.NewSessionContext("s1", nil))
	rec.StartSession(ctx)
	rec2.StartSession(ctx)

	_, err = tb.Invoke(ctx, "manage_notes", `{"Mode":"append","Text":"Called Sarah"}`)
	require.NoError(t, err)
	_, err = tb.Invoke(ctx, "manage_notes", `{"Mode":"append"}`)
	require.NoError(t, err)
	_, err = tb.Invoke(ctx, "human_in_loop", `{}`)
	require.NoError(t, err)

	// events without a recorded session are ignored
	_, err = tb.Invoke(context.Background(), "manage_notes", `{"Mode":"read"}`)
	require.NoError(t, err)

	current := rec.Stats(ctx)
	require.NotNil(t, current)
	assert.Equal(t, uint32(2), current.Dispatches)

	stats, transcript := rec.EndSession(ctx)
	require.NotNil(t, stats)
	assert.Equal(t, callbacks.SessionStats{
		SessionID:        "s1",
		Dispatches:       2,
		Succeeded:        1,
		InvalidArguments: 1,
		ToolsCalls:       2,
		ToolsCallsFailed: 1,
		ToolNotFound:     1,
	}, *stats)

	exp := `2025-05-20 09:30:00 s1 *** Session Started ***
2025-05-20 09:30:00 s1 manage_notes ok Note appended, notepad has 1 entries
2025-05-20 09:30:00 s1 manage_notes *** Error *** text is required for append mode: invalid argument
2025-05-20 09:30:00 s1 manage_notes *** Tool Error *** text is required for append mode: invalid argument
2025-05-20 09:30:00 s1 *** Tool Not Found *** human_in_loop
2025-05-20 09:30:00 s1 Dispatches: 2, Succeeded: 1, Simulated failures: 0, Invalid: 1, Errors: 0
2025-05-20 09:30:00 s1 Tool calls: 2, Failed: 1, Not Found: 1
2025-05-20 09:30:00 s1 *** Session Ended. Duration: 0s ***
`
	assert.Equal(t, exp, string(transcript))

	// ended
	assert.Nil(t, rec.Stats(ctx))
	stats, transcript = rec.EndSession(ctx)
	assert.Nil(t, stats)
	assert.Nil(t, transcript)

	stats2, transcript2 := rec2.EndSession(ctx)
	require.NotNil(t, stats2)
	assert.Equal(t, uint32(2), stats2.Dispatches)
	assert.Contains(t, string(transcript2), "manage_notes Input: {\"Mode\":\"append\",\"Text\":\"Called Sarah\"}")
	assert.Contains(t, string(transcript2), "*** Dispatch Start ***")
}

func TestPackageLogger(t *testing.T) {
	t.Parallel()

	logger := xlog.NewPackageLogger("github.com/effective-security/interviewsim", "callbacks_test")
	l := callbacks.NewPackageLogger(logger)
	e := newEngine(l)
	ctx := context.Background()

	tb, err := interview.NewToolbox(e, encoding.ModeJSON, l)
	require.NoError(t, err)

	_, err = tb.Invoke(ctx, "manage_notes", `{"Mode":"read"}`)
	require.NoError(t, err)
	_, err = tb.Invoke(ctx, "manage_notes", `{"Mode":"erase"}`)
	require.NoError(t, err)
	_, err = tb.Invoke(ctx, "unknown", `{}`)
	require.NoError(t, err)

	l.OnDispatchError(ctx, "send_email", nil, errors.New("store failed"))
}
