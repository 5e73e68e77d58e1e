package utils_test

import (
	"testing"

	"github.com/effective-security/interviewsim/utils"
	"github.com/stretchr/testify/assert"
)

func Test_CleanJSON(t *testing.T) {
	t.Parallel()

	args := "\n```json\n\n{\"Mode\": \"append\", \"Text\": \"Called Sarah\"}\n\n```\n\n"
	assert.Equal(t, `{"Mode": "append", "Text": "Called Sarah"}`, string(utils.CleanJSON([]byte(args))))

	args = "Here are the arguments:\n```json\n[{\"Date\": \"2025-05-27\"}]\n```\nLet me know."
	assert.Equal(t, `[{"Date": "2025-05-27"}]`, string(utils.CleanJSON([]byte(args))))

	assert.Equal(t, "not json", string(utils.CleanJSON([]byte("not json"))))
}

func Test_BytesTrimBackticks(t *testing.T) {
	t.Parallel()

	exp := `{"To": "sarah.johnson@email.com"}`
	trim := func(s string) string { return string(utils.BytesTrimBackticks([]byte(s))) }
	assert.Equal(t, exp, trim("\n```json\n\n"+exp+"\n\n```\n\n"))
	assert.Equal(t, exp, trim(exp))
	assert.Equal(t, exp, trim("\n```\n"+exp+"\n```"))
	assert.Equal(t, exp, trim("```"+exp+"\n```"))
	assert.Equal(t, "Kind: send_email", trim("```yaml\nKind: send_email\n```"))
}

func Test_Comments(t *testing.T) {
	t.Parallel()

	c := utils.ToolErrorComment("send_email", "check the address")
	assert.Equal(t, "<!-- @type=tool @name=send_email @reason=error -->\ncheck the address\n", c)
}

func Test_Stringers(t *testing.T) {
	t.Parallel()

	v := map[string]any{"Status": "booked"}
	assert.Equal(t, "{\n\t\"Status\": \"booked\"\n}", utils.ToJSONIndent(v))
	assert.Equal(t, "\n```json\n{}\n```\n", utils.BackticksJSON(" {} "))
}
