package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// CleanJSON returns the JSON object or array found in bs,
// trimming any text an agent adds around it, like
// `Here are the arguments: {json}`
func CleanJSON(bs []byte) []byte {
	return trimAfterJSON(trimBeforeJSON(bs))
}

func trimBeforeJSON(bs []byte) []byte {
	start := -1
	for _, c := range []byte{'{', '['} {
		if i := bytes.IndexByte(bs, c); i >= 0 && (start == -1 || i < start) {
			start = i
		}
	}
	if start == -1 {
		return bs
	}
	return bs[start:]
}

func trimAfterJSON(bs []byte) []byte {
	end := max(bytes.LastIndexByte(bs, '}'), bytes.LastIndexByte(bs, ']'))
	if end == -1 {
		return bs
	}
	return bs[:end+1]
}

var backtick = []byte("```")

// BytesTrimBackticks removes ```json, ```yaml or ``` fences
func BytesTrimBackticks(bs []byte) []byte {
	start := bytes.Index(bs, backtick)
	if start == -1 {
		return bs
	}
	start += len(backtick)

	// skip the language tag up to the end of line
	for i := start; i < len(bs) && bs[i] != '{' && bs[i] != '['; i++ {
		if bs[i] == '\n' {
			start = i + 1
			break
		}
	}

	content := bs[start:]
	end := bytes.LastIndex(content, backtick)
	if end == -1 {
		return content
	}
	return bytes.TrimSpace(content[:end])
}

// ToolErrorComment returns a reply the agent can act on,
// when a tool call could not be executed as requested.
func ToolErrorComment(tool, reason string) string {
	return fmt.Sprintf("<!-- @type=tool @name=%s @reason=error -->\n%s\n", tool, reason)
}

func ToJSONIndent(val any) string {
	js, _ := json.MarshalIndent(val, "", "\t")
	return string(js)
}

func BackticksJSON(js string) string {
	return "\n```json\n" + strings.TrimSpace(js) + "\n```\n"
}
