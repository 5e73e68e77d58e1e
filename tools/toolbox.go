package tools

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/interviewsim/pkg/metricskey"
	"github.com/effective-security/interviewsim/simmodel"
	"github.com/effective-security/interviewsim/utils"
	"github.com/effective-security/xlog"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/interviewsim", "tools")

// Toolbox invokes tools by name
type Toolbox struct {
	byName   map[string]ITool
	names    []string
	list     []ITool
	callback Callback
}

// NewToolbox returns a Toolbox with the tools,
// a tool registered later replaces one with the same name.
func NewToolbox(callback Callback, list ...ITool) *Toolbox {
	tb := &Toolbox{
		byName:   make(map[string]ITool, len(list)),
		callback: callback,
	}
	for _, tool := range list {
		tb.Add(tool)
	}
	return tb
}

// Add registers the tool
func (tb *Toolbox) Add(tool ITool) {
	key := strings.ToLower(tool.Name())
	if _, ok := tb.byName[key]; ok {
		idx := slices.IndexFunc(tb.list, func(t ITool) bool {
			return strings.ToLower(t.Name()) == key
		})
		tb.list[idx] = tool
	} else {
		tb.list = append(tb.list, tool)
		tb.names = append(tb.names, tool.Name())
	}
	tb.byName[key] = tool
}

// Tools returns the registered tools in registration order
func (tb *Toolbox) Tools() []ITool {
	return slices.Clone(tb.list)
}

// Names returns the registered tool names
func (tb *Toolbox) Names() []string {
	return slices.Clone(tb.names)
}

// Get returns the tool by name, the name is case insensitive
func (tb *Toolbox) Get(name string) (ITool, bool) {
	tool, ok := tb.byName[strings.ToLower(strings.TrimSpace(name))]
	return tool, ok
}

// Invoke calls the tool with the JSON arguments.
// An unknown tool, malformed arguments or invalid input are reported in the
// returned reply, so the agent can correct the call.
// An error is returned only when the tool could not be executed.
func (tb *Toolbox) Invoke(ctx context.Context, name, args string) (string, error) {
	tool, ok := tb.Get(name)
	if !ok {
		metricskey.StatsToolCallsNotFound.IncrCounter(1, name)
		if tb.callback != nil {
			tb.callback.OnToolNotFound(ctx, name)
		}

		available := strings.Join(tb.names, ", ")
		logger.ContextKV(ctx, xlog.WARNING,
			"status", "tool_not_found",
			"tool_name", name,
			"available_tools", available,
		)
		return utils.ToolErrorComment(name,
			fmt.Sprintf("Tool `%s` not found. Please check the tool name and try again with exact match. Available tools: %s", name, available)), nil
	}

	toolName := tool.Name()
	if tb.callback != nil {
		tb.callback.OnToolStart(ctx, tool, args)
	}

	started := time.Now()
	res, err := tool.Call(ctx, args)
	metricskey.PerfToolCall.MeasureSince(started, toolName)

	if err != nil {
		metricskey.StatsToolCallsFailed.IncrCounter(1, toolName)
		if tb.callback != nil {
			tb.callback.OnToolError(ctx, tool, args, err)
		}

		switch {
		case errors.Is(err, simmodel.ErrFailedUnmarshalInput):
			return utils.ToolErrorComment(toolName, "Failed to unmarshal input, check the JSON schema and try again."), nil
		case simmodel.IsInvalidArgument(err):
			return utils.ToolErrorComment(toolName, "Invalid input: "+err.Error()), nil
		default:
			return "", errors.WithMessagef(err, "failed to call tool %s", toolName)
		}
	}
	metricskey.StatsToolCallsSucceeded.IncrCounter(1, toolName)

	if tb.callback != nil {
		tb.callback.OnToolEnd(ctx, tool, args, res)
	}
	return res, nil
}
