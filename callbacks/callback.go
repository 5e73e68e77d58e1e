package callbacks

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/effective-security/interviewsim/engine"
	"github.com/effective-security/interviewsim/outcome"
	"github.com/effective-security/interviewsim/tools"
	"github.com/effective-security/xlog"
	"github.com/fatih/color"
)

// ensure that the callbacks implement the correct interfaces
var (
	_ engine.Callback = (*Noop)(nil)
	_ tools.Callback  = (*Noop)(nil)
	_ engine.Callback = (*Printer)(nil)
	_ tools.Callback  = (*Printer)(nil)
	_ engine.Callback = (*PackageLogger)(nil)
	_ tools.Callback  = (*PackageLogger)(nil)
	_ engine.Callback = (*Fanout)(nil)
	_ tools.Callback  = (*Fanout)(nil)
)

// Handler receives both dispatch and tool events
type Handler interface {
	engine.Callback
	tools.Callback
}

// Mode defines the mode for callback printing
type Mode int

const (
	// ModeDefault is the default mode for callback printing
	ModeDefault Mode = iota
	// ModeVerbose is the verbose mode for callback printing
	ModeVerbose
)

// Fanout is a callback handler that forwards the events to multiple callbacks.
type Fanout struct {
	callbacks []Handler
}

func NewFanout(callbacks ...Handler) *Fanout {
	return &Fanout{callbacks: callbacks}
}

func (l *Fanout) Add(callback Handler) {
	l.callbacks = append(l.callbacks, callback)
}

func (l *Fanout) OnDispatchStart(ctx context.Context, kind outcome.Kind, req any) {
	for _, callback := range l.callbacks {
		callback.OnDispatchStart(ctx, kind, req)
	}
}

func (l *Fanout) OnDispatchEnd(ctx context.Context, kind outcome.Kind, req any, res *engine.Result) {
	for _, callback := range l.callbacks {
		callback.OnDispatchEnd(ctx, kind, req, res)
	}
}

func (l *Fanout) OnDispatchError(ctx context.Context, kind outcome.Kind, req any, err error) {
	for _, callback := range l.callbacks {
		callback.OnDispatchError(ctx, kind, req, err)
	}
}

func (l *Fanout) OnToolStart(ctx context.Context, tool tools.ITool, input string) {
	for _, callback := range l.callbacks {
		callback.OnToolStart(ctx, tool, input)
	}
}

func (l *Fanout) OnToolEnd(ctx context.Context, tool tools.ITool, input string, output string) {
	for _, callback := range l.callbacks {
		callback.OnToolEnd(ctx, tool, input, output)
	}
}

func (l *Fanout) OnToolError(ctx context.Context, tool tools.ITool, input string, err error) {
	for _, callback := range l.callbacks {
		callback.OnToolError(ctx, tool, input, err)
	}
}

func (l *Fanout) OnToolNotFound(ctx context.Context, name string) {
	for _, callback := range l.callbacks {
		callback.OnToolNotFound(ctx, name)
	}
}

// Noop does nothing.
type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (l *Noop) OnDispatchStart(ctx context.Context, kind outcome.Kind, req any) {}
func (l *Noop) OnDispatchEnd(ctx context.Context, kind outcome.Kind, req any, res *engine.Result) {
}
func (l *Noop) OnDispatchError(ctx context.Context, kind outcome.Kind, req any, err error) {}
func (l *Noop) OnToolStart(ctx context.Context, tool tools.ITool, input string) {}
func (l *Noop) OnToolEnd(ctx context.Context, tool tools.ITool, input string, output string) {
}
func (l *Noop) OnToolError(ctx context.Context, tool tools.ITool, input string, err error) {}
func (l *Noop) OnToolNotFound(ctx context.Context, name string) {}

// Printer is a callback handler that renders dispatch results to the Writer.
type Printer struct {
	Out  io.Writer
	Mode Mode

	header  *color.Color
	success *color.Color
	failure *color.Color
	errored *color.Color
	muted   *color.Color

	lock sync.Mutex
}

func NewPrinter(out io.Writer, mode Mode) *Printer {
	return &Printer{
		Out:     out,
		Mode:    mode,
		header:  color.New(color.FgCyan, color.Bold),
		success: color.New(color.FgGreen),
		failure: color.New(color.FgYellow),
		errored: color.New(color.FgRed, color.Bold),
		muted:   color.New(color.FgHiBlack),
	}
}

// WithNoColor disables colored output
func (l *Printer) WithNoColor() *Printer {
	for _, c := range []*color.Color{l.header, l.success, l.failure, l.errored, l.muted} {
		c.DisableColor()
	}
	return l
}

func (l *Printer) OnDispatchStart(ctx context.Context, kind outcome.Kind, req any) {
	l.lock.Lock()
	defer l.lock.Unlock()
	_, _ = l.header.Fprintf(l.Out, "→ %s\n", kind)
}

func (l *Printer) OnDispatchEnd(ctx context.Context, kind outcome.Kind, req any, res *engine.Result) {
	l.lock.Lock()
	defer l.lock.Unlock()

	if res.Success {
		_, _ = l.success.Fprintf(l.Out, "✓ %s\n", res.Message)
	} else {
		_, _ = l.failure.Fprintf(l.Out, "✗ %s [%s]\n", res.Message, res.Status)
	}

	for _, line := range details(res, l.Mode) {
		_, _ = l.muted.Fprintf(l.Out, "  %s\n", line)
	}
}

func (l *Printer) OnDispatchError(ctx context.Context, kind outcome.Kind, req any, err error) {
	l.lock.Lock()
	defer l.lock.Unlock()
	_, _ = l.errored.Fprintf(l.Out, "✗ %s: %s\n", kind, err.Error())
}

func (l *Printer) OnToolStart(ctx context.Context, tool tools.ITool, input string) {
	if l.Mode != ModeVerbose {
		return
	}
	l.lock.Lock()
	defer l.lock.Unlock()
	_, _ = l.muted.Fprintf(l.Out, "Tool Start: %s\nInput: %s\n", tool.Name(), input)
}

func (l *Printer) OnToolEnd(ctx context.Context, tool tools.ITool, input string, output string) {
	if l.Mode != ModeVerbose {
		return
	}
	l.lock.Lock()
	defer l.lock.Unlock()
	_, _ = l.muted.Fprintf(l.Out, "Tool End: %s\nOutput: %s\n", tool.Name(), output)
}

func (l *Printer) OnToolError(ctx context.Context, tool tools.ITool, input string, err error) {
	l.lock.Lock()
	defer l.lock.Unlock()
	_, _ = l.errored.Fprintf(l.Out, "Tool Error: %s: %s\n", tool.Name(), err.Error())
}

func (l *Printer) OnToolNotFound(ctx context.Context, name string) {
	l.lock.Lock()
	defer l.lock.Unlock()
	_, _ = l.errored.Fprintf(l.Out, "Tool Not Found: %s\n", name)
}

// details returns the payload lines worth showing for the result
func details(res *engine.Result, mode Mode) []string {
	var lines []string
	switch {
	case res.Call != nil:
		c := res.Call
		lines = append(lines, fmt.Sprintf("Call ID: %s, Contact: %s (%s)", c.CallID, c.ContactName, c.ContactRole))
		lines = append(lines, "Next steps: "+c.NextSteps)
	case res.Schedule != nil:
		s := res.Schedule
		if s.MeetingID != "" {
			lines = append(lines, fmt.Sprintf("Meeting ID: %s, %s, %d minutes", s.MeetingID, s.Slot, s.DurationMinutes))
		}
		if len(s.Alternatives) > 0 {
			alts := make([]string, len(s.Alternatives))
			for i, a := range s.Alternatives {
				alts[i] = a.String()
			}
			lines = append(lines, "Alternatives: "+strings.Join(alts, ", "))
		}
	case res.Email != nil:
		if res.Email.TrackingID != "" {
			lines = append(lines, "Tracking ID: "+res.Email.TrackingID)
		}
		if res.Email.ResponseTime != "" && res.Email.ResponseTime != outcome.ResponseTimeNA {
			lines = append(lines, fmt.Sprintf("Response (%s): %s", res.Email.ResponseTime, res.Email.RecipientResponse))
		}
	case res.Notes != nil:
		if mode == ModeVerbose {
			lines = append(lines, strings.Split(res.Notes.Content, "\n")...)
		}
	}
	return lines
}

// PackageLogger is a callback handler that prints to the logger.
type PackageLogger struct {
	logger *xlog.PackageLogger
}

func NewPackageLogger(logger *xlog.PackageLogger) *PackageLogger {
	return &PackageLogger{logger: logger}
}

func (l *PackageLogger) OnDispatchStart(ctx context.Context, kind outcome.Kind, req any) {
	l.logger.ContextKV(ctx, xlog.DEBUG,
		"event", "dispatch_start",
		"tool", kind,
	)
}

func (l *PackageLogger) OnDispatchEnd(ctx context.Context, kind outcome.Kind, req any, res *engine.Result) {
	l.logger.ContextKV(ctx, xlog.DEBUG,
		"event", "dispatch_end",
		"tool", kind,
		"success", res.Success,
		"status", res.Status,
	)
}

func (l *PackageLogger) OnDispatchError(ctx context.Context, kind outcome.Kind, req any, err error) {
	l.logger.ContextKV(ctx, xlog.ERROR,
		"event", "dispatch_error",
		"tool", kind,
		"err", err.Error(),
	)
}

func (l *PackageLogger) OnToolStart(ctx context.Context, tool tools.ITool, input string) {
	l.logger.ContextKV(ctx, xlog.DEBUG,
		"event", "tool_start",
		"tool", tool.Name(),
		"input", input,
	)
}

func (l *PackageLogger) OnToolEnd(ctx context.Context, tool tools.ITool, input string, output string) {
	l.logger.ContextKV(ctx, xlog.DEBUG,
		"event", "tool_end",
		"tool", tool.Name(),
		"output", output,
	)
}

func (l *PackageLogger) OnToolError(ctx context.Context, tool tools.ITool, input string, err error) {
	l.logger.ContextKV(ctx, xlog.ERROR,
		"event", "tool_error",
		"tool", tool.Name(),
		"err", err.Error(),
	)
}

func (l *PackageLogger) OnToolNotFound(ctx context.Context, name string) {
	l.logger.ContextKV(ctx, xlog.WARNING,
		"event", "tool_not_found",
		"tool", name,
	)
}
