package callbacks

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/effective-security/interviewsim/engine"
	"github.com/effective-security/interviewsim/outcome"
	"github.com/effective-security/interviewsim/simmodel"
	"github.com/effective-security/interviewsim/tools"
)

// ensure Recorder implements Handler
var _ Handler = (*Recorder)(nil)

var TimeNowFn = time.Now

// SessionStats are the counters of one recorded session
type SessionStats struct {
	SessionID string

	Duration          time.Duration
	Dispatches        uint32
	Succeeded         uint32
	SimulatedFailures uint32
	InvalidArguments  uint32
	Errors            uint32
	ToolsCalls        uint32
	ToolsCallsFailed  uint32
	ToolNotFound      uint32
}

// Recorder keeps stats and a timestamped transcript per session,
// the session is identified by the SessionContext in the context.
type Recorder struct {
	sessions map[string]*recording
	mode     Mode
	lock     sync.Mutex
}

func NewRecorder(mode Mode) *Recorder {
	return &Recorder{
		sessions: make(map[string]*recording),
		mode:     mode,
	}
}

// StartSession starts recording the session of ctx
func (l *Recorder) StartSession(ctx context.Context) {
	sessionID := simmodel.GetSessionID(ctx)
	if sessionID == "" {
		return
	}

	r := &recording{
		stats:   SessionStats{SessionID: sessionID},
		started: TimeNowFn(),
	}

	l.lock.Lock()
	l.sessions[sessionID] = r
	l.lock.Unlock()

	r.print("*** Session Started ***")
}

// EndSession stops recording the session of ctx,
// and returns its stats and transcript.
func (l *Recorder) EndSession(ctx context.Context) (*SessionStats, []byte) {
	r := l.get(ctx)
	if r == nil {
		return nil, nil
	}

	stats := r.snapshot()
	stats.Duration = TimeNowFn().Sub(r.started)

	r.print(fmt.Sprintf("Dispatches: %d, Succeeded: %d, Simulated failures: %d, Invalid: %d, Errors: %d",
		stats.Dispatches,
		stats.Succeeded,
		stats.SimulatedFailures,
		stats.InvalidArguments,
		stats.Errors,
	))
	r.print(fmt.Sprintf("Tool calls: %d, Failed: %d, Not Found: %d",
		stats.ToolsCalls,
		stats.ToolsCallsFailed,
		stats.ToolNotFound,
	))
	r.print(fmt.Sprintf("*** Session Ended. Duration: %s ***", stats.Duration))

	l.lock.Lock()
	delete(l.sessions, stats.SessionID)
	l.lock.Unlock()

	return &stats, r.bytes()
}

// Stats returns the current stats of the session of ctx
func (l *Recorder) Stats(ctx context.Context) *SessionStats {
	r := l.get(ctx)
	if r == nil {
		return nil
	}
	stats := r.snapshot()
	return &stats
}

func (l *Recorder) get(ctx context.Context) *recording {
	sessionID := simmodel.GetSessionID(ctx)
	if sessionID == "" {
		return nil
	}

	l.lock.Lock()
	defer l.lock.Unlock()
	return l.sessions[sessionID]
}

func (l *Recorder) OnDispatchStart(ctx context.Context, kind outcome.Kind, req any) {
	r := l.get(ctx)
	if r == nil {
		return
	}
	atomic.AddUint32(&r.stats.Dispatches, 1)
	if l.mode == ModeVerbose {
		r.print(string(kind), "*** Dispatch Start ***", fmt.Sprintf("%+v", req))
	}
}

func (l *Recorder) OnDispatchEnd(ctx context.Context, kind outcome.Kind, req any, res *engine.Result) {
	r := l.get(ctx)
	if r == nil {
		return
	}
	if res.Success {
		atomic.AddUint32(&r.stats.Succeeded, 1)
	} else {
		atomic.AddUint32(&r.stats.SimulatedFailures, 1)
	}
	r.print(string(kind), string(res.Status), res.Message)
}

func (l *Recorder) OnDispatchError(ctx context.Context, kind outcome.Kind, req any, err error) {
	r := l.get(ctx)
	if r == nil {
		return
	}
	if simmodel.IsInvalidArgument(err) {
		atomic.AddUint32(&r.stats.InvalidArguments, 1)
	} else {
		atomic.AddUint32(&r.stats.Errors, 1)
	}
	r.print(string(kind), "*** Error ***", err.Error())
}

func (l *Recorder) OnToolStart(ctx context.Context, tool tools.ITool, input string) {
	r := l.get(ctx)
	if r == nil {
		return
	}
	atomic.AddUint32(&r.stats.ToolsCalls, 1)
	if l.mode == ModeVerbose {
		r.print(tool.Name(), "Input:", input)
	}
}

func (l *Recorder) OnToolEnd(ctx context.Context, tool tools.ITool, input string, output string) {
	r := l.get(ctx)
	if r == nil {
		return
	}
	if l.mode == ModeVerbose {
		r.print(tool.Name(), "Output:", output)
	}
}

func (l *Recorder) OnToolError(ctx context.Context, tool tools.ITool, input string, err error) {
	r := l.get(ctx)
	if r == nil {
		return
	}
	atomic.AddUint32(&r.stats.ToolsCallsFailed, 1)
	r.print(tool.Name(), "*** Tool Error ***", err.Error())
}

func (l *Recorder) OnToolNotFound(ctx context.Context, name string) {
	r := l.get(ctx)
	if r == nil {
		return
	}
	atomic.AddUint32(&r.stats.ToolNotFound, 1)
	r.print("*** Tool Not Found ***", name)
}

type recording struct {
	w       bytes.Buffer
	started time.Time
	lock    sync.Mutex
	stats   SessionStats
}

func (r *recording) snapshot() SessionStats {
	return SessionStats{
		SessionID:         r.stats.SessionID,
		Dispatches:        atomic.LoadUint32(&r.stats.Dispatches),
		Succeeded:         atomic.LoadUint32(&r.stats.Succeeded),
		SimulatedFailures: atomic.LoadUint32(&r.stats.SimulatedFailures),
		InvalidArguments:  atomic.LoadUint32(&r.stats.InvalidArguments),
		Errors:            atomic.LoadUint32(&r.stats.Errors),
		ToolsCalls:        atomic.LoadUint32(&r.stats.ToolsCalls),
		ToolsCallsFailed:  atomic.LoadUint32(&r.stats.ToolsCallsFailed),
		ToolNotFound:      atomic.LoadUint32(&r.stats.ToolNotFound),
	}
}

func (r *recording) bytes() []byte {
	r.lock.Lock()
	defer r.lock.Unlock()
	return bytes.Clone(r.w.Bytes())
}

// print writes the entries to the transcript in the following format:
// timestamp sessionID entry entry\n
func (r *recording) print(entries ...string) {
	r.lock.Lock()
	defer r.lock.Unlock()

	_, _ = r.w.WriteString(TimeNowFn().Format("2006-01-02 15:04:05"))
	_, _ = r.w.WriteString(" ")
	_, _ = r.w.WriteString(r.stats.SessionID)

	for _, entry := range entries {
		_, _ = r.w.WriteString(" ")
		_, _ = r.w.WriteString(entry)
	}
	_, _ = r.w.WriteString("\n")
}
