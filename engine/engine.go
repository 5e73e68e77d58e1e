package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/interviewsim/outcome"
	"github.com/effective-security/interviewsim/pkg/metricskey"
	"github.com/effective-security/interviewsim/simmodel"
	"github.com/effective-security/interviewsim/store"
	"github.com/effective-security/xlog"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/interviewsim", "engine")

// Identifier formats, all kinds share one session counter
const (
	CallIDFormat     = "CALL-%06d"
	MeetingIDFormat  = "INT-%06d"
	TrackingIDFormat = "EML-%06d"
)

// DefaultDurationMinutes is the interview duration when none is requested
const DefaultDurationMinutes = 60

// Option is a function that can be used to modify the Engine Config.
type Option func(*Config)

// Config holds the dependencies of an Engine
type Config struct {
	// Generator is the outcome source, seeded from entropy if not set
	Generator *outcome.Generator
	// Store is the session state, in-memory if not set
	Store store.Store
	// Callback receives dispatch events
	Callback Callback
	// TimeNowFn returns the current time, time.Now if not set
	TimeNowFn func() time.Time
}

// NewConfig returns Config with defaults applied after options
func NewConfig(opts ...Option) *Config {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Generator == nil {
		cfg.Generator = outcome.NewSeeded(0)
	}
	if cfg.Store == nil {
		cfg.Store = store.NewMemoryStore()
	}
	if cfg.TimeNowFn == nil {
		cfg.TimeNowFn = time.Now
	}
	return cfg
}

// WithGenerator sets the outcome generator
func WithGenerator(gen *outcome.Generator) Option {
	return func(c *Config) {
		c.Generator = gen
	}
}

// WithSeed sets a deterministic outcome generator
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.Generator = outcome.NewSeeded(seed)
	}
}

// WithStore sets the session store
func WithStore(st store.Store) Option {
	return func(c *Config) {
		c.Store = st
	}
}

// WithCallback sets the dispatch callback
func WithCallback(cb Callback) Option {
	return func(c *Config) {
		c.Callback = cb
	}
}

// WithTimeNowFn sets the clock
func WithTimeNowFn(fn func() time.Time) Option {
	return func(c *Config) {
		c.TimeNowFn = fn
	}
}

// Engine dispatches tool calls of one session
type Engine struct {
	lock     sync.Mutex
	gen      *outcome.Generator
	store    store.Store
	callback Callback
	now      func() time.Time
}

// New returns a new Engine
func New(opts ...Option) *Engine {
	cfg := NewConfig(opts...)
	return &Engine{
		gen:      cfg.Generator,
		store:    cfg.Store,
		callback: cfg.Callback,
		now:      cfg.TimeNowFn,
	}
}

// Store returns the session store
func (e *Engine) Store() store.Store {
	return e.store
}

// Notes returns the current notepad entries
func (e *Engine) Notes(ctx context.Context) ([]simmodel.NoteEntry, error) {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.store.Notes(ctx)
}

// BookedSlots returns the booked slots ordered by start time
func (e *Engine) BookedSlots(ctx context.Context) ([]simmodel.BookedSlot, error) {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.store.Slots(ctx)
}

// Reset discards the session state
func (e *Engine) Reset(ctx context.Context) error {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.store.Reset(ctx)
}

type operation func(ctx context.Context) (*Result, error)

// dispatch runs op under the session lock, and reports the events and metrics
func (e *Engine) dispatch(ctx context.Context, kind outcome.Kind, req any, op operation) (*Result, error) {
	tool := string(kind)
	if e.callback != nil {
		e.callback.OnDispatchStart(ctx, kind, req)
	}

	started := time.Now()
	res, err := e.run(ctx, op)
	metricskey.PerfDispatch.MeasureSince(started, tool)

	if err != nil {
		if simmodel.IsInvalidArgument(err) {
			metricskey.StatsDispatchInvalidArgument.IncrCounter(1, tool)
			logger.ContextKV(ctx, xlog.WARNING,
				"tool", tool,
				"status", "invalid_argument",
				"err", err.Error(),
			)
		} else {
			metricskey.StatsDispatchErrors.IncrCounter(1, tool)
			logger.ContextKV(ctx, xlog.ERROR,
				"tool", tool,
				"status", "dispatch_failed",
				"err", err.Error(),
			)
		}
		if e.callback != nil {
			e.callback.OnDispatchError(ctx, kind, req, err)
		}
		return nil, err
	}

	if res.Success {
		metricskey.StatsDispatchSucceeded.IncrCounter(1, tool)
	} else {
		metricskey.StatsDispatchSimulatedFailures.IncrCounter(1, tool, string(res.Status))
	}
	logger.ContextKV(ctx, xlog.DEBUG,
		"tool", tool,
		"success", res.Success,
		"status", res.Status,
	)

	if e.callback != nil {
		e.callback.OnDispatchEnd(ctx, kind, req, res)
	}
	return res, nil
}

func (e *Engine) run(ctx context.Context, op operation) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	e.lock.Lock()
	defer e.lock.Unlock()
	return op(ctx)
}

func (e *Engine) nextID(ctx context.Context, format string) (string, error) {
	n, err := e.store.NextID(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(format, n), nil
}
