// Package session hosts isolated simulation sessions,
// each session owns its store, engine and toolbox.
package session

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/cockroachdb/errors"
	"github.com/effective-security/interviewsim/callbacks"
	"github.com/effective-security/interviewsim/config"
	"github.com/effective-security/interviewsim/engine"
	"github.com/effective-security/interviewsim/pkg/metricskey"
	"github.com/effective-security/interviewsim/setup"
	"github.com/effective-security/interviewsim/simmodel"
	"github.com/effective-security/interviewsim/store"
	"github.com/effective-security/interviewsim/tools"
	"github.com/effective-security/interviewsim/tools/interview"
	"github.com/effective-security/xlog"
	"github.com/redis/go-redis/v9"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/interviewsim", "session")

// ErrNotFound is returned when the session does not exist
var ErrNotFound = errors.New("session not found")

// Session is one simulation session
type Session struct {
	ID      string
	Setup   *setup.InterviewSetup
	Engine  *engine.Engine
	Toolbox *tools.Toolbox
	Created time.Time

	sc simmodel.SessionContext
}

// Context returns ctx carrying the session context
func (s *Session) Context(ctx context.Context) context.Context {
	return simmodel.WithSessionContext(ctx, s.sc)
}

// Invoke calls the tool of the session with the JSON arguments
func (s *Session) Invoke(ctx context.Context, name, args string) (string, error) {
	return s.Toolbox.Invoke(s.Context(ctx), name, args)
}

// Report is the state of a session at close
type Report struct {
	SessionID  string
	Stats      *callbacks.SessionStats
	Transcript []byte
	Notes      []simmodel.NoteEntry
	Bookings   []simmodel.BookedSlot
}

// Option is a function that can be used to modify the Manager.
type Option func(*Manager)

// WithRedisClient sets the Redis client of the redis backend
func WithRedisClient(client redis.UniversalClient) Option {
	return func(m *Manager) {
		m.client = client
	}
}

// WithHandler sets the handler receiving the events of every session
func WithHandler(handler callbacks.Handler) Option {
	return func(m *Manager) {
		m.handler = handler
	}
}

// WithTimeNowFn sets the clock of the sessions
func WithTimeNowFn(fn func() time.Time) Option {
	return func(m *Manager) {
		m.now = fn
	}
}

// Manager opens and closes sessions
type Manager struct {
	cfg      *config.Config
	client   redis.UniversalClient
	handler  callbacks.Handler
	recorder *callbacks.Recorder
	now      func() time.Time
	owned    bool

	sessions map[string]*Session
	lock     sync.RWMutex
}

// NewManager returns a Manager for the configuration,
// the redis backend connects to Store.RedisURL unless a client is provided.
func NewManager(cfg *config.Config, opts ...Option) (*Manager, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Manager{
		cfg:      cfg,
		recorder: callbacks.NewRecorder(callbacks.ModeDefault),
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(m)
	}

	if cfg.Store.Backend == config.BackendRedis && m.client == nil {
		options, err := redis.ParseURL(cfg.Store.RedisURL)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse redis_url")
		}
		m.client = redis.NewClient(options)
		m.owned = true
	}
	return m, nil
}

// Open starts a session with the setup,
// the configured setup is used when s is nil.
func (m *Manager) Open(ctx context.Context, s *setup.InterviewSetup) (*Session, error) {
	if s == nil {
		var err error
		var faker *gofakeit.Faker
		if m.cfg.Seed != 0 {
			faker = gofakeit.New(m.cfg.Seed)
		}
		if s, err = setup.ByName(m.cfg.Setup, faker); err != nil {
			return nil, err
		}
	}
	if err := s.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid setup")
	}

	sc := simmodel.NewSessionContext("", s)
	id := sc.SessionID()

	handler := callbacks.NewFanout(m.recorder)
	if m.handler != nil {
		handler.Add(m.handler)
	}

	e := engine.New(
		engine.WithSeed(m.cfg.Seed),
		engine.WithStore(m.newStore(id)),
		engine.WithCallback(handler),
		engine.WithTimeNowFn(m.now),
	)
	tb, err := interview.NewToolbox(e, m.cfg.Mode(), handler)
	if err != nil {
		return nil, err
	}

	sess := &Session{
		ID:      id,
		Setup:   s,
		Engine:  e,
		Toolbox: tb,
		Created: m.now(),
		sc:      sc,
	}

	m.lock.Lock()
	m.sessions[id] = sess
	m.lock.Unlock()

	m.recorder.StartSession(sess.Context(ctx))
	metricskey.StatsSessionsOpened.IncrCounter(1, m.cfg.Store.Backend)

	logger.ContextKV(ctx, xlog.INFO,
		"status", "session_opened",
		"session_id", id,
		"backend", m.cfg.Store.Backend,
		"candidate", s.Candidate.Name,
		"position", s.Position,
	)
	return sess, nil
}

func (m *Manager) newStore(sessionID string) store.Store {
	if m.cfg.Store.Backend == config.BackendRedis {
		return store.NewRedisStore(m.client, m.cfg.Store.Prefix, sessionID, m.cfg.Store.TTLDuration())
	}
	return store.NewMemoryStore()
}

// Get returns the open session
func (m *Manager) Get(id string) (*Session, bool) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// List returns the IDs of the open sessions, sorted
func (m *Manager) List() []string {
	m.lock.RLock()
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	m.lock.RUnlock()

	slices.Sort(ids)
	return ids
}

// Close ends the session, discards its state,
// and returns the report of the session.
func (m *Manager) Close(ctx context.Context, id string) (*Report, error) {
	m.lock.Lock()
	sess, ok := m.sessions[id]
	delete(m.sessions, id)
	m.lock.Unlock()

	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "session %s", id)
	}

	sctx := sess.Context(ctx)
	report := &Report{SessionID: id}

	// state is discarded even when it could not be read
	notes, err := sess.Engine.Notes(sctx)
	if err == nil {
		report.Notes = notes
		report.Bookings, err = sess.Engine.BookedSlots(sctx)
	}
	report.Stats, report.Transcript = m.recorder.EndSession(sctx)

	if rerr := sess.Engine.Reset(sctx); rerr != nil && err == nil {
		err = rerr
	}
	metricskey.StatsSessionsClosed.IncrCounter(1, m.cfg.Store.Backend)

	if err != nil {
		logger.ContextKV(ctx, xlog.ERROR,
			"status", "session_close_failed",
			"session_id", id,
			"err", err.Error(),
		)
		return report, errors.WithMessagef(err, "failed to close session %s", id)
	}

	logger.ContextKV(ctx, xlog.INFO,
		"status", "session_closed",
		"session_id", id,
		"notes", len(report.Notes),
		"bookings", len(report.Bookings),
	)
	return report, nil
}

// Shutdown closes every open session, and the Redis client created by the Manager
func (m *Manager) Shutdown(ctx context.Context) error {
	var errs error
	for _, id := range m.List() {
		if _, err := m.Close(ctx, id); err != nil {
			errs = errors.CombineErrors(errs, err)
		}
	}
	if m.owned && m.client != nil {
		if err := m.client.Close(); err != nil {
			errs = errors.CombineErrors(errs, errors.Wrap(err, "failed to close redis client"))
		}
	}
	return errs
}
