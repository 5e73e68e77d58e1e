package simmodel

import (
	"context"
	"strconv"
	"sync"

	"github.com/effective-security/x/values"
	"github.com/effective-security/xdb/pkg/flake"
)

// SessionContext identifies the simulation session a tool call belongs to.
type SessionContext interface {
	SessionID() string
	// Setup returns immutable seed data the session was opened with
	Setup() any
	// GetMetadata retrieves metadata by key
	GetMetadata(key string) (value any, ok bool)
	// SetMetadata sets metadata by key
	SetMetadata(key string, value any)
}

type sessionContext struct {
	sessionID string
	metadata  sync.Map
	setup     any
}

func (c *sessionContext) SessionID() string {
	return c.sessionID
}

func (c *sessionContext) Setup() any {
	return c.setup
}

func (c *sessionContext) GetMetadata(key string) (value any, ok bool) {
	return c.metadata.Load(key)
}

func (c *sessionContext) SetMetadata(key string, value any) {
	c.metadata.Store(key, value)
}

// NewSessionContext returns a session context,
// a new session ID is generated if sessionID is empty.
func NewSessionContext(sessionID string, setup any) SessionContext {
	return &sessionContext{
		sessionID: values.StringsCoalesce(sessionID, NewSessionID()),
		setup:     setup,
	}
}

type contextKey int

const (
	keyContext contextKey = iota
)

// WithSessionContext returns a new context with SessionContext value
func WithSessionContext(ctx context.Context, sc SessionContext) context.Context {
	return context.WithValue(ctx, keyContext, sc)
}

// GetSessionContext retrieves the SessionContext from the context
func GetSessionContext(ctx context.Context) SessionContext {
	if v, ok := ctx.Value(keyContext).(SessionContext); ok {
		return v
	}
	return nil
}

// GetSessionID returns the session ID from the context,
// or an empty string if the context has no SessionContext.
func GetSessionID(ctx context.Context) string {
	if v := GetSessionContext(ctx); v != nil {
		return v.SessionID()
	}
	return ""
}

// NewSessionID generates a new session ID using the flake ID generator.
func NewSessionID() string {
	return strconv.FormatUint(flake.DefaultIDGenerator.NextID(), 10)
}
