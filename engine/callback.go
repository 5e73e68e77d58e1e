package engine

import (
	"context"

	"github.com/effective-security/interviewsim/outcome"
)

//go:generate mockgen -source=callback.go -destination=../mocks/mockengine/callback_mock.gen.go -package mockengine

// Callback receives dispatch events.
// The engine never renders results itself, a presentation layer subscribes here.
type Callback interface {
	// OnDispatchStart is called before the request is validated
	OnDispatchStart(ctx context.Context, kind outcome.Kind, req any)
	// OnDispatchEnd is called with the result of a completed dispatch,
	// a simulated failure is a completed dispatch.
	OnDispatchEnd(ctx context.Context, kind outcome.Kind, req any, res *Result)
	// OnDispatchError is called when the request is invalid or the session store fails
	OnDispatchError(ctx context.Context, kind outcome.Kind, req any, err error)
}
