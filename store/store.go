package store

import (
	"context"

	"github.com/effective-security/interviewsim/simmodel"
	"github.com/effective-security/xlog"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/interviewsim", "store")

//go:generate mockgen -source=store.go -destination=../mocks/mockstore/store_mock.gen.go -package mockstore

// Store holds the mutable state of one simulation session:
// the notepad, the booked slots, and the identifier counter.
// A Store instance must not be shared between sessions.
type Store interface {
	// Notes returns the notepad entries in insertion order
	Notes(ctx context.Context) ([]simmodel.NoteEntry, error)
	// WriteNote replaces all notepad entries with the entry
	WriteNote(ctx context.Context, entry simmodel.NoteEntry) error
	// AppendNote adds the entry at the end of the notepad
	AppendNote(ctx context.Context, entry simmodel.NoteEntry) error

	// Slots returns the booked slots ordered by start time
	Slots(ctx context.Context) ([]simmodel.BookedSlot, error)
	// GetSlot returns the booking for the slot, or nil if the slot is free
	GetSlot(ctx context.Context, slot simmodel.Slot) (*simmodel.BookedSlot, error)
	// BookSlot stores the booking if its slot is free,
	// and returns false if the slot is already booked.
	BookSlot(ctx context.Context, booked *simmodel.BookedSlot) (bool, error)

	// NextID increments the identifier counter and returns the new value,
	// the first returned value is 1.
	NextID(ctx context.Context) (uint64, error)

	// Reset discards all session state
	Reset(ctx context.Context) error
}
