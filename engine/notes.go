package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/effective-security/interviewsim/outcome"
	"github.com/effective-security/interviewsim/simmodel"
)

// ManageNotes reads, replaces or appends to the session notepad,
// and returns the notepad snapshot after the operation.
func (e *Engine) ManageNotes(ctx context.Context, req *ManageNotesRequest) (*Result, error) {
	return e.dispatch(ctx, outcome.KindManageNotes, req, func(ctx context.Context) (*Result, error) {
		if req == nil {
			return nil, simmodel.InvalidArgumentf("notes request is required")
		}
		mode, err := simmodel.ParseNoteMode(strings.ToLower(strings.TrimSpace(req.Mode)))
		if err != nil {
			return nil, err
		}

		text := strings.TrimSpace(req.Text)
		if mode != simmodel.NoteRead && text == "" {
			return nil, simmodel.InvalidArgumentf("text is required for %s mode", mode)
		}

		// the snapshot is read before the notepad changes, so a failed read
		// leaves the notepad untouched
		entries, err := e.store.Notes(ctx)
		if err != nil {
			return nil, err
		}

		var message string
		if mode != simmodel.NoteRead {
			entry := simmodel.NoteEntry{
				Timestamp: e.now().UTC(),
				Mode:      mode,
				Text:      text,
			}
			if mode == simmodel.NoteWrite {
				if err = e.store.WriteNote(ctx, entry); err != nil {
					return nil, err
				}
				entries = []simmodel.NoteEntry{entry}
				message = "Notepad replaced"
			} else {
				if err = e.store.AppendNote(ctx, entry); err != nil {
					return nil, err
				}
				entries = append(entries, entry)
				message = "Note appended"
			}
		}

		if message == "" {
			message = fmt.Sprintf("Notepad has %d entries", len(entries))
		} else {
			message = fmt.Sprintf("%s, notepad has %d entries", message, len(entries))
		}

		return &Result{
			Kind:    outcome.KindManageNotes,
			Success: true,
			Status:  StatusOK,
			Message: message,
			Notes: &NotesResult{
				Mode:    mode,
				Entries: entries,
				Content: RenderNotes(entries),
				Empty:   len(entries) == 0,
			},
		}, nil
	})
}

// RenderNotes returns one `[timestamp] text` line per entry,
// or EmptyNotepad when there are no entries.
func RenderNotes(entries []simmodel.NoteEntry) string {
	if len(entries) == 0 {
		return simmodel.EmptyNotepad
	}
	var b strings.Builder
	for i, n := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("[")
		b.WriteString(n.Timestamp.Format("2006-01-02 15:04:05"))
		b.WriteString("] ")
		b.WriteString(n.Text)
	}
	return b.String()
}
