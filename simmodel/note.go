package simmodel

import "time"

// NoteMode is the notepad operation
type NoteMode string

const (
	NoteRead   NoteMode = "read"
	NoteWrite  NoteMode = "write"
	NoteAppend NoteMode = "append"
)

// EmptyNotepad is returned as the notepad content when no entries exist.
const EmptyNotepad = "(notepad is empty)"

// ParseNoteMode returns the mode for the given name
func ParseNoteMode(s string) (NoteMode, error) {
	switch m := NoteMode(s); m {
	case NoteRead, NoteWrite, NoteAppend:
		return m, nil
	default:
		return "", InvalidArgumentf("mode %q must be one of read, write, append", s)
	}
}

// NoteEntry is one immutable notepad record.
type NoteEntry struct {
	Timestamp time.Time `json:"Timestamp" yaml:"Timestamp" toml:"Timestamp"`
	Mode      NoteMode  `json:"Mode" yaml:"Mode" toml:"Mode"`
	Text      string    `json:"Text" yaml:"Text" toml:"Text"`
}
