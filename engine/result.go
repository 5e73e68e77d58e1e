package engine

import (
	"time"

	"github.com/effective-security/interviewsim/outcome"
	"github.com/effective-security/interviewsim/simmodel"
)

// Status is a machine-readable result status
type Status string

const (
	StatusConnected     Status = "connected"
	StatusNoAnswer      Status = "no_answer"
	StatusDeclined      Status = "declined"
	StatusBusy          Status = "busy"
	StatusBooked        Status = "booked"
	StatusConflict      Status = "conflict"
	StatusAlreadyBooked Status = "already_booked"
	StatusDelivered     Status = "delivered"
	StatusBounced       Status = "bounced"
	StatusOK            Status = "ok"
)

// Next steps suggested by call results
const (
	NextStepSchedule    = "Proceed with scheduling"
	NextStepFollowEmail = "Follow up via email"
	NextStepRetryCall   = "Retry the call later"
)

// Result is the outcome of one dispatch.
// Exactly one of the kind-specific payloads is set, matching Kind.
type Result struct {
	Kind    outcome.Kind `json:"Kind" yaml:"Kind" toml:"Kind"`
	Success bool         `json:"Success" yaml:"Success" toml:"Success"`
	Status  Status       `json:"Status" yaml:"Status" toml:"Status"`
	Message string       `json:"Message" yaml:"Message" toml:"Message"`

	Call     *CallResult     `json:"Call,omitempty" yaml:"Call,omitempty" toml:"Call,omitempty"`
	Schedule *ScheduleResult `json:"Schedule,omitempty" yaml:"Schedule,omitempty" toml:"Schedule,omitempty"`
	Email    *EmailResult    `json:"Email,omitempty" yaml:"Email,omitempty" toml:"Email,omitempty"`
	Notes    *NotesResult    `json:"Notes,omitempty" yaml:"Notes,omitempty" toml:"Notes,omitempty"`
}

// CallResult is the payload of call_contact
type CallResult struct {
	CallID          string `json:"CallID" yaml:"CallID" toml:"CallID"`
	ContactName     string `json:"ContactName" yaml:"ContactName" toml:"ContactName"`
	ContactRole     string `json:"ContactRole" yaml:"ContactRole" toml:"ContactRole"`
	Phone           string `json:"Phone,omitempty" yaml:"Phone,omitempty" toml:"Phone,omitempty"`
	Email           string `json:"Email,omitempty" yaml:"Email,omitempty" toml:"Email,omitempty"`
	Purpose         string `json:"Purpose,omitempty" yaml:"Purpose,omitempty" toml:"Purpose,omitempty"`
	DurationMinutes int    `json:"DurationMinutes" yaml:"DurationMinutes" toml:"DurationMinutes"`
	Availability    string `json:"Availability,omitempty" yaml:"Availability,omitempty" toml:"Availability,omitempty"`
	Reason          string `json:"Reason,omitempty" yaml:"Reason,omitempty" toml:"Reason,omitempty"`
	NextSteps       string `json:"NextSteps" yaml:"NextSteps" toml:"NextSteps"`
}

// ScheduleResult is the payload of schedule_calendar
type ScheduleResult struct {
	MeetingID       string          `json:"MeetingID,omitempty" yaml:"MeetingID,omitempty" toml:"MeetingID,omitempty"`
	Slot            simmodel.Slot   `json:"Slot" yaml:"Slot" toml:"Slot"`
	CandidateName   string          `json:"CandidateName" yaml:"CandidateName" toml:"CandidateName"`
	Topic           string          `json:"Topic" yaml:"Topic" toml:"Topic"`
	DurationMinutes int             `json:"DurationMinutes" yaml:"DurationMinutes" toml:"DurationMinutes"`
	Reason          string          `json:"Reason,omitempty" yaml:"Reason,omitempty" toml:"Reason,omitempty"`
	Alternatives    []simmodel.Slot `json:"Alternatives,omitempty" yaml:"Alternatives,omitempty" toml:"Alternatives,omitempty"`
}

// EmailResult is the payload of send_email
type EmailResult struct {
	TrackingID    string `json:"TrackingID,omitempty" yaml:"TrackingID,omitempty" toml:"TrackingID,omitempty"`
	To            string `json:"To" yaml:"To" toml:"To"`
	RecipientRole string `json:"RecipientRole" yaml:"RecipientRole" toml:"RecipientRole"`
	Subject       string `json:"Subject,omitempty" yaml:"Subject,omitempty" toml:"Subject,omitempty"`
	MessageType   string `json:"MessageType,omitempty" yaml:"MessageType,omitempty" toml:"MessageType,omitempty"`
	Reason        string `json:"Reason,omitempty" yaml:"Reason,omitempty" toml:"Reason,omitempty"`

	// RecipientResponse is the reply, or a marker when there is none
	RecipientResponse string    `json:"RecipientResponse" yaml:"RecipientResponse" toml:"RecipientResponse"`
	ResponseTime      string    `json:"ResponseTime" yaml:"ResponseTime" toml:"ResponseTime"`
	SentAt            time.Time `json:"SentAt" yaml:"SentAt" toml:"SentAt"`
}

// NotesResult is the payload of manage_notes.
// Entries is the notepad snapshot after the operation.
type NotesResult struct {
	Mode    simmodel.NoteMode    `json:"Mode" yaml:"Mode" toml:"Mode"`
	Entries []simmodel.NoteEntry `json:"Entries" yaml:"Entries" toml:"Entries"`
	// Content is the rendered notepad, or EmptyNotepad
	Content string `json:"Content" yaml:"Content" toml:"Content"`
	Empty   bool   `json:"Empty" yaml:"Empty" toml:"Empty"`
}
