package engine

import "github.com/effective-security/interviewsim/simmodel"

// CallContactRequest is the input of call_contact
type CallContactRequest struct {
	Contact simmodel.Contact `json:"Contact" yaml:"Contact" jsonschema:"title=Contact,description=The person to call. Name and a phone number or an email address are required."`
	Purpose string           `json:"Purpose,omitempty" yaml:"Purpose,omitempty" jsonschema:"title=Purpose,description=Why the call is made. Example: confirm interview availability."`
}

// ScheduleCalendarRequest is the input of schedule_calendar
type ScheduleCalendarRequest struct {
	Date            string `json:"Date" yaml:"Date" jsonschema:"title=Date,description=Interview date in YYYY-MM-DD format."`
	Time            string `json:"Time" yaml:"Time" jsonschema:"title=Time,description=Interview start time in HH:MM 24-hour format."`
	CandidateName   string `json:"CandidateName" yaml:"CandidateName" jsonschema:"title=Candidate Name,description=Full name of the candidate." validate:"notblank"`
	Topic           string `json:"Topic" yaml:"Topic" jsonschema:"title=Topic,description=Interview type or topic. Example: Technical Interview." validate:"notblank"`
	DurationMinutes int    `json:"DurationMinutes,omitempty" yaml:"DurationMinutes,omitempty" jsonschema:"title=Duration,description=Interview duration in minutes. Defaults to 60." validate:"omitempty,min=15,max=480"`
}

// SendEmailRequest is the input of send_email
type SendEmailRequest struct {
	To          string `json:"To" yaml:"To" jsonschema:"title=To,description=Recipient email address." validate:"mailbox"`
	Subject     string `json:"Subject,omitempty" yaml:"Subject,omitempty" jsonschema:"title=Subject,description=Email subject."`
	Body        string `json:"Body,omitempty" yaml:"Body,omitempty" jsonschema:"title=Body,description=Email body."`
	MessageType string `json:"MessageType,omitempty" yaml:"MessageType,omitempty" jsonschema:"title=Message Type,description=Kind of message. Example: interview invitation."`
}

// ManageNotesRequest is the input of manage_notes
type ManageNotesRequest struct {
	Mode string `json:"Mode" yaml:"Mode" jsonschema:"title=Mode,description=Notepad operation.,enum=read,enum=write,enum=append"`
	Text string `json:"Text,omitempty" yaml:"Text,omitempty" jsonschema:"title=Text,description=Note text. Required for write and append."`
}
