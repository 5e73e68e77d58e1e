package outcome

// Kind identifies the tool an outcome is drawn for
type Kind string

const (
	KindCallContact      Kind = "call_contact"
	KindScheduleCalendar Kind = "schedule_calendar"
	KindSendEmail        Kind = "send_email"
	KindManageNotes      Kind = "manage_notes"
)

// Kinds lists the supported tool kinds
var Kinds = []Kind{
	KindCallContact,
	KindScheduleCalendar,
	KindSendEmail,
	KindManageNotes,
}

// Result is the branch chosen by a draw
type Result string

const (
	Success  Result = "success"
	Failure  Result = "failure"
	Conflict Result = "conflict"
)

// Probability tables
const (
	// CallSuccessProbability is the chance that a call is answered,
	// otherwise the contact does not answer or declines.
	CallSuccessProbability = 0.85
	// ScheduleConflictProbability is the chance that a free slot
	// is reported as taken by another party.
	ScheduleConflictProbability = 0.20
	// EmailDeliveryProbability is the chance that an email is delivered,
	// otherwise it bounces.
	EmailDeliveryProbability = 0.95
	// EmailReplyProbability is the chance that the recipient
	// of a delivered email replies.
	EmailReplyProbability = 0.70
)

// Recipient responses without a reply
const (
	NoResponse     = "No response received"
	NotDelivered   = "Email not delivered"
	ResponseTimeNA = "N/A"
)

// Payload bounds
const (
	MinCallMinutes = 2
	MaxCallMinutes = 8

	MinAlternatives = 1
	MaxAlternatives = 3

	// first and last slot start hour offered as alternatives
	firstBusinessHour = 9
	lastBusinessHour  = 16
	// how many days ahead alternatives are searched for
	searchDays = 60
)

// Availabilities are the time preferences reported by answered calls
var Availabilities = []string{
	"prefers morning slots",
	"available afternoons after 2 PM",
	"flexible on any weekday",
	"prefers Tuesday or Thursday",
	"available only before noon this week",
	"prefers late afternoon slots",
}

// CallFailureReasons are reported by unanswered calls
var CallFailureReasons = []string{
	"no answer",
	"declined",
	"line busy",
}

// EmailBounceReasons are reported by bounced emails
var EmailBounceReasons = []string{
	"mailbox unavailable",
	"message rejected by recipient server",
	"recipient address not found",
}

// RecipientResponses are the replies to delivered emails
var RecipientResponses = []string{
	"Thanks, the proposed time works for me.",
	"Confirmed, I will be there.",
	"Could we move it an hour later?",
	"I am traveling that day, can we find another slot next week?",
	"Received, I will check my calendar and get back to you.",
	"Please send the meeting link and the agenda.",
}

// ResponseTimes are the delays of the replies
var ResponseTimes = []string{
	"2 minutes",
	"10 minutes",
	"30 minutes",
	"1 hour",
	"3 hours",
	"next business day",
}
