package simmodel

import (
	"strings"
	"time"
)

const (
	// DateLayout is the canonical slot date format
	DateLayout = "2006-01-02"
	// TimeLayout is the canonical slot time format
	TimeLayout = "15:04"
)

// accepted time of day layouts, the first one is canonical
var timeLayouts = []string{
	TimeLayout,
	"15:04:05",
	"3:04 PM",
	"3:04PM",
	"3PM",
	"3 PM",
}

// Slot is a calendar slot identified by date and start time.
// Slots are compared by value, use ParseSlot to normalize user input.
type Slot struct {
	Date string `json:"Date" yaml:"Date" toml:"Date"`
	Time string `json:"Time" yaml:"Time" toml:"Time"`
}

// ParseSlot validates date and time, and returns the slot in canonical form.
func ParseSlot(date, tm string) (Slot, error) {
	date = strings.TrimSpace(date)
	tm = strings.ToUpper(strings.TrimSpace(tm))

	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return Slot{}, InvalidArgumentf("date %q must be in YYYY-MM-DD format", date)
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, tm); err == nil {
			return Slot{
				Date: d.Format(DateLayout),
				Time: t.Format(TimeLayout),
			}, nil
		}
	}
	return Slot{}, InvalidArgumentf("time %q must be in HH:MM format", tm)
}

// SlotAt returns the slot starting at t
func SlotAt(t time.Time) Slot {
	return Slot{
		Date: t.Format(DateLayout),
		Time: t.Format(TimeLayout),
	}
}

// Start returns the slot start time in UTC.
// The zero time is returned for a slot that is not in canonical form.
func (s Slot) Start() time.Time {
	t, err := time.Parse(DateLayout+" "+TimeLayout, s.String())
	if err != nil {
		return time.Time{}
	}
	return t
}

// String returns `date time`
func (s Slot) String() string {
	return s.Date + " " + s.Time
}

// BookedSlot is a slot reserved by a successful schedule_calendar call.
type BookedSlot struct {
	Slot
	CandidateName   string    `json:"CandidateName" yaml:"CandidateName" toml:"CandidateName"`
	Topic           string    `json:"Topic" yaml:"Topic" toml:"Topic"`
	DurationMinutes int       `json:"DurationMinutes" yaml:"DurationMinutes" toml:"DurationMinutes"`
	MeetingID       string    `json:"MeetingID" yaml:"MeetingID" toml:"MeetingID"`
	BookedAt        time.Time `json:"BookedAt" yaml:"BookedAt" toml:"BookedAt"`
}
