package outcome

import (
	"sort"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/effective-security/interviewsim/simmodel"
)

// Params carries the inputs a draw depends on
type Params struct {
	// Requested is the slot asked for by schedule_calendar
	Requested simmodel.Slot
	// Occupied are the slots already booked in the session
	Occupied []simmodel.Slot
}

// Outcome is the result of one draw
type Outcome struct {
	Kind   Kind
	Result Result
	// Reason is set for Failure
	Reason string
	// Availability and DurationMinutes are set for a successful call
	Availability    string
	DurationMinutes int
	// Alternatives are set for a Conflict
	Alternatives []simmodel.Slot
	// RecipientResponse and ResponseTime are set for an email
	RecipientResponse string
	ResponseTime      string
}

// Succeeded returns true for the Success branch
func (o *Outcome) Succeeded() bool {
	return o.Result == Success
}

// Generator draws outcomes from the probability tables
type Generator struct {
	faker *gofakeit.Faker
}

// New returns a generator using faker as the random source,
// if faker is nil, a generator seeded from entropy is used.
func New(faker *gofakeit.Faker) *Generator {
	if faker == nil {
		faker = gofakeit.New(0)
	}
	return &Generator{faker: faker}
}

// NewSeeded returns a generator with a deterministic random source,
// seed 0 means entropy.
func NewSeeded(seed uint64) *Generator {
	return New(gofakeit.New(seed))
}

// Draw returns the outcome for a call of the tool kind.
// The generator is not safe for concurrent use.
func (g *Generator) Draw(kind Kind, p *Params) Outcome {
	if p == nil {
		p = &Params{}
	}

	switch kind {
	case KindCallContact:
		if g.chance(CallSuccessProbability) {
			return Outcome{
				Kind:            kind,
				Result:          Success,
				Availability:    g.faker.RandomString(Availabilities),
				DurationMinutes: g.faker.IntRange(MinCallMinutes, MaxCallMinutes),
			}
		}
		return Outcome{
			Kind:   kind,
			Result: Failure,
			Reason: g.faker.RandomString(CallFailureReasons),
		}

	case KindScheduleCalendar:
		if g.chance(ScheduleConflictProbability) {
			return Outcome{
				Kind:         kind,
				Result:       Conflict,
				Reason:       "slot taken by another meeting",
				Alternatives: g.Alternatives(p.Requested, p.Occupied),
			}
		}
		return Outcome{Kind: kind, Result: Success}

	case KindSendEmail:
		if g.chance(EmailDeliveryProbability) {
			o := Outcome{
				Kind:              kind,
				Result:            Success,
				RecipientResponse: NoResponse,
				ResponseTime:      ResponseTimeNA,
			}
			if g.chance(EmailReplyProbability) {
				o.RecipientResponse = g.faker.RandomString(RecipientResponses)
				o.ResponseTime = g.faker.RandomString(ResponseTimes)
			}
			return o
		}
		return Outcome{
			Kind:              kind,
			Result:            Failure,
			Reason:            g.faker.RandomString(EmailBounceReasons),
			RecipientResponse: NotDelivered,
			ResponseTime:      ResponseTimeNA,
		}

	case KindManageNotes:
		return Outcome{Kind: kind, Result: Success}
	}

	return Outcome{
		Kind:   kind,
		Result: Failure,
		Reason: "unsupported tool",
	}
}

// chance returns true with probability p
func (g *Generator) chance(p float64) bool {
	return g.faker.Float64() < p
}

// Alternatives proposes 1 to 3 business-hour slots, at most one per day,
// starting on the requested day. The proposals never coincide with
// the requested slot or with any occupied slot.
func (g *Generator) Alternatives(requested simmodel.Slot, occupied []simmodel.Slot) []simmodel.Slot {
	excluded := make(map[simmodel.Slot]struct{}, len(occupied)+1)
	excluded[requested] = struct{}{}
	for _, s := range occupied {
		excluded[s] = struct{}{}
	}

	start := requested.Start()
	if start.IsZero() {
		start = time.Now().UTC()
	}
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	want := g.faker.IntRange(MinAlternatives, MaxAlternatives)
	res := make([]simmodel.Slot, 0, want)

	for offset := 0; offset < searchDays && len(res) < want; offset++ {
		d := day.AddDate(0, 0, offset)
		if offset > 0 && isWeekend(d) {
			continue
		}

		var free []simmodel.Slot
		for h := firstBusinessHour; h <= lastBusinessHour; h++ {
			s := simmodel.SlotAt(d.Add(time.Duration(h) * time.Hour))
			if _, taken := excluded[s]; !taken {
				free = append(free, s)
			}
		}
		if len(free) == 0 {
			continue
		}
		res = append(res, free[g.faker.IntRange(0, len(free)-1)])
	}

	sort.Slice(res, func(i, j int) bool {
		return res[i].Start().Before(res[j].Start())
	})
	return res
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
