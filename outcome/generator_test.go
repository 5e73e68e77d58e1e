package outcome_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/effective-security/interviewsim/outcome"
	"github.com/effective-security/interviewsim/simmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraw_Deterministic(t *testing.T) {
	t.Parallel()

	p := &outcome.Params{Requested: simmodel.Slot{Date: "2025-05-27", Time: "10:00"}}
	g1 := outcome.NewSeeded(42)
	g2 := outcome.New(gofakeit.New(42))
	for i := 0; i < 200; i++ {
		for _, kind := range outcome.Kinds {
			assert.Equal(t, g1.Draw(kind, p), g2.Draw(kind, p))
		}
	}
}

func TestDraw_Rates(t *testing.T) {
	t.Parallel()

	const n = 10000
	g := outcome.NewSeeded(7)
	p := &outcome.Params{Requested: simmodel.Slot{Date: "2025-05-27", Time: "10:00"}}

	rates := map[outcome.Kind]float64{}
	for _, kind := range []outcome.Kind{outcome.KindCallContact, outcome.KindScheduleCalendar, outcome.KindSendEmail} {
		succeeded := 0
		for i := 0; i < n; i++ {
			o := g.Draw(kind, p)
			if o.Succeeded() {
				succeeded++
			}
		}
		rates[kind] = float64(succeeded) / n
	}

	assert.InDelta(t, outcome.CallSuccessProbability, rates[outcome.KindCallContact], 0.02)
	assert.InDelta(t, 1-outcome.ScheduleConflictProbability, rates[outcome.KindScheduleCalendar], 0.02)
	assert.InDelta(t, outcome.EmailDeliveryProbability, rates[outcome.KindSendEmail], 0.02)
}

func TestDraw_Payloads(t *testing.T) {
	t.Parallel()

	g := outcome.NewSeeded(11)
	p := &outcome.Params{Requested: simmodel.Slot{Date: "2025-05-27", Time: "10:00"}}

	var sawSuccess, sawFailure, sawConflict, sawBounce, sawReply, sawNoReply bool
	for i := 0; i < 500; i++ {
		call := g.Draw(outcome.KindCallContact, p)
		assert.Equal(t, outcome.KindCallContact, call.Kind)
		switch call.Result {
		case outcome.Success:
			sawSuccess = true
			assert.Contains(t, outcome.Availabilities, call.Availability)
			assert.GreaterOrEqual(t, call.DurationMinutes, outcome.MinCallMinutes)
			assert.LessOrEqual(t, call.DurationMinutes, outcome.MaxCallMinutes)
			assert.Empty(t, call.Reason)
		case outcome.Failure:
			sawFailure = true
			assert.Contains(t, outcome.CallFailureReasons, call.Reason)
			assert.Zero(t, call.DurationMinutes)
		default:
			t.Fatalf("unexpected call result: %s", call.Result)
		}

		sched := g.Draw(outcome.KindScheduleCalendar, p)
		if sched.Result == outcome.Conflict {
			sawConflict = true
			assert.NotEmpty(t, sched.Alternatives)
		} else {
			assert.Equal(t, outcome.Success, sched.Result)
			assert.Empty(t, sched.Alternatives)
		}

		email := g.Draw(outcome.KindSendEmail, nil)
		switch {
		case email.Result == outcome.Failure:
			sawBounce = true
			assert.Contains(t, outcome.EmailBounceReasons, email.Reason)
			assert.Equal(t, outcome.NotDelivered, email.RecipientResponse)
			assert.Equal(t, outcome.ResponseTimeNA, email.ResponseTime)
		case email.RecipientResponse == outcome.NoResponse:
			sawNoReply = true
			assert.Equal(t, outcome.ResponseTimeNA, email.ResponseTime)
		default:
			sawReply = true
			assert.Equal(t, outcome.Success, email.Result)
			assert.Contains(t, outcome.RecipientResponses, email.RecipientResponse)
			assert.Contains(t, outcome.ResponseTimes, email.ResponseTime)
			assert.Empty(t, email.Reason)
		}

		notes := g.Draw(outcome.KindManageNotes, nil)
		assert.True(t, notes.Succeeded())
	}
	assert.True(t, sawSuccess)
	assert.True(t, sawFailure)
	assert.True(t, sawConflict)
	assert.True(t, sawBounce)
	assert.True(t, sawReply)
	assert.True(t, sawNoReply)

	unknown := g.Draw(outcome.Kind("human_in_loop"), nil)
	assert.Equal(t, outcome.Failure, unknown.Result)
	assert.Equal(t, "unsupported tool", unknown.Reason)
}

func TestAlternatives(t *testing.T) {
	t.Parallel()

	requested := simmodel.Slot{Date: "2025-05-27", Time: "10:00"}
	occupied := []simmodel.Slot{
		{Date: "2025-05-27", Time: "09:00"},
		{Date: "2025-05-27", Time: "11:00"},
		{Date: "2025-05-28", Time: "14:00"},
	}

	for seed := uint64(1); seed <= 300; seed++ {
		g := outcome.NewSeeded(seed)
		alts := g.Alternatives(requested, occupied)
		require.GreaterOrEqual(t, len(alts), outcome.MinAlternatives, "seed %d", seed)
		require.LessOrEqual(t, len(alts), outcome.MaxAlternatives, "seed %d", seed)

		seen := map[simmodel.Slot]bool{}
		for i, s := range alts {
			assert.NotEqual(t, requested, s)
			assert.False(t, slices.Contains(occupied, s), "seed %d: %s is occupied", seed, s)
			assert.False(t, seen[s], "seed %d: duplicate %s", seed, s)
			seen[s] = true

			start := s.Start()
			require.False(t, start.IsZero())
			assert.GreaterOrEqual(t, start.Hour(), 9)
			assert.LessOrEqual(t, start.Hour(), 16)
			if i > 0 {
				assert.True(t, alts[i-1].Start().Before(start))
			}
		}
	}
}

func TestAlternatives_FullDay(t *testing.T) {
	t.Parallel()

	requested := simmodel.Slot{Date: "2025-05-30", Time: "10:00"} // Friday
	var occupied []simmodel.Slot
	for h := 9; h <= 16; h++ {
		occupied = append(occupied, simmodel.Slot{Date: "2025-05-30", Time: fmt.Sprintf("%02d:00", h)})
	}

	for seed := uint64(1); seed <= 50; seed++ {
		alts := outcome.NewSeeded(seed).Alternatives(requested, occupied)
		require.NotEmpty(t, alts)
		for _, s := range alts {
			assert.NotEqual(t, "2025-05-30", s.Date)
			// weekend is skipped
			assert.NotEqual(t, "2025-05-31", s.Date)
			assert.NotEqual(t, "2025-06-01", s.Date)
		}
	}
}
