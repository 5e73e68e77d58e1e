package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/effective-security/interviewsim/outcome"
	"github.com/effective-security/interviewsim/simmodel"
)

// ScheduleCalendar books an interview slot.
// An occupied slot always fails with alternatives, a free slot may still
// conflict with a meeting of another party, in which case nothing is booked.
func (e *Engine) ScheduleCalendar(ctx context.Context, req *ScheduleCalendarRequest) (*Result, error) {
	return e.dispatch(ctx, outcome.KindScheduleCalendar, req, func(ctx context.Context) (*Result, error) {
		if req == nil {
			return nil, simmodel.InvalidArgumentf("schedule request is required")
		}
		slot, err := simmodel.ParseSlot(req.Date, req.Time)
		if err != nil {
			return nil, err
		}
		if err = simmodel.Validate(req); err != nil {
			return nil, err
		}

		sched := &ScheduleResult{
			Slot:            slot,
			CandidateName:   strings.TrimSpace(req.CandidateName),
			Topic:           strings.TrimSpace(req.Topic),
			DurationMinutes: req.DurationMinutes,
		}
		if sched.DurationMinutes == 0 {
			sched.DurationMinutes = DefaultDurationMinutes
		}

		existing, err := e.store.GetSlot(ctx, slot)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return e.alreadyBooked(ctx, sched)
		}

		occupied, err := e.occupied(ctx)
		if err != nil {
			return nil, err
		}

		o := e.gen.Draw(outcome.KindScheduleCalendar, &outcome.Params{
			Requested: slot,
			Occupied:  occupied,
		})
		if o.Result == outcome.Conflict {
			sched.Reason = o.Reason
			sched.Alternatives = o.Alternatives
			return &Result{
				Kind:     outcome.KindScheduleCalendar,
				Success:  false,
				Status:   StatusConflict,
				Message:  fmt.Sprintf("Slot %s is not available: %s", slot, o.Reason),
				Schedule: sched,
			}, nil
		}

		meetingID, err := e.nextID(ctx, MeetingIDFormat)
		if err != nil {
			return nil, err
		}

		booked, err := e.store.BookSlot(ctx, &simmodel.BookedSlot{
			Slot:            slot,
			CandidateName:   sched.CandidateName,
			Topic:           sched.Topic,
			DurationMinutes: sched.DurationMinutes,
			MeetingID:       meetingID,
			BookedAt:        e.now().UTC(),
		})
		if err != nil {
			return nil, err
		}
		if !booked {
			// booked by another host sharing the store
			return e.alreadyBooked(ctx, sched)
		}

		sched.MeetingID = meetingID
		return &Result{
			Kind:    outcome.KindScheduleCalendar,
			Success: true,
			Status:  StatusBooked,
			Message: fmt.Sprintf("%s with %s booked on %s for %d minutes, meeting ID %s",
				sched.Topic, sched.CandidateName, slot, sched.DurationMinutes, meetingID),
			Schedule: sched,
		}, nil
	})
}

func (e *Engine) alreadyBooked(ctx context.Context, sched *ScheduleResult) (*Result, error) {
	occupied, err := e.occupied(ctx)
	if err != nil {
		return nil, err
	}
	sched.Reason = "already booked"
	sched.Alternatives = e.gen.Alternatives(sched.Slot, occupied)
	return &Result{
		Kind:     outcome.KindScheduleCalendar,
		Success:  false,
		Status:   StatusAlreadyBooked,
		Message:  fmt.Sprintf("Slot %s is already booked", sched.Slot),
		Schedule: sched,
	}, nil
}

func (e *Engine) occupied(ctx context.Context) ([]simmodel.Slot, error) {
	booked, err := e.store.Slots(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]simmodel.Slot, len(booked))
	for i, b := range booked {
		res[i] = b.Slot
	}
	return res, nil
}
