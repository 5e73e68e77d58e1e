package engine

import (
	"context"
	"fmt"

	"github.com/effective-security/interviewsim/outcome"
	"github.com/effective-security/interviewsim/simmodel"
)

var callStatus = map[string]Status{
	"no answer": StatusNoAnswer,
	"declined":  StatusDeclined,
	"line busy": StatusBusy,
}

// CallContact simulates a phone call with the contact.
// A call never books anything, every call gets a call record ID.
func (e *Engine) CallContact(ctx context.Context, req *CallContactRequest) (*Result, error) {
	return e.dispatch(ctx, outcome.KindCallContact, req, func(ctx context.Context) (*Result, error) {
		if req == nil {
			return nil, simmodel.InvalidArgumentf("call request is required")
		}
		if err := simmodel.ValidateContact(&req.Contact); err != nil {
			return nil, err
		}

		callID, err := e.nextID(ctx, CallIDFormat)
		if err != nil {
			return nil, err
		}

		c := req.Contact
		o := e.gen.Draw(outcome.KindCallContact, nil)
		call := &CallResult{
			CallID:      callID,
			ContactName: c.Name,
			ContactRole: simmodel.ContactRole(simmodel.RoleContact, req.Purpose, c.Role),
			Phone:       c.Phone,
			Email:       c.Email,
			Purpose:     req.Purpose,
		}

		if o.Succeeded() {
			call.DurationMinutes = o.DurationMinutes
			call.Availability = o.Availability
			call.NextSteps = NextStepSchedule
			return &Result{
				Kind:    outcome.KindCallContact,
				Success: true,
				Status:  StatusConnected,
				Message: fmt.Sprintf("Call with %s completed after %d minutes: %s", c.Name, o.DurationMinutes, o.Availability),
				Call:    call,
			}, nil
		}

		call.Reason = o.Reason
		call.NextSteps = NextStepRetryCall
		if c.HasMailbox() {
			call.NextSteps = NextStepFollowEmail
		}
		status, ok := callStatus[o.Reason]
		if !ok {
			status = StatusNoAnswer
		}
		return &Result{
			Kind:    outcome.KindCallContact,
			Success: false,
			Status:  status,
			Message: fmt.Sprintf("Call to %s failed: %s", c.Name, o.Reason),
			Call:    call,
		}, nil
	})
}
