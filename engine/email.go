package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/effective-security/interviewsim/outcome"
	"github.com/effective-security/interviewsim/simmodel"
)

// SendEmail simulates an email delivery,
// a tracking ID is generated only for a delivered email.
func (e *Engine) SendEmail(ctx context.Context, req *SendEmailRequest) (*Result, error) {
	return e.dispatch(ctx, outcome.KindSendEmail, req, func(ctx context.Context) (*Result, error) {
		if req == nil {
			return nil, simmodel.InvalidArgumentf("email request is required")
		}
		if !simmodel.IsMailbox(req.To) {
			return nil, simmodel.InvalidArgumentf("email address %q must be in local@domain format", req.To)
		}

		email := &EmailResult{
			To:            strings.TrimSpace(req.To),
			RecipientRole: simmodel.ContactRole(simmodel.RoleRecipient, req.Subject, req.MessageType),
			Subject:       req.Subject,
			MessageType:   req.MessageType,
			SentAt:        e.now().UTC(),
		}

		o := e.gen.Draw(outcome.KindSendEmail, nil)
		email.RecipientResponse = o.RecipientResponse
		email.ResponseTime = o.ResponseTime
		if !o.Succeeded() {
			email.Reason = o.Reason
			return &Result{
				Kind:    outcome.KindSendEmail,
				Success: false,
				Status:  StatusBounced,
				Message: fmt.Sprintf("Email to %s bounced: %s", email.To, o.Reason),
				Email:   email,
			}, nil
		}

		trackingID, err := e.nextID(ctx, TrackingIDFormat)
		if err != nil {
			return nil, err
		}
		email.TrackingID = trackingID
		return &Result{
			Kind:    outcome.KindSendEmail,
			Success: true,
			Status:  StatusDelivered,
			Message: fmt.Sprintf("Email to %s delivered, tracking ID %s", email.To, trackingID),
			Email:   email,
		}, nil
	})
}
