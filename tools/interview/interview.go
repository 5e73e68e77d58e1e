// Package interview provides the interview coordination tools backed by a simulation engine.
package interview

import (
	"context"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/interviewsim/encoding"
	"github.com/effective-security/interviewsim/engine"
	"github.com/effective-security/interviewsim/outcome"
	"github.com/effective-security/interviewsim/schema"
	"github.com/effective-security/interviewsim/tools"
)

// Tool names
const (
	CallContactToolName      = string(outcome.KindCallContact)
	ScheduleCalendarToolName = string(outcome.KindScheduleCalendar)
	SendEmailToolName        = string(outcome.KindSendEmail)
	ManageNotesToolName      = string(outcome.KindManageNotes)
)

// Tool adapts one engine operation to the JSON tool contract
type Tool[I any] struct {
	name        string
	description string
	funcParams  any

	dec *encoding.TypedDecoder[I]
	enc encoding.Encoder
	run func(context.Context, *I) (*engine.Result, error)
}

// ensure Tool implements the tools.Tool interface
var _ tools.Tool[engine.CallContactRequest, engine.Result] = (*Tool[engine.CallContactRequest])(nil)

func newTool[I any](name, description string, mode encoding.Mode, run func(context.Context, *I) (*engine.Result, error)) (*Tool[I], error) {
	var req I
	sc, err := schema.New(reflect.TypeOf(req))
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create schema for %s", name)
	}
	// arguments are always JSON, results are encoded by mode
	dec, err := encoding.NewTypedDecoder[I](encoding.ModeJSON)
	if err != nil {
		return nil, err
	}
	enc, err := encoding.PredefinedEncoder(mode, engine.Result{})
	if err != nil {
		return nil, err
	}
	return &Tool[I]{
		name:        name,
		description: description,
		funcParams:  sc.Parameters,
		dec:         dec,
		enc:         enc,
		run:         run,
	}, nil
}

func (t *Tool[I]) Name() string {
	return t.name
}

func (t *Tool[I]) Description() string {
	return t.description
}

func (t *Tool[I]) Parameters() any {
	return t.funcParams
}

// Run dispatches the request to the engine
func (t *Tool[I]) Run(ctx context.Context, req *I) (*engine.Result, error) {
	return t.run(ctx, req)
}

// Call decodes the JSON arguments, dispatches the request, and returns the encoded result.
func (t *Tool[I]) Call(ctx context.Context, input string) (string, error) {
	req, err := t.dec.Decode(input)
	if err != nil {
		return "", err
	}
	res, err := t.Run(ctx, req)
	if err != nil {
		return "", err
	}
	bs, err := t.enc.Marshal(res)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal output")
	}
	return string(bs), nil
}

// NewCallContact returns the call_contact tool
func NewCallContact(e *engine.Engine, mode encoding.Mode) (*Tool[engine.CallContactRequest], error) {
	return newTool(CallContactToolName,
		"Call a contact by phone to confirm availability or discuss interview arrangements. "+
			"The contact needs a name and a phone number or an email address. "+
			"The call may not be answered, in which case retry later or follow up by email.",
		mode, e.CallContact)
}

// NewScheduleCalendar returns the schedule_calendar tool
func NewScheduleCalendar(e *engine.Engine, mode encoding.Mode) (*Tool[engine.ScheduleCalendarRequest], error) {
	return newTool(ScheduleCalendarToolName,
		"Book an interview slot in the calendar for a candidate. "+
			"If the slot is taken the result lists alternative slots, pick one and try again.",
		mode, e.ScheduleCalendar)
}

// NewSendEmail returns the send_email tool
func NewSendEmail(e *engine.Engine, mode encoding.Mode) (*Tool[engine.SendEmailRequest], error) {
	return newTool(SendEmailToolName,
		"Send an email such as an interview invitation or confirmation. "+
			"A delivered email returns a tracking ID, a bounced email returns the reason.",
		mode, e.SendEmail)
}

// NewManageNotes returns the manage_notes tool
func NewManageNotes(e *engine.Engine, mode encoding.Mode) (*Tool[engine.ManageNotesRequest], error) {
	return newTool(ManageNotesToolName,
		"Keep notes about the coordination progress. "+
			"Mode read returns the notepad, write replaces it with the text, append adds the text as a new entry.",
		mode, e.ManageNotes)
}

// All returns the four interview tools backed by the engine
func All(e *engine.Engine, mode encoding.Mode) ([]tools.ITool, error) {
	call, err := NewCallContact(e, mode)
	if err != nil {
		return nil, err
	}
	sched, err := NewScheduleCalendar(e, mode)
	if err != nil {
		return nil, err
	}
	email, err := NewSendEmail(e, mode)
	if err != nil {
		return nil, err
	}
	notes, err := NewManageNotes(e, mode)
	if err != nil {
		return nil, err
	}
	return []tools.ITool{call, sched, email, notes}, nil
}

// NewToolbox returns a Toolbox with the interview tools
func NewToolbox(e *engine.Engine, mode encoding.Mode, callback tools.Callback) (*tools.Toolbox, error) {
	list, err := All(e, mode)
	if err != nil {
		return nil, err
	}
	return tools.NewToolbox(callback, list...), nil
}
