package encoding

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/interviewsim/simmodel"
)

// TypedDecoder decodes tool arguments into T
type TypedDecoder[T any] struct {
	enc  Encoder
	name string
}

// NewTypedDecoder returns a decoder of T for the mode
func NewTypedDecoder[T any](mode Mode) (*TypedDecoder[T], error) {
	var target T
	enc, err := PredefinedEncoder(mode, target)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to create encoder")
	}
	return &TypedDecoder[T]{
		enc:  enc,
		name: fmt.Sprintf("%T decoder", target),
	}, nil
}

// Decode returns the value decoded from text.
// Decoding errors are marked with ErrFailedUnmarshalInput.
func (p *TypedDecoder[T]) Decode(text string) (*T, error) {
	var target T
	if err := p.enc.Unmarshal([]byte(text), &target); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "failed to decode"), simmodel.ErrFailedUnmarshalInput)
	}
	return &target, nil
}

// Type returns the decoder name
func (p *TypedDecoder[T]) Type() string {
	return p.name
}
