package simmodel

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalidArgument is returned when a tool call violates its preconditions.
	// It is never retried internally.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrFailedUnmarshalInput is returned when tool arguments can not be decoded.
	ErrFailedUnmarshalInput = errors.New("failed to unmarshal input: check the schema and try again")
)

// InvalidArgumentf returns an error that wraps ErrInvalidArgument
func InvalidArgumentf(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

// IsInvalidArgument returns true if err was caused by invalid tool input
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// Validate checks the `validate` struct tags on v,
// and reports violations as ErrInvalidArgument.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			parts = append(parts, fmt.Sprintf("%s failed on '%s'", fe.Namespace(), fe.Tag()))
		}
		return errors.Wrap(ErrInvalidArgument, strings.Join(parts, "; "))
	}
	return errors.Wrap(ErrInvalidArgument, err.Error())
}
