package toml

import (
	"reflect"

	"github.com/BurntSushi/toml"
	"github.com/effective-security/interviewsim/utils"
)

type Encoder struct {
	reqType reflect.Type
}

func NewEncoder(req any) *Encoder {
	return &Encoder{
		reqType: reflect.TypeOf(req),
	}
}

func (e *Encoder) Marshal(v any) ([]byte, error) {
	return toml.Marshal(v)
}

func (e *Encoder) Unmarshal(bs []byte, ret any) error {
	return toml.Unmarshal(utils.BytesTrimBackticks(bs), ret)
}

// Type returns the type of decoded values
func (e *Encoder) Type() reflect.Type {
	return e.reqType
}
