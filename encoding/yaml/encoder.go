package yaml

import (
	"reflect"

	"github.com/effective-security/interviewsim/utils"
	"gopkg.in/yaml.v3"
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
	return yaml.Marshal(v)
}

func (e *Encoder) Unmarshal(bs []byte, ret any) error {
	return yaml.Unmarshal(utils.BytesTrimBackticks(bs), ret)
}

// Type returns the type of decoded values
func (e *Encoder) Type() reflect.Type {
	return e.reqType
}
