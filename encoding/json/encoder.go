package json

import (
	"encoding/json"
	"reflect"

	"github.com/bububa/ljson"
	"github.com/effective-security/interviewsim/schema"
	"github.com/effective-security/interviewsim/utils"
)

// Encoder encodes JSON, and decodes JSON leniently
type Encoder struct {
	schema *schema.Schema
}

func NewEncoder(req any) (*Encoder, error) {
	s, err := schema.New(reflect.TypeOf(req))
	if err != nil {
		return nil, err
	}
	return &Encoder{
		schema: s,
	}, nil
}

func (e *Encoder) Marshal(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "\t")
}

// Unmarshal decodes the JSON found in bs,
// ignoring the text and code fences around it.
func (e *Encoder) Unmarshal(bs []byte, ret any) error {
	data := utils.CleanJSON(utils.BytesTrimBackticks(bs))
	return ljson.Unmarshal(data, ret)
}

func (e *Encoder) Schema() *schema.Schema {
	return e.schema
}
