package encoding

import (
	"github.com/cockroachdb/errors"
	jsonenc "github.com/effective-security/interviewsim/encoding/json"
	tomlenc "github.com/effective-security/interviewsim/encoding/toml"
	yamlenc "github.com/effective-security/interviewsim/encoding/yaml"
)

// Encoder encodes tool results and decodes tool arguments
type Encoder interface {
	Marshal(v any) ([]byte, error)
	Unmarshal([]byte, any) error
}

type Mode = string

const (
	ModeJSON Mode = "json"
	ModeYAML Mode = "yaml"
	ModeTOML Mode = "toml"
)

// ModeDefault is the default mode for the encoder.
// Allow to override in apps
var ModeDefault = ModeJSON

// Modes lists the supported modes
var Modes = []Mode{ModeJSON, ModeYAML, ModeTOML}

// PredefinedEncoder returns the encoder for the mode,
// req is a value of the type to be decoded.
func PredefinedEncoder(mode Mode, req any) (Encoder, error) {
	switch mode {
	case ModeJSON:
		return jsonenc.NewEncoder(req)
	case ModeYAML:
		return yamlenc.NewEncoder(req), nil
	case ModeTOML:
		return tomlenc.NewEncoder(req), nil
	default:
		return nil, errors.Errorf("no predefined encoder: %q", mode)
	}
}

var (
	_ Encoder = (*jsonenc.Encoder)(nil)
	_ Encoder = (*tomlenc.Encoder)(nil)
	_ Encoder = (*yamlenc.Encoder)(nil)
)
