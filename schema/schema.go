package schema

import (
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"
	"github.com/effective-security/interviewsim/utils"
	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var (
	cache   = make(map[reflect.Type]*Schema)
	cacheMu sync.RWMutex
)

// Schema is the JSON schema of a tool input type
type Schema struct {
	*jsonschema.Schema
	// Parameters is the top level object definition with resolved references,
	// as expected in a tool parameters declaration.
	Parameters *jsonschema.Schema
}

// New returns the schema for the given type
func New(t reflect.Type) (*Schema, error) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	cacheMu.RLock()
	s, ok := cache[t]
	cacheMu.RUnlock()
	if ok {
		return s, nil
	}

	s, err := build(t)
	if err != nil {
		return nil, err
	}

	cacheMu.Lock()
	cache[t] = s
	cacheMu.Unlock()
	return s, nil
}

// MustNew returns the schema for the given type,
// and panics if the schema can not be built.
func MustNew(t reflect.Type) *Schema {
	s, err := New(t)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) String() string {
	return utils.ToJSONIndent(s.Parameters)
}

func build(t reflect.Type) (*Schema, error) {
	if t.Kind() != reflect.Struct {
		return nil, errors.Errorf("schema requires a struct type: %s", t.String())
	}

	js := JSONSchema(t)
	params, err := ToFunctionSchema(js)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to build schema for %s", t.Name())
	}
	return &Schema{
		Schema:     js,
		Parameters: params,
	}, nil
}

// ToFunctionSchema returns the root definition of js,
// with all $defs references inlined.
func ToFunctionSchema(js *jsonschema.Schema) (*jsonschema.Schema, error) {
	rootID := strings.TrimPrefix(js.Ref, "#/$defs/")

	defs := make(map[string]*jsonschema.Schema)
	var root *jsonschema.Schema
	for name, def := range js.Definitions {
		if name == rootID {
			root = def
		} else {
			defs[name] = def
		}
	}
	if root == nil {
		return nil, errors.Errorf("root definition not found: %s", js.Ref)
	}

	res := &jsonschema.Schema{
		Type:       root.Type,
		Properties: root.Properties,
		Required:   root.Required,
	}
	if err := resolveRefs(res.Properties, defs); err != nil {
		return nil, err
	}
	return res, nil
}

func resolveRefs(props *orderedmap.OrderedMap[string, *jsonschema.Schema], defs map[string]*jsonschema.Schema) error {
	if props == nil {
		return nil
	}
	for pair := props.Oldest(); pair != nil; pair = pair.Next() {
		if ref := pair.Value.Ref; ref != "" {
			def, ok := defs[strings.TrimPrefix(ref, "#/$defs/")]
			if !ok {
				return errors.Errorf("definition not found: %s", ref)
			}
			// keep the field's own title and description
			inlined := *def
			if pair.Value.Title != "" {
				inlined.Title = pair.Value.Title
			}
			if pair.Value.Description != "" {
				inlined.Description = pair.Value.Description
			}
			pair.Value = &inlined
		}

		child := pair.Value
		if err := resolveRefs(child.Properties, defs); err != nil {
			return err
		}
		if child.Items != nil && child.Items.Ref != "" {
			def, ok := defs[strings.TrimPrefix(child.Items.Ref, "#/$defs/")]
			if !ok {
				return errors.Errorf("definition not found: %s", child.Items.Ref)
			}
			child.Items = def
		}
	}
	return nil
}

// JSONSchema returns the JSON schema of the type.
// Definition names carry a hash of the package path,
// so types with the same name in different packages do not collide.
func JSONSchema(t reflect.Type) *jsonschema.Schema {
	r := new(jsonschema.Reflector)
	r.Namer = func(t reflect.Type) string {
		name := t.Name()
		if t.Kind() == reflect.Struct {
			fullname := t.PkgPath() + "/" + name
			name = name + "@" + strconv.FormatUint(xxhash.Sum64String(fullname), 10)
		}
		return name
	}
	return r.ReflectFromType(t)
}
