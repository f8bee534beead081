/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package typedesc

import (
	"encoding/json"
	"fmt"
	"math"

	"dirpx.dev/dxidl/dxcore/errors"
	"github.com/google/jsonschema-go/jsonschema"
)

// SchemaDialect is the JSON Schema draft emitted by JSONSchema.
const SchemaDialect = "https://json-schema.org/draft/2020-12/schema"

// JSONSchema returns the JSON Schema of the JSON form of the type d
// describes.
//
// Structs become closed objects whose members are all required. Named
// types reached through members are emitted once under $defs, keyed
// "Module.Name", and referenced with $ref. Enums are strings restricted
// to their enumerator names, matching how enum values marshal to JSON.
// int32 members carry their range as minimum and maximum.
func JSONSchema(d Descriptor) (*jsonschema.Schema, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	b := &schemaBuilder{defs: make(map[string]*jsonschema.Schema)}
	root := b.inline(d)
	root.Schema = SchemaDialect
	root.Title = d.QualifiedName()
	if len(b.defs) > 0 {
		root.Defs = b.defs
	}
	return root, nil
}

// ValidateJSON checks data against the JSON Schema of d.
//
// Schema violations are reported as *errors.ValidationError and malformed
// JSON as *errors.UnmarshalError.
func ValidateJSON(d Descriptor, data []byte) error {
	s, err := JSONSchema(d)
	if err != nil {
		return err
	}
	resolved, err := s.Resolve(nil)
	if err != nil {
		return fmt.Errorf("resolve schema for %s: %w", d.QualifiedName(), err)
	}

	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return &errors.UnmarshalError{Type: d.QualifiedName(), Data: data, Reason: err.Error()}
	}
	if err := resolved.Validate(instance); err != nil {
		return &errors.ValidationError{Type: d.QualifiedName(), Reason: err.Error()}
	}
	return nil
}

type schemaBuilder struct {
	defs map[string]*jsonschema.Schema
}

func defKey(d Descriptor) string {
	if d.Module == "" {
		return d.Name
	}
	return d.Module + "." + d.Name
}

// ref returns a $ref to d's definition, emitting the definition on first
// use. Non-named descriptors are inlined.
func (b *schemaBuilder) ref(d Descriptor) *jsonschema.Schema {
	if !d.Kind.Named() {
		return b.inline(d)
	}
	key := defKey(d)
	if _, ok := b.defs[key]; !ok {
		// Reserve the key first so recursive types terminate.
		b.defs[key] = nil
		b.defs[key] = b.inline(d)
	}
	return &jsonschema.Schema{Ref: "#/$defs/" + key}
}

func (b *schemaBuilder) inline(d Descriptor) *jsonschema.Schema {
	switch d.Kind {
	case KindBoolean:
		return &jsonschema.Schema{Type: "boolean"}
	case KindOctet:
		return intRange(0, math.MaxUint8)
	case KindInt16:
		return intRange(math.MinInt16, math.MaxInt16)
	case KindInt32:
		return intRange(math.MinInt32, math.MaxInt32)
	case KindInt64, KindBitmask:
		return &jsonschema.Schema{Type: "integer"}
	case KindFloat32, KindFloat64:
		return &jsonschema.Schema{Type: "number"}
	case KindString:
		return &jsonschema.Schema{Type: "string"}
	case KindSequence:
		return &jsonschema.Schema{Type: "array", Items: b.ref(*d.Elem)}
	case KindEnum:
		values := make([]any, len(d.Enumerators))
		for i, e := range d.Enumerators {
			values[i] = e.Name
		}
		return &jsonschema.Schema{Type: "string", Enum: values}
	case KindStruct:
		s := &jsonschema.Schema{
			Type:                 "object",
			Properties:           make(map[string]*jsonschema.Schema, len(d.Members)),
			Required:             d.MemberNames(),
			AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
		}
		for _, m := range d.Members {
			s.Properties[m.Name] = b.ref(m.Type)
		}
		return s
	default:
		// Unions are described by name only; accept any JSON value.
		return &jsonschema.Schema{}
	}
}

func intRange(lo, hi float64) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "integer", Minimum: &lo, Maximum: &hi}
}
