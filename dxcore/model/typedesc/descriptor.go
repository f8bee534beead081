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

// Package typedesc describes the shape of dxidl value types at runtime.
//
// Every value type exposes Describe() returning a Descriptor: its IDL
// module and name, its Kind, and either its members (structs), its
// enumerators (enums) or its element type (sequences). Descriptors are
// plain data. They can be rendered, validated, serialized to JSON or
// YAML, and turned into a JSON Schema with JSONSchema.
//
// Member order is significant: it is the declaration order, which is also
// the order of fields in the binary form and in String().
package typedesc

import (
	"fmt"
	"strings"

	"dirpx.dev/dxidl/dxcore/errors"
)

// Descriptor describes one IDL type.
type Descriptor struct {
	// Name is the unqualified type name, e.g. "Point". Empty for
	// primitives and sequences.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Module is the IDL module the type is declared in, e.g. "Shapes".
	Module string `json:"module,omitempty" yaml:"module,omitempty"`

	// Kind classifies the descriptor.
	Kind Kind `json:"kind" yaml:"kind"`

	// Members lists struct fields in declaration order.
	Members []Member `json:"members,omitempty" yaml:"members,omitempty"`

	// Enumerators lists enum values in declaration order.
	Enumerators []Enumerator `json:"enumerators,omitempty" yaml:"enumerators,omitempty"`

	// Elem describes the element type of a sequence.
	Elem *Descriptor `json:"elem,omitempty" yaml:"elem,omitempty"`
}

// Member is one field of a struct descriptor.
type Member struct {
	// Name is the IDL member name, e.g. "top_left".
	Name string `json:"name" yaml:"name"`

	// Type describes the member's type.
	Type Descriptor `json:"type" yaml:"type"`
}

// Enumerator is one value of an enum descriptor.
type Enumerator struct {
	// Name is the canonical lowercase name used in JSON and YAML.
	Name string `json:"name" yaml:"name"`

	// Value is the fixed integer code used in the binary form.
	Value int32 `json:"value" yaml:"value"`
}

// Primitive returns the descriptor of a primitive kind.
func Primitive(k Kind) Descriptor {
	return Descriptor{Kind: k}
}

// Int32Type returns the descriptor of an IDL long.
func Int32Type() Descriptor { return Primitive(KindInt32) }

// Float64Type returns the descriptor of an IDL double.
func Float64Type() Descriptor { return Primitive(KindFloat64) }

// StringType returns the descriptor of an IDL string.
func StringType() Descriptor { return Primitive(KindString) }

// SequenceOf returns the descriptor of an unbounded sequence of elem.
func SequenceOf(elem Descriptor) Descriptor {
	return Descriptor{Kind: KindSequence, Elem: &elem}
}

// Field pairs a member name with its type.
func Field(name string, t Descriptor) Member {
	return Member{Name: name, Type: t}
}

// Struct returns the descriptor of a struct declared in module.
func Struct(module, name string, members ...Member) Descriptor {
	return Descriptor{Name: name, Module: module, Kind: KindStruct, Members: members}
}

// Enum returns the descriptor of an enum declared in module.
func Enum(module, name string, enumerators ...Enumerator) Descriptor {
	return Descriptor{Name: name, Module: module, Kind: KindEnum, Enumerators: enumerators}
}

// QualifiedName returns "Module::Name" for named types, "sequence<elem>"
// for sequences and the kind name for primitives.
func (d Descriptor) QualifiedName() string {
	switch {
	case d.Kind == KindSequence && d.Elem != nil:
		return "sequence<" + d.Elem.QualifiedName() + ">"
	case d.Name != "" && d.Module != "":
		return d.Module + "::" + d.Name
	case d.Name != "":
		return d.Name
	default:
		return d.Kind.String()
	}
}

// String renders the descriptor in a compact IDL-like form:
//
//	struct Shapes::Point{x int32, y int32}
//	enum CommonEnums::StatusCode{ok=0, error=1, warning=2}
//	sequence<float64>
func (d Descriptor) String() string {
	var b strings.Builder
	switch d.Kind {
	case KindStruct:
		b.WriteString("struct ")
		b.WriteString(d.QualifiedName())
		b.WriteByte('{')
		for i, m := range d.Members {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(m.Name)
			b.WriteByte(' ')
			b.WriteString(m.Type.QualifiedName())
		}
		b.WriteByte('}')
	case KindEnum:
		b.WriteString("enum ")
		b.WriteString(d.QualifiedName())
		b.WriteByte('{')
		for i, e := range d.Enumerators {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%d", e.Name, e.Value)
		}
		b.WriteByte('}')
	default:
		b.WriteString(d.QualifiedName())
	}
	return b.String()
}

// Member returns the member called name.
func (d Descriptor) Member(name string) (Member, bool) {
	for _, m := range d.Members {
		if m.Name == name {
			return m, true
		}
	}
	return Member{}, false
}

// MemberNames returns the member names in declaration order.
func (d Descriptor) MemberNames() []string {
	names := make([]string, len(d.Members))
	for i, m := range d.Members {
		names[i] = m.Name
	}
	return names
}

// Validate checks that the descriptor is structurally consistent:
//   - the kind is known and not KindUnknown
//   - named kinds carry a Name
//   - structs have at least one member, with unique non-empty names and
//     valid member types
//   - enums have at least one enumerator, with unique names and values
//   - sequences have a valid element type
//   - primitives carry no members, enumerators or element
func (d Descriptor) Validate() error {
	typ := d.QualifiedName()

	if err := d.Kind.Validate(); err != nil {
		return err
	}
	if d.Kind == KindUnknown {
		return &errors.ValidationError{Type: typ, Field: "Kind", Reason: "must not be unknown"}
	}
	if d.Kind.Named() && d.Name == "" {
		return &errors.ValidationError{Type: typ, Field: "Name", Reason: "must not be empty for " + d.Kind.String()}
	}

	switch d.Kind {
	case KindStruct:
		if len(d.Members) == 0 {
			return &errors.ValidationError{Type: typ, Field: "Members", Reason: "must not be empty"}
		}
		seen := make(map[string]struct{}, len(d.Members))
		for i, m := range d.Members {
			if m.Name == "" {
				return &errors.ValidationError{Type: typ, Field: "Members", Reason: fmt.Sprintf("member %d has no name", i)}
			}
			if _, dup := seen[m.Name]; dup {
				return &errors.ValidationError{Type: typ, Field: "Members", Reason: "duplicate member " + m.Name, Value: m.Name}
			}
			seen[m.Name] = struct{}{}
			if err := m.Type.Validate(); err != nil {
				return fmt.Errorf("%s.%s: %w", typ, m.Name, err)
			}
		}
	case KindEnum:
		if len(d.Enumerators) == 0 {
			return &errors.ValidationError{Type: typ, Field: "Enumerators", Reason: "must not be empty"}
		}
		names := make(map[string]struct{}, len(d.Enumerators))
		values := make(map[int32]struct{}, len(d.Enumerators))
		for _, e := range d.Enumerators {
			if e.Name == "" {
				return &errors.ValidationError{Type: typ, Field: "Enumerators", Reason: fmt.Sprintf("enumerator with value %d has no name", e.Value)}
			}
			if _, dup := names[e.Name]; dup {
				return &errors.ValidationError{Type: typ, Field: "Enumerators", Reason: "duplicate name " + e.Name, Value: e.Name}
			}
			if _, dup := values[e.Value]; dup {
				return &errors.ValidationError{Type: typ, Field: "Enumerators", Reason: fmt.Sprintf("duplicate value %d", e.Value), Value: e.Value}
			}
			names[e.Name] = struct{}{}
			values[e.Value] = struct{}{}
		}
	case KindSequence:
		if d.Elem == nil {
			return &errors.ValidationError{Type: typ, Field: "Elem", Reason: "must not be nil"}
		}
		if err := d.Elem.Validate(); err != nil {
			return fmt.Errorf("%s: %w", typ, err)
		}
	default:
		if d.Kind.Primitive() && (len(d.Members) > 0 || len(d.Enumerators) > 0 || d.Elem != nil) {
			return &errors.ValidationError{Type: typ, Reason: "primitive must not have members, enumerators or element"}
		}
	}

	return nil
}
