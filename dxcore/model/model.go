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

// Package model defines the contracts shared by every dxidl value type.
//
// The value types in this module (Point, Rectangle, Circle, InnerStruct,
// StatusCode, ShapeType) are plain immutable records generated from IDL
// definitions. They carry no behavior beyond field storage, a derived
// textual form and serialization. The Model interface captures exactly
// that surface: validation (Validatable), text serialization to JSON and
// YAML (Serializable), a log-safe textual form (Loggable), a canonical
// type name (Identifiable) and zero-value detection (ZeroCheckable).
//
// Types that additionally have a binary wire form implement
// BinarySerializable. Generic helpers in this package (ValidateAll,
// ToJSON, ToBinary, Clone, Equal, ...) are constrained by Value, the part
// of Model a value type provides without a pointer receiver, so they
// accept Point or StatusCode directly.
//
// All model types in dxidl are immutable value types. Their fields are
// unexported and only reachable through accessors, so values are safe for
// unrestricted concurrent reads. Unmarshal methods mutate their receiver
// and MUST NOT race with readers of the same variable.
package model

import (
	"encoding"
	"encoding/json"
	"log/slog"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all fundamental contracts required
// for dxidl value types.
//
// Implementations MUST satisfy all embedded interfaces. Model values are
// treated as immutable; methods other than the Unmarshal family MUST NOT
// mutate the receiver.
//
// Because UnmarshalJSON, UnmarshalYAML and UnmarshalBinary need a pointer
// receiver, it is the pointer type that implements Model. The value type
// implements Value, and that is what the generic helpers in this package
// accept. Implementations SHOULD assert both halves at compile time:
//
//	var (
//		_ model.Model     = (*Point)(nil)
//		_ model.LogValued = (*Point)(nil)
//	)
//
// A Model MUST round-trip through every serialization it offers: JSON,
// YAML and, for BinarySerializable types, the binary form. The decoded
// value MUST be equal to the original as reported by Equal, except where
// a float component is NaN, which never compares equal to itself.
//
// Example:
//
//	var p shapes.Point
//	if err := json.Unmarshal([]byte(`{"x":1,"y":2}`), &p); err != nil {
//		return err
//	}
//	fmt.Println(p)
//	// Output: Point[x=1, y=2]
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that check their own state.
//
// Validate MUST be fast, deterministic and free of side effects. For the
// record types of this module every combination of field values is
// accepted, so their Validate returns nil; geometric plausibility (for
// example a non-negative radius) is the caller's concern. Enum-like types
// reject values outside their closed set.
type Validatable interface {
	// Validate returns nil if the value is well-formed.
	Validate() error
}

// Serializable defines the contract for JSON and YAML round trips.
//
// For every value v of an implementing type, marshaling v and
// unmarshaling the result into a fresh variable MUST yield a value equal
// to v. Field names on the wire follow the IDL member names (snake_case).
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// BinarySerializable defines the contract for the little-endian binary
// form produced by package wire.
//
// The binary form carries no type tag and no field names: the reader MUST
// know which type it is decoding. UnmarshalBinary MUST reject trailing
// bytes and MUST leave the receiver untouched on failure.
type BinarySerializable interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}

// Loggable defines the contract for textual representations.
//
// String returns the full representation. Redacted returns a form that is
// safe for production logs. None of the dxidl value types carry sensitive
// data, so both are identical for them, but callers SHOULD still log
// Redacted so that the choice stays explicit.
type Loggable interface {
	// Redacted returns a representation safe for production logs.
	Redacted() string

	// String returns the full representation.
	String() string
}

// Identifiable defines the contract for types that report a stable,
// human-readable type name such as "Circle" or "StatusCode".
type Identifiable interface {
	// TypeName returns the canonical name of the type.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can tell whether they
// hold their zero value.
type ZeroCheckable interface {
	// IsZero reports whether the value equals the type's zero value.
	IsZero() bool
}

// Comparable defines structural equality for types that cannot rely on
// the == operator, for example because they hold a slice.
//
// Equal MUST be reflexive for values without NaN components, symmetric,
// and MUST report false as soon as any single field differs.
type Comparable[T any] interface {
	// Equal reports whether the receiver and other hold the same fields.
	Equal(other T) bool
}

// Cloneable defines the contract for types that can produce an
// independent deep copy of themselves.
type Cloneable[T any] interface {
	// Clone returns a copy that shares no mutable state with the receiver.
	Clone() T
}

// Value is the read-only half of Model: the methods a value type
// implements on its value receiver. Every Model is a Value, and for dxidl
// types T is a Value whenever *T is a Model.
//
// The generic helpers (ValidateAll, FilterZero, MustValidate, SafeString,
// LogAttr, ToJSON, ToYAML, ToBinary, FromJSON, FromYAML, FromBinary, Clone
// and Equal) are constrained by Value rather than Model so that they
// operate on plain values:
//
//	points := []shapes.Point{shapes.NewPoint(1, 2), {}}
//	nonZero := model.FilterZero(points) // []shapes.Point{Point[x=1, y=2]}
//
// Helpers that decode (FromJSON, FromYAML, FromBinary) take a *T and rely
// on *T implementing the matching unmarshaler; they MUST NOT be used with
// a T whose pointer type is not a Model.
type Value interface {
	Validatable
	Loggable
	Identifiable
	ZeroCheckable
}

// LogValued is implemented by model types that render themselves into
// slog records. Every dxidl value type implements it by returning its
// Redacted form.
type LogValued interface {
	Model
	slog.LogValuer
}
