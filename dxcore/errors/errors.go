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

// Package errors provides the error carriers shared by the dxidl value
// types.
//
// The value types themselves never fail: construction, accessors and
// String are total. Errors only appear at serialization boundaries, when
// text or bytes coming from outside are turned back into values, or when
// an enum-like value outside its closed set is about to be written out.
//
// # Error Types
//
//   - ParseError
//     Returned when a textual name or a numeric code does not map to a
//     known enumerator (ParseStatusCode, ShapeTypeFromCode, ...).
//
//   - MarshalError
//     Returned when an enum-like value outside its closed set is
//     marshaled, or when a string or sequence is too long for the
//     int32 length prefix of the binary form.
//
//   - UnmarshalError
//     Returned by UnmarshalJSON / UnmarshalYAML when the payload cannot be
//     interpreted.
//
//   - ValidationError
//     Returned by Validate methods.
//
//   - DecodeError
//     Returned by the binary decoder in package wire when the input is
//     truncated, malformed or has trailing bytes.
//
// All messages share the stable "dxidl: " prefix. Callers SHOULD match on
// the concrete type with errors.As rather than on the message text.
package errors

import "strconv"

// ParseError is returned when a string or numeric code cannot be mapped
// to a strongly typed enum-like value.
//
// Type is the logical type name (for example, "StatusCode") and Value is
// the exact input that could not be interpreted. Numeric inputs are
// rendered in decimal.
type ParseError struct {
	// Type is the logical name of the type being parsed.
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// Format:
//
//	"dxidl: invalid {Type} value: {Value}"
func (e *ParseError) Error() string {
	return "dxidl: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling an enum-like value that lies
// outside the set of defined constants. It almost always indicates a
// programming error such as an unchecked conversion from an integer.
//
// The binary encoder also returns it for a string or sequence longer than
// its length prefix can hold; Type is then "string length" or "sequence
// length" and Value the offending length.
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the underlying numeric value that has no enumerator, or
	// the length that does not fit.
	Value int
}

// Error implements the error interface for MarshalError.
//
// Format:
//
//	"dxidl: cannot marshal invalid {Type} value: {Value}"
func (e *MarshalError) Error() string {
	return "dxidl: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling JSON or YAML into a value
// type fails.
//
// Data holds the raw payload. It is deliberately left out of Error() so
// that large documents do not end up in log lines; callers MAY log it
// separately.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// Format:
//
//	"dxidl: cannot unmarshal {Type}: {Reason}"
func (e *UnmarshalError) Error() string {
	return "dxidl: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned by Validate methods.
//
// The record types in this module accept every combination of field
// values, so in practice ValidationError is produced by enum-like types
// holding an out-of-range value and by malformed type descriptors.
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire value.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	Value any
}

// Error implements the error interface for ValidationError.
//
// Format:
//
//	"dxidl: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxidl: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxidl: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxidl: invalid " + e.Type + ": " + e.Reason
}

// DecodeError is returned when decoding the little-endian binary form of
// a value fails.
//
// Offset is the byte position in the input at which the failure was
// detected. Type is the logical name of the value being decoded when the
// failure happened; it is filled in by the outermost UnmarshalBinary call
// when the decoder itself does not know it.
type DecodeError struct {
	// Type is the logical name of the type being decoded.
	Type string

	// Offset is the byte offset at which decoding failed.
	Offset int

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for DecodeError.
//
// Format:
//
//	"dxidl: cannot decode {Type} at offset {Offset}: {Reason}"
//	"dxidl: cannot decode at offset {Offset}: {Reason}" (when Type is empty)
func (e *DecodeError) Error() string {
	if e.Type == "" {
		return "dxidl: cannot decode at offset " + strconv.Itoa(e.Offset) + ": " + e.Reason
	}
	return "dxidl: cannot decode " + e.Type + " at offset " + strconv.Itoa(e.Offset) + ": " + e.Reason
}
