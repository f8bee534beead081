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

// Package commonenums holds the enumerations of the CommonEnums IDL
// module.
package commonenums

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"dirpx.dev/dxidl/dxcore/errors"
	"dirpx.dev/dxidl/dxcore/model"
	"dirpx.dev/dxidl/dxcore/model/typedesc"
	"dirpx.dev/dxidl/dxcore/model/wire"
	"gopkg.in/yaml.v3"
)

// Module is the IDL module this package's types are declared in.
const Module = "CommonEnums"

// StatusCode is the outcome classification shared across IDL modules.
//
// The set of values is closed. Each value carries a fixed integer code,
// returned by Code, which is what the binary form stores. JSON and YAML
// use the lowercase name instead ("ok", "error", "warning") but also
// accept the integer code on input.
//
// The zero value is StatusOK and is valid.
type StatusCode int32

const (
	// StatusOK reports success. Code 0.
	StatusOK StatusCode = 0

	// StatusError reports failure. Code 1.
	StatusError StatusCode = 1

	// StatusWarning reports success with caveats. Code 2.
	StatusWarning StatusCode = 2
)

const (
	// StatusOKStr is the string representation of StatusOK.
	StatusOKStr = "ok"

	// StatusErrorStr is the string representation of StatusError.
	StatusErrorStr = "error"

	// StatusWarningStr is the string representation of StatusWarning.
	StatusWarningStr = "warning"
)

// ParseStatusCode parses a status name.
//
// The input is trimmed and lowercased, then matched against the canonical
// names ("ok", "error", "warning") and the IDL enumerator spellings
// ("status_ok", "status_error", "status_warning").
func ParseStatusCode(s string) (StatusCode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case StatusOKStr, "status_ok":
		return StatusOK, nil
	case StatusErrorStr, "status_error":
		return StatusError, nil
	case StatusWarningStr, "status_warning":
		return StatusWarning, nil
	default:
		return StatusOK, &errors.ParseError{Type: "StatusCode", Value: s}
	}
}

// StatusCodeFromCode returns the StatusCode whose integer code is code.
func StatusCodeFromCode(code int32) (StatusCode, error) {
	sc := StatusCode(code)
	if sc.Validate() != nil {
		return StatusOK, &errors.ParseError{Type: "StatusCode", Value: strconv.FormatInt(int64(code), 10)}
	}
	return sc, nil
}

// Compile-time assertions.
var (
	_ model.Model              = (*StatusCode)(nil)
	_ model.BinarySerializable = (*StatusCode)(nil)
	_ model.LogValued          = (*StatusCode)(nil)
)

// Code returns the fixed integer code of sc.
func (sc StatusCode) Code() int32 {
	return int32(sc)
}

// String returns the lowercase name of sc, or "StatusCode(N)" for values
// outside the defined set.
func (sc StatusCode) String() string {
	switch sc {
	case StatusOK:
		return StatusOKStr
	case StatusError:
		return StatusErrorStr
	case StatusWarning:
		return StatusWarningStr
	default:
		return fmt.Sprintf("StatusCode(%d)", int32(sc))
	}
}

// Redacted returns String(); status codes are not sensitive.
func (sc StatusCode) Redacted() string {
	return sc.String()
}

// LogValue implements slog.LogValuer.
func (sc StatusCode) LogValue() slog.Value {
	return slog.StringValue(sc.Redacted())
}

// TypeName returns "StatusCode".
func (sc StatusCode) TypeName() string {
	return "StatusCode"
}

// IsZero reports whether sc is StatusOK.
func (sc StatusCode) IsZero() bool {
	return sc == StatusOK
}

// Equal reports whether sc and other are the same value.
func (sc StatusCode) Equal(other StatusCode) bool {
	return sc == other
}

// Validate returns an error if sc is not one of the defined constants.
// This can only happen through an unchecked conversion such as
// StatusCode(7).
func (sc StatusCode) Validate() error {
	switch sc {
	case StatusOK, StatusError, StatusWarning:
		return nil
	default:
		return &errors.ValidationError{
			Type:   sc.TypeName(),
			Reason: fmt.Sprintf("value %d is not a known code (valid range: 0-%d)", int32(sc), int32(StatusWarning)),
			Value:  int32(sc),
		}
	}
}

// Describe returns the type descriptor of StatusCode.
func (StatusCode) Describe() typedesc.Descriptor {
	return typedesc.Enum(Module, "StatusCode",
		typedesc.Enumerator{Name: StatusOKStr, Value: StatusOK.Code()},
		typedesc.Enumerator{Name: StatusErrorStr, Value: StatusError.Code()},
		typedesc.Enumerator{Name: StatusWarningStr, Value: StatusWarning.Code()},
	)
}

// MarshalJSON encodes sc as its name.
func (sc StatusCode) MarshalJSON() ([]byte, error) {
	if err := sc.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: sc.TypeName(), Value: int(sc)}
	}
	return json.Marshal(sc.String())
}

// UnmarshalJSON decodes a status name or integer code. On failure sc is
// left unchanged.
func (sc *StatusCode) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	parsed, err := parseStatusJSON(data)
	if err != nil {
		return &errors.UnmarshalError{Type: sc.TypeName(), Data: data, Reason: err.Error()}
	}
	*sc = parsed
	return nil
}

func parseStatusJSON(data []byte) (StatusCode, error) {
	var code int32
	if err := json.Unmarshal(data, &code); err == nil {
		return StatusCodeFromCode(code)
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return StatusOK, err
	}
	return ParseStatusCode(str)
}

// MarshalYAML encodes sc as its name.
func (sc StatusCode) MarshalYAML() (interface{}, error) {
	if err := sc.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: sc.TypeName(), Value: int(sc)}
	}
	return sc.String(), nil
}

// UnmarshalYAML decodes a status name or integer code. On failure sc is
// left unchanged.
func (sc *StatusCode) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := parseStatusYAML(node)
	if err != nil {
		return &errors.UnmarshalError{Type: sc.TypeName(), Data: []byte(node.Value), Reason: err.Error()}
	}
	*sc = parsed
	return nil
}

func parseStatusYAML(node *yaml.Node) (StatusCode, error) {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!int" {
		var code int32
		if err := node.Decode(&code); err != nil {
			return StatusOK, err
		}
		return StatusCodeFromCode(code)
	}
	var str string
	if err := node.Decode(&str); err != nil {
		return StatusOK, err
	}
	return ParseStatusCode(str)
}

// EncodeWire writes the integer code of sc.
func (sc StatusCode) EncodeWire(e *wire.Encoder) {
	e.PutInt32(sc.Code())
}

// DecodeWire reads an integer code and fails the decoder if the code is
// unknown.
func (sc *StatusCode) DecodeWire(d *wire.Decoder) {
	start := d.Offset()
	code := d.Int32()
	if d.Err() != nil {
		return
	}
	parsed, err := StatusCodeFromCode(code)
	if err != nil {
		d.Fail(start, "unknown StatusCode code %d", code)
		return
	}
	*sc = parsed
}

// MarshalBinary encodes sc as a little-endian int32 code.
func (sc StatusCode) MarshalBinary() ([]byte, error) {
	if err := sc.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: sc.TypeName(), Value: int(sc)}
	}
	return wire.Marshal(sc)
}

// UnmarshalBinary decodes a little-endian int32 code. On failure sc is
// left unchanged.
func (sc *StatusCode) UnmarshalBinary(data []byte) error {
	var parsed StatusCode
	if err := wire.Unmarshal(data, sc.TypeName(), &parsed); err != nil {
		return err
	}
	*sc = parsed
	return nil
}
