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

package shapes

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

// ShapeType names a kind of shape.
//
// The set of values is closed and each value carries a fixed integer
// code. ShapeTriangle exists as an enumerator even though this package
// has no Triangle record. The zero value is ShapeCircle and is valid.
type ShapeType int32

const (
	// ShapeCircle identifies a Circle. Code 0.
	ShapeCircle ShapeType = 0

	// ShapeRectangle identifies a Rectangle. Code 1.
	ShapeRectangle ShapeType = 1

	// ShapeTriangle identifies a triangle. Code 2.
	ShapeTriangle ShapeType = 2
)

const (
	// ShapeCircleStr is the string representation of ShapeCircle.
	ShapeCircleStr = "circle"

	// ShapeRectangleStr is the string representation of ShapeRectangle.
	ShapeRectangleStr = "rectangle"

	// ShapeTriangleStr is the string representation of ShapeTriangle.
	ShapeTriangleStr = "triangle"
)

// ParseShapeType parses a shape type name. The input is trimmed and
// lowercased; both "circle" and the IDL spelling "circle_type" are
// accepted.
func ParseShapeType(s string) (ShapeType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case ShapeCircleStr, "circle_type":
		return ShapeCircle, nil
	case ShapeRectangleStr, "rectangle_type":
		return ShapeRectangle, nil
	case ShapeTriangleStr, "triangle_type":
		return ShapeTriangle, nil
	default:
		return ShapeCircle, &errors.ParseError{Type: "ShapeType", Value: s}
	}
}

// ShapeTypeFromCode returns the ShapeType whose integer code is code.
func ShapeTypeFromCode(code int32) (ShapeType, error) {
	st := ShapeType(code)
	if st.Validate() != nil {
		return ShapeCircle, &errors.ParseError{Type: "ShapeType", Value: strconv.FormatInt(int64(code), 10)}
	}
	return st, nil
}

var (
	_ model.Model              = (*ShapeType)(nil)
	_ model.BinarySerializable = (*ShapeType)(nil)
	_ model.LogValued          = (*ShapeType)(nil)
)

// Code returns the fixed integer code of st.
func (st ShapeType) Code() int32 {
	return int32(st)
}

// String returns the lowercase name of st, or "ShapeType(N)" for values
// outside the defined set.
func (st ShapeType) String() string {
	switch st {
	case ShapeCircle:
		return ShapeCircleStr
	case ShapeRectangle:
		return ShapeRectangleStr
	case ShapeTriangle:
		return ShapeTriangleStr
	default:
		return fmt.Sprintf("ShapeType(%d)", int32(st))
	}
}

// Redacted returns String().
func (st ShapeType) Redacted() string {
	return st.String()
}

// LogValue implements slog.LogValuer.
func (st ShapeType) LogValue() slog.Value {
	return slog.StringValue(st.Redacted())
}

// TypeName returns "ShapeType".
func (st ShapeType) TypeName() string {
	return "ShapeType"
}

// IsZero reports whether st is ShapeCircle.
func (st ShapeType) IsZero() bool {
	return st == ShapeCircle
}

// Equal reports whether st and other are the same value.
func (st ShapeType) Equal(other ShapeType) bool {
	return st == other
}

// Validate returns an error if st is not one of the defined constants.
func (st ShapeType) Validate() error {
	switch st {
	case ShapeCircle, ShapeRectangle, ShapeTriangle:
		return nil
	default:
		return &errors.ValidationError{
			Type:   st.TypeName(),
			Reason: fmt.Sprintf("value %d is not a known code (valid range: 0-%d)", int32(st), int32(ShapeTriangle)),
			Value:  int32(st),
		}
	}
}

// Describe returns the type descriptor of ShapeType.
func (ShapeType) Describe() typedesc.Descriptor {
	return typedesc.Enum(Module, "ShapeType",
		typedesc.Enumerator{Name: ShapeCircleStr, Value: ShapeCircle.Code()},
		typedesc.Enumerator{Name: ShapeRectangleStr, Value: ShapeRectangle.Code()},
		typedesc.Enumerator{Name: ShapeTriangleStr, Value: ShapeTriangle.Code()},
	)
}

// MarshalJSON encodes st as its name.
func (st ShapeType) MarshalJSON() ([]byte, error) {
	if err := st.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: st.TypeName(), Value: int(st)}
	}
	return json.Marshal(st.String())
}

// UnmarshalJSON decodes a shape type name or integer code. On failure st
// is left unchanged.
func (st *ShapeType) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	parsed, err := parseShapeTypeJSON(data)
	if err != nil {
		return &errors.UnmarshalError{Type: st.TypeName(), Data: data, Reason: err.Error()}
	}
	*st = parsed
	return nil
}

func parseShapeTypeJSON(data []byte) (ShapeType, error) {
	var code int32
	if err := json.Unmarshal(data, &code); err == nil {
		return ShapeTypeFromCode(code)
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return ShapeCircle, err
	}
	return ParseShapeType(str)
}

// MarshalYAML encodes st as its name.
func (st ShapeType) MarshalYAML() (interface{}, error) {
	if err := st.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: st.TypeName(), Value: int(st)}
	}
	return st.String(), nil
}

// UnmarshalYAML decodes a shape type name or integer code. On failure st
// is left unchanged.
func (st *ShapeType) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := parseShapeTypeYAML(node)
	if err != nil {
		return &errors.UnmarshalError{Type: st.TypeName(), Data: []byte(node.Value), Reason: err.Error()}
	}
	*st = parsed
	return nil
}

func parseShapeTypeYAML(node *yaml.Node) (ShapeType, error) {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!int" {
		var code int32
		if err := node.Decode(&code); err != nil {
			return ShapeCircle, err
		}
		return ShapeTypeFromCode(code)
	}
	var str string
	if err := node.Decode(&str); err != nil {
		return ShapeCircle, err
	}
	return ParseShapeType(str)
}

// EncodeWire writes the integer code of st.
func (st ShapeType) EncodeWire(e *wire.Encoder) {
	e.PutInt32(st.Code())
}

// DecodeWire reads an integer code and fails the decoder if the code is
// unknown.
func (st *ShapeType) DecodeWire(d *wire.Decoder) {
	start := d.Offset()
	code := d.Int32()
	if d.Err() != nil {
		return
	}
	parsed, err := ShapeTypeFromCode(code)
	if err != nil {
		d.Fail(start, "unknown ShapeType code %d", code)
		return
	}
	*st = parsed
}

// MarshalBinary encodes st as a little-endian int32 code.
func (st ShapeType) MarshalBinary() ([]byte, error) {
	if err := st.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: st.TypeName(), Value: int(st)}
	}
	return wire.Marshal(st)
}

// UnmarshalBinary decodes a little-endian int32 code. On failure st is
// left unchanged.
func (st *ShapeType) UnmarshalBinary(data []byte) error {
	var parsed ShapeType
	if err := wire.Unmarshal(data, st.TypeName(), &parsed); err != nil {
		return err
	}
	*st = parsed
	return nil
}
