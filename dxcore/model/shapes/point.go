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

// Package shapes holds the types of the Shapes IDL module: the ShapeType
// enumeration and the Point, Rectangle and Circle records.
//
// Records are immutable value types. Their fields are set once by the
// constructor and read through accessors; Rectangle and Circle hold their
// Points by value. No geometric validation is performed: a Rectangle's
// corners may be in any order and a Circle's radius may be zero, negative
// or NaN. Callers that need such guarantees check them before
// construction.
//
// Every record renders as "Name[field=value, ...]" with fields in
// declaration order, for example
//
//	Rectangle[id=1, top_left=Point[x=0, y=0], bottom_right=Point[x=10, y=10], label=box]
package shapes

import (
	"encoding/json"
	"log/slog"
	"strconv"

	"dirpx.dev/dxidl/dxcore/errors"
	"dirpx.dev/dxidl/dxcore/model"
	"dirpx.dev/dxidl/dxcore/model/typedesc"
	"dirpx.dev/dxidl/dxcore/model/wire"
	"gopkg.in/yaml.v3"
)

// Module is the IDL module this package's types are declared in.
const Module = "Shapes"

// Point is an immutable pair of integer coordinates.
//
// Point is comparable with ==. The zero value is the origin.
type Point struct {
	x int32
	y int32
}

// pointFields is the serialized shape of Point.
type pointFields struct {
	X int32 `json:"x" yaml:"x"`
	Y int32 `json:"y" yaml:"y"`
}

var (
	_ model.Model              = (*Point)(nil)
	_ model.BinarySerializable = (*Point)(nil)
	_ model.LogValued          = (*Point)(nil)
	_ model.Comparable[Point]  = Point{}
)

// NewPoint returns the Point (x, y).
func NewPoint(x, y int32) Point {
	return Point{x: x, y: y}
}

// X returns the x coordinate.
func (p Point) X() int32 {
	return p.x
}

// Y returns the y coordinate.
func (p Point) Y() int32 {
	return p.y
}

// String returns "Point[x=<x>, y=<y>]".
func (p Point) String() string {
	return "Point[x=" + strconv.FormatInt(int64(p.x), 10) +
		", y=" + strconv.FormatInt(int64(p.y), 10) + "]"
}

// Redacted returns String().
func (p Point) Redacted() string {
	return p.String()
}

// LogValue implements slog.LogValuer.
func (p Point) LogValue() slog.Value {
	return slog.StringValue(p.Redacted())
}

// TypeName returns "Point".
func (p Point) TypeName() string {
	return "Point"
}

// IsZero reports whether p is the origin.
func (p Point) IsZero() bool {
	return p == Point{}
}

// Equal reports whether p and other have the same coordinates.
func (p Point) Equal(other Point) bool {
	return p == other
}

// Validate always returns nil: every coordinate pair is a valid Point.
func (p Point) Validate() error {
	return nil
}

// Describe returns the type descriptor of Point.
func (Point) Describe() typedesc.Descriptor {
	return typedesc.Struct(Module, "Point",
		typedesc.Field("x", typedesc.Int32Type()),
		typedesc.Field("y", typedesc.Int32Type()),
	)
}

func (p Point) fields() pointFields {
	return pointFields{X: p.x, Y: p.y}
}

func (f pointFields) point() Point {
	return Point{x: f.X, y: f.Y}
}

// MarshalJSON encodes p as {"x":..,"y":..}.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.fields())
}

// UnmarshalJSON decodes {"x":..,"y":..}. Absent members keep their
// current value. On failure p is left unchanged.
func (p *Point) UnmarshalJSON(data []byte) error {
	f := p.fields()
	if err := json.Unmarshal(data, &f); err != nil {
		return &errors.UnmarshalError{Type: p.TypeName(), Data: data, Reason: err.Error()}
	}
	*p = f.point()
	return nil
}

// MarshalYAML encodes p as a mapping with keys x and y.
func (p Point) MarshalYAML() (interface{}, error) {
	return p.fields(), nil
}

// UnmarshalYAML decodes a mapping with keys x and y. On failure p is left
// unchanged.
func (p *Point) UnmarshalYAML(node *yaml.Node) error {
	f := p.fields()
	if err := node.Decode(&f); err != nil {
		return &errors.UnmarshalError{Type: p.TypeName(), Data: []byte(node.Value), Reason: err.Error()}
	}
	*p = f.point()
	return nil
}

// EncodeWire writes x then y.
func (p Point) EncodeWire(e *wire.Encoder) {
	e.PutInt32(p.x)
	e.PutInt32(p.y)
}

// DecodeWire reads x then y.
func (p *Point) DecodeWire(d *wire.Decoder) {
	p.x = d.Int32()
	p.y = d.Int32()
}

// MarshalBinary returns the 8-byte little-endian form of p.
func (p Point) MarshalBinary() ([]byte, error) {
	return wire.Marshal(p)
}

// UnmarshalBinary decodes the 8-byte little-endian form of a Point. On
// failure p is left unchanged.
func (p *Point) UnmarshalBinary(data []byte) error {
	var parsed Point
	if err := wire.Unmarshal(data, p.TypeName(), &parsed); err != nil {
		return err
	}
	*p = parsed
	return nil
}
