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
	"math"
	"slices"
	"strconv"
	"strings"

	"dirpx.dev/dxidl/dxcore/errors"
	"dirpx.dev/dxidl/dxcore/model"
	"dirpx.dev/dxidl/dxcore/model/typedesc"
	"dirpx.dev/dxidl/dxcore/model/wire"
	"gopkg.in/yaml.v3"
)

// Circle is an immutable colored circle with an auxiliary ordered sequence
// of float values called points.
//
// The meaning of points is left to the consumer; Circle keeps them in the
// given order, without deduplication, and owns its copy exclusively.
// Because of the slice, Circle is not comparable with ==; use Equal.
type Circle struct {
	id     int32
	center Point
	radius float64
	color  string
	points []float64
}

type circleFields struct {
	ID     int32     `json:"id" yaml:"id"`
	Center Point     `json:"center" yaml:"center"`
	Radius float64   `json:"radius" yaml:"radius"`
	Color  string    `json:"color" yaml:"color"`
	Points []float64 `json:"points" yaml:"points"`
}

var (
	_ model.Model              = (*Circle)(nil)
	_ model.BinarySerializable = (*Circle)(nil)
	_ model.LogValued          = (*Circle)(nil)
	_ model.Comparable[Circle] = Circle{}
	_ model.Cloneable[Circle]  = Circle{}
)

// NewCircle returns a Circle holding a copy of center and of points.
// Later changes to the caller's slice do not affect the Circle.
func NewCircle(id int32, center Point, radius float64, color string, points []float64) Circle {
	return Circle{
		id:     id,
		center: center,
		radius: radius,
		color:  color,
		points: slices.Clone(points),
	}
}

// ID returns the circle id.
func (c Circle) ID() int32 {
	return c.id
}

// Center returns the center point.
func (c Circle) Center() Point {
	return c.center
}

// Radius returns the radius as given; it may be zero or negative.
func (c Circle) Radius() float64 {
	return c.radius
}

// Color returns the color.
func (c Circle) Color() string {
	return c.color
}

// Points returns a copy of the points sequence.
func (c Circle) Points() []float64 {
	return slices.Clone(c.points)
}

// NumPoints returns the length of the points sequence.
func (c Circle) NumPoints() int {
	return len(c.points)
}

// PointAt returns the i-th element of the points sequence. It panics if i
// is out of range.
func (c Circle) PointAt(i int) float64 {
	return c.points[i]
}

// String returns
//
//	Circle[id=<id>, center=<Point>, radius=<radius>, color=<color>, points=[p0, p1, ...]]
//
// Floats use Java's Double.toString form: 5.0, 2.5, 1.0E21,
// NaN, Infinity. The digits are the shortest that round-trip.
func (c Circle) String() string {
	var b strings.Builder
	b.WriteString("Circle[id=")
	b.WriteString(strconv.FormatInt(int64(c.id), 10))
	b.WriteString(", center=")
	b.WriteString(c.center.String())
	b.WriteString(", radius=")
	b.WriteString(formatFloat(c.radius))
	b.WriteString(", color=")
	b.WriteString(c.color)
	b.WriteString(", points=[")
	for i, v := range c.points {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatFloat(v))
	}
	b.WriteString("]]")
	return b.String()
}

// formatFloat renders v like Java's Double.toString: plain decimal with at
// least one fractional digit when 1e-3 <= |v| < 1e7 or v is zero, and
// computerized scientific notation (d.dddE[-]n) otherwise.
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	if abs := math.Abs(v); abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	// strconv writes the exponent as e+21 or e-05.
	mant, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	n, _ := strconv.Atoi(exp)
	return mant + "E" + strconv.Itoa(n)
}

// Redacted returns String().
func (c Circle) Redacted() string {
	return c.String()
}

// LogValue implements slog.LogValuer.
func (c Circle) LogValue() slog.Value {
	return slog.StringValue(c.Redacted())
}

// TypeName returns "Circle".
func (c Circle) TypeName() string {
	return "Circle"
}

// IsZero reports whether every field holds its zero value. A nil and an
// empty points sequence are both zero.
func (c Circle) IsZero() bool {
	return c.id == 0 && c.center.IsZero() && c.radius == 0 && c.color == "" && len(c.points) == 0
}

// Equal reports whether c and other hold the same fields. Floats compare
// with ==, so a Circle holding NaN is not equal to itself. A nil and an
// empty points sequence are equal.
func (c Circle) Equal(other Circle) bool {
	return c.id == other.id &&
		c.center == other.center &&
		c.radius == other.radius &&
		c.color == other.color &&
		slices.Equal(c.points, other.points)
}

// Clone returns a copy of c that shares no memory with it.
func (c Circle) Clone() Circle {
	c.points = slices.Clone(c.points)
	return c
}

// Validate always returns nil. Circle accepts any radius and any points.
func (c Circle) Validate() error {
	return nil
}

// Describe returns the type descriptor of Circle.
func (Circle) Describe() typedesc.Descriptor {
	return typedesc.Struct(Module, "Circle",
		typedesc.Field("id", typedesc.Int32Type()),
		typedesc.Field("center", Point{}.Describe()),
		typedesc.Field("radius", typedesc.Float64Type()),
		typedesc.Field("color", typedesc.StringType()),
		typedesc.Field("points", typedesc.SequenceOf(typedesc.Float64Type())),
	)
}

func (c Circle) fields() circleFields {
	return circleFields{ID: c.id, Center: c.center, Radius: c.radius, Color: c.color, Points: c.points}
}

func (f circleFields) circle() Circle {
	return NewCircle(f.ID, f.Center, f.Radius, f.Color, f.Points)
}

// MarshalJSON encodes c as an object with keys id, center, radius, color
// and points. points is always an array, never null. A NaN or infinite
// radius or point cannot be represented in JSON and fails.
func (c Circle) MarshalJSON() ([]byte, error) {
	f := c.fields()
	if f.Points == nil {
		f.Points = []float64{}
	}
	data, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("dxidl: cannot marshal %s: %w", c.TypeName(), err)
	}
	return data, nil
}

// UnmarshalJSON decodes an object with keys id, center, radius, color and
// points. Absent members keep their current value. On failure c is left
// unchanged.
func (c *Circle) UnmarshalJSON(data []byte) error {
	f := c.fields()
	f.Points = slices.Clone(f.Points)
	if err := json.Unmarshal(data, &f); err != nil {
		return &errors.UnmarshalError{Type: c.TypeName(), Data: data, Reason: err.Error()}
	}
	*c = f.circle()
	return nil
}

// MarshalYAML encodes c as a mapping with keys id, center, radius, color
// and points.
func (c Circle) MarshalYAML() (interface{}, error) {
	f := c.fields()
	if f.Points == nil {
		f.Points = []float64{}
	}
	return f, nil
}

// UnmarshalYAML decodes a mapping with keys id, center, radius, color and
// points. On failure c is left unchanged.
func (c *Circle) UnmarshalYAML(node *yaml.Node) error {
	f := c.fields()
	f.Points = slices.Clone(f.Points)
	if err := node.Decode(&f); err != nil {
		return &errors.UnmarshalError{Type: c.TypeName(), Data: []byte(node.Value), Reason: err.Error()}
	}
	*c = f.circle()
	return nil
}

// EncodeWire writes id, center, radius, color and points in order.
func (c Circle) EncodeWire(e *wire.Encoder) {
	e.PutInt32(c.id)
	e.Put(c.center)
	e.PutFloat64(c.radius)
	e.PutString(c.color)
	e.PutFloat64s(c.points)
}

// DecodeWire reads id, center, radius, color and points in order.
func (c *Circle) DecodeWire(d *wire.Decoder) {
	c.id = d.Int32()
	d.Get(&c.center)
	c.radius = d.Float64()
	c.color = d.String()
	c.points = d.Float64s()
}

// MarshalBinary returns the little-endian binary form of c. Unlike JSON,
// the binary form carries NaN and infinite values. A color or points
// sequence longer than wire.MaxLength fails with *errors.MarshalError.
func (c Circle) MarshalBinary() ([]byte, error) {
	e := wire.NewEncoder(4 + 8 + 8 + 4 + len(c.color) + 4 + 8*len(c.points))
	e.Put(c)
	if err := e.Err(); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// UnmarshalBinary decodes the little-endian binary form of a Circle. On
// failure c is left unchanged.
func (c *Circle) UnmarshalBinary(data []byte) error {
	var parsed Circle
	if err := wire.Unmarshal(data, c.TypeName(), &parsed); err != nil {
		return err
	}
	*c = parsed
	return nil
}
