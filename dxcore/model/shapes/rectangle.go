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
	"log/slog"
	"strconv"

	"dirpx.dev/dxidl/dxcore/errors"
	"dirpx.dev/dxidl/dxcore/model"
	"dirpx.dev/dxidl/dxcore/model/typedesc"
	"dirpx.dev/dxidl/dxcore/model/wire"
	"gopkg.in/yaml.v3"
)

// Rectangle is an immutable labeled rectangle given by two corners.
//
// The corners are stored as given. Nothing checks that TopLeft is above
// and to the left of BottomRight. Rectangle is comparable with ==.
type Rectangle struct {
	id          int32
	topLeft     Point
	bottomRight Point
	label       string
}

type rectangleFields struct {
	ID          int32  `json:"id" yaml:"id"`
	TopLeft     Point  `json:"top_left" yaml:"top_left"`
	BottomRight Point  `json:"bottom_right" yaml:"bottom_right"`
	Label       string `json:"label" yaml:"label"`
}

var (
	_ model.Model                 = (*Rectangle)(nil)
	_ model.BinarySerializable    = (*Rectangle)(nil)
	_ model.LogValued             = (*Rectangle)(nil)
	_ model.Comparable[Rectangle] = Rectangle{}
)

// NewRectangle returns a Rectangle holding copies of topLeft and
// bottomRight.
func NewRectangle(id int32, topLeft, bottomRight Point, label string) Rectangle {
	return Rectangle{id: id, topLeft: topLeft, bottomRight: bottomRight, label: label}
}

// ID returns the rectangle id.
func (r Rectangle) ID() int32 {
	return r.id
}

// TopLeft returns the top-left corner.
func (r Rectangle) TopLeft() Point {
	return r.topLeft
}

// BottomRight returns the bottom-right corner.
func (r Rectangle) BottomRight() Point {
	return r.bottomRight
}

// Label returns the label.
func (r Rectangle) Label() string {
	return r.label
}

// String returns
//
//	Rectangle[id=<id>, top_left=<Point>, bottom_right=<Point>, label=<label>]
//
// with the corners rendered by Point.String.
func (r Rectangle) String() string {
	return "Rectangle[id=" + strconv.FormatInt(int64(r.id), 10) +
		", top_left=" + r.topLeft.String() +
		", bottom_right=" + r.bottomRight.String() +
		", label=" + r.label + "]"
}

// Redacted returns String().
func (r Rectangle) Redacted() string {
	return r.String()
}

// LogValue implements slog.LogValuer.
func (r Rectangle) LogValue() slog.Value {
	return slog.StringValue(r.Redacted())
}

// TypeName returns "Rectangle".
func (r Rectangle) TypeName() string {
	return "Rectangle"
}

// IsZero reports whether every field holds its zero value.
func (r Rectangle) IsZero() bool {
	return r == Rectangle{}
}

// Equal reports whether r and other hold the same fields.
func (r Rectangle) Equal(other Rectangle) bool {
	return r == other
}

// Validate always returns nil. Rectangle performs no geometric checks.
func (r Rectangle) Validate() error {
	return nil
}

// Describe returns the type descriptor of Rectangle.
func (Rectangle) Describe() typedesc.Descriptor {
	return typedesc.Struct(Module, "Rectangle",
		typedesc.Field("id", typedesc.Int32Type()),
		typedesc.Field("top_left", Point{}.Describe()),
		typedesc.Field("bottom_right", Point{}.Describe()),
		typedesc.Field("label", typedesc.StringType()),
	)
}

func (r Rectangle) fields() rectangleFields {
	return rectangleFields{ID: r.id, TopLeft: r.topLeft, BottomRight: r.bottomRight, Label: r.label}
}

func (f rectangleFields) rectangle() Rectangle {
	return NewRectangle(f.ID, f.TopLeft, f.BottomRight, f.Label)
}

// MarshalJSON encodes r as an object with keys id, top_left,
// bottom_right and label.
func (r Rectangle) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.fields())
}

// UnmarshalJSON decodes an object with keys id, top_left, bottom_right
// and label. On failure r is left unchanged.
func (r *Rectangle) UnmarshalJSON(data []byte) error {
	f := r.fields()
	if err := json.Unmarshal(data, &f); err != nil {
		return &errors.UnmarshalError{Type: r.TypeName(), Data: data, Reason: err.Error()}
	}
	*r = f.rectangle()
	return nil
}

// MarshalYAML encodes r as a mapping with keys id, top_left,
// bottom_right and label.
func (r Rectangle) MarshalYAML() (interface{}, error) {
	return r.fields(), nil
}

// UnmarshalYAML decodes a mapping with keys id, top_left, bottom_right
// and label. On failure r is left unchanged.
func (r *Rectangle) UnmarshalYAML(node *yaml.Node) error {
	f := r.fields()
	if err := node.Decode(&f); err != nil {
		return &errors.UnmarshalError{Type: r.TypeName(), Data: []byte(node.Value), Reason: err.Error()}
	}
	*r = f.rectangle()
	return nil
}

// EncodeWire writes id, top_left, bottom_right and label in order.
func (r Rectangle) EncodeWire(e *wire.Encoder) {
	e.PutInt32(r.id)
	e.Put(r.topLeft)
	e.Put(r.bottomRight)
	e.PutString(r.label)
}

// DecodeWire reads id, top_left, bottom_right and label in order.
func (r *Rectangle) DecodeWire(d *wire.Decoder) {
	r.id = d.Int32()
	d.Get(&r.topLeft)
	d.Get(&r.bottomRight)
	r.label = d.String()
}

// MarshalBinary returns the little-endian binary form of r.
func (r Rectangle) MarshalBinary() ([]byte, error) {
	return wire.Marshal(r)
}

// UnmarshalBinary decodes the little-endian binary form of a Rectangle.
// On failure r is left unchanged.
func (r *Rectangle) UnmarshalBinary(data []byte) error {
	var parsed Rectangle
	if err := wire.Unmarshal(data, r.TypeName(), &parsed); err != nil {
		return err
	}
	*r = parsed
	return nil
}
