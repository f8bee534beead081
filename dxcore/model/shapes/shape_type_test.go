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

package shapes_test

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"dirpx.dev/dxidl/dxcore/errors"
	"dirpx.dev/dxidl/dxcore/model/shapes"
	"gopkg.in/yaml.v3"
)

func TestShapeType_CodeAndString(t *testing.T) {
	tests := []struct {
		name     string
		st       shapes.ShapeType
		wantCode int32
		wantStr  string
	}{
		{"Circle", shapes.ShapeCircle, 0, "circle"},
		{"Rectangle", shapes.ShapeRectangle, 1, "rectangle"},
		{"Triangle", shapes.ShapeTriangle, 2, "triangle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.st.Code(); got != tt.wantCode {
				t.Errorf("ShapeType.Code() = %d, want %d", got, tt.wantCode)
			}
			if got := tt.st.String(); got != tt.wantStr {
				t.Errorf("ShapeType.String() = %q, want %q", got, tt.wantStr)
			}
		})
	}

	if got := shapes.ShapeType(-4).String(); got != "ShapeType(-4)" {
		t.Errorf("String() of invalid value = %q, want %q", got, "ShapeType(-4)")
	}
}

func TestShapeType_Validate(t *testing.T) {
	tests := []struct {
		name    string
		st      shapes.ShapeType
		wantErr bool
	}{
		{"Circle valid", shapes.ShapeCircle, false},
		{"Rectangle valid", shapes.ShapeRectangle, false},
		{"Triangle valid", shapes.ShapeTriangle, false},
		{"negative", shapes.ShapeType(-1), true},
		{"out of range", shapes.ShapeType(3), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.st.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestShapeType_IdentityAndEquality(t *testing.T) {
	var st shapes.ShapeType
	if st != shapes.ShapeCircle || !st.IsZero() {
		t.Errorf("zero value = %v, want circle", st)
	}
	if st.TypeName() != "ShapeType" {
		t.Errorf("TypeName() = %q, want %q", st.TypeName(), "ShapeType")
	}
	if !shapes.ShapeRectangle.Equal(shapes.ShapeRectangle) {
		t.Error("Equal() = false for identical values")
	}
	if shapes.ShapeRectangle.Equal(shapes.ShapeTriangle) {
		t.Error("Equal() = true for different values")
	}
	if shapes.ShapeTriangle.Redacted() != shapes.ShapeTriangle.String() {
		t.Error("Redacted() differs from String()")
	}
}

func TestParseShapeType(t *testing.T) {
	tests := []struct {
		input   string
		want    shapes.ShapeType
		wantErr bool
	}{
		{"circle", shapes.ShapeCircle, false},
		{"rectangle", shapes.ShapeRectangle, false},
		{"triangle", shapes.ShapeTriangle, false},
		{" Rectangle ", shapes.ShapeRectangle, false},
		{"TRIANGLE_TYPE", shapes.ShapeTriangle, false},
		{"square", shapes.ShapeCircle, true},
		{"", shapes.ShapeCircle, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := shapes.ParseShapeType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseShapeType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseShapeType(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestShapeTypeFromCode(t *testing.T) {
	got, err := shapes.ShapeTypeFromCode(2)
	if err != nil || got != shapes.ShapeTriangle {
		t.Errorf("ShapeTypeFromCode(2) = %v, %v; want triangle, nil", got, err)
	}

	_, err = shapes.ShapeTypeFromCode(3)
	var pe *errors.ParseError
	if !stderrors.As(err, &pe) || pe.Value != "3" {
		t.Errorf("ShapeTypeFromCode(3) error = %v, want ParseError for 3", err)
	}
}

func TestShapeType_JSON(t *testing.T) {
	data, err := json.Marshal(shapes.ShapeRectangle)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `"rectangle"` {
		t.Errorf("json.Marshal() = %s, want %q", data, "rectangle")
	}

	for _, input := range []string{`"triangle"`, `2`, `"Triangle_Type"`} {
		var st shapes.ShapeType
		if err := json.Unmarshal([]byte(input), &st); err != nil {
			t.Errorf("json.Unmarshal(%s) error = %v", input, err)
			continue
		}
		if st != shapes.ShapeTriangle {
			t.Errorf("json.Unmarshal(%s) = %v, want triangle", input, st)
		}
	}

	st := shapes.ShapeRectangle
	if err := json.Unmarshal([]byte(`"hexagon"`), &st); err == nil {
		t.Error("json.Unmarshal(hexagon) error = nil, want error")
	}
	if st != shapes.ShapeRectangle {
		t.Errorf("failed Unmarshal changed value to %v", st)
	}

	if _, err := json.Marshal(shapes.ShapeType(11)); err == nil {
		t.Error("json.Marshal() of invalid ShapeType error = nil, want error")
	}
}

func TestShapeType_YAML(t *testing.T) {
	data, err := yaml.Marshal(shapes.ShapeTriangle)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}
	if string(data) != "triangle\n" {
		t.Errorf("yaml.Marshal() = %q, want %q", data, "triangle\n")
	}

	var st shapes.ShapeType
	if err := yaml.Unmarshal([]byte("1\n"), &st); err != nil || st != shapes.ShapeRectangle {
		t.Errorf("yaml.Unmarshal(1) = %v, %v; want rectangle, nil", st, err)
	}
	if err := yaml.Unmarshal([]byte("circle\n"), &st); err != nil || st != shapes.ShapeCircle {
		t.Errorf("yaml.Unmarshal(circle) = %v, %v; want circle, nil", st, err)
	}
	if err := yaml.Unmarshal([]byte("7\n"), &st); err == nil {
		t.Error("yaml.Unmarshal(7) error = nil, want error")
	}
}

func TestShapeType_Binary(t *testing.T) {
	data, err := shapes.ShapeRectangle.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary() error = %v", err)
	}
	if string(data) != "\x01\x00\x00\x00" {
		t.Errorf("MarshalBinary() = %x, want 01000000", data)
	}

	var st shapes.ShapeType
	if err := st.UnmarshalBinary(data); err != nil || st != shapes.ShapeRectangle {
		t.Errorf("UnmarshalBinary() = %v, %v; want rectangle, nil", st, err)
	}

	err = st.UnmarshalBinary([]byte{0xff, 0xff, 0xff, 0xff})
	var de *errors.DecodeError
	if !stderrors.As(err, &de) || de.Offset != 0 {
		t.Errorf("UnmarshalBinary(-1) error = %v, want DecodeError at offset 0", err)
	}
	if st != shapes.ShapeRectangle {
		t.Errorf("failed UnmarshalBinary changed value to %v", st)
	}
}
