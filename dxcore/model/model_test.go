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

package model_test

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"dirpx.dev/dxidl/dxcore/errors"
	"dirpx.dev/dxidl/dxcore/model"
	"dirpx.dev/dxidl/dxcore/model/commonenums"
	"dirpx.dev/dxidl/dxcore/model/commonstructs"
	"dirpx.dev/dxidl/dxcore/model/shapes"
	"gopkg.in/yaml.v3"
)

// label is a minimal Model without a binary form or an Equal method, used
// to exercise the JSON fallbacks of Clone and Equal.
type label struct {
	Text   string `json:"text" yaml:"text"`
	Secret string `json:"secret" yaml:"secret"`
}

func (l label) Validate() error {
	if l.Text == "" {
		return stderrors.New("text required")
	}
	return nil
}

func (l label) TypeName() string { return "label" }
func (l label) IsZero() bool     { return l == label{} }
func (l label) String() string   { return "label{" + l.Text + ", " + l.Secret + "}" }
func (l label) Redacted() string { return "label{" + l.Text + ", [REDACTED]}" }

func (l label) MarshalJSON() ([]byte, error) {
	type alias label
	return json.Marshal(alias(l))
}

func (l *label) UnmarshalJSON(data []byte) error {
	type alias label
	return json.Unmarshal(data, (*alias)(l))
}

func (l label) MarshalYAML() (interface{}, error) {
	type alias label
	return alias(l), nil
}

func (l *label) UnmarshalYAML(node *yaml.Node) error {
	type alias label
	return node.Decode((*alias)(l))
}

var _ model.Model = (*label)(nil)

func TestValidateAll(t *testing.T) {
	valid := []commonenums.StatusCode{commonenums.StatusOK, commonenums.StatusWarning}
	if err := model.ValidateAll(valid); err != nil {
		t.Errorf("ValidateAll(valid) = %v, want nil", err)
	}

	if err := model.ValidateAll([]commonenums.StatusCode{}); err != nil {
		t.Errorf("ValidateAll(empty) = %v, want nil", err)
	}

	mixed := []commonenums.StatusCode{
		commonenums.StatusOK,
		commonenums.StatusCode(7),
		commonenums.StatusError,
		commonenums.StatusCode(-1),
	}
	err := model.ValidateAll(mixed)
	if err == nil {
		t.Fatal("ValidateAll(mixed) = nil, want error")
	}
	msg := err.Error()
	for _, want := range []string{"model[1] (StatusCode)", "model[3] (StatusCode)"} {
		if !strings.Contains(msg, want) {
			t.Errorf("ValidateAll() error %q does not mention %q", msg, want)
		}
	}
	if strings.Contains(msg, "model[0]") || strings.Contains(msg, "model[2]") {
		t.Errorf("ValidateAll() error %q mentions a valid element", msg)
	}
}

func TestFilterZero(t *testing.T) {
	in := []shapes.Point{{}, shapes.NewPoint(1, 0), {}, shapes.NewPoint(0, 2)}
	got := model.FilterZero(in)
	if len(got) != 2 || got[0] != shapes.NewPoint(1, 0) || got[1] != shapes.NewPoint(0, 2) {
		t.Errorf("FilterZero() = %v", got)
	}

	empty := model.FilterZero([]shapes.Point{{}})
	if empty == nil || len(empty) != 0 {
		t.Errorf("FilterZero(all zero) = %#v, want empty non-nil slice", empty)
	}
}

func TestMustValidate(t *testing.T) {
	if got := model.MustValidate(commonenums.StatusError); got != commonenums.StatusError {
		t.Errorf("MustValidate() = %v", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustValidate(invalid) did not panic")
		}
	}()
	model.MustValidate(shapes.ShapeType(9))
}

func TestSafeString(t *testing.T) {
	l := label{Text: "hi", Secret: "s3cr3t"}
	if got := model.SafeString(l, false); strings.Contains(got, "s3cr3t") {
		t.Errorf("SafeString(safe) = %q leaks secret", got)
	}
	if got := model.SafeString(l, true); !strings.Contains(got, "s3cr3t") {
		t.Errorf("SafeString(unsafe) = %q, want full form", got)
	}
}

func TestLogAttr(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("shape received",
		model.LogAttr("secret", label{Text: "hi", Secret: "s3cr3t"}),
		slog.Any("point", shapes.NewPoint(1, 2)),
	)

	out := buf.String()
	if strings.Contains(out, "s3cr3t") {
		t.Errorf("log output leaks secret: %s", out)
	}
	if !strings.Contains(out, `point="Point[x=1, y=2]"`) {
		t.Errorf("log output = %s, want point rendered through LogValue", out)
	}
}

func TestToFromJSON(t *testing.T) {
	r := shapes.NewRectangle(1, shapes.NewPoint(0, 0), shapes.NewPoint(10, 10), "box")
	data, err := model.ToJSON(r)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var back shapes.Rectangle
	if err := model.FromJSON(data, &back); err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}
	if back != r {
		t.Errorf("FromJSON() = %v, want %v", back, r)
	}

	if _, err := model.ToJSON(label{}); err == nil {
		t.Error("ToJSON(invalid) error = nil, want error")
	}
	var l label
	if err := model.FromJSON([]byte(`{"text":""}`), &l); err == nil {
		t.Error("FromJSON(invalid) error = nil, want error")
	}
}

func TestToFromYAML(t *testing.T) {
	s := commonstructs.NewInnerStruct(3, "gamma")
	data, err := model.ToYAML(s)
	if err != nil {
		t.Fatalf("ToYAML() error = %v", err)
	}

	var back commonstructs.InnerStruct
	if err := model.FromYAML(data, &back); err != nil {
		t.Fatalf("FromYAML() error = %v", err)
	}
	if back != s {
		t.Errorf("FromYAML() = %v, want %v", back, s)
	}
}

func TestToFromBinary(t *testing.T) {
	c := shapes.NewCircle(4, shapes.NewPoint(1, 1), math.Inf(1), "green", []float64{math.NaN(), 2})
	data, err := model.ToBinary(c)
	if err != nil {
		t.Fatalf("ToBinary() error = %v", err)
	}

	var back shapes.Circle
	if err := model.FromBinary(data, &back); err != nil {
		t.Fatalf("FromBinary() error = %v", err)
	}
	if back.ID() != 4 || !math.IsInf(back.Radius(), 1) || !math.IsNaN(back.PointAt(0)) || back.PointAt(1) != 2 {
		t.Errorf("FromBinary() = %v", back)
	}

	if _, err := model.ToBinary(label{Text: "x"}); err == nil {
		t.Error("ToBinary() of a type without binary form error = nil, want error")
	}
	if _, err := model.ToBinary(commonenums.StatusCode(5)); err == nil {
		t.Error("ToBinary(invalid) error = nil, want error")
	}

	var sc commonenums.StatusCode
	err = model.FromBinary([]byte{9, 0, 0, 0}, &sc)
	var de *errors.DecodeError
	if !stderrors.As(err, &de) {
		t.Errorf("FromBinary(unknown code) error = %v, want wrapped *errors.DecodeError", err)
	}
}

func TestClone(t *testing.T) {
	c := shapes.NewCircle(1, shapes.Point{}, 1, "red", []float64{1, 2})
	clone, err := model.Clone(c)
	if err != nil {
		t.Fatalf("Clone(Circle) error = %v", err)
	}
	if !clone.Equal(c) {
		t.Errorf("Clone(Circle) = %v, want %v", clone, c)
	}

	r := shapes.NewRectangle(1, shapes.NewPoint(0, 0), shapes.NewPoint(1, 1), "r")
	rc, err := model.Clone(r)
	if err != nil || rc != r {
		t.Errorf("Clone(Rectangle) = %v, %v; want %v", rc, err, r)
	}

	l := label{Text: "hi", Secret: "x"}
	lc, err := model.Clone(l)
	if err != nil || lc != l {
		t.Errorf("Clone(label) = %v, %v; want %v", lc, err, l)
	}
}

func TestEqual(t *testing.T) {
	a := shapes.NewCircle(1, shapes.Point{}, 1, "red", []float64{1, 2})
	b := shapes.NewCircle(1, shapes.Point{}, 1, "red", []float64{1, 2})
	if !model.Equal(a, b) {
		t.Error("Equal(Circle, Circle) = false for equal circles")
	}
	if model.Equal(a, shapes.NewCircle(1, shapes.Point{}, 1, "red", []float64{2, 1})) {
		t.Error("Equal() = true for reordered points")
	}

	if !model.Equal(label{Text: "a"}, label{Text: "a"}) {
		t.Error("Equal(label) = false for equal labels")
	}
	if model.Equal(label{Text: "a"}, label{Text: "b"}) {
		t.Error("Equal(label) = true for different labels")
	}
}
