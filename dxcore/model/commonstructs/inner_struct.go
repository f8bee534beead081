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

// Package commonstructs holds the records of the CommonStructs IDL module.
package commonstructs

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
const Module = "CommonStructs"

// InnerStruct is an immutable (id, name) pair.
type InnerStruct struct {
	id   int32
	name string
}

type innerStructFields struct {
	ID   int32  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

var (
	_ model.Model                   = (*InnerStruct)(nil)
	_ model.BinarySerializable      = (*InnerStruct)(nil)
	_ model.LogValued               = (*InnerStruct)(nil)
	_ model.Comparable[InnerStruct] = InnerStruct{}
)

// NewInnerStruct returns the InnerStruct (id, name).
func NewInnerStruct(id int32, name string) InnerStruct {
	return InnerStruct{id: id, name: name}
}

func (s InnerStruct) ID() int32 {
	return s.id
}

func (s InnerStruct) Name() string {
	return s.name
}

// String returns "InnerStruct[id=<id>, name=<name>]".
func (s InnerStruct) String() string {
	return "InnerStruct[id=" + strconv.FormatInt(int64(s.id), 10) + ", name=" + s.name + "]"
}

func (s InnerStruct) Redacted() string {
	return s.String()
}

func (s InnerStruct) LogValue() slog.Value {
	return slog.StringValue(s.Redacted())
}

func (s InnerStruct) TypeName() string {
	return "InnerStruct"
}

func (s InnerStruct) IsZero() bool {
	return s == InnerStruct{}
}

func (s InnerStruct) Equal(other InnerStruct) bool {
	return s == other
}

// Validate always returns nil.
func (s InnerStruct) Validate() error {
	return nil
}

// Describe returns the type descriptor of InnerStruct.
func (InnerStruct) Describe() typedesc.Descriptor {
	return typedesc.Struct(Module, "InnerStruct",
		typedesc.Field("id", typedesc.Int32Type()),
		typedesc.Field("name", typedesc.StringType()),
	)
}

func (s InnerStruct) fields() innerStructFields {
	return innerStructFields{ID: s.id, Name: s.name}
}

func (f innerStructFields) innerStruct() InnerStruct {
	return NewInnerStruct(f.ID, f.Name)
}

func (s InnerStruct) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.fields())
}

// UnmarshalJSON decodes {"id":..,"name":..}. On failure s is left
// unchanged.
func (s *InnerStruct) UnmarshalJSON(data []byte) error {
	f := s.fields()
	if err := json.Unmarshal(data, &f); err != nil {
		return &errors.UnmarshalError{Type: s.TypeName(), Data: data, Reason: err.Error()}
	}
	*s = f.innerStruct()
	return nil
}

func (s InnerStruct) MarshalYAML() (interface{}, error) {
	return s.fields(), nil
}

func (s *InnerStruct) UnmarshalYAML(node *yaml.Node) error {
	f := s.fields()
	if err := node.Decode(&f); err != nil {
		return &errors.UnmarshalError{Type: s.TypeName(), Data: []byte(node.Value), Reason: err.Error()}
	}
	*s = f.innerStruct()
	return nil
}

// EncodeWire writes id then name.
func (s InnerStruct) EncodeWire(e *wire.Encoder) {
	e.PutInt32(s.id)
	e.PutString(s.name)
}

// DecodeWire reads id then name.
func (s *InnerStruct) DecodeWire(d *wire.Decoder) {
	s.id = d.Int32()
	s.name = d.String()
}

func (s InnerStruct) MarshalBinary() ([]byte, error) {
	return wire.Marshal(s)
}

// UnmarshalBinary decodes the binary form of an InnerStruct. On failure s
// is left unchanged.
func (s *InnerStruct) UnmarshalBinary(data []byte) error {
	var parsed InnerStruct
	if err := wire.Unmarshal(data, s.TypeName(), &parsed); err != nil {
		return err
	}
	*s = parsed
	return nil
}
