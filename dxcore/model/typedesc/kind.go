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

package typedesc

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"dirpx.dev/dxidl/dxcore/errors"
	"dirpx.dev/dxidl/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Kind classifies a Descriptor by the IDL construct it describes.
//
// The zero value, KindUnknown, is not a valid kind for a descriptor but is
// a valid Kind value: it marks "not classified yet".
type Kind uint8

const (
	// KindUnknown marks an unclassified descriptor.
	KindUnknown Kind = iota

	// KindBoolean is an IDL boolean.
	KindBoolean

	// KindOctet is an IDL octet or char.
	KindOctet

	// KindInt16 is an IDL short or unsigned short.
	KindInt16

	// KindInt32 is an IDL long or unsigned long.
	KindInt32

	// KindInt64 is an IDL long long or unsigned long long.
	KindInt64

	// KindFloat32 is an IDL float.
	KindFloat32

	// KindFloat64 is an IDL double.
	KindFloat64

	// KindString is an IDL string or wstring.
	KindString

	// KindSequence is an IDL sequence; Descriptor.Elem describes the
	// element type.
	KindSequence

	// KindStruct is an IDL struct; Descriptor.Members lists its fields.
	KindStruct

	// KindUnion is an IDL union.
	KindUnion

	// KindEnum is an IDL enum; Descriptor.Enumerators lists its values.
	KindEnum

	// KindBitmask is an IDL bitmask.
	KindBitmask
)

var kindNames = [...]string{
	KindUnknown:  "unknown",
	KindBoolean:  "boolean",
	KindOctet:    "octet",
	KindInt16:    "int16",
	KindInt32:    "int32",
	KindInt64:    "int64",
	KindFloat32:  "float32",
	KindFloat64:  "float64",
	KindString:   "string",
	KindSequence: "sequence",
	KindStruct:   "struct",
	KindUnion:    "union",
	KindEnum:     "enum",
	KindBitmask:  "bitmask",
}

// ParseKind parses a kind name. Matching is case-insensitive and ignores
// surrounding whitespace, so both "int32" and "INT32" are accepted.
func ParseKind(s string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == normalized {
			return Kind(k), nil
		}
	}
	return KindUnknown, &errors.ParseError{Type: "Kind", Value: s}
}

// Compile-time assertion that Kind implements model.Model.
var _ model.Model = (*Kind)(nil)

// String returns the lowercase kind name, or "Kind(N)" for values outside
// the defined set.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Redacted returns String(); kinds are not sensitive.
func (k Kind) Redacted() string {
	return k.String()
}

// LogValue implements slog.LogValuer.
func (k Kind) LogValue() slog.Value {
	return slog.StringValue(k.Redacted())
}

// TypeName returns "Kind".
func (k Kind) TypeName() string {
	return "Kind"
}

// IsZero reports whether k is KindUnknown.
func (k Kind) IsZero() bool {
	return k == KindUnknown
}

// Equal reports whether k and other are the same kind.
func (k Kind) Equal(other Kind) bool {
	return k == other
}

// Primitive reports whether k is a scalar kind with a fixed wire size or a
// string.
func (k Kind) Primitive() bool {
	return k >= KindBoolean && k <= KindString
}

// Named reports whether descriptors of kind k carry a Name and live in a
// module.
func (k Kind) Named() bool {
	switch k {
	case KindStruct, KindUnion, KindEnum, KindBitmask:
		return true
	default:
		return false
	}
}

// Validate returns an error if k is outside the defined set.
func (k Kind) Validate() error {
	if int(k) < len(kindNames) {
		return nil
	}
	return &errors.ValidationError{
		Type:   k.TypeName(),
		Reason: fmt.Sprintf("value %d is not a known kind (valid range: 0-%d)", uint8(k), uint8(KindBitmask)),
		Value:  uint8(k),
	}
}

// MarshalJSON encodes k as its name.
func (k Kind) MarshalJSON() ([]byte, error) {
	if err := k.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: k.TypeName(), Value: int(k)}
	}
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a kind name. On failure k is left unchanged.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: k.TypeName(), Data: data, Reason: err.Error()}
	}
	parsed, err := ParseKind(str)
	if err != nil {
		return &errors.UnmarshalError{Type: k.TypeName(), Data: data, Reason: err.Error()}
	}
	*k = parsed
	return nil
}

// MarshalYAML encodes k as its name.
func (k Kind) MarshalYAML() (interface{}, error) {
	if err := k.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: k.TypeName(), Value: int(k)}
	}
	return k.String(), nil
}

// UnmarshalYAML decodes a kind name. On failure k is left unchanged.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: k.TypeName(), Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseKind(str)
	if err != nil {
		return &errors.UnmarshalError{Type: k.TypeName(), Data: []byte(node.Value), Reason: err.Error()}
	}
	*k = parsed
	return nil
}
