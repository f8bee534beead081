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

package errors

import "testing"

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			"StatusCode name",
			&ParseError{Type: "StatusCode", Value: "fatal"},
			"dxidl: invalid StatusCode value: fatal",
		},
		{
			"ShapeType code",
			&ParseError{Type: "ShapeType", Value: "7"},
			"dxidl: invalid ShapeType value: 7",
		},
		{
			"empty value",
			&ParseError{Type: "StatusCode", Value: ""},
			"dxidl: invalid StatusCode value: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ParseError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarshalError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *MarshalError
		want string
	}{
		{
			"positive value",
			&MarshalError{Type: "ShapeType", Value: 99},
			"dxidl: cannot marshal invalid ShapeType value: 99",
		},
		{
			"negative value",
			&MarshalError{Type: "StatusCode", Value: -1},
			"dxidl: cannot marshal invalid StatusCode value: -1",
		},
		{
			"value 42 should be decimal not unicode",
			&MarshalError{Type: "Test", Value: 42},
			"dxidl: cannot marshal invalid Test value: 42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("MarshalError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnmarshalError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *UnmarshalError
		want string
	}{
		{
			"empty data",
			&UnmarshalError{Type: "Point", Data: []byte{}, Reason: "empty data"},
			"dxidl: cannot unmarshal Point: empty data",
		},
		{
			"json syntax error",
			&UnmarshalError{Type: "Circle", Data: []byte(`{broken`), Reason: "unexpected end of JSON input"},
			"dxidl: cannot unmarshal Circle: unexpected end of JSON input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("UnmarshalError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			"with field",
			&ValidationError{Type: "Descriptor", Field: "Members", Reason: "must not be empty"},
			"dxidl: invalid Descriptor.Members: must not be empty",
		},
		{
			"without field",
			&ValidationError{Type: "StatusCode", Reason: "value 9 is not a known code"},
			"dxidl: invalid StatusCode: value 9 is not a known code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ValidationError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *DecodeError
		want string
	}{
		{
			"with type",
			&DecodeError{Type: "Rectangle", Offset: 12, Reason: "need 4 bytes, have 1"},
			"dxidl: cannot decode Rectangle at offset 12: need 4 bytes, have 1",
		},
		{
			"without type",
			&DecodeError{Offset: 0, Reason: "negative length -3"},
			"dxidl: cannot decode at offset 0: negative length -3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("DecodeError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrors_Implements_Error_Interface(t *testing.T) {
	var _ error = (*ParseError)(nil)
	var _ error = (*MarshalError)(nil)
	var _ error = (*UnmarshalError)(nil)
	var _ error = (*ValidationError)(nil)
	var _ error = (*DecodeError)(nil)
}
