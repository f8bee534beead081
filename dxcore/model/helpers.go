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

package model

import (
	"encoding"
	"encoding/json"
	"fmt"
	"log/slog"

	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// ValidateAll validates every model in the slice and returns all failures
// combined into a single error, or nil if every model is valid.
//
// Each failure is wrapped with its index and TypeName so that the combined
// message points at the offending element:
//
//	model[2] (StatusCode): dxidl: invalid StatusCode: value 7 is not a known code
//
// Failures are collected with an rxmerr.Collector, so every invalid
// element is reported, not only the first. The order of the combined
// failures follows the order of the input slice. An empty or nil slice is
// valid.
//
// Example:
//
//	codes := []commonenums.StatusCode{commonenums.StatusOK, commonenums.StatusCode(7)}
//	if err := model.ValidateAll(codes); err != nil {
//		log.Printf("rejecting batch: %v", err)
//	}
func ValidateAll[T Value](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// FilterZero returns a new slice containing only the models for which
// IsZero reports false. The result never shares its backing array with
// the input and is non-nil even when empty.
func FilterZero[T Value](models []T) []T {
	result := make([]T, 0, len(models))

	for _, m := range models {
		if !m.IsZero() {
			result = append(result, m)
		}
	}

	return result
}

// MustValidate returns m unchanged if it is valid and panics otherwise.
//
// Only use MustValidate where an invalid value is a programming error,
// such as package-level fixtures and test setup.
func MustValidate[T Value](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("model validation failed for %s: %v", m.TypeName(), err))
	}
	return m
}

// SafeString returns Redacted() by default and String() when unsafe is
// true. It keeps the choice between the two forms visible at the call
// site.
func SafeString[T Value](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}

// LogAttr returns a slog attribute carrying the redacted form of m.
//
//	logger.Info("shape received", model.LogAttr("shape", circle))
func LogAttr[T Value](key string, m T) slog.Attr {
	return slog.String(key, m.Redacted())
}

// ToJSON validates m and marshals it to JSON.
func ToJSON[T Value](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML validates m and marshals it to YAML.
func ToYAML[T Value](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// ToBinary validates m and marshals it to its little-endian binary form.
//
// ToBinary fails if T does not implement encoding.BinaryMarshaler. The
// result carries no type tag: the reader MUST know which type to decode
// it into, typically with FromBinary and the same T.
//
// Example:
//
//	data, err := model.ToBinary(shapes.NewPoint(1, 2))
//	// data = 01 00 00 00 02 00 00 00
func ToBinary[T Value](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	bm, ok := any(m).(encoding.BinaryMarshaler)
	if !ok {
		return nil, fmt.Errorf("%s has no binary form", m.TypeName())
	}
	return bm.MarshalBinary()
}

// FromJSON unmarshals data into m and validates the result. If FromJSON
// returns an error the state of *m is undefined.
func FromJSON[T Value](data []byte, m *T) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// FromYAML unmarshals data into m and validates the result. If FromYAML
// returns an error the state of *m is undefined.
func FromYAML[T Value](data []byte, m *T) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// FromBinary decodes the binary form in data into m and validates the
// result. *T MUST implement encoding.BinaryUnmarshaler.
//
// Decoding failures from the dxidl types wrap *errors.DecodeError, which
// reports the byte offset of the field that could not be read. Callers
// SHOULD match it with errors.As:
//
//	var c shapes.Circle
//	if err := model.FromBinary(data, &c); err != nil {
//		var de *errors.DecodeError
//		if errors.As(err, &de) {
//			log.Printf("bad %s at byte %d", de.Type, de.Offset)
//		}
//	}
func FromBinary[T Value](data []byte, m *T) error {
	bu, ok := any(m).(encoding.BinaryUnmarshaler)
	if !ok {
		return fmt.Errorf("%s has no binary form", (*m).TypeName())
	}
	if err := bu.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("cannot unmarshal binary: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// Clone returns a deep copy of m.
//
// Types implementing Cloneable[T] are copied directly. Otherwise the
// value is round-tripped through its binary form when it has one, and
// through JSON as a last resort. Only the first two paths carry NaN and
// infinite floats; the JSON path fails on them.
//
// The returned value MUST NOT share mutable memory with m. For the dxidl
// records this matters only for Circle, whose points slice is copied.
//
// Example:
//
//	c := shapes.NewCircle(1, shapes.Point{}, 2, "red", []float64{1, 2})
//	dup, err := model.Clone(c)
//	// dup.Equal(c) == true
func Clone[T Value](m T) (T, error) {
	var zero T

	if c, ok := any(m).(Cloneable[T]); ok {
		return c.Clone(), nil
	}

	if bm, ok := any(m).(encoding.BinaryMarshaler); ok {
		var clone T
		if bu, ok := any(&clone).(encoding.BinaryUnmarshaler); ok {
			data, err := bm.MarshalBinary()
			if err != nil {
				return zero, fmt.Errorf("clone marshal failed: %w", err)
			}
			if err := bu.UnmarshalBinary(data); err != nil {
				return zero, fmt.Errorf("clone unmarshal failed: %w", err)
			}
			return clone, nil
		}
	}

	data, err := json.Marshal(m)
	if err != nil {
		return zero, fmt.Errorf("clone marshal failed: %w", err)
	}

	var clone T
	if err := json.Unmarshal(data, &clone); err != nil {
		return zero, fmt.Errorf("clone unmarshal failed: %w", err)
	}

	return clone, nil
}

// Equal reports whether a and b are structurally equal.
//
// Types implementing Comparable[T] decide for themselves. Otherwise both
// values are marshaled to JSON and compared byte for byte; a marshaling
// failure on either side reports false.
func Equal[T Value](a, b T) bool {
	if c, ok := any(a).(Comparable[T]); ok {
		return c.Equal(b)
	}

	dataA, errA := json.Marshal(a)
	dataB, errB := json.Marshal(b)

	if errA != nil || errB != nil {
		return false
	}

	return string(dataA) == string(dataB)
}
