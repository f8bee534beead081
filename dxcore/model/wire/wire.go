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

// Package wire implements the little-endian binary form of the dxidl value
// types.
//
// The layout is positional, with no type tags or field names:
//
//	int32    4 bytes, little-endian two's complement
//	float64  8 bytes, little-endian IEEE-754 bits
//	string   int32 byte length, then that many UTF-8 bytes
//	sequence int32 element count, then the elements
//	enum     int32 code
//	struct   members in declaration order, nested structs inline
//
// A Point{x=1, y=2} therefore encodes to the eight bytes
//
//	01 00 00 00 02 00 00 00
//
// Strings and sequences are limited to MaxLength bytes or elements, the
// largest count an int32 prefix can hold. Encoder records an
// *errors.MarshalError for anything longer instead of writing a wrapped
// prefix. Decoder is sticky: after the first failure every read returns a
// zero value and Err reports the original *errors.DecodeError.
package wire

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"

	"dirpx.dev/dxidl/dxcore/errors"
)

const (
	int32Size   = 4
	float64Size = 8
)

// MaxLength is the largest string byte length or sequence element count
// the binary form can carry.
const MaxLength = math.MaxInt32

// CheckLength reports whether n fits a length prefix. what names the
// value being written, such as "string" or "sequence", and becomes the
// Type of the returned *errors.MarshalError.
func CheckLength(what string, n int) error {
	if n < 0 || n > MaxLength {
		return &errors.MarshalError{Type: what + " length", Value: n}
	}
	return nil
}

// Encodable is implemented by value types that can append their binary
// form to an Encoder.
type Encodable interface {
	EncodeWire(e *Encoder)
}

// Decodable is implemented by value types that can read their binary
// form from a Decoder.
type Decodable interface {
	DecodeWire(d *Decoder)
}

// Encoder appends binary values to a growable buffer.
//
// The zero value is ready to use. Values are written in call order with
// no padding, so the caller MUST write fields in declaration order and
// the reading side MUST read them back in the same order.
//
// Writes of fixed-size values cannot fail. A string or sequence longer
// than MaxLength is not written; instead the Encoder records an
// *errors.MarshalError, reported by Err. Only the first such error is
// kept, and callers SHOULD check Err before using Bytes.
//
// An Encoder is not safe for concurrent use.
//
// Example:
//
//	var e wire.Encoder
//	e.PutInt32(7)
//	e.PutString("box")
//	if err := e.Err(); err != nil {
//		return nil, err
//	}
//	data := e.Bytes() // 07 00 00 00 03 00 00 00 62 6f 78
type Encoder struct {
	buf []byte
	err error
}

// NewEncoder returns an Encoder whose buffer has room for size bytes.
func NewEncoder(size int) *Encoder {
	return &Encoder{buf: make([]byte, 0, size)}
}

// PutInt32 appends v.
func (e *Encoder) PutInt32(v int32) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, uint32(v))
}

// PutFloat64 appends the IEEE-754 bits of v. NaN payloads and the sign of
// zero are preserved.
func (e *Encoder) PutFloat64(v float64) {
	e.buf = binary.LittleEndian.AppendUint64(e.buf, math.Float64bits(v))
}

// PutString appends the byte length of s followed by its bytes. s is
// written as is; the Encoder does not check that it is valid UTF-8.
func (e *Encoder) PutString(s string) {
	if !e.putLength("string", len(s)) {
		return
	}
	e.buf = append(e.buf, s...)
}

// PutFloat64s appends the element count of vs followed by each element.
// A nil slice encodes the same as an empty one.
func (e *Encoder) PutFloat64s(vs []float64) {
	if !e.putLength("sequence", len(vs)) {
		return
	}
	for _, v := range vs {
		e.PutFloat64(v)
	}
}

// Put appends the binary form of v.
func (e *Encoder) Put(v Encodable) {
	v.EncodeWire(e)
}

// Err returns the first failure recorded while encoding, or nil.
func (e *Encoder) Err() error {
	return e.err
}

func (e *Encoder) putLength(what string, n int) bool {
	if err := CheckLength(what, n); err != nil {
		if e.err == nil {
			e.err = err
		}
		return false
	}
	e.PutInt32(int32(n))
	return true
}

// Size returns the number of bytes written so far.
func (e *Encoder) Size() int {
	return len(e.buf)
}

// Bytes returns the encoded bytes. The slice aliases the Encoder's buffer
// until the next Put call.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Decoder reads binary values from a byte slice.
//
// Reads consume the input front to back. The first failure (short input,
// a negative or oversized length prefix, invalid UTF-8, or a failure
// reported by a value type through Fail) is recorded as an
// *errors.DecodeError holding the byte offset where the failing field
// starts. From then on every read returns a zero value and the error
// never changes, so a DecodeWire method MAY read all of its fields and
// check Err once at the end.
//
// Callers decoding a top-level value MUST call Finish, which also rejects
// unread trailing bytes. Length prefixes are checked against the remaining
// input before anything is allocated, so corrupt input cannot force a
// large allocation.
//
// A Decoder is not safe for concurrent use.
//
// Example:
//
//	d := wire.NewDecoder(data)
//	id := d.Int32()
//	label := d.String()
//	if err := d.Finish("Label"); err != nil {
//		return err // *errors.DecodeError
//	}
type Decoder struct {
	data []byte
	off  int
	err  *errors.DecodeError
}

// NewDecoder returns a Decoder reading from data. The Decoder does not
// copy data; strings it returns are copies.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// Int32 reads a little-endian int32.
func (d *Decoder) Int32() int32 {
	b := d.take(int32Size)
	if b == nil {
		return 0
	}
	return int32(binary.LittleEndian.Uint32(b))
}

// Float64 reads a little-endian IEEE-754 float64.
func (d *Decoder) Float64() float64 {
	b := d.take(float64Size)
	if b == nil {
		return 0
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}

// String reads a length-prefixed UTF-8 string.
func (d *Decoder) String() string {
	start := d.off
	n := d.length(1)
	if d.err != nil {
		return ""
	}
	b := d.take(n)
	if b == nil {
		return ""
	}
	if !utf8.Valid(b) {
		d.failAt(start, "string is not valid UTF-8")
		return ""
	}
	return string(b)
}

// Float64s reads a count-prefixed sequence of float64 values. An empty
// sequence decodes to nil.
func (d *Decoder) Float64s() []float64 {
	n := d.length(float64Size)
	if d.err != nil || n == 0 {
		return nil
	}
	vs := make([]float64, n)
	for i := range vs {
		vs[i] = d.Float64()
	}
	if d.err != nil {
		return nil
	}
	return vs
}

// Get reads the binary form of v.
func (d *Decoder) Get(v Decodable) {
	if d.err != nil {
		return
	}
	v.DecodeWire(d)
}

// Fail records a decoding failure at offset off. Value types call it when
// a field decodes to a value outside its domain, such as an unknown enum
// code. Only the first failure is kept.
func (d *Decoder) Fail(off int, format string, args ...any) {
	d.failAt(off, fmt.Sprintf(format, args...))
}

// Offset returns the number of bytes consumed so far.
func (d *Decoder) Offset() int {
	return d.off
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	return len(d.data) - d.off
}

// Err returns the first decoding failure, or nil.
func (d *Decoder) Err() error {
	if d.err == nil {
		return nil
	}
	return d.err
}

// Finish reports the first decoding failure, or a failure if unread bytes
// remain. typeName is recorded on the returned *errors.DecodeError when
// the failure does not already name a type.
func (d *Decoder) Finish(typeName string) error {
	if d.err == nil && d.off != len(d.data) {
		d.failAt(d.off, fmt.Sprintf("%d trailing bytes", len(d.data)-d.off))
	}
	if d.err == nil {
		return nil
	}
	if d.err.Type == "" {
		d.err.Type = typeName
	}
	return d.err
}

// length reads an int32 count and checks that count*elemSize bytes can
// still follow, so a corrupt prefix cannot trigger a huge allocation.
func (d *Decoder) length(elemSize int) int {
	start := d.off
	n := d.Int32()
	if d.err != nil {
		return 0
	}
	if n < 0 {
		d.failAt(start, fmt.Sprintf("negative length %d", n))
		return 0
	}
	if int(n) > d.Remaining()/elemSize {
		d.failAt(start, fmt.Sprintf("length %d exceeds remaining %d bytes", n, d.Remaining()))
		return 0
	}
	return int(n)
}

func (d *Decoder) take(n int) []byte {
	if d.err != nil {
		return nil
	}
	if d.Remaining() < n {
		d.failAt(d.off, fmt.Sprintf("need %d bytes, have %d", n, d.Remaining()))
		return nil
	}
	b := d.data[d.off : d.off+n]
	d.off += n
	return b
}

func (d *Decoder) failAt(off int, reason string) {
	if d.err != nil {
		return
	}
	d.err = &errors.DecodeError{Offset: off, Reason: reason}
}

// Marshal returns the binary form of v, or the first *errors.MarshalError
// recorded while encoding it.
func Marshal(v Encodable) ([]byte, error) {
	e := &Encoder{}
	v.EncodeWire(e)
	if err := e.Err(); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// Unmarshal decodes data into v and requires that all of data is
// consumed. typeName names v in the returned *errors.DecodeError.
//
// v is written to even when decoding fails; callers that must keep their
// receiver intact decode into a temporary.
func Unmarshal(data []byte, typeName string, v Decodable) error {
	d := NewDecoder(data)
	d.Get(v)
	return d.Finish(typeName)
}
