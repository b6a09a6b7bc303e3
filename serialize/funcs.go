/*
 * MIT License
 *
 * Copyright (c) 2022-2025 Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package serialize

import (
	"math"
	"math/bits"
)

// Bits transfers the lowest n bits of *value.
func Bits(stream Stream, value *uint32, n int) error {
	return stream.SerializeBits(value, n)
}

// Bool transfers a single bit.
func Bool(stream Stream, value *bool) error {
	var bit uint32
	if *value {
		bit = 1
	}
	if err := stream.SerializeBits(&bit, 1); err != nil {
		return err
	}
	if stream.IsReading() {
		*value = bit != 0
	}
	return nil
}

// Uint8 transfers an unsigned 8-bit value.
func Uint8(stream Stream, value *uint8) error {
	word := uint32(*value)
	if err := stream.SerializeBits(&word, 8); err != nil {
		return err
	}
	if stream.IsReading() {
		*value = uint8(word)
	}
	return nil
}

// Uint16 transfers an unsigned 16-bit value.
func Uint16(stream Stream, value *uint16) error {
	word := uint32(*value)
	if err := stream.SerializeBits(&word, 16); err != nil {
		return err
	}
	if stream.IsReading() {
		*value = uint16(word)
	}
	return nil
}

// Uint32 transfers an unsigned 32-bit value.
func Uint32(stream Stream, value *uint32) error {
	return stream.SerializeBits(value, 32)
}

// Uint64 transfers an unsigned 64-bit value as two 32-bit halves.
func Uint64(stream Stream, value *uint64) error {
	lo := uint32(*value)
	hi := uint32(*value >> 32)
	if err := stream.SerializeBits(&lo, 32); err != nil {
		return err
	}
	if err := stream.SerializeBits(&hi, 32); err != nil {
		return err
	}
	if stream.IsReading() {
		*value = uint64(hi)<<32 | uint64(lo)
	}
	return nil
}

// Int transfers a signed value known to lie in [min,max], using only as
// many bits as the interval requires. Writing a value outside the
// interval fails with ErrValueOutOfRange before it reaches the wire;
// reading a value outside the interval fails the same way.
func Int(stream Stream, value *int32, min, max int32) error {
	if min >= max {
		panic("gowire: serialize interval must satisfy min < max")
	}
	if stream.IsWriting() && (*value < min || *value > max) {
		return ErrValueOutOfRange
	}
	n := bitsRequired(uint64(int64(max) - int64(min)))
	word := uint32(int64(*value) - int64(min))
	if err := stream.SerializeBits(&word, n); err != nil {
		return err
	}
	if stream.IsReading() {
		decoded := int64(word) + int64(min)
		if decoded < int64(min) || decoded > int64(max) {
			return ErrValueOutOfRange
		}
		*value = int32(decoded)
	}
	return nil
}

// Float32 transfers an IEEE 754 single-precision value.
func Float32(stream Stream, value *float32) error {
	word := math.Float32bits(*value)
	if err := stream.SerializeBits(&word, 32); err != nil {
		return err
	}
	if stream.IsReading() {
		*value = math.Float32frombits(word)
	}
	return nil
}

// Float64 transfers an IEEE 754 double-precision value.
func Float64(stream Stream, value *float64) error {
	word := math.Float64bits(*value)
	if err := Uint64(stream, &word); err != nil {
		return err
	}
	if stream.IsReading() {
		*value = math.Float64frombits(word)
	}
	return nil
}

// ByteSlice transfers a length-prefixed byte slice of at most maxLength
// bytes. On read the slice is allocated to the received length.
func ByteSlice(stream Stream, data *[]byte, maxLength int) error {
	if maxLength <= 0 {
		panic("gowire: serialize maximum length must be positive")
	}
	length := uint32(len(*data))
	if stream.IsWriting() && int(length) > maxLength {
		return ErrStringTooLong
	}
	n := bitsRequired(uint64(maxLength))
	if err := stream.SerializeBits(&length, n); err != nil {
		return err
	}
	if stream.IsReading() {
		if int(length) > maxLength {
			return ErrStringTooLong
		}
		*data = make([]byte, length)
	}
	if err := stream.SerializeAlign(); err != nil {
		return err
	}
	return stream.SerializeBytes((*data)[:length])
}

// String transfers a length-prefixed string of at most maxLength bytes.
func String(stream Stream, value *string, maxLength int) error {
	data := []byte(*value)
	if err := ByteSlice(stream, &data, maxLength); err != nil {
		return err
	}
	if stream.IsReading() {
		*value = string(data)
	}
	return nil
}

// Align pads the stream with zero bits to the next byte boundary.
func Align(stream Stream) error {
	return stream.SerializeAlign()
}

// Check transfers a marker derived from label, failing the read when the
// marker in the stream does not match.
func Check(stream Stream, label string) error {
	return stream.SerializeCheck(label)
}

// bitsRequired returns the number of bits needed to represent values in
// [0,max]. max of zero still takes one bit.
func bitsRequired(max uint64) int {
	if max == 0 {
		return 1
	}
	return bits.Len64(max)
}
