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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarRoundTrip(t *testing.T) {
	write := NewWriteStream(256)

	flag := true
	u8 := uint8(201)
	u16 := uint16(54321)
	u32 := uint32(0xcafebabe)
	u64 := uint64(0x1122334455667788)
	i32 := int32(-5)
	f32 := float32(3.5)
	f64 := math.Pi
	text := "hello, wire"

	require.NoError(t, Bool(write, &flag))
	require.NoError(t, Uint8(write, &u8))
	require.NoError(t, Uint16(write, &u16))
	require.NoError(t, Uint32(write, &u32))
	require.NoError(t, Uint64(write, &u64))
	require.NoError(t, Int(write, &i32, -10, 10))
	require.NoError(t, Float32(write, &f32))
	require.NoError(t, Float64(write, &f64))
	require.NoError(t, String(write, &text, 64))
	write.Flush()

	read := NewReadStream(write.Data())

	var (
		gotFlag bool
		gotU8   uint8
		gotU16  uint16
		gotU32  uint32
		gotU64  uint64
		gotI32  int32
		gotF32  float32
		gotF64  float64
		gotText string
	)
	require.NoError(t, Bool(read, &gotFlag))
	require.NoError(t, Uint8(read, &gotU8))
	require.NoError(t, Uint16(read, &gotU16))
	require.NoError(t, Uint32(read, &gotU32))
	require.NoError(t, Uint64(read, &gotU64))
	require.NoError(t, Int(read, &gotI32, -10, 10))
	require.NoError(t, Float32(read, &gotF32))
	require.NoError(t, Float64(read, &gotF64))
	require.NoError(t, String(read, &gotText, 64))

	assert.Equal(t, flag, gotFlag)
	assert.Equal(t, u8, gotU8)
	assert.Equal(t, u16, gotU16)
	assert.Equal(t, u32, gotU32)
	assert.Equal(t, u64, gotU64)
	assert.Equal(t, i32, gotI32)
	assert.Equal(t, f32, gotF32)
	assert.Equal(t, f64, gotF64)
	assert.Equal(t, text, gotText)
}

func TestIntUsesMinimalBits(t *testing.T) {
	measure := NewMeasureStream()
	value := int32(3)
	require.NoError(t, Int(measure, &value, 0, 7))
	assert.Equal(t, 3, measure.BitsProcessed())
}

func TestIntOutOfRange(t *testing.T) {
	write := NewWriteStream(16)
	value := int32(42)
	require.ErrorIs(t, Int(write, &value, 0, 10), ErrValueOutOfRange)
}

func TestIntInvalidInterval(t *testing.T) {
	write := NewWriteStream(16)
	value := int32(0)
	require.Panics(t, func() { _ = Int(write, &value, 5, 5) })
}

func TestStringTooLong(t *testing.T) {
	write := NewWriteStream(64)
	text := "this string is way too long"
	require.ErrorIs(t, String(write, &text, 4), ErrStringTooLong)
}

func TestByteSliceRoundTrip(t *testing.T) {
	write := NewWriteStream(64)
	payload := []byte{9, 8, 7, 6}
	require.NoError(t, ByteSlice(write, &payload, 16))
	write.Flush()

	read := NewReadStream(write.Data())
	var got []byte
	require.NoError(t, ByteSlice(read, &got, 16))
	assert.Equal(t, payload, got)
}

func TestEmptyByteSlice(t *testing.T) {
	write := NewWriteStream(16)
	var payload []byte
	require.NoError(t, ByteSlice(write, &payload, 16))
	write.Flush()

	read := NewReadStream(write.Data())
	got := []byte{1, 2, 3}
	require.NoError(t, ByteSlice(read, &got, 16))
	assert.Empty(t, got)
}
