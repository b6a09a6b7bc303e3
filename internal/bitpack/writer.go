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

package bitpack

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrOverflow is returned when a read or write would run past the end of
// the underlying buffer.
var ErrOverflow = errors.New("bitpack: operation past the end of the buffer")

// Writer packs values bit-by-bit into a byte buffer.
//
// Bits are accumulated in a 64-bit scratch register and flushed to the
// buffer one 32-bit little-endian word at a time, so partial-word writes
// never touch the buffer more than once per word. Call Flush before
// reading Data.
type Writer struct {
	data        []byte
	scratch     uint64
	scratchBits int
	wordIndex   int
	numBits     int
}

// NewWriter creates a Writer over a fresh buffer of the given size in
// bytes. The size is rounded up to a multiple of 4 so whole words can be
// flushed; Data trims the result back to the bytes actually written.
func NewWriter(size int) *Writer {
	if size <= 0 {
		panic(fmt.Sprintf("bitpack: invalid writer size %d", size))
	}
	size = (size + 3) &^ 3
	return &Writer{data: make([]byte, size)}
}

// WriteBits writes the lowest bits of value to the buffer. bits must be
// in [1,32].
func (w *Writer) WriteBits(value uint32, bits int) error {
	if bits <= 0 || bits > 32 {
		panic(fmt.Sprintf("bitpack: invalid bit count %d", bits))
	}
	if w.numBits+bits > len(w.data)*8 {
		return ErrOverflow
	}

	value &= uint32(uint64(1)<<bits - 1)
	w.scratch |= uint64(value) << w.scratchBits
	w.scratchBits += bits

	for w.scratchBits >= 32 {
		binary.LittleEndian.PutUint32(w.data[w.wordIndex*4:], uint32(w.scratch))
		w.scratch >>= 32
		w.scratchBits -= 32
		w.wordIndex++
	}

	w.numBits += bits
	return nil
}

// WriteAlign pads the stream with zero bits up to the next byte boundary.
func (w *Writer) WriteAlign() error {
	remainder := w.numBits % 8
	if remainder == 0 {
		return nil
	}
	return w.WriteBits(0, 8-remainder)
}

// WriteBytes copies data into the buffer. The write position must be
// byte aligned.
func (w *Writer) WriteBytes(data []byte) error {
	if w.numBits%8 != 0 {
		panic("bitpack: WriteBytes called on an unaligned writer")
	}
	for _, b := range data {
		if err := w.WriteBits(uint32(b), 8); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes any bits remaining in the scratch register to the buffer.
func (w *Writer) Flush() {
	if w.scratchBits == 0 {
		return
	}
	binary.LittleEndian.PutUint32(w.data[w.wordIndex*4:], uint32(w.scratch))
	w.scratch = 0
	w.scratchBits = 0
	w.wordIndex++
}

// BitsWritten returns the number of bits written so far.
func (w *Writer) BitsWritten() int {
	return w.numBits
}

// BytesWritten returns the number of bytes the written bits occupy.
func (w *Writer) BytesWritten() int {
	return (w.numBits + 7) / 8
}

// Data returns the written bytes. Flush must be called first, otherwise
// up to 31 trailing bits are still sitting in the scratch register.
func (w *Writer) Data() []byte {
	return w.data[:w.BytesWritten()]
}
