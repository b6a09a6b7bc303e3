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
	"errors"
	"fmt"
)

// ErrAlignment is returned when alignment padding read from the buffer is
// not zero, which means the reader has drifted out of step with the data.
var ErrAlignment = errors.New("bitpack: alignment padding is not zero")

// Reader unpacks values bit-by-bit from a byte buffer written by Writer.
type Reader struct {
	data        []byte
	scratch     uint64
	scratchBits int
	wordIndex   int
	numBits     int
	numBitsRead int
}

// NewReader creates a Reader over data. The Reader does not copy data and
// must not outlive it.
func NewReader(data []byte) *Reader {
	return &Reader{data: data, numBits: len(data) * 8}
}

// ReadBits reads bits bits from the buffer and returns them as the
// lowest bits of the result. bits must be in [1,32].
func (r *Reader) ReadBits(bits int) (uint32, error) {
	if bits <= 0 || bits > 32 {
		panic(fmt.Sprintf("bitpack: invalid bit count %d", bits))
	}
	if r.numBitsRead+bits > r.numBits {
		return 0, ErrOverflow
	}

	for r.scratchBits < bits {
		r.scratch |= uint64(r.loadWord()) << r.scratchBits
		r.scratchBits += 32
	}

	value := uint32(r.scratch & (uint64(1)<<bits - 1))
	r.scratch >>= bits
	r.scratchBits -= bits
	r.numBitsRead += bits
	return value, nil
}

// loadWord reads the next little-endian word from the buffer, zero
// padding when fewer than 4 bytes remain.
func (r *Reader) loadWord() uint32 {
	offset := r.wordIndex * 4
	r.wordIndex++
	var word uint32
	for i := 0; i < 4 && offset+i < len(r.data); i++ {
		word |= uint32(r.data[offset+i]) << (8 * i)
	}
	return word
}

// ReadAlign skips padding bits up to the next byte boundary and verifies
// they are zero.
func (r *Reader) ReadAlign() error {
	remainder := r.numBitsRead % 8
	if remainder == 0 {
		return nil
	}
	value, err := r.ReadBits(8 - remainder)
	if err != nil {
		return err
	}
	if value != 0 {
		return ErrAlignment
	}
	return nil
}

// ReadBytes fills data from the buffer. The read position must be byte
// aligned.
func (r *Reader) ReadBytes(data []byte) error {
	if r.numBitsRead%8 != 0 {
		panic("bitpack: ReadBytes called on an unaligned reader")
	}
	for i := range data {
		value, err := r.ReadBits(8)
		if err != nil {
			return err
		}
		data[i] = byte(value)
	}
	return nil
}

// BitsRead returns the number of bits consumed so far.
func (r *Reader) BitsRead() int {
	return r.numBitsRead
}

// BitsRemaining returns the number of bits left in the buffer.
func (r *Reader) BitsRemaining() int {
	return r.numBits - r.numBitsRead
}
