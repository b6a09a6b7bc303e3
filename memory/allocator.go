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

package memory

// Allocator hands out and reclaims byte buffers.
//
// Message block payloads are allocated through an Allocator so the
// message layer can record where a buffer came from and return it to the
// same place when the message is destroyed. Allocate returns nil when
// the request cannot be satisfied; this is a reported condition, not a
// fatal one, and callers translate it into their own failure handling
// (the message factory turns it into a sticky allocation error).
//
// Ownership of a returned buffer is exclusive: exactly one holder frees
// it, exactly once.
type Allocator interface {
	// Allocate returns a buffer of exactly size bytes, or nil when the
	// allocator cannot satisfy the request. size must be positive.
	Allocate(size int) []byte
	// Free returns a buffer previously obtained from Allocate. Freeing a
	// buffer twice, or freeing a buffer obtained elsewhere, is a logic
	// error in the caller.
	Free(buf []byte)
}

// heap is the plain allocator: buffers come from the Go heap and Free
// simply drops the reference for the garbage collector to reclaim.
type heap struct{}

// enforce compilation error
var _ Allocator = (*heap)(nil)

// NewHeap returns an allocator backed directly by the Go heap.
func NewHeap() Allocator {
	return &heap{}
}

// Allocate implements Allocator.
func (heap) Allocate(size int) []byte {
	if size <= 0 {
		return nil
	}
	return make([]byte, size)
}

// Free implements Allocator.
func (heap) Free(buf []byte) {
	_ = buf
}
