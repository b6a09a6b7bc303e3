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

import (
	"go.uber.org/atomic"
)

// LimitAllocator wraps another allocator with a byte budget. Once the
// budget is exhausted Allocate returns nil until enough buffers are
// freed.
//
// Servers give each connected client its own LimitAllocator so one
// misbehaving peer cannot starve the rest of the process of memory: the
// client's message factory reports the failed allocation, and the
// connection layer disconnects that peer.
type LimitAllocator struct {
	inner  Allocator
	budget int64
	used   *atomic.Int64
}

// enforce compilation error
var _ Allocator = (*LimitAllocator)(nil)

// NewLimit wraps inner with a budget of the given number of bytes.
// budget must be positive.
func NewLimit(inner Allocator, budget int64) *LimitAllocator {
	if inner == nil {
		panic("gowire: nil inner allocator")
	}
	if budget <= 0 {
		panic("gowire: allocator budget must be positive")
	}
	return &LimitAllocator{
		inner:  inner,
		budget: budget,
		used:   atomic.NewInt64(0),
	}
}

// Allocate implements Allocator. It returns nil when the request would
// push usage past the budget.
func (x *LimitAllocator) Allocate(size int) []byte {
	if size <= 0 {
		return nil
	}
	if x.used.Add(int64(size)) > x.budget {
		x.used.Sub(int64(size))
		return nil
	}
	buf := x.inner.Allocate(size)
	if buf == nil {
		x.used.Sub(int64(size))
	}
	return buf
}

// Free implements Allocator and returns the buffer's bytes to the budget.
func (x *LimitAllocator) Free(buf []byte) {
	if buf == nil {
		return
	}
	x.inner.Free(buf)
	x.used.Sub(int64(len(buf)))
}

// Used returns the number of budget bytes currently allocated.
func (x *LimitAllocator) Used() int64 {
	return x.used.Load()
}

// Budget returns the total byte budget.
func (x *LimitAllocator) Budget() int64 {
	return x.budget
}
