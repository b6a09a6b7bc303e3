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
	"math/bits"
	"sync"
)

const (
	// smallest pooled class is 256 bytes, largest is 1 MiB
	poolMinShift = 8
	poolMaxShift = 20
)

// pool recycles buffers through per-size-class sync.Pools. Buffer
// capacities are rounded up to the next power of two; requests larger
// than the biggest class fall through to the heap.
type pool struct {
	classes [poolMaxShift - poolMinShift + 1]sync.Pool
}

// enforce compilation error
var _ Allocator = (*pool)(nil)

// NewPool returns a pooling allocator. It is safe for concurrent use;
// pooling pays off on hot paths that churn through block buffers of
// similar sizes, such as per-frame snapshot blocks.
func NewPool() Allocator {
	p := new(pool)
	for i := range p.classes {
		capacity := 1 << (poolMinShift + i)
		p.classes[i].New = func() any {
			return make([]byte, capacity)
		}
	}
	return p
}

// Allocate implements Allocator.
func (p *pool) Allocate(size int) []byte {
	if size <= 0 {
		return nil
	}
	class, ok := p.classFor(size)
	if !ok {
		return make([]byte, size)
	}
	buf := p.classes[class].Get().([]byte)
	return buf[:size]
}

// Free implements Allocator.
func (p *pool) Free(buf []byte) {
	capacity := cap(buf)
	if capacity == 0 || capacity&(capacity-1) != 0 {
		// not one of ours, let the garbage collector have it
		return
	}
	class, ok := p.classFor(capacity)
	if !ok || 1<<(poolMinShift+class) != capacity {
		return
	}
	p.classes[class].Put(buf[:capacity]) //nolint:staticcheck
}

// classFor returns the index of the smallest class that fits size.
func (p *pool) classFor(size int) (int, bool) {
	shift := bits.Len(uint(size - 1))
	if shift < poolMinShift {
		shift = poolMinShift
	}
	if shift > poolMaxShift {
		return 0, false
	}
	return shift - poolMinShift, true
}
