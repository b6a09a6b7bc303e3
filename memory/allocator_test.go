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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeapAllocate(t *testing.T) {
	allocator := NewHeap()
	buf := allocator.Allocate(64)
	require.Len(t, buf, 64)
	allocator.Free(buf)

	require.Nil(t, allocator.Allocate(0))
	require.Nil(t, allocator.Allocate(-1))
}

func TestPoolAllocate(t *testing.T) {
	allocator := NewPool()

	buf := allocator.Allocate(100)
	require.Len(t, buf, 100)
	require.EqualValues(t, 256, cap(buf))
	allocator.Free(buf)

	// larger than the biggest class falls through to the heap
	big := allocator.Allocate(4 << 20)
	require.Len(t, big, 4<<20)
	allocator.Free(big)

	require.Nil(t, allocator.Allocate(0))
}

func TestPoolReuse(t *testing.T) {
	allocator := NewPool()
	buf := allocator.Allocate(512)
	buf[0] = 0xab
	allocator.Free(buf)

	// the pool may or may not hand the same buffer back, both are valid;
	// either way the requested length must hold
	again := allocator.Allocate(512)
	require.Len(t, again, 512)
}

func TestLimitBudget(t *testing.T) {
	allocator := NewLimit(NewHeap(), 100)
	require.EqualValues(t, 100, allocator.Budget())

	first := allocator.Allocate(60)
	require.Len(t, first, 60)
	require.EqualValues(t, 60, allocator.Used())

	// over budget
	require.Nil(t, allocator.Allocate(50))
	require.EqualValues(t, 60, allocator.Used())

	allocator.Free(first)
	require.EqualValues(t, 0, allocator.Used())

	// freed bytes are available again
	require.Len(t, allocator.Allocate(100), 100)
}

func TestLimitPanics(t *testing.T) {
	require.Panics(t, func() { NewLimit(nil, 10) })
	require.Panics(t, func() { NewLimit(NewHeap(), 0) })
}
