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

package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/tochemey/gowire/memory"
)

func TestCreate(t *testing.T) {
	factory := newTestFactory(t)
	assert.Equal(t, 3, factory.NumTypes())
	assert.NotNil(t, factory.Allocator())
	assert.NotNil(t, factory.Registry())
	assert.NotEmpty(t, factory.ID())

	for typ := 0; typ < factory.NumTypes(); typ++ {
		msg := factory.Create(typ)
		require.NotNil(t, msg)
		assert.Equal(t, typ, msg.Type())
		assert.Equal(t, 1, msg.RefCount())
		factory.Release(msg)
	}
	require.NoError(t, factory.Err())
}

func TestCreateOutOfRangePanics(t *testing.T) {
	factory := newTestFactory(t)
	assert.Panics(t, func() { factory.Create(-1) })
	assert.Panics(t, func() { factory.Create(factory.NumTypes()) })
}

func TestLifecycleScenario(t *testing.T) {
	// numTypes = 3: create, add ref, release twice, verify destruction
	// through the audit set
	factory := newTestFactory(t, WithLeakTracking())
	require.Equal(t, 3, factory.NumTypes())

	msg := factory.Create(0)
	require.NotNil(t, msg)
	require.Equal(t, 1, msg.RefCount())

	factory.AddRef(msg)
	require.Equal(t, 2, msg.RefCount())

	factory.Release(msg)
	require.Equal(t, 1, msg.RefCount())

	factory.Release(msg)
	assert.EqualValues(t, 1, factory.Destroyed())
	assert.Zero(t, factory.Live())
	require.NoError(t, factory.Close())
}

func TestDoubleReleasePanics(t *testing.T) {
	factory := newTestFactory(t)
	msg := factory.Create(pingType)
	factory.Release(msg)
	assert.Panics(t, func() { factory.Release(msg) })
}

func TestNilSafety(t *testing.T) {
	factory := newTestFactory(t)
	assert.NotPanics(t, func() { factory.AddRef(nil) })
	assert.NotPanics(t, func() { factory.Release(nil) })
}

func TestStickyError(t *testing.T) {
	registry, err := NewRegistry(
		Entry{Type: 0, New: func() Message { return new(pingMessage) }},
		// constructor that always fails, as if its allocator budget were exhausted
		Entry{Type: 1, New: func() Message { return nil }},
	)
	require.NoError(t, err)
	factory := NewFactory(memory.NewHeap(), registry)

	require.Nil(t, factory.Create(1))
	require.ErrorIs(t, factory.Err(), ErrAllocationFailed)
	assert.EqualValues(t, 1, factory.Failed())

	// the error survives any number of successful creations
	for i := 0; i < 3; i++ {
		msg := factory.Create(0)
		require.NotNil(t, msg)
		factory.Release(msg)
		require.ErrorIs(t, factory.Err(), ErrAllocationFailed)
	}

	factory.ClearErr()
	require.NoError(t, factory.Err())
}

func TestBlockFreedOnDestroy(t *testing.T) {
	allocator := newRecordingAllocator()
	factory := NewFactory(allocator, newTestRegistry(t))

	msg := factory.Create(snapshotType)
	block, ok := AsBlock(msg)
	require.True(t, ok)

	buf := allocator.Allocate(128)
	block.AttachBlock(allocator, buf)

	factory.Release(msg)
	assert.Equal(t, 1, allocator.frees)
}

func TestLeakReport(t *testing.T) {
	factory := newTestFactory(t, WithLeakTracking())

	leaked := factory.Create(pingType)
	leaked.SetID(7)
	released := factory.Create(snapshotType)
	factory.Release(released)

	err := factory.Close()
	require.ErrorIs(t, err, ErrMessageLeak)
	assert.Contains(t, err.Error(), "id=7")

	// idempotent
	require.NoError(t, factory.Close())
}

func TestCloseWithoutTracking(t *testing.T) {
	factory := newTestFactory(t)
	_ = factory.Create(pingType) // leaked, but nobody is watching
	require.NoError(t, factory.Close())
}

func TestCounters(t *testing.T) {
	factory := newTestFactory(t)

	first := factory.Create(pingType)
	second := factory.Create(snapshotType)
	factory.Release(first)

	assert.EqualValues(t, 2, factory.Created())
	assert.EqualValues(t, 1, factory.Destroyed())
	assert.EqualValues(t, 1, factory.Live())
	assert.Zero(t, factory.Failed())

	factory.Release(second)
}

func TestConcurrentRefCounting(t *testing.T) {
	factory := newTestFactory(t)
	msg := factory.Create(pingType)
	require.NotNil(t, msg)

	// hammer balanced AddRef/Release pairs from many goroutines; the
	// initial reference keeps the count above zero throughout
	group := new(errgroup.Group)
	for i := 0; i < 8; i++ {
		group.Go(func() error {
			for j := 0; j < 10_000; j++ {
				factory.AddRef(msg)
				factory.Release(msg)
			}
			return nil
		})
	}
	require.NoError(t, group.Wait())
	assert.Equal(t, 1, msg.RefCount())
	factory.Release(msg)
}
