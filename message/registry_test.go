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
)

func TestRegistry(t *testing.T) {
	registry := newTestRegistry(t)
	assert.Equal(t, 3, registry.NumTypes())

	msg := registry.New(pingType)
	require.IsType(t, new(pingMessage), msg)
}

func TestRegistryEmpty(t *testing.T) {
	_, err := NewRegistry()
	require.ErrorIs(t, err, ErrEmptyRegistry)
}

func TestRegistryRejectsBadTables(t *testing.T) {
	ctor := func() Message { return new(pingMessage) }

	testCases := []struct {
		name     string
		entries  []Entry
		expected error
	}{
		{
			name: "duplicate index",
			entries: []Entry{
				{Type: 0, New: ctor},
				{Type: 0, New: ctor},
			},
			expected: ErrDuplicateType,
		},
		{
			name: "negative index",
			entries: []Entry{
				{Type: -1, New: ctor},
			},
			expected: ErrTypeOutOfRange,
		},
		{
			name: "index past the 15-bit cap",
			entries: []Entry{
				{Type: MaxTypes, New: ctor},
			},
			expected: ErrTypeOutOfRange,
		},
		{
			name: "nil constructor",
			entries: []Entry{
				{Type: 0, New: nil},
			},
			expected: ErrNilConstructor,
		},
		{
			name: "gap in indices",
			entries: []Entry{
				{Type: 0, New: ctor},
				{Type: 2, New: ctor},
			},
			expected: ErrMissingType,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := NewRegistry(testCase.entries...)
			require.ErrorIs(t, err, testCase.expected)
		})
	}
}

func TestRegistryAggregatesViolations(t *testing.T) {
	ctor := func() Message { return new(pingMessage) }
	_, err := NewRegistry(
		Entry{Type: -1, New: ctor},
		Entry{Type: 1, New: ctor},
		Entry{Type: 1, New: ctor},
		Entry{Type: 2, New: nil},
	)
	require.Error(t, err)

	// one pass reports every problem with the table
	require.ErrorIs(t, err, ErrTypeOutOfRange)
	require.ErrorIs(t, err, ErrDuplicateType)
	require.ErrorIs(t, err, ErrNilConstructor)
	require.ErrorIs(t, err, ErrMissingType)
}

func TestMustRegistry(t *testing.T) {
	ctor := func() Message { return new(pingMessage) }
	assert.NotPanics(t, func() { MustRegistry(Entry{Type: 0, New: ctor}) })
	assert.Panics(t, func() { MustRegistry(Entry{Type: 5, New: ctor}) })
}
