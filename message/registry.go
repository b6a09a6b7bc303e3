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
	"fmt"
	"sort"

	"go.uber.org/multierr"
)

// MaxTypes caps a registry's type space at the 15 bits the wire encoding
// reserves for message type indices.
const MaxTypes = 1 << 15

// Entry declares one message type: its index in the factory's closed
// type space and a constructor returning a blank instance.
type Entry struct {
	// Type is the message type index. Indices must be dense: a registry
	// with n entries covers exactly [0,n).
	Type int
	// New constructs a blank message of this type. It may return nil to
	// signal that the message could not be allocated, for example when an
	// internal buffer taken from a memory.LimitAllocator is denied.
	New func() Message
}

// Registry is the closed mapping from type index to message constructor
// that every application supplies to its factories. It is built once at
// startup and immutable afterwards; a misdeclared table is rejected at
// construction, with every violation reported at once, rather than
// surfacing as nil messages at call time.
type Registry struct {
	ctors []func() Message
}

// NewRegistry builds a registry from the given entries. It fails when
// the table is empty, an index is negative or at least MaxTypes, an
// index appears twice, an index is missing from the dense range, or a
// constructor is nil. All violations are aggregated into one error.
func NewRegistry(entries ...Entry) (*Registry, error) {
	var errs error
	if len(entries) == 0 {
		return nil, ErrEmptyRegistry
	}

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Type < sorted[j].Type })

	ctors := make([]func() Message, len(sorted))
	seen := make(map[int]bool, len(sorted))
	for _, entry := range sorted {
		switch {
		case entry.Type < 0 || entry.Type >= MaxTypes:
			errs = multierr.Append(errs, fmt.Errorf("%w: %d", ErrTypeOutOfRange, entry.Type))
			continue
		case seen[entry.Type]:
			errs = multierr.Append(errs, fmt.Errorf("%w: %d", ErrDuplicateType, entry.Type))
			continue
		}
		seen[entry.Type] = true
		if entry.New == nil {
			errs = multierr.Append(errs, fmt.Errorf("%w: type %d", ErrNilConstructor, entry.Type))
			continue
		}
		if entry.Type < len(ctors) {
			ctors[entry.Type] = entry.New
		}
	}

	for typ := range ctors {
		if !seen[typ] {
			errs = multierr.Append(errs, fmt.Errorf("%w: %d", ErrMissingType, typ))
		}
	}

	if errs != nil {
		return nil, errs
	}
	return &Registry{ctors: ctors}, nil
}

// MustRegistry is like NewRegistry but panics on a misdeclared table.
// Meant for package-level registry variables, where the table is a
// compile-time constant in spirit.
func MustRegistry(entries ...Entry) *Registry {
	registry, err := NewRegistry(entries...)
	if err != nil {
		panic(fmt.Sprintf("gowire: invalid message registry: %v", err))
	}
	return registry
}

// NumTypes returns the closed cardinality of the type space. Valid type
// indices are exactly [0,NumTypes).
func (x *Registry) NumTypes() int {
	return len(x.ctors)
}

// New constructs a blank message of the given type. The index must be in
// [0,NumTypes); only the factory calls this.
func (x *Registry) New(typ int) Message {
	return x.ctors[typ]()
}
