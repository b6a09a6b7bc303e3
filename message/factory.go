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

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"go.uber.org/atomic"
	"go.uber.org/multierr"

	"github.com/tochemey/gowire/log"
	"github.com/tochemey/gowire/memory"
)

// Factory is the sole creation and destruction authority for messages of
// a closed type space.
//
// A factory is goroutine-confined: Create, Err, ClearErr, and Close are
// not synchronized. Each connected peer gets its own factory, which is
// both the resource-isolation boundary (pair it with a
// memory.LimitAllocator) and the concurrency discipline. AddRef and
// Release on an already-held message use atomics and are safe from any
// goroutine.
type Factory struct {
	id        string
	name      string
	allocator memory.Allocator
	registry  *Registry
	logger    log.Logger

	err    error
	closed bool

	tracking bool
	live     mapset.Set[*Base]

	created   *atomic.Int64
	destroyed *atomic.Int64
	failed    *atomic.Int64
}

// NewFactory creates a message factory over the given allocator and type
// registry. The allocator is handed to the channel layer for block
// buffers; the registry fixes the set of creatable types for the
// factory's lifetime.
func NewFactory(allocator memory.Allocator, registry *Registry, opts ...Option) *Factory {
	if allocator == nil {
		panic("gowire: factory requires an allocator")
	}
	if registry == nil {
		panic("gowire: factory requires a registry")
	}

	factory := &Factory{
		id:        uuid.NewString(),
		allocator: allocator,
		registry:  registry,
		logger:    log.DiscardLogger,
		created:   atomic.NewInt64(0),
		destroyed: atomic.NewInt64(0),
		failed:    atomic.NewInt64(0),
	}

	for _, opt := range opts {
		opt.Apply(factory)
	}

	if factory.tracking {
		// the factory is goroutine-confined, no need for a synchronized set
		factory.live = mapset.NewThreadUnsafeSet[*Base]()
	}
	return factory
}

// Create creates a message of the given type with a reference count of
// 1. Pass the returned message to Release when done with it.
//
// A type index outside [0,NumTypes) is a contract violation and panics.
// A nil return with no panic means allocation failed: the factory's
// sticky error is set, and the caller should treat the peer as out of
// resources.
func (x *Factory) Create(typ int) Message {
	if typ < 0 || typ >= x.registry.NumTypes() {
		panic(fmt.Sprintf("gowire: message type %d out of range [0,%d)", typ, x.registry.NumTypes()))
	}

	msg := x.registry.New(typ)
	if msg == nil {
		x.err = fmt.Errorf("%w: type=%d factory=%s", ErrAllocationFailed, typ, x.id)
		x.failed.Inc()
		x.logger.Warnf("factory=%s name=%s failed to allocate message type=%d", x.id, x.name, typ)
		return nil
	}

	base := msg.base()
	base.typ = typ
	base.refCount.Store(1)

	x.created.Inc()
	if x.tracking {
		x.live.Add(base)
	}
	return msg
}

// AddRef adds a reference to a message. Call it whenever a new structure
// stores an independent handle to the message, a second queue for
// example. Safe to call with nil.
func (x *Factory) AddRef(m Message) {
	if m == nil {
		return
	}
	m.base().refCount.Inc()
}

// Release removes a reference from a message and destroys the message
// when the last reference is gone: the audit entry is cleared and an
// attached block is freed through the allocator that produced it, as one
// logical step. Safe to call with nil.
//
// Releasing a message whose count is already zero is a double-release
// bug in the caller and panics.
func (x *Factory) Release(m Message) {
	if m == nil {
		return
	}
	remaining := m.base().refCount.Dec()
	switch {
	case remaining < 0:
		panic("gowire: message released with refcount 0, double release")
	case remaining == 0:
		x.destroy(m)
	}
}

// destroy finalizes a message whose last reference was just released.
func (x *Factory) destroy(m Message) {
	if x.tracking {
		x.live.Remove(m.base())
	}
	if block, ok := AsBlock(m); ok {
		block.freeBlock()
	}
	x.destroyed.Inc()
}

// NumTypes returns the number of message types supported by this
// factory.
func (x *Factory) NumTypes() int {
	return x.registry.NumTypes()
}

// Allocator returns the allocator the factory and its block messages
// draw from.
func (x *Factory) Allocator() memory.Allocator {
	return x.allocator
}

// Registry returns the factory's type registry.
func (x *Factory) Registry() *Registry {
	return x.registry
}

// ID returns the unique factory instance id used in log fields.
func (x *Factory) ID() string {
	return x.id
}

// Name returns the factory name set with WithName.
func (x *Factory) Name() string {
	return x.name
}

// Err returns the sticky factory error. It is set by a failed Create and
// survives any number of subsequent successful creations, so a caller
// checking once per processing step still observes the failure. When
// used by a connection layer, a non-nil error triggers a peer
// disconnect.
func (x *Factory) Err() error {
	return x.err
}

// ClearErr clears the sticky factory error.
func (x *Factory) ClearErr() {
	x.err = nil
}

// Created returns the total number of messages created by this factory.
func (x *Factory) Created() int64 {
	return x.created.Load()
}

// Destroyed returns the total number of messages destroyed by this
// factory.
func (x *Factory) Destroyed() int64 {
	return x.destroyed.Load()
}

// Failed returns the total number of failed creations.
func (x *Factory) Failed() int64 {
	return x.failed.Load()
}

// Live returns the number of messages currently alive.
func (x *Factory) Live() int64 {
	return x.created.Load() - x.destroyed.Load()
}

// Close tears the factory down. With leak tracking enabled, every
// message still live is a leak: each is logged with its type, id, and
// reference count, and the aggregate is returned as an error wrapping
// ErrMessageLeak per message. Close is idempotent; without tracking it
// returns nil.
func (x *Factory) Close() error {
	if x.closed {
		return nil
	}
	x.closed = true

	if !x.tracking || x.live.Cardinality() == 0 {
		return nil
	}

	var errs error
	x.logger.Errorf("factory=%s name=%s leaked %d message(s)", x.id, x.name, x.live.Cardinality())
	for _, base := range x.live.ToSlice() {
		x.logger.Errorf("leaked message type=%d id=%d refcount=%d", base.typ, base.id, base.refCount.Load())
		errs = multierr.Append(errs, fmt.Errorf("%w: type=%d id=%d refcount=%d",
			ErrMessageLeak, base.typ, base.id, base.refCount.Load()))
	}
	x.live.Clear()
	return errs
}
