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
	"go.uber.org/atomic"

	"github.com/tochemey/gowire/internal/locker"
	"github.com/tochemey/gowire/serialize"
)

// Message is a reference-counted unit of protocol payload that knows how
// to serialize itself against a bit stream.
//
// The interface is sealed: concrete message types embed Base, which
// supplies everything except Serialize. Messages are created only
// through a Factory and destroyed only by it, when the last reference is
// released.
type Message interface {
	serialize.Serializable

	// ID returns the message id assigned by the channel layer. On a
	// reliable-ordered channel ids increase with each message sent,
	// wrapping at 65536; on an unreliable-unordered channel the id is the
	// sequence number of the packet the message rode in. This layer only
	// stores the value.
	ID() uint16
	// SetID sets the message id. Called by the channel layer.
	SetID(id uint16)
	// Type returns the type index the message was created with. It
	// corresponds to the index registered in the factory's Registry.
	Type() int
	// RefCount returns the current number of references. Meant for
	// factory logic and diagnostics, not for general holders.
	RefCount() int
	// IsBlockMessage reports whether the message can carry a data block.
	// When true, AsBlock returns the block view of the message.
	IsBlockMessage() bool

	// base exposes the embedded Base to the factory. Having an unexported
	// method in the interface keeps types outside this module from
	// implementing Message except by embedding Base.
	base() *Base
}

// Base is the concrete core every message type embeds:
//
//	type MoveMessage struct {
//		message.Base
//		X, Y float32
//	}
//
// The zero value is inert; a message becomes live when a Factory creates
// it and initializes the reference count to 1. Base must not be copied
// by value (go vet flags it): a message's identity, its reference count,
// must never be duplicated.
type Base struct {
	_        locker.NoCopy
	id       uint16
	typ      int
	refCount atomic.Int32
}

// ID returns the message id.
func (b *Base) ID() uint16 {
	return b.id
}

// SetID sets the message id.
func (b *Base) SetID(id uint16) {
	b.id = id
}

// Type returns the type index the message was created with.
func (b *Base) Type() int {
	return b.typ
}

// RefCount returns the current number of references.
func (b *Base) RefCount() int {
	return int(b.refCount.Load())
}

// IsBlockMessage reports false; BlockMessage shadows it.
func (b *Base) IsBlockMessage() bool {
	return false
}

func (b *Base) base() *Base {
	return b
}

// AsBlock returns the block view of m when m is a block message. It is
// the safe way to reach AttachBlock and friends from a plain Message
// handle.
func AsBlock(m Message) (*BlockMessage, bool) {
	if m == nil {
		return nil, false
	}
	carrier, ok := m.(blockCarrier)
	if !ok {
		return nil, false
	}
	return carrier.block(), true
}

// blockCarrier is satisfied by BlockMessage and by every type embedding
// it, through method promotion.
type blockCarrier interface {
	block() *BlockMessage
}
