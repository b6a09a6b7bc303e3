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
	"github.com/tochemey/gowire/memory"
	"github.com/tochemey/gowire/serialize"
)

// BlockMessage is a message that can carry a block of data too large or
// too opaque to serialize inline: initial world state on connect, a
// configuration blob, an asset. The block travels out-of-band, split
// into fragments by the channel layer; this object only owns the buffer
// and the duty to free it.
//
// Embed BlockMessage instead of Base to declare a block-carrying message
// type with its own serialized fields:
//
//	type SnapshotMessage struct {
//		message.BlockMessage
//		Tick uint32
//	}
//
// At most one block can be attached at a time. While attached, the
// message owns the buffer exclusively and frees it through the recorded
// allocator when the factory destroys the message. DetachBlock hands
// that duty to the caller.
type BlockMessage struct {
	Base
	allocator memory.Allocator
	data      []byte
}

// enforce compilation error
var _ Message = (*BlockMessage)(nil)

// IsBlockMessage reports true.
func (x *BlockMessage) IsBlockMessage() bool {
	return true
}

// AttachBlock attaches a block to the message. The buffer must have been
// produced by allocator; the message frees it through the same allocator
// on destruction.
//
// Attaching an empty buffer, a nil allocator, or a second block over an
// attached one is a contract violation and panics: it means the calling
// layer has lost track of block ownership.
func (x *BlockMessage) AttachBlock(allocator memory.Allocator, data []byte) {
	switch {
	case allocator == nil:
		panic("gowire: AttachBlock requires an allocator")
	case len(data) == 0:
		panic("gowire: AttachBlock requires a non-empty block")
	case x.data != nil:
		panic("gowire: block already attached, detach it first")
	}
	x.allocator = allocator
	x.data = data
}

// DetachBlock detaches the block, transferring ownership of the buffer
// and the duty to free it to the caller. It returns the buffer and the
// allocator that produced it, or nil values when no block was attached.
func (x *BlockMessage) DetachBlock() ([]byte, memory.Allocator) {
	data, allocator := x.data, x.allocator
	x.allocator = nil
	x.data = nil
	return data, allocator
}

// BlockData returns the attached buffer, or nil when no block is
// attached.
func (x *BlockMessage) BlockData() []byte {
	return x.data
}

// BlockSize returns the attached buffer's size in bytes, 0 when no block
// is attached.
func (x *BlockMessage) BlockSize() int {
	return len(x.data)
}

// BlockAllocator returns the allocator the attached buffer came from,
// nil when no block is attached.
func (x *BlockMessage) BlockAllocator() memory.Allocator {
	return x.allocator
}

// Serialize contributes nothing to the stream: the block's bytes are
// fragmented and reassembled by the channel layer, not serialized here.
// Types embedding BlockMessage override Serialize to add their own
// fields.
func (x *BlockMessage) Serialize(stream serialize.Stream) error {
	_ = stream
	return nil
}

func (x *BlockMessage) block() *BlockMessage {
	return x
}

// freeBlock releases an attached block through its recorded allocator.
// The attached-state guard makes it a no-op on repeated calls and on
// messages that never carried a block. The factory calls it during
// message destruction.
func (x *BlockMessage) freeBlock() {
	if x.allocator == nil {
		return
	}
	x.allocator.Free(x.data)
	x.allocator = nil
	x.data = nil
}
