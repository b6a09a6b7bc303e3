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

import "errors"

var (
	// ErrAllocationFailed indicates that a Factory could not allocate a
	// message, typically because the allocator budget backing the
	// factory's peer is exhausted. The error sticks on the factory until
	// ClearErr is called; the connection layer observing it disconnects
	// the peer rather than letting resource exhaustion corrupt protocol
	// state.
	ErrAllocationFailed = errors.New("failed to allocate message")

	// ErrMessageLeak indicates that a message was still live when its
	// factory was closed: something created or referenced it and never
	// released it. Factory.Close returns one wrapped ErrMessageLeak per
	// leaked message when leak tracking is enabled.
	ErrMessageLeak = errors.New("message leaked: created but never released")

	// ErrEmptyRegistry indicates that a Registry was built with no
	// constructors at all.
	ErrEmptyRegistry = errors.New("registry has no message types")

	// ErrDuplicateType indicates that two constructors were registered
	// for the same type index.
	ErrDuplicateType = errors.New("duplicate message type index")

	// ErrTypeOutOfRange indicates a negative type index or one that does
	// not fit the 15-bit wire encoding of message types.
	ErrTypeOutOfRange = errors.New("message type index out of range")

	// ErrNilConstructor indicates that a nil constructor was registered
	// for a type index.
	ErrNilConstructor = errors.New("nil message constructor")

	// ErrMissingType indicates a gap in the registered type indices: the
	// factory treats the whole of [0,NumTypes) as creatable, so indices
	// must be dense.
	ErrMissingType = errors.New("no constructor registered for message type")

	// ErrQueueClosed indicates a push or pop on a closed Queue.
	ErrQueueClosed = errors.New("message queue is closed")

	// ErrUnknownMessageType signifies that the Proto adapter encountered
	// a message type it cannot identify: a nil proto.Message during
	// marshaling, or a payload naming a type absent from the global
	// protobuf registry during unmarshaling.
	ErrUnknownMessageType = errors.New("unknown proto message type")

	// ErrMarshalFailed indicates a failure while encoding a Proto
	// message payload, usually wrapping an underlying protobuf error.
	ErrMarshalFailed = errors.New("failed to marshal proto message payload")

	// ErrUnmarshalFailed indicates a failure while decoding a Proto
	// message payload, usually wrapping an underlying protobuf error.
	ErrUnmarshalFailed = errors.New("failed to unmarshal proto message payload")

	// ErrInvalidPayloadLength indicates that a Proto payload is truncated
	// or malformed: its framing fields do not agree with its size.
	ErrInvalidPayloadLength = errors.New("invalid proto payload length")
)
