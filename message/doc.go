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

// Package message implements the message-object model of the gowire
// protocol stack: a reference-counted, self-serializing unit of payload
// (Message), a variant carrying an out-of-band data block
// (BlockMessage), and the Factory that is the sole authority for
// creating and destroying messages of a closed type space.
//
// Messages are shared between send queues, retransmission buffers, and
// receive queues without copying. Every structure that stores an
// independent handle takes a reference through Factory.AddRef and drops
// it through Factory.Release; the factory destroys the message exactly
// when the last reference is released.
//
// Concrete message types are declared once, in a Registry built from a
// list of (type index, constructor) pairs:
//
//	registry, err := message.NewRegistry(
//		message.Entry{Type: MoveMessageType, New: func() message.Message { return new(MoveMessage) }},
//		message.Entry{Type: ChatMessageType, New: func() message.Message { return new(ChatMessage) }},
//	)
//
// A factory is typically instantiated per connected peer, paired with a
// memory.LimitAllocator, so one peer's traffic cannot exhaust another's
// resources.
package message
