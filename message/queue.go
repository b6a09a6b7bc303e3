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

	gods "github.com/Workiva/go-datastructures/queue"
)

// Queue is a bounded FIFO of message handles, the canonical holder
// structure for send and receive paths.
//
// The queue participates in the reference-counting discipline: Push
// takes its own reference on the message, Pop hands that reference to
// the caller (who must eventually Release it), and Close releases
// whatever is still queued. Push never blocks; protocol loops must not
// stall on a full queue, so a full queue simply rejects the message.
type Queue struct {
	factory    *Factory
	capacity   int
	underlying *gods.RingBuffer
}

// NewQueue creates a queue with a fixed capacity, holding references
// through the given factory. Capacity must be a positive integer.
func NewQueue(factory *Factory, capacity int) *Queue {
	if factory == nil {
		panic("gowire: queue requires a factory")
	}
	if capacity <= 0 {
		panic("gowire: queue capacity must be positive")
	}
	// the ring needs at least two slots to tell full from empty
	ringSize := uint64(capacity)
	if ringSize < 2 {
		ringSize = 2
	}
	return &Queue{
		factory:    factory,
		capacity:   capacity,
		underlying: gods.NewRingBuffer(ringSize),
	}
}

// Push adds a message to the back of the queue, taking a reference on
// it. It returns false when the queue is full, leaving the reference
// count untouched. Pushing to a closed queue panics.
func (x *Queue) Push(m Message) bool {
	if m == nil {
		return false
	}
	if x.underlying.Len() >= uint64(x.capacity) {
		return false
	}
	x.factory.AddRef(m)
	ok, err := x.underlying.Offer(m)
	if err != nil {
		x.factory.Release(m)
		panic(fmt.Sprintf("gowire: %v", ErrQueueClosed))
	}
	if !ok {
		x.factory.Release(m)
		return false
	}
	return true
}

// Pop removes the message at the front of the queue and transfers the
// queue's reference on it to the caller, who must Release it when done.
// It returns nil when the queue is empty.
func (x *Queue) Pop() Message {
	if x.underlying.Len() == 0 {
		return nil
	}
	item, err := x.underlying.Get()
	if err != nil {
		return nil
	}
	msg, ok := item.(Message)
	if !ok {
		return nil
	}
	return msg
}

// Len returns the number of messages currently queued.
func (x *Queue) Len() int {
	return int(x.underlying.Len())
}

// Cap returns the queue capacity.
func (x *Queue) Cap() int {
	return x.capacity
}

// Close releases every message still queued and disposes the queue.
// Further Push calls panic; further Pop calls return nil.
func (x *Queue) Close() {
	for {
		msg := x.Pop()
		if msg == nil {
			break
		}
		x.factory.Release(msg)
	}
	x.underlying.Dispose()
}
