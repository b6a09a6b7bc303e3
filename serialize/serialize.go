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

// Package serialize provides bit-level serialization against a
// direction-tagged stream.
//
// A type implements Serializable once, with a single routine that works
// for reading, writing, and measuring. The stream carries the direction,
// so the read and write code paths cannot diverge: the same sequence of
// serialize calls that wrote a value reads it back.
//
//	func (m *MoveMessage) Serialize(stream serialize.Stream) error {
//		if err := serialize.Uint16(stream, &m.Sequence); err != nil {
//			return err
//		}
//		return serialize.Float32(stream, &m.Heading)
//	}
package serialize

// Serializable is the capability the message layer requires of every
// concrete message type: serialize yourself against a stream, whatever
// its direction.
type Serializable interface {
	// Serialize reads, writes, or measures the receiver against stream.
	Serialize(stream Stream) error
}

// Stream is a bit stream with one of three directions: writing bits into
// a buffer, reading bits back out of one, or measuring how many bits a
// write would produce without touching memory.
//
// Callers normally go through the package-level helpers (Uint16, Bool,
// String, ...) rather than the raw bit methods.
type Stream interface {
	// IsWriting returns true when the stream writes or measures. Guard
	// write-only work with it, such as computing a derived field before
	// it is serialized.
	IsWriting() bool
	// IsReading returns true when the stream populates values from a
	// buffer.
	IsReading() bool
	// SerializeBits transfers the lowest bits of *value. bits must be in
	// [1,32].
	SerializeBits(value *uint32, bits int) error
	// SerializeBytes transfers len(data) raw bytes. The stream must be
	// byte aligned; call SerializeAlign first.
	SerializeBytes(data []byte) error
	// SerializeAlign pads the stream with zero bits to the next byte
	// boundary, verifying the padding on read.
	SerializeAlign() error
	// SerializeCheck transfers a marker derived from label and fails the
	// read when it does not match, catching diverged serialize code close
	// to the divergence point.
	SerializeCheck(label string) error
	// BitsProcessed returns the number of bits written, read, or measured
	// so far.
	BitsProcessed() int
	// BytesProcessed returns BitsProcessed rounded up to whole bytes.
	BytesProcessed() int
}
