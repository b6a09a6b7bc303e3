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

package serialize

import (
	"errors"
	"fmt"

	"github.com/zeebo/xxh3"

	"github.com/tochemey/gowire/internal/bitpack"
)

// WriteStream writes bits into a fixed-size buffer.
type WriteStream struct {
	writer *bitpack.Writer
}

// enforce compilation error
var _ Stream = (*WriteStream)(nil)

// NewWriteStream creates a write stream over a fresh buffer of the given
// size in bytes.
func NewWriteStream(size int) *WriteStream {
	return &WriteStream{writer: bitpack.NewWriter(size)}
}

// IsWriting implements Stream.
func (x *WriteStream) IsWriting() bool { return true }

// IsReading implements Stream.
func (x *WriteStream) IsReading() bool { return false }

// SerializeBits implements Stream.
func (x *WriteStream) SerializeBits(value *uint32, bits int) error {
	if err := x.writer.WriteBits(*value, bits); err != nil {
		return ErrStreamOverflow
	}
	return nil
}

// SerializeBytes implements Stream.
func (x *WriteStream) SerializeBytes(data []byte) error {
	if err := x.writer.WriteBytes(data); err != nil {
		return ErrStreamOverflow
	}
	return nil
}

// SerializeAlign implements Stream.
func (x *WriteStream) SerializeAlign() error {
	if err := x.writer.WriteAlign(); err != nil {
		return ErrStreamOverflow
	}
	return nil
}

// SerializeCheck implements Stream.
func (x *WriteStream) SerializeCheck(label string) error {
	if err := x.SerializeAlign(); err != nil {
		return err
	}
	marker := checkMarker(label)
	return x.SerializeBits(&marker, 32)
}

// BitsProcessed implements Stream.
func (x *WriteStream) BitsProcessed() int { return x.writer.BitsWritten() }

// BytesProcessed implements Stream.
func (x *WriteStream) BytesProcessed() int { return x.writer.BytesWritten() }

// Flush flushes buffered bits to the underlying buffer. Call it once,
// after the last serialize call and before Data.
func (x *WriteStream) Flush() { x.writer.Flush() }

// Data returns the written bytes. Flush must have been called.
func (x *WriteStream) Data() []byte { return x.writer.Data() }

// ReadStream reads bits back out of a buffer produced by a WriteStream.
type ReadStream struct {
	reader *bitpack.Reader
}

// enforce compilation error
var _ Stream = (*ReadStream)(nil)

// NewReadStream creates a read stream over data. The stream does not
// copy data and must not outlive it.
func NewReadStream(data []byte) *ReadStream {
	return &ReadStream{reader: bitpack.NewReader(data)}
}

// IsWriting implements Stream.
func (x *ReadStream) IsWriting() bool { return false }

// IsReading implements Stream.
func (x *ReadStream) IsReading() bool { return true }

// SerializeBits implements Stream.
func (x *ReadStream) SerializeBits(value *uint32, bits int) error {
	read, err := x.reader.ReadBits(bits)
	if err != nil {
		return ErrStreamOverflow
	}
	*value = read
	return nil
}

// SerializeBytes implements Stream.
func (x *ReadStream) SerializeBytes(data []byte) error {
	if err := x.reader.ReadBytes(data); err != nil {
		return ErrStreamOverflow
	}
	return nil
}

// SerializeAlign implements Stream.
func (x *ReadStream) SerializeAlign() error {
	err := x.reader.ReadAlign()
	switch {
	case errors.Is(err, bitpack.ErrAlignment):
		return ErrBadAlignment
	case err != nil:
		return ErrStreamOverflow
	}
	return nil
}

// SerializeCheck implements Stream.
func (x *ReadStream) SerializeCheck(label string) error {
	if err := x.SerializeAlign(); err != nil {
		return err
	}
	var marker uint32
	if err := x.SerializeBits(&marker, 32); err != nil {
		return err
	}
	if expected := checkMarker(label); marker != expected {
		return fmt.Errorf("%w: label %q, expected %#08x, got %#08x", ErrCheckMismatch, label, expected, marker)
	}
	return nil
}

// BitsProcessed implements Stream.
func (x *ReadStream) BitsProcessed() int { return x.reader.BitsRead() }

// BytesProcessed implements Stream.
func (x *ReadStream) BytesProcessed() int { return (x.reader.BitsRead() + 7) / 8 }

// MeasureStream counts how many bits a write would produce without
// writing anything. The channel layer uses it to work out how many
// messages fit a packet budget before committing them.
//
// A measure stream reports IsWriting true so value-dependent serialize
// logic follows the write path.
type MeasureStream struct {
	numBits int
}

// enforce compilation error
var _ Stream = (*MeasureStream)(nil)

// NewMeasureStream creates a measure stream.
func NewMeasureStream() *MeasureStream {
	return &MeasureStream{}
}

// IsWriting implements Stream.
func (x *MeasureStream) IsWriting() bool { return true }

// IsReading implements Stream.
func (x *MeasureStream) IsReading() bool { return false }

// SerializeBits implements Stream.
func (x *MeasureStream) SerializeBits(value *uint32, bits int) error {
	_ = value
	x.numBits += bits
	return nil
}

// SerializeBytes implements Stream.
func (x *MeasureStream) SerializeBytes(data []byte) error {
	x.numBits += len(data) * 8
	return nil
}

// SerializeAlign implements Stream.
func (x *MeasureStream) SerializeAlign() error {
	if remainder := x.numBits % 8; remainder != 0 {
		x.numBits += 8 - remainder
	}
	return nil
}

// SerializeCheck implements Stream.
func (x *MeasureStream) SerializeCheck(label string) error {
	_ = label
	_ = x.SerializeAlign()
	x.numBits += 32
	return nil
}

// BitsProcessed implements Stream.
func (x *MeasureStream) BitsProcessed() int { return x.numBits }

// BytesProcessed implements Stream.
func (x *MeasureStream) BytesProcessed() int { return (x.numBits + 7) / 8 }

// checkMarker folds a call-site label into the 32-bit guard value
// written to the stream.
func checkMarker(label string) uint32 {
	return uint32(xxh3.HashString(label))
}
