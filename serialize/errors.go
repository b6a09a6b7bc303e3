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

import "errors"

var (
	// ErrStreamOverflow indicates that a serialize operation ran past the
	// end of the underlying buffer. On write this means the buffer handed
	// to NewWriteStream was too small; on read it usually means the data
	// is truncated or the read code has drifted out of step with the
	// write code.
	ErrStreamOverflow = errors.New("stream overflow: serialize operation past the end of the buffer")

	// ErrValueOutOfRange indicates that a value handed to a ranged
	// serialize routine does not fit the declared [min,max] interval.
	// This is caught on the write side before corrupt data ever reaches
	// the wire.
	ErrValueOutOfRange = errors.New("value out of range: does not fit the declared serialize interval")

	// ErrStringTooLong indicates that a string or byte slice exceeds the
	// maximum length declared at the serialize call site.
	ErrStringTooLong = errors.New("string too long: exceeds the declared maximum length")

	// ErrCheckMismatch indicates that a check marker read from the stream
	// does not match the label at the call site. The read and write code
	// paths have diverged somewhere before the marker.
	ErrCheckMismatch = errors.New("check mismatch: read and write serialization have diverged")

	// ErrBadAlignment indicates that alignment padding read from the
	// stream was not zero, another symptom of diverged read and write
	// code paths.
	ErrBadAlignment = errors.New("bad alignment: stream padding bits are not zero")
)
