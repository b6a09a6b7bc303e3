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
	"encoding/binary"
	"errors"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"

	"github.com/tochemey/gowire/internal/bufferpool"
	"github.com/tochemey/gowire/serialize"
)

// MaxProtoPayloadSize caps the encoded size of a Proto message payload.
// Payloads larger than this belong in a block, not in serialized message
// fields.
const MaxProtoPayloadSize = 64 * 1024

// Proto is an adapter that carries a proto.Message as gowire message
// payload. It lets applications describe message bodies with Protocol
// Buffers instead of hand-written serialize code, trading some bits of
// wire compactness for schema evolution and tooling.
//
// The payload embeds the fully qualified protobuf message name, so the
// read side reconstructs the concrete type through the global protobuf
// registry without compile-time knowledge of it. Register a Proto
// constructor in the application's Registry for each type index that
// uses protobuf bodies:
//
//	message.Entry{Type: ChatMessageType, New: func() message.Message { return new(message.Proto) }}
type Proto struct {
	Base
	message proto.Message
}

// enforce compilation error
var _ Message = (*Proto)(nil)

// NewProto creates a Proto wrapping the provided proto.Message. The
// wrapped message must be a pointer to a concrete protobuf type.
func NewProto(msg proto.Message) *Proto {
	return &Proto{message: msg}
}

// Message returns the wrapped proto.Message. After a read it holds the
// reconstructed payload; callers type-assert it to the expected concrete
// type.
func (x *Proto) Message() proto.Message {
	return x.message
}

// Serialize transfers the encoded payload through the stream as a
// length-prefixed byte run.
func (x *Proto) Serialize(stream serialize.Stream) error {
	var payload []byte
	if stream.IsWriting() {
		encoded, err := x.marshalPayload()
		if err != nil {
			return err
		}
		payload = encoded
	}
	if err := serialize.ByteSlice(stream, &payload, MaxProtoPayloadSize); err != nil {
		return err
	}
	if stream.IsReading() {
		return x.unmarshalPayload(payload)
	}
	return nil
}

// marshalPayload encodes the wrapped message as:
//   - 4 bytes: length of the protobuf message name (uint32, big endian)
//   - N bytes: fully qualified message name (e.g. "mypb.ChatBody")
//   - M bytes: protobuf-encoded message data
func (x *Proto) marshalPayload() ([]byte, error) {
	if x.message == nil {
		return nil, ErrUnknownMessageType
	}

	messageName := proto.MessageName(x.message)
	if len(messageName) == 0 {
		return nil, ErrUnknownMessageType
	}

	encoded, err := proto.Marshal(x.message)
	if err != nil {
		return nil, errors.Join(ErrMarshalFailed, err)
	}

	buf := bufferpool.Pool.Get()
	defer bufferpool.Pool.Put(buf)

	if err := binary.Write(buf, binary.BigEndian, uint32(len(messageName))); err != nil {
		return nil, ErrMarshalFailed
	}
	if _, err := buf.WriteString(string(messageName)); err != nil {
		return nil, ErrMarshalFailed
	}
	if _, err := buf.Write(encoded); err != nil {
		return nil, ErrMarshalFailed
	}

	payload := make([]byte, buf.Len())
	copy(payload, buf.Bytes())
	return payload, nil
}

// unmarshalPayload decodes a payload produced by marshalPayload,
// resolving the concrete type through the global protobuf registry.
func (x *Proto) unmarshalPayload(payload []byte) error {
	if len(payload) < 4 {
		return ErrInvalidPayloadLength
	}
	nameLength := binary.BigEndian.Uint32(payload[:4])
	if int(nameLength) == 0 || 4+int(nameLength) > len(payload) {
		return ErrInvalidPayloadLength
	}

	messageName := protoreflect.FullName(payload[4 : 4+nameLength])
	messageType, err := protoregistry.GlobalTypes.FindMessageByName(messageName)
	if err != nil {
		return errors.Join(ErrUnknownMessageType, err)
	}

	decoded := messageType.New().Interface()
	if err := proto.Unmarshal(payload[4+nameLength:], decoded); err != nil {
		return errors.Join(ErrUnmarshalFailed, err)
	}

	x.message = decoded
	return nil
}
