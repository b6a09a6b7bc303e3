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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/tochemey/gowire/serialize"
)

func TestProtoRoundTrip(t *testing.T) {
	sent := NewProto(wrapperspb.String("hello from the other side"))

	write := serialize.NewWriteStream(1024)
	require.NoError(t, sent.Serialize(write))
	write.Flush()

	received := new(Proto)
	require.NoError(t, received.Serialize(serialize.NewReadStream(write.Data())))

	body, ok := received.Message().(*wrapperspb.StringValue)
	require.True(t, ok, "expected *wrapperspb.StringValue, got %T", received.Message())
	assert.Equal(t, "hello from the other side", body.GetValue())
}

func TestProtoThroughFactory(t *testing.T) {
	factory := newTestFactory(t)
	msg := factory.Create(protoType)
	require.NotNil(t, msg)
	defer factory.Release(msg)

	assert.Equal(t, protoType, msg.Type())
	assert.False(t, msg.IsBlockMessage())
	require.IsType(t, new(Proto), msg)
}

func TestProtoNilBody(t *testing.T) {
	write := serialize.NewWriteStream(64)
	err := new(Proto).Serialize(write)
	require.ErrorIs(t, err, ErrUnknownMessageType)
}

func TestProtoUnknownType(t *testing.T) {
	payload := []byte{0, 0, 0, 12}
	payload = append(payload, []byte("no.SuchType!")...)

	p := new(Proto)
	require.ErrorIs(t, p.unmarshalPayload(payload), ErrUnknownMessageType)
}

func TestProtoTruncatedPayload(t *testing.T) {
	p := new(Proto)
	require.ErrorIs(t, p.unmarshalPayload([]byte{1, 2}), ErrInvalidPayloadLength)
	// name length field pointing past the end
	require.ErrorIs(t, p.unmarshalPayload([]byte{0, 0, 0, 99, 'x'}), ErrInvalidPayloadLength)
	// zero-length name
	require.ErrorIs(t, p.unmarshalPayload([]byte{0, 0, 0, 0}), ErrInvalidPayloadLength)
}

func TestProtoMeasure(t *testing.T) {
	msg := NewProto(wrapperspb.Int64(424242))

	measure := serialize.NewMeasureStream()
	require.NoError(t, msg.Serialize(measure))

	write := serialize.NewWriteStream(measure.BytesProcessed())
	require.NoError(t, msg.Serialize(write))
	write.Flush()
	assert.LessOrEqual(t, write.BitsProcessed(), measure.BitsProcessed())
}
