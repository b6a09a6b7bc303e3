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

package metric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/tochemey/gowire/memory"
	"github.com/tochemey/gowire/message"
)

func TestNewFactoryMetric(t *testing.T) {
	registry, err := message.NewRegistry(
		message.Entry{Type: 0, New: func() message.Message { return new(message.Proto) }},
	)
	require.NoError(t, err)
	factory := message.NewFactory(memory.NewHeap(), registry, message.WithName("peer-1"))

	meter := noop.NewMeterProvider().Meter("test")
	factoryMetric, err := NewFactoryMetric(meter, factory)
	require.NoError(t, err)
	require.NotNil(t, factoryMetric)

	assert.NotNil(t, factoryMetric.CreatedCount())
	assert.NotNil(t, factoryMetric.FailedCount())
	assert.NotNil(t, factoryMetric.LiveGauge())
	require.NoError(t, factoryMetric.Stop())
}
