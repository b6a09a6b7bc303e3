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
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/tochemey/gowire/message"
)

// FactoryMetric defines the message factory metrics
type FactoryMetric struct {
	createdCount metric.Int64ObservableCounter
	failedCount  metric.Int64ObservableCounter
	liveGauge    metric.Int64ObservableGauge
	registration metric.Registration
}

// NewFactoryMetric creates an instance of FactoryMetric observing the
// given factory's counters. Readings carry the factory name and id as
// attributes so per-peer factories stay distinguishable.
func NewFactoryMetric(meter metric.Meter, factory *message.Factory) (*FactoryMetric, error) {
	factoryMetric := new(FactoryMetric)
	var err error
	// set the created messages count instrument
	if factoryMetric.createdCount, err = meter.Int64ObservableCounter(
		"messages_created_count",
		metric.WithDescription("Total number of messages created"),
	); err != nil {
		return nil, fmt.Errorf("failed to create createdCount instrument, %v", err)
	}
	// set the failed creations count instrument
	if factoryMetric.failedCount, err = meter.Int64ObservableCounter(
		"messages_failed_count",
		metric.WithDescription("Total number of failed message allocations"),
	); err != nil {
		return nil, fmt.Errorf("failed to create failedCount instrument, %v", err)
	}
	// set the live messages gauge instrument
	if factoryMetric.liveGauge, err = meter.Int64ObservableGauge(
		"messages_live",
		metric.WithDescription("Number of messages currently alive"),
	); err != nil {
		return nil, fmt.Errorf("failed to create liveGauge instrument, %v", err)
	}

	attributes := metric.WithAttributes(
		attribute.String("factory.id", factory.ID()),
		attribute.String("factory.name", factory.Name()),
	)
	if factoryMetric.registration, err = meter.RegisterCallback(
		func(_ context.Context, observer metric.Observer) error {
			observer.ObserveInt64(factoryMetric.createdCount, factory.Created(), attributes)
			observer.ObserveInt64(factoryMetric.failedCount, factory.Failed(), attributes)
			observer.ObserveInt64(factoryMetric.liveGauge, factory.Live(), attributes)
			return nil
		},
		factoryMetric.createdCount,
		factoryMetric.failedCount,
		factoryMetric.liveGauge,
	); err != nil {
		return nil, fmt.Errorf("failed to register factory metric callback, %v", err)
	}
	return factoryMetric, nil
}

// CreatedCount returns the total number of created messages instrument
func (x *FactoryMetric) CreatedCount() metric.Int64ObservableCounter {
	return x.createdCount
}

// FailedCount returns the total number of failed allocations instrument
func (x *FactoryMetric) FailedCount() metric.Int64ObservableCounter {
	return x.failedCount
}

// LiveGauge returns the live messages gauge instrument
func (x *FactoryMetric) LiveGauge() metric.Int64ObservableGauge {
	return x.liveGauge
}

// Stop unregisters the metric callback
func (x *FactoryMetric) Stop() error {
	return x.registration.Unregister()
}
