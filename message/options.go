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
	"github.com/tochemey/gowire/log"
)

// Option is the interface that applies a configuration option.
type Option interface {
	// Apply sets the Option value of a config.
	Apply(factory *Factory)
}

var _ Option = OptionFunc(nil)

// OptionFunc implements the Option interface.
type OptionFunc func(factory *Factory)

func (f OptionFunc) Apply(factory *Factory) {
	f(factory)
}

// WithLogger sets the custom log
func WithLogger(logger log.Logger) Option {
	return OptionFunc(func(factory *Factory) {
		factory.logger = logger
	})
}

// WithName sets a human-readable factory name used in log fields, so
// per-peer factories are distinguishable in server logs.
func WithName(name string) Option {
	return OptionFunc(func(factory *Factory) {
		factory.name = name
	})
}

// WithLeakTracking enables the live-message audit set. Every created
// message is tracked until released; Close reports any message still
// live as a leak. This is a development-time diagnostic with per-message
// bookkeeping cost, leave it off in production builds.
func WithLeakTracking() Option {
	return OptionFunc(func(factory *Factory) {
		factory.tracking = true
	})
}
