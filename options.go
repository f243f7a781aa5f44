// go-dfplayer
// Copyright (c) 2026 The go-dfplayer Contributors.
// SPDX-License-Identifier: LGPL-3.0-or-later
//
// This file is part of go-dfplayer.
//
// go-dfplayer is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 3 of the License, or (at your option) any later version.
//
// go-dfplayer is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with go-dfplayer; if not, write to the Free Software Foundation,
// Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

package dfplayer

import (
	"fmt"
	"time"
)

// Option is a functional option for configuring a Device
type Option func(*Device) error

// WithTimeout sets the response wait budget per command.
func WithTimeout(timeout time.Duration) Option {
	return func(d *Device) error {
		return d.SetTimeout(timeout)
	}
}

// WithFeedback controls whether the module is asked to acknowledge every
// command with an explicit reply frame. Enabled by default.
func WithFeedback(enabled bool) Option {
	return func(d *Device) error {
		d.config.Feedback = enabled
		return nil
	}
}

// WithResetDelay overrides the post-reset settle time.
func WithResetDelay(delay time.Duration) Option {
	return func(d *Device) error {
		if delay <= 0 {
			return fmt.Errorf("%w: reset delay %v", ErrInvalidParameter, delay)
		}
		d.config.ResetDelay = delay
		return nil
	}
}

// WithQuirks selects variant-specific protocol deviations.
func WithQuirks(quirks Quirks) Option {
	return func(d *Device) error {
		d.config.Quirks = quirks
		return nil
	}
}

// WithClock substitutes the time source used for timeout accounting and
// poll-interval sleeps. Tests use this to run the wait loop instantly.
func WithClock(clock Clock) Option {
	return func(d *Device) error {
		if clock == nil {
			return fmt.Errorf("%w: nil clock", ErrInvalidParameter)
		}
		d.clock = clock
		return nil
	}
}
