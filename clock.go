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

import "time"

// Clock bundles the engine's two uses of time: reading the wall clock for
// timeout accounting and sleeping between readiness polls. It is a single
// injected policy rather than loose callback fields, and it lets tests
// run the wait loop without real delays.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }
