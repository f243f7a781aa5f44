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
	"log"
	"os"
	"sync/atomic"
)

var (
	debugEnabled atomic.Bool
	debugLog     = log.New(os.Stderr, "dfplayer: ", log.LstdFlags|log.Lmicroseconds)
)

// SetDebugEnabled toggles wire-level debug logging for the whole package.
func SetDebugEnabled(enabled bool) {
	debugEnabled.Store(enabled)
}

func debugf(format string, args ...any) {
	if debugEnabled.Load() {
		debugLog.Printf(format, args...)
	}
}

func debugln(args ...any) {
	if debugEnabled.Load() {
		debugLog.Println(args...)
	}
}
