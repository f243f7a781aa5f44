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

/*
Package dfplayer drives the family of UART-attached audio playback
modules built around the YX5200 / FN-M16P chip (DFPlayer Mini and its
many clones). The modules share one framed command/response protocol:
fixed ten-byte packets with a 16-bit checksum, an optional per-command
acknowledgement frame, and unsolicited notifications for media events
and faults.

Basic Usage:

	import (
	    "github.com/wrenproject/go-dfplayer"
	    "github.com/wrenproject/go-dfplayer/transport/uart"
	)

	// Open the serial port (fixed 9600 8N1)
	transport, err := uart.New("/dev/ttyUSB0")
	if err != nil {
	    log.Fatal(err)
	}
	defer transport.Close()

	device, err := dfplayer.New(transport,
	    dfplayer.WithTimeout(time.Second),
	    dfplayer.WithFeedback(true),
	)
	if err != nil {
	    log.Fatal(err)
	}
	if err := device.Init(); err != nil {
	    log.Fatal(err)
	}

	if err := device.SetVolume(20); err != nil {
	    log.Fatal(err)
	}
	if err := device.PlayTrack(1); err != nil {
	    log.Fatal(err)
	}

Error Handling:

All operations return typed errors that can be inspected:

	if errors.Is(err, dfplayer.ErrTimeout) {
	    // module did not answer in time
	}
	var merr dfplayer.ModuleError
	if errors.As(err, &merr) {
	    // the module itself reported a fault
	}

The engine never retries on its own. Callers wanting retry can wrap
operations with RetryWithConfig, which consults IsRetryable.

Thread Safety:

Device operations are not thread-safe. The engine runs one command at a
time and owns its receive state exclusively; add your own
synchronization for concurrent access.
*/
package dfplayer
