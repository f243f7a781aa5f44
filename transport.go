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

// Transport is the duplex byte channel the engine drives. Implementations
// carry the physical link; the engine assumes nothing beyond these calls.
// Link configuration (9600 8N1 for every known module in the family) is
// the caller's responsibility.
type Transport interface {
	// Read fills p with whatever bytes are currently deliverable and
	// returns the count. A return of 0 bytes without error is allowed.
	Read(p []byte) (int, error)

	// Write sends the whole buffer.
	Write(p []byte) error

	// Ready reports whether at least one byte can be read without
	// blocking.
	Ready() (bool, error)

	// SetTimeout bounds how long a single Read may block.
	SetTimeout(timeout time.Duration) error

	// Close closes the transport connection.
	Close() error

	// IsConnected returns true if the transport is usable.
	IsConnected() bool

	// Type returns the transport type.
	Type() TransportType
}

// TransportType represents the type of transport
type TransportType string

const (
	// TransportUART represents UART/serial transport.
	TransportUART TransportType = "uart"
	// TransportMock represents a mock transport for testing.
	TransportMock TransportType = "mock"
)
