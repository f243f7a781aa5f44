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

package uart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dfplayer "github.com/wrenproject/go-dfplayer"
)

func TestNewNonexistentPort(t *testing.T) {
	t.Parallel()

	transport, err := New("/dev/nonexistent-port-for-testing")
	require.Error(t, err)
	assert.Nil(t, transport)
	assert.Contains(t, err.Error(), "/dev/nonexistent-port-for-testing")
}

func TestClosedTransport(t *testing.T) {
	t.Parallel()

	transport := &Transport{portName: "test"}

	assert.False(t, transport.IsConnected())
	assert.NoError(t, transport.Close(), "closing a closed transport is a no-op")

	_, err := transport.Read(make([]byte, 10))
	assert.Error(t, err)
	assert.Error(t, transport.Write([]byte{0x7E}))

	_, err = transport.Ready()
	assert.Error(t, err)
}

func TestClosedTransportServesPendingBytes(t *testing.T) {
	t.Parallel()

	// Bytes stashed by a readiness poll stay readable even after the
	// port goes away; the scanner must not lose a partial frame.
	transport := &Transport{portName: "test", pending: []byte{0x7E, 0xFF}}

	ready, err := transport.Ready()
	require.NoError(t, err)
	assert.True(t, ready)

	buf := make([]byte, 10)
	n, err := transport.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{0x7E, 0xFF}, buf[:2])
}

func TestSetTimeoutWhileClosed(t *testing.T) {
	t.Parallel()

	transport := &Transport{portName: "test"}
	assert.NoError(t, transport.SetTimeout(time.Second), "timeout is stored for the next open port")
	assert.Equal(t, time.Second, transport.timeout)
}

func TestTransportType(t *testing.T) {
	t.Parallel()

	transport := &Transport{}
	assert.Equal(t, dfplayer.TransportUART, transport.Type())
}
