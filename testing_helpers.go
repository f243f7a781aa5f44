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
	"time"

	"github.com/wrenproject/go-dfplayer/internal/frame"
)

// MockTransport is an in-memory Transport for tests. Reads are served
// from pre-queued batches, one batch per Read call, so a test controls
// exactly how frames split across reads and when the stream goes idle.
type MockTransport struct {
	readErr  error
	writeErr error
	readyErr error
	reads    [][]byte
	writes   [][]byte
	timeout  time.Duration
	closed   bool
}

// NewMockTransport creates an empty mock transport.
func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

// QueueRead appends one read batch.
func (m *MockTransport) QueueRead(batch ...byte) {
	m.reads = append(m.reads, batch)
}

// QueueFrame encodes a module-side frame (feedback flag clear) for the
// given command and queues it as a single read batch.
func (m *MockTransport) QueueFrame(cmd Command, paramH, paramL byte) {
	raw := frame.Encode(byte(cmd), paramH, paramL, false, false)
	m.QueueRead(raw[:]...)
}

// QueueAck queues the acknowledgement frame the module emits when
// feedback is enabled.
func (m *MockTransport) QueueAck() {
	m.QueueFrame(CmdNotifyReply, 0, 0)
}

// Writes returns every buffer passed to Write, in order.
func (m *MockTransport) Writes() [][]byte {
	return m.writes
}

// SetReadError makes subsequent Read calls fail.
func (m *MockTransport) SetReadError(err error) { m.readErr = err }

// SetWriteError makes subsequent Write calls fail.
func (m *MockTransport) SetWriteError(err error) { m.writeErr = err }

// SetReadyError makes subsequent Ready calls fail.
func (m *MockTransport) SetReadyError(err error) { m.readyErr = err }

// Ready reports whether queued batches remain.
func (m *MockTransport) Ready() (bool, error) {
	if m.readyErr != nil {
		return false, m.readyErr
	}
	return len(m.reads) > 0, nil
}

// Read pops one queued batch. A batch larger than p is split, with the
// remainder left at the front of the queue.
func (m *MockTransport) Read(p []byte) (int, error) {
	if m.readErr != nil {
		return 0, m.readErr
	}
	if len(m.reads) == 0 {
		return 0, nil
	}
	batch := m.reads[0]
	m.reads = m.reads[1:]
	n := copy(p, batch)
	if n < len(batch) {
		m.reads = append([][]byte{batch[n:]}, m.reads...)
	}
	return n, nil
}

// Write records the buffer.
func (m *MockTransport) Write(p []byte) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.writes = append(m.writes, append([]byte(nil), p...))
	return nil
}

// SetTimeout records the timeout.
func (m *MockTransport) SetTimeout(timeout time.Duration) error {
	m.timeout = timeout
	return nil
}

// Close marks the transport closed.
func (m *MockTransport) Close() error {
	m.closed = true
	return nil
}

// IsConnected reports whether Close has been called.
func (m *MockTransport) IsConnected() bool {
	return !m.closed
}

// Type returns TransportMock.
func (*MockTransport) Type() TransportType {
	return TransportMock
}
