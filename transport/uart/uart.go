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

// Package uart implements the dfplayer.Transport interface over a serial
// port.
package uart

import (
	"fmt"
	"time"

	"go.bug.st/serial"

	dfplayer "github.com/wrenproject/go-dfplayer"
)

const (
	// The whole module family talks 9600 8N1; it is not configurable.
	baudRate = 9600

	defaultTimeout = 1 * time.Second
)

// Transport implements dfplayer.Transport over a serial port.
type Transport struct {
	port     serial.Port
	portName string
	pending  []byte
	timeout  time.Duration
}

var _ dfplayer.Transport = (*Transport)(nil)

// New opens portName at the module family's fixed framing and flushes
// any stale input left from before the port was ours.
func New(portName string) (*Transport, error) {
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", portName, err)
	}

	t := &Transport{
		port:     port,
		portName: portName,
		timeout:  defaultTimeout,
	}

	if err := port.ResetInputBuffer(); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("failed to reset input buffer on %s: %w", portName, err)
	}
	if err := port.SetReadTimeout(t.timeout); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("failed to set read timeout on %s: %w", portName, err)
	}

	return t, nil
}

// Ready reports whether a Read would return data immediately. The serial
// stack has no portable input-queue query, so this does a zero-timeout
// read and stashes whatever arrives for the next Read call.
func (t *Transport) Ready() (bool, error) {
	if len(t.pending) > 0 {
		return true, nil
	}
	if t.port == nil {
		return false, fmt.Errorf("serial port %s is not open", t.portName)
	}

	if err := t.port.SetReadTimeout(0); err != nil {
		return false, fmt.Errorf("failed to set non-blocking read on %s: %w", t.portName, err)
	}
	defer func() { _ = t.port.SetReadTimeout(t.timeout) }()

	var peek [64]byte
	n, err := t.port.Read(peek[:])
	if n > 0 {
		t.pending = append(t.pending, peek[:n]...)
	}
	if err != nil {
		return len(t.pending) > 0, fmt.Errorf("failed to poll %s: %w", t.portName, err)
	}
	return len(t.pending) > 0, nil
}

// Read returns stashed poll bytes first, then whatever the port delivers
// within the configured timeout.
func (t *Transport) Read(p []byte) (int, error) {
	if len(t.pending) > 0 {
		n := copy(p, t.pending)
		t.pending = t.pending[n:]
		if len(t.pending) == 0 {
			t.pending = nil
		}
		return n, nil
	}
	if t.port == nil {
		return 0, fmt.Errorf("serial port %s is not open", t.portName)
	}

	n, err := t.port.Read(p)
	if err != nil {
		return n, fmt.Errorf("read from %s failed: %w", t.portName, err)
	}
	return n, nil
}

// Write sends the whole buffer and waits for it to leave the UART.
func (t *Transport) Write(p []byte) error {
	if t.port == nil {
		return fmt.Errorf("serial port %s is not open", t.portName)
	}

	for written := 0; written < len(p); {
		n, err := t.port.Write(p[written:])
		if err != nil {
			return fmt.Errorf("write to %s failed: %w", t.portName, err)
		}
		written += n
	}
	if err := t.port.Drain(); err != nil {
		return fmt.Errorf("drain on %s failed: %w", t.portName, err)
	}
	return nil
}

// SetTimeout bounds how long a single Read may block.
func (t *Transport) SetTimeout(timeout time.Duration) error {
	t.timeout = timeout
	if t.port == nil {
		return nil
	}
	if err := t.port.SetReadTimeout(timeout); err != nil {
		return fmt.Errorf("failed to set read timeout on %s: %w", t.portName, err)
	}
	return nil
}

// Close closes the serial port.
func (t *Transport) Close() error {
	if t.port == nil {
		return nil
	}
	port := t.port
	t.port = nil
	if err := port.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", t.portName, err)
	}
	return nil
}

// IsConnected returns true while the port is open.
func (t *Transport) IsConnected() bool {
	return t.port != nil
}

// Type returns dfplayer.TransportUART.
func (*Transport) Type() dfplayer.TransportType {
	return dfplayer.TransportUART
}
