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
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wrenproject/go-dfplayer/internal/frame"
)

// Timing defaults
const (
	defaultTimeout    = 1 * time.Second
	defaultResetDelay = 1500 * time.Millisecond // max FN-M16P boot time after reset
	sourceSettleDelay = 200 * time.Millisecond  // filesystem init after a source switch
	pollInterval      = 10 * time.Millisecond
)

// DeviceConfig contains configuration options for the Device.
type DeviceConfig struct {
	// Timeout is how long one exchange may wait for a response.
	Timeout time.Duration
	// ResetDelay is the settle time after a reset command.
	ResetDelay time.Duration
	// Feedback asks the module to acknowledge every command with an
	// explicit reply frame.
	Feedback bool
	// Quirks selects variant-specific protocol deviations.
	Quirks Quirks
}

// DefaultDeviceConfig returns the default device configuration.
func DefaultDeviceConfig() *DeviceConfig {
	return &DeviceConfig{
		Timeout:    defaultTimeout,
		ResetDelay: defaultResetDelay,
		Feedback:   true,
	}
}

// Device drives one YX5200-family audio module over a Transport.
//
// Thread Safety: Device is NOT thread-safe. It owns its receive buffer
// and session state exclusively and runs one command at a time; callers
// needing concurrent access must add their own synchronization. The
// engine never retries on its own either - retry is a policy to layer
// above it (see RetryWithConfig).
type Device struct {
	transport Transport
	config    *DeviceConfig
	clock     Clock

	lastCommand  MessageData
	lastResponse MessageData
	acknowledged bool
}

// New creates a device on the given transport. The transport must already
// be configured for the module's fixed 9600 8N1 framing.
func New(transport Transport, opts ...Option) (*Device, error) {
	device := &Device{
		transport: transport,
		config:    DefaultDeviceConfig(),
		clock:     systemClock{},
	}

	for _, opt := range opts {
		if err := opt(device); err != nil {
			return nil, err
		}
	}

	return device, nil
}

// Transport returns the underlying transport.
func (d *Device) Transport() Transport {
	return d.transport
}

// LastCommand returns the most recently transmitted message.
func (d *Device) LastCommand() MessageData {
	return d.lastCommand
}

// LastResponse returns the most recently decoded frame from the module.
// Unsolicited notifications (media events, finished tracks) surface here.
func (d *Device) LastResponse() MessageData {
	return d.lastResponse
}

// SetTimeout sets the response wait budget per exchange.
func (d *Device) SetTimeout(timeout time.Duration) error {
	if timeout <= 0 {
		return fmt.Errorf("%w: timeout %v", ErrInvalidParameter, timeout)
	}
	d.config.Timeout = timeout
	if err := d.transport.SetTimeout(timeout); err != nil {
		return fmt.Errorf("failed to set timeout on transport: %w", err)
	}
	return nil
}

// Init initializes the module.
func (d *Device) Init() error {
	return d.InitContext(context.Background())
}

// InitContext flushes boot-time garbage, resets the module and waits for
// it to settle. It fails only when the reset command cannot be
// transmitted; whatever the module says (or fails to say) afterwards is
// logged and ignored, since several chip revisions boot silently.
func (d *Device) InitContext(ctx context.Context) error {
	d.drainPending()

	if err := d.ResetContext(ctx); err != nil {
		var te *TransportError
		if errors.As(err, &te) && te.Op == "write" {
			return fmt.Errorf("%w: %w", ErrInit, err)
		}
		debugf("init: ignoring post-reset error: %v", err)
	}
	return nil
}

// Close closes the device connection.
func (d *Device) Close() error {
	if d.transport != nil {
		if err := d.transport.Close(); err != nil {
			return fmt.Errorf("failed to close transport: %w", err)
		}
		debugln("device closed")
	}
	return nil
}

// SendCommand transmits one message and awaits its outcome.
func (d *Device) SendCommand(data MessageData) error {
	return d.SendCommandContext(context.Background(), data)
}

// SendCommandContext transmits one message and awaits its outcome. With
// feedback enabled the module must acknowledge every command except
// Reset, which is allowed to reboot without answering.
func (d *Device) SendCommandContext(ctx context.Context, data MessageData) error {
	if err := d.exchange(ctx, data, d.config.Feedback); err != nil {
		return err
	}
	if d.config.Feedback && data.Command != CmdReset && !d.acknowledged {
		debugf("missing ack: sent=%+v last response=%+v", d.lastCommand, d.lastResponse)
		return ErrNoACK
	}
	return nil
}

// exchange writes one frame and, when await is set, drives the read loop
// until the stream goes idle after a valid frame or the timeout fires.
// Without await it only drains bytes the module already queued, so a
// feedback-disabled session never blocks on a reply that will not come.
func (d *Device) exchange(ctx context.Context, data MessageData, await bool) error {
	buf := frame.Encode(byte(data.Command), data.ParamH, data.ParamL, d.config.Feedback, d.zeroCmdBias())
	debugf("send: % X", buf[:])
	if err := d.transport.Write(buf[:]); err != nil {
		return NewTransportError("write", d.port(), fmt.Errorf("%w: %w", ErrTransportWrite, err), ErrorTypeTransient)
	}
	d.lastCommand = data
	d.acknowledged = false

	if await {
		return d.readLastMessage(ctx)
	}

	ready, err := d.transport.Ready()
	if err != nil {
		return NewTransportError("poll", d.port(), err, ErrorTypeTransient)
	}
	if !ready {
		return nil
	}
	return d.readLastMessage(ctx)
}

// readLastMessage runs the receive state machine until the stream goes
// idle after at least one complete frame, or until the timeout elapses
// with nothing readable. The scanner keeps its fill index between read
// batches, so frames split across reads reassemble transparently, and
// back-to-back frames within one burst are all consumed before the
// outcome is decided - the last decoded frame wins as lastResponse, and
// an error notification seen anywhere in the burst wins over everything.
//
// The timeout is advisory and cooperative: elapsed time is checked only
// at readiness-poll points, so latency can overshoot by one poll
// interval.
func (d *Device) readLastMessage(ctx context.Context) error {
	var (
		scan      frame.Scanner
		rxBuf     [32]byte
		moduleErr error
		start     = d.clock.Now()
	)

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("read cancelled: %w", err)
		}

		ready, err := d.transport.Ready()
		if err != nil {
			return NewTransportError("poll", d.port(), err, ErrorTypeTransient)
		}
		if !ready {
			if d.clock.Now().Sub(start) > d.config.Timeout {
				return NewTimeoutError("read", d.port())
			}
			d.clock.Sleep(pollInterval)
			continue
		}

		n, err := d.transport.Read(rxBuf[:])
		if err != nil {
			return NewTransportError("read", d.port(), fmt.Errorf("%w: %w", ErrTransportRead, err), ErrorTypeTransient)
		}

		for i := 0; i < n; i++ {
			if !scan.Feed(rxBuf[i]) {
				continue
			}

			f, csumOK := frame.Decode(scan.Bytes(), d.zeroCmdBias())
			debugf("recv: % X (checksum ok=%v)", scan.Bytes(), csumOK)
			if csumOK {
				cmd, known := CommandFromByte(f.Command)
				if !known {
					return fmt.Errorf("%w: command %#02x", ErrUnknownReply, f.Command)
				}
				d.lastResponse = MessageData{Command: cmd, ParamH: f.ParamH, ParamL: f.ParamL}
				if d.lastResponse == ackMessage {
					d.acknowledged = true
				}
				if cmd == CmdNotifyError {
					moduleErr = classifyModuleError(f.ParamL)
				}
			}

			// Burst handling: keep scanning while the same batch or the
			// transport still has data, then yield the outcome at idle.
			more := i < n-1
			if !more {
				if more, err = d.transport.Ready(); err != nil {
					return NewTransportError("poll", d.port(), err, ErrorTypeTransient)
				}
			}
			if more {
				continue
			}
			if moduleErr != nil {
				return moduleErr
			}
			if !csumOK {
				return NewFrameCorruptedError("read", d.port())
			}
			return nil
		}
	}
}

// query sends a query command and returns the 16-bit value from the
// reply, which must echo the query code.
func (d *Device) query(ctx context.Context, cmd Command) (uint16, error) {
	if err := d.exchange(ctx, NewMessage(cmd, 0, 0), true); err != nil {
		return 0, err
	}
	if d.lastResponse.Command != cmd {
		return 0, fmt.Errorf("%w: queried %#02x, module answered %#02x",
			ErrUnexpectedReply, byte(cmd), byte(d.lastResponse.Command))
	}
	return d.lastResponse.Param(), nil
}

// drainPending does one best-effort read of whatever is already buffered.
// Used around reset, where stale boot bytes would desynchronize the next
// exchange. Errors are deliberately ignored.
func (d *Device) drainPending() {
	ready, err := d.transport.Ready()
	if err != nil || !ready {
		return
	}
	var scratch [32]byte
	if n, err := d.transport.Read(scratch[:]); err == nil && n > 0 {
		debugf("drained %d stale bytes: % X", n, scratch[:n])
	}
}

func (d *Device) zeroCmdBias() bool {
	return d.config.Quirks&QuirkZeroCommandBias != 0
}

func (d *Device) port() string {
	return string(d.transport.Type())
}
