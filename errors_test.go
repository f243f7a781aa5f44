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
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"timeout sentinel", ErrTimeout, true},
		{"transport read", ErrTransportRead, true},
		{"transport write", ErrTransportWrite, true},
		{"communication failed", ErrCommunicationFailed, true},
		{"no ack", ErrNoACK, true},
		{"frame corrupted", ErrFrameCorrupted, true},
		{"unknown reply", ErrUnknownReply, false},
		{"unexpected reply", ErrUnexpectedReply, false},
		{"invalid parameter", ErrInvalidParameter, false},
		{"init failure", ErrInit, false},
		{"module busy", ModuleErrBusy, true},
		{"module serial receive", ModuleErrSerialReceive, true},
		{"module checksum", ModuleErrChecksum, true},
		{"module sleeping", ModuleErrSleeping, false},
		{"track out of scope", ModuleErrTrackOutOfScope, false},
		{"track not found", ModuleErrTrackNotFound, false},
		{"insertion", ModuleErrInsertion, false},
		{"enter sleep", ModuleErrEnterSleep, false},
		{"wrapped retryable", fmt.Errorf("ctx: %w", ErrTimeout), true},
		{"wrapped permanent", fmt.Errorf("ctx: %w", ModuleErrTrackNotFound), false},
		{"transient transport error",
			NewTransportError("read", "uart", errors.New("eio"), ErrorTypeTransient), true},
		{"permanent transport error",
			NewTransportError("open", "uart", errors.New("enoent"), ErrorTypePermanent), false},
		{"timeout transport error", NewTimeoutError("read", "uart"), true},
		{"corrupted frame error", NewFrameCorruptedError("read", "uart"), true},
		{"unrelated error", errors.New("something else"), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestGetErrorType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"nil", nil, ErrorTypePermanent},
		{"timeout sentinel", ErrTimeout, ErrorTypeTimeout},
		{"transport read", ErrTransportRead, ErrorTypeTransient},
		{"no ack", ErrNoACK, ErrorTypeTransient},
		{"frame corrupted", ErrFrameCorrupted, ErrorTypeTransient},
		{"invalid parameter", ErrInvalidParameter, ErrorTypePermanent},
		{"module busy", ModuleErrBusy, ErrorTypeTransient},
		{"track not found", ModuleErrTrackNotFound, ErrorTypePermanent},
		{"timeout transport error", NewTimeoutError("read", "uart"), ErrorTypeTimeout},
		{"transient transport error",
			NewTransportError("read", "uart", errors.New("eio"), ErrorTypeTransient), ErrorTypeTransient},
		{"unrelated error", errors.New("something else"), ErrorTypePermanent},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, GetErrorType(tt.err))
		})
	}
}

func TestTransportError(t *testing.T) {
	t.Parallel()

	cause := errors.New("device disappeared")
	err := NewTransportError("write", "uart", cause, ErrorTypeTransient)

	assert.Equal(t, "write uart: device disappeared", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, err.Retryable)

	noPort := NewTransportError("open", "", cause, ErrorTypePermanent)
	assert.Equal(t, "open: device disappeared", noPort.Error())
	assert.False(t, noPort.Retryable)
}

func TestTimeoutErrorUnwrapsToSentinel(t *testing.T) {
	t.Parallel()

	err := NewTimeoutError("read", "uart")
	assert.ErrorIs(t, err, ErrTimeout)

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, ErrorTypeTimeout, te.Type)
}

func TestModuleErrorStrings(t *testing.T) {
	t.Parallel()

	known := []ModuleError{
		ModuleErrBusy, ModuleErrSleeping, ModuleErrSerialReceive,
		ModuleErrChecksum, ModuleErrTrackOutOfScope, ModuleErrTrackNotFound,
		ModuleErrInsertion, ModuleErrEnterSleep,
	}
	seen := make(map[string]bool)
	for _, me := range known {
		msg := me.Error()
		assert.NotEmpty(t, msg)
		assert.False(t, seen[msg], "duplicate message %q", msg)
		seen[msg] = true
	}

	assert.Equal(t, "module error 0x99", ModuleError(0x99).Error())
}

func TestClassifyModuleError(t *testing.T) {
	t.Parallel()

	for code := byte(0x01); code <= 0x08; code++ {
		err := classifyModuleError(code)
		var me ModuleError
		require.ErrorAs(t, err, &me, "code %#02x", code)
		assert.Equal(t, ModuleError(code), me)
	}

	for _, code := range []byte{0x00, 0x09, 0x40, 0xFF} {
		err := classifyModuleError(code)
		assert.ErrorIs(t, err, ErrUnknownReply, "code %#02x", code)
	}
}
