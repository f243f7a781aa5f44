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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandFromByte(t *testing.T) {
	t.Parallel()

	t.Run("host command range", func(t *testing.T) {
		t.Parallel()
		for b := byte(0x01); b <= 0x1A; b++ {
			cmd, ok := CommandFromByte(b)
			assert.True(t, ok, "byte %#02x", b)
			assert.Equal(t, Command(b), cmd)
		}
	})

	t.Run("module code range", func(t *testing.T) {
		t.Parallel()
		for b := byte(0x3A); b <= 0x4F; b++ {
			cmd, ok := CommandFromByte(b)
			assert.True(t, ok, "byte %#02x", b)
			assert.Equal(t, Command(b), cmd)
		}
	})

	t.Run("reserved gaps", func(t *testing.T) {
		t.Parallel()
		for _, b := range []byte{0x00, 0x1B, 0x20, 0x39, 0x50, 0x7E, 0xFF} {
			_, ok := CommandFromByte(b)
			assert.False(t, ok, "byte %#02x must not map to a command", b)
		}
	})
}

func TestMessageDataParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		paramH byte
		paramL byte
		want   uint16
	}{
		{"zero", 0x00, 0x00, 0},
		{"low byte only", 0x00, 0x14, 20},
		{"both bytes", 0x0B, 0xB7, 2999},
		{"max", 0xFF, 0xFF, 65535},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			msg := NewMessage(CmdPlayTrack, tt.paramH, tt.paramL)
			assert.Equal(t, tt.want, msg.Param())
		})
	}
}

func TestAckMessageMatching(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ackMessage, NewMessage(CmdNotifyReply, 0, 0))
	assert.NotEqual(t, ackMessage, NewMessage(CmdNotifyReply, 0, 1),
		"ack matching compares whole values, parameters included")
}
