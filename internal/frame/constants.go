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

// Package frame provides frame manipulation and protocol constants for
// YX5200-family serial communication.
package frame

// Frame markers and fixed header bytes
const (
	StartByte = 0x7E // first byte of every frame
	EndByte   = 0xEF // last byte of every frame
	Version   = 0xFF // fixed protocol version byte
	Length    = 0x06 // fixed length byte (version through param-low)
)

// Size is the wire size of a frame. The protocol has no variable-length
// form; every packet is exactly ten bytes.
const Size = 10

// Byte offsets within a frame
const (
	idxStart     = 0
	idxVersion   = 1
	idxLength    = 2
	idxCommand   = 3
	idxFeedback  = 4
	idxParamH    = 5
	idxParamL    = 6
	idxChecksumH = 7
	idxChecksumL = 8
	idxEnd       = 9
)
