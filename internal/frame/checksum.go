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

package frame

// Checksum computes the 16-bit frame checksum over payload, which must be
// the version-through-param-low bytes of one frame in wire order. The
// result is the two's-complement negation of the wrapping byte sum, so
// sum(payload) + Checksum(payload) == 0 mod 65536.
//
// zeroCmdBias reproduces a legacy chip revision that adds 2 to the sum
// whenever the command byte is zero. No datasheet documents it; enable it
// only for modules that demonstrably require it.
func Checksum(payload []byte, zeroCmdBias bool) uint16 {
	var sum uint16
	for _, b := range payload {
		sum += uint16(b)
	}
	if zeroCmdBias && len(payload) > 2 && payload[2] == 0 {
		sum += 2
	}
	return -sum
}
