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

// Frame is a decoded wire frame. The parameter bytes stay separate
// because several commands treat them as independent fields rather than
// one 16-bit value.
type Frame struct {
	Checksum uint16 // as transmitted
	Command  byte
	ParamH   byte
	ParamL   byte
	Feedback bool
}

// Param returns the two parameter bytes as one big-endian value.
func (f Frame) Param() uint16 {
	return uint16(f.ParamH)<<8 | uint16(f.ParamL)
}

// Encode serializes a command into the fixed ten-byte wire form:
// start marker, version, length, command, feedback flag, param-high,
// param-low, checksum (big-endian), end marker.
func Encode(command, paramH, paramL byte, feedback, zeroCmdBias bool) [Size]byte {
	buf := [Size]byte{
		idxStart:  StartByte,
		idxLength: Length,
		idxEnd:    EndByte,
	}
	buf[idxVersion] = Version
	buf[idxCommand] = command
	if feedback {
		buf[idxFeedback] = 0x01
	}
	buf[idxParamH] = paramH
	buf[idxParamL] = paramL
	sum := Checksum(buf[idxVersion:idxChecksumH], zeroCmdBias)
	buf[idxChecksumH] = byte(sum >> 8)
	buf[idxChecksumL] = byte(sum)
	return buf
}

// Decode extracts the structured fields from a raw frame whose start and
// end markers the scanner has already verified. The returned bool reports
// whether the transmitted checksum matches the recomputed one; deciding
// what to do about a mismatch is the caller's business.
func Decode(raw []byte, zeroCmdBias bool) (Frame, bool) {
	f := Frame{
		Command:  raw[idxCommand],
		Feedback: raw[idxFeedback] != 0,
		ParamH:   raw[idxParamH],
		ParamL:   raw[idxParamL],
		Checksum: uint16(raw[idxChecksumH])<<8 | uint16(raw[idxChecksumL]),
	}
	return f, f.Checksum == Checksum(raw[idxVersion:idxChecksumH], zeroCmdBias)
}
