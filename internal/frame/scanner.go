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

// Scanner folds an incoming byte stream into protocol frames. It keeps
// the partial frame and fill index between feeds, so a frame split across
// read batches is reassembled transparently.
//
// The zero value is ready to use.
type Scanner struct {
	buf [Size]byte
	idx int
}

// Feed advances the scanner by one byte and reports whether a complete
// frame is now buffered. The completed frame stays valid until the next
// Feed call.
//
// Bytes before a start marker are discarded. When the final position
// holds anything other than the end marker the whole partial frame is
// dropped and the scanner resynchronizes on the next start marker it
// sees; it does not reconsider the offending byte itself.
func (s *Scanner) Feed(b byte) bool {
	switch s.idx {
	case idxStart:
		if b != StartByte {
			return false
		}
		s.buf[idxStart] = b
		s.idx = 1
	case idxEnd:
		s.buf[idxEnd] = b
		s.idx = 0
		return b == EndByte
	default:
		s.buf[s.idx] = b
		s.idx++
	}
	return false
}

// Bytes returns the most recently completed frame. Only meaningful
// immediately after Feed reported completion.
func (s *Scanner) Bytes() []byte {
	return s.buf[:]
}

// Reset discards any partially accumulated frame.
func (s *Scanner) Reset() {
	s.idx = 0
}
