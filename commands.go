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

// Command identifies one operation in the shared YX5200 protocol code
// space. Host-issued commands occupy 0x01-0x1A; codes from 0x3A up are
// emitted by the module (notifications, the ack frame and query replies).
// The two halves share one code space but travel in opposite directions.
type Command byte

// Host-issued commands
const (
	CmdNext                 Command = 0x01
	CmdPrevious             Command = 0x02
	CmdPlayTrack            Command = 0x03 // track 1-2999
	CmdVolumeUp             Command = 0x04
	CmdVolumeDown           Command = 0x05
	CmdSetVolume            Command = 0x06 // volume 0-30
	CmdSetEQ                Command = 0x07
	CmdPlayLoopTrack        Command = 0x08
	CmdSetPlaybackSource    Command = 0x09
	CmdEnterSleep           Command = 0x0A
	CmdEnterNormal          Command = 0x0B // reported to be a no-op on most modules
	CmdReset                Command = 0x0C
	CmdPlay                 Command = 0x0D
	CmdPause                Command = 0x0E
	CmdPlayTrackInFolder    Command = 0x0F // 99 folders, 255 tracks each
	CmdConfigAudioAmp       Command = 0x10 // MSB enables amp, LSB sets gain 0-31
	CmdPlayLoopAll          Command = 0x11
	CmdPlayMP3Folder        Command = 0x12 // track in the MP3 folder
	CmdStartAdvertisement   Command = 0x13 // track in the ADVERT folder
	CmdPlayTrackLargeFolder Command = 0x14
	CmdStopAdvertisement    Command = 0x15
	CmdStop                 Command = 0x16
	CmdPlayLoopFolder       Command = 0x17
	CmdPlayRandom           Command = 0x18
	CmdLoopCurrentTrack     Command = 0x19
	CmdSetDAC               Command = 0x1A
)

// Module-issued notifications and query codes
const (
	CmdNotifyPushMedia          Command = 0x3A
	CmdNotifyPullOutMedia       Command = 0x3B
	CmdNotifyFinishTrackUSB     Command = 0x3C
	CmdNotifyFinishTrackSD      Command = 0x3D
	CmdNotifyFinishTrackUSBHost Command = 0x3E
	CmdQueryAvailableSources    Command = 0x3F
	CmdNotifyError              Command = 0x40
	CmdNotifyReply              Command = 0x41 // ack frame when feedback is enabled
	CmdQueryStatus              Command = 0x42
	CmdQueryVolume              Command = 0x43
	CmdQueryEQ                  Command = 0x44
	CmdQueryPlaybackMode        Command = 0x45 // reserved on current modules
	CmdQuerySWVersion           Command = 0x46 // reserved
	CmdQueryTrackCountUSB       Command = 0x47
	CmdQueryTrackCountSD        Command = 0x48
	CmdQueryTrackCountPC        Command = 0x49 // reserved
	CmdQueryKeepOn              Command = 0x4A // reserved
	CmdQueryCurrentTrackUSB     Command = 0x4B
	CmdQueryCurrentTrackSD      Command = 0x4C
	CmdQueryCurrentTrackUSBHost Command = 0x4D
	CmdQueryFolderTrackCount    Command = 0x4E
	CmdQueryFolderCount         Command = 0x4F
)

// CommandFromByte converts a wire byte to a Command. It reports false for
// the reserved gaps in the code space (0x00, 0x1B-0x39, 0x50 and up);
// those bytes never map to a Command, no matter what a frame claims.
func CommandFromByte(b byte) (Command, bool) {
	switch {
	case b >= byte(CmdNext) && b <= byte(CmdSetDAC):
		return Command(b), true
	case b >= byte(CmdNotifyPushMedia) && b <= byte(CmdQueryFolderCount):
		return Command(b), true
	default:
		return 0, false
	}
}

// MessageData is the (command, parameters) triple exchanged in both
// directions. Acknowledgement matching compares whole MessageData values.
type MessageData struct {
	Command Command
	ParamH  byte
	ParamL  byte
}

// NewMessage builds a MessageData with explicit parameter bytes.
func NewMessage(cmd Command, paramH, paramL byte) MessageData {
	return MessageData{Command: cmd, ParamH: paramH, ParamL: paramL}
}

// Param returns the parameter bytes as one big-endian value.
func (m MessageData) Param() uint16 {
	return uint16(m.ParamH)<<8 | uint16(m.ParamL)
}

// ackMessage is the frame the module sends to acknowledge a command when
// feedback is enabled.
var ackMessage = MessageData{Command: CmdNotifyReply}

// Equalizer selects one of the module's preset EQ curves.
type Equalizer byte

// Equalizer presets
const (
	EQNormal Equalizer = iota
	EQPop
	EQRock
	EQJazz
	EQClassic
	EQBass
)

// PlaybackSource selects which storage the module plays from.
type PlaybackSource byte

// Playback sources
const (
	SourceUSB PlaybackSource = iota
	SourceSDCard
	SourceAux
	SourceSleep
	SourceFlash
)

// Media is the bit field carried by media insert/remove notifications and
// the available-sources query reply.
type Media byte

// Media flags
const (
	MediaUSBFlash Media = 1 << iota
	MediaSDCard
	MediaUSBHost
)

// Quirks flags variant-specific wire deviations observed across the chip
// family. The zero value matches the documented FN-M16P behavior.
type Quirks uint8

const (
	// QuirkZeroCommandBias adds 2 to the checksum sum when the command
	// byte is zero. One legacy revision requires it; no datasheet
	// documents it.
	QuirkZeroCommandBias Quirks = 1 << iota
)
