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
	"fmt"
)

// Parameter limits. Range violations fail with ErrInvalidParameter before
// any byte reaches the transport.
const (
	maxVolume           = 30
	maxTrack            = 2999
	maxFolder           = 99
	maxFolderTrack      = 255
	maxLargeFolder      = 15
	maxLargeFolderTrack = 3000
	maxAmpGain          = 31
)

// ResetContext restarts the module and waits for it to come back. The
// module is exempt from ack checking here; several revisions reboot
// before they manage to answer.
func (d *Device) ResetContext(ctx context.Context) error {
	if err := d.SendCommandContext(ctx, NewMessage(CmdReset, 0, 0)); err != nil {
		return err
	}
	d.clock.Sleep(d.config.ResetDelay)
	// a post-reset media notification may already be queued; flush it
	d.drainPending()
	return nil
}

// PlayContext resumes playback.
func (d *Device) PlayContext(ctx context.Context) error {
	return d.SendCommandContext(ctx, NewMessage(CmdPlay, 0, 0))
}

// PauseContext pauses playback.
func (d *Device) PauseContext(ctx context.Context) error {
	return d.SendCommandContext(ctx, NewMessage(CmdPause, 0, 0))
}

// StopContext stops all playback, advertisements included.
func (d *Device) StopContext(ctx context.Context) error {
	return d.SendCommandContext(ctx, NewMessage(CmdStop, 0, 0))
}

// NextContext skips to the next track.
func (d *Device) NextContext(ctx context.Context) error {
	return d.SendCommandContext(ctx, NewMessage(CmdNext, 0, 0))
}

// PreviousContext skips to the previous track.
func (d *Device) PreviousContext(ctx context.Context) error {
	return d.SendCommandContext(ctx, NewMessage(CmdPrevious, 0, 0))
}

// PlayRandomContext shuffles across all media on the current source.
func (d *Device) PlayRandomContext(ctx context.Context) error {
	return d.SendCommandContext(ctx, NewMessage(CmdPlayRandom, 0, 0))
}

// PlayTrackContext plays a track by global index (0-2999).
func (d *Device) PlayTrackContext(ctx context.Context, track uint16) error {
	if track > maxTrack {
		return fmt.Errorf("%w: track %d exceeds %d", ErrInvalidParameter, track, maxTrack)
	}
	return d.SendCommandContext(ctx, NewMessage(CmdPlayTrack, byte(track>>8), byte(track)))
}

// PlayTrackInFolderContext plays a track from a numbered folder
// (folders 1-99, tracks 1-255).
func (d *Device) PlayTrackInFolderContext(ctx context.Context, folder, track uint8) error {
	if folder < 1 || folder > maxFolder {
		return fmt.Errorf("%w: folder %d outside 1-%d", ErrInvalidParameter, folder, maxFolder)
	}
	if track < 1 {
		return fmt.Errorf("%w: track 0", ErrInvalidParameter)
	}
	return d.SendCommandContext(ctx, NewMessage(CmdPlayTrackInFolder, folder, track))
}

// PlayMP3FolderContext plays a track from the MP3 folder (1-2999).
func (d *Device) PlayMP3FolderContext(ctx context.Context, track uint16) error {
	if track < 1 || track > maxTrack {
		return fmt.Errorf("%w: MP3 folder track %d outside 1-%d", ErrInvalidParameter, track, maxTrack)
	}
	return d.SendCommandContext(ctx, NewMessage(CmdPlayMP3Folder, byte(track>>8), byte(track)))
}

// StartAdvertisementContext interrupts playback with a track from the
// ADVERT folder (1-2999); the interrupted track resumes afterwards.
func (d *Device) StartAdvertisementContext(ctx context.Context, track uint16) error {
	if track < 1 || track > maxTrack {
		return fmt.Errorf("%w: advert track %d outside 1-%d", ErrInvalidParameter, track, maxTrack)
	}
	return d.SendCommandContext(ctx, NewMessage(CmdStartAdvertisement, byte(track>>8), byte(track)))
}

// StopAdvertisementContext cancels a running advertisement.
func (d *Device) StopAdvertisementContext(ctx context.Context) error {
	return d.SendCommandContext(ctx, NewMessage(CmdStopAdvertisement, 0, 0))
}

// SetVolumeContext sets the volume (0-30).
func (d *Device) SetVolumeContext(ctx context.Context, volume uint8) error {
	if volume > maxVolume {
		return fmt.Errorf("%w: volume %d exceeds %d", ErrInvalidParameter, volume, maxVolume)
	}
	return d.SendCommandContext(ctx, NewMessage(CmdSetVolume, 0, volume))
}

// VolumeUpContext raises the volume one step.
func (d *Device) VolumeUpContext(ctx context.Context) error {
	return d.SendCommandContext(ctx, NewMessage(CmdVolumeUp, 0, 0))
}

// VolumeDownContext lowers the volume one step.
func (d *Device) VolumeDownContext(ctx context.Context) error {
	return d.SendCommandContext(ctx, NewMessage(CmdVolumeDown, 0, 0))
}

// SetEqualizerContext selects an EQ preset.
func (d *Device) SetEqualizerContext(ctx context.Context, eq Equalizer) error {
	if eq > EQBass {
		return fmt.Errorf("%w: equalizer %d", ErrInvalidParameter, eq)
	}
	return d.SendCommandContext(ctx, NewMessage(CmdSetEQ, 0, byte(eq)))
}

// SetPlaybackSourceContext switches the playback source and waits for the
// module to mount its filesystem.
func (d *Device) SetPlaybackSourceContext(ctx context.Context, source PlaybackSource) error {
	if source > SourceFlash {
		return fmt.Errorf("%w: playback source %d", ErrInvalidParameter, source)
	}
	if err := d.SendCommandContext(ctx, NewMessage(CmdSetPlaybackSource, 0, byte(source))); err != nil {
		return err
	}
	d.clock.Sleep(sourceSettleDelay)
	return nil
}

// PlayLoopTrackContext plays one track (1-2999) on repeat.
func (d *Device) PlayLoopTrackContext(ctx context.Context, track uint16) error {
	if track < 1 || track > maxTrack {
		return fmt.Errorf("%w: track %d outside 1-%d", ErrInvalidParameter, track, maxTrack)
	}
	return d.SendCommandContext(ctx, NewMessage(CmdPlayLoopTrack, byte(track>>8), byte(track)))
}

// PlayTrackLargeFolderContext plays a track from a large folder. The
// folder number (1-15) rides in the top four bits, the track (1-3000)
// in the remaining twelve.
func (d *Device) PlayTrackLargeFolderContext(ctx context.Context, folder uint8, track uint16) error {
	if folder < 1 || folder > maxLargeFolder {
		return fmt.Errorf("%w: large folder %d outside 1-%d", ErrInvalidParameter, folder, maxLargeFolder)
	}
	if track < 1 || track > maxLargeFolderTrack {
		return fmt.Errorf("%w: track %d outside 1-%d", ErrInvalidParameter, track, maxLargeFolderTrack)
	}
	param := uint16(folder)<<12 | track
	return d.SendCommandContext(ctx, NewMessage(CmdPlayTrackLargeFolder, byte(param>>8), byte(param)))
}

// SetLoopAllContext enables or disables looping over all tracks.
func (d *Device) SetLoopAllContext(ctx context.Context, enable bool) error {
	return d.SendCommandContext(ctx, NewMessage(CmdPlayLoopAll, 0, boolByte(enable)))
}

// LoopTrackContext enables or disables looping of the current track.
func (d *Device) LoopTrackContext(ctx context.Context, enable bool) error {
	return d.SendCommandContext(ctx, NewMessage(CmdLoopCurrentTrack, 0, boolByte(enable)))
}

// PlayLoopFolderContext plays a folder (1-99) on repeat.
func (d *Device) PlayLoopFolderContext(ctx context.Context, folder uint8) error {
	if folder < 1 || folder > maxFolder {
		return fmt.Errorf("%w: folder %d outside 1-%d", ErrInvalidParameter, folder, maxFolder)
	}
	return d.SendCommandContext(ctx, NewMessage(CmdPlayLoopFolder, 0, folder))
}

// SetDACContext powers the DAC on or off.
func (d *Device) SetDACContext(ctx context.Context, enable bool) error {
	// the wire flag is inverted: 1 mutes the DAC
	return d.SendCommandContext(ctx, NewMessage(CmdSetDAC, 0, boolByte(!enable)))
}

// ConfigAudioAmpContext configures the amplifier (gain 0-31).
func (d *Device) ConfigAudioAmpContext(ctx context.Context, enable bool, gain uint8) error {
	if gain > maxAmpGain {
		return fmt.Errorf("%w: amp gain %d exceeds %d", ErrInvalidParameter, gain, maxAmpGain)
	}
	return d.SendCommandContext(ctx, NewMessage(CmdConfigAudioAmp, boolByte(enable), gain))
}

// SleepContext puts the module into standby.
func (d *Device) SleepContext(ctx context.Context) error {
	return d.SendCommandContext(ctx, NewMessage(CmdEnterSleep, 0, 0))
}

// StatusContext returns the module status word.
func (d *Device) StatusContext(ctx context.Context) (uint16, error) {
	return d.query(ctx, CmdQueryStatus)
}

// VolumeContext returns the current volume (0-30).
func (d *Device) VolumeContext(ctx context.Context) (uint8, error) {
	v, err := d.query(ctx, CmdQueryVolume)
	if err != nil {
		return 0, err
	}
	return uint8(v), nil
}

// EqualizerContext returns the active EQ preset.
func (d *Device) EqualizerContext(ctx context.Context) (Equalizer, error) {
	v, err := d.query(ctx, CmdQueryEQ)
	if err != nil {
		return 0, err
	}
	return Equalizer(v), nil
}

// TrackCountUSBContext returns the number of tracks on USB flash.
func (d *Device) TrackCountUSBContext(ctx context.Context) (uint16, error) {
	return d.query(ctx, CmdQueryTrackCountUSB)
}

// TrackCountSDContext returns the number of tracks on the SD card.
func (d *Device) TrackCountSDContext(ctx context.Context) (uint16, error) {
	return d.query(ctx, CmdQueryTrackCountSD)
}

// CurrentTrackUSBContext returns the playing track index on USB flash.
func (d *Device) CurrentTrackUSBContext(ctx context.Context) (uint16, error) {
	return d.query(ctx, CmdQueryCurrentTrackUSB)
}

// CurrentTrackSDContext returns the playing track index on the SD card.
func (d *Device) CurrentTrackSDContext(ctx context.Context) (uint16, error) {
	return d.query(ctx, CmdQueryCurrentTrackSD)
}

// FolderTrackCountContext returns the number of tracks in a folder (1-99).
func (d *Device) FolderTrackCountContext(ctx context.Context, folder uint8) (uint16, error) {
	if folder < 1 || folder > maxFolder {
		return 0, fmt.Errorf("%w: folder %d outside 1-%d", ErrInvalidParameter, folder, maxFolder)
	}
	if err := d.exchange(ctx, NewMessage(CmdQueryFolderTrackCount, 0, folder), true); err != nil {
		return 0, err
	}
	if d.lastResponse.Command != CmdQueryFolderTrackCount {
		return 0, fmt.Errorf("%w: queried %#02x, module answered %#02x",
			ErrUnexpectedReply, byte(CmdQueryFolderTrackCount), byte(d.lastResponse.Command))
	}
	return d.lastResponse.Param(), nil
}

// FolderCountContext returns the number of folders on the current source.
func (d *Device) FolderCountContext(ctx context.Context) (uint16, error) {
	return d.query(ctx, CmdQueryFolderCount)
}

// AvailableSourcesContext returns the media currently attached.
func (d *Device) AvailableSourcesContext(ctx context.Context) (Media, error) {
	v, err := d.query(ctx, CmdQueryAvailableSources)
	if err != nil {
		return 0, err
	}
	return Media(v), nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
