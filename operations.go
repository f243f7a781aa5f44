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

import "context"

// Reset restarts the module and waits for it to come back.
func (d *Device) Reset() error {
	return d.ResetContext(context.Background())
}

// Play resumes playback.
func (d *Device) Play() error {
	return d.PlayContext(context.Background())
}

// Pause pauses playback.
func (d *Device) Pause() error {
	return d.PauseContext(context.Background())
}

// Stop stops all playback, advertisements included.
func (d *Device) Stop() error {
	return d.StopContext(context.Background())
}

// Next skips to the next track.
func (d *Device) Next() error {
	return d.NextContext(context.Background())
}

// Previous skips to the previous track.
func (d *Device) Previous() error {
	return d.PreviousContext(context.Background())
}

// PlayRandom shuffles across all media on the current source.
func (d *Device) PlayRandom() error {
	return d.PlayRandomContext(context.Background())
}

// PlayTrack plays a track by global index (0-2999).
func (d *Device) PlayTrack(track uint16) error {
	return d.PlayTrackContext(context.Background(), track)
}

// PlayTrackInFolder plays a track from a numbered folder.
func (d *Device) PlayTrackInFolder(folder, track uint8) error {
	return d.PlayTrackInFolderContext(context.Background(), folder, track)
}

// PlayMP3Folder plays a track from the MP3 folder.
func (d *Device) PlayMP3Folder(track uint16) error {
	return d.PlayMP3FolderContext(context.Background(), track)
}

// StartAdvertisement interrupts playback with an ADVERT folder track.
func (d *Device) StartAdvertisement(track uint16) error {
	return d.StartAdvertisementContext(context.Background(), track)
}

// StopAdvertisement cancels a running advertisement.
func (d *Device) StopAdvertisement() error {
	return d.StopAdvertisementContext(context.Background())
}

// SetVolume sets the volume (0-30).
func (d *Device) SetVolume(volume uint8) error {
	return d.SetVolumeContext(context.Background(), volume)
}

// VolumeUp raises the volume one step.
func (d *Device) VolumeUp() error {
	return d.VolumeUpContext(context.Background())
}

// VolumeDown lowers the volume one step.
func (d *Device) VolumeDown() error {
	return d.VolumeDownContext(context.Background())
}

// SetEqualizer selects an EQ preset.
func (d *Device) SetEqualizer(eq Equalizer) error {
	return d.SetEqualizerContext(context.Background(), eq)
}

// SetPlaybackSource switches the playback source.
func (d *Device) SetPlaybackSource(source PlaybackSource) error {
	return d.SetPlaybackSourceContext(context.Background(), source)
}

// PlayLoopTrack plays one track (1-2999) on repeat.
func (d *Device) PlayLoopTrack(track uint16) error {
	return d.PlayLoopTrackContext(context.Background(), track)
}

// PlayTrackLargeFolder plays a track from a large folder (folders 1-15,
// tracks 1-3000).
func (d *Device) PlayTrackLargeFolder(folder uint8, track uint16) error {
	return d.PlayTrackLargeFolderContext(context.Background(), folder, track)
}

// SetLoopAll enables or disables looping over all tracks.
func (d *Device) SetLoopAll(enable bool) error {
	return d.SetLoopAllContext(context.Background(), enable)
}

// LoopTrack enables or disables looping of the current track.
func (d *Device) LoopTrack(enable bool) error {
	return d.LoopTrackContext(context.Background(), enable)
}

// PlayLoopFolder plays a folder on repeat.
func (d *Device) PlayLoopFolder(folder uint8) error {
	return d.PlayLoopFolderContext(context.Background(), folder)
}

// SetDAC powers the DAC on or off.
func (d *Device) SetDAC(enable bool) error {
	return d.SetDACContext(context.Background(), enable)
}

// ConfigAudioAmp configures the amplifier (gain 0-31).
func (d *Device) ConfigAudioAmp(enable bool, gain uint8) error {
	return d.ConfigAudioAmpContext(context.Background(), enable, gain)
}

// Sleep puts the module into standby.
func (d *Device) Sleep() error {
	return d.SleepContext(context.Background())
}

// Status returns the module status word.
func (d *Device) Status() (uint16, error) {
	return d.StatusContext(context.Background())
}

// Volume returns the current volume (0-30).
func (d *Device) Volume() (uint8, error) {
	return d.VolumeContext(context.Background())
}

// Equalizer returns the active EQ preset.
func (d *Device) Equalizer() (Equalizer, error) {
	return d.EqualizerContext(context.Background())
}

// TrackCountUSB returns the number of tracks on USB flash.
func (d *Device) TrackCountUSB() (uint16, error) {
	return d.TrackCountUSBContext(context.Background())
}

// TrackCountSD returns the number of tracks on the SD card.
func (d *Device) TrackCountSD() (uint16, error) {
	return d.TrackCountSDContext(context.Background())
}

// CurrentTrackUSB returns the playing track index on USB flash.
func (d *Device) CurrentTrackUSB() (uint16, error) {
	return d.CurrentTrackUSBContext(context.Background())
}

// CurrentTrackSD returns the playing track index on the SD card.
func (d *Device) CurrentTrackSD() (uint16, error) {
	return d.CurrentTrackSDContext(context.Background())
}

// FolderTrackCount returns the number of tracks in a folder.
func (d *Device) FolderTrackCount(folder uint8) (uint16, error) {
	return d.FolderTrackCountContext(context.Background(), folder)
}

// FolderCount returns the number of folders on the current source.
func (d *Device) FolderCount() (uint16, error) {
	return d.FolderCountContext(context.Background())
}

// AvailableSources returns the media currently attached.
func (d *Device) AvailableSources() (Media, error) {
	return d.AvailableSourcesContext(context.Background())
}
