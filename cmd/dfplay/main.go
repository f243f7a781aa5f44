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

// dfplay exercises a DFPlayer-family module from the command line:
// initialize it, set volume and source, play a track and report what
// the module answers.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	dfplayer "github.com/wrenproject/go-dfplayer"
	"github.com/wrenproject/go-dfplayer/transport/uart"
)

func main() {
	var (
		devicePath = flag.String("device", "/dev/ttyUSB0", "serial port the module is attached to")
		timeout    = flag.Duration("timeout", time.Second, "response timeout per command")
		feedback   = flag.Bool("feedback", true, "request an acknowledgement for every command")
		debug      = flag.Bool("debug", false, "log every frame on stderr")
		volume     = flag.Int("volume", -1, "set volume 0-30 before playing (-1 leaves it)")
		track      = flag.Int("track", 0, "track number to play (0 queries status only)")
		source     = flag.String("source", "", "playback source to select: usb, sd or flash")
	)
	flag.Parse()

	if *debug {
		dfplayer.SetDebugEnabled(true)
	}

	if err := run(*devicePath, *timeout, *feedback, *volume, *track, *source); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(devicePath string, timeout time.Duration, feedback bool, volume, track int, source string) error {
	transport, err := uart.New(devicePath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", devicePath, err)
	}
	defer func() { _ = transport.Close() }()

	device, err := dfplayer.New(transport,
		dfplayer.WithTimeout(timeout),
		dfplayer.WithFeedback(feedback),
	)
	if err != nil {
		return fmt.Errorf("failed to create device: %w", err)
	}

	fmt.Printf("Initializing module on %s...\n", devicePath)
	if err := device.Init(); err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	if media, err := device.AvailableSources(); err != nil {
		fmt.Printf("Available sources: query failed (%v)\n", err)
	} else {
		fmt.Printf("Available sources:%s\n", mediaString(media))
	}

	if source != "" {
		src, err := parseSource(source)
		if err != nil {
			return err
		}
		if err := device.SetPlaybackSource(src); err != nil {
			return fmt.Errorf("failed to select source %s: %w", source, err)
		}
		fmt.Printf("Selected source: %s\n", source)
	}

	if volume >= 0 {
		if err := device.SetVolume(uint8(volume)); err != nil {
			return fmt.Errorf("failed to set volume: %w", err)
		}
		fmt.Printf("Volume set to %d\n", volume)
	}

	if track > 0 {
		if err := device.PlayTrack(uint16(track)); err != nil {
			return fmt.Errorf("failed to play track %d: %w", track, err)
		}
		fmt.Printf("Playing track %d\n", track)
		return nil
	}

	status, err := device.Status()
	if err != nil {
		return fmt.Errorf("status query failed: %w", err)
	}
	currentVolume, err := device.Volume()
	if err != nil {
		return fmt.Errorf("volume query failed: %w", err)
	}
	fmt.Printf("Status: %#04x  Volume: %d\n", status, currentVolume)
	return nil
}

func parseSource(s string) (dfplayer.PlaybackSource, error) {
	switch s {
	case "usb":
		return dfplayer.SourceUSB, nil
	case "sd":
		return dfplayer.SourceSDCard, nil
	case "flash":
		return dfplayer.SourceFlash, nil
	default:
		return 0, fmt.Errorf("unknown source %q (want usb, sd or flash)", s)
	}
}

func mediaString(media dfplayer.Media) string {
	out := ""
	if media&dfplayer.MediaUSBFlash != 0 {
		out += " usb"
	}
	if media&dfplayer.MediaSDCard != 0 {
		out += " sd"
	}
	if media&dfplayer.MediaUSBHost != 0 {
		out += " usb-host"
	}
	if out == "" {
		return " none"
	}
	return out
}
