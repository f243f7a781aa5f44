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
)

// Engine errors
var (
	// ErrTransportRead indicates the byte source failed during a read.
	ErrTransportRead = errors.New("transport read failed")
	// ErrTransportWrite indicates the byte sink failed during a write.
	ErrTransportWrite = errors.New("transport write failed")
	// ErrTimeout indicates the configured response wait elapsed with no
	// readable data.
	ErrTimeout = errors.New("operation timeout")
	// ErrNoACK indicates feedback was enabled but no acknowledgement
	// frame arrived before the read loop finished.
	ErrNoACK = errors.New("no acknowledgement received")
	// ErrFrameCorrupted indicates a frame arrived whose transmitted
	// checksum does not match its payload.
	ErrFrameCorrupted = errors.New("frame checksum mismatch")
	// ErrUnknownReply indicates a structurally valid frame carried a code
	// outside the known catalogue.
	ErrUnknownReply = errors.New("unknown code in module reply")
	// ErrUnexpectedReply indicates a query was answered with a frame for
	// a different command.
	ErrUnexpectedReply = errors.New("unexpected reply command")
	// ErrInvalidParameter indicates a caller-supplied value was rejected
	// before any I/O took place.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrInit indicates the initialization reset could not be transmitted.
	ErrInit = errors.New("device initialization failed")
	// ErrCommunicationFailed is a generic exchange failure used by the
	// retry helpers.
	ErrCommunicationFailed = errors.New("communication failed")
)

// ModuleError is a fault the module itself reports through an error
// notification frame. The code travels in the param-low byte.
type ModuleError byte

// Module fault codes
const (
	ModuleErrBusy            ModuleError = 0x01
	ModuleErrSleeping        ModuleError = 0x02
	ModuleErrSerialReceive   ModuleError = 0x03
	ModuleErrChecksum        ModuleError = 0x04
	ModuleErrTrackOutOfScope ModuleError = 0x05
	ModuleErrTrackNotFound   ModuleError = 0x06
	ModuleErrInsertion       ModuleError = 0x07
	ModuleErrEnterSleep      ModuleError = 0x08
)

func (e ModuleError) Error() string {
	switch e {
	case ModuleErrBusy:
		return "module busy"
	case ModuleErrSleeping:
		return "module sleeping"
	case ModuleErrSerialReceive:
		return "module serial receive error"
	case ModuleErrChecksum:
		return "module reports checksum error"
	case ModuleErrTrackOutOfScope:
		return "track index out of range"
	case ModuleErrTrackNotFound:
		return "track not found"
	case ModuleErrInsertion:
		return "media insertion error"
	case ModuleErrEnterSleep:
		return "module failed to enter sleep"
	default:
		return fmt.Sprintf("module error %#02x", byte(e))
	}
}

// classifyModuleError maps the raw fault code of an error notification to
// a ModuleError. Codes outside the documented range come back as
// ErrUnknownReply: the notification flag alone is not proof the code
// means anything.
func classifyModuleError(code byte) error {
	if code >= byte(ModuleErrBusy) && code <= byte(ModuleErrEnterSleep) {
		return ModuleError(code)
	}
	return fmt.Errorf("%w: module error code %#02x", ErrUnknownReply, code)
}

// ErrorType categorizes errors for retry decisions
type ErrorType int

const (
	// ErrorTypePermanent indicates errors that will not resolve on retry.
	ErrorTypePermanent ErrorType = iota
	// ErrorTypeTransient indicates errors that may resolve on retry.
	ErrorTypeTransient
	// ErrorTypeTimeout indicates timeout errors.
	ErrorTypeTimeout
)

// TransportError wraps a low-level transport failure with the operation
// and port it happened on.
type TransportError struct {
	Err       error
	Op        string
	Port      string
	Type      ErrorType
	Retryable bool
}

func (e *TransportError) Error() string {
	if e.Port != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Port, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError creates a new transport error
func NewTransportError(op, port string, err error, errType ErrorType) *TransportError {
	return &TransportError{
		Op:        op,
		Port:      port,
		Err:       err,
		Type:      errType,
		Retryable: errType != ErrorTypePermanent,
	}
}

// NewTimeoutError creates a transport error for a response wait that
// elapsed with nothing to read.
func NewTimeoutError(op, port string) *TransportError {
	return &TransportError{
		Op:        op,
		Port:      port,
		Err:       ErrTimeout,
		Type:      ErrorTypeTimeout,
		Retryable: true,
	}
}

// NewFrameCorruptedError creates a transport error for a checksum-invalid
// frame.
func NewFrameCorruptedError(op, port string) *TransportError {
	return &TransportError{
		Op:        op,
		Port:      port,
		Err:       ErrFrameCorrupted,
		Type:      ErrorTypeTransient,
		Retryable: true,
	}
}

// IsRetryable reports whether the operation that produced err is worth
// repeating. Device faults are retryable only when the module can recover
// by itself (busy, serial noise, checksum); everything it reports about
// missing media or tracks is permanent.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var te *TransportError
	if errors.As(err, &te) {
		return te.Retryable
	}

	var me ModuleError
	if errors.As(err, &me) {
		switch me {
		case ModuleErrBusy, ModuleErrSerialReceive, ModuleErrChecksum:
			return true
		default:
			return false
		}
	}

	switch {
	case errors.Is(err, ErrTimeout),
		errors.Is(err, ErrTransportRead),
		errors.Is(err, ErrTransportWrite),
		errors.Is(err, ErrCommunicationFailed),
		errors.Is(err, ErrNoACK),
		errors.Is(err, ErrFrameCorrupted):
		return true
	default:
		return false
	}
}

// GetErrorType returns the classification of err for retry policies.
func GetErrorType(err error) ErrorType {
	if err == nil {
		return ErrorTypePermanent
	}

	var te *TransportError
	if errors.As(err, &te) {
		return te.Type
	}

	var me ModuleError
	if errors.As(err, &me) {
		if IsRetryable(me) {
			return ErrorTypeTransient
		}
		return ErrorTypePermanent
	}

	switch {
	case errors.Is(err, ErrTimeout):
		return ErrorTypeTimeout
	case errors.Is(err, ErrTransportRead),
		errors.Is(err, ErrTransportWrite),
		errors.Is(err, ErrCommunicationFailed),
		errors.Is(err, ErrNoACK),
		errors.Is(err, ErrFrameCorrupted):
		return ErrorTypeTransient
	default:
		return ErrorTypePermanent
	}
}
