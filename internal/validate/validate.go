// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package validate checks raw form input before any request is dispatched.
// All checks are local and synchronous; nothing here touches the network.
package validate

import (
	"math"
	"strconv"
	"strings"

	"github.com/jeranaias/herdwatch-tui/internal/model"
)

// =============================================================================
// NOTICES
// =============================================================================

// User-visible validation notices. The exact wording is part of the client
// contract and matches what the backend's own frontend shows.
const (
	NoticeIdentityRequired = "Please enter your name and location"
	NoticeInvalidNumbers   = "Please fill in all fields with valid numbers"
)

// Error is a local validation failure. It refuses dispatch and carries the
// user-visible notice; no request is sent and no state changes.
type Error struct {
	Notice string
}

func (e *Error) Error() string {
	return e.Notice
}

// =============================================================================
// IDENTITY VALIDATION
// =============================================================================

// Identity trims both fields and returns the resulting identity, or an Error
// if either field is empty after trimming.
func Identity(name, location string) (model.Identity, error) {
	name = strings.TrimSpace(name)
	location = strings.TrimSpace(location)
	if name == "" || location == "" {
		return model.Identity{}, &Error{Notice: NoticeIdentityRequired}
	}
	return model.Identity{Name: name, Location: location}, nil
}

// =============================================================================
// HEALTH READING VALIDATION
// =============================================================================

// RawReading holds the seven health-check form fields exactly as typed.
type RawReading struct {
	Temperature string
	Milk        string
	Respiratory string
	HeartRate   string
	Walking     string
	Breed       string
	Faecal      string
}

// Reading parses a raw form record into a HealthReading. The five vital-sign
// fields must parse as finite floats and the two categorical fields as
// integers. A single Error covers any failure: partial valid fields are not
// submitted.
func Reading(raw RawReading) (model.HealthReading, error) {
	var reading model.HealthReading
	var err error

	if reading.Temperature, err = parseFinite(raw.Temperature); err != nil {
		return model.HealthReading{}, &Error{Notice: NoticeInvalidNumbers}
	}
	if reading.Milk, err = parseFinite(raw.Milk); err != nil {
		return model.HealthReading{}, &Error{Notice: NoticeInvalidNumbers}
	}
	if reading.Respiratory, err = parseFinite(raw.Respiratory); err != nil {
		return model.HealthReading{}, &Error{Notice: NoticeInvalidNumbers}
	}
	if reading.HeartRate, err = parseFinite(raw.HeartRate); err != nil {
		return model.HealthReading{}, &Error{Notice: NoticeInvalidNumbers}
	}
	if reading.Walking, err = parseFinite(raw.Walking); err != nil {
		return model.HealthReading{}, &Error{Notice: NoticeInvalidNumbers}
	}
	if reading.Breed, err = parseInt(raw.Breed); err != nil {
		return model.HealthReading{}, &Error{Notice: NoticeInvalidNumbers}
	}
	if reading.Faecal, err = parseInt(raw.Faecal); err != nil {
		return model.HealthReading{}, &Error{Notice: NoticeInvalidNumbers}
	}

	return reading, nil
}

// parseFinite parses a trimmed string as a finite float64. NaN and infinities
// are rejected: the backend's scaler cannot handle them.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}
	return v, nil
}

// parseInt parses a trimmed string as an integer.
func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
