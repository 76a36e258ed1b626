// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures shared by the herdwatch client.
package model

import "strings"

// =============================================================================
// IDENTITY
// =============================================================================

// Identity is the operator identity for one session. It is set once at
// session start and cleared only on logout.
type Identity struct {
	Name     string
	Location string
}

// IsSet reports whether both identity fields are present.
func (id Identity) IsSet() bool {
	return strings.TrimSpace(id.Name) != "" && strings.TrimSpace(id.Location) != ""
}

// =============================================================================
// HEALTH READING
// =============================================================================

// HealthReading is one structured set of cattle vital signs. Readings are
// transient: built from form input immediately before a health-check request
// and never persisted.
type HealthReading struct {
	Temperature float64 // body temperature in C
	Milk        float64 // milk production in liters
	Respiratory float64 // respiratory rate in breaths/min
	HeartRate   float64 // heart rate in bpm
	Walking     float64 // walking capacity in steps
	Breed       int     // breed type code
	Faecal      int     // faecal consistency code
}

// =============================================================================
// HEALTH ASSESSMENT
// =============================================================================

// HealthAssessment is the backend's classification of a HealthReading.
// The status vocabulary is owned by the backend; the renderer maps it onto
// display classes without assuming a closed set.
type HealthAssessment struct {
	Status          string  // e.g. "healthy", "unhealthy", "critical"
	Confidence      float64 // in [0, 1]
	Recommendations string  // free-text advice, rendered verbatim
}
