// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package render maps successful backend outcomes to presentation text.
// The mapping rules here are part of the client contract: status
// classification, the exact label format, and confidence rounding must not
// drift. No business logic lives here, only deterministic formatting; visual
// styling is attached by the ui layer.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/jeranaias/herdwatch-tui/internal/model"
)

// =============================================================================
// STATUS CLASSIFICATION
// =============================================================================

// StatusClass is the visual class an assessment status maps onto.
type StatusClass int

const (
	// ClassUnknown renders as a neutral, unclassified state. Unrecognized
	// backend vocabulary must land here rather than crash.
	ClassUnknown StatusClass = iota
	ClassHealthy
	ClassWarning
	ClassCritical
)

// String returns the lower-cased class name used for style selection.
func (c StatusClass) String() string {
	switch c {
	case ClassHealthy:
		return "healthy"
	case ClassWarning:
		return "warning"
	case ClassCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ClassifyStatus case-normalizes a backend status string onto one of the
// three recognized classes. The backend's binary model reports "unhealthy",
// which presents as the warning/at-risk class.
func ClassifyStatus(status string) StatusClass {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "healthy":
		return ClassHealthy
	case "warning", "at-risk", "at risk", "unhealthy":
		return ClassWarning
	case "critical":
		return ClassCritical
	default:
		return ClassUnknown
	}
}

// =============================================================================
// ASSESSMENT FORMATTING
// =============================================================================

// StatusLabel derives the display label from the raw backend status.
func StatusLabel(status string) string {
	return "Health Status: " + strings.ToUpper(status)
}

// FormatConfidence renders a [0,1] confidence as a percentage with exactly
// one decimal place, rounded half-up.
func FormatConfidence(confidence float64) string {
	percent := confidence * 100
	return fmt.Sprintf("%.1f%%", math.Round(percent*10)/10)
}

// ConfidenceLine renders the labeled confidence row.
func ConfidenceLine(confidence float64) string {
	return "Confidence: " + FormatConfidence(confidence)
}

// Assessment is the fully formatted result panel content.
type Assessment struct {
	Label          string      // "Health Status: HEALTHY"
	Class          StatusClass // style selector
	Confidence     string      // "Confidence: 92.0%"
	Recommendation string      // verbatim backend text
}

// FormatAssessment maps a HealthAssessment to its presentation form.
func FormatAssessment(a model.HealthAssessment) Assessment {
	return Assessment{
		Label:          StatusLabel(a.Status),
		Class:          ClassifyStatus(a.Status),
		Confidence:     ConfidenceLine(a.Confidence),
		Recommendation: a.Recommendations,
	}
}
