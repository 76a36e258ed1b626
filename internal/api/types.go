// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the Cattle Health Monitor backend.
package api

// =============================================================================
// REQUEST TYPES
// =============================================================================

// GreetingRequest is the body for POST /api/greeting.
type GreetingRequest struct {
	FarmerName   string `json:"farmer_name"`
	FarmLocation string `json:"farm_location"`
}

// HealthCheckRequest is the body for POST /api/health-check.
type HealthCheckRequest struct {
	Temperature float64 `json:"temperature"`
	Milk        float64 `json:"milk"`
	Respiratory float64 `json:"respiratory"`
	HeartRate   float64 `json:"heart_rate"`
	Walking     float64 `json:"walking"`
	Breed       int     `json:"breed"`
	Faecal      int     `json:"faecal"`
}

// ChatRequest is the body for POST /api/chat.
type ChatRequest struct {
	Message      string `json:"message"`
	FarmerName   string `json:"farmer_name"`
	FarmLocation string `json:"farm_location"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// envelope is the uniform response shape shared by all three endpoints.
// Exactly one of the payload fields is populated on success; Error is set
// when Success is false.
type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`

	// /greeting payload
	Greeting string `json:"greeting"`

	// /health-check payload
	HealthStatus    string  `json:"health_status"`
	Confidence      float64 `json:"confidence"`
	Recommendations string  `json:"recommendations"`

	// /chat payload
	Response string `json:"response"`
}
