// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the Cattle Health Monitor backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/jeranaias/herdwatch-tui/internal/model"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	// ErrTypeTransport covers unreachable server, timeouts, and non-JSON
	// bodies: the request never produced a well-formed answer.
	ErrTypeTransport
	// ErrTypeApplication covers well-formed responses carrying success:false,
	// regardless of HTTP status.
	ErrTypeApplication
)

// ClientError represents an error from the backend client.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// IsTransport reports whether err is a transport-level failure.
func IsTransport(err error) bool {
	var clientErr *ClientError
	return errors.As(err, &clientErr) && clientErr.Type == ErrTypeTransport
}

// IsApplication reports whether err is a backend-reported failure.
func IsApplication(err error) bool {
	var clientErr *ClientError
	return errors.As(err, &clientErr) && clientErr.Type == ErrTypeApplication
}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the backend client.
type ClientConfig struct {
	// BaseURL is the backend base URL without the /api path
	// (default: http://127.0.0.1:5000)
	BaseURL string

	// Timeout per request (default: 30s)
	Timeout time.Duration

	// RequestsPerSecond caps outbound request rate (default: 5)
	RequestsPerSecond float64
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:           "http://127.0.0.1:5000",
		Timeout:           30 * time.Second,
		RequestsPerSecond: 5,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client issues the three Cattle Health Monitor requests: greeting,
// health-check, and chat. It is safe for concurrent use, although the session
// layer serializes requests per action class.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new backend client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a new backend client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	if config.BaseURL == "" {
		config.BaseURL = "http://127.0.0.1:5000"
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.RequestsPerSecond == 0 {
		config.RequestsPerSecond = 5
	}

	// Fractional rates below 1 would truncate the burst to 0, and a
	// zero-burst limiter rejects every Wait. One request must always
	// be admittable.
	burst := int(config.RequestsPerSecond)
	if burst < 1 {
		burst = 1
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(config.RequestsPerSecond), burst),
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// =============================================================================
// OPERATIONS
// =============================================================================

// FetchGreeting requests a personalized greeting. Callers treat failure as
// non-fatal and substitute FallbackGreeting.
func (c *Client) FetchGreeting(ctx context.Context, id model.Identity) (string, error) {
	env, err := c.post(ctx, "/api/greeting", GreetingRequest{
		FarmerName:   id.Name,
		FarmLocation: id.Location,
	})
	if err != nil {
		return "", err
	}
	return env.Greeting, nil
}

// SubmitHealthCheck submits a vital-sign reading for classification.
func (c *Client) SubmitHealthCheck(ctx context.Context, reading model.HealthReading) (model.HealthAssessment, error) {
	env, err := c.post(ctx, "/api/health-check", HealthCheckRequest{
		Temperature: reading.Temperature,
		Milk:        reading.Milk,
		Respiratory: reading.Respiratory,
		HeartRate:   reading.HeartRate,
		Walking:     reading.Walking,
		Breed:       reading.Breed,
		Faecal:      reading.Faecal,
	})
	if err != nil {
		return model.HealthAssessment{}, err
	}
	return model.HealthAssessment{
		Status:          env.HealthStatus,
		Confidence:      env.Confidence,
		Recommendations: env.Recommendations,
	}, nil
}

// SubmitChatMessage sends one chat turn and returns the assistant's reply.
// The topic gate must have admitted the message before this is called.
func (c *Client) SubmitChatMessage(ctx context.Context, text string, id model.Identity) (string, error) {
	env, err := c.post(ctx, "/api/chat", ChatRequest{
		Message:      text,
		FarmerName:   id.Name,
		FarmLocation: id.Location,
	})
	if err != nil {
		return "", err
	}
	return env.Response, nil
}

// =============================================================================
// TRANSPORT
// =============================================================================

// post issues one JSON POST and decodes the uniform envelope. A non-2xx
// status with a well-formed body and a success:false body on any status are
// the same failure category (application); everything else is transport.
func (c *Client) post(ctx context.Context, path string, payload any) (*envelope, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &ClientError{Type: ErrTypeTransport, Message: "request cancelled", Cause: err}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeTransport, Message: "failed to marshal request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, &ClientError{Type: ErrTypeTransport, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &ClientError{Type: ErrTypeTransport, Message: "request timed out", Cause: err}
		}
		return nil, &ClientError{Type: ErrTypeTransport, Message: "backend unreachable", Cause: err}
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &ClientError{
			Type:    ErrTypeTransport,
			Message: fmt.Sprintf("malformed response (%s)", resp.Status),
			Cause:   err,
		}
	}

	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = "request failed: " + resp.Status
		}
		return nil, &ClientError{Type: ErrTypeApplication, Message: msg}
	}

	return &env, nil
}

// =============================================================================
// FALLBACKS
// =============================================================================

// FallbackGreeting is the deterministic greeting shown when the greeting call
// fails. The greeting is cosmetic, so its failure is absorbed here instead of
// surfacing to the user.
func FallbackGreeting(name string) string {
	return "Hello " + name + "!"
}
