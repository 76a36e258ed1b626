// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// helpers.go - Shared helpers for CLI command handlers.
package cli

import (
	"time"

	"github.com/jeranaias/herdwatch-tui/internal/api"
	"github.com/jeranaias/herdwatch-tui/internal/config"
	"github.com/jeranaias/herdwatch-tui/internal/model"
)

// NewAPIClient builds an API client from the global config plus CLI overrides.
func NewAPIClient(args Args) *api.Client {
	cfg := config.Global()

	clientCfg := api.DefaultConfig()
	clientCfg.BaseURL = cfg.Server.URL
	if cfg.Server.TimeoutSecs > 0 {
		clientCfg.Timeout = time.Duration(cfg.Server.TimeoutSecs) * time.Second
	}
	if cfg.Server.RequestsPerSecond > 0 {
		clientCfg.RequestsPerSecond = cfg.Server.RequestsPerSecond
	}
	if args.Server != "" {
		clientCfg.BaseURL = args.Server
	}

	return api.NewClientWithConfig(clientCfg)
}

// identityFromArgs builds the identity sent with chat requests. The TUI
// collects this on the welcome screen; the CLI takes flags with neutral
// defaults so one-shot questions work without ceremony.
func identityFromArgs(args Args) model.Identity {
	id := model.Identity{Name: args.Name, Location: args.Location}
	if id.Name == "" {
		id.Name = "Farmer"
	}
	if id.Location == "" {
		id.Location = "Unknown"
	}
	return id
}
