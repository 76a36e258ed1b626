// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - Backend connectivity check for the herdwatch CLI.
//
// Command: status (alias: s)
// Short:   Check backend connectivity
//
// The backend exposes no dedicated health endpoint, so the check issues a
// throwaway greeting request and reports whether it round-tripped.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jeranaias/herdwatch-tui/internal/api"
	"github.com/jeranaias/herdwatch-tui/internal/config"
	"github.com/jeranaias/herdwatch-tui/internal/model"
)

// statusReport is the JSON shape for --json output.
type statusReport struct {
	Server    string `json:"server"`
	Reachable bool   `json:"reachable"`
	LatencyMS int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// HandleStatus handles the "status" command.
func HandleStatus(args Args) {
	client := NewAPIClient(args)

	probe := model.Identity{Name: "herdwatch", Location: "status-check"}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	start := time.Now()
	_, err := client.FetchGreeting(ctx, probe)
	latency := time.Since(start)

	report := statusReport{
		Server:    client.BaseURL(),
		Reachable: err == nil || api.IsApplication(err),
		LatencyMS: latency.Milliseconds(),
	}
	if err != nil {
		report.Error = err.Error()
	}

	if args.JSON {
		out, _ := json.MarshalIndent(report, "", "  ")
		fmt.Println(string(out))
		if !report.Reachable {
			os.Exit(1)
		}
		return
	}

	fmt.Println("herdwatch status")
	fmt.Printf("  Server:    %s\n", report.Server)
	if cfgPath, err := config.ConfigPath(); err == nil {
		fmt.Printf("  Config:    %s\n", cfgPath)
	}
	if report.Reachable {
		// An application error still proves the backend answered.
		fmt.Printf("  Backend:   reachable (%dms)\n", report.LatencyMS)
	} else {
		fmt.Println("  Backend:   unreachable")
		if args.Verbose && report.Error != "" {
			fmt.Printf("  Error:     %s\n", report.Error)
		}
		os.Exit(1)
	}
}
