// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Config command implementation for herdwatch.
//
// Command: config [subcommand]
// Short:   View and modify configuration
//
// Subcommands:
//   show (default)      Display current configuration
//   set <key> <value>   Set a configuration value
//   reset               Reset to default configuration
//   path                Show configuration file path
//
// Examples:
//   herdwatch config                      Show current config (default)
//   herdwatch config show --json          Config in JSON format
//   herdwatch config set server_url http://10.0.0.5:5000
//   herdwatch config set timeout_secs 60
//   herdwatch config set word_wrap 100
//   herdwatch config reset
//   herdwatch config path
//
// Configuration Keys:
//   server_url            Backend base URL
//   timeout_secs          Per-request timeout in seconds
//   requests_per_second   Outbound request rate cap
//   word_wrap             Wrap column for rendered answers
//   show_timestamps       Show per-turn timestamps (true/false)
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/herdwatch-tui/internal/config"
	"github.com/jeranaias/herdwatch-tui/internal/ui/styles"
)

// =============================================================================
// CONFIG STYLES
// =============================================================================

var (
	configTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(styles.Cyan)

	configKeyStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary).
			Width(22)

	configValueStyle = lipgloss.NewStyle().
				Foreground(styles.Emerald)
)

// =============================================================================
// CONFIG HANDLER
// =============================================================================

// HandleConfig handles the "config" command.
func HandleConfig(args Args) {
	parser := NewArgParser(args.Raw)

	switch parser.Subcommand() {
	case "", "show":
		showConfig(args)
	case "set":
		setConfig(parser)
	case "reset":
		resetConfig()
	case "path":
		showConfigPath()
	default:
		fmt.Fprintf(os.Stderr, "Unknown config subcommand: %s\n", parser.Subcommand())
		fmt.Fprintln(os.Stderr, "Usage: herdwatch config [show|set|reset|path]")
		os.Exit(1)
	}
}

func showConfig(args Args) {
	cfg := config.Global()

	if args.JSON {
		out, _ := json.MarshalIndent(map[string]any{
			"server_url":          cfg.Server.URL,
			"timeout_secs":        cfg.Server.TimeoutSecs,
			"requests_per_second": cfg.Server.RequestsPerSecond,
			"word_wrap":           cfg.UI.WordWrap,
			"show_timestamps":     cfg.UI.ShowTimestamps,
		}, "", "  ")
		fmt.Println(string(out))
		return
	}

	fmt.Println(configTitleStyle.Render("herdwatch configuration"))
	printConfigEntry("server_url", cfg.Server.URL)
	printConfigEntry("timeout_secs", strconv.Itoa(cfg.Server.TimeoutSecs))
	printConfigEntry("requests_per_second", strconv.FormatFloat(cfg.Server.RequestsPerSecond, 'f', -1, 64))
	printConfigEntry("word_wrap", strconv.Itoa(cfg.UI.WordWrap))
	printConfigEntry("show_timestamps", strconv.FormatBool(cfg.UI.ShowTimestamps))
}

func printConfigEntry(key, value string) {
	fmt.Printf("  %s %s\n", configKeyStyle.Render(key), configValueStyle.Render(value))
}

func setConfig(parser *ArgParser) {
	key := parser.Positional(1)
	value := parser.Positional(2)
	if key == "" || value == "" {
		fmt.Fprintln(os.Stderr, "Usage: herdwatch config set <key> <value>")
		os.Exit(1)
	}

	cfg := config.Global()

	switch key {
	case "server_url":
		cfg.Server.URL = value
	case "timeout_secs":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "timeout_secs must be a positive integer, got %q\n", value)
			os.Exit(1)
		}
		cfg.Server.TimeoutSecs = n
	case "requests_per_second":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			fmt.Fprintf(os.Stderr, "requests_per_second must be a positive number, got %q\n", value)
			os.Exit(1)
		}
		cfg.Server.RequestsPerSecond = f
	case "word_wrap":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "word_wrap must be a positive integer, got %q\n", value)
			os.Exit(1)
		}
		cfg.UI.WordWrap = n
	case "show_timestamps":
		b, err := strconv.ParseBool(value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "show_timestamps must be true or false, got %q\n", value)
			os.Exit(1)
		}
		cfg.UI.ShowTimestamps = b
	default:
		fmt.Fprintf(os.Stderr, "Unknown config key: %s\n", key)
		os.Exit(1)
	}

	if err := config.Save(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Set %s = %s\n", key, value)
}

func resetConfig() {
	cfg := config.Default()
	if err := config.Save(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save config: %v\n", err)
		os.Exit(1)
	}
	config.SetGlobal(cfg)
	fmt.Println("Configuration reset to defaults.")
}

func showConfigPath() {
	path, err := config.ConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to resolve config path: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(path)
}
