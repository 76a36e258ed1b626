// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for herdwatch.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdChat
	CmdStatus
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	Verbose bool
	JSON    bool
	Server  string // Override backend URL

	// Identity for ask/chat (the TUI collects these interactively)
	Name     string
	Location string

	// Command-specific
	Query      string
	Subcommand string

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `herdwatch - cattle health monitor for the terminal

Herdwatch is a terminal client for a cattle health monitor backend.

It provides:
  - A full-screen TUI with health checks and a cattle chatbot
  - One-shot questions from the command line
  - An interactive chat REPL with input history

Usage:
  herdwatch                     Start TUI (default)
  herdwatch ask "question"      Ask a single cattle question
  herdwatch chat                Interactive chat
  herdwatch status, s           Check backend connectivity
  herdwatch config [show|set|path]  Configuration
  herdwatch version             Show version
  herdwatch help                Show this help

Global Flags:
  --server URL    Override backend URL (default from config)
  -q, --quiet     Minimal output
  -v, --verbose   Debug output
  --json          Output in JSON format

Ask/Chat Flags:
  --name NAME         Farmer name sent with chat requests
  --location PLACE    Farm location sent with chat requests

Examples:
  herdwatch                                   Start the TUI
  herdwatch ask "What causes mastitis?"       One-shot question
  herdwatch ask --json "Calf feeding tips"    JSON output for scripting
  herdwatch chat --name Ana --location "Green Valley"
  herdwatch status                            Check the backend
  herdwatch config show                       Show current configuration
  herdwatch config set server_url http://10.0.0.5:5000

Environment:
  HERDWATCH_SERVER_URL      Backend URL override
  HERDWATCH_TIMEOUT_SECS    Request timeout override

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("herdwatch version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments and returns the command and args.
func Parse() (Command, Args) {
	return parseArgs(os.Args[1:])
}

// parseArgs is the testable core of Parse.
func parseArgs(argv []string) (Command, Args) {
	remaining, parsed := parseGlobalFlags(argv)

	// No remaining args: default to the TUI
	if len(remaining) == 0 {
		return CmdTUI, parsed
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsed.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, parsed

	case "ask":
		parsed.Query = strings.Join(remaining, " ")
		return CmdAsk, parsed

	case "chat":
		return CmdChat, parsed

	case "status", "s":
		return CmdStatus, parsed

	case "config":
		if len(remaining) > 0 {
			parsed.Subcommand = remaining[0]
		}
		return CmdConfig, parsed

	case "version", "--version", "-V":
		return CmdVersion, parsed

	case "help", "--help", "-h":
		return CmdHelp, parsed

	default:
		// Unknown command: treat as a question, matching "ask" ergonomics
		parsed.Query = strings.Join(append([]string{cmd}, remaining...), " ")
		return CmdAsk, parsed
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsed Args

	i := 0
	for i < len(args) {
		arg := args[i]

		switch arg {
		case "-q", "--quiet":
			parsed.Quiet = true
		case "-v", "--verbose":
			parsed.Verbose = true
		case "--json":
			parsed.JSON = true
		case "--server":
			if i+1 < len(args) {
				i++
				parsed.Server = args[i]
			}
		case "--name":
			if i+1 < len(args) {
				i++
				parsed.Name = args[i]
			}
		case "--location":
			if i+1 < len(args) {
				i++
				parsed.Location = args[i]
			}
		default:
			switch {
			case strings.HasPrefix(arg, "--server="):
				parsed.Server = strings.TrimPrefix(arg, "--server=")
			case strings.HasPrefix(arg, "--name="):
				parsed.Name = strings.TrimPrefix(arg, "--name=")
			case strings.HasPrefix(arg, "--location="):
				parsed.Location = strings.TrimPrefix(arg, "--location=")
			default:
				remaining = append(remaining, arg)
			}
		}
		i++
	}

	return remaining, parsed
}
