// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Server.URL != "http://127.0.0.1:5000" {
		t.Errorf("default server url = %q", cfg.Server.URL)
	}
	if cfg.Server.TimeoutSecs != 30 {
		t.Errorf("default timeout = %d, want 30", cfg.Server.TimeoutSecs)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
version = "1"

[server]
url = "http://farm.example.com:8080"
timeout_secs = 10

[ui]
word_wrap = 100
show_timestamps = true
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.Server.URL != "http://farm.example.com:8080" {
		t.Errorf("server url = %q", cfg.Server.URL)
	}
	if cfg.Server.TimeoutSecs != 10 {
		t.Errorf("timeout = %d, want 10", cfg.Server.TimeoutSecs)
	}
	if cfg.UI.WordWrap != 100 || !cfg.UI.ShowTimestamps {
		t.Errorf("ui config = %+v", cfg.UI)
	}
	// Unspecified values fall back to defaults.
	if cfg.Server.RequestsPerSecond != 5 {
		t.Errorf("requests_per_second = %v, want default 5", cfg.Server.RequestsPerSecond)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("HERDWATCH_SERVER_URL", "http://10.0.0.2:5000")
	t.Setenv("HERDWATCH_TIMEOUT_SECS", "7")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Server.URL != "http://10.0.0.2:5000" {
		t.Errorf("env override lost: url = %q", cfg.Server.URL)
	}
	if cfg.Server.TimeoutSecs != 7 {
		t.Errorf("env override lost: timeout = %d", cfg.Server.TimeoutSecs)
	}
}

func TestApplyEnvOverrides_WinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[server]\nurl = \"http://file.example.com\"\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HERDWATCH_SERVER_URL", "http://env.example.com")

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.Server.URL != "http://env.example.com" {
		t.Errorf("url = %q, env override must win over file value", cfg.Server.URL)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "bad scheme", mutate: func(c *Config) { c.Server.URL = "ftp://host" }, wantErr: true},
		{name: "missing host", mutate: func(c *Config) { c.Server.URL = "http://" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.Server.TimeoutSecs = 0 }, wantErr: true},
		{name: "https ok", mutate: func(c *Config) { c.Server.URL = "https://farm.example.com" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

// TestConfig_ConcurrentAccess tests that Global() and SetGlobal() can be
// safely called concurrently.
// Run with: go test -race -v ./internal/config/
func TestConfig_ConcurrentAccess(t *testing.T) {
	ResetGlobalForTesting()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetGlobal(Default())
		}()
		go func() {
			defer wg.Done()
			if Global() == nil {
				t.Error("Global() returned nil")
			}
		}()
	}
	wg.Wait()
}
