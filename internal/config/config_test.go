package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(KeyBaseURL, "")
	t.Setenv(KeyUsername, "")
	t.Setenv(KeyAPIToken, "")
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, `
# Confluence credentials
CONFLUENCE_BASE_URL=https://example.atlassian.net/wiki/
CONFLUENCE_USERNAME="user@example.com"
CONFLUENCE_API_TOKEN='secret-token'
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.BaseURL != "https://example.atlassian.net/wiki" {
		t.Errorf("BaseURL = %q, want trailing slash stripped", cfg.BaseURL)
	}
	if cfg.Username != "user@example.com" {
		t.Errorf("Username = %q, want quotes removed", cfg.Username)
	}
	if cfg.APIToken != "secret-token" {
		t.Errorf("APIToken = %q, want quotes removed", cfg.APIToken)
	}
}

func TestLoadEnvFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv(KeyBaseURL, "https://fallback.example.com")
	t.Setenv(KeyUsername, "env@example.com")
	t.Setenv(KeyAPIToken, "env-token")

	// Env file only sets the base URL; the rest comes from the environment.
	path := writeEnvFile(t, "CONFLUENCE_BASE_URL=https://file.example.com\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "https://file.example.com" {
		t.Errorf("BaseURL = %q, want env file to take precedence", cfg.BaseURL)
	}
	if cfg.Username != "env@example.com" || cfg.APIToken != "env-token" {
		t.Errorf("env fallback not applied: %+v", cfg)
	}
}

func TestLoadMissingFileUsesEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(KeyBaseURL, "http://wiki.internal")
	t.Setenv(KeyUsername, "user@example.com")
	t.Setenv(KeyAPIToken, "tok")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "http://wiki.internal" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "everything missing",
			content: "",
			wantMsg: "username is required",
		},
		{
			name: "missing token",
			content: "CONFLUENCE_BASE_URL=https://x.example.com\n" +
				"CONFLUENCE_USERNAME=user@example.com\n",
			wantMsg: "API token is required",
		},
		{
			name: "bad scheme",
			content: "CONFLUENCE_BASE_URL=ftp://x.example.com\n" +
				"CONFLUENCE_USERNAME=user@example.com\n" +
				"CONFLUENCE_API_TOKEN=tok\n",
			wantMsg: "must start with http:// or https://",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			_, err := Load(writeEnvFile(t, tt.content))
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantMsg)
			}
			var cfgErr *Error
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *config.Error, got %T", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestLoadSkipsInvalidLines(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, `
not a valid line!!!
CONFLUENCE_BASE_URL=https://x.example.com
CONFLUENCE_USERNAME=user@example.com
CONFLUENCE_API_TOKEN=tok
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIToken != "tok" {
		t.Errorf("APIToken = %q", cfg.APIToken)
	}
}
