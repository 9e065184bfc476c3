package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
mongo:
  uri: "mongodb://localhost:27017"
groq:
  apiKey: "gsk_test"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("default port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Mongo.Database != "EthicalFashionDB" {
		t.Errorf("default database = %q", cfg.Mongo.Database)
	}
	if cfg.Mongo.Collection != "EthicalAnalysis" {
		t.Errorf("default collection = %q", cfg.Mongo.Collection)
	}
	if cfg.SettleDelay() != 5*time.Second {
		t.Errorf("default settle delay = %s, want 5s", cfg.SettleDelay())
	}
	if !strings.Contains(cfg.Browser.UserAgent, "Chrome/") {
		t.Errorf("default user agent = %q", cfg.Browser.UserAgent)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("default origins = %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Storage.Enabled {
		t.Error("storage should be disabled by default")
	}
}

func TestLoadExplicitValues(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
mongo:
  uri: "mongodb://db:27017"
  database: TestDB
  collection: TestCol
groq:
  apiKey: "gsk_test"
  model: custom-model
  maxTextChars: 40000
browser:
  settleDelaySeconds: 2
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	if cfg.Mongo.Database != "TestDB" || cfg.Mongo.Collection != "TestCol" {
		t.Errorf("mongo = %+v", cfg.Mongo)
	}
	if cfg.Groq.Model != "custom-model" {
		t.Errorf("model = %q", cfg.Groq.Model)
	}
	if cfg.Groq.MaxTextChars != 40000 {
		t.Errorf("maxTextChars = %d", cfg.Groq.MaxTextChars)
	}
	if cfg.SettleDelay() != 2*time.Second {
		t.Errorf("settle delay = %s", cfg.SettleDelay())
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
mongo:
  uri: "mongodb://file:27017"
groq:
  apiKey: "file-key"
`)

	t.Setenv("MONGO_URI", "mongodb://env:27017")
	t.Setenv("GROQ_API_KEY", "env-key")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Mongo.URI != "mongodb://env:27017" {
		t.Errorf("mongo uri = %q, env must win", cfg.Mongo.URI)
	}
	if cfg.Groq.APIKey != "env-key" {
		t.Errorf("api key = %q, env must win", cfg.Groq.APIKey)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing mongo uri",
			content: "groq:\n  apiKey: gsk_test\n",
		},
		{
			name:    "missing api key",
			content: "mongo:\n  uri: mongodb://localhost:27017\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MONGO_URI", "")
			t.Setenv("GROQ_API_KEY", "")
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
