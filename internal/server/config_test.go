package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/finance-calculator/pkg/constants"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Address != constants.DefaultServerAddress {
		t.Fatalf("expected default address, got %s", cfg.Address)
	}
	if cfg.BodySizeBytes() != constants.DefaultMaxBodySizeBytes {
		t.Fatalf("expected default max body size, got %d", cfg.BodySizeBytes())
	}
	if cfg.RateLimit.Enabled {
		t.Fatalf("expected rate limiting disabled by default")
	}
	if cfg.Tracing.ServiceName != constants.DefaultServiceName || cfg.Tracing.Endpoint != "" {
		t.Fatalf("unexpected tracing defaults %+v", cfg.Tracing)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server-config.yaml")

	contents := []byte(`address: 127.0.0.1:9000
maxBodySize: 2M
logging:
  level: debug
  format: console
  outputFile: /tmp/server.log
rateLimit:
  enabled: true
  rps: 5
  trustProxyHeaders: true
tracing:
  endpoint: localhost:4318
  insecure: true
`)
	if err := os.WriteFile(path, contents, 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Address != "127.0.0.1:9000" {
		t.Fatalf("expected address override, got %s", cfg.Address)
	}
	if cfg.BodySizeBytes() != 2*1024*1024 {
		t.Fatalf("expected max body override, got %d", cfg.BodySizeBytes())
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" || cfg.Logging.OutputFile != "/tmp/server.log" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
	if !cfg.RateLimit.Enabled || cfg.RateLimit.RPS != 5 || !cfg.RateLimit.TrustProxyHeaders {
		t.Fatalf("unexpected rate limit config %+v", cfg.RateLimit)
	}
	if cfg.RateLimit.Burst != constants.DefaultRateLimitBurst {
		t.Fatalf("expected default burst, got %d", cfg.RateLimit.Burst)
	}
	if cfg.Tracing.Endpoint != "localhost:4318" || !cfg.Tracing.Insecure {
		t.Fatalf("unexpected tracing config %+v", cfg.Tracing)
	}
	if cfg.Tracing.ServiceName != constants.DefaultServiceName {
		t.Fatalf("expected default service name, got %s", cfg.Tracing.ServiceName)
	}
}

func TestLoadConfigInvalidSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")

	if err := os.WriteFile(path, []byte("maxBodySize: invalid"), 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for invalid size but got nil")
	}
}

func TestLoadConfigInvalidYaml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")

	if err := os.WriteFile(path, []byte("address: [unterminated"), 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for invalid YAML but got nil")
	}
}

func TestParseSize(t *testing.T) {
	tests := map[string]int64{
		"":          constants.DefaultMaxBodySizeBytes,
		"1024":      1024,
		"512b":      512,
		"256K":      256 * 1024,
		"1m":        1024 * 1024,
		"3MB":       3 * 1024 * 1024,
		"  4096   ": 4096,
	}

	for input, expected := range tests {
		got, err := ParseSize(input)
		if err != nil {
			t.Fatalf("ParseSize(%q) returned error: %v", input, err)
		}
		if got != expected {
			t.Fatalf("ParseSize(%q) = %d, expected %d", input, got, expected)
		}
	}

	if _, err := ParseSize("1G"); err == nil {
		t.Fatal("expected error for unsupported unit")
	}
	if _, err := ParseSize("abc"); err == nil {
		t.Fatal("expected error for invalid number")
	}
}
