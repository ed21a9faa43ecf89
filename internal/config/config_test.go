package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromPathReadsAllSections(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "prompter.yaml")
	content := `server:
  addr: ":9090"
  cors: false
database:
  path: "/var/lib/prompter/subs.db"
enhance:
  provider: "openai"
  model: "gpt-4o-mini"
  api_key: "sk-test"
audit:
  enabled: true
  dir: "/var/log/prompter"
  retention_days: 30
logging:
  level: "debug"
`
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromPath(cfgPath)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Fatalf("unexpected addr: %q", cfg.Server.Addr)
	}
	if cfg.Server.CORS {
		t.Fatalf("expected cors=false")
	}
	if cfg.Database.Path != "/var/lib/prompter/subs.db" {
		t.Fatalf("unexpected database path: %q", cfg.Database.Path)
	}
	if cfg.Enhance.Provider != "openai" || cfg.Enhance.Model != "gpt-4o-mini" || cfg.Enhance.APIKey != "sk-test" {
		t.Fatalf("unexpected enhance config: %#v", cfg.Enhance)
	}
	if !cfg.Audit.Enabled || cfg.Audit.Dir != "/var/log/prompter" || cfg.Audit.RetentionDays != 30 {
		t.Fatalf("unexpected audit config: %#v", cfg.Audit)
	}
	if cfg.Audit.FilePrefix != "optimize" {
		t.Fatalf("expected default file prefix to survive partial section, got %q", cfg.Audit.FilePrefix)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected log level: %q", cfg.Logging.Level)
	}
}

func TestLoadFromPathMissingFileFails(t *testing.T) {
	if _, err := LoadFromPath(filepath.Join(t.TempDir(), "absent.yaml")); !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestDefaultsWhenFileAbsent(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("unexpected default addr: %q", cfg.Server.Addr)
	}
	if !cfg.Server.CORS {
		t.Fatalf("expected cors enabled by default")
	}
	if cfg.Database.Path != "newsletter.db" {
		t.Fatalf("unexpected default database path: %q", cfg.Database.Path)
	}
	if cfg.Enhance.Provider != "gemini" {
		t.Fatalf("unexpected default enhance provider: %q", cfg.Enhance.Provider)
	}
	if cfg.Audit.RetentionDays != 7 {
		t.Fatalf("unexpected default retention: %d", cfg.Audit.RetentionDays)
	}
}

func TestEnvOverrides(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "prompter.yaml")
	if err := os.WriteFile(cfgPath, []byte("server:\n  addr: \":9999\"\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("PROMPTER_ADDR", ":7070")
	t.Setenv("DATABASE_URL", "sqlite:///news.db")
	t.Setenv("ENHANCE_PROVIDER", "grok")
	t.Setenv("ENHANCE_MODEL", "grok-2")
	t.Setenv("ENHANCE_API_KEY", "xk-test")

	cfg, err := LoadFromPath(cfgPath)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Server.Addr != ":7070" {
		t.Fatalf("expected env to beat file addr, got %q", cfg.Server.Addr)
	}
	if cfg.Database.Path != "news.db" {
		t.Fatalf("expected sqlite scheme stripped, got %q", cfg.Database.Path)
	}
	if cfg.Enhance.Provider != "grok" || cfg.Enhance.Model != "grok-2" || cfg.Enhance.APIKey != "xk-test" {
		t.Fatalf("unexpected enhance config: %#v", cfg.Enhance)
	}
}
