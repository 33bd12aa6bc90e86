package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Provider != DefaultProvider {
		t.Errorf("expected provider %q, got %q", DefaultProvider, cfg.Provider)
	}
	if cfg.Source != "en" || cfg.Target != "fr" {
		t.Errorf("expected en -> fr, got %s -> %s", cfg.Source, cfg.Target)
	}
	if cfg.Cache.Enabled {
		t.Error("expected cache disabled by default")
	}
	if cfg.Cache.DB == "" {
		t.Error("expected a default database path")
	}
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("expected log level %q, got %q", DefaultLogLevel, cfg.Log.Level)
	}
}

func TestSetup_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `provider: MyMemory
source: de
target: uk
mymemory:
  email: me@example.com
cache:
  enabled: true
  db: /tmp/memory.db
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	v := viper.New()
	if err := Setup(v, path); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Provider != "mymemory" {
		t.Errorf("expected provider 'mymemory', got %q", cfg.Provider)
	}
	if cfg.Source != "de" || cfg.Target != "uk" {
		t.Errorf("expected de -> uk, got %s -> %s", cfg.Source, cfg.Target)
	}
	if cfg.MyMemory.Email != "me@example.com" {
		t.Errorf("unexpected email %q", cfg.MyMemory.Email)
	}
	if !cfg.Cache.Enabled || cfg.Cache.DB != "/tmp/memory.db" {
		t.Errorf("unexpected cache config %+v", cfg.Cache)
	}
}

func TestSetup_MissingExplicitFile(t *testing.T) {
	v := viper.New()

	if err := Setup(v, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestSetup_Environment(t *testing.T) {
	t.Setenv("LINGOBUDDY_TARGET", "es")
	t.Setenv("LINGOBUDDY_SYSTRAN_KEY", "secret")
	t.Setenv("LINGOBUDDY_CACHE_ENABLED", "true")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	v := viper.New()
	if err := Setup(v, ""); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Target != "es" {
		t.Errorf("expected target from env 'es', got %q", cfg.Target)
	}
	if cfg.Systran.Key != "secret" {
		t.Errorf("expected systran key from env, got %q", cfg.Systran.Key)
	}
	if !cfg.Cache.Enabled {
		t.Error("expected cache enabled from env")
	}
}
