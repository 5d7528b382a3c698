package config

import (
	"os"
	"testing"
)

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	os.Setenv(key, value)
	t.Cleanup(func() {
		if had {
			os.Setenv(key, old)
		} else {
			os.Unsetenv(key)
		}
	})
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	setEnv(t, "DATABASE_URL", "")
	_, err := Load()
	if err == nil {
		t.Fatal("expected error when DATABASE_URL is empty")
	}
}

func TestLoad_Defaults(t *testing.T) {
	setEnv(t, "DATABASE_URL", "postgres://localhost/frontdesk")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("expected default env development, got %s", cfg.Env)
	}
	if cfg.DBMaxConns != 10 {
		t.Errorf("expected DB_MAX_CONNS default 10, got %d", cfg.DBMaxConns)
	}
	if cfg.DataDir != "./data" {
		t.Errorf("expected DATA_DIR default ./data, got %s", cfg.DataDir)
	}
	if !cfg.IsDev() {
		t.Error("expected IsDev to be true by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	setEnv(t, "DATABASE_URL", "postgres://db:5432/frontdesk")
	setEnv(t, "PORT", "9090")
	setEnv(t, "ENV", "production")
	setEnv(t, "DATA_DIR", "/var/lib/frontdesk/data")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.IsDev() {
		t.Error("expected IsDev to be false for production")
	}
	if cfg.DataDir != "/var/lib/frontdesk/data" {
		t.Errorf("unexpected data dir %s", cfg.DataDir)
	}
}
