package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr == "" || cfg.LogFile == "" || cfg.AllowOrigin == "" {
		t.Fatalf("expected defaults for all fields, got %+v", cfg)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("LASERTAG_ADDR", ":9999")
	t.Setenv("LASERTAG_ALLOW_ORIGIN", "https://example.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9999" {
		t.Fatalf("Addr = %q, want :9999", cfg.Addr)
	}
	if cfg.AllowOrigin != "https://example.test" {
		t.Fatalf("AllowOrigin = %q, want https://example.test", cfg.AllowOrigin)
	}
}
