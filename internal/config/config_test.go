package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/hostops")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Port)
	}
	if cfg.DBMaxConns != 20 || cfg.DBMinConns != 5 {
		t.Errorf("pool sizing = %d/%d, want 20/5", cfg.DBMaxConns, cfg.DBMinConns)
	}
	if cfg.InboundPrefix != "inbound" {
		t.Errorf("InboundPrefix = %q, want inbound", cfg.InboundPrefix)
	}
	if cfg.AIBackend != "stub" {
		t.Errorf("AIBackend = %q, want stub", cfg.AIBackend)
	}
	if cfg.ContextMessages != 10 {
		t.Errorf("ContextMessages = %d, want 10", cfg.ContextMessages)
	}
	if cfg.KBWorkspaceLimit != 2 || cfg.KBPropertyLimit != 2 || cfg.KBFallbackLimit != 3 {
		t.Errorf("KB limits = %d/%d/%d, want 2/2/3",
			cfg.KBWorkspaceLimit, cfg.KBPropertyLimit, cfg.KBFallbackLimit)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/hostops")
	t.Setenv("PORT", "8080")
	t.Setenv("DB_MAX_CONNS", "50")
	t.Setenv("DB_MIN_CONNS", "10")
	t.Setenv("AI_BACKEND", "openai")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.DBMaxConns != 50 || cfg.DBMinConns != 10 {
		t.Errorf("pool sizing = %d/%d, want 50/10", cfg.DBMaxConns, cfg.DBMinConns)
	}
	if cfg.AIBackend != "openai" {
		t.Errorf("AIBackend = %q, want openai", cfg.AIBackend)
	}
}
