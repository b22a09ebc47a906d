package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	envs := []string{
		"PORT",
		"PROFILE",
		"PRESET",
		"DEFAULT_MOCK_TYPE",
		"DEFAULT_DELAY_MS",
		"CHUNK_SIZE",
		"POOL_FILE",
		"FIXED_CONTENT",
		"SEED",
	}
	for _, k := range envs {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()

	if cfg.Port != 8787 || cfg.Profile != "default" || cfg.Preset != "none" {
		t.Fatalf("unexpected base defaults: %+v", cfg)
	}
	if cfg.DefaultMockType != "random" || cfg.DefaultDelayMs != 0 {
		t.Fatalf("unexpected mock defaults: %+v", cfg)
	}
	if cfg.ChunkSize != 6 || cfg.PoolFile != "" || cfg.FixedContent != "" || cfg.Seed != 0 {
		t.Fatalf("unexpected pool/stream defaults: %+v", cfg)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("PRESET", "OpenAI")
	t.Setenv("DEFAULT_MOCK_TYPE", "Fixed")
	t.Setenv("DEFAULT_DELAY_MS", "150")
	t.Setenv("CHUNK_SIZE", "3")
	t.Setenv("POOL_FILE", "/tmp/pool.toml")
	t.Setenv("FIXED_CONTENT", "canned")
	t.Setenv("SEED", "12345")

	cfg := LoadConfig()

	if cfg.Port != 9999 || cfg.Preset != "openai" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.DefaultMockType != "fixed" || cfg.DefaultDelayMs != 150 {
		t.Fatalf("mock overrides not applied: %+v", cfg)
	}
	if cfg.ChunkSize != 3 || cfg.PoolFile != "/tmp/pool.toml" || cfg.FixedContent != "canned" {
		t.Fatalf("pool overrides not applied: %+v", cfg)
	}
	if cfg.Seed != 12345 {
		t.Fatalf("seed override not applied: %+v", cfg)
	}
}

func TestApplyPresetOverrides(t *testing.T) {
	cfg := Config{Preset: "openai", DefaultDelayMs: 0, ChunkSize: 99}
	ApplyPresetOverrides(&cfg)
	if cfg.DefaultDelayMs != 250 || cfg.ChunkSize != 6 {
		t.Fatalf("openai preset not applied: %+v", cfg)
	}

	cfg = Config{Preset: "none", DefaultDelayMs: 42, ChunkSize: 7}
	ApplyPresetOverrides(&cfg)
	if cfg.DefaultDelayMs != 42 || cfg.ChunkSize != 7 {
		t.Fatalf("none preset must not change config: %+v", cfg)
	}
}
