package config

import "github.com/intercepted16/promptkit/internal/logger"

// ApplyPresetOverrides tunes default delays to roughly match how a real
// provider would feel to a client under test. "none" leaves the loaded
// config untouched.
func ApplyPresetOverrides(cfg *Config) {
	logger.Log.Infow("[config] apply preset overrides", "preset", cfg.Preset)
	switch cfg.Preset {
	case "openai":
		// Typical time-to-first-byte for a hosted chat endpoint.
		cfg.DefaultDelayMs = 250
		cfg.ChunkSize = 6

	case "slow":
		// Exaggerated latency for timeout/retry testing on the client side.
		cfg.DefaultDelayMs = 2000
		cfg.ChunkSize = 4
	}
}
