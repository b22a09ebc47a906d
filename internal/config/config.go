package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port    int
	Profile string
	Preset  string // none|openai|slow (delay behavior presets)

	DefaultMockType string // echo|random|fixed
	DefaultDelayMs  int    // applied before synthesis unless overridden per request
	ChunkSize       int    // runes per streamed content token
	PoolFile        string // optional TOML file with canned sentences
	FixedContent    string // fallback for mockType=fixed when the request omits it

	Seed int64 // rng seed; 0 means time-based
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvInt64(k string, def int64) int64 {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getEnvStr(k string, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func LoadConfig() Config {
	return Config{
		Port:    getEnvInt("PORT", 8787),
		Profile: getEnvStr("PROFILE", "default"),
		Preset:  strings.ToLower(getEnvStr("PRESET", "none")),

		DefaultMockType: strings.ToLower(getEnvStr("DEFAULT_MOCK_TYPE", "random")),
		DefaultDelayMs:  getEnvInt("DEFAULT_DELAY_MS", 0),
		ChunkSize:       getEnvInt("CHUNK_SIZE", 6),
		PoolFile:        getEnvStr("POOL_FILE", ""),
		FixedContent:    getEnvStr("FIXED_CONTENT", ""),

		Seed: getEnvInt64("SEED", 0),
	}
}
