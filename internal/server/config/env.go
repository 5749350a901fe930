package config

import "os"

// parseEnv overlays secrets from the environment. HF_TOKEN carries the
// service-wide hosted summarizer credential; its absence must not prevent
// startup, it just surfaces as summarizer request failures later.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("HF_TOKEN"); ok {
		config.HFToken = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("REDIS_PASSWORD"); ok {
		config.RedisPassword = v
	}
}
