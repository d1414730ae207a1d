package config

import (
	"os"
	"strconv"
	"time"
)

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

// Port the HTTP server listens on.
func Port() string {
	return getEnv("PORT", "5000")
}

// StoragePath is the JSON key-value store file backing all persisted state.
func StoragePath() string {
	return getEnv("STORAGE_PATH", "data/storage.json")
}

// JWTSecret signs the session cookie. Override in production-like setups;
// the default only exists so the demo runs with zero configuration.
func JWTSecret() []byte {
	return []byte(getEnv("JWT_SECRET", "devsecret"))
}

// NoticeTTL is how long a floating notification stays up before auto-dismiss.
func NoticeTTL() time.Duration {
	ms, err := strconv.Atoi(getEnv("NOTICE_TTL_MS", "3000"))
	if err != nil || ms <= 0 {
		ms = 3000
	}
	return time.Duration(ms) * time.Millisecond
}
