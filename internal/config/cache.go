package config

import (
    "os"
    "strconv"
    "time"
)

// CacheConfig controls the Redis response cache that sits in front of
// the read-only catalog endpoints (flights and locations). When Enabled
// is false or no Redis client is available, caching is skipped entirely.
type CacheConfig struct {
    Enabled      bool          // master switch
    TTL          time.Duration // lifetime of a cached response
    Prefix       string        // key namespace in Redis
    MaxBodyBytes int           // responses larger than this are not cached
}

// LoadCacheConfig reads the CACHE_* environment variables, falling back
// to defaults suitable for a small catalog.
func LoadCacheConfig() CacheConfig {
    return CacheConfig{
        Enabled:      getenv("CACHE_ENABLED", "true") == "true",
        TTL:          parseDur(getenv("CACHE_TTL", "30s")),
        Prefix:       getenv("CACHE_PREFIX", "fi-cache"),
        MaxBodyBytes: atoi(getenv("CACHE_MAX_BODY_BYTES", "1048576")),
    }
}

func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

func atoi(s string) int {
    i, _ := strconv.Atoi(s)
    return i
}

func parseDur(s string) time.Duration {
    d, err := time.ParseDuration(s)
    if err != nil {
        return time.Second
    }
    return d
}
