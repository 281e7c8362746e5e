package config

import (
	"strings"
	"time"
)

// CacheConfig drives the redis response cache.  Weather lookups are the
// main beneficiary, so the default TTL follows OpenWeatherMap's ten minute
// refresh.
//
//	CACHE_ENABLED         default true (still off without redis)
//	CACHE_METHODS         comma list, default GET
//	CACHE_TTL             default 10m
//	CACHE_KEY_STRATEGY    path | path_query (default) | method_path_query
//	CACHE_PREFIX          key namespace
//	CACHE_MAX_BODY_BYTES  larger responses are served but not stored
type CacheConfig struct {
	Enabled      bool
	Methods      map[string]bool
	TTL          time.Duration
	KeyStrategy  string
	Prefix       string
	MaxBodyBytes int
}

func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      envBool("CACHE_ENABLED", true),
		Methods:      parseMethods(envStr("CACHE_METHODS", "GET")),
		TTL:          envDur("CACHE_TTL", 10*time.Minute),
		KeyStrategy:  envStr("CACHE_KEY_STRATEGY", "path_query"),
		Prefix:       envStr("CACHE_PREFIX", "gramsathi:cache"),
		MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
	}
}

// Cacheable reports whether responses to method may be stored.
func (c CacheConfig) Cacheable(method string) bool {
	return c.Methods[strings.ToUpper(method)]
}

// parseMethods turns "get, head" into {"GET", "HEAD"}.
func parseMethods(s string) map[string]bool {
	m := map[string]bool{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.ToUpper(strings.TrimSpace(p)); p != "" {
			m[p] = true
		}
	}
	return m
}
