package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         enabled,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 600),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Unauthenticated counter endpoints are the abuse surface; throttle
		// hardest. A legitimate visitor fires each at most a few times.
		{Path: "/api/analytics/view", Method: "POST", Limit: 30, Window: time.Minute, Burst: 10},
		{Path: "/api/analytics/project-click", Method: "POST", Limit: 30, Window: time.Minute, Burst: 10},
		{Path: "/api/analytics/contact", Method: "POST", Limit: 10, Window: time.Minute, Burst: 5},

		// Sign-in attempts
		{Path: "/api/auth/google", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},

		// Uploads are expensive (proxied to the media host)
		{Path: "/api/upload/", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},

		// Admin write operations
		{Path: "/api/projects", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/api/projects/", Method: "PATCH", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/api/projects/", Method: "DELETE", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/api/skills", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/api/skills/", Method: "PATCH", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/api/skills/", Method: "DELETE", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/api/skills/reorder", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},

		// Reads fall through to the default limit.
	}
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of IP addresses into a map.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
