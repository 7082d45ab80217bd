package config

// Config is process-wide configuration, loaded once at startup and
// immutable for the process lifetime.
type Config struct {
	Environment        string
	AllowedOrigins     []string
	RateLimitPerMinute int
}
