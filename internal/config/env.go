package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const defaultRateLimitPerMinute = 10

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	origins := []string{"*"}
	if originsStr := os.Getenv("ALLOWED_ORIGINS"); originsStr != "" {
		origins = origins[:0]
		for _, origin := range strings.Split(originsStr, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
	}

	rateLimit := defaultRateLimitPerMinute
	if limitStr := os.Getenv("RATE_LIMIT_PER_MINUTE"); limitStr != "" {
		if val, err := strconv.Atoi(limitStr); err == nil && val > 0 {
			rateLimit = val
		}
	}

	return &Config{
		Environment:        environment,
		AllowedOrigins:     origins,
		RateLimitPerMinute: rateLimit,
	}, nil
}
