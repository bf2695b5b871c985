package config

import (
	"github.com/marcvalle10/notes-api/utils"
)

type Config struct {
	Port               string
	AuthJWTSecret      string
	AuthURL            string
	RedisURL           string
	RateLimitPerMinute int
	Database           DatabaseConfig
}

func Load() Config {
	return Config{
		Port:               utils.GetEnvAsString("PORT", "8080"),
		AuthJWTSecret:      utils.GetEnvAsString("AUTH_JWT_SECRET", ""),
		AuthURL:            utils.GetEnvAsString("AUTH_URL", ""),
		RedisURL:           utils.GetEnvAsString("REDIS_URL", ""),
		RateLimitPerMinute: utils.GetEnvAsInt("RATE_LIMIT_PER_MINUTE", 0),
		Database:           LoadDatabaseConfig(),
	}
}
