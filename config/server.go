package config

import "main/utils"

type ServerConfig struct {
	Port             string
	StorageBackend   string // "memory" or "mongo"
	RedisURL         string // empty disables the stats cache
	DefaultDailyGoal int    // in minutes
	DemoUserID       int
}

func LoadServerConfig() ServerConfig {
	return ServerConfig{
		Port:             utils.GetEnvAsString("PORT", "5000"),
		StorageBackend:   utils.GetEnvAsString("STORAGE_BACKEND", "memory"),
		RedisURL:         utils.GetEnvAsString("REDIS_URL", ""),
		DefaultDailyGoal: utils.GetEnvAsInt("DEFAULT_DAILY_GOAL", 360),
		DemoUserID:       utils.GetEnvAsInt("DEMO_USER_ID", 1),
	}
}
