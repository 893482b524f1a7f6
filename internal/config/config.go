package config

import "os"

type Config struct {
	ListenAddr string
	DBPath     string
	LogLevel   string
	LogFile    string
}

func Load() *Config {
	return &Config{
		ListenAddr: getEnv("LISTEN_ADDR", ":8081"),
		DBPath:     getEnv("DB_PATH", "/data/shopgallery.db"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFile:    getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}
