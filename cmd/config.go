package cmd

import "time"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// SessionTTL bounds how long an untouched in-progress order survives.
	// Zero disables eviction.
	SessionTTL time.Duration

	LogLevel string
}
