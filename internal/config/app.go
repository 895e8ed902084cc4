package config

import (
	"os"
	"time"
)

const (
	defaultPort           = ":8080"
	defaultMaxDimension   = 100
	defaultSessionMaxIdle = 30 * time.Minute
)

func BasePath() string {
	return os.Getenv("APP_BASE_PATH")
}

func Port() string {
	port, ok := os.LookupEnv("APP_PORT")
	if !ok || port == "" {
		return defaultPort
	}
	return port
}

// MaxDimension caps the width and height of mazes created over the network.
func MaxDimension() (int, error) {
	return lookupPositiveInt("MAZE_MAX_DIMENSION", defaultMaxDimension)
}

func SessionMaxIdle() (time.Duration, error) {
	return lookupDuration("SESSION_MAX_IDLE", defaultSessionMaxIdle)
}
