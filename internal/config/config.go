package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// appDirName is the directory created under the user's data home.
const appDirName = "quizforge"

// Config holds all application configuration.
type Config struct {
	LogLevel  string
	LogFormat string
	// DataDir is the application's private data directory. Imported images
	// live under DataDir/assets/images.
	DataDir string
	// DatabasePath is the single SQLite file for this installation.
	DatabasePath  string
	MaxImageBytes int64
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	dataDir := getEnv("QUIZFORGE_DATA_DIR", "")
	if dataDir == "" {
		d, err := DefaultDataDir()
		if err != nil {
			return nil, err
		}
		dataDir = d
	}

	return &Config{
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "auto"),
		DataDir:       dataDir,
		DatabasePath:  getEnv("QUIZFORGE_DB", DatabasePathIn(dataDir)),
		MaxImageBytes: int64(getEnvInt("MAX_IMAGE_SIZE_MB", 10)) * 1024 * 1024,
	}, nil
}

// DatabasePathIn returns the database file location inside dataDir.
func DatabasePathIn(dataDir string) string {
	return filepath.Join(dataDir, appDirName+".db")
}

// DefaultDataDir resolves the private data directory:
//  1. $XDG_DATA_HOME/quizforge
//  2. ~/.local/share/quizforge
func DefaultDataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, appDirName), nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
