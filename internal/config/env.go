package config

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/security-e/security-e.github.io/internal/logfields"
)

// envFiles are tried in order; the first one that parses wins.
var envFiles = []string{".env", ".env.local"}

// loadEnvFile loads KEY=VALUE pairs from the first readable env file.
// Variables already set in the process environment are not overwritten.
func loadEnvFile(logger *slog.Logger) error {
	for _, path := range envFiles {
		err := godotenv.Load(path)
		if err == nil {
			logger.Debug("Loaded environment variables", logfields.Path(path))
			return nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return fs.ErrNotExist
}
