package app

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that provide option defaults.
const (
	EnvLogLevel  = "PERDIEM_LOG_LEVEL"
	EnvLogFormat = "PERDIEM_LOG_FORMAT"
	EnvOutput    = "PERDIEM_OUTPUT"
)

// LoadEnv loads the given dotenv files (".env" when none are given) into the
// process environment. Variables already set are not overridden and a
// missing file is not an error.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback
// when it is unset or empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
