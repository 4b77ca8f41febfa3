package roast

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Environment variables checked for the credential, in order.
var keyVars = []string{"GEMINI_API_KEY", "API_KEY"}

// LoadAPIKey loads any of the given .env files (missing files are skipped;
// existing environment variables win) and returns the first credential found.
func LoadAPIKey(envFiles ...string) (string, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}

	for _, name := range keyVars {
		if v := os.Getenv(name); v != "" {
			return v, nil
		}
	}
	return "", nil
}

// FromEnv builds a service from the environment. Without a credential, or if
// the client cannot be created, the service still works and returns fallbacks.
func FromEnv(ctx context.Context, lang Lang, logger *log.Logger, envFiles ...string) *Service {
	key, err := LoadAPIKey(envFiles...)
	if err != nil && logger != nil {
		logger.Warn("cannot read env file", "err", err)
	}
	if key == "" {
		return NewService(nil, lang, logger)
	}

	gen, err := NewGeminiGenerator(ctx, key, "")
	if err != nil {
		if logger != nil {
			logger.Warn("roast disabled", "err", err)
		}
		return NewService(nil, lang, logger)
	}
	return NewService(gen, lang, logger)
}
