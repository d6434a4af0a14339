package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Credentials holds the API keys used by remote strategies. A Credentials
// value is never mutated after startup; per-request overrides produce a copy.
type Credentials struct {
	OpenAI     string
	ElevenLabs string
	Gemini     string
}

// WithOpenAIOverride returns a copy whose OpenAI key is replaced by key.
// An empty key leaves the copy unchanged.
func (c Credentials) WithOpenAIOverride(key string) Credentials {
	if key = strings.TrimSpace(key); key != "" {
		c.OpenAI = key
	}
	return c
}

// Available lists the services that have a key configured
func (c Credentials) Available() []string {
	var available []string
	if c.OpenAI != "" {
		available = append(available, "OpenAI")
	}
	if c.ElevenLabs != "" {
		available = append(available, "ElevenLabs")
	}
	if c.Gemini != "" {
		available = append(available, "Gemini")
	}
	return available
}

// LoadEnv loads environment variables from the first .env file found.
// It returns the path that was loaded, or "" when none exists.
func LoadEnv() (string, error) {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	// Environment variables may be set system-wide, so a missing file is fine
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return "", fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			return envPath, nil
		}
	}

	return "", nil
}

// GetCredentials retrieves and validates API keys from environment variables.
// Missing keys are allowed; malformed ones fail fast.
func GetCredentials() (Credentials, error) {
	creds := Credentials{
		OpenAI:     strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		ElevenLabs: strings.TrimSpace(os.Getenv("ELEVENLABS_API_KEY")),
		Gemini:     strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
	}

	if creds.OpenAI != "" {
		if err := ValidateAPIKey(creds.OpenAI, "OpenAI"); err != nil {
			return Credentials{}, fmt.Errorf("invalid OPENAI_API_KEY: %w", err)
		}
	}
	if creds.ElevenLabs != "" {
		if err := ValidateAPIKey(creds.ElevenLabs, "ElevenLabs"); err != nil {
			return Credentials{}, fmt.Errorf("invalid ELEVENLABS_API_KEY: %w", err)
		}
	}
	if creds.Gemini != "" {
		if err := ValidateAPIKey(creds.Gemini, "Gemini"); err != nil {
			return Credentials{}, fmt.Errorf("invalid GEMINI_API_KEY: %w", err)
		}
	}

	return creds, nil
}

// GetProjectRoot finds the project root directory by looking for go.mod
func GetProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("could not find project root (go.mod not found)")
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
