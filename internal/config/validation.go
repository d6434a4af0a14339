package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	apperrors "call-summary/internal/app/errors"
)

var validate = validator.New()

// Validate checks struct tags first, then the strategy orders and timeouts
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if validationErrs, ok := err.(validator.ValidationErrors); ok {
			msgs := make([]string, 0, len(validationErrs))
			for _, fieldError := range validationErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", fieldError.Namespace(), fieldError.Tag()))
			}
			return apperrors.Wrapf(apperrors.ErrInvalidConfig, "%s", strings.Join(msgs, "; "))
		}
		return apperrors.Wrap(apperrors.ErrInvalidConfig, err.Error())
	}

	orders := map[string][]string{
		"transcriber": c.Pipeline.TranscriberOrder,
		"summarizer":  c.Pipeline.SummarizerOrder,
		"title":       c.Pipeline.TitleOrder,
	}
	for stage, order := range orders {
		if err := ValidateStrategyOrder(stage, order); err != nil {
			return err
		}
	}

	timeouts := map[string]time.Duration{
		"openai":           c.OpenAI.Timeout,
		"elevenlabs":       c.ElevenLabs.Timeout,
		"gemini":           c.Gemini.Timeout,
		"whisper_server":   c.WhisperServer.Timeout,
		"whisper_cpp":      c.WhisperCpp.Timeout,
		"local_summarizer": c.LocalSummarizer.Timeout,
		"server_request":   c.Server.RequestTimeout,
	}
	for name, timeout := range timeouts {
		if err := ValidateTimeout(timeout, name); err != nil {
			return apperrors.Wrap(apperrors.ErrInvalidConfig, err.Error())
		}
	}

	return ValidateRetryDelay(c.Pipeline.RetryDelay, "pipeline")
}

// ValidateStrategyOrder rejects unknown and duplicated strategy names
func ValidateStrategyOrder(stage string, order []string) error {
	known, ok := KnownStrategies[stage]
	if !ok {
		return apperrors.Wrapf(apperrors.ErrInvalidConfig, "unknown stage %q", stage)
	}
	if len(order) == 0 {
		return apperrors.Wrapf(apperrors.ErrInvalidConfig, "%s order is empty", stage)
	}

	seen := make(map[string]bool, len(order))
	for _, name := range order {
		if seen[name] {
			return apperrors.Wrapf(apperrors.ErrInvalidConfig, "%s order lists %q twice", stage, name)
		}
		seen[name] = true

		found := false
		for _, k := range known {
			if k == name {
				found = true
				break
			}
		}
		if !found {
			return apperrors.Wrapf(apperrors.ErrUnknownStrategy, "%s strategy %q (known: %s)", stage, name, strings.Join(known, ", "))
		}
	}
	return nil
}

// ValidateTimeout validates timeout duration
func ValidateTimeout(timeout time.Duration, name string) error {
	if timeout <= 0 {
		return fmt.Errorf("%s timeout must be positive", name)
	}
	if timeout > 30*time.Minute {
		return fmt.Errorf("%s timeout too large (max 30 minutes)", name)
	}
	return nil
}

// ValidateRetryDelay validates retry delay
func ValidateRetryDelay(delay time.Duration, name string) error {
	if delay < 0 {
		return apperrors.Wrapf(apperrors.ErrInvalidConfig, "%s retry delay cannot be negative", name)
	}
	if delay > time.Minute {
		return apperrors.Wrapf(apperrors.ErrInvalidConfig, "%s retry delay too high (max 60 seconds)", name)
	}
	return nil
}

// ValidateAPIKey validates API key format
func ValidateAPIKey(apiKey string, keyType string) error {
	if apiKey == "" {
		return fmt.Errorf("%s API key is required", keyType)
	}

	switch keyType {
	case "OpenAI":
		if !strings.HasPrefix(apiKey, "sk-") {
			return fmt.Errorf("invalid OpenAI API key format: must start with 'sk-'")
		}
		if len(apiKey) < 20 {
			return fmt.Errorf("invalid OpenAI API key format: too short")
		}
	case "Gemini":
		if !strings.HasPrefix(apiKey, "AIza") {
			return fmt.Errorf("invalid Gemini API key format: must start with 'AIza'")
		}
		if len(apiKey) < 30 {
			return fmt.Errorf("invalid Gemini API key format: too short")
		}
	case "ElevenLabs":
		if len(apiKey) < 32 {
			return fmt.Errorf("invalid ElevenLabs API key format: too short")
		}
	}

	return nil
}
