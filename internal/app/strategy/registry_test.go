package strategy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "call-summary/internal/app/errors"
	"call-summary/internal/app/model"
)

func TestRegistryBuildPreservesOrder(t *testing.T) {
	reg := NewRegistry[string, string]()
	for _, name := range []string{"openai", "gemini", "extractive"} {
		name := name
		require.NoError(t, reg.Register(name, func() (Strategy[string, string], error) {
			return fixed(name, model.KindRule, name, nil), nil
		}))
	}

	strategies, err := reg.Build([]string{"extractive", "openai"})
	require.NoError(t, err)
	require.Len(t, strategies, 2)
	assert.Equal(t, "extractive", strategies[0].Info().Name)
	assert.Equal(t, "openai", strategies[1].Info().Name)
	assert.Equal(t, []string{"extractive", "gemini", "openai"}, reg.Names())
}

func TestRegistryErrors(t *testing.T) {
	reg := NewRegistry[string, string]()
	builder := func() (Strategy[string, string], error) {
		return fixed("a", model.KindRule, "", nil), nil
	}

	assert.Error(t, reg.Register("", builder))
	assert.Error(t, reg.Register("a", nil))
	require.NoError(t, reg.Register("a", builder))
	assert.Error(t, reg.Register("a", builder))

	_, err := reg.Build([]string{"a", "missing"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnknownStrategy))

	require.NoError(t, reg.Register("broken", func() (Strategy[string, string], error) {
		return nil, errors.New("no binary")
	}))
	_, err = reg.Build([]string{"broken"})
	assert.ErrorContains(t, err, "no binary")
}

func TestFromHTTPStatus(t *testing.T) {
	assert.False(t, FromHTTPStatus("x", 401, "").Retryable)
	assert.False(t, FromHTTPStatus("x", 400, "").Retryable)
	assert.True(t, FromHTTPStatus("x", 429, "").Retryable)
	assert.True(t, FromHTTPStatus("x", 503, "").Retryable)
	assert.Equal(t, CodeAuth, FromHTTPStatus("x", 403, "").Code)

	assert.True(t, IsRetryable(errors.New("plain")))
	wrapped := apperrors.Wrap(NewError("x", CodeBadRequest, "bad", false, nil), "context")
	assert.False(t, IsRetryable(wrapped))
}
