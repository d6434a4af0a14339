package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCredentials(t *testing.T) {
	testCases := []struct {
		name          string
		openaiKey     string
		geminiKey     string
		elevenKey     string
		expectError   bool
		errorContains string
	}{
		{
			name:      "valid OpenAI key",
			openaiKey: "sk-1234567890abcdef1234567890abcdef",
		},
		{
			name:      "valid Gemini key",
			geminiKey: "AIzaTest-1234567890abcdef1234567890",
		},
		{
			name:      "all valid keys",
			openaiKey: "sk-1234567890abcdef1234567890abcdef",
			geminiKey: "AIzaTest-1234567890abcdef1234567890",
			elevenKey: "0123456789abcdef0123456789abcdef",
		},
		{
			name:          "invalid OpenAI key format",
			openaiKey:     "invalid-key",
			expectError:   true,
			errorContains: "invalid OPENAI_API_KEY",
		},
		{
			name:          "OpenAI key too short",
			openaiKey:     "sk-short",
			expectError:   true,
			errorContains: "too short",
		},
		{
			name:          "invalid Gemini key format",
			geminiKey:     "invalid-key",
			expectError:   true,
			errorContains: "invalid GEMINI_API_KEY",
		},
		{
			name:          "ElevenLabs key too short",
			elevenKey:     "short",
			expectError:   true,
			errorContains: "invalid ELEVENLABS_API_KEY",
		},
		{
			name: "empty keys are allowed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("OPENAI_API_KEY", tc.openaiKey)
			t.Setenv("GEMINI_API_KEY", tc.geminiKey)
			t.Setenv("ELEVENLABS_API_KEY", tc.elevenKey)

			creds, err := GetCredentials()

			if tc.expectError {
				assert.Error(t, err)
				if tc.errorContains != "" {
					assert.Contains(t, err.Error(), tc.errorContains)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.openaiKey, creds.OpenAI)
				assert.Equal(t, tc.geminiKey, creds.Gemini)
				assert.Equal(t, tc.elevenKey, creds.ElevenLabs)
			}
		})
	}
}

func TestCredentialsWithOpenAIOverride(t *testing.T) {
	base := Credentials{OpenAI: "sk-server", Gemini: "AIza-server"}

	overridden := base.WithOpenAIOverride("sk-request")
	assert.Equal(t, "sk-request", overridden.OpenAI)
	assert.Equal(t, "AIza-server", overridden.Gemini)
	assert.Equal(t, "sk-server", base.OpenAI, "original must stay untouched")

	assert.Equal(t, base, base.WithOpenAIOverride("   "))
}

func TestCredentialsAvailable(t *testing.T) {
	assert.Empty(t, Credentials{}.Available())
	assert.Equal(t, []string{"OpenAI", "Gemini"}, Credentials{OpenAI: "k", Gemini: "g"}.Available())
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	path, err := LoadEnv()
	require.NoError(t, err)
	assert.Empty(t, path)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CALLSUM_TEST_VALUE=from-dotenv\n"), 0o600))
	t.Setenv("CALLSUM_TEST_VALUE", "")
	require.NoError(t, os.Unsetenv("CALLSUM_TEST_VALUE"))

	path, err = LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, ".env", path)
	assert.Equal(t, "from-dotenv", os.Getenv("CALLSUM_TEST_VALUE"))
}

func TestGetProjectRoot(t *testing.T) {
	root, err := GetProjectRoot()
	require.NoError(t, err)
	assert.NotEmpty(t, root)

	// Verify go.mod exists in the found root
	_, err = os.Stat(root + "/go.mod")
	assert.NoError(t, err, "go.mod should exist in project root")
}
