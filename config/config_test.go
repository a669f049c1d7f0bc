package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SMTP_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	// Invalid integers fall back to the default
	assert.Equal(t, 15*time.Second, cfg.SMTPTimeout)
}

func TestLoadConfigTrimsFrontendURL(t *testing.T) {
	t.Setenv("FRONTEND_URL", "https://www.masarinvest.com/")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://www.masarinvest.com", cfg.FrontendURL)
}

func TestValidateSMTP(t *testing.T) {
	t.Run("complete configuration passes", func(t *testing.T) {
		cfg := &Config{
			SMTPHost:       "smtp.example.com",
			SMTPUsername:   "site@example.com",
			SMTPPassword:   "secret",
			SMTPFromEmail:  "site@example.com",
			ContactEmailTo: "info@example.com",
		}
		assert.NoError(t, cfg.ValidateSMTP())
	})

	t.Run("missing variables are all named", func(t *testing.T) {
		cfg := &Config{SMTPHost: "smtp.example.com"}
		err := cfg.ValidateSMTP()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SMTP_USERNAME")
		assert.Contains(t, err.Error(), "SMTP_PASSWORD")
		assert.Contains(t, err.Error(), "SMTP_FROM_EMAIL")
		assert.Contains(t, err.Error(), "CONTACT_EMAIL_TO")
		assert.NotContains(t, err.Error(), "SMTP_HOST")
	})
}
