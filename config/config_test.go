package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "3030",
			AllowedOrigins: []string{"https://michaelhenry.me"},
		},
		Brevo: BrevoConfig{
			APIKey:         "xkeysib-test",
			SenderEmail:    "noreply@michaelhenry.me",
			SenderName:     "Michael Henry",
			RecipientEmail: "me@michaelhenry.me",
		},
		Resume: ResumeConfig{Path: "assets/resume.pdf"},
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected bool
	}{
		{
			name:     "development environment",
			config:   &Config{Server: ServerConfig{AppEnv: "development"}},
			expected: true,
		},
		{
			name:     "debug gin mode",
			config:   &Config{Server: ServerConfig{GinMode: "debug"}},
			expected: true,
		},
		{
			name:     "production environment",
			config:   &Config{Server: ServerConfig{AppEnv: "production", GinMode: "release"}},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.IsDevelopment())
		})
	}
}

func TestConfig_IsProduction(t *testing.T) {
	assert.True(t, (&Config{Server: ServerConfig{AppEnv: "production"}}).IsProduction())
	assert.False(t, (&Config{Server: ServerConfig{AppEnv: "development"}}).IsProduction())
	assert.False(t, (&Config{Server: ServerConfig{AppEnv: "staging"}}).IsProduction())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
		errorMsg    string
	}{
		{
			name:        "valid config",
			mutate:      func(c *Config) {},
			expectError: false,
		},
		{
			name:        "missing api key",
			mutate:      func(c *Config) { c.Brevo.APIKey = "" },
			expectError: true,
			errorMsg:    "BREVO_API_KEY is required",
		},
		{
			name:        "missing sender email",
			mutate:      func(c *Config) { c.Brevo.SenderEmail = "" },
			expectError: true,
			errorMsg:    "BREVO_SENDER_EMAIL is required",
		},
		{
			name:        "missing sender name",
			mutate:      func(c *Config) { c.Brevo.SenderName = "" },
			expectError: true,
			errorMsg:    "BREVO_SENDER_NAME is required",
		},
		{
			name:        "missing port",
			mutate:      func(c *Config) { c.Server.Port = "" },
			expectError: true,
			errorMsg:    "PORT is required",
		},
		{
			name:        "missing origins",
			mutate:      func(c *Config) { c.Server.AllowedOrigins = nil },
			expectError: true,
			errorMsg:    "ALLOWED_CORS_ORIGINS is required",
		},
		{
			name:        "missing resume path",
			mutate:      func(c *Config) { c.Resume.Path = "" },
			expectError: true,
			errorMsg:    "RESUME_PATH is required",
		},
		{
			name: "profiling enabled without endpoint",
			mutate: func(c *Config) {
				c.Profiling.Enabled = true
				c.Profiling.Endpoint = ""
			},
			expectError: true,
			errorMsg:    "O11Y_PROFILING_ENDPOINT is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	// Run from a temp dir so no .env file is picked up
	originalDir, _ := os.Getwd()
	defer os.Chdir(originalDir)
	os.Chdir(t.TempDir())

	os.Clearenv()
	os.Setenv("BREVO_API_KEY", "xkeysib-test")
	os.Setenv("BREVO_SENDER_EMAIL", "noreply@michaelhenry.me")
	os.Setenv("BREVO_SENDER_NAME", "Michael Henry")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "3030", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, "production", cfg.Server.AppEnv)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "assets/resume.pdf", cfg.Resume.Path)
	assert.Contains(t, cfg.Server.AllowedOrigins, "https://michaelhenry.me")
	assert.Contains(t, cfg.Server.AllowedOrigins, "http://localhost:3000")

	// Recipient falls back to sender
	assert.Equal(t, "noreply@michaelhenry.me", cfg.Brevo.RecipientEmail)
}

func TestLoad_WithEnvironmentVariables(t *testing.T) {
	originalDir, _ := os.Getwd()
	defer os.Chdir(originalDir)
	os.Chdir(t.TempDir())

	os.Clearenv()
	os.Setenv("PORT", "9000")
	os.Setenv("GIN_MODE", "debug")
	os.Setenv("APP_ENV", "development")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("BREVO_API_KEY", "xkeysib-test")
	os.Setenv("BREVO_SENDER_EMAIL", "noreply@michaelhenry.me")
	os.Setenv("BREVO_SENDER_NAME", "Michael Henry")
	os.Setenv("CONTACT_RECIPIENT_EMAIL", "inbox@michaelhenry.me")
	os.Setenv("ALLOWED_CORS_ORIGINS", "https://michaelhenry.me, https://www.michaelhenry.me")
	os.Setenv("RESUME_PATH", "/srv/assets/resume.pdf")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.GinMode)
	assert.Equal(t, "development", cfg.Server.AppEnv)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "inbox@michaelhenry.me", cfg.Brevo.RecipientEmail)
	assert.Equal(t, "/srv/assets/resume.pdf", cfg.Resume.Path)
	assert.Equal(t, []string{"https://michaelhenry.me", "https://www.michaelhenry.me"}, cfg.Server.AllowedOrigins)
}

func TestLoad_ValidationFailure(t *testing.T) {
	originalDir, _ := os.Getwd()
	defer os.Chdir(originalDir)
	os.Chdir(t.TempDir())

	// Missing BREVO_API_KEY, BREVO_SENDER_EMAIL, BREVO_SENDER_NAME
	os.Clearenv()

	cfg, err := Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}
