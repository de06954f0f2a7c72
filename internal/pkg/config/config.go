package config

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

var ErrMissingAPIKey = errors.New("config: GROQ_API_KEY is not set")

type Config struct {
	Port     string `env:"PORT,      default=5000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Session    SessionConfig
	Completion CompletionConfig
	Persona    PersonaConfig
}

type SessionConfig struct {
	Secret       string        `env:"SESSION_SECRET"`
	LegacySecret string        `env:"FLASK_SECRET_KEY"`
	MaxAge       time.Duration `env:"SESSION_MAX_AGE, default=24h"`
	Secure       bool          `env:"SESSION_SECURE,  default=false"`
	TokenTTL     time.Duration `env:"TOKEN_TTL,       default=24h"`
	Hasher       string        `env:"PASSWORD_HASHER, default=sha256"`
}

type CompletionConfig struct {
	APIKey  string        `env:"GROQ_API_KEY"`
	BaseURL string        `env:"COMPLETION_BASE_URL, default=https://api.groq.com/openai/v1"`
	Model   string        `env:"COMPLETION_MODEL,    default=llama3-70b-8192"`
	Timeout time.Duration `env:"COMPLETION_TIMEOUT,  default=0s"`
}

type PersonaConfig struct {
	Name string `env:"PERSONA_NAME, default=Flex"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := Process(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// Process reads configuration from the given lookuper and checks the values
// the service cannot start without.
func Process(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	if cfg.Completion.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &cfg, nil
}

// SigningSecret returns the configured session secret, falling back to the
// legacy variable. generated reports that neither was set and a random
// per-process key was produced instead.
func (s SessionConfig) SigningSecret() (secret string, generated bool, err error) {
	if s.Secret != "" {
		return s.Secret, false, nil
	}
	if s.LegacySecret != "" {
		return s.LegacySecret, false, nil
	}
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", false, fmt.Errorf("config: generate session secret: %w", err)
	}
	return hex.EncodeToString(b), true, nil
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
