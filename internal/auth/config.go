package auth

import (
	"fmt"
	"strings"
	"time"

	"church-planning-backend/internal/config"
)

const (
	// GoogleProvider is the only login provider
	GoogleProvider = "google"

	defaultRefreshTTL = 30 * 24 * time.Hour
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret   string
	RedirectURL string
	TokenTTL    time.Duration
	RefreshTTL  time.Duration
	Google      ProviderConfig
}

// ProviderConfig holds configuration for the OAuth provider
type ProviderConfig struct {
	ClientID     string
	ClientSecret string
}

// Configured reports whether both client credentials are present
func (p ProviderConfig) Configured() bool {
	return p.ClientID != "" && p.ClientSecret != ""
}

// NewAuthConfig derives the auth configuration from the application config
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret:   cfg.JWTSecret,
		RedirectURL: strings.TrimRight(cfg.AppURL, "/"),
		TokenTTL:    time.Duration(cfg.JWTTTLHours) * time.Hour,
		RefreshTTL:  defaultRefreshTTL,
		Google: ProviderConfig{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
		},
	}
}

// CallbackURL returns the OAuth redirect target registered with Google
func (c *AuthConfig) CallbackURL() string {
	return fmt.Sprintf("%s/api/auth/%s/callback", c.RedirectURL, GoogleProvider)
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if c.RedirectURL == "" {
		return fmt.Errorf("redirect URL is required")
	}

	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}

	if c.RefreshTTL <= 0 {
		c.RefreshTTL = defaultRefreshTTL
	}

	return nil
}
