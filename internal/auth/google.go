package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

const googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

// UserProfile represents the Google account behind a login
type UserProfile struct {
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	AvatarURL     string `json:"picture"`
}

// GoogleClient wraps the OAuth2 configuration and the userinfo endpoint
type GoogleClient struct {
	config      *ProviderConfig
	userInfoURL string
	endpoint    oauth2.Endpoint
}

// NewGoogleClient creates a new Google OAuth client
func NewGoogleClient(config *ProviderConfig) *GoogleClient {
	return &GoogleClient{
		config:      config,
		userInfoURL: googleUserInfoURL,
		endpoint:    endpoints.Google,
	}
}

// GetOAuth2Config returns the OAuth2 configuration for this client
func (c *GoogleClient) GetOAuth2Config(redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.config.ClientID,
		ClientSecret: c.config.ClientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     c.endpoint,
	}
}

// GetUserProfile fetches the profile of the token's owner
func (c *GoogleClient) GetUserProfile(ctx context.Context, token *oauth2.Token) (*UserProfile, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build userinfo request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("invalid access token")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo returned status %d", resp.StatusCode)
	}

	var profile UserProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode user profile: %w", err)
	}
	profile.Email = strings.ToLower(strings.TrimSpace(profile.Email))

	if profile.Subject == "" || profile.Email == "" {
		return nil, fmt.Errorf("user profile is missing subject or email")
	}
	if !profile.EmailVerified {
		return nil, fmt.Errorf("email %s is not verified", profile.Email)
	}

	return &profile, nil
}

// ValidateConfig validates the Google client configuration
func (c *GoogleClient) ValidateConfig() error {
	if c.config.ClientID == "" {
		return fmt.Errorf("client ID is required")
	}
	if c.config.ClientSecret == "" {
		return fmt.Errorf("client secret is required")
	}
	return nil
}
