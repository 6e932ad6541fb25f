package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"church-planning-backend/internal/database/models"
	apperrors "church-planning-backend/internal/errors"
	"church-planning-backend/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

const tokenIssuer = "church-planning-backend"

// UserProvisioner creates or refreshes the local user behind a login
type UserProvisioner interface {
	ProvisionUser(ctx context.Context, profile *UserProfile) (*models.User, error)
}

// AuthService provides authentication functionality
type AuthService struct {
	config      *AuthConfig
	google      *GoogleClient
	tokens      TokenStore
	provisioner UserProvisioner
	now         func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               uuid.UUID `json:"user_id" example:"4b0c6f3e-8a0d-4b8e-9d0b-8f6b9f0e2a11"`
	Email                string    `json:"email" example:"secretary@church.org"`
	Name                 string    `json:"name" example:"Marie Dupont"`
	Provider             string    `json:"provider" example:"google"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// SessionUser is the user part of a login response
type SessionUser struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	DisplayName *string   `json:"displayName,omitempty"`
	AvatarURL   string    `json:"avatarUrl,omitempty"`
}

// AuthHandlerResponse represents the response of a login or refresh
type AuthHandlerResponse struct {
	AccessToken  string      `json:"accessToken"`
	TokenType    string      `json:"tokenType"`
	ExpiresIn    int64       `json:"expiresIn"`
	RefreshToken string      `json:"refreshToken,omitempty"`
	User         SessionUser `json:"user"`
}

// RefreshTokenRequest represents the request for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// AuthLogoutResponse represents the response from the logout endpoint
type AuthLogoutResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims"`
}

// NewAuthService creates a new authentication service. A nil token store keeps
// refresh tokens in memory.
func NewAuthService(config *AuthConfig, tokens TokenStore, provisioner UserProvisioner) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	if tokens == nil {
		tokens = NewMemoryTokenStore()
	}

	var google *GoogleClient
	if config.Google.Configured() {
		google = NewGoogleClient(&config.Google)
	}

	return &AuthService{
		config:      config,
		google:      google,
		tokens:      tokens,
		provisioner: provisioner,
		now:         time.Now,
	}, nil
}

// GetAuthURL generates the Google authorization URL
func (s *AuthService) GetAuthURL(state string) (string, error) {
	if s.google == nil {
		return "", apperrors.ErrProviderNotConfigured
	}
	oauth2Config := s.google.GetOAuth2Config(s.config.CallbackURL())
	return oauth2Config.AuthCodeURL(state, oauth2.AccessTypeOnline), nil
}

// HandleCallback exchanges the authorization code, provisions the user and
// issues tokens
func (s *AuthService) HandleCallback(ctx context.Context, code string) (*AuthHandlerResponse, error) {
	if s.google == nil {
		return nil, apperrors.ErrProviderNotConfigured
	}

	oauth2Config := s.google.GetOAuth2Config(s.config.CallbackURL())
	token, err := oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}

	profile, err := s.google.GetUserProfile(ctx, token)
	if err != nil {
		return nil, err
	}

	return s.Login(ctx, profile)
}

// Login provisions the local user for a verified profile and issues tokens
func (s *AuthService) Login(ctx context.Context, profile *UserProfile) (*AuthHandlerResponse, error) {
	if s.provisioner == nil {
		return nil, fmt.Errorf("user provisioning is not configured")
	}

	user, err := s.provisioner.ProvisionUser(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to provision user: %w", err)
	}

	logger.WithContext(logger.ContextWithUser(ctx, user.Email)).
		WithField("user_id", user.ID).
		Info("user logged in")

	return s.issue(ctx, &RefreshTokenData{
		UserID:   user.ID,
		Email:    user.Email,
		Name:     user.Name,
		Provider: GoogleProvider,
	}, user.DisplayName, user.AvatarURL)
}

// RefreshToken rotates a refresh token and issues a new access token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*AuthHandlerResponse, error) {
	data, err := s.tokens.Get(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if s.now().After(data.ExpiresAt) {
		_ = s.tokens.Delete(ctx, refreshToken)
		return nil, apperrors.ErrRefreshTokenExpired
	}

	if err := s.tokens.Delete(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return s.issue(ctx, data, nil, "")
}

// Logout revokes a refresh token. Unknown tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.tokens.Delete(ctx, refreshToken)
}

// GenerateJWT creates a signed access token for the user
func (s *AuthService) GenerateJWT(userID uuid.UUID, email, name, provider string) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID:   userID,
		Email:    email,
		Name:     name,
		Provider: provider,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		if claims.UserID == uuid.Nil {
			return nil, errors.New("token carries no user")
		}
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// GenerateState generates a random state parameter for OAuth2
func (s *AuthService) GenerateState() (string, error) {
	return generateRandomString(32)
}

func (s *AuthService) issue(ctx context.Context, data *RefreshTokenData, displayName *string, avatarURL string) (*AuthHandlerResponse, error) {
	accessToken, err := s.GenerateJWT(data.UserID, data.Email, data.Name, data.Provider)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	refreshToken, err := generateRandomString(64)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	now := s.now()
	if err := s.tokens.Save(ctx, refreshToken, &RefreshTokenData{
		UserID:    data.UserID,
		Email:     data.Email,
		Name:      data.Name,
		Provider:  data.Provider,
		ExpiresAt: now.Add(s.config.RefreshTTL),
		CreatedAt: now,
	}); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &AuthHandlerResponse{
		AccessToken:  accessToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.config.TokenTTL.Seconds()),
		RefreshToken: refreshToken,
		User: SessionUser{
			ID:          data.UserID,
			Email:       data.Email,
			Name:        data.Name,
			DisplayName: displayName,
			AvatarURL:   avatarURL,
		},
	}, nil
}

// generateRandomString generates a random base64 encoded string
func generateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
