package auth

import (
	"context"
	"encoding/json"
	"errors"
	"html"
	"net/http"
	"strings"

	apperrors "church-planning-backend/internal/errors"
	"church-planning-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const stateCookie = "oauth_state"

// escapeJSString safely escapes a Go string for embedding inside JS string literals.
func escapeJSString(s string) string {
	e := html.EscapeString(s)
	e = strings.ReplaceAll(e, "\n", `\n`)
	e = strings.ReplaceAll(e, "\r", ``)
	return e
}

func frameHTML(payload string) string {
	return `<!doctype html><html><body><script>
(function(){
  var msg = ` + payload + `;
  try { if (window.opener) window.opener.postMessage(msg, "*"); } finally { window.close(); }
})();
</script></body></html>`
}

func frameError(c *gin.Context, name, message string) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, frameHTML(`{ type: "authorization_response", error: { name: "`+escapeJSString(name)+`", message: "`+escapeJSString(message)+`" } }`))
}

// Authenticator is the part of AuthService the handlers need
type Authenticator interface {
	TokenValidator
	GenerateState() (string, error)
	GetAuthURL(state string) (string, error)
	HandleCallback(ctx context.Context, code string) (*AuthHandlerResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*AuthHandlerResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service Authenticator
	secure  bool
}

// NewAuthHandler creates a new authentication handler. secure marks cookies Secure.
func NewAuthHandler(service Authenticator, secure bool) *AuthHandler {
	return &AuthHandler{service: service, secure: secure}
}

// Start handles GET /api/auth/google/start
// @Summary Start Google authentication
// @Description Redirect to the Google consent screen
// @Tags authentication
// @Produce json
// @Success 302 {string} string "Redirect to Google authorization URL"
// @Failure 500 {object} map[string]interface{} "Provider not configured"
// @Router /api/auth/google/start [get]
func (h *AuthHandler) Start(c *gin.Context) {
	state, err := h.service.GenerateState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate state parameter"})
		return
	}

	authURL, err := h.service.GetAuthURL(state)
	if err != nil {
		if apperrors.IsConfiguration(err) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate authorization URL"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookie, state, 600, "/api/auth", "", h.secure, true)
	c.Redirect(http.StatusFound, authURL)
}

// Callback handles GET /api/auth/google/callback
// @Summary Handle Google callback
// @Description Exchange the authorization code and post the session to the opener window
// @Tags authentication
// @Produce text/html
// @Param code query string true "OAuth authorization code"
// @Param state query string true "OAuth state parameter"
// @Param error query string false "OAuth error parameter from provider"
// @Success 200 {string} string "HTML page that posts authentication result to opener window"
// @Router /api/auth/google/callback [get]
func (h *AuthHandler) Callback(c *gin.Context) {
	if errorParam := c.Query("error"); errorParam != "" {
		frameError(c, "OAuthError", errorParam+": "+c.Query("error_description"))
		return
	}

	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Authorization code and state are required"})
		return
	}

	expected, err := c.Cookie(stateCookie)
	if err != nil || expected == "" || expected != state {
		frameError(c, "StateMismatch", "invalid OAuth state")
		return
	}
	c.SetCookie(stateCookie, "", -1, "/api/auth", "", h.secure, true)

	resp, err := h.service.HandleCallback(c.Request.Context(), code)
	if err != nil {
		logger.WithContext(c.Request.Context()).WithError(err).Warn("google login failed")
		frameError(c, "Error", "login failed")
		return
	}

	c.SetCookie("refresh_token", resp.RefreshToken, 30*24*3600, "/api/auth", "", h.secure, true)

	body, err := json.Marshal(resp)
	if err != nil {
		frameError(c, "Error", "login failed")
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, frameHTML(`{ type: "authorization_response", response: `+string(body)+` }`))
}

// Refresh handles POST /api/auth/refresh
// @Summary Refresh access token
// @Description Rotate the refresh token and issue a new access token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest false "Refresh token (falls back to cookie)"
// @Success 200 {object} AuthHandlerResponse
// @Failure 401 {object} map[string]interface{} "Invalid or expired refresh token"
// @Router /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := h.refreshTokenFrom(c)
	if refreshToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token is required"})
		return
	}

	resp, err := h.service.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidRefreshToken) || errors.Is(err, apperrors.ErrRefreshTokenExpired) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token refresh failed"})
		return
	}

	c.SetCookie("refresh_token", resp.RefreshToken, 30*24*3600, "/api/auth", "", h.secure, true)
	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /api/auth/logout
// @Summary Logout
// @Description Revoke the refresh token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest false "Refresh token (falls back to cookie)"
// @Success 200 {object} AuthLogoutResponse "Successfully logged out"
// @Failure 500 {object} map[string]interface{} "Logout failed"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), h.refreshTokenFrom(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}

	c.SetCookie("refresh_token", "", -1, "/api/auth", "", h.secure, true)
	c.JSON(http.StatusOK, AuthLogoutResponse{Message: "Logged out successfully"})
}

// ValidateToken validates a bearer token and returns its claims
// @Summary Validate JWT token
// @Description Validate JWT token and return token claims
// @Tags authentication
// @Produce json
// @Param Authorization header string true "Bearer token to validate"
// @Success 200 {object} AuthValidateResponse "Token is valid with claims"
// @Failure 401 {object} map[string]interface{} "Authorization header required or token invalid"
// @Router /api/auth/validate [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
		return
	}

	claims, err := h.service.ValidateJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, Claims: claims})
}

func (h *AuthHandler) refreshTokenFrom(c *gin.Context) string {
	var req RefreshTokenRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err == nil && req.RefreshToken != "" {
			return req.RefreshToken
		}
	}
	if cookie, err := c.Cookie("refresh_token"); err == nil {
		return cookie
	}
	return ""
}
