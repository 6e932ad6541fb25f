package middleware

import (
	"net/http"

	"church-planning-backend/internal/auth"
	apperrors "church-planning-backend/internal/errors"
	"church-planning-backend/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChurchHeader selects the church for church scoped endpoints
const ChurchHeader = "X-Church-ID"

// MissingChurchMessage is returned when a church scoped request has no church context
const MissingChurchMessage = "churchId query parameter or X-Church-ID header is required"

const contextSession = "rbac_session"

// Authorizer checks a permission at a church, or at any church when churchID is nil
type Authorizer interface {
	Authorize(identity *rbac.Identity, permission rbac.Permission, churchID *uuid.UUID) (*rbac.Session, error)
}

// ChurchID reads the church context from the churchId query parameter or the
// X-Church-ID header. ok is false when neither is present; err is set when the
// value is not a UUID.
func ChurchID(c *gin.Context) (id uuid.UUID, ok bool, err error) {
	raw := c.Query("churchId")
	if raw == "" {
		raw = c.GetHeader(ChurchHeader)
	}
	if raw == "" {
		return uuid.Nil, false, nil
	}
	id, err = uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false, err
	}
	return id, true, nil
}

// RequirePermission authorizes the caller for a permission at the request's church
// context and stores the resulting session. The church context is required.
func RequirePermission(authorizer Authorizer, permission rbac.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := auth.GetIdentity(c)
		if identity == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUnauthenticated.Error()})
			return
		}

		churchID, ok, err := ChurchID(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid church ID"})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": MissingChurchMessage})
			return
		}

		session, err := authorizer.Authorize(identity, permission, &churchID)
		if err != nil {
			switch {
			case apperrors.IsAuthentication(err):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			case apperrors.IsAuthorization(err):
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
			default:
				_ = c.Error(err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
			return
		}

		c.Set(contextSession, session)
		c.Next()
	}
}

// GetSession returns the session stored by RequirePermission
func GetSession(c *gin.Context) (*rbac.Session, bool) {
	v, exists := c.Get(contextSession)
	if !exists {
		return nil, false
	}
	session, ok := v.(*rbac.Session)
	return session, ok
}
