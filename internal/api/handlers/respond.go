package handlers

import (
	"net/http"

	"church-planning-backend/internal/api/middleware"
	"church-planning-backend/internal/auth"
	apperrors "church-planning-backend/internal/errors"
	"church-planning-backend/internal/logger"
	"church-planning-backend/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondError maps typed service errors to HTTP statuses. Anything untyped is
// logged and reported as a generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperrors.IsConfiguration(err):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).WithField("path", c.FullPath()).Error("request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// requireIdentity returns the caller or writes a 401
func requireIdentity(c *gin.Context) (*rbac.Identity, bool) {
	identity := auth.GetIdentity(c)
	if identity == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.ErrUnauthenticated.Error()})
		return nil, false
	}
	return identity, true
}

// pathUUID parses a UUID path parameter or writes a 400
func pathUUID(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + label + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

// requireChurch reads the mandatory church context or writes a 400
func requireChurch(c *gin.Context) (uuid.UUID, bool) {
	churchID, ok, err := middleware.ChurchID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid church ID"})
		return uuid.Nil, false
	}
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: middleware.MissingChurchMessage})
		return uuid.Nil, false
	}
	return churchID, true
}

// churchSession returns the church authorized by middleware.RequirePermission
func churchSession(c *gin.Context) (uuid.UUID, bool) {
	session, ok := middleware.GetSession(c)
	if !ok || session.ChurchID == nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return uuid.Nil, false
	}
	return *session.ChurchID, true
}

func isDenied(err error) bool {
	return apperrors.IsAuthorization(err) || apperrors.IsAuthentication(err)
}
