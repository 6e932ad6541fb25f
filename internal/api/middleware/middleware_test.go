package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"church-planning-backend/internal/auth"
	"church-planning-backend/internal/config"
	apperrors "church-planning-backend/internal/errors"
	"church-planning-backend/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeObserver struct {
	method string
	route  string
	status int
}

func (f *fakeObserver) ObserveHTTP(method, route string, status int, _ time.Duration) {
	f.method, f.route, f.status = method, route, status
}

type fakeAuthorizer struct {
	err      error
	churchID *uuid.UUID
}

func (f *fakeAuthorizer) Authorize(identity *rbac.Identity, _ rbac.Permission, churchID *uuid.UUID) (*rbac.Session, error) {
	f.churchID = churchID
	if f.err != nil {
		return nil, f.err
	}
	return &rbac.Session{Identity: *identity, ChurchID: churchID}, nil
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", w.Body.String())
	})
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(Recovery())
	router.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS(&config.Config{AllowedOrigins: []string{"http://localhost:5173"}}))
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "http://evil.example")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/x", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	observer := &fakeObserver{}
	router := gin.New()
	router.Use(Metrics(observer))
	router.GET("/events/:id", func(c *gin.Context) { c.Status(http.StatusAccepted) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/events/"+uuid.NewString(), nil))

	assert.Equal(t, http.MethodGet, observer.method)
	assert.Equal(t, "/events/:id", observer.route)
	assert.Equal(t, http.StatusAccepted, observer.status)
}

func TestChurchID(t *testing.T) {
	churchID := uuid.New()

	cases := []struct {
		name    string
		target  string
		header  string
		want    uuid.UUID
		ok      bool
		wantErr bool
	}{
		{name: "query", target: "/?churchId=" + churchID.String(), want: churchID, ok: true},
		{name: "header", target: "/", header: churchID.String(), want: churchID, ok: true},
		{name: "absent", target: "/"},
		{name: "malformed", target: "/?churchId=nope", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.header != "" {
				c.Request.Header.Set(ChurchHeader, tc.header)
			}

			id, ok, err := ChurchID(c)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, id)
		})
	}
}

func newGatedRouter(authorizer Authorizer, identity *rbac.Identity) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if identity != nil {
			auth.SetIdentity(c, *identity)
		}
		c.Next()
	})
	router.GET("/members", RequirePermission(authorizer, rbac.PermissionMembersView), func(c *gin.Context) {
		session, ok := GetSession(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"church_id": session.ChurchID})
	})
	return router
}

func TestRequirePermission(t *testing.T) {
	identity := &rbac.Identity{UserID: uuid.New(), Email: "head@church.org"}
	churchID := uuid.New()

	t.Run("anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		newGatedRouter(&fakeAuthorizer{}, nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/members", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("church from header", func(t *testing.T) {
		authorizer := &fakeAuthorizer{}
		req := httptest.NewRequest(http.MethodGet, "/members", nil)
		req.Header.Set(ChurchHeader, churchID.String())
		w := httptest.NewRecorder()
		newGatedRouter(authorizer, identity).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, authorizer.churchID)
		assert.Equal(t, churchID, *authorizer.churchID)
	})

	t.Run("forbidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		newGatedRouter(&fakeAuthorizer{err: apperrors.ErrForbidden}, identity).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/members?churchId="+churchID.String(), nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing church", func(t *testing.T) {
		authorizer := &fakeAuthorizer{}
		w := httptest.NewRecorder()
		newGatedRouter(authorizer, identity).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/members", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "churchId")
		assert.Nil(t, authorizer.churchID)
	})

	t.Run("malformed church", func(t *testing.T) {
		w := httptest.NewRecorder()
		newGatedRouter(&fakeAuthorizer{}, identity).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/members?churchId=x", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
