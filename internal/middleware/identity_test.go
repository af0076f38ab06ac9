package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backoffice/config"
	"backoffice/internal/core"
	"backoffice/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret string, claims *core.Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newIdentityRouter(t *testing.T) (*gin.Engine, *struct {
	userID string
	called bool
	errors []error
}) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conf := &config.Configuration{}
	conf.App.SecretKey = testSecret
	trace, err := telemetry.NewTrace(conf)
	require.NoError(t, err)

	identity := NewIdentity(zap.NewNop(), trace, conf)

	state := &struct {
		userID string
		called bool
		errors []error
	}{}

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Next()
		for _, e := range c.Errors {
			state.errors = append(state.errors, e.Err)
		}
	})
	r.Use(identity.Handler())
	r.GET("/protected", func(c *gin.Context) {
		state.called = true
		if raw, ok := c.Get(core.ContextUserIDKey); ok {
			state.userID, _ = raw.(string)
		}
		c.Status(http.StatusOK)
	})
	return r, state
}

func TestIdentityAcceptsValidToken(t *testing.T) {
	r, state := newIdentityRouter(t)

	token := signToken(t, testSecret, &core.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user_2abc",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.True(t, state.called)
	assert.Equal(t, "user_2abc", state.userID)
	assert.Empty(t, state.errors)
}

func TestIdentityRejectsMissingHeader(t *testing.T) {
	r, state := newIdentityRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.False(t, state.called)
	assert.NotEmpty(t, state.errors)
}

func TestIdentityRejectsWrongSecret(t *testing.T) {
	r, state := newIdentityRouter(t)

	token := signToken(t, "some-other-secret", &core.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user_2abc",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.False(t, state.called)
	assert.NotEmpty(t, state.errors)
}

func TestIdentityRejectsExpiredToken(t *testing.T) {
	r, state := newIdentityRouter(t)

	token := signToken(t, testSecret, &core.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user_2abc",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.False(t, state.called)
	assert.NotEmpty(t, state.errors)
}

func TestIdentityRejectsTokenWithoutSubject(t *testing.T) {
	r, state := newIdentityRouter(t)

	token := signToken(t, testSecret, &core.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.False(t, state.called)
	assert.NotEmpty(t, state.errors)
}
