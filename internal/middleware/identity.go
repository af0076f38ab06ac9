package middleware

import (
	"strings"

	"backoffice/config"
	"backoffice/internal/core"
	cErr "backoffice/internal/pkg/error"
	"backoffice/internal/pkg/response"
	"backoffice/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// Identity 驗證身分供應商簽發的 Bearer JWT，並把 userID 放進 gin.Context。
// 所有 /api/stores 底下的路由都必須先通過這裡。
type Identity struct {
	logger *zap.Logger
	trace  *telemetry.Trace
	conf   *config.Configuration
}

func NewIdentity(
	logger *zap.Logger,
	trace *telemetry.Trace,
	conf *config.Configuration,
) *Identity {
	return &Identity{
		logger: logger,
		trace:  trace,
		conf:   conf,
	}
}

func (m *Identity) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanIdentityMiddleware))

		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			m.trace.ApplyTraceAttributes(span, core.TraceIdentityMeta{
				Status: "missing_bearer_token",
			})
			cause := cErr.Unauthenticated("missing bearer token")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		claims := &core.Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, cErr.Unauthenticated("unexpected signing method")
			}
			return []byte(m.conf.App.SecretKey), nil
		})
		if err != nil || !token.Valid {
			m.trace.ApplyTraceAttributes(span, core.TraceIdentityMeta{
				Status: "invalid_token",
			})
			m.logger.Warn("identity token rejected", zap.Error(err))
			cause := cErr.Unauthenticated("invalid or expired token")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}
		if claims.Subject == "" {
			m.trace.ApplyTraceAttributes(span, core.TraceIdentityMeta{
				Status: "missing_subject",
			})
			cause := cErr.Unauthenticated("token has no subject")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}

		m.trace.ApplyTraceAttributes(span, core.TraceIdentityMeta{
			UserID: claims.Subject,
			Status: "ok",
		})
		c.Set(core.ContextUserIDKey, claims.Subject)
		end(nil)
		c.Next()
	}
}
