package middleware

import (
	"errors"
	"strconv"

	"backoffice/config"
	"backoffice/internal/core"
	"backoffice/internal/database/redis/repository"
	cErr "backoffice/internal/pkg/error"
	"backoffice/internal/pkg/response"
	"backoffice/internal/telemetry"

	"github.com/gin-gonic/gin"
)

// RateLimit 公開端點（storefront、checkout）的固定視窗限流。
// 以 clientIP + route 當配額桶，額度與視窗長度由設定檔決定。
type RateLimit struct {
	trace                 *telemetry.Trace
	conf                  *config.Configuration
	rateLimiterRepository *repository.RateLimiterRepository
}

func NewRateLimit(
	trace *telemetry.Trace,
	conf *config.Configuration,
	rateLimiterRepository *repository.RateLimiterRepository,
) *RateLimit {
	return &RateLimit{
		trace:                 trace,
		conf:                  conf,
		rateLimiterRepository: rateLimiterRepository,
	}
}

func (middleware *RateLimit) Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := middleware.conf.Catalog.PublicRateLimit
		window := middleware.conf.Catalog.PublicRateWindow
		// 未設定額度視為不限流
		if limit <= 0 || window <= 0 {
			c.Next()
			return
		}

		ctx, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanRateLimit))

		clientKey := c.ClientIP() + ":" + c.FullPath()
		remaining, ttlSec, err := middleware.rateLimiterRepository.Consume(ctx, clientKey, window, limit)

		middleware.trace.ApplyTraceAttributes(span, core.TraceRateLimitMeta{
			Key:       clientKey,
			Limit:     limit,
			WindowSec: window,
			Remaining: remaining,
			TTL:       ttlSec,
		})

		// 寫入回應標頭，方便呼叫端與排錯
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if ttlSec > 0 {
			c.Header("X-RateLimit-Reset", strconv.FormatInt(ttlSec, 10))
		}

		if err != nil {
			if errors.Is(err, repository.ErrRateLimitExceeded) {
				if ttlSec > 0 {
					c.Header("Retry-After", strconv.FormatInt(ttlSec, 10))
				}
				cause := cErr.RateLimitExceeded("rate limit exceeded")
				response.AbortWithError(c, cause)
				end(cause)
				return
			}
			// Redis 故障不阻斷公開流量
			end(nil)
			c.Next()
			return
		}

		end(nil)
		c.Next()
	}
}
