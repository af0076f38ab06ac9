package middleware

import (
	"errors"

	"backoffice/internal/core"
	"backoffice/internal/database/mongodb/repository"
	cErr "backoffice/internal/pkg/error"
	"backoffice/internal/pkg/response"
	"backoffice/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// StoreOwner 解析路徑上的 :storeId，確認 Store 存在且屬於目前登入的 user，
// 通過後把 *model.Store 放進 gin.Context 供 handler 使用。
type StoreOwner struct {
	logger          *zap.Logger
	trace           *telemetry.Trace
	storeRepository *repository.StoreRepository
}

func NewStoreOwner(
	logger *zap.Logger,
	trace *telemetry.Trace,
	storeRepository *repository.StoreRepository,
) *StoreOwner {
	return &StoreOwner{
		logger:          logger,
		trace:           trace,
		storeRepository: storeRepository,
	}
}

func (m *StoreOwner) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanStoreOwner))

		rawUID, ok := c.Get(core.ContextUserIDKey)
		if !ok {
			m.trace.ApplyTraceAttributes(span, core.TraceStoreOwnerMeta{
				Status: "missing_user_context",
			})
			cause := cErr.Unauthenticated("missing user context")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}
		userID, _ := rawUID.(string)

		storeID, err := primitive.ObjectIDFromHex(c.Param("storeId"))
		if err != nil {
			m.trace.ApplyTraceAttributes(span, core.TraceStoreOwnerMeta{
				UserID: userID,
				Status: "invalid_store_id",
			})
			cause := cErr.ValidatePathParamsErr("storeId is not a valid ObjectID")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}

		// 以 {_id, userId} 同時查詢；查不到再回頭區分 404 / 405
		store, err := m.storeRepository.GetByIDAndUser(ctx, storeID, userID)
		if err != nil {
			var cause error
			status := "store_lookup_failed"
			switch {
			case errors.Is(err, mongo.ErrNoDocuments):
				if _, getErr := m.storeRepository.GetByID(ctx, storeID); getErr == nil {
					status = "not_owner"
					cause = cErr.NotStoreOwner("store does not belong to this user")
				} else {
					status = "store_not_found"
					cause = cErr.NotFound("store not found")
				}
			default:
				cause = cErr.DatabaseError(err.Error())
			}
			m.trace.ApplyTraceAttributes(span, core.TraceStoreOwnerMeta{
				StoreID: storeID.Hex(),
				UserID:  userID,
				Status:  status,
			})
			response.AbortWithError(c, cause)
			end(cause)
			return
		}

		m.trace.ApplyTraceAttributes(span, core.TraceStoreOwnerMeta{
			StoreID: storeID.Hex(),
			UserID:  userID,
			Status:  "ok",
		})
		c.Set(core.ContextStoreKey, store)
		end(nil)
		c.Next()
	}
}
