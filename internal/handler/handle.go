package handler

import (
	"backoffice/internal/core"
	"backoffice/internal/database/mongodb/model"
	cErr "backoffice/internal/pkg/error"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
)

// ProviderSet Provider对象集合
var ProviderSet = wire.NewSet(
	NewStoreHandler,
	NewBillboardHandler,
	NewCategoryHandler,
	NewSizeHandler,
	NewFlavourHandler,
	NewProductHandler,
	NewComboHandler,
	NewFeedbackHandler,
	NewCouponHandler,
	NewOrderHandler,
	NewCheckoutHandler,
	NewWebhookHandler,
	NewAnalyticsHandler,
	NewSeoHandler,
	NewBlogHandler,
	NewBatchHandler,
	NewUploadHandler,
	NewStorefrontHandler,
	NewHealthHandler,
)

// storeFrom 取出 ownership middleware 放進 context 的 store
func storeFrom(c *gin.Context) (*model.Store, error) {
	value, exists := c.Get(core.ContextStoreKey)
	if !exists {
		return nil, cErr.InternalServer("store missing from request context")
	}
	store, ok := value.(*model.Store)
	if !ok {
		return nil, cErr.InternalServer("store missing from request context")
	}
	return store, nil
}

func parseQueryErr(key string) error {
	return cErr.ValidateErr("invalid query parameter " + key)
}

func userIDFrom(c *gin.Context) (string, error) {
	value, exists := c.Get(core.ContextUserIDKey)
	if !exists {
		return "", cErr.Unauthenticated("missing identity")
	}
	userID, ok := value.(string)
	if !ok || userID == "" {
		return "", cErr.Unauthenticated("missing identity")
	}
	return userID, nil
}
