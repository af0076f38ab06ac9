package service

import (
	"github.com/google/wire"
)

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewStoreService,
	NewBillboardService,
	NewCategoryService,
	NewSizeService,
	NewFlavourService,
	NewProductService,
	NewComboService,
	NewFeedbackService,
	NewCouponService,
	NewOrderService,
	NewCheckoutService,
	NewAnalyticsService,
	NewSeoService,
	NewBlogService,
	NewBatchService,
	NewUploadService,
	NewReconcileService,
	NewHealthService,
	NewAuditService,
)
