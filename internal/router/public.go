package router

import (
	"backoffice/internal/handler"
	"backoffice/internal/middleware"

	"github.com/gin-gonic/gin"
)

// PublicRouter storefront 端的公開路由：不需登入，但吃固定視窗限流。
type PublicRouter struct {
	storefrontHandler *handler.StorefrontHandler
	checkoutHandler   *handler.CheckoutHandler
	webhookHandler    *handler.WebhookHandler

	rateLimitMiddleware *middleware.RateLimit
}

func NewPublicRouter(
	storefrontHandler *handler.StorefrontHandler,
	checkoutHandler *handler.CheckoutHandler,
	webhookHandler *handler.WebhookHandler,
	rateLimitMiddleware *middleware.RateLimit,
) *PublicRouter {
	return &PublicRouter{
		storefrontHandler:   storefrontHandler,
		checkoutHandler:     checkoutHandler,
		webhookHandler:      webhookHandler,
		rateLimitMiddleware: rateLimitMiddleware,
	}
}

func (pr *PublicRouter) RegisterRoutes(r *gin.Engine) {
	public := r.Group("/public/:storeId")
	public.Use(pr.rateLimitMiddleware.Guard())
	{
		public.GET("/billboards", pr.storefrontHandler.ListBillboards)
		public.GET("/categories", pr.storefrontHandler.ListCategories)
		public.GET("/sizes", pr.storefrontHandler.ListSizes)
		public.GET("/flavours", pr.storefrontHandler.ListFlavours)
		public.GET("/products", pr.storefrontHandler.ListProducts)
		public.GET("/products/:slug", pr.storefrontHandler.GetProductBySlug)
		public.GET("/combos", pr.storefrontHandler.ListCombos)
		public.GET("/combos/:slug", pr.storefrontHandler.GetComboBySlug)
		public.POST("/feedbacks", pr.storefrontHandler.CreateFeedback)
		public.GET("/batches/:batchId", pr.storefrontHandler.LookupBatch)
		public.POST("/checkout", pr.checkoutHandler.Checkout)
	}

	// 金流回呼：簽章驗證在 handler 內，不吃限流
	r.POST("/webhook", pr.webhookHandler.Handle)
}
