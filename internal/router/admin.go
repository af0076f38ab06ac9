package router

import (
	"backoffice/internal/handler"
	"backoffice/internal/middleware"

	"github.com/gin-gonic/gin"
)

// AdminRouter 後台管理入口：/api 底下全部要求身分驗證，
// /api/stores/:storeId 底下再加一層 store 擁有權檢查。
type AdminRouter struct {
	storeHandler     *handler.StoreHandler
	billboardHandler *handler.BillboardHandler
	categoryHandler  *handler.CategoryHandler
	sizeHandler      *handler.SizeHandler
	flavourHandler   *handler.FlavourHandler
	productHandler   *handler.ProductHandler
	comboHandler     *handler.ComboHandler
	feedbackHandler  *handler.FeedbackHandler
	couponHandler    *handler.CouponHandler
	orderHandler     *handler.OrderHandler
	analyticsHandler *handler.AnalyticsHandler
	seoHandler       *handler.SeoHandler
	blogHandler      *handler.BlogHandler
	batchHandler     *handler.BatchHandler
	uploadHandler    *handler.UploadHandler

	identityMiddleware   *middleware.Identity
	storeOwnerMiddleware *middleware.StoreOwner
}

func NewAdminRouter(
	storeHandler *handler.StoreHandler,
	billboardHandler *handler.BillboardHandler,
	categoryHandler *handler.CategoryHandler,
	sizeHandler *handler.SizeHandler,
	flavourHandler *handler.FlavourHandler,
	productHandler *handler.ProductHandler,
	comboHandler *handler.ComboHandler,
	feedbackHandler *handler.FeedbackHandler,
	couponHandler *handler.CouponHandler,
	orderHandler *handler.OrderHandler,
	analyticsHandler *handler.AnalyticsHandler,
	seoHandler *handler.SeoHandler,
	blogHandler *handler.BlogHandler,
	batchHandler *handler.BatchHandler,
	uploadHandler *handler.UploadHandler,
	identityMiddleware *middleware.Identity,
	storeOwnerMiddleware *middleware.StoreOwner,
) *AdminRouter {
	return &AdminRouter{
		storeHandler:         storeHandler,
		billboardHandler:     billboardHandler,
		categoryHandler:      categoryHandler,
		sizeHandler:          sizeHandler,
		flavourHandler:       flavourHandler,
		productHandler:       productHandler,
		comboHandler:         comboHandler,
		feedbackHandler:      feedbackHandler,
		couponHandler:        couponHandler,
		orderHandler:         orderHandler,
		analyticsHandler:     analyticsHandler,
		seoHandler:           seoHandler,
		blogHandler:          blogHandler,
		batchHandler:         batchHandler,
		uploadHandler:        uploadHandler,
		identityMiddleware:   identityMiddleware,
		storeOwnerMiddleware: storeOwnerMiddleware,
	}
}

func (ar *AdminRouter) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	api.Use(ar.identityMiddleware.Handler())

	api.POST("/uploads/sign", ar.uploadHandler.Sign)

	stores := api.Group("/stores")
	{
		stores.POST("", ar.storeHandler.Create)
		stores.GET("", ar.storeHandler.List)
	}

	// :storeId 底下全部要求擁有權
	store := stores.Group("/:storeId")
	store.Use(ar.storeOwnerMiddleware.Handler())
	{
		store.GET("", ar.storeHandler.Get)
		store.PATCH("", ar.storeHandler.Update)
		store.DELETE("", ar.storeHandler.Delete)

		store.GET("/analytics", ar.analyticsHandler.Get)

		billboards := store.Group("/billboards")
		{
			billboards.POST("", ar.billboardHandler.Create)
			billboards.GET("", ar.billboardHandler.List)
			billboards.GET("/:billboardId", ar.billboardHandler.Get)
			billboards.PATCH("/:billboardId", ar.billboardHandler.Update)
			billboards.DELETE("/:billboardId", ar.billboardHandler.Delete)
		}

		categories := store.Group("/categories")
		{
			categories.POST("", ar.categoryHandler.Create)
			categories.GET("", ar.categoryHandler.List)
			categories.GET("/:categoryId", ar.categoryHandler.Get)
			categories.PATCH("/:categoryId", ar.categoryHandler.Update)
			categories.DELETE("/:categoryId", ar.categoryHandler.Delete)
		}

		sizes := store.Group("/sizes")
		{
			sizes.POST("", ar.sizeHandler.Create)
			sizes.GET("", ar.sizeHandler.List)
			sizes.GET("/:sizeId", ar.sizeHandler.Get)
			sizes.PATCH("/:sizeId", ar.sizeHandler.Update)
			sizes.DELETE("/:sizeId", ar.sizeHandler.Delete)
		}

		flavours := store.Group("/flavours")
		{
			flavours.POST("", ar.flavourHandler.Create)
			flavours.GET("", ar.flavourHandler.List)
			flavours.GET("/:flavourId", ar.flavourHandler.Get)
			flavours.PATCH("/:flavourId", ar.flavourHandler.Update)
			flavours.DELETE("/:flavourId", ar.flavourHandler.Delete)
		}

		products := store.Group("/products")
		{
			products.POST("", ar.productHandler.Create)
			products.GET("", ar.productHandler.List)
			products.GET("/:productId", ar.productHandler.Get)
			products.PATCH("/:productId", ar.productHandler.Update)
			products.DELETE("/:productId", ar.productHandler.Delete)
		}

		combos := store.Group("/combos")
		{
			combos.POST("", ar.comboHandler.Create)
			combos.GET("", ar.comboHandler.List)
			combos.GET("/:comboId", ar.comboHandler.Get)
			combos.PATCH("/:comboId", ar.comboHandler.Update)
			combos.DELETE("/:comboId", ar.comboHandler.Delete)
		}

		feedbacks := store.Group("/feedbacks")
		{
			feedbacks.GET("", ar.feedbackHandler.List)
			feedbacks.PATCH("/:feedbackId", ar.feedbackHandler.Moderate)
			feedbacks.DELETE("/:feedbackId", ar.feedbackHandler.Delete)
		}

		coupons := store.Group("/coupons")
		{
			coupons.POST("", ar.couponHandler.Create)
			coupons.GET("", ar.couponHandler.List)
			coupons.GET("/:couponId", ar.couponHandler.Get)
			coupons.PATCH("/:couponId", ar.couponHandler.Update)
			coupons.DELETE("/:couponId", ar.couponHandler.Delete)
		}

		orders := store.Group("/orders")
		{
			orders.GET("", ar.orderHandler.List)
			orders.GET("/:orderId", ar.orderHandler.Get)
		}

		seo := store.Group("/seo")
		{
			seo.POST("", ar.seoHandler.Create)
			seo.GET("", ar.seoHandler.List)
			seo.GET("/:seoId", ar.seoHandler.Get)
			seo.PATCH("/:seoId", ar.seoHandler.Update)
			seo.DELETE("/:seoId", ar.seoHandler.Delete)
		}

		blogs := store.Group("/blogs")
		{
			blogs.POST("", ar.blogHandler.Create)
			blogs.GET("", ar.blogHandler.List)
			blogs.GET("/:postId", ar.blogHandler.Get)
			blogs.PATCH("/:postId", ar.blogHandler.Update)
			blogs.DELETE("/:postId", ar.blogHandler.Delete)
		}

		batches := store.Group("/batches")
		{
			batches.POST("", ar.batchHandler.Create)
			batches.GET("", ar.batchHandler.List)
			batches.GET("/:batchId", ar.batchHandler.Get)
			batches.PATCH("/:batchId", ar.batchHandler.Update)
			batches.DELETE("/:batchId", ar.batchHandler.Delete)
		}
	}
}
