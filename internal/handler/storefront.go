package handler

import (
	"backoffice/internal/dto"
	"backoffice/internal/pkg/response"
	"backoffice/internal/service"
	"backoffice/internal/telemetry"
	"backoffice/utils/validate"

	"github.com/gin-gonic/gin"
)

// StorefrontHandler 公開商店櫥窗端點；一律排除封存品，不需登入
type StorefrontHandler struct {
	trace            *telemetry.Trace
	billboardService *service.BillboardService
	categoryService  *service.CategoryService
	sizeService      *service.SizeService
	flavourService   *service.FlavourService
	productService   *service.ProductService
	comboService     *service.ComboService
	feedbackService  *service.FeedbackService
	batchService     *service.BatchService
}

func NewStorefrontHandler(
	trace *telemetry.Trace,
	billboardService *service.BillboardService,
	categoryService *service.CategoryService,
	sizeService *service.SizeService,
	flavourService *service.FlavourService,
	productService *service.ProductService,
	comboService *service.ComboService,
	feedbackService *service.FeedbackService,
	batchService *service.BatchService,
) *StorefrontHandler {
	return &StorefrontHandler{
		trace:            trace,
		billboardService: billboardService,
		categoryService:  categoryService,
		sizeService:      sizeService,
		flavourService:   flavourService,
		productService:   productService,
		comboService:     comboService,
		feedbackService:  feedbackService,
		batchService:     batchService,
	}
}

// ListProducts 公開商品列表
// @Summary 櫥窗商品列表，可依分類、口味、規格、精選過濾
// @Tags Storefront
// @Produce json
// @Param storeId path string true "Store ID"
// @Param categoryId query string false "分類 ID"
// @Param flavourId query string false "口味 ID"
// @Param sizeId query string false "規格 ID"
// @Param isFeatured query bool false "只看精選"
// @Success 200 {array} model.Product
// @Router /public/{storeId}/products [get]
func (h *StorefrontHandler) ListProducts(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	storeID, cause, respErr := validate.ParseObjectID(c, "storeId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	listOptions, err := productListOptions(c, storeID, true)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	products, err := h.productService.ListProducts(ctx, listOptions)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, products)
}

// GetProductBySlug 以 slug 取得公開商品
// @Summary 以 slug 取得櫥窗商品
// @Tags Storefront
// @Produce json
// @Param storeId path string true "Store ID"
// @Param slug path string true "商品 slug"
// @Success 200 {object} model.Product
// @Failure 404 {object} map[string]string
// @Router /public/{storeId}/products/{slug} [get]
func (h *StorefrontHandler) GetProductBySlug(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	storeID, cause, respErr := validate.ParseObjectID(c, "storeId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	product, err := h.productService.GetProductBySlug(ctx, storeID, c.Param("slug"))
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, product)
}

// ListCombos 公開組合商品列表
// @Summary 櫥窗組合商品列表
// @Tags Storefront
// @Produce json
// @Param storeId path string true "Store ID"
// @Param categoryId query string false "分類 ID"
// @Param isFeatured query bool false "只看精選"
// @Success 200 {array} model.Combo
// @Router /public/{storeId}/combos [get]
func (h *StorefrontHandler) ListCombos(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	storeID, cause, respErr := validate.ParseObjectID(c, "storeId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	listOptions, err := comboListOptions(c, storeID, true)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	combos, err := h.comboService.ListCombos(ctx, listOptions)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, combos)
}

// GetComboBySlug 以 slug 取得公開組合商品
// @Summary 以 slug 取得櫥窗組合商品
// @Tags Storefront
// @Produce json
// @Param storeId path string true "Store ID"
// @Param slug path string true "組合商品 slug"
// @Success 200 {object} model.Combo
// @Failure 404 {object} map[string]string
// @Router /public/{storeId}/combos/{slug} [get]
func (h *StorefrontHandler) GetComboBySlug(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	storeID, cause, respErr := validate.ParseObjectID(c, "storeId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	combo, err := h.comboService.GetComboBySlug(ctx, storeID, c.Param("slug"))
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, combo)
}

// ListBillboards 公開看板列表
// @Summary 櫥窗看板列表
// @Tags Storefront
// @Produce json
// @Param storeId path string true "Store ID"
// @Success 200 {array} model.Billboard
// @Router /public/{storeId}/billboards [get]
func (h *StorefrontHandler) ListBillboards(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	storeID, cause, respErr := validate.ParseObjectID(c, "storeId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	billboards, err := h.billboardService.ListBillboards(ctx, storeID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, billboards)
}

// ListCategories 公開分類列表
// @Summary 櫥窗分類列表
// @Tags Storefront
// @Produce json
// @Param storeId path string true "Store ID"
// @Success 200 {array} model.Category
// @Router /public/{storeId}/categories [get]
func (h *StorefrontHandler) ListCategories(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	storeID, cause, respErr := validate.ParseObjectID(c, "storeId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	categories, err := h.categoryService.ListCategories(ctx, storeID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, categories)
}

// ListSizes 公開規格列表
// @Summary 櫥窗規格列表
// @Tags Storefront
// @Produce json
// @Param storeId path string true "Store ID"
// @Success 200 {array} model.Size
// @Router /public/{storeId}/sizes [get]
func (h *StorefrontHandler) ListSizes(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	storeID, cause, respErr := validate.ParseObjectID(c, "storeId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	sizes, err := h.sizeService.ListSizes(ctx, storeID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, sizes)
}

// ListFlavours 公開口味列表
// @Summary 櫥窗口味列表
// @Tags Storefront
// @Produce json
// @Param storeId path string true "Store ID"
// @Success 200 {array} model.Flavour
// @Router /public/{storeId}/flavours [get]
func (h *StorefrontHandler) ListFlavours(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	storeID, cause, respErr := validate.ParseObjectID(c, "storeId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	flavours, err := h.flavourService.ListFlavours(ctx, storeID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, flavours)
}

// CreateFeedback 公開建立評價
// @Summary 對商品或組合留下評價，審核通過前不公開
// @Tags Storefront
// @Accept json
// @Produce json
// @Param storeId path string true "Store ID"
// @Param body body dto.CreateFeedbackDto true "評價內容"
// @Success 201 {object} model.Feedback
// @Failure 400 {object} map[string]string
// @Router /public/{storeId}/feedbacks [post]
func (h *StorefrontHandler) CreateFeedback(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	storeID, cause, respErr := validate.ParseObjectID(c, "storeId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	var req dto.CreateFeedbackDto
	if cause, respErr = validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	feedback, err := h.feedbackService.CreateFeedback(ctx, storeID, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, feedback)
}

// LookupBatch 公開批號查驗
// @Summary 以批號字串查驗產品真偽
// @Tags Storefront
// @Produce json
// @Param storeId path string true "Store ID"
// @Param batchId path string true "批號"
// @Success 200 {object} model.Batch
// @Failure 404 {object} map[string]string
// @Router /public/{storeId}/batches/{batchId} [get]
func (h *StorefrontHandler) LookupBatch(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	storeID, cause, respErr := validate.ParseObjectID(c, "storeId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	batch, err := h.batchService.LookupBatch(ctx, storeID, c.Param("batchId"))
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, batch)
}
