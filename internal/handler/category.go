package handler

import (
	"backoffice/internal/dto"
	"backoffice/internal/pkg/response"
	"backoffice/internal/service"
	"backoffice/internal/telemetry"
	"backoffice/utils/validate"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	trace            *telemetry.Trace
	categoryService *service.CategoryService
}

func NewCategoryHandler(trace *telemetry.Trace, categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{trace: trace, categoryService: categoryService}
}

// Create 建立分類
// @Summary 建立分類
// @Tags Category
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param storeId path string true "Store ID"
// @Param body body dto.CreateCategoryDto true "分類資訊"
// @Success 201 {object} model.Category
// @Failure 400 {object} map[string]string
// @Router /api/stores/{storeId}/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	var req dto.CreateCategoryDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	category, err := h.categoryService.CreateCategory(ctx, store, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, category)
}

// List 分類列表
// @Summary 分類列表
// @Tags Category
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Success 200 {array} model.Category
// @Router /api/stores/{storeId}/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	categories, err := h.categoryService.ListCategories(ctx, store.ID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, categories)
}

// Get 取得分類
// @Summary 取得單一分類
// @Tags Category
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Param categoryId path string true "Category ID"
// @Success 200 {object} model.Category
// @Failure 404 {object} map[string]string
// @Router /api/stores/{storeId}/categories/{categoryId} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	categoryID, cause, respErr := validate.ParseObjectID(c, "categoryId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	category, err := h.categoryService.GetCategory(ctx, store, categoryID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, category)
}

// Update 更新分類
// @Summary 更新分類
// @Tags Category
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param storeId path string true "Store ID"
// @Param categoryId path string true "Category ID"
// @Param body body dto.UpdateCategoryDto true "分類資訊"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/stores/{storeId}/categories/{categoryId} [patch]
func (h *CategoryHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	categoryID, cause, respErr := validate.ParseObjectID(c, "categoryId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	var req dto.UpdateCategoryDto
	if cause, respErr = validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if err = h.categoryService.UpdateCategory(ctx, store, categoryID, &req); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "category updated"})
}

// Delete 刪除分類
// @Summary 刪除分類；底下仍掛商品或組合時擋下
// @Tags Category
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Param categoryId path string true "Category ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/stores/{storeId}/categories/{categoryId} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	categoryID, cause, respErr := validate.ParseObjectID(c, "categoryId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if err = h.categoryService.DeleteCategory(ctx, store, categoryID); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "category deleted"})
}
