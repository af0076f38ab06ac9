package handler

import (
	"backoffice/internal/dto"
	"backoffice/internal/pkg/response"
	"backoffice/internal/service"
	"backoffice/internal/telemetry"
	"backoffice/utils/validate"

	"github.com/gin-gonic/gin"
)

type SizeHandler struct {
	trace            *telemetry.Trace
	sizeService *service.SizeService
}

func NewSizeHandler(trace *telemetry.Trace, sizeService *service.SizeService) *SizeHandler {
	return &SizeHandler{trace: trace, sizeService: sizeService}
}

// Create 建立規格
// @Summary 建立規格
// @Tags Size
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param storeId path string true "Store ID"
// @Param body body dto.CreateSizeDto true "規格資訊"
// @Success 201 {object} model.Size
// @Failure 400 {object} map[string]string
// @Router /api/stores/{storeId}/sizes [post]
func (h *SizeHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	var req dto.CreateSizeDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	size, err := h.sizeService.CreateSize(ctx, store, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, size)
}

// List 規格列表
// @Summary 規格列表
// @Tags Size
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Success 200 {array} model.Size
// @Router /api/stores/{storeId}/sizes [get]
func (h *SizeHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	sizes, err := h.sizeService.ListSizes(ctx, store.ID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, sizes)
}

// Get 取得規格
// @Summary 取得單一規格
// @Tags Size
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Param sizeId path string true "Size ID"
// @Success 200 {object} model.Size
// @Failure 404 {object} map[string]string
// @Router /api/stores/{storeId}/sizes/{sizeId} [get]
func (h *SizeHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	sizeID, cause, respErr := validate.ParseObjectID(c, "sizeId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	size, err := h.sizeService.GetSize(ctx, store, sizeID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, size)
}

// Update 更新規格
// @Summary 更新規格
// @Tags Size
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param storeId path string true "Store ID"
// @Param sizeId path string true "Size ID"
// @Param body body dto.UpdateSizeDto true "規格資訊"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/stores/{storeId}/sizes/{sizeId} [patch]
func (h *SizeHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	sizeID, cause, respErr := validate.ParseObjectID(c, "sizeId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	var req dto.UpdateSizeDto
	if cause, respErr = validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if err = h.sizeService.UpdateSize(ctx, store, sizeID, &req); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "size updated"})
}

// Delete 刪除規格
// @Summary 刪除規格；仍被商品或組合引用時擋下
// @Tags Size
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Param sizeId path string true "Size ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/stores/{storeId}/sizes/{sizeId} [delete]
func (h *SizeHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	sizeID, cause, respErr := validate.ParseObjectID(c, "sizeId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if err = h.sizeService.DeleteSize(ctx, store, sizeID); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "size deleted"})
}
