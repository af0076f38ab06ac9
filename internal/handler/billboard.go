package handler

import (
	"backoffice/internal/dto"
	"backoffice/internal/pkg/response"
	"backoffice/internal/service"
	"backoffice/internal/telemetry"
	"backoffice/utils/validate"

	"github.com/gin-gonic/gin"
)

type BillboardHandler struct {
	trace            *telemetry.Trace
	billboardService *service.BillboardService
}

func NewBillboardHandler(trace *telemetry.Trace, billboardService *service.BillboardService) *BillboardHandler {
	return &BillboardHandler{trace: trace, billboardService: billboardService}
}

// Create 建立看板
// @Summary 建立看板
// @Tags Billboard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param storeId path string true "Store ID"
// @Param body body dto.CreateBillboardDto true "看板資訊"
// @Success 201 {object} model.Billboard
// @Failure 400 {object} map[string]string
// @Router /api/stores/{storeId}/billboards [post]
func (h *BillboardHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	var req dto.CreateBillboardDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	billboard, err := h.billboardService.CreateBillboard(ctx, store, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, billboard)
}

// List 看板列表
// @Summary 看板列表
// @Tags Billboard
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Success 200 {array} model.Billboard
// @Router /api/stores/{storeId}/billboards [get]
func (h *BillboardHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	billboards, err := h.billboardService.ListBillboards(ctx, store.ID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, billboards)
}

// Get 取得看板
// @Summary 取得單一看板
// @Tags Billboard
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Param billboardId path string true "Billboard ID"
// @Success 200 {object} model.Billboard
// @Failure 404 {object} map[string]string
// @Router /api/stores/{storeId}/billboards/{billboardId} [get]
func (h *BillboardHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	billboardID, cause, respErr := validate.ParseObjectID(c, "billboardId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	billboard, err := h.billboardService.GetBillboard(ctx, store, billboardID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, billboard)
}

// Update 更新看板
// @Summary 更新看板
// @Tags Billboard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param storeId path string true "Store ID"
// @Param billboardId path string true "Billboard ID"
// @Param body body dto.UpdateBillboardDto true "看板資訊"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/stores/{storeId}/billboards/{billboardId} [patch]
func (h *BillboardHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	billboardID, cause, respErr := validate.ParseObjectID(c, "billboardId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	var req dto.UpdateBillboardDto
	if cause, respErr = validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if err = h.billboardService.UpdateBillboard(ctx, store, billboardID, &req); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "billboard updated"})
}

// Delete 刪除看板
// @Summary 刪除看板；仍被分類引用時依設定擋下或自動解除掛載
// @Tags Billboard
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Param billboardId path string true "Billboard ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/stores/{storeId}/billboards/{billboardId} [delete]
func (h *BillboardHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	billboardID, cause, respErr := validate.ParseObjectID(c, "billboardId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if err = h.billboardService.DeleteBillboard(ctx, store, billboardID); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "billboard deleted"})
}
