package handler

import (
	"backoffice/internal/dto"
	"backoffice/internal/pkg/response"
	"backoffice/internal/service"
	"backoffice/internal/telemetry"
	"backoffice/utils/validate"

	"github.com/gin-gonic/gin"
)

type BatchHandler struct {
	trace         *telemetry.Trace
	batchService *service.BatchService
}

func NewBatchHandler(trace *telemetry.Trace, batchService *service.BatchService) *BatchHandler {
	return &BatchHandler{trace: trace, batchService: batchService}
}

// Create 登錄批號
// @Summary 登錄產品批號，店內唯一
// @Tags Batch
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param storeId path string true "Store ID"
// @Param body body dto.CreateBatchDto true "批號資訊"
// @Success 201 {object} model.Batch
// @Failure 400 {object} map[string]string
// @Router /api/stores/{storeId}/batches [post]
func (h *BatchHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	var req dto.CreateBatchDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	batch, err := h.batchService.CreateBatch(ctx, store, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, batch)
}

// List 批號列表
// @Summary 批號列表
// @Tags Batch
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Success 200 {array} model.Batch
// @Router /api/stores/{storeId}/batches [get]
func (h *BatchHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	batches, err := h.batchService.ListBatches(ctx, store.ID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, batches)
}

// Get 取得批號
// @Summary 取得單一批號
// @Tags Batch
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Param batchId path string true "Batch ID"
// @Success 200 {object} model.Batch
// @Failure 404 {object} map[string]string
// @Router /api/stores/{storeId}/batches/{batchId} [get]
func (h *BatchHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	batchID, cause, respErr := validate.ParseObjectID(c, "batchId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	batch, err := h.batchService.GetBatch(ctx, store, batchID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, batch)
}

// Update 更新批號
// @Summary 更新批號
// @Tags Batch
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param storeId path string true "Store ID"
// @Param batchId path string true "Batch ID"
// @Param body body dto.UpdateBatchDto true "批號資訊"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/stores/{storeId}/batches/{batchId} [patch]
func (h *BatchHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	batchID, cause, respErr := validate.ParseObjectID(c, "batchId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	var req dto.UpdateBatchDto
	if cause, respErr = validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if err = h.batchService.UpdateBatch(ctx, store, batchID, &req); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "batch updated"})
}

// Delete 刪除批號
// @Summary 刪除批號
// @Tags Batch
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Param batchId path string true "Batch ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/stores/{storeId}/batches/{batchId} [delete]
func (h *BatchHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	batchID, cause, respErr := validate.ParseObjectID(c, "batchId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if err = h.batchService.DeleteBatch(ctx, store, batchID); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "batch deleted"})
}
