package handler

import (
	"backoffice/internal/dto"
	"backoffice/internal/pkg/response"
	"backoffice/internal/service"
	"backoffice/internal/telemetry"
	"backoffice/utils/validate"

	"github.com/gin-gonic/gin"
)

type StoreHandler struct {
	trace        *telemetry.Trace
	storeService *service.StoreService
}

func NewStoreHandler(trace *telemetry.Trace, storeService *service.StoreService) *StoreHandler {
	return &StoreHandler{trace: trace, storeService: storeService}
}

// Create 建立商店
// @Summary 建立商店
// @Tags Store
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateStoreDto true "商店資訊"
// @Success 201 {object} model.Store
// @Failure 400 {object} map[string]string
// @Router /api/stores [post]
func (h *StoreHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	userID, err := userIDFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	var req dto.CreateStoreDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	store, err := h.storeService.CreateStore(ctx, userID, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, store)
}

// List 取得自己的商店列表
// @Summary 商店列表
// @Tags Store
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.Store
// @Router /api/stores [get]
func (h *StoreHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	userID, err := userIDFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	stores, err := h.storeService.ListStores(ctx, userID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, stores)
}

// Get 取得商店
// @Summary 取得單一商店
// @Tags Store
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Success 200 {object} model.Store
// @Failure 404 {object} map[string]string
// @Router /api/stores/{storeId} [get]
func (h *StoreHandler) Get(c *gin.Context) {
	_, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, store)
}

// Update 更新商店
// @Summary 更新商店
// @Tags Store
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param storeId path string true "Store ID"
// @Param body body dto.UpdateStoreDto true "商店資訊"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/stores/{storeId} [patch]
func (h *StoreHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	var req dto.UpdateStoreDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if err = h.storeService.UpdateStore(ctx, store, &req); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "store updated"})
}

// Delete 刪除商店
// @Summary 刪除商店
// @Tags Store
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/stores/{storeId} [delete]
func (h *StoreHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	if err = h.storeService.DeleteStore(ctx, store); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "store deleted"})
}
