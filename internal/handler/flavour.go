package handler

import (
	"backoffice/internal/dto"
	"backoffice/internal/pkg/response"
	"backoffice/internal/service"
	"backoffice/internal/telemetry"
	"backoffice/utils/validate"

	"github.com/gin-gonic/gin"
)

type FlavourHandler struct {
	trace            *telemetry.Trace
	flavourService *service.FlavourService
}

func NewFlavourHandler(trace *telemetry.Trace, flavourService *service.FlavourService) *FlavourHandler {
	return &FlavourHandler{trace: trace, flavourService: flavourService}
}

// Create 建立口味
// @Summary 建立口味
// @Tags Flavour
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param storeId path string true "Store ID"
// @Param body body dto.CreateFlavourDto true "口味資訊"
// @Success 201 {object} model.Flavour
// @Failure 400 {object} map[string]string
// @Router /api/stores/{storeId}/flavours [post]
func (h *FlavourHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	var req dto.CreateFlavourDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	flavour, err := h.flavourService.CreateFlavour(ctx, store, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, flavour)
}

// List 口味列表
// @Summary 口味列表
// @Tags Flavour
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Success 200 {array} model.Flavour
// @Router /api/stores/{storeId}/flavours [get]
func (h *FlavourHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	flavours, err := h.flavourService.ListFlavours(ctx, store.ID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, flavours)
}

// Get 取得口味
// @Summary 取得單一口味
// @Tags Flavour
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Param flavourId path string true "Flavour ID"
// @Success 200 {object} model.Flavour
// @Failure 404 {object} map[string]string
// @Router /api/stores/{storeId}/flavours/{flavourId} [get]
func (h *FlavourHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	flavourID, cause, respErr := validate.ParseObjectID(c, "flavourId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	flavour, err := h.flavourService.GetFlavour(ctx, store, flavourID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, flavour)
}

// Update 更新口味
// @Summary 更新口味
// @Tags Flavour
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param storeId path string true "Store ID"
// @Param flavourId path string true "Flavour ID"
// @Param body body dto.UpdateFlavourDto true "口味資訊"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/stores/{storeId}/flavours/{flavourId} [patch]
func (h *FlavourHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	flavourID, cause, respErr := validate.ParseObjectID(c, "flavourId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	var req dto.UpdateFlavourDto
	if cause, respErr = validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if err = h.flavourService.UpdateFlavour(ctx, store, flavourID, &req); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "flavour updated"})
}

// Delete 刪除口味
// @Summary 刪除口味；仍被商品或組合引用時擋下
// @Tags Flavour
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Param flavourId path string true "Flavour ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/stores/{storeId}/flavours/{flavourId} [delete]
func (h *FlavourHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	flavourID, cause, respErr := validate.ParseObjectID(c, "flavourId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if err = h.flavourService.DeleteFlavour(ctx, store, flavourID); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "flavour deleted"})
}
