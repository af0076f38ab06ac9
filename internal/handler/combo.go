package handler

import (
	"backoffice/internal/core"
	"backoffice/internal/dto"
	"backoffice/internal/pkg/response"
	"backoffice/internal/service"
	"backoffice/internal/telemetry"
	"backoffice/utils/validate"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ComboHandler struct {
	trace          *telemetry.Trace
	comboService *service.ComboService
}

func NewComboHandler(trace *telemetry.Trace, comboService *service.ComboService) *ComboHandler {
	return &ComboHandler{trace: trace, comboService: comboService}
}

// Create 建立組合商品
// @Summary 建立組合商品
// @Tags Combo
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param storeId path string true "Store ID"
// @Param body body dto.CreateComboDto true "組合商品資訊"
// @Success 201 {object} model.Combo
// @Failure 400 {object} map[string]string
// @Router /api/stores/{storeId}/combos [post]
func (h *ComboHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	var req dto.CreateComboDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	combo, err := h.comboService.CreateCombo(ctx, store, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, combo)
}

// List 組合商品列表
// @Summary 組合商品列表，可依分類、口味、規格、精選過濾
// @Tags Combo
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Param categoryId query string false "分類 ID"
// @Param flavourId query string false "口味 ID"
// @Param sizeId query string false "規格 ID"
// @Param isFeatured query bool false "只看精選"
// @Param isArchived query bool false "含封存"
// @Param page query int false "頁碼"
// @Param size query int false "每頁筆數"
// @Success 200 {array} model.Combo
// @Router /api/stores/{storeId}/combos [get]
func (h *ComboHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	listOptions, err := comboListOptions(c, store.ID, false)
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

// Get 取得組合商品
// @Summary 取得單一組合商品
// @Tags Combo
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Param comboId path string true "Combo ID"
// @Success 200 {object} model.Combo
// @Failure 404 {object} map[string]string
// @Router /api/stores/{storeId}/combos/{comboId} [get]
func (h *ComboHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	comboID, cause, respErr := validate.ParseObjectID(c, "comboId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	combo, err := h.comboService.GetCombo(ctx, store, comboID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, combo)
}

// Update 更新組合商品
// @Summary 更新組合商品；名稱變更會重算 slug
// @Tags Combo
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param storeId path string true "Store ID"
// @Param comboId path string true "Combo ID"
// @Param body body dto.UpdateComboDto true "組合商品資訊"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/stores/{storeId}/combos/{comboId} [patch]
func (h *ComboHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	comboID, cause, respErr := validate.ParseObjectID(c, "comboId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	var req dto.UpdateComboDto
	if cause, respErr = validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if err = h.comboService.UpdateCombo(ctx, store, comboID, &req); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "combo updated"})
}

// Delete 刪除組合商品
// @Summary 刪除組合商品，連同圖片、評價與所有反向參照
// @Tags Combo
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Param comboId path string true "Combo ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/stores/{storeId}/combos/{comboId} [delete]
func (h *ComboHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	comboID, cause, respErr := validate.ParseObjectID(c, "comboId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if err = h.comboService.DeleteCombo(ctx, store, comboID); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "combo deleted"})
}

// comboListOptions 組查詢條件；storefront 端強制排除封存品
func comboListOptions(c *gin.Context, storeID primitive.ObjectID, publicOnly bool) (core.ListOptions, error) {
	filter := bson.M{"storeId": storeID}

	if raw := c.Query("categoryId"); raw != "" {
		categoryID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return core.ListOptions{}, parseQueryErr("categoryId")
		}
		filter["categoryId"] = categoryID
	}
	if raw := c.Query("flavourId"); raw != "" {
		flavourID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return core.ListOptions{}, parseQueryErr("flavourId")
		}
		filter["flavourIds"] = flavourID
	}
	if raw := c.Query("sizeId"); raw != "" {
		sizeID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return core.ListOptions{}, parseQueryErr("sizeId")
		}
		filter["sizeIds"] = sizeID
	}
	if raw := c.Query("isFeatured"); raw == "true" {
		filter["isFeatured"] = true
	}
	if publicOnly {
		filter["isArchived"] = false
	} else if raw := c.Query("isArchived"); raw != "" {
		filter["isArchived"] = raw == "true"
	}

	page, err := validate.GetInt64Query(c, "page", 0)
	if err != nil {
		return core.ListOptions{}, parseQueryErr("page")
	}
	size, err := validate.GetInt64Query(c, "size", 20)
	if err != nil {
		return core.ListOptions{}, parseQueryErr("size")
	}
	return core.ListOptions{Filter: filter, Page: page, Size: size}, nil
}
