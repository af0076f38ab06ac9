package handler

import (
	"backoffice/internal/dto"
	"backoffice/internal/pkg/response"
	"backoffice/internal/service"
	"backoffice/internal/telemetry"
	"backoffice/utils/validate"

	"github.com/gin-gonic/gin"
)

type SeoHandler struct {
	trace         *telemetry.Trace
	seoService *service.SeoService
}

func NewSeoHandler(trace *telemetry.Trace, seoService *service.SeoService) *SeoHandler {
	return &SeoHandler{trace: trace, seoService: seoService}
}

// Create 建立 SEO 設定
// @Summary 建立頁面 SEO 設定
// @Tags Seo
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param storeId path string true "Store ID"
// @Param body body dto.CreateSeoDto true "SEO 設定"
// @Success 201 {object} model.SeoMetadata
// @Failure 400 {object} map[string]string
// @Router /api/stores/{storeId}/seo [post]
func (h *SeoHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	var req dto.CreateSeoDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	seo, err := h.seoService.CreateSeo(ctx, store, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, seo)
}

// List SEO 設定列表
// @Summary SEO 設定列表，可依 url 過濾
// @Param url query string false "頁面路徑"
// @Tags Seo
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Success 200 {array} model.SeoMetadata
// @Router /api/stores/{storeId}/seo [get]
func (h *SeoHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	entries, err := h.seoService.ListSeo(ctx, store.ID, c.Query("url"))
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, entries)
}

// Get 取得 SEO 設定
// @Summary 取得單一 SEO 設定
// @Tags Seo
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Param seoId path string true "Seo ID"
// @Success 200 {object} model.SeoMetadata
// @Failure 404 {object} map[string]string
// @Router /api/stores/{storeId}/seo/{seoId} [get]
func (h *SeoHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	seoID, cause, respErr := validate.ParseObjectID(c, "seoId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	seo, err := h.seoService.GetSeo(ctx, store, seoID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, seo)
}

// Update 更新 SEO 設定
// @Summary 更新 SEO 設定
// @Tags Seo
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param storeId path string true "Store ID"
// @Param seoId path string true "Seo ID"
// @Param body body dto.UpdateSeoDto true "SEO 設定"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/stores/{storeId}/seo/{seoId} [patch]
func (h *SeoHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	seoID, cause, respErr := validate.ParseObjectID(c, "seoId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	var req dto.UpdateSeoDto
	if cause, respErr = validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if err = h.seoService.UpdateSeo(ctx, store, seoID, &req); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "seo metadata updated"})
}

// Delete 刪除 SEO 設定
// @Summary 刪除 SEO 設定
// @Tags Seo
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Param seoId path string true "Seo ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/stores/{storeId}/seo/{seoId} [delete]
func (h *SeoHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	seoID, cause, respErr := validate.ParseObjectID(c, "seoId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if err = h.seoService.DeleteSeo(ctx, store, seoID); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "seo metadata deleted"})
}
