package handler

import (
	"backoffice/internal/pkg/response"
	"backoffice/internal/service"
	"backoffice/internal/telemetry"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	trace            *telemetry.Trace
	analyticsService *service.AnalyticsService
}

func NewAnalyticsHandler(trace *telemetry.Trace, analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{trace: trace, analyticsService: analyticsService}
}

// Get 營運總覽
// @Summary 營收、銷量、庫存與近 12 個月營收圖
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Success 200 {object} dto.AnalyticsResponseDto
// @Router /api/stores/{storeId}/analytics [get]
func (h *AnalyticsHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	analytics, err := h.analyticsService.GetAnalytics(ctx, store)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, analytics)
}
