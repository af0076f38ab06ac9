package handler

import (
	"backoffice/internal/pkg/response"
	"backoffice/internal/service"
	"backoffice/internal/telemetry"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	trace         *telemetry.Trace
	uploadService *service.UploadService
}

func NewUploadHandler(trace *telemetry.Trace, uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{trace: trace, uploadService: uploadService}
}

// Sign 簽發直傳簽名
// @Summary 簽發 CDN 直傳參數，前端自行上傳圖片
// @Tags Upload
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.SignUploadResponseDto
// @Failure 503 {object} map[string]string
// @Router /api/uploads/sign [post]
func (h *UploadHandler) Sign(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	signature, err := h.uploadService.SignUpload(ctx)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, signature)
}
