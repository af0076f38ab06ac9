package handler

import (
	"backoffice/internal/dto"
	"backoffice/internal/pkg/response"
	"backoffice/internal/service"
	"backoffice/internal/telemetry"
	"backoffice/utils/validate"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	trace           *telemetry.Trace
	feedbackService *service.FeedbackService
}

func NewFeedbackHandler(trace *telemetry.Trace, feedbackService *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{trace: trace, feedbackService: feedbackService}
}

// List 評價列表
// @Summary 評價列表，可依審核狀態過濾
// @Tags Feedback
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Param approved query bool false "審核狀態"
// @Success 200 {array} model.Feedback
// @Router /api/stores/{storeId}/feedbacks [get]
func (h *FeedbackHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	var approved *bool
	if raw := c.Query("approved"); raw != "" {
		value := raw == "true"
		approved = &value
	}
	feedbacks, err := h.feedbackService.ListFeedbacks(ctx, store, approved)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, feedbacks)
}

// Moderate 審核評價
// @Summary 切換評價審核狀態
// @Tags Feedback
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param storeId path string true "Store ID"
// @Param feedbackId path string true "Feedback ID"
// @Param body body dto.UpdateFeedbackDto true "審核狀態"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/stores/{storeId}/feedbacks/{feedbackId} [patch]
func (h *FeedbackHandler) Moderate(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	feedbackID, cause, respErr := validate.ParseObjectID(c, "feedbackId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	var req dto.UpdateFeedbackDto
	if cause, respErr = validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if err = h.feedbackService.ModerateFeedback(ctx, store, feedbackID, &req); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "feedback updated"})
}

// Delete 刪除評價
// @Summary 刪除評價並解除商品掛載
// @Tags Feedback
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Param feedbackId path string true "Feedback ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/stores/{storeId}/feedbacks/{feedbackId} [delete]
func (h *FeedbackHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	feedbackID, cause, respErr := validate.ParseObjectID(c, "feedbackId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if err = h.feedbackService.DeleteFeedback(ctx, store, feedbackID); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "feedback deleted"})
}
