package handler

import (
	"backoffice/internal/dto"
	"backoffice/internal/pkg/response"
	"backoffice/internal/service"
	"backoffice/internal/telemetry"
	"backoffice/utils/validate"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler 公開結帳端點，不需登入
type CheckoutHandler struct {
	trace           *telemetry.Trace
	checkoutService *service.CheckoutService
}

func NewCheckoutHandler(trace *telemetry.Trace, checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{trace: trace, checkoutService: checkoutService}
}

// Checkout 建立結帳
// @Summary 建立訂單並回傳付款頁導向網址
// @Tags Checkout
// @Accept json
// @Produce json
// @Param storeId path string true "Store ID"
// @Param body body dto.CheckoutDto true "結帳品項"
// @Success 201 {object} dto.CheckoutResponseDto
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /public/{storeId}/checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	storeID, cause, respErr := validate.ParseObjectID(c, "storeId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	var req dto.CheckoutDto
	if cause, respErr = validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	result, err := h.checkoutService.Checkout(ctx, storeID, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, result)
}
