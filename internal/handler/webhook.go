package handler

import (
	"io"

	"backoffice/internal/payment"
	cErr "backoffice/internal/pkg/error"
	"backoffice/internal/pkg/response"
	"backoffice/internal/service"
	"backoffice/internal/telemetry"

	"github.com/gin-gonic/gin"
)

// WebhookHandler 付款閘道回呼。驗章失敗回 400 讓 gateway 重送，
// 業務上的 no-op（重送、未知訂單）一律回 200。
type WebhookHandler struct {
	trace        *telemetry.Trace
	gateway      payment.Gateway
	orderService *service.OrderService
}

func NewWebhookHandler(trace *telemetry.Trace, gateway payment.Gateway, orderService *service.OrderService) *WebhookHandler {
	return &WebhookHandler{trace: trace, gateway: gateway, orderService: orderService}
}

// Handle 接收 gateway webhook
// @Summary 付款閘道事件回呼
// @Tags Webhook
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /webhook [post]
func (h *WebhookHandler) Handle(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		end(err)
		response.AbortWithError(c, cErr.BadRequest("unable to read webhook payload"))
		return
	}

	event, err := h.gateway.ConstructEvent(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		end(err)
		response.AbortWithError(c, cErr.WebhookSignatureInvalid("webhook signature verification failed"))
		return
	}

	if err = h.orderService.HandleGatewayEvent(ctx, event); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"received": true})
}
