package handler

import (
	"backoffice/internal/core"
	"backoffice/internal/pkg/response"
	"backoffice/internal/service"
	"backoffice/internal/telemetry"
	"backoffice/utils/validate"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// OrderHandler 後台訂單查詢；訂單狀態只由 webhook 驅動，後台沒有寫入端點
type OrderHandler struct {
	trace        *telemetry.Trace
	orderService *service.OrderService
}

func NewOrderHandler(trace *telemetry.Trace, orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{trace: trace, orderService: orderService}
}

// List 訂單列表
// @Summary 訂單列表，可依狀態過濾
// @Tags Order
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Param status query string false "pending / completed / failed"
// @Param page query int false "頁碼"
// @Param size query int false "每頁筆數"
// @Success 200 {array} model.Order
// @Router /api/stores/{storeId}/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}

	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		if !validate.IsValidOrderStatus(status) {
			response.AbortWithError(c, parseQueryErr("status"))
			return
		}
		filter["status"] = status
	}
	page, err := validate.GetInt64Query(c, "page", 0)
	if err != nil {
		end(err)
		response.AbortWithError(c, parseQueryErr("page"))
		return
	}
	size, err := validate.GetInt64Query(c, "size", 20)
	if err != nil {
		end(err)
		response.AbortWithError(c, parseQueryErr("size"))
		return
	}

	orders, err := h.orderService.ListOrders(ctx, store, core.ListOptions{Filter: filter, Page: page, Size: size})
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, orders)
}

// Get 取得訂單
// @Summary 取得單一訂單
// @Tags Order
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Param orderId path string true "Order ID"
// @Success 200 {object} model.Order
// @Failure 404 {object} map[string]string
// @Router /api/stores/{storeId}/orders/{orderId} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	orderID, cause, respErr := validate.ParseObjectID(c, "orderId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	order, err := h.orderService.GetOrder(ctx, store, orderID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, order)
}
