package handler

import (
	"backoffice/internal/dto"
	"backoffice/internal/pkg/response"
	"backoffice/internal/service"
	"backoffice/internal/telemetry"
	"backoffice/utils/validate"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	trace         *telemetry.Trace
	couponService *service.CouponService
}

func NewCouponHandler(trace *telemetry.Trace, couponService *service.CouponService) *CouponHandler {
	return &CouponHandler{trace: trace, couponService: couponService}
}

// Create 建立折價券
// @Summary 建立折價券；code 不分大小寫且店內唯一
// @Tags Coupon
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param storeId path string true "Store ID"
// @Param body body dto.CreateCouponDto true "折價券資訊"
// @Success 201 {object} model.Coupon
// @Failure 400 {object} map[string]string
// @Router /api/stores/{storeId}/coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	var req dto.CreateCouponDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	coupon, err := h.couponService.CreateCoupon(ctx, store, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, coupon)
}

// List 折價券列表
// @Summary 折價券列表
// @Tags Coupon
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Success 200 {array} model.Coupon
// @Router /api/stores/{storeId}/coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	coupons, err := h.couponService.ListCoupons(ctx, store)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, coupons)
}

// Get 取得折價券
// @Summary 取得單一折價券
// @Tags Coupon
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Param couponId path string true "Coupon ID"
// @Success 200 {object} model.Coupon
// @Failure 404 {object} map[string]string
// @Router /api/stores/{storeId}/coupons/{couponId} [get]
func (h *CouponHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	couponID, cause, respErr := validate.ParseObjectID(c, "couponId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	coupon, err := h.couponService.GetCoupon(ctx, store, couponID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, coupon)
}

// Update 更新折價券
// @Summary 更新折價券
// @Tags Coupon
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param storeId path string true "Store ID"
// @Param couponId path string true "Coupon ID"
// @Param body body dto.UpdateCouponDto true "折價券資訊"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/stores/{storeId}/coupons/{couponId} [patch]
func (h *CouponHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	couponID, cause, respErr := validate.ParseObjectID(c, "couponId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	var req dto.UpdateCouponDto
	if cause, respErr = validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if err = h.couponService.UpdateCoupon(ctx, store, couponID, &req); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "coupon updated"})
}

// Delete 刪除折價券
// @Summary 刪除折價券
// @Tags Coupon
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Param couponId path string true "Coupon ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/stores/{storeId}/coupons/{couponId} [delete]
func (h *CouponHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	couponID, cause, respErr := validate.ParseObjectID(c, "couponId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if err = h.couponService.DeleteCoupon(ctx, store, couponID); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "coupon deleted"})
}
