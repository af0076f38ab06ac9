package dto

import "time"

// 建立折價券
type CreateCouponDto struct {
	Code               string    `json:"code" binding:"required"`
	DiscountPercentage float64   `json:"discountPercentage" binding:"required,gt=0,lte=100"`
	ExpiryDate         time.Time `json:"expiryDate" binding:"required"`
	IsActive           bool      `json:"isActive"`
}

// 更新折價券
type UpdateCouponDto struct {
	Code               *string    `json:"code,omitempty"`
	DiscountPercentage *float64   `json:"discountPercentage,omitempty" binding:"omitempty,gt=0,lte=100"`
	ExpiryDate         *time.Time `json:"expiryDate,omitempty"`
	IsActive           *bool      `json:"isActive,omitempty"`
}
