package dto

// CheckoutItemDto 結帳品項選擇
type CheckoutItemDto struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int64  `json:"quantity" binding:"required,min=1"`
	SizeID    string `json:"sizeId" binding:"required"`
	FlavourID string `json:"flavourId,omitempty"`
}

// 建立結帳 session（公開端）
type CheckoutDto struct {
	Items      []CheckoutItemDto `json:"items" binding:"required,min=1,dive"`
	CouponCode string            `json:"couponCode,omitempty"`
	CustomerID string            `json:"customerId,omitempty"`
}

// 結帳回應：導向 gateway hosted page
type CheckoutResponseDto struct {
	URL string `json:"url"`
}
