package dto

// 建立商店
type CreateStoreDto struct {
	Name string `json:"name" binding:"required"` // 商店名稱（同一使用者內唯一）
}

// 更新商店
type UpdateStoreDto struct {
	Name *string `json:"name,omitempty"`
}
