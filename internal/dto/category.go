package dto

// 建立分類
type CreateCategoryDto struct {
	Name        string `json:"name" binding:"required"`
	ImageUrl    string `json:"imageUrl,omitempty" binding:"omitempty,url"`
	BillboardID string `json:"billboardId,omitempty"` // 可選；須屬於同一 store
}

// 更新分類；BillboardID 傳空字串代表解除連結
type UpdateCategoryDto struct {
	Name        *string `json:"name,omitempty"`
	ImageUrl    *string `json:"imageUrl,omitempty" binding:"omitempty,url"`
	BillboardID *string `json:"billboardId,omitempty"`
}
