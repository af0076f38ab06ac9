package dto

// 建立看板
type CreateBillboardDto struct {
	Label    string `json:"label" binding:"required"`
	ImageUrl string `json:"imageUrl" binding:"required,url"`
}

// 更新看板
type UpdateBillboardDto struct {
	Label    *string `json:"label,omitempty"`
	ImageUrl *string `json:"imageUrl,omitempty" binding:"omitempty,url"`
}
