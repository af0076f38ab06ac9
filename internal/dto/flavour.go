package dto

// 建立口味
type CreateFlavourDto struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value" binding:"required"` // hex 色碼
}

// 更新口味
type UpdateFlavourDto struct {
	Name  *string `json:"name,omitempty"`
	Value *string `json:"value,omitempty"`
}
