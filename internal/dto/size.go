package dto

// 建立規格
type CreateSizeDto struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value" binding:"required"`
}

// 更新規格
type UpdateSizeDto struct {
	Name  *string `json:"name,omitempty"`
	Value *string `json:"value,omitempty"`
}
