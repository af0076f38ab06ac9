package dto

// 建立評價（公開端）；productId / comboId 擇一
type CreateFeedbackDto struct {
	UserName  string `json:"userName" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment,omitempty"`
	ProductID string `json:"productId,omitempty"`
	ComboID   string `json:"comboId,omitempty"`
}

// 審核評價（後台）
type UpdateFeedbackDto struct {
	Approved *bool `json:"approved,omitempty"`
}
