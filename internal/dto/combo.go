package dto

// 建立組合商品
type CreateComboDto struct {
	CategoryID  string                 `json:"categoryId" binding:"required"`
	Name        string                 `json:"name" binding:"required"`
	Description string                 `json:"description,omitempty"`
	Content     map[string]interface{} `json:"content,omitempty"`
	ContentHtml string                 `json:"contentHtml,omitempty"`
	Price       float64                `json:"price" binding:"required,gt=0"` // 組合是單一價
	FakePrice   float64                `json:"fakePrice,omitempty" binding:"omitempty,gt=0"`
	IsFeatured  bool                   `json:"isFeatured"`
	IsArchived  bool                   `json:"isArchived"`
	SizeIDs     []string               `json:"sizeIds,omitempty"`
	FlavourIDs  []string               `json:"flavourIds,omitempty"`
	Images      []string               `json:"images,omitempty" binding:"omitempty,dive,url"`
}

// 更新組合商品
type UpdateComboDto struct {
	CategoryID  *string                `json:"categoryId,omitempty"`
	Name        *string                `json:"name,omitempty"`
	Description *string                `json:"description,omitempty"`
	Content     map[string]interface{} `json:"content,omitempty"`
	ContentHtml *string                `json:"contentHtml,omitempty"`
	Price       *float64               `json:"price,omitempty" binding:"omitempty,gt=0"`
	FakePrice   *float64               `json:"fakePrice,omitempty" binding:"omitempty,gt=0"`
	IsFeatured  *bool                  `json:"isFeatured,omitempty"`
	IsArchived  *bool                  `json:"isArchived,omitempty"`
	SizeIDs     []string               `json:"sizeIds,omitempty"`
	FlavourIDs  []string               `json:"flavourIds,omitempty"`
	Images      *[]string              `json:"images,omitempty"`
}
