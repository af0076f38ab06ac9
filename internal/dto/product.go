package dto

// ProductSizeDto 每個 size 各自定價
type ProductSizeDto struct {
	SizeID    string  `json:"sizeId" binding:"required"`
	Price     float64 `json:"price" binding:"required,gt=0"`
	FakePrice float64 `json:"fakePrice,omitempty" binding:"omitempty,gt=0"`
}

// 建立商品
type CreateProductDto struct {
	CategoryID     string                 `json:"categoryId" binding:"required"`
	Name           string                 `json:"name" binding:"required"`
	Description    string                 `json:"description,omitempty"`
	Content        map[string]interface{} `json:"content,omitempty"` // 富文字編輯器原始 json
	ContentHtml    string                 `json:"contentHtml,omitempty"`
	Features       []string               `json:"features,omitempty"`
	SuggestedUse   string                 `json:"suggestedUse,omitempty"`
	Benefits       string                 `json:"benefits,omitempty"`
	NutritionalUse string                 `json:"nutritionalUse,omitempty"`
	IsFeatured     bool                   `json:"isFeatured"`
	IsArchived     bool                   `json:"isArchived"`
	FlavourIDs     []string               `json:"flavourIds,omitempty"`
	Sizes          []ProductSizeDto       `json:"sizes" binding:"required,min=1,dive"`
	Images         []string               `json:"images,omitempty" binding:"omitempty,dive,url"`
}

// 更新商品；nil 代表不動，Images 非 nil 代表整組替換
type UpdateProductDto struct {
	CategoryID     *string                `json:"categoryId,omitempty"`
	Name           *string                `json:"name,omitempty"`
	Description    *string                `json:"description,omitempty"`
	Content        map[string]interface{} `json:"content,omitempty"`
	ContentHtml    *string                `json:"contentHtml,omitempty"`
	Features       []string               `json:"features,omitempty"`
	SuggestedUse   *string                `json:"suggestedUse,omitempty"`
	Benefits       *string                `json:"benefits,omitempty"`
	NutritionalUse *string                `json:"nutritionalUse,omitempty"`
	IsFeatured     *bool                  `json:"isFeatured,omitempty"`
	IsArchived     *bool                  `json:"isArchived,omitempty"`
	FlavourIDs     []string               `json:"flavourIds,omitempty"`
	Sizes          []ProductSizeDto       `json:"sizes,omitempty" binding:"omitempty,min=1,dive"`
	Images         *[]string              `json:"images,omitempty"`
}
