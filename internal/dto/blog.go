package dto

// 建立文章
type CreateBlogDto struct {
	Title       string                 `json:"title" binding:"required"`
	ProductID   string                 `json:"productId,omitempty"` // 關聯商品（可選）
	Content     map[string]interface{} `json:"content,omitempty"`
	ContentHtml string                 `json:"contentHtml,omitempty"`
}

// 更新文章
type UpdateBlogDto struct {
	Title       *string                `json:"title,omitempty"`
	ProductID   *string                `json:"productId,omitempty"`
	Content     map[string]interface{} `json:"content,omitempty"`
	ContentHtml *string                `json:"contentHtml,omitempty"`
}
