package dto

// 建立 SEO 設定
type CreateSeoDto struct {
	Url           string   `json:"url" binding:"required"`
	Title         string   `json:"title,omitempty"`
	Description   string   `json:"description,omitempty"`
	H1            string   `json:"h1,omitempty"`
	Canonical     string   `json:"canonical,omitempty"`
	OgTitle       string   `json:"ogTitle,omitempty"`
	OgDescription string   `json:"ogDescription,omitempty"`
	OgImage       string   `json:"ogImage,omitempty"`
	Schema        string   `json:"schema,omitempty"`
	MetaRobots    string   `json:"metaRobots,omitempty"`
	AltTag        string   `json:"altTag,omitempty"`
	Keywords      []string `json:"keywords,omitempty"`
}

// 更新 SEO 設定
type UpdateSeoDto struct {
	Url           *string  `json:"url,omitempty"`
	Title         *string  `json:"title,omitempty"`
	Description   *string  `json:"description,omitempty"`
	H1            *string  `json:"h1,omitempty"`
	Canonical     *string  `json:"canonical,omitempty"`
	OgTitle       *string  `json:"ogTitle,omitempty"`
	OgDescription *string  `json:"ogDescription,omitempty"`
	OgImage       *string  `json:"ogImage,omitempty"`
	Schema        *string  `json:"schema,omitempty"`
	MetaRobots    *string  `json:"metaRobots,omitempty"`
	AltTag        *string  `json:"altTag,omitempty"`
	Keywords      []string `json:"keywords,omitempty"`
}
