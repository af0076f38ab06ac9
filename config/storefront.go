package config

type Storefront struct {
	// 前台網址，結帳完成 / 取消後導回的目標
	BaseURL string `mapstructure:"BASE_URL" json:"base_url" yaml:"base_url"`
}
