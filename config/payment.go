package config

type Payment struct {
	// 金流供應商 API Key
	APIKey string `mapstructure:"API_KEY" json:"api_key" yaml:"api_key"`
	// Webhook 簽章密鑰
	WebhookSecret string `mapstructure:"WEBHOOK_SECRET" json:"webhook_secret" yaml:"webhook_secret"`
	// ISO 貨幣代碼，例如 inr / usd
	Currency string `mapstructure:"CURRENCY" json:"currency" yaml:"currency"`
}
