package config

type Cloudinary struct {
	CloudName string `mapstructure:"CLOUD_NAME" json:"cloud_name" yaml:"cloud_name"`
	APIKey    string `mapstructure:"API_KEY" json:"api_key" yaml:"api_key"`
	APISecret string `mapstructure:"API_SECRET" json:"api_secret" yaml:"api_secret"`
	// 上傳目錄
	Folder string `mapstructure:"FOLDER" json:"folder" yaml:"folder"`
}
