package dto

// SignUploadResponseDto 直傳 CDN 用的簽名參數
type SignUploadResponseDto struct {
	Timestamp int64  `json:"timestamp"`
	Folder    string `json:"folder,omitempty"`
	Signature string `json:"signature"`
	APIKey    string `json:"apiKey"`
	CloudName string `json:"cloudName"`
}
