package model

type ResponseLog struct {
	// 對應鍵
	RequestID  string `bson:"request_id" json:"request_id"`
	Path       string `bson:"path" json:"path"`
	Method     string `bson:"method" json:"method"`
	Code       int    `bson:"code" json:"code"`
	StatusCode int    `bson:"status_code" json:"status_code"`
	Error      string `bson:"error,omitempty" json:"error,omitempty"`
	DurationMs float64 `bson:"duration_ms" json:"duration_ms"`
	Version    string `bson:"version,omitempty" json:"version,omitempty"`
	ResponseTS string `bson:"response_ts" json:"response_ts"`
	LoggedAt   string `bson:"logged_at" json:"logged_at"`
}
