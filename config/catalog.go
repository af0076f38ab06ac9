package config

type Catalog struct {
	// true: 刪除 Billboard 時自動解除 Category 的引用
	// false: 仍有 Category 引用時拒絕刪除
	BillboardDeleteDetach bool `mapstructure:"BILLBOARD_DELETE_DETACH" json:"billboard_delete_detach" yaml:"billboard_delete_detach"`
	// 公開端點（checkout 等）的固定視窗限流
	PublicRateLimit  int   `mapstructure:"PUBLIC_RATE_LIMIT" json:"public_rate_limit" yaml:"public_rate_limit"`
	PublicRateWindow int64 `mapstructure:"PUBLIC_RATE_WINDOW" json:"public_rate_window" yaml:"public_rate_window"`
}
