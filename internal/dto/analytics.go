package dto

// GraphPointDto 近 12 個月單月營收
type GraphPointDto struct {
	Name  string  `json:"name"` // 月份縮寫，Jan..Dec
	Total float64 `json:"total"`
}

type AnalyticsResponseDto struct {
	TotalRevenue float64         `json:"totalRevenue"`
	SalesCount   int64           `json:"salesCount"`
	StockCount   int64           `json:"stockCount"`
	Graph        []GraphPointDto `json:"graph"`
}
