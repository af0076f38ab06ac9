package dto

// 登錄批號
type CreateBatchDto struct {
	BatchID string `json:"batchId" binding:"required"`
}

// 更新批號
type UpdateBatchDto struct {
	BatchID *string `json:"batchId,omitempty"`
}
