package core

// OrderStatus 訂單付款狀態，只允許單向轉移：
// pending → completed / failed，終態不再變動。
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusFailed    OrderStatus = "failed"
)

// CanTransition reports whether an order may move from one status to another.
// The dashboard never flips status itself; only the gateway webhook drives this.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	if s == to {
		return false
	}
	switch s {
	case OrderStatusPending:
		return to == OrderStatusCompleted || to == OrderStatusFailed
	default:
		// completed / failed 為終態
		return false
	}
}

// Terminal reports whether the status is final.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusFailed
}
