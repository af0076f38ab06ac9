package payment

import (
	"context"
	"strings"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(NewStripeGateway, wire.Bind(new(Gateway), new(*StripeGateway)))

// EventKind 正規化後的 gateway 事件種類
type EventKind string

const (
	EventCheckoutCompleted EventKind = "checkout_completed"
	EventCheckoutExpired   EventKind = "checkout_expired"
	EventPaymentFailed     EventKind = "payment_failed"
	EventIgnored           EventKind = "ignored"
)

// LineItem 建立付款 session 用的品項（金額已凍結）
type LineItem struct {
	Name      string
	UnitPrice float64
	Quantity  int64
}

type CheckoutInput struct {
	OrderID            string
	Items              []LineItem
	DiscountPercentage float64 // 0 代表無折扣
	SuccessURL         string
	CancelURL          string
}

type CheckoutSession struct {
	SessionID string
	URL       string
}

// Event gateway webhook 驗章解析後的正規化事件
type Event struct {
	Kind      EventKind
	RawType   string
	OrderID   string // session metadata 的 orderId
	SessionID string
	Phone     string
	Address   string
}

// Gateway 付款閘道抽象；目前只有 Stripe 實作
type Gateway interface {
	CreateCheckoutSession(contextValue context.Context, input CheckoutInput) (*CheckoutSession, error)
	ConstructEvent(payload []byte, signatureHeader string) (*Event, error)
}

// JoinAddress 把地址組件串成單行出貨地址，缺的欄位直接跳過
func JoinAddress(components ...string) string {
	parts := make([]string, 0, len(components))
	for _, component := range components {
		if trimmed := strings.TrimSpace(component); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, ", ")
}
