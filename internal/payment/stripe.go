package payment

import (
	"context"
	"encoding/json"
	"math"

	"backoffice/config"

	"github.com/stripe/stripe-go/v79"
	stripeclient "github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
	"go.uber.org/zap"
)

// StripeGateway 以 hosted checkout session 收款
type StripeGateway struct {
	client        *stripeclient.API
	logger        *zap.Logger
	currency      string
	webhookSecret string
}

func NewStripeGateway(logger *zap.Logger, conf *config.Configuration) *StripeGateway {
	currency := conf.Payment.Currency
	if currency == "" {
		currency = "usd"
	}
	api := &stripeclient.API{}
	api.Init(conf.Payment.APIKey, nil)
	return &StripeGateway{
		client:        api,
		logger:        logger,
		currency:      currency,
		webhookSecret: conf.Payment.WebhookSecret,
	}
}

func (gateway *StripeGateway) CreateCheckoutSession(contextValue context.Context, input CheckoutInput) (*CheckoutSession, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(input.Items))
	for _, item := range input.Items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(gateway.currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(toMinorUnits(item.UnitPrice)),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:                     stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:                lineItems,
		SuccessURL:               stripe.String(input.SuccessURL),
		CancelURL:                stripe.String(input.CancelURL),
		BillingAddressCollection: stripe.String(string(stripe.CheckoutSessionBillingAddressCollectionRequired)),
		PhoneNumberCollection: &stripe.CheckoutSessionPhoneNumberCollectionParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = contextValue
	params.AddMetadata("orderId", input.OrderID)

	if input.DiscountPercentage > 0 {
		// 一次性 percent-off coupon，掛在這個 session 上
		couponParams := &stripe.CouponParams{
			PercentOff: stripe.Float64(input.DiscountPercentage),
			Duration:   stripe.String(string(stripe.CouponDurationOnce)),
		}
		couponParams.Context = contextValue
		stripeCoupon, couponError := gateway.client.Coupons.New(couponParams)
		if couponError != nil {
			return nil, couponError
		}
		params.Discounts = []*stripe.CheckoutSessionDiscountParams{
			{Coupon: stripe.String(stripeCoupon.ID)},
		}
	}

	session, sessionError := gateway.client.CheckoutSessions.New(params)
	if sessionError != nil {
		return nil, sessionError
	}
	return &CheckoutSession{SessionID: session.ID, URL: session.URL}, nil
}

func (gateway *StripeGateway) ConstructEvent(payload []byte, signatureHeader string) (*Event, error) {
	stripeEvent, verifyError := webhook.ConstructEvent(payload, signatureHeader, gateway.webhookSecret)
	if verifyError != nil {
		return nil, verifyError
	}

	normalized := &Event{RawType: string(stripeEvent.Type), Kind: EventIgnored}
	switch string(stripeEvent.Type) {
	case "checkout.session.completed":
		normalized.Kind = EventCheckoutCompleted
	case "checkout.session.expired":
		normalized.Kind = EventCheckoutExpired
	case "checkout.session.async_payment_failed":
		normalized.Kind = EventPaymentFailed
	default:
		return normalized, nil
	}

	var session stripe.CheckoutSession
	if unmarshalError := json.Unmarshal(stripeEvent.Data.Raw, &session); unmarshalError != nil {
		gateway.logger.Warn("failed to decode checkout session payload", zap.Error(unmarshalError))
		return nil, unmarshalError
	}

	normalized.SessionID = session.ID
	if session.Metadata != nil {
		normalized.OrderID = session.Metadata["orderId"]
	}
	if session.CustomerDetails != nil {
		normalized.Phone = session.CustomerDetails.Phone
		if address := session.CustomerDetails.Address; address != nil {
			normalized.Address = JoinAddress(
				address.Line1,
				address.Line2,
				address.City,
				address.State,
				address.PostalCode,
				address.Country,
			)
		}
	}
	return normalized, nil
}

// toMinorUnits 金額換算到最小幣值單位（分），避免浮點殘差
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
