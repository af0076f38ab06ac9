package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"backoffice/config"
	"backoffice/internal/core"
	client "backoffice/internal/database/client"
	"backoffice/internal/database/mongodb/model"
	"backoffice/internal/database/mongodb/repository"
	"backoffice/internal/dto"
	"backoffice/internal/payment"
	cErr "backoffice/internal/pkg/error"
	"backoffice/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type CheckoutService struct {
	conf        *config.Configuration
	trace       *telemetry.Trace
	metric      *telemetry.Metric
	logger      *zap.Logger
	mongoClient *client.MongoClient
	gateway     payment.Gateway
	storeRepo   *repository.StoreRepository
	productRepo *repository.ProductRepository
	sizeRepo    *repository.SizeRepository
	couponRepo  *repository.CouponRepository
	orderRepo   *repository.OrderRepository
}

func NewCheckoutService(
	conf *config.Configuration,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	logger *zap.Logger,
	mongoClient *client.MongoClient,
	gateway payment.Gateway,
	storeRepo *repository.StoreRepository,
	productRepo *repository.ProductRepository,
	sizeRepo *repository.SizeRepository,
	couponRepo *repository.CouponRepository,
	orderRepo *repository.OrderRepository,
) *CheckoutService {
	return &CheckoutService{
		conf:        conf,
		trace:       trace,
		metric:      metric,
		logger:      logger,
		mongoClient: mongoClient,
		gateway:     gateway,
		storeRepo:   storeRepo,
		productRepo: productRepo,
		sizeRepo:    sizeRepo,
		couponRepo:  couponRepo,
		orderRepo:   orderRepo,
	}
}

// Checkout 建立 pending 訂單並導向 gateway hosted page。
// 品項價格以當下產品定價凍結進訂單快照。
func (s *CheckoutService) Checkout(ctx context.Context, storeID primitive.ObjectID, checkoutDto *dto.CheckoutDto) (_ *dto.CheckoutResponseDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx, string(core.SpanCheckout))
	defer func() { end(returnedError) }()

	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			s.countCheckout("store_not_found")
			return nil, cErr.NotFound("store not found")
		}
		s.countCheckout("error")
		return nil, cErr.DatabaseError("database Checkout error")
	}

	items, subtotal, err := s.resolveItems(ctx, store, checkoutDto.Items)
	if err != nil {
		s.countCheckout("invalid_items")
		return nil, err
	}

	var coupon *model.Coupon
	if checkoutDto.CouponCode != "" {
		coupon, err = s.couponRepo.GetByCode(ctx, store.ID, checkoutDto.CouponCode)
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			s.countCheckout("error")
			return nil, cErr.DatabaseError("database Checkout error")
		}
	}
	discount, total, applied := applyCoupon(subtotal, coupon, time.Now().UTC())

	order := &model.Order{
		StoreID:    store.ID,
		CustomerID: checkoutDto.CustomerID,
		Status:     core.OrderStatusPending,
		Items:      items,
		Subtotal:   subtotal,
		Discount:   discount,
		Total:      total,
	}
	if applied {
		order.CouponID = &coupon.ID
		order.CouponCode = coupon.Code
	}

	_, err = s.mongoClient.WithTransaction(ctx, func(sessionContext mongo.SessionContext) (interface{}, error) {
		created, createError := s.orderRepo.Create(sessionContext, order)
		if createError != nil {
			return nil, createError
		}
		if linkError := s.storeRepo.LinkChild(sessionContext, store.ID, core.StoreRefOrders, created.ID); linkError != nil {
			return nil, linkError
		}
		return created, nil
	})
	if err != nil {
		s.countCheckout("error")
		return nil, cErr.FanoutError("failed to create order")
	}

	input := payment.CheckoutInput{
		OrderID:    order.ID.Hex(),
		SuccessURL: fmt.Sprintf("%s/cart?success=1", s.conf.Storefront.BaseURL),
		CancelURL:  fmt.Sprintf("%s/cart?canceled=1", s.conf.Storefront.BaseURL),
	}
	if applied {
		input.DiscountPercentage = coupon.DiscountPercentage
	}
	for _, item := range items {
		name := item.Name
		if item.SizeName != "" {
			name = fmt.Sprintf("%s (%s)", item.Name, item.SizeName)
		}
		input.Items = append(input.Items, payment.LineItem{
			Name:      name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, input)
	if err != nil {
		// 訂單留在 pending，等 session 過期或人工清理
		s.logger.Error("payment gateway checkout session failed",
			zap.String("orderId", order.ID.Hex()),
			zap.Error(err))
		s.countCheckout("gateway_error")
		return nil, cErr.PaymentGatewayError("failed to create checkout session")
	}
	if err = s.orderRepo.SetSessionID(ctx, order.ID, session.SessionID); err != nil {
		s.countCheckout("error")
		return nil, cErr.DatabaseError("database Checkout error")
	}

	s.trace.ApplyTraceAttributes(span, core.TraceCheckoutMeta{
		StoreID:   store.ID.Hex(),
		OrderID:   order.ID.Hex(),
		ItemCount: len(items),
		Total:     total,
	})
	s.countCheckout("ok")
	return &dto.CheckoutResponseDto{URL: session.URL}, nil
}

// resolveItems 驗證品項屬於該店且未封存，並從產品 size 定價凍結單價
func (s *CheckoutService) resolveItems(ctx context.Context, store *model.Store, rawItems []dto.CheckoutItemDto) ([]model.OrderItem, float64, error) {
	items := make([]model.OrderItem, 0, len(rawItems))
	var subtotal float64
	for _, rawItem := range rawItems {
		productID, err := primitive.ObjectIDFromHex(rawItem.ProductID)
		if err != nil {
			return nil, 0, cErr.ValidateErr("productId is not a valid id")
		}
		sizeID, err := primitive.ObjectIDFromHex(rawItem.SizeID)
		if err != nil {
			return nil, 0, cErr.ValidateErr("sizeId is not a valid id")
		}
		product, err := s.productRepo.GetByID(ctx, productID)
		if err != nil || product.StoreID != store.ID || product.IsArchived {
			return nil, 0, cErr.ReferenceNotFound("product not found in this store")
		}

		var unitPrice float64
		var priced bool
		for _, productSize := range product.Sizes {
			if productSize.SizeID == sizeID {
				unitPrice = productSize.Price
				priced = true
				break
			}
		}
		if !priced {
			return nil, 0, cErr.ReferenceNotFound("size is not offered for this product")
		}

		item := model.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  rawItem.Quantity,
			SizeID:    sizeID,
			UnitPrice: unitPrice,
		}
		if size, sizeError := s.sizeRepo.GetByID(ctx, sizeID); sizeError == nil {
			item.SizeName = size.Name
		}
		if rawItem.FlavourID != "" {
			flavourID, flavourError := primitive.ObjectIDFromHex(rawItem.FlavourID)
			if flavourError != nil {
				return nil, 0, cErr.ValidateErr("flavourId is not a valid id")
			}
			if !containsID(product.FlavourIDs, flavourID) {
				return nil, 0, cErr.ReferenceNotFound("flavour is not offered for this product")
			}
			item.FlavourID = &flavourID
		}

		items = append(items, item)
		subtotal += unitPrice * float64(rawItem.Quantity)
	}
	return items, roundCents(subtotal), nil
}

func (s *CheckoutService) countCheckout(result string) {
	if s.metric.CheckoutSessionsTotal != nil {
		s.metric.CheckoutSessionsTotal.WithLabelValues(result).Inc()
	}
}

// applyCoupon 計算折扣後金額。折價券必須啟用且未過期才生效，
// 無效的 code 不阻擋結帳，只是不打折。
func applyCoupon(subtotal float64, coupon *model.Coupon, now time.Time) (discount, total float64, applied bool) {
	if coupon == nil || !coupon.IsActive || !coupon.ExpiryDate.After(now) {
		return 0, subtotal, false
	}
	discount = roundCents(subtotal * coupon.DiscountPercentage / 100)
	return discount, roundCents(subtotal - discount), true
}

func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
