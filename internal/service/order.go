package service

import (
	"context"
	"errors"
	"time"

	"backoffice/internal/core"
	"backoffice/internal/database/mongodb/model"
	"backoffice/internal/database/mongodb/repository"
	"backoffice/internal/payment"
	cErr "backoffice/internal/pkg/error"
	"backoffice/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type OrderService struct {
	trace     *telemetry.Trace
	metric    *telemetry.Metric
	logger    *zap.Logger
	orderRepo *repository.OrderRepository
	audit     *AuditService
}

func NewOrderService(
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	logger *zap.Logger,
	orderRepo *repository.OrderRepository,
	audit *AuditService,
) *OrderService {
	return &OrderService{trace: trace, metric: metric, logger: logger, orderRepo: orderRepo, audit: audit}
}

func (s *OrderService) ListOrders(ctx context.Context, store *model.Store, listOptions core.ListOptions) ([]*model.Order, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if listOptions.Filter == nil {
		listOptions.Filter = bson.M{}
	}
	listOptions.Filter["storeId"] = store.ID
	orders, err := s.orderRepo.List(ctx, listOptions)
	if err != nil {
		return nil, cErr.DatabaseError("database ListOrders error")
	}
	return orders, nil
}

func (s *OrderService) GetOrder(ctx context.Context, store *model.Store, orderID primitive.ObjectID) (*model.Order, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("order not found")
		}
		return nil, cErr.DatabaseError("database GetOrder error")
	}
	if order.StoreID != store.ID {
		return nil, cErr.NotFound("order not found")
	}
	return order, nil
}

// HandleGatewayEvent 消化 gateway webhook 事件並推動訂單狀態機。
// 未知訂單與重送一律視為 no-op，回 2xx 讓 gateway 停止重試。
func (s *OrderService) HandleGatewayEvent(ctx context.Context, event *payment.Event) (returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx, string(core.SpanWebhook))
	defer func() { end(returnedError) }()

	meta := core.TraceWebhookMeta{EventType: event.RawType, OrderID: event.OrderID}
	defer func() { s.trace.ApplyTraceAttributes(span, meta) }()

	if event.Kind == payment.EventIgnored {
		meta.Result = "ignored"
		s.countWebhook("ignored")
		return nil
	}

	orderID, err := primitive.ObjectIDFromHex(event.OrderID)
	if err != nil {
		s.logger.Warn("webhook event without a resolvable order id",
			zap.String("eventType", event.RawType),
			zap.String("orderId", event.OrderID))
		meta.Result = "unknown_order"
		s.countWebhook("unknown_order")
		return nil
	}
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			s.logger.Warn("webhook event for unknown order",
				zap.String("eventType", event.RawType),
				zap.String("orderId", event.OrderID))
			meta.Result = "unknown_order"
			s.countWebhook("unknown_order")
			return nil
		}
		meta.Result = "error"
		s.countWebhook("error")
		return cErr.DatabaseError("database HandleGatewayEvent error")
	}

	var toStatus core.OrderStatus
	extraSet := bson.M{}
	switch event.Kind {
	case payment.EventCheckoutCompleted:
		toStatus = core.OrderStatusCompleted
		paidAt := time.Now().UTC()
		extraSet["paidAt"] = paidAt
		if event.Phone != "" {
			extraSet["phone"] = event.Phone
		}
		if event.Address != "" {
			extraSet["address"] = event.Address
		}
	case payment.EventCheckoutExpired, payment.EventPaymentFailed:
		toStatus = core.OrderStatusFailed
	default:
		meta.Result = "ignored"
		s.countWebhook("ignored")
		return nil
	}

	if !order.Status.CanTransition(toStatus) {
		// 終態訂單收到重送事件
		meta.Result = "noop"
		s.countWebhook("noop")
		return nil
	}

	transitioned, err := s.orderRepo.TransitionStatus(ctx, orderID, toStatus, extraSet)
	if err != nil {
		meta.Result = "error"
		s.countWebhook("error")
		return cErr.DatabaseError("database TransitionStatus error")
	}
	if !transitioned {
		// 與另一次投遞撞上，條件更新已保證只有一次生效
		meta.Result = "noop"
		s.countWebhook("noop")
		return nil
	}

	s.logger.Info("order status transitioned",
		zap.String("orderId", orderID.Hex()),
		zap.String("from", string(order.Status)),
		zap.String("to", string(toStatus)),
		zap.String("eventType", event.RawType))
	meta.Result = "transitioned"
	s.countWebhook("transitioned")
	s.audit.Record(ctx, core.EntityOrder, core.AuditUpdate, orderID, order.StoreID, "gateway")
	return nil
}

func (s *OrderService) countWebhook(result string) {
	if s.metric.WebhookEventsTotal != nil {
		s.metric.WebhookEventsTotal.WithLabelValues(result).Inc()
	}
}
