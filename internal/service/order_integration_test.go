package service

import (
	"context"
	"os"
	"testing"

	"backoffice/config"
	"backoffice/internal/core"
	client "backoffice/internal/database/client"
	fluentdRepo "backoffice/internal/database/fluentd/repository"
	"backoffice/internal/database/mongodb/model"
	"backoffice/internal/database/mongodb/repository"
	"backoffice/internal/payment"
	"backoffice/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newOrderFixture(t *testing.T) (*OrderService, *repository.OrderRepository) {
	t.Helper()
	uri := os.Getenv("TEST_MONGODB_URI")
	if uri == "" {
		t.Skip("TEST_MONGODB_URI not set; requires a replica-set mongod")
	}

	conf := &config.Configuration{}
	conf.MongoDB.URI = uri

	logger := zap.NewNop()
	trace, err := telemetry.NewTrace(conf)
	require.NoError(t, err)
	metric := telemetry.NewMetric(conf)

	mongoClient, cleanup, err := client.NewMongoClient(logger, conf)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	orderRepo := repository.NewOrderRepository(mongoClient)
	audit := NewAuditService(logger, fluentdRepo.NewLogRepository(conf, nil), metric)
	return NewOrderService(trace, metric, logger, orderRepo, audit), orderRepo
}

func TestHandleGatewayEventDuplicateDelivery(t *testing.T) {
	orderService, orderRepo := newOrderFixture(t)
	ctx := context.Background()

	order, err := orderRepo.Create(ctx, &model.Order{
		StoreID:  primitive.NewObjectID(),
		Status:   core.OrderStatusPending,
		Subtotal: 100,
		Total:    100,
	})
	require.NoError(t, err)

	completed := &payment.Event{
		Kind:    payment.EventCheckoutCompleted,
		RawType: "checkout.session.completed",
		OrderID: order.ID.Hex(),
		Phone:   "+886900000000",
		Address: "1 Test Rd, Taipei, 100, TW",
	}

	require.NoError(t, orderService.HandleGatewayEvent(ctx, completed))

	first, err := orderRepo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, core.OrderStatusCompleted, first.Status)
	require.NotNil(t, first.PaidAt)
	assert.Equal(t, completed.Phone, first.Phone)
	assert.Equal(t, completed.Address, first.Address)

	// gateway 重送同一事件：條件更新不命中，狀態與付款時間不得改變
	require.NoError(t, orderService.HandleGatewayEvent(ctx, completed))

	second, err := orderRepo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, core.OrderStatusCompleted, second.Status)
	assert.Equal(t, first.PaidAt.UnixNano(), second.PaidAt.UnixNano())

	// 終態訂單收到失敗事件也是 no-op
	failed := &payment.Event{
		Kind:    payment.EventPaymentFailed,
		RawType: "checkout.session.async_payment_failed",
		OrderID: order.ID.Hex(),
	}
	require.NoError(t, orderService.HandleGatewayEvent(ctx, failed))

	third, err := orderRepo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, core.OrderStatusCompleted, third.Status)
}
