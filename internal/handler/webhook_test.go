package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backoffice/config"
	fluentdRepo "backoffice/internal/database/fluentd/repository"
	"backoffice/internal/middleware"
	"backoffice/internal/payment"
	"backoffice/internal/pkg/response"
	"backoffice/internal/service"
	"backoffice/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubGateway 固定回放一個事件或驗章錯誤
type stubGateway struct {
	event *payment.Event
	err   error
}

func (g *stubGateway) CreateCheckoutSession(_ context.Context, _ payment.CheckoutInput) (*payment.CheckoutSession, error) {
	return nil, errors.New("not supported in tests")
}

func (g *stubGateway) ConstructEvent(_ []byte, _ string) (*payment.Event, error) {
	return g.event, g.err
}

// newWebhookRouter 掛上 recovery + response 中介層，走完整的回應封裝路徑
func newWebhookRouter(t *testing.T, gateway payment.Gateway) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conf := &config.Configuration{}
	logger := zap.NewNop()
	trace, err := telemetry.NewTrace(conf)
	require.NoError(t, err)
	metric := telemetry.NewMetric(conf)
	logRepo := fluentdRepo.NewLogRepository(conf, nil)

	audit := service.NewAuditService(logger, logRepo, metric)
	orderService := service.NewOrderService(trace, metric, logger, nil, audit)
	webhookHandler := NewWebhookHandler(trace, gateway, orderService)

	engine := gin.New()
	engine.Use(middleware.NewRecovery(logger, trace, conf, logRepo).ErrorHandler())
	engine.Use(middleware.NewResponse(logger, trace, conf, logRepo).FormatHandler())
	engine.POST("/webhook", webhookHandler.Handle)
	return engine
}

func postWebhook(engine *gin.Engine) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{}`))
	request.Header.Set("Stripe-Signature", "t=1,v1=sig")
	engine.ServeHTTP(recorder, request)
	return recorder
}

func TestWebhookHandleAcknowledgesEvent(t *testing.T) {
	engine := newWebhookRouter(t, &stubGateway{
		event: &payment.Event{Kind: payment.EventIgnored, RawType: "payment_intent.created"},
	})

	recorder := postWebhook(engine)

	require.Equal(t, http.StatusOK, recorder.Code)
	var envelope response.Response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, 0, envelope.Code)
	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, data["received"])
}

func TestWebhookHandleUnknownOrderStillAcks(t *testing.T) {
	// metadata 帶不回有效訂單 id 時照樣回 200，gateway 才不會一直重送
	engine := newWebhookRouter(t, &stubGateway{
		event: &payment.Event{
			Kind:    payment.EventCheckoutCompleted,
			RawType: "checkout.session.completed",
			OrderID: "not-an-object-id",
		},
	})

	recorder := postWebhook(engine)

	require.Equal(t, http.StatusOK, recorder.Code)
	var envelope response.Response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, 0, envelope.Code)
}

func TestWebhookHandleRejectsBadSignature(t *testing.T) {
	engine := newWebhookRouter(t, &stubGateway{err: errors.New("signature mismatch")})

	recorder := postWebhook(engine)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
