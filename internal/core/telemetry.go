package core

const ContextTraceKey = "telemetry_trace_ctx"

// ==== 型別安全 span name ====
// 專案全域建議都寫這裡，方便集中管理
type TraceSpanName string

const (
	SpanHttpRequest        TraceSpanName = "http_request"
	SpanLoggerMiddleware   TraceSpanName = "logger_middleware"
	SpanRecoveryMiddleware TraceSpanName = "recovery_middleware"
	SpanCorsMiddleware     TraceSpanName = "cors_middleware"
	SpanResponseMiddleware TraceSpanName = "response_middleware"
	SpanIdentityMiddleware TraceSpanName = "identity_middleware"
	SpanStoreOwner         TraceSpanName = "store_owner_middleware"
	SpanRateLimit          TraceSpanName = "ratelimit_middleware"
	SpanFanout             TraceSpanName = "reference_fanout"
	SpanCheckout           TraceSpanName = "checkout"
	SpanWebhook            TraceSpanName = "webhook"
)

// 指標名稱常數
type MetricName string

const (
	MetricHttpRequestsTotal    MetricName = "http_requests_total"
	MetricHttpRequestDuration  MetricName = "http_request_duration_seconds"
	MetricCatalogMutations     MetricName = "catalog_mutations_total"
	MetricCheckoutSessions     MetricName = "checkout_sessions_total"
	MetricWebhookEvents        MetricName = "webhook_events_total"
	MetricFanoutFailures       MetricName = "fanout_failures_total"
)

type MetricLabelName string

const (
	MetricLabelEndpoint MetricLabelName = "endpoint"
	MetricLabelStatus   MetricLabelName = "status"
	MetricLabelEntity   MetricLabelName = "entity"
	MetricLabelAction   MetricLabelName = "action"
	MetricLabelResult   MetricLabelName = "result"
)

// ==== trace attribute meta（以 struct tag 打進 span）====

type TraceHttpServerMeta struct {
	ClientAddr        string `trace:"client.address"`
	HttpRequestMethod string `trace:"http.request.method"`
	HttpRoute         string `trace:"http.route"`
	UrlPath           string `trace:"url.path"`
	UrlScheme         string `trace:"url.scheme"`
	UserAgent         string `trace:"user_agent.original"`
	ServerAddress     string `trace:"server.address"`
	NetworkPeerAddr   string `trace:"network.peer.address"`
	NetworkProtoVer   string `trace:"network.protocol.version"`
	HttpStatusCode    int    `trace:"http.response.status_code"`
	SpanTraceID       string `trace:"trace.id"`
}

type LoggerRequestMeta struct {
	Method     string            `trace:"http.request.method"`
	Path       string            `trace:"url.path"`
	FullPath   string            `trace:"http.route"`
	Query      string            `trace:"url.query"`
	Body       string            `trace:"http.request.body"`
	Host       string            `trace:"server.address"`
	UserAgent  string            `trace:"user_agent.original"`
	ContentLen int64             `trace:"http.request.body.size"`
	Proto      string            `trace:"network.protocol.version"`
	ClientIP   string            `trace:"client.address"`
	Headers    map[string]string `trace:"http.request.headers"`
	Params     map[string]string `trace:"http.request.params"`
}

type TraceResponseMeta struct {
	Path       string  `trace:"http.url.path"`
	Method     string  `trace:"http.request.method"`
	Status     int     `trace:"http.response.status_code"`
	Message    string  `trace:"app.response.message"`
	Code       int     `trace:"app.response.code"`
	DurationMs float64 `trace:"app.response.duration_ms"`
}

type TracePanicMeta struct {
	Path       string  `trace:"http.url.path"`
	Method     string  `trace:"http.request.method"`
	ClientIP   string  `trace:"client.address"`
	UserAgent  string  `trace:"user_agent.original"`
	DurationMs float64 `trace:"app.panic.duration_ms"`
	Message    string  `trace:"app.panic.message"`
	Stack      string  `trace:"app.panic.stack"`
	Status     int     `trace:"http.response.status_code"`
}

type TraceIdentityMeta struct {
	UserID string `trace:"app.user.id"`
	Status string `trace:"app.identity.status"`
}

type TraceStoreOwnerMeta struct {
	StoreID string `trace:"app.store.id"`
	UserID  string `trace:"app.user.id"`
	Status  string `trace:"app.store_owner.status"`
}

type TraceFanoutMeta struct {
	Entity  string `trace:"app.fanout.entity"`
	Action  string `trace:"app.fanout.action"`
	StoreID string `trace:"app.fanout.store_id"`
	Added   int    `trace:"app.fanout.added"`
	Removed int    `trace:"app.fanout.removed"`
}

type TraceCheckoutMeta struct {
	StoreID   string  `trace:"app.checkout.store_id"`
	OrderID   string  `trace:"app.checkout.order_id"`
	ItemCount int     `trace:"app.checkout.item_count"`
	Total     float64 `trace:"app.checkout.total"`
}

type TraceWebhookMeta struct {
	EventType string `trace:"app.webhook.event_type"`
	OrderID   string `trace:"app.webhook.order_id"`
	Result    string `trace:"app.webhook.result"`
}

type TraceRateLimitMeta struct {
	Key       string `trace:"app.ratelimit.key"`
	Limit     int    `trace:"app.ratelimit.limit"`
	WindowSec int64  `trace:"app.ratelimit.window_sec"`
	Remaining int    `trace:"app.ratelimit.remaining"`
	TTL       int64  `trace:"app.ratelimit.ttl"`
}
