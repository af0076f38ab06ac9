package error

const (
	// 0 ~ 999: 成功類別
	SUCCESS = 0 // 200 OK

	// 40000 ~ 49999: 用戶請求錯誤 (400 系列)
	BAD_REQUEST_BODY          = 40000 // 400 - 無效的請求體
	BAD_REQUEST_PARAMS        = 40001 // 400 - 無效的請求參數
	BAD_REQUEST_HEADERS       = 40002 // 400 - 無效的請求標頭
	BILLBOARD_IN_USE          = 40003 // 400 - Billboard 仍被 Category 引用
	SLUG_CONFLICT             = 40004 // 400 - slug 重複且無法消歧
	WEBHOOK_SIGNATURE_INVALID = 40005 // 400 - webhook 簽章驗證失敗
	COUPON_NOT_APPLICABLE     = 40006 // 400 - 優惠券已過期或停用

	// 40100 ~ 40599: 驗證與權限錯誤
	UNAUTHORIZED    = 40100 // 401 - 未授權
	INVALID_SESSION = 40101 // 401 - 會話失效
	UNAUTHENTICATED = 40300 // 403 - 缺少或無效的身分 token
	FORBIDDEN       = 40301 // 403 - 禁止訪問
	NOT_STORE_OWNER = 40500 // 405 - 已驗證身分但非該 Store 擁有者

	// 40400 ~ 40499: 資源錯誤 (404 系列)
	NOT_FOUND           = 40400 // 404 - 資源未找到
	REFERENCE_NOT_FOUND = 40401 // 404 - 關聯實體不存在或不屬於該 Store

	// 42900 ~ 42999: 流量限制錯誤 (429 系列)
	RATE_LIMIT_EXCEEDED = 42900 // 429 - 速率限制超過

	// 50000 ~ 50199: 伺服器內部錯誤 (500 系列)
	INTERNAL_ERROR      = 50000 // 500 - 內部錯誤
	DATABASE_ERROR      = 50001 // 500 - 資料庫錯誤
	FANOUT_ERROR        = 50002 // 500 - back-reference fan-out 失敗（交易已回滾）
	SERVICE_UNAVAILABLE = 50003 // 503 - 服務暫停 (維護模式)

	// 50200 ~ 50499: 外部請求錯誤 (502 504 系列)
	PAYMENT_GATEWAY_ERROR = 50200 // 502 - 金流供應商請求錯誤
	GATEWAY_TIMEOUT       = 50400 // 504 - 外部 API 超時
)
