package slug

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Make 將名稱轉成 URL-safe slug：小寫、ASCII、連字號分隔。
// 非英數字元一律視為分隔，連續分隔收斂為單一連字號。
func Make(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	pendingHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case unicode.IsSpace(r), r == '-', r == '_', r == '/', r == '.':
			pendingHyphen = true
		default:
			// 其他符號與非 ASCII 一律丟棄，但仍視為字詞邊界
			pendingHyphen = true
		}
	}
	return b.String()
}

// WithSuffix 在 slug 後附加 unix timestamp，用於撞名時消歧。
// 只做一次；timestamp 後再撞名交由唯一索引擋下。
func WithSuffix(base string, now time.Time) string {
	if base == "" {
		base = "item"
	}
	return base + "-" + strconv.FormatInt(now.Unix(), 10)
}
