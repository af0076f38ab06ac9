package core

import "github.com/golang-jwt/jwt/v4"

// Claims 身分供應商簽發的 token payload；Subject 即 store owner 的 userId。
type Claims struct {
	DisplayName string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// gin context keys
const (
	ContextUserIDKey = "userID"
	ContextStoreKey  = "store"
)
