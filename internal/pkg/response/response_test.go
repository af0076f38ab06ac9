package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, recorder
}

func TestSuccessWithoutMessageKey(t *testing.T) {
	c, _ := newTestContext(t)

	// gin.H 沒有 message key 時不能 panic，沿用預設訊息
	assert.NotPanics(t, func() {
		Success(c, gin.H{"received": true})
	})

	message, exists := c.Get("message")
	require.True(t, exists)
	assert.Equal(t, "Request Success", message)

	data, exists := c.Get("data")
	require.True(t, exists)
	assert.Equal(t, gin.H{"received": true}, data)
	assert.True(t, c.IsAborted())
}

func TestSuccessExtractsMessage(t *testing.T) {
	c, _ := newTestContext(t)

	Success(c, gin.H{"message": "order acknowledged", "received": true})

	message, _ := c.Get("message")
	assert.Equal(t, "order acknowledged", message)

	data, _ := c.Get("data")
	// message 已從 payload 移除
	assert.Equal(t, gin.H{"received": true}, data)
}

func TestSuccessNonStringMessage(t *testing.T) {
	c, _ := newTestContext(t)

	assert.NotPanics(t, func() {
		Success(c, gin.H{"message": 42})
	})
	message, _ := c.Get("message")
	assert.Equal(t, "Request Success", message)
}

func TestCreateWithoutMessageKey(t *testing.T) {
	c, _ := newTestContext(t)

	assert.NotPanics(t, func() {
		Create(c, gin.H{"id": "abc"})
	})

	message, _ := c.Get("message")
	assert.Equal(t, "Create Success", message)
	assert.Equal(t, http.StatusCreated, c.Writer.Status())
}

func TestSuccessNonMapData(t *testing.T) {
	c, _ := newTestContext(t)

	type payload struct{ Name string }
	assert.NotPanics(t, func() {
		Success(c, &payload{Name: "store"})
	})
	data, _ := c.Get("data")
	assert.Equal(t, &payload{Name: "store"}, data)
}
