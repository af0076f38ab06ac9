package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusCanTransition(t *testing.T) {
	testCases := []struct {
		name     string
		from     OrderStatus
		to       OrderStatus
		expected bool
	}{
		{"pending to completed", OrderStatusPending, OrderStatusCompleted, true},
		{"pending to failed", OrderStatusPending, OrderStatusFailed, true},
		{"pending to pending", OrderStatusPending, OrderStatusPending, false},
		{"completed is terminal", OrderStatusCompleted, OrderStatusFailed, false},
		{"completed cannot revert", OrderStatusCompleted, OrderStatusPending, false},
		{"failed is terminal", OrderStatusFailed, OrderStatusCompleted, false},
		{"failed cannot revert", OrderStatusFailed, OrderStatusPending, false},
		{"unknown status cannot move", OrderStatus("refunded"), OrderStatusCompleted, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.from.CanTransition(tc.to))
		})
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.False(t, OrderStatusPending.Terminal())
	assert.True(t, OrderStatusCompleted.Terminal())
	assert.True(t, OrderStatusFailed.Terminal())
}
