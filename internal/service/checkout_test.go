package service

import (
	"testing"
	"time"

	"backoffice/internal/database/mongodb/model"

	"github.com/stretchr/testify/assert"
)

func TestApplyCoupon(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name             string
		subtotal         float64
		coupon           *model.Coupon
		expectedDiscount float64
		expectedTotal    float64
		expectedApplied  bool
	}{
		{
			name:     "active coupon applies percentage",
			subtotal: 250,
			coupon: &model.Coupon{
				DiscountPercentage: 10,
				ExpiryDate:         now.AddDate(0, 1, 0),
				IsActive:           true,
			},
			expectedDiscount: 25,
			expectedTotal:    225,
			expectedApplied:  true,
		},
		{
			name:     "expired coupon charges full price",
			subtotal: 250,
			coupon: &model.Coupon{
				DiscountPercentage: 10,
				ExpiryDate:         now.AddDate(0, -1, 0),
				IsActive:           true,
			},
			expectedDiscount: 0,
			expectedTotal:    250,
			expectedApplied:  false,
		},
		{
			name:     "inactive coupon charges full price",
			subtotal: 250,
			coupon: &model.Coupon{
				DiscountPercentage: 10,
				ExpiryDate:         now.AddDate(0, 1, 0),
				IsActive:           false,
			},
			expectedDiscount: 0,
			expectedTotal:    250,
			expectedApplied:  false,
		},
		{
			name:             "no coupon",
			subtotal:         99.5,
			coupon:           nil,
			expectedDiscount: 0,
			expectedTotal:    99.5,
			expectedApplied:  false,
		},
		{
			name:     "expiring exactly now counts as expired",
			subtotal: 100,
			coupon: &model.Coupon{
				DiscountPercentage: 50,
				ExpiryDate:         now,
				IsActive:           true,
			},
			expectedDiscount: 0,
			expectedTotal:    100,
			expectedApplied:  false,
		},
		{
			name:     "fractional discount rounds to cents",
			subtotal: 10.99,
			coupon: &model.Coupon{
				DiscountPercentage: 15,
				ExpiryDate:         now.AddDate(0, 0, 1),
				IsActive:           true,
			},
			expectedDiscount: 1.65, // 1.6485 -> 1.65
			expectedTotal:    9.34,
			expectedApplied:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			discount, total, applied := applyCoupon(tc.subtotal, tc.coupon, now)
			assert.InDelta(t, tc.expectedDiscount, discount, 1e-9)
			assert.InDelta(t, tc.expectedTotal, total, 1e-9)
			assert.Equal(t, tc.expectedApplied, applied)
		})
	}
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 1.65, roundCents(1.6485))
	assert.Equal(t, 1.64, roundCents(1.6449))
	assert.Equal(t, 0.0, roundCents(0))
	assert.Equal(t, 100.0, roundCents(99.999))
}
