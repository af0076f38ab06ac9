package service

import (
	"testing"
	"time"

	"backoffice/internal/database/mongodb/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRevenueGraph(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	paidAt := func(year int, month time.Month, total float64) *model.Order {
		at := time.Date(year, month, 3, 8, 0, 0, 0, time.UTC)
		return &model.Order{Total: total, PaidAt: &at}
	}

	orders := []*model.Order{
		paidAt(2025, time.June, 120),
		paidAt(2025, time.June, 80),
		paidAt(2025, time.January, 40),
		paidAt(2024, time.July, 65),
		// 11 個月前之外的訂單不應出現
		paidAt(2024, time.June, 999),
	}

	graph := buildRevenueGraph(orders, now)
	require.Len(t, graph, 12)

	// 視窗從 2024-07 起（含）到 2025-06 止
	assert.Equal(t, "Jul", graph[0].Name)
	assert.Equal(t, 65.0, graph[0].Total)
	assert.Equal(t, "Jun", graph[11].Name)
	assert.Equal(t, 200.0, graph[11].Total)

	// 2025-01 落在 index 6
	assert.Equal(t, "Jan", graph[6].Name)
	assert.Equal(t, 40.0, graph[6].Total)

	// 其他月份歸零
	assert.Equal(t, 0.0, graph[1].Total)
}

func TestBuildRevenueGraphFallsBackToCreatedAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	orders := []*model.Order{
		{Total: 50, CreatedAt: time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)},
	}

	graph := buildRevenueGraph(orders, now)
	require.Len(t, graph, 12)
	assert.Equal(t, "May", graph[10].Name)
	assert.Equal(t, 50.0, graph[10].Total)
}
