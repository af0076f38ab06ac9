package service

import (
	"context"
	"time"

	"backoffice/internal/database/mongodb/model"
	"backoffice/internal/database/mongodb/repository"
	"backoffice/internal/dto"
	cErr "backoffice/internal/pkg/error"
	"backoffice/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
)

type AnalyticsService struct {
	trace       *telemetry.Trace
	orderRepo   *repository.OrderRepository
	productRepo *repository.ProductRepository
}

func NewAnalyticsService(trace *telemetry.Trace, orderRepo *repository.OrderRepository, productRepo *repository.ProductRepository) *AnalyticsService {
	return &AnalyticsService{trace: trace, orderRepo: orderRepo, productRepo: productRepo}
}

// GetAnalytics 只統計 completed 訂單；庫存數為未封存商品數
func (s *AnalyticsService) GetAnalytics(ctx context.Context, store *model.Store) (_ *dto.AnalyticsResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	orders, err := s.orderRepo.ListCompletedByStore(ctx, store.ID)
	if err != nil {
		return nil, cErr.DatabaseError("database GetAnalytics error")
	}
	stockCount, err := s.productRepo.Count(ctx, bson.M{"storeId": store.ID, "isArchived": false})
	if err != nil {
		return nil, cErr.DatabaseError("database GetAnalytics error")
	}

	response := &dto.AnalyticsResponseDto{
		SalesCount: int64(len(orders)),
		StockCount: stockCount,
		Graph:      buildRevenueGraph(orders, time.Now().UTC()),
	}
	for _, order := range orders {
		response.TotalRevenue += order.Total
	}
	return response, nil
}

// buildRevenueGraph 近 12 個月單月營收，最舊的月份排最前。
// 月份落點以 paidAt 為準，缺 paidAt 的舊資料退回 createdAt。
func buildRevenueGraph(orders []*model.Order, now time.Time) []dto.GraphPointDto {
	type monthKey struct {
		year  int
		month time.Month
	}
	totals := make(map[monthKey]float64)
	for _, order := range orders {
		at := order.CreatedAt
		if order.PaidAt != nil {
			at = *order.PaidAt
		}
		key := monthKey{year: at.Year(), month: at.Month()}
		totals[key] += order.Total
	}

	graph := make([]dto.GraphPointDto, 0, 12)
	cursor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -11, 0)
	for i := 0; i < 12; i++ {
		key := monthKey{year: cursor.Year(), month: cursor.Month()}
		graph = append(graph, dto.GraphPointDto{
			Name:  cursor.Month().String()[:3],
			Total: totals[key],
		})
		cursor = cursor.AddDate(0, 1, 0)
	}
	return graph
}
