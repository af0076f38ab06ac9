package service

import (
	"context"
	"sync/atomic"
	"time"

	client "backoffice/internal/database/client"
)

type HealthService struct {
	live  atomic.Bool
	ready atomic.Bool

	mongoClient *client.MongoClient
	redisClient *client.RedisClient
}

func NewHealthService(mongoClient *client.MongoClient, redisClient *client.RedisClient) *HealthService {
	s := &HealthService{mongoClient: mongoClient, redisClient: redisClient}
	s.live.Store(true)
	s.ready.Store(false) // 啟動完成後再打開
	return s
}

func (s *HealthService) SetReady(v bool) {
	s.ready.Store(v)
}

func (s *HealthService) IsLive() bool {
	return s.live.Load()
}

func (s *HealthService) IsReady() bool {
	return s.ready.Load()
}

// CheckDependencies ping 後端儲存，回傳各依賴狀態
func (s *HealthService) CheckDependencies(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	status := map[string]string{"mongodb": "ok", "redis": "ok"}
	if err := s.mongoClient.Client().Ping(ctx, nil); err != nil {
		status["mongodb"] = err.Error()
	}
	if err := s.redisClient.Client().Ping(ctx).Err(); err != nil {
		status["redis"] = err.Error()
	}
	return status
}
