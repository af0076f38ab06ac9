package service

import (
	"context"

	"backoffice/internal/core"
	fluentdModel "backoffice/internal/database/fluentd/model"
	fluentdRepo "backoffice/internal/database/fluentd/repository"
	"backoffice/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// AuditService 把 catalog 異動送去 Fluentd，失敗只記 log 不影響主流程
type AuditService struct {
	logger  *zap.Logger
	logRepo *fluentdRepo.LogRepository
	metric  *telemetry.Metric
}

func NewAuditService(logger *zap.Logger, logRepo *fluentdRepo.LogRepository, metric *telemetry.Metric) *AuditService {
	return &AuditService{logger: logger, logRepo: logRepo, metric: metric}
}

func (s *AuditService) Record(
	ctx context.Context,
	entity core.CatalogEntity,
	action core.AuditAction,
	entityID primitive.ObjectID,
	storeID primitive.ObjectID,
	actorID string,
) {
	if s.metric.CatalogMutationsTotal != nil {
		s.metric.CatalogMutationsTotal.WithLabelValues(string(entity), string(action), "ok").Inc()
	}
	record := fluentdModel.AuditLog{
		ActorID:  actorID,
		StoreID:  storeID.Hex(),
		Entity:   string(entity),
		EntityID: entityID.Hex(),
		Action:   string(action),
	}
	if err := s.logRepo.LogAudit(ctx, record); err != nil {
		s.logger.Warn("failed to forward audit log",
			zap.String("entity", string(entity)),
			zap.String("action", string(action)),
			zap.Error(err))
	}
}
