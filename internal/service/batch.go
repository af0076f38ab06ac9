package service

import (
	"context"
	"errors"
	"strings"

	"backoffice/internal/core"
	"backoffice/internal/database/mongodb/model"
	"backoffice/internal/database/mongodb/repository"
	"backoffice/internal/dto"
	cErr "backoffice/internal/pkg/error"
	"backoffice/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// BatchService 產品批號登錄；公開端用批號查驗真偽
type BatchService struct {
	trace     *telemetry.Trace
	batchRepo *repository.BatchRepository
	audit     *AuditService
}

func NewBatchService(trace *telemetry.Trace, batchRepo *repository.BatchRepository, audit *AuditService) *BatchService {
	return &BatchService{trace: trace, batchRepo: batchRepo, audit: audit}
}

func (s *BatchService) CreateBatch(ctx context.Context, store *model.Store, createDto *dto.CreateBatchDto) (_ *model.Batch, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	batch := &model.Batch{
		StoreID: store.ID,
		BatchID: strings.TrimSpace(createDto.BatchID),
	}
	created, err := s.batchRepo.Create(ctx, batch)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.BadRequest("batch id already registered in this store")
		}
		return nil, cErr.DatabaseError("database CreateBatch error")
	}
	s.audit.Record(ctx, core.EntityBatch, core.AuditCreate, created.ID, store.ID, store.UserID)
	return created, nil
}

func (s *BatchService) GetBatch(ctx context.Context, store *model.Store, batchID primitive.ObjectID) (*model.Batch, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	batch, err := s.batchRepo.GetByID(ctx, batchID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("batch not found")
		}
		return nil, cErr.DatabaseError("database GetBatch error")
	}
	if batch.StoreID != store.ID {
		return nil, cErr.NotFound("batch not found")
	}
	return batch, nil
}

// LookupBatch 公開端以批號字串查驗
func (s *BatchService) LookupBatch(ctx context.Context, storeID primitive.ObjectID, batchID string) (*model.Batch, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	batch, err := s.batchRepo.GetByBatchID(ctx, storeID, strings.TrimSpace(batchID))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("batch not found")
		}
		return nil, cErr.DatabaseError("database LookupBatch error")
	}
	return batch, nil
}

func (s *BatchService) ListBatches(ctx context.Context, storeID primitive.ObjectID) ([]*model.Batch, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	batches, err := s.batchRepo.List(ctx, bson.M{"storeId": storeID})
	if err != nil {
		return nil, cErr.DatabaseError("database ListBatches error")
	}
	return batches, nil
}

func (s *BatchService) UpdateBatch(ctx context.Context, store *model.Store, batchID primitive.ObjectID, updateDto *dto.UpdateBatchDto) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if _, err := s.GetBatch(ctx, store, batchID); err != nil {
		return err
	}
	if updateDto.BatchID == nil {
		return nil
	}
	update := bson.M{"$set": bson.M{"batchId": strings.TrimSpace(*updateDto.BatchID)}}
	if _, err := s.batchRepo.UpdateByID(ctx, batchID, update); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return cErr.BadRequest("batch id already registered in this store")
		}
		return cErr.DatabaseError("database UpdateBatch error")
	}
	s.audit.Record(ctx, core.EntityBatch, core.AuditUpdate, batchID, store.ID, store.UserID)
	return nil
}

func (s *BatchService) DeleteBatch(ctx context.Context, store *model.Store, batchID primitive.ObjectID) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if _, err := s.GetBatch(ctx, store, batchID); err != nil {
		return err
	}
	if err := s.batchRepo.DeleteByID(ctx, batchID); err != nil {
		return cErr.DatabaseError("database DeleteBatch error")
	}
	s.audit.Record(ctx, core.EntityBatch, core.AuditDelete, batchID, store.ID, store.UserID)
	return nil
}
