package service

import (
	"context"
	"errors"

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

type StoreService struct {
	trace     *telemetry.Trace
	storeRepo *repository.StoreRepository
	audit     *AuditService
}

func NewStoreService(trace *telemetry.Trace, storeRepo *repository.StoreRepository, audit *AuditService) *StoreService {
	return &StoreService{trace: trace, storeRepo: storeRepo, audit: audit}
}

// 建立商店；同一使用者內名稱唯一
func (s *StoreService) CreateStore(ctx context.Context, userID string, createDto *dto.CreateStoreDto) (*model.Store, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	existing, err := s.storeRepo.GetByUserAndName(ctx, userID, createDto.Name)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, cErr.DatabaseError("database CreateStore error")
	}
	if existing != nil {
		return nil, cErr.BadRequest("store name already in use")
	}

	store := &model.Store{UserID: userID, Name: createDto.Name}
	created, err := s.storeRepo.Create(ctx, store)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.BadRequest("store name already in use")
		}
		return nil, cErr.DatabaseError("database CreateStore error")
	}
	s.audit.Record(ctx, core.EntityStore, core.AuditCreate, created.ID, created.ID, userID)
	return created, nil
}

func (s *StoreService) GetStore(ctx context.Context, storeID primitive.ObjectID) (*model.Store, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("store not found")
		}
		return nil, cErr.DatabaseError("database GetStore error")
	}
	return store, nil
}

// 列出使用者名下所有商店
func (s *StoreService) ListStores(ctx context.Context, userID string) ([]*model.Store, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	stores, err := s.storeRepo.List(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, cErr.DatabaseError("database ListStores error")
	}
	return stores, nil
}

func (s *StoreService) UpdateStore(ctx context.Context, store *model.Store, updateDto *dto.UpdateStoreDto) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	update := bson.M{}
	if updateDto.Name != nil {
		update["name"] = *updateDto.Name
	}
	if len(update) == 0 {
		return nil
	}

	if _, err := s.storeRepo.UpdateByID(ctx, store.ID, bson.M{"$set": update}); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound("store not found")
		}
		if mongo.IsDuplicateKeyError(err) {
			return cErr.BadRequest("store name already in use")
		}
		return cErr.DatabaseError("database UpdateStore error")
	}
	s.audit.Record(ctx, core.EntityStore, core.AuditUpdate, store.ID, store.ID, store.UserID)
	return nil
}

// 刪除商店本體；子實體文件不連動刪除，由 reconcile 收斂殘留參照
func (s *StoreService) DeleteStore(ctx context.Context, store *model.Store) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if err := s.storeRepo.DeleteByID(ctx, store.ID); err != nil {
		return cErr.DatabaseError("database DeleteStore error")
	}
	s.audit.Record(ctx, core.EntityStore, core.AuditDelete, store.ID, store.ID, store.UserID)
	return nil
}
