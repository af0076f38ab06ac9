package service

import (
	"context"
	"errors"

	"backoffice/internal/core"
	client "backoffice/internal/database/client"
	"backoffice/internal/database/mongodb/model"
	"backoffice/internal/database/mongodb/repository"
	"backoffice/internal/dto"
	cErr "backoffice/internal/pkg/error"
	"backoffice/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type SizeService struct {
	trace       *telemetry.Trace
	mongoClient *client.MongoClient
	storeRepo   *repository.StoreRepository
	sizeRepo    *repository.SizeRepository
	audit       *AuditService
}

func NewSizeService(
	trace *telemetry.Trace,
	mongoClient *client.MongoClient,
	storeRepo *repository.StoreRepository,
	sizeRepo *repository.SizeRepository,
	audit *AuditService,
) *SizeService {
	return &SizeService{trace: trace, mongoClient: mongoClient, storeRepo: storeRepo, sizeRepo: sizeRepo, audit: audit}
}

func (s *SizeService) CreateSize(ctx context.Context, store *model.Store, createDto *dto.CreateSizeDto) (*model.Size, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	size := &model.Size{StoreID: store.ID, Name: createDto.Name, Value: createDto.Value}

	_, err := s.mongoClient.WithTransaction(ctx, func(sessionContext mongo.SessionContext) (interface{}, error) {
		created, createError := s.sizeRepo.Create(sessionContext, size)
		if createError != nil {
			return nil, createError
		}
		if linkError := s.storeRepo.LinkChild(sessionContext, store.ID, core.StoreRefSizes, created.ID); linkError != nil {
			return nil, linkError
		}
		return created, nil
	})
	if err != nil {
		return nil, cErr.DatabaseError("database CreateSize error")
	}

	s.audit.Record(ctx, core.EntitySize, core.AuditCreate, size.ID, store.ID, store.UserID)
	return size, nil
}

func (s *SizeService) GetSize(ctx context.Context, store *model.Store, sizeID primitive.ObjectID) (*model.Size, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	size, err := s.sizeRepo.GetByID(ctx, sizeID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("size not found")
		}
		return nil, cErr.DatabaseError("database GetSize error")
	}
	if size.StoreID != store.ID {
		return nil, cErr.NotFound("size not found")
	}
	return size, nil
}

func (s *SizeService) ListSizes(ctx context.Context, storeID primitive.ObjectID) ([]*model.Size, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	sizes, err := s.sizeRepo.List(ctx, bson.M{"storeId": storeID})
	if err != nil {
		return nil, cErr.DatabaseError("database ListSizes error")
	}
	return sizes, nil
}

func (s *SizeService) UpdateSize(ctx context.Context, store *model.Store, sizeID primitive.ObjectID, updateDto *dto.UpdateSizeDto) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if _, err := s.GetSize(ctx, store, sizeID); err != nil {
		return err
	}

	update := bson.M{}
	if updateDto.Name != nil {
		update["name"] = *updateDto.Name
	}
	if updateDto.Value != nil {
		update["value"] = *updateDto.Value
	}
	if len(update) == 0 {
		return nil
	}

	if _, err := s.sizeRepo.UpdateByID(ctx, sizeID, bson.M{"$set": update}); err != nil {
		return cErr.DatabaseError("database UpdateSize error")
	}
	s.audit.Record(ctx, core.EntitySize, core.AuditUpdate, sizeID, store.ID, store.UserID)
	return nil
}

// 刪除規格：仍被商品或組合引用時不可刪
func (s *SizeService) DeleteSize(ctx context.Context, store *model.Store, sizeID primitive.ObjectID) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	size, err := s.GetSize(ctx, store, sizeID)
	if err != nil {
		return err
	}
	if len(size.Products) > 0 || len(size.Combos) > 0 {
		return cErr.BadRequest("size still referenced by products or combos")
	}

	_, err = s.mongoClient.WithTransaction(ctx, func(sessionContext mongo.SessionContext) (interface{}, error) {
		if deleteError := s.sizeRepo.DeleteByID(sessionContext, sizeID); deleteError != nil {
			return nil, deleteError
		}
		if unlinkError := s.storeRepo.UnlinkChild(sessionContext, store.ID, core.StoreRefSizes, sizeID); unlinkError != nil {
			return nil, unlinkError
		}
		return nil, nil
	})
	if err != nil {
		return cErr.DatabaseError("database DeleteSize error")
	}

	s.audit.Record(ctx, core.EntitySize, core.AuditDelete, sizeID, store.ID, store.UserID)
	return nil
}
