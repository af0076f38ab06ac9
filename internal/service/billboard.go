package service

import (
	"context"
	"errors"

	"backoffice/config"
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

type BillboardService struct {
	trace         *telemetry.Trace
	mongoClient   *client.MongoClient
	conf          *config.Configuration
	storeRepo     *repository.StoreRepository
	billboardRepo *repository.BillboardRepository
	categoryRepo  *repository.CategoryRepository
	audit         *AuditService
}

func NewBillboardService(
	trace *telemetry.Trace,
	mongoClient *client.MongoClient,
	conf *config.Configuration,
	storeRepo *repository.StoreRepository,
	billboardRepo *repository.BillboardRepository,
	categoryRepo *repository.CategoryRepository,
	audit *AuditService,
) *BillboardService {
	return &BillboardService{
		trace:         trace,
		mongoClient:   mongoClient,
		conf:          conf,
		storeRepo:     storeRepo,
		billboardRepo: billboardRepo,
		categoryRepo:  categoryRepo,
		audit:         audit,
	}
}

// 建立看板：主寫入與 store 反向參照在同一交易內
func (s *BillboardService) CreateBillboard(ctx context.Context, store *model.Store, createDto *dto.CreateBillboardDto) (*model.Billboard, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	billboard := &model.Billboard{
		StoreID:  store.ID,
		Label:    createDto.Label,
		ImageUrl: createDto.ImageUrl,
	}

	_, err := s.mongoClient.WithTransaction(ctx, func(sessionContext mongo.SessionContext) (interface{}, error) {
		created, createError := s.billboardRepo.Create(sessionContext, billboard)
		if createError != nil {
			return nil, createError
		}
		if linkError := s.storeRepo.LinkChild(sessionContext, store.ID, core.StoreRefBillboards, created.ID); linkError != nil {
			return nil, linkError
		}
		return created, nil
	})
	if err != nil {
		return nil, cErr.DatabaseError("database CreateBillboard error")
	}

	s.audit.Record(ctx, core.EntityBillboard, core.AuditCreate, billboard.ID, store.ID, store.UserID)
	return billboard, nil
}

func (s *BillboardService) GetBillboard(ctx context.Context, store *model.Store, billboardID primitive.ObjectID) (*model.Billboard, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	billboard, err := s.billboardRepo.GetByID(ctx, billboardID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("billboard not found")
		}
		return nil, cErr.DatabaseError("database GetBillboard error")
	}
	if billboard.StoreID != store.ID {
		return nil, cErr.NotFound("billboard not found")
	}
	return billboard, nil
}

func (s *BillboardService) ListBillboards(ctx context.Context, storeID primitive.ObjectID) ([]*model.Billboard, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	billboards, err := s.billboardRepo.List(ctx, bson.M{"storeId": storeID})
	if err != nil {
		return nil, cErr.DatabaseError("database ListBillboards error")
	}
	return billboards, nil
}

func (s *BillboardService) UpdateBillboard(ctx context.Context, store *model.Store, billboardID primitive.ObjectID, updateDto *dto.UpdateBillboardDto) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if _, err := s.GetBillboard(ctx, store, billboardID); err != nil {
		return err
	}

	update := bson.M{}
	if updateDto.Label != nil {
		update["label"] = *updateDto.Label
	}
	if updateDto.ImageUrl != nil {
		update["imageUrl"] = *updateDto.ImageUrl
	}
	if len(update) == 0 {
		return nil
	}

	if _, err := s.billboardRepo.UpdateByID(ctx, billboardID, bson.M{"$set": update}); err != nil {
		return cErr.DatabaseError("database UpdateBillboard error")
	}
	s.audit.Record(ctx, core.EntityBillboard, core.AuditUpdate, billboardID, store.ID, store.UserID)
	return nil
}

// 刪除看板。預設政策是擋下仍被分類引用的看板；
// CATALOG.BILLBOARD_DELETE_DETACH 開啟時改為解除引用再刪除。
func (s *BillboardService) DeleteBillboard(ctx context.Context, store *model.Store, billboardID primitive.ObjectID) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if _, err := s.GetBillboard(ctx, store, billboardID); err != nil {
		return err
	}

	referencingCount, err := s.categoryRepo.CountByBillboard(ctx, billboardID)
	if err != nil {
		return cErr.DatabaseError("database DeleteBillboard error")
	}
	if referencingCount > 0 && !s.conf.Catalog.BillboardDeleteDetach {
		return cErr.BillboardInUse("billboard is still referenced by categories")
	}

	_, err = s.mongoClient.WithTransaction(ctx, func(sessionContext mongo.SessionContext) (interface{}, error) {
		if referencingCount > 0 {
			if _, detachError := s.categoryRepo.DetachBillboard(sessionContext, billboardID); detachError != nil {
				return nil, detachError
			}
		}
		if deleteError := s.billboardRepo.DeleteByID(sessionContext, billboardID); deleteError != nil {
			return nil, deleteError
		}
		if unlinkError := s.storeRepo.UnlinkChild(sessionContext, store.ID, core.StoreRefBillboards, billboardID); unlinkError != nil {
			return nil, unlinkError
		}
		return nil, nil
	})
	if err != nil {
		return cErr.DatabaseError("database DeleteBillboard error")
	}

	s.audit.Record(ctx, core.EntityBillboard, core.AuditDelete, billboardID, store.ID, store.UserID)
	return nil
}
