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
	"backoffice/internal/pkg/refdiff"
	"backoffice/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CategoryService struct {
	trace         *telemetry.Trace
	mongoClient   *client.MongoClient
	storeRepo     *repository.StoreRepository
	billboardRepo *repository.BillboardRepository
	categoryRepo  *repository.CategoryRepository
	audit         *AuditService
}

func NewCategoryService(
	trace *telemetry.Trace,
	mongoClient *client.MongoClient,
	storeRepo *repository.StoreRepository,
	billboardRepo *repository.BillboardRepository,
	categoryRepo *repository.CategoryRepository,
	audit *AuditService,
) *CategoryService {
	return &CategoryService{
		trace:         trace,
		mongoClient:   mongoClient,
		storeRepo:     storeRepo,
		billboardRepo: billboardRepo,
		categoryRepo:  categoryRepo,
		audit:         audit,
	}
}

// resolveBillboardRef 驗證 billboard 存在且屬於同一 store
func (s *CategoryService) resolveBillboardRef(ctx context.Context, store *model.Store, rawID string) (*primitive.ObjectID, error) {
	if rawID == "" {
		return nil, nil
	}
	billboardID, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return nil, cErr.ValidateErr("billboardId is not a valid id")
	}
	billboard, err := s.billboardRepo.GetByID(ctx, billboardID)
	if err != nil || billboard.StoreID != store.ID {
		return nil, cErr.ReferenceNotFound("billboard not found in this store")
	}
	return &billboardID, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, store *model.Store, createDto *dto.CreateCategoryDto) (*model.Category, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	billboardRef, err := s.resolveBillboardRef(ctx, store, createDto.BillboardID)
	if err != nil {
		return nil, err
	}

	category := &model.Category{
		StoreID:     store.ID,
		Name:        createDto.Name,
		ImageUrl:    createDto.ImageUrl,
		BillboardID: billboardRef,
	}

	_, err = s.mongoClient.WithTransaction(ctx, func(sessionContext mongo.SessionContext) (interface{}, error) {
		created, createError := s.categoryRepo.Create(sessionContext, category)
		if createError != nil {
			return nil, createError
		}
		if linkError := s.storeRepo.LinkChild(sessionContext, store.ID, core.StoreRefCategories, created.ID); linkError != nil {
			return nil, linkError
		}
		if billboardRef != nil {
			if linkError := s.billboardRepo.LinkCategory(sessionContext, *billboardRef, created.ID); linkError != nil {
				return nil, linkError
			}
		}
		return created, nil
	})
	if err != nil {
		return nil, cErr.DatabaseError("database CreateCategory error")
	}

	s.audit.Record(ctx, core.EntityCategory, core.AuditCreate, category.ID, store.ID, store.UserID)
	return category, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, store *model.Store, categoryID primitive.ObjectID) (*model.Category, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("category not found")
		}
		return nil, cErr.DatabaseError("database GetCategory error")
	}
	if category.StoreID != store.ID {
		return nil, cErr.NotFound("category not found")
	}
	return category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context, storeID primitive.ObjectID) ([]*model.Category, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	categories, err := s.categoryRepo.List(ctx, bson.M{"storeId": storeID})
	if err != nil {
		return nil, cErr.DatabaseError("database ListCategories error")
	}
	return categories, nil
}

// 更新分類；billboard 連結變動用 swap（解掉舊的、接上新的），交易內完成
func (s *CategoryService) UpdateCategory(ctx context.Context, store *model.Store, categoryID primitive.ObjectID, updateDto *dto.UpdateCategoryDto) error {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	category, err := s.GetCategory(ctx, store, categoryID)
	if err != nil {
		return err
	}

	update := bson.M{}
	unset := bson.M{}
	if updateDto.Name != nil {
		update["name"] = *updateDto.Name
	}
	if updateDto.ImageUrl != nil {
		update["imageUrl"] = *updateDto.ImageUrl
	}

	var detach, attach *primitive.ObjectID
	changed := false
	if updateDto.BillboardID != nil {
		newRef, resolveError := s.resolveBillboardRef(ctx, store, *updateDto.BillboardID)
		if resolveError != nil {
			return resolveError
		}
		detach, attach, changed = refdiff.Swap(category.BillboardID, newRef)
		if changed {
			if newRef != nil {
				update["billboardId"] = *newRef
			} else {
				unset["billboardId"] = ""
			}
		}
	}

	if len(update) == 0 && len(unset) == 0 && !changed {
		return nil
	}

	updateDoc := bson.M{}
	if len(update) > 0 {
		updateDoc["$set"] = update
	}
	if len(unset) > 0 {
		updateDoc["$unset"] = unset
	}

	_, err = s.mongoClient.WithTransaction(ctx, func(sessionContext mongo.SessionContext) (interface{}, error) {
		if len(updateDoc) > 0 {
			if _, updateError := s.categoryRepo.UpdateByID(sessionContext, categoryID, updateDoc); updateError != nil {
				return nil, updateError
			}
		}
		if detach != nil {
			if unlinkError := s.billboardRepo.UnlinkCategory(sessionContext, *detach, categoryID); unlinkError != nil {
				return nil, unlinkError
			}
		}
		if attach != nil {
			if linkError := s.billboardRepo.LinkCategory(sessionContext, *attach, categoryID); linkError != nil {
				return nil, linkError
			}
		}
		return nil, nil
	})
	if err != nil {
		return cErr.DatabaseError("database UpdateCategory error")
	}

	s.trace.ApplyTraceAttributes(span, core.TraceFanoutMeta{
		Entity:  string(core.EntityCategory),
		Action:  string(core.AuditUpdate),
		StoreID: store.ID.Hex(),
	})
	s.audit.Record(ctx, core.EntityCategory, core.AuditUpdate, categoryID, store.ID, store.UserID)
	return nil
}

// 刪除分類：仍掛著商品或組合的分類不可刪
func (s *CategoryService) DeleteCategory(ctx context.Context, store *model.Store, categoryID primitive.ObjectID) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	category, err := s.GetCategory(ctx, store, categoryID)
	if err != nil {
		return err
	}
	if len(category.Products) > 0 || len(category.Combos) > 0 {
		return cErr.BadRequest("category still has products or combos")
	}

	_, err = s.mongoClient.WithTransaction(ctx, func(sessionContext mongo.SessionContext) (interface{}, error) {
		if deleteError := s.categoryRepo.DeleteByID(sessionContext, categoryID); deleteError != nil {
			return nil, deleteError
		}
		if category.BillboardID != nil {
			if unlinkError := s.billboardRepo.UnlinkCategory(sessionContext, *category.BillboardID, categoryID); unlinkError != nil {
				return nil, unlinkError
			}
		}
		if unlinkError := s.storeRepo.UnlinkChild(sessionContext, store.ID, core.StoreRefCategories, categoryID); unlinkError != nil {
			return nil, unlinkError
		}
		return nil, nil
	})
	if err != nil {
		return cErr.DatabaseError("database DeleteCategory error")
	}

	s.audit.Record(ctx, core.EntityCategory, core.AuditDelete, categoryID, store.ID, store.UserID)
	return nil
}
