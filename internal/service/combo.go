package service

import (
	"context"
	"errors"
	"time"

	"backoffice/internal/core"
	client "backoffice/internal/database/client"
	"backoffice/internal/database/mongodb/model"
	"backoffice/internal/database/mongodb/repository"
	"backoffice/internal/dto"
	cErr "backoffice/internal/pkg/error"
	"backoffice/internal/pkg/refdiff"
	"backoffice/internal/telemetry"
	"backoffice/utils/slug"
	"backoffice/utils/validate"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ComboService struct {
	trace        *telemetry.Trace
	metric       *telemetry.Metric
	mongoClient  *client.MongoClient
	storeRepo    *repository.StoreRepository
	categoryRepo *repository.CategoryRepository
	sizeRepo     *repository.SizeRepository
	flavourRepo  *repository.FlavourRepository
	comboRepo    *repository.ComboRepository
	imageRepo    *repository.ImageRepository
	feedbackRepo *repository.FeedbackRepository
	audit        *AuditService
}

func NewComboService(
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	mongoClient *client.MongoClient,
	storeRepo *repository.StoreRepository,
	categoryRepo *repository.CategoryRepository,
	sizeRepo *repository.SizeRepository,
	flavourRepo *repository.FlavourRepository,
	comboRepo *repository.ComboRepository,
	imageRepo *repository.ImageRepository,
	feedbackRepo *repository.FeedbackRepository,
	audit *AuditService,
) *ComboService {
	return &ComboService{
		trace:        trace,
		metric:       metric,
		mongoClient:  mongoClient,
		storeRepo:    storeRepo,
		categoryRepo: categoryRepo,
		sizeRepo:     sizeRepo,
		flavourRepo:  flavourRepo,
		comboRepo:    comboRepo,
		imageRepo:    imageRepo,
		feedbackRepo: feedbackRepo,
		audit:        audit,
	}
}

func (s *ComboService) resolveCategoryRef(ctx context.Context, store *model.Store, rawID string) (primitive.ObjectID, error) {
	categoryID, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return primitive.NilObjectID, cErr.ValidateErr("categoryId is not a valid id")
	}
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil || category.StoreID != store.ID {
		return primitive.NilObjectID, cErr.ReferenceNotFound("category not found in this store")
	}
	return categoryID, nil
}

func (s *ComboService) resolveRefs(ctx context.Context, store *model.Store, rawSizeIDs, rawFlavourIDs []string) (sizeIDs, flavourIDs []primitive.ObjectID, returnedError error) {
	sizeIDs, err := validate.ParseObjectIDs(rawSizeIDs)
	if err != nil {
		return nil, nil, cErr.ValidateErr("sizeIds contain an invalid id")
	}
	flavourIDs, err = validate.ParseObjectIDs(rawFlavourIDs)
	if err != nil {
		return nil, nil, cErr.ValidateErr("flavourIds contain an invalid id")
	}
	if len(sizeIDs) > 0 {
		count, countError := s.sizeRepo.CountByIDs(ctx, store.ID, sizeIDs)
		if countError != nil {
			return nil, nil, cErr.DatabaseError("database resolveRefs error")
		}
		if count != int64(len(sizeIDs)) {
			return nil, nil, cErr.ReferenceNotFound("one or more sizes not found in this store")
		}
	}
	if len(flavourIDs) > 0 {
		count, countError := s.flavourRepo.CountByIDs(ctx, store.ID, flavourIDs)
		if countError != nil {
			return nil, nil, cErr.DatabaseError("database resolveRefs error")
		}
		if count != int64(len(flavourIDs)) {
			return nil, nil, cErr.ReferenceNotFound("one or more flavours not found in this store")
		}
	}
	return sizeIDs, flavourIDs, nil
}

func (s *ComboService) resolveSlug(ctx context.Context, storeID primitive.ObjectID, name string, excludeID *primitive.ObjectID) (string, error) {
	candidate := slug.Make(name)
	exists, err := s.comboRepo.SlugExists(ctx, storeID, candidate, excludeID)
	if err != nil {
		return "", cErr.DatabaseError("database resolveSlug error")
	}
	if !exists {
		return candidate, nil
	}
	candidate = slug.WithSuffix(candidate, time.Now().UTC())
	exists, err = s.comboRepo.SlugExists(ctx, storeID, candidate, excludeID)
	if err != nil {
		return "", cErr.DatabaseError("database resolveSlug error")
	}
	if exists {
		return "", cErr.BadRequest("could not derive a unique slug for this name", cErr.SLUG_CONFLICT)
	}
	return candidate, nil
}

func (s *ComboService) CreateCombo(ctx context.Context, store *model.Store, createDto *dto.CreateComboDto) (_ *model.Combo, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx, string(core.SpanFanout))
	defer func() { end(returnedError) }()

	categoryID, err := s.resolveCategoryRef(ctx, store, createDto.CategoryID)
	if err != nil {
		return nil, err
	}
	sizeIDs, flavourIDs, err := s.resolveRefs(ctx, store, createDto.SizeIDs, createDto.FlavourIDs)
	if err != nil {
		return nil, err
	}
	comboSlug, err := s.resolveSlug(ctx, store.ID, createDto.Name, nil)
	if err != nil {
		return nil, err
	}

	combo := &model.Combo{
		StoreID:     store.ID,
		CategoryID:  categoryID,
		Name:        createDto.Name,
		Slug:        comboSlug,
		Description: createDto.Description,
		Content:     createDto.Content,
		ContentHtml: createDto.ContentHtml,
		Price:       createDto.Price,
		FakePrice:   createDto.FakePrice,
		IsFeatured:  createDto.IsFeatured,
		IsArchived:  createDto.IsArchived,
		SizeIDs:     sizeIDs,
		FlavourIDs:  flavourIDs,
	}

	_, err = s.mongoClient.WithTransaction(ctx, func(sessionContext mongo.SessionContext) (interface{}, error) {
		created, createError := s.comboRepo.Create(sessionContext, combo)
		if createError != nil {
			return nil, createError
		}
		if len(createDto.Images) > 0 {
			imageIDs, imageError := s.replaceComboImages(sessionContext, created.ID, createDto.Images)
			if imageError != nil {
				return nil, imageError
			}
			if setError := s.comboRepo.SetImages(sessionContext, created.ID, imageIDs); setError != nil {
				return nil, setError
			}
			created.Images = imageIDs
		}
		if linkError := s.storeRepo.LinkChild(sessionContext, store.ID, core.StoreRefCombos, created.ID); linkError != nil {
			return nil, linkError
		}
		if linkError := s.categoryRepo.LinkCombo(sessionContext, categoryID, created.ID); linkError != nil {
			return nil, linkError
		}
		if linkError := s.sizeRepo.LinkCombo(sessionContext, sizeIDs, created.ID); linkError != nil {
			return nil, linkError
		}
		if linkError := s.flavourRepo.LinkCombo(sessionContext, flavourIDs, created.ID); linkError != nil {
			return nil, linkError
		}
		return created, nil
	})
	if err != nil {
		s.countFanoutFailure()
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.BadRequest("slug already in use in this store", cErr.SLUG_CONFLICT)
		}
		return nil, cErr.FanoutError("failed to create combo with references")
	}

	s.trace.ApplyTraceAttributes(span, core.TraceFanoutMeta{
		Entity:  string(core.EntityCombo),
		Action:  string(core.AuditCreate),
		StoreID: store.ID.Hex(),
		Added:   len(sizeIDs) + len(flavourIDs) + 2,
	})
	s.audit.Record(ctx, core.EntityCombo, core.AuditCreate, combo.ID, store.ID, store.UserID)
	return combo, nil
}

func (s *ComboService) GetCombo(ctx context.Context, store *model.Store, comboID primitive.ObjectID) (*model.Combo, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	combo, err := s.comboRepo.GetByID(ctx, comboID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("combo not found")
		}
		return nil, cErr.DatabaseError("database GetCombo error")
	}
	if combo.StoreID != store.ID {
		return nil, cErr.NotFound("combo not found")
	}
	return combo, nil
}

func (s *ComboService) GetComboBySlug(ctx context.Context, storeID primitive.ObjectID, comboSlug string) (*model.Combo, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	combo, err := s.comboRepo.GetBySlug(ctx, storeID, comboSlug)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("combo not found")
		}
		return nil, cErr.DatabaseError("database GetComboBySlug error")
	}
	if combo.IsArchived {
		return nil, cErr.NotFound("combo not found")
	}
	return combo, nil
}

func (s *ComboService) ListCombos(ctx context.Context, listOptions core.ListOptions) ([]*model.Combo, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	combos, err := s.comboRepo.List(ctx, listOptions)
	if err != nil {
		return nil, cErr.DatabaseError("database ListCombos error")
	}
	return combos, nil
}

func (s *ComboService) UpdateCombo(ctx context.Context, store *model.Store, comboID primitive.ObjectID, updateDto *dto.UpdateComboDto) (returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx, string(core.SpanFanout))
	defer func() { end(returnedError) }()

	combo, err := s.GetCombo(ctx, store, comboID)
	if err != nil {
		return err
	}

	update := bson.M{}

	if updateDto.Name != nil && *updateDto.Name != combo.Name {
		newSlug, slugError := s.resolveSlug(ctx, store.ID, *updateDto.Name, &comboID)
		if slugError != nil {
			return slugError
		}
		update["name"] = *updateDto.Name
		update["slug"] = newSlug
	}
	if updateDto.Description != nil {
		update["description"] = *updateDto.Description
	}
	if updateDto.Content != nil {
		update["content"] = updateDto.Content
	}
	if updateDto.ContentHtml != nil {
		update["contentHtml"] = *updateDto.ContentHtml
	}
	if updateDto.Price != nil {
		update["price"] = *updateDto.Price
	}
	if updateDto.FakePrice != nil {
		update["fakePrice"] = *updateDto.FakePrice
	}
	if updateDto.IsFeatured != nil {
		update["isFeatured"] = *updateDto.IsFeatured
	}
	if updateDto.IsArchived != nil {
		update["isArchived"] = *updateDto.IsArchived
	}

	var categoryDetach, categoryAttach *primitive.ObjectID
	if updateDto.CategoryID != nil {
		newCategoryID, resolveError := s.resolveCategoryRef(ctx, store, *updateDto.CategoryID)
		if resolveError != nil {
			return resolveError
		}
		oldCategoryID := combo.CategoryID
		var changed bool
		categoryDetach, categoryAttach, changed = refdiff.Swap(&oldCategoryID, &newCategoryID)
		if changed {
			update["categoryId"] = newCategoryID
		}
	}

	sizeChange := refdiff.Change{}
	flavourChange := refdiff.Change{}
	if updateDto.SizeIDs != nil || updateDto.FlavourIDs != nil {
		rawSizeIDs := updateDto.SizeIDs
		if rawSizeIDs == nil {
			rawSizeIDs = hexIDs(combo.SizeIDs)
		}
		rawFlavourIDs := updateDto.FlavourIDs
		if rawFlavourIDs == nil {
			rawFlavourIDs = hexIDs(combo.FlavourIDs)
		}
		newSizeIDs, newFlavourIDs, resolveError := s.resolveRefs(ctx, store, rawSizeIDs, rawFlavourIDs)
		if resolveError != nil {
			return resolveError
		}
		if updateDto.SizeIDs != nil {
			sizeChange = refdiff.Diff(combo.SizeIDs, newSizeIDs)
			if !sizeChange.Empty() {
				update["sizeIds"] = newSizeIDs
			}
		}
		if updateDto.FlavourIDs != nil {
			flavourChange = refdiff.Diff(combo.FlavourIDs, newFlavourIDs)
			if !flavourChange.Empty() {
				update["flavourIds"] = newFlavourIDs
			}
		}
	}

	replaceImages := updateDto.Images != nil

	if len(update) == 0 && categoryDetach == nil && sizeChange.Empty() && flavourChange.Empty() && !replaceImages {
		return nil
	}

	_, err = s.mongoClient.WithTransaction(ctx, func(sessionContext mongo.SessionContext) (interface{}, error) {
		if len(update) > 0 {
			if _, updateError := s.comboRepo.UpdateByID(sessionContext, comboID, bson.M{"$set": update}); updateError != nil {
				return nil, updateError
			}
		}
		if categoryDetach != nil {
			if unlinkError := s.categoryRepo.UnlinkCombo(sessionContext, *categoryDetach, comboID); unlinkError != nil {
				return nil, unlinkError
			}
		}
		if categoryAttach != nil {
			if linkError := s.categoryRepo.LinkCombo(sessionContext, *categoryAttach, comboID); linkError != nil {
				return nil, linkError
			}
		}
		if linkError := s.sizeRepo.LinkCombo(sessionContext, sizeChange.Added, comboID); linkError != nil {
			return nil, linkError
		}
		if unlinkError := s.sizeRepo.UnlinkCombo(sessionContext, sizeChange.Removed, comboID); unlinkError != nil {
			return nil, unlinkError
		}
		if linkError := s.flavourRepo.LinkCombo(sessionContext, flavourChange.Added, comboID); linkError != nil {
			return nil, linkError
		}
		if unlinkError := s.flavourRepo.UnlinkCombo(sessionContext, flavourChange.Removed, comboID); unlinkError != nil {
			return nil, unlinkError
		}
		if replaceImages {
			if _, deleteError := s.imageRepo.DeleteByCombo(sessionContext, comboID); deleteError != nil {
				return nil, deleteError
			}
			imageIDs, imageError := s.replaceComboImages(sessionContext, comboID, *updateDto.Images)
			if imageError != nil {
				return nil, imageError
			}
			if setError := s.comboRepo.SetImages(sessionContext, comboID, imageIDs); setError != nil {
				return nil, setError
			}
		}
		return nil, nil
	})
	if err != nil {
		s.countFanoutFailure()
		if mongo.IsDuplicateKeyError(err) {
			return cErr.BadRequest("slug already in use in this store", cErr.SLUG_CONFLICT)
		}
		return cErr.FanoutError("failed to update combo references")
	}

	s.trace.ApplyTraceAttributes(span, core.TraceFanoutMeta{
		Entity:  string(core.EntityCombo),
		Action:  string(core.AuditUpdate),
		StoreID: store.ID.Hex(),
		Added:   len(sizeChange.Added) + len(flavourChange.Added),
		Removed: len(sizeChange.Removed) + len(flavourChange.Removed),
	})
	s.audit.Record(ctx, core.EntityCombo, core.AuditUpdate, comboID, store.ID, store.UserID)
	return nil
}

func (s *ComboService) DeleteCombo(ctx context.Context, store *model.Store, comboID primitive.ObjectID) (returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx, string(core.SpanFanout))
	defer func() { end(returnedError) }()

	combo, err := s.GetCombo(ctx, store, comboID)
	if err != nil {
		return err
	}

	_, err = s.mongoClient.WithTransaction(ctx, func(sessionContext mongo.SessionContext) (interface{}, error) {
		if deleteError := s.comboRepo.DeleteByID(sessionContext, comboID); deleteError != nil {
			return nil, deleteError
		}
		if _, deleteError := s.imageRepo.DeleteByCombo(sessionContext, comboID); deleteError != nil {
			return nil, deleteError
		}
		if _, deleteError := s.feedbackRepo.DeleteByIDs(sessionContext, combo.Feedbacks); deleteError != nil {
			return nil, deleteError
		}
		if unlinkError := s.categoryRepo.UnlinkCombo(sessionContext, combo.CategoryID, comboID); unlinkError != nil {
			return nil, unlinkError
		}
		if unlinkError := s.sizeRepo.UnlinkCombo(sessionContext, combo.SizeIDs, comboID); unlinkError != nil {
			return nil, unlinkError
		}
		if unlinkError := s.flavourRepo.UnlinkCombo(sessionContext, combo.FlavourIDs, comboID); unlinkError != nil {
			return nil, unlinkError
		}
		if unlinkError := s.storeRepo.UnlinkChild(sessionContext, store.ID, core.StoreRefCombos, comboID); unlinkError != nil {
			return nil, unlinkError
		}
		return nil, nil
	})
	if err != nil {
		s.countFanoutFailure()
		return cErr.FanoutError("failed to delete combo with references")
	}

	s.trace.ApplyTraceAttributes(span, core.TraceFanoutMeta{
		Entity:  string(core.EntityCombo),
		Action:  string(core.AuditDelete),
		StoreID: store.ID.Hex(),
		Removed: len(combo.SizeIDs) + len(combo.FlavourIDs) + 2,
	})
	s.audit.Record(ctx, core.EntityCombo, core.AuditDelete, comboID, store.ID, store.UserID)
	return nil
}

func (s *ComboService) replaceComboImages(ctx context.Context, comboID primitive.ObjectID, urls []string) ([]primitive.ObjectID, error) {
	images := make([]*model.Image, 0, len(urls))
	for _, url := range urls {
		owner := comboID
		images = append(images, &model.Image{Url: url, ComboID: &owner})
	}
	created, err := s.imageRepo.CreateMany(ctx, images)
	if err != nil {
		return nil, err
	}
	imageIDs := make([]primitive.ObjectID, 0, len(created))
	for _, image := range created {
		imageIDs = append(imageIDs, image.ID)
	}
	return imageIDs, nil
}

func (s *ComboService) countFanoutFailure() {
	if s.metric.FanoutFailuresTotal != nil {
		s.metric.FanoutFailuresTotal.WithLabelValues(string(core.EntityCombo)).Inc()
	}
}

// hexIDs ObjectID 清單轉 hex 字串清單
func hexIDs(ids []primitive.ObjectID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Hex())
	}
	return out
}
