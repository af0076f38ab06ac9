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

type ProductService struct {
	trace        *telemetry.Trace
	metric       *telemetry.Metric
	mongoClient  *client.MongoClient
	storeRepo    *repository.StoreRepository
	categoryRepo *repository.CategoryRepository
	sizeRepo     *repository.SizeRepository
	flavourRepo  *repository.FlavourRepository
	productRepo  *repository.ProductRepository
	imageRepo    *repository.ImageRepository
	feedbackRepo *repository.FeedbackRepository
	audit        *AuditService
}

func NewProductService(
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	mongoClient *client.MongoClient,
	storeRepo *repository.StoreRepository,
	categoryRepo *repository.CategoryRepository,
	sizeRepo *repository.SizeRepository,
	flavourRepo *repository.FlavourRepository,
	productRepo *repository.ProductRepository,
	imageRepo *repository.ImageRepository,
	feedbackRepo *repository.FeedbackRepository,
	audit *AuditService,
) *ProductService {
	return &ProductService{
		trace:        trace,
		metric:       metric,
		mongoClient:  mongoClient,
		storeRepo:    storeRepo,
		categoryRepo: categoryRepo,
		sizeRepo:     sizeRepo,
		flavourRepo:  flavourRepo,
		productRepo:  productRepo,
		imageRepo:    imageRepo,
		feedbackRepo: feedbackRepo,
		audit:        audit,
	}
}

// ==== 參照驗證 ====

func (s *ProductService) resolveCategoryRef(ctx context.Context, store *model.Store, rawID string) (primitive.ObjectID, error) {
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

func (s *ProductService) resolveFlavourRefs(ctx context.Context, store *model.Store, rawIDs []string) ([]primitive.ObjectID, error) {
	flavourIDs, err := validate.ParseObjectIDs(rawIDs)
	if err != nil {
		return nil, cErr.ValidateErr("flavourIds contain an invalid id")
	}
	if len(flavourIDs) == 0 {
		return []primitive.ObjectID{}, nil
	}
	count, err := s.flavourRepo.CountByIDs(ctx, store.ID, flavourIDs)
	if err != nil {
		return nil, cErr.DatabaseError("database resolveFlavourRefs error")
	}
	if count != int64(len(flavourIDs)) {
		return nil, cErr.ReferenceNotFound("one or more flavours not found in this store")
	}
	return flavourIDs, nil
}

func (s *ProductService) resolveSizeTuples(ctx context.Context, store *model.Store, tuples []dto.ProductSizeDto) ([]model.ProductSize, []primitive.ObjectID, error) {
	sizes := make([]model.ProductSize, 0, len(tuples))
	sizeIDs := make([]primitive.ObjectID, 0, len(tuples))
	seen := map[primitive.ObjectID]struct{}{}
	for _, tuple := range tuples {
		sizeID, err := primitive.ObjectIDFromHex(tuple.SizeID)
		if err != nil {
			return nil, nil, cErr.ValidateErr("sizes contain an invalid sizeId")
		}
		if _, duplicated := seen[sizeID]; duplicated {
			return nil, nil, cErr.ValidateErr("sizes contain a duplicated sizeId")
		}
		seen[sizeID] = struct{}{}
		sizes = append(sizes, model.ProductSize{SizeID: sizeID, Price: tuple.Price, FakePrice: tuple.FakePrice})
		sizeIDs = append(sizeIDs, sizeID)
	}
	count, err := s.sizeRepo.CountByIDs(ctx, store.ID, sizeIDs)
	if err != nil {
		return nil, nil, cErr.DatabaseError("database resolveSizeTuples error")
	}
	if count != int64(len(sizeIDs)) {
		return nil, nil, cErr.ReferenceNotFound("one or more sizes not found in this store")
	}
	return sizes, sizeIDs, nil
}

// resolveSlug 產生 store 內唯一 slug；撞名時補上 unix timestamp 再試一次
func (s *ProductService) resolveSlug(ctx context.Context, storeID primitive.ObjectID, name string, excludeID *primitive.ObjectID) (string, error) {
	candidate := slug.Make(name)
	exists, err := s.productRepo.SlugExists(ctx, storeID, candidate, excludeID)
	if err != nil {
		return "", cErr.DatabaseError("database resolveSlug error")
	}
	if !exists {
		return candidate, nil
	}
	candidate = slug.WithSuffix(candidate, time.Now().UTC())
	exists, err = s.productRepo.SlugExists(ctx, storeID, candidate, excludeID)
	if err != nil {
		return "", cErr.DatabaseError("database resolveSlug error")
	}
	if exists {
		return "", cErr.BadRequest("could not derive a unique slug for this name", cErr.SLUG_CONFLICT)
	}
	return candidate, nil
}

// ==== CRUD + fan-out ====

func (s *ProductService) CreateProduct(ctx context.Context, store *model.Store, createDto *dto.CreateProductDto) (_ *model.Product, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx, string(core.SpanFanout))
	defer func() { end(returnedError) }()

	categoryID, err := s.resolveCategoryRef(ctx, store, createDto.CategoryID)
	if err != nil {
		return nil, err
	}
	flavourIDs, err := s.resolveFlavourRefs(ctx, store, createDto.FlavourIDs)
	if err != nil {
		return nil, err
	}
	sizes, sizeIDs, err := s.resolveSizeTuples(ctx, store, createDto.Sizes)
	if err != nil {
		return nil, err
	}
	productSlug, err := s.resolveSlug(ctx, store.ID, createDto.Name, nil)
	if err != nil {
		return nil, err
	}

	product := &model.Product{
		StoreID:        store.ID,
		CategoryID:     categoryID,
		Name:           createDto.Name,
		Slug:           productSlug,
		Description:    createDto.Description,
		Content:        createDto.Content,
		ContentHtml:    createDto.ContentHtml,
		Features:       createDto.Features,
		SuggestedUse:   createDto.SuggestedUse,
		Benefits:       createDto.Benefits,
		NutritionalUse: createDto.NutritionalUse,
		IsFeatured:     createDto.IsFeatured,
		IsArchived:     createDto.IsArchived,
		FlavourIDs:     flavourIDs,
		Sizes:          sizes,
	}

	_, err = s.mongoClient.WithTransaction(ctx, func(sessionContext mongo.SessionContext) (interface{}, error) {
		created, createError := s.productRepo.Create(sessionContext, product)
		if createError != nil {
			return nil, createError
		}
		if len(createDto.Images) > 0 {
			imageIDs, imageError := s.replaceProductImages(sessionContext, created.ID, createDto.Images)
			if imageError != nil {
				return nil, imageError
			}
			if setError := s.productRepo.SetImages(sessionContext, created.ID, imageIDs); setError != nil {
				return nil, setError
			}
			created.Images = imageIDs
		}
		if linkError := s.storeRepo.LinkChild(sessionContext, store.ID, core.StoreRefProducts, created.ID); linkError != nil {
			return nil, linkError
		}
		if linkError := s.categoryRepo.LinkProduct(sessionContext, categoryID, created.ID); linkError != nil {
			return nil, linkError
		}
		if linkError := s.sizeRepo.LinkProduct(sessionContext, sizeIDs, created.ID); linkError != nil {
			return nil, linkError
		}
		if linkError := s.flavourRepo.LinkProduct(sessionContext, flavourIDs, created.ID); linkError != nil {
			return nil, linkError
		}
		return created, nil
	})
	if err != nil {
		s.countFanoutFailure(core.EntityProduct)
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.BadRequest("slug already in use in this store", cErr.SLUG_CONFLICT)
		}
		return nil, cErr.FanoutError("failed to create product with references")
	}

	s.trace.ApplyTraceAttributes(span, core.TraceFanoutMeta{
		Entity:  string(core.EntityProduct),
		Action:  string(core.AuditCreate),
		StoreID: store.ID.Hex(),
		Added:   len(sizeIDs) + len(flavourIDs) + 2,
	})
	s.audit.Record(ctx, core.EntityProduct, core.AuditCreate, product.ID, store.ID, store.UserID)
	return product, nil
}

func (s *ProductService) GetProduct(ctx context.Context, store *model.Store, productID primitive.ObjectID) (*model.Product, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("product not found")
		}
		return nil, cErr.DatabaseError("database GetProduct error")
	}
	if product.StoreID != store.ID {
		return nil, cErr.NotFound("product not found")
	}
	return product, nil
}

func (s *ProductService) GetProductBySlug(ctx context.Context, storeID primitive.ObjectID, productSlug string) (*model.Product, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	product, err := s.productRepo.GetBySlug(ctx, storeID, productSlug)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("product not found")
		}
		return nil, cErr.DatabaseError("database GetProductBySlug error")
	}
	if product.IsArchived {
		return nil, cErr.NotFound("product not found")
	}
	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context, listOptions core.ListOptions) ([]*model.Product, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	products, err := s.productRepo.List(ctx, listOptions)
	if err != nil {
		return nil, cErr.DatabaseError("database ListProducts error")
	}
	return products, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, store *model.Store, productID primitive.ObjectID, updateDto *dto.UpdateProductDto) (returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx, string(core.SpanFanout))
	defer func() { end(returnedError) }()

	product, err := s.GetProduct(ctx, store, productID)
	if err != nil {
		return err
	}

	update := bson.M{}

	// 名稱變更才重新產 slug；名稱沒動 slug 就保持原樣
	if updateDto.Name != nil && *updateDto.Name != product.Name {
		newSlug, slugError := s.resolveSlug(ctx, store.ID, *updateDto.Name, &productID)
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
	if updateDto.Features != nil {
		update["features"] = updateDto.Features
	}
	if updateDto.SuggestedUse != nil {
		update["suggestedUse"] = *updateDto.SuggestedUse
	}
	if updateDto.Benefits != nil {
		update["benefits"] = *updateDto.Benefits
	}
	if updateDto.NutritionalUse != nil {
		update["nutritionalUse"] = *updateDto.NutritionalUse
	}
	if updateDto.IsFeatured != nil {
		update["isFeatured"] = *updateDto.IsFeatured
	}
	if updateDto.IsArchived != nil {
		update["isArchived"] = *updateDto.IsArchived
	}

	// category swap
	var categoryDetach, categoryAttach *primitive.ObjectID
	if updateDto.CategoryID != nil {
		newCategoryID, resolveError := s.resolveCategoryRef(ctx, store, *updateDto.CategoryID)
		if resolveError != nil {
			return resolveError
		}
		oldCategoryID := product.CategoryID
		var changed bool
		categoryDetach, categoryAttach, changed = refdiff.Swap(&oldCategoryID, &newCategoryID)
		if changed {
			update["categoryId"] = newCategoryID
		}
	}

	// flavour diff
	flavourChange := refdiff.Change{}
	if updateDto.FlavourIDs != nil {
		newFlavourIDs, resolveError := s.resolveFlavourRefs(ctx, store, updateDto.FlavourIDs)
		if resolveError != nil {
			return resolveError
		}
		flavourChange = refdiff.Diff(product.FlavourIDs, newFlavourIDs)
		if !flavourChange.Empty() {
			update["flavourIds"] = newFlavourIDs
		}
	}

	// size diff（以 tuple 的 sizeId 集合計）
	sizeChange := refdiff.Change{}
	if updateDto.Sizes != nil {
		newSizes, newSizeIDs, resolveError := s.resolveSizeTuples(ctx, store, updateDto.Sizes)
		if resolveError != nil {
			return resolveError
		}
		oldSizeIDs := make([]primitive.ObjectID, 0, len(product.Sizes))
		for _, tuple := range product.Sizes {
			oldSizeIDs = append(oldSizeIDs, tuple.SizeID)
		}
		sizeChange = refdiff.Diff(oldSizeIDs, newSizeIDs)
		// 價格變了但集合沒變也要寫回 tuple
		update["sizes"] = newSizes
	}

	replaceImages := updateDto.Images != nil

	if len(update) == 0 && categoryDetach == nil && flavourChange.Empty() && sizeChange.Empty() && !replaceImages {
		return nil
	}

	_, err = s.mongoClient.WithTransaction(ctx, func(sessionContext mongo.SessionContext) (interface{}, error) {
		if len(update) > 0 {
			if _, updateError := s.productRepo.UpdateByID(sessionContext, productID, bson.M{"$set": update}); updateError != nil {
				return nil, updateError
			}
		}
		if categoryDetach != nil {
			if unlinkError := s.categoryRepo.UnlinkProduct(sessionContext, *categoryDetach, productID); unlinkError != nil {
				return nil, unlinkError
			}
		}
		if categoryAttach != nil {
			if linkError := s.categoryRepo.LinkProduct(sessionContext, *categoryAttach, productID); linkError != nil {
				return nil, linkError
			}
		}
		if linkError := s.flavourRepo.LinkProduct(sessionContext, flavourChange.Added, productID); linkError != nil {
			return nil, linkError
		}
		if unlinkError := s.flavourRepo.UnlinkProduct(sessionContext, flavourChange.Removed, productID); unlinkError != nil {
			return nil, unlinkError
		}
		if linkError := s.sizeRepo.LinkProduct(sessionContext, sizeChange.Added, productID); linkError != nil {
			return nil, linkError
		}
		if unlinkError := s.sizeRepo.UnlinkProduct(sessionContext, sizeChange.Removed, productID); unlinkError != nil {
			return nil, unlinkError
		}
		if replaceImages {
			if _, deleteError := s.imageRepo.DeleteByProduct(sessionContext, productID); deleteError != nil {
				return nil, deleteError
			}
			imageIDs, imageError := s.replaceProductImages(sessionContext, productID, *updateDto.Images)
			if imageError != nil {
				return nil, imageError
			}
			if setError := s.productRepo.SetImages(sessionContext, productID, imageIDs); setError != nil {
				return nil, setError
			}
		}
		return nil, nil
	})
	if err != nil {
		s.countFanoutFailure(core.EntityProduct)
		if mongo.IsDuplicateKeyError(err) {
			return cErr.BadRequest("slug already in use in this store", cErr.SLUG_CONFLICT)
		}
		return cErr.FanoutError("failed to update product references")
	}

	s.trace.ApplyTraceAttributes(span, core.TraceFanoutMeta{
		Entity:  string(core.EntityProduct),
		Action:  string(core.AuditUpdate),
		StoreID: store.ID.Hex(),
		Added:   len(flavourChange.Added) + len(sizeChange.Added),
		Removed: len(flavourChange.Removed) + len(sizeChange.Removed),
	})
	s.audit.Record(ctx, core.EntityProduct, core.AuditUpdate, productID, store.ID, store.UserID)
	return nil
}

// 刪除商品：連同圖片、評價一起清，並把 id 從所有反向參照拔掉
func (s *ProductService) DeleteProduct(ctx context.Context, store *model.Store, productID primitive.ObjectID) (returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx, string(core.SpanFanout))
	defer func() { end(returnedError) }()

	product, err := s.GetProduct(ctx, store, productID)
	if err != nil {
		return err
	}

	sizeIDs := make([]primitive.ObjectID, 0, len(product.Sizes))
	for _, tuple := range product.Sizes {
		sizeIDs = append(sizeIDs, tuple.SizeID)
	}

	_, err = s.mongoClient.WithTransaction(ctx, func(sessionContext mongo.SessionContext) (interface{}, error) {
		if deleteError := s.productRepo.DeleteByID(sessionContext, productID); deleteError != nil {
			return nil, deleteError
		}
		if _, deleteError := s.imageRepo.DeleteByProduct(sessionContext, productID); deleteError != nil {
			return nil, deleteError
		}
		if _, deleteError := s.feedbackRepo.DeleteByIDs(sessionContext, product.Feedbacks); deleteError != nil {
			return nil, deleteError
		}
		if unlinkError := s.categoryRepo.UnlinkProduct(sessionContext, product.CategoryID, productID); unlinkError != nil {
			return nil, unlinkError
		}
		if unlinkError := s.sizeRepo.UnlinkProduct(sessionContext, sizeIDs, productID); unlinkError != nil {
			return nil, unlinkError
		}
		if unlinkError := s.flavourRepo.UnlinkProduct(sessionContext, product.FlavourIDs, productID); unlinkError != nil {
			return nil, unlinkError
		}
		if unlinkError := s.storeRepo.UnlinkChild(sessionContext, store.ID, core.StoreRefProducts, productID); unlinkError != nil {
			return nil, unlinkError
		}
		return nil, nil
	})
	if err != nil {
		s.countFanoutFailure(core.EntityProduct)
		return cErr.FanoutError("failed to delete product with references")
	}

	s.trace.ApplyTraceAttributes(span, core.TraceFanoutMeta{
		Entity:  string(core.EntityProduct),
		Action:  string(core.AuditDelete),
		StoreID: store.ID.Hex(),
		Removed: len(sizeIDs) + len(product.FlavourIDs) + 2,
	})
	s.audit.Record(ctx, core.EntityProduct, core.AuditDelete, productID, store.ID, store.UserID)
	return nil
}

// replaceProductImages 依 url 清單建立 image 文件並回傳 id 集
func (s *ProductService) replaceProductImages(ctx context.Context, productID primitive.ObjectID, urls []string) ([]primitive.ObjectID, error) {
	images := make([]*model.Image, 0, len(urls))
	for _, url := range urls {
		owner := productID
		images = append(images, &model.Image{Url: url, ProductID: &owner})
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

func (s *ProductService) countFanoutFailure(entity core.CatalogEntity) {
	if s.metric.FanoutFailuresTotal != nil {
		s.metric.FanoutFailuresTotal.WithLabelValues(string(entity)).Inc()
	}
}
