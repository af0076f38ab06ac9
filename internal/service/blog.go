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

type BlogService struct {
	trace       *telemetry.Trace
	blogRepo    *repository.BlogRepository
	productRepo *repository.ProductRepository
	audit       *AuditService
}

func NewBlogService(
	trace *telemetry.Trace,
	blogRepo *repository.BlogRepository,
	productRepo *repository.ProductRepository,
	audit *AuditService,
) *BlogService {
	return &BlogService{trace: trace, blogRepo: blogRepo, productRepo: productRepo, audit: audit}
}

// resolveProductRef 文章可關聯店內商品；空字串代表取消關聯
func (s *BlogService) resolveProductRef(ctx context.Context, store *model.Store, rawID string) (*primitive.ObjectID, error) {
	if rawID == "" {
		return nil, nil
	}
	productID, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return nil, cErr.ValidateErr("productId is not a valid id")
	}
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil || product.StoreID != store.ID {
		return nil, cErr.ReferenceNotFound("product not found in this store")
	}
	return &productID, nil
}

func (s *BlogService) CreateBlog(ctx context.Context, store *model.Store, createDto *dto.CreateBlogDto) (_ *model.BlogPost, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	productRef, err := s.resolveProductRef(ctx, store, createDto.ProductID)
	if err != nil {
		return nil, err
	}
	post := &model.BlogPost{
		StoreID:     store.ID,
		ProductID:   productRef,
		Title:       createDto.Title,
		Content:     createDto.Content,
		ContentHtml: createDto.ContentHtml,
	}
	created, err := s.blogRepo.Create(ctx, post)
	if err != nil {
		return nil, cErr.DatabaseError("database CreateBlog error")
	}
	s.audit.Record(ctx, core.EntityBlogPost, core.AuditCreate, created.ID, store.ID, store.UserID)
	return created, nil
}

func (s *BlogService) GetBlog(ctx context.Context, store *model.Store, postID primitive.ObjectID) (*model.BlogPost, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	post, err := s.blogRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("blog post not found")
		}
		return nil, cErr.DatabaseError("database GetBlog error")
	}
	if post.StoreID != store.ID {
		return nil, cErr.NotFound("blog post not found")
	}
	return post, nil
}

func (s *BlogService) ListBlogs(ctx context.Context, storeID primitive.ObjectID) ([]*model.BlogPost, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	posts, err := s.blogRepo.List(ctx, bson.M{"storeId": storeID})
	if err != nil {
		return nil, cErr.DatabaseError("database ListBlogs error")
	}
	return posts, nil
}

func (s *BlogService) UpdateBlog(ctx context.Context, store *model.Store, postID primitive.ObjectID, updateDto *dto.UpdateBlogDto) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if _, err := s.GetBlog(ctx, store, postID); err != nil {
		return err
	}

	update := bson.M{}
	unset := bson.M{}
	if updateDto.Title != nil {
		update["title"] = *updateDto.Title
	}
	if updateDto.Content != nil {
		update["content"] = updateDto.Content
	}
	if updateDto.ContentHtml != nil {
		update["contentHtml"] = *updateDto.ContentHtml
	}
	if updateDto.ProductID != nil {
		productRef, err := s.resolveProductRef(ctx, store, *updateDto.ProductID)
		if err != nil {
			return err
		}
		if productRef == nil {
			unset["productId"] = ""
		} else {
			update["productId"] = *productRef
		}
	}
	if len(update) == 0 && len(unset) == 0 {
		return nil
	}

	operations := bson.M{}
	if len(update) > 0 {
		operations["$set"] = update
	}
	if len(unset) > 0 {
		operations["$unset"] = unset
	}
	if _, err := s.blogRepo.UpdateByID(ctx, postID, operations); err != nil {
		return cErr.DatabaseError("database UpdateBlog error")
	}
	s.audit.Record(ctx, core.EntityBlogPost, core.AuditUpdate, postID, store.ID, store.UserID)
	return nil
}

func (s *BlogService) DeleteBlog(ctx context.Context, store *model.Store, postID primitive.ObjectID) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if _, err := s.GetBlog(ctx, store, postID); err != nil {
		return err
	}
	if err := s.blogRepo.DeleteByID(ctx, postID); err != nil {
		return cErr.DatabaseError("database DeleteBlog error")
	}
	s.audit.Record(ctx, core.EntityBlogPost, core.AuditDelete, postID, store.ID, store.UserID)
	return nil
}
