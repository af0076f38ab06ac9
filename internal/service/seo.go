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

type SeoService struct {
	trace   *telemetry.Trace
	seoRepo *repository.SeoRepository
	audit   *AuditService
}

func NewSeoService(trace *telemetry.Trace, seoRepo *repository.SeoRepository, audit *AuditService) *SeoService {
	return &SeoService{trace: trace, seoRepo: seoRepo, audit: audit}
}

func (s *SeoService) CreateSeo(ctx context.Context, store *model.Store, createDto *dto.CreateSeoDto) (_ *model.SeoMetadata, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	seo := &model.SeoMetadata{
		StoreID:       store.ID,
		Url:           createDto.Url,
		Title:         createDto.Title,
		Description:   createDto.Description,
		H1:            createDto.H1,
		Canonical:     createDto.Canonical,
		OgTitle:       createDto.OgTitle,
		OgDescription: createDto.OgDescription,
		OgImage:       createDto.OgImage,
		Schema:        createDto.Schema,
		MetaRobots:    createDto.MetaRobots,
		AltTag:        createDto.AltTag,
		Keywords:      createDto.Keywords,
	}
	created, err := s.seoRepo.Create(ctx, seo)
	if err != nil {
		return nil, cErr.DatabaseError("database CreateSeo error")
	}
	s.audit.Record(ctx, core.EntitySeo, core.AuditCreate, created.ID, store.ID, store.UserID)
	return created, nil
}

func (s *SeoService) GetSeo(ctx context.Context, store *model.Store, seoID primitive.ObjectID) (*model.SeoMetadata, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	seo, err := s.seoRepo.GetByID(ctx, seoID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("seo metadata not found")
		}
		return nil, cErr.DatabaseError("database GetSeo error")
	}
	if seo.StoreID != store.ID {
		return nil, cErr.NotFound("seo metadata not found")
	}
	return seo, nil
}

func (s *SeoService) ListSeo(ctx context.Context, storeID primitive.ObjectID, url string) ([]*model.SeoMetadata, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	filter := bson.M{"storeId": storeID}
	if url != "" {
		filter["url"] = url
	}
	entries, err := s.seoRepo.List(ctx, filter)
	if err != nil {
		return nil, cErr.DatabaseError("database ListSeo error")
	}
	return entries, nil
}

func (s *SeoService) UpdateSeo(ctx context.Context, store *model.Store, seoID primitive.ObjectID, updateDto *dto.UpdateSeoDto) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if _, err := s.GetSeo(ctx, store, seoID); err != nil {
		return err
	}

	update := bson.M{}
	if updateDto.Url != nil {
		update["url"] = *updateDto.Url
	}
	if updateDto.Title != nil {
		update["title"] = *updateDto.Title
	}
	if updateDto.Description != nil {
		update["description"] = *updateDto.Description
	}
	if updateDto.H1 != nil {
		update["h1"] = *updateDto.H1
	}
	if updateDto.Canonical != nil {
		update["canonical"] = *updateDto.Canonical
	}
	if updateDto.OgTitle != nil {
		update["ogTitle"] = *updateDto.OgTitle
	}
	if updateDto.OgDescription != nil {
		update["ogDescription"] = *updateDto.OgDescription
	}
	if updateDto.OgImage != nil {
		update["ogImage"] = *updateDto.OgImage
	}
	if updateDto.Schema != nil {
		update["schema"] = *updateDto.Schema
	}
	if updateDto.MetaRobots != nil {
		update["metaRobots"] = *updateDto.MetaRobots
	}
	if updateDto.AltTag != nil {
		update["altTag"] = *updateDto.AltTag
	}
	if updateDto.Keywords != nil {
		update["keywords"] = updateDto.Keywords
	}
	if len(update) == 0 {
		return nil
	}

	if _, err := s.seoRepo.UpdateByID(ctx, seoID, bson.M{"$set": update}); err != nil {
		return cErr.DatabaseError("database UpdateSeo error")
	}
	s.audit.Record(ctx, core.EntitySeo, core.AuditUpdate, seoID, store.ID, store.UserID)
	return nil
}

func (s *SeoService) DeleteSeo(ctx context.Context, store *model.Store, seoID primitive.ObjectID) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if _, err := s.GetSeo(ctx, store, seoID); err != nil {
		return err
	}
	if err := s.seoRepo.DeleteByID(ctx, seoID); err != nil {
		return cErr.DatabaseError("database DeleteSeo error")
	}
	s.audit.Record(ctx, core.EntitySeo, core.AuditDelete, seoID, store.ID, store.UserID)
	return nil
}
