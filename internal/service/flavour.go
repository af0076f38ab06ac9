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

type FlavourService struct {
	trace       *telemetry.Trace
	mongoClient *client.MongoClient
	storeRepo   *repository.StoreRepository
	flavourRepo *repository.FlavourRepository
	audit       *AuditService
}

func NewFlavourService(
	trace *telemetry.Trace,
	mongoClient *client.MongoClient,
	storeRepo *repository.StoreRepository,
	flavourRepo *repository.FlavourRepository,
	audit *AuditService,
) *FlavourService {
	return &FlavourService{trace: trace, mongoClient: mongoClient, storeRepo: storeRepo, flavourRepo: flavourRepo, audit: audit}
}

func (s *FlavourService) CreateFlavour(ctx context.Context, store *model.Store, createDto *dto.CreateFlavourDto) (*model.Flavour, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	flavour := &model.Flavour{StoreID: store.ID, Name: createDto.Name, Value: createDto.Value}

	_, err := s.mongoClient.WithTransaction(ctx, func(sessionContext mongo.SessionContext) (interface{}, error) {
		created, createError := s.flavourRepo.Create(sessionContext, flavour)
		if createError != nil {
			return nil, createError
		}
		if linkError := s.storeRepo.LinkChild(sessionContext, store.ID, core.StoreRefFlavours, created.ID); linkError != nil {
			return nil, linkError
		}
		return created, nil
	})
	if err != nil {
		return nil, cErr.DatabaseError("database CreateFlavour error")
	}

	s.audit.Record(ctx, core.EntityFlavour, core.AuditCreate, flavour.ID, store.ID, store.UserID)
	return flavour, nil
}

func (s *FlavourService) GetFlavour(ctx context.Context, store *model.Store, flavourID primitive.ObjectID) (*model.Flavour, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	flavour, err := s.flavourRepo.GetByID(ctx, flavourID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("flavour not found")
		}
		return nil, cErr.DatabaseError("database GetFlavour error")
	}
	if flavour.StoreID != store.ID {
		return nil, cErr.NotFound("flavour not found")
	}
	return flavour, nil
}

func (s *FlavourService) ListFlavours(ctx context.Context, storeID primitive.ObjectID) ([]*model.Flavour, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	flavours, err := s.flavourRepo.List(ctx, bson.M{"storeId": storeID})
	if err != nil {
		return nil, cErr.DatabaseError("database ListFlavours error")
	}
	return flavours, nil
}

func (s *FlavourService) UpdateFlavour(ctx context.Context, store *model.Store, flavourID primitive.ObjectID, updateDto *dto.UpdateFlavourDto) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if _, err := s.GetFlavour(ctx, store, flavourID); err != nil {
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

	if _, err := s.flavourRepo.UpdateByID(ctx, flavourID, bson.M{"$set": update}); err != nil {
		return cErr.DatabaseError("database UpdateFlavour error")
	}
	s.audit.Record(ctx, core.EntityFlavour, core.AuditUpdate, flavourID, store.ID, store.UserID)
	return nil
}

func (s *FlavourService) DeleteFlavour(ctx context.Context, store *model.Store, flavourID primitive.ObjectID) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	flavour, err := s.GetFlavour(ctx, store, flavourID)
	if err != nil {
		return err
	}
	if len(flavour.Products) > 0 || len(flavour.Combos) > 0 {
		return cErr.BadRequest("flavour still referenced by products or combos")
	}

	_, err = s.mongoClient.WithTransaction(ctx, func(sessionContext mongo.SessionContext) (interface{}, error) {
		if deleteError := s.flavourRepo.DeleteByID(sessionContext, flavourID); deleteError != nil {
			return nil, deleteError
		}
		if unlinkError := s.storeRepo.UnlinkChild(sessionContext, store.ID, core.StoreRefFlavours, flavourID); unlinkError != nil {
			return nil, unlinkError
		}
		return nil, nil
	})
	if err != nil {
		return cErr.DatabaseError("database DeleteFlavour error")
	}

	s.audit.Record(ctx, core.EntityFlavour, core.AuditDelete, flavourID, store.ID, store.UserID)
	return nil
}
