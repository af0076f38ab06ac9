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

type FeedbackService struct {
	trace        *telemetry.Trace
	mongoClient  *client.MongoClient
	productRepo  *repository.ProductRepository
	comboRepo    *repository.ComboRepository
	feedbackRepo *repository.FeedbackRepository
	audit        *AuditService
}

func NewFeedbackService(
	trace *telemetry.Trace,
	mongoClient *client.MongoClient,
	productRepo *repository.ProductRepository,
	comboRepo *repository.ComboRepository,
	feedbackRepo *repository.FeedbackRepository,
	audit *AuditService,
) *FeedbackService {
	return &FeedbackService{
		trace:        trace,
		mongoClient:  mongoClient,
		productRepo:  productRepo,
		comboRepo:    comboRepo,
		feedbackRepo: feedbackRepo,
		audit:        audit,
	}
}

// CreateFeedback 公開端建立評價，隸屬 product 或 combo 擇一；預設未審核
func (s *FeedbackService) CreateFeedback(ctx context.Context, storeID primitive.ObjectID, createDto *dto.CreateFeedbackDto) (_ *model.Feedback, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if (createDto.ProductID == "") == (createDto.ComboID == "") {
		return nil, cErr.ValidateErr("exactly one of productId or comboId is required")
	}

	feedback := &model.Feedback{
		UserName: createDto.UserName,
		Rating:   createDto.Rating,
		Comment:  createDto.Comment,
		Approved: false,
	}

	var targetProduct *model.Product
	var targetCombo *model.Combo
	if createDto.ProductID != "" {
		productID, err := primitive.ObjectIDFromHex(createDto.ProductID)
		if err != nil {
			return nil, cErr.ValidateErr("productId is not a valid id")
		}
		product, err := s.productRepo.GetByID(ctx, productID)
		if err != nil || product.StoreID != storeID || product.IsArchived {
			return nil, cErr.ReferenceNotFound("product not found in this store")
		}
		targetProduct = product
		feedback.ProductID = &product.ID
	} else {
		comboID, err := primitive.ObjectIDFromHex(createDto.ComboID)
		if err != nil {
			return nil, cErr.ValidateErr("comboId is not a valid id")
		}
		combo, err := s.comboRepo.GetByID(ctx, comboID)
		if err != nil || combo.StoreID != storeID || combo.IsArchived {
			return nil, cErr.ReferenceNotFound("combo not found in this store")
		}
		targetCombo = combo
		feedback.ComboID = &combo.ID
	}

	_, err := s.mongoClient.WithTransaction(ctx, func(sessionContext mongo.SessionContext) (interface{}, error) {
		created, createError := s.feedbackRepo.Create(sessionContext, feedback)
		if createError != nil {
			return nil, createError
		}
		if targetProduct != nil {
			if linkError := s.productRepo.LinkFeedback(sessionContext, targetProduct.ID, created.ID); linkError != nil {
				return nil, linkError
			}
		}
		if targetCombo != nil {
			if linkError := s.comboRepo.LinkFeedback(sessionContext, targetCombo.ID, created.ID); linkError != nil {
				return nil, linkError
			}
		}
		return created, nil
	})
	if err != nil {
		return nil, cErr.FanoutError("failed to create feedback with references")
	}
	return feedback, nil
}

// ListFeedbacks 後台列出店內商品的評價；approved 過濾交由 handler 傳入 filter
func (s *FeedbackService) ListFeedbacks(ctx context.Context, store *model.Store, approved *bool) (_ []*model.Feedback, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	feedbackIDs := s.collectFeedbackIDs(ctx, store)
	filter := bson.M{"_id": bson.M{"$in": feedbackIDs}}
	if approved != nil {
		filter["approved"] = *approved
	}
	feedbacks, err := s.feedbackRepo.List(ctx, filter)
	if err != nil {
		return nil, cErr.DatabaseError("database ListFeedbacks error")
	}
	return feedbacks, nil
}

func (s *FeedbackService) GetFeedback(ctx context.Context, feedbackID primitive.ObjectID) (*model.Feedback, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	feedback, err := s.feedbackRepo.GetByID(ctx, feedbackID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("feedback not found")
		}
		return nil, cErr.DatabaseError("database GetFeedback error")
	}
	return feedback, nil
}

// ModerateFeedback 審核切換；僅允許店主操作自家商品的評價
func (s *FeedbackService) ModerateFeedback(ctx context.Context, store *model.Store, feedbackID primitive.ObjectID, updateDto *dto.UpdateFeedbackDto) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	feedback, err := s.GetFeedback(ctx, feedbackID)
	if err != nil {
		return err
	}
	if err = s.ensureOwnership(ctx, store, feedback); err != nil {
		return err
	}
	if updateDto.Approved == nil {
		return nil
	}
	if _, err = s.feedbackRepo.UpdateByID(ctx, feedbackID, bson.M{"$set": bson.M{"approved": *updateDto.Approved}}); err != nil {
		return cErr.DatabaseError("database ModerateFeedback error")
	}
	s.audit.Record(ctx, core.EntityFeedback, core.AuditUpdate, feedbackID, store.ID, store.UserID)
	return nil
}

func (s *FeedbackService) DeleteFeedback(ctx context.Context, store *model.Store, feedbackID primitive.ObjectID) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	feedback, err := s.GetFeedback(ctx, feedbackID)
	if err != nil {
		return err
	}
	if err = s.ensureOwnership(ctx, store, feedback); err != nil {
		return err
	}

	_, err = s.mongoClient.WithTransaction(ctx, func(sessionContext mongo.SessionContext) (interface{}, error) {
		if deleteError := s.feedbackRepo.DeleteByID(sessionContext, feedbackID); deleteError != nil {
			return nil, deleteError
		}
		if feedback.ProductID != nil {
			if unlinkError := s.productRepo.UnlinkFeedback(sessionContext, *feedback.ProductID, feedbackID); unlinkError != nil {
				return nil, unlinkError
			}
		}
		if feedback.ComboID != nil {
			if unlinkError := s.comboRepo.UnlinkFeedback(sessionContext, *feedback.ComboID, feedbackID); unlinkError != nil {
				return nil, unlinkError
			}
		}
		return nil, nil
	})
	if err != nil {
		return cErr.FanoutError("failed to delete feedback with references")
	}
	s.audit.Record(ctx, core.EntityFeedback, core.AuditDelete, feedbackID, store.ID, store.UserID)
	return nil
}

// ensureOwnership 透過評價所屬商品回查 store，避免跨店操作
func (s *FeedbackService) ensureOwnership(ctx context.Context, store *model.Store, feedback *model.Feedback) error {
	if feedback.ProductID != nil {
		product, err := s.productRepo.GetByID(ctx, *feedback.ProductID)
		if err != nil || product.StoreID != store.ID {
			return cErr.NotFound("feedback not found")
		}
		return nil
	}
	if feedback.ComboID != nil {
		combo, err := s.comboRepo.GetByID(ctx, *feedback.ComboID)
		if err != nil || combo.StoreID != store.ID {
			return cErr.NotFound("feedback not found")
		}
		return nil
	}
	return cErr.NotFound("feedback not found")
}

// collectFeedbackIDs 從 store 的 product / combo back-reference 收集評價 id
func (s *FeedbackService) collectFeedbackIDs(ctx context.Context, store *model.Store) []primitive.ObjectID {
	feedbackIDs := make([]primitive.ObjectID, 0)
	products, err := s.productRepo.List(ctx, core.ListOptions{Filter: bson.M{"storeId": store.ID}})
	if err == nil {
		for _, product := range products {
			feedbackIDs = append(feedbackIDs, product.Feedbacks...)
		}
	}
	combos, err := s.comboRepo.List(ctx, core.ListOptions{Filter: bson.M{"storeId": store.ID}})
	if err == nil {
		for _, combo := range combos {
			feedbackIDs = append(feedbackIDs, combo.Feedbacks...)
		}
	}
	return feedbackIDs
}
