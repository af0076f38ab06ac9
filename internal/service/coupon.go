package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"backoffice/internal/core"
	"backoffice/internal/database/mongodb/model"
	"backoffice/internal/database/mongodb/repository"
	"backoffice/internal/dto"
	cErr "backoffice/internal/pkg/error"
	"backoffice/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type CouponService struct {
	trace      *telemetry.Trace
	logger     *zap.Logger
	couponRepo *repository.CouponRepository
	audit      *AuditService
}

func NewCouponService(trace *telemetry.Trace, logger *zap.Logger, couponRepo *repository.CouponRepository, audit *AuditService) *CouponService {
	return &CouponService{trace: trace, logger: logger, couponRepo: couponRepo, audit: audit}
}

func (s *CouponService) CreateCoupon(ctx context.Context, store *model.Store, createDto *dto.CreateCouponDto) (_ *model.Coupon, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	coupon := &model.Coupon{
		StoreID:            store.ID,
		Code:               strings.ToUpper(strings.TrimSpace(createDto.Code)),
		DiscountPercentage: createDto.DiscountPercentage,
		ExpiryDate:         createDto.ExpiryDate,
		IsActive:           createDto.IsActive,
	}
	created, err := s.couponRepo.Create(ctx, coupon)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.BadRequest("coupon code already exists in this store")
		}
		return nil, cErr.DatabaseError("database CreateCoupon error")
	}
	s.audit.Record(ctx, core.EntityCoupon, core.AuditCreate, created.ID, store.ID, store.UserID)
	return created, nil
}

func (s *CouponService) GetCoupon(ctx context.Context, store *model.Store, couponID primitive.ObjectID) (*model.Coupon, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	coupon, err := s.couponRepo.GetByID(ctx, couponID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("coupon not found")
		}
		return nil, cErr.DatabaseError("database GetCoupon error")
	}
	if coupon.StoreID != store.ID {
		return nil, cErr.NotFound("coupon not found")
	}
	return coupon, nil
}

func (s *CouponService) ListCoupons(ctx context.Context, store *model.Store) ([]*model.Coupon, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	coupons, err := s.couponRepo.List(ctx, bson.M{"storeId": store.ID})
	if err != nil {
		return nil, cErr.DatabaseError("database ListCoupons error")
	}
	return coupons, nil
}

func (s *CouponService) UpdateCoupon(ctx context.Context, store *model.Store, couponID primitive.ObjectID, updateDto *dto.UpdateCouponDto) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if _, err := s.GetCoupon(ctx, store, couponID); err != nil {
		return err
	}

	update := bson.M{}
	if updateDto.Code != nil {
		update["code"] = strings.ToUpper(strings.TrimSpace(*updateDto.Code))
	}
	if updateDto.DiscountPercentage != nil {
		update["discountPercentage"] = *updateDto.DiscountPercentage
	}
	if updateDto.ExpiryDate != nil {
		update["expiryDate"] = *updateDto.ExpiryDate
	}
	if updateDto.IsActive != nil {
		update["isActive"] = *updateDto.IsActive
	}
	if len(update) == 0 {
		return nil
	}

	if _, err := s.couponRepo.UpdateByID(ctx, couponID, bson.M{"$set": update}); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return cErr.BadRequest("coupon code already exists in this store")
		}
		return cErr.DatabaseError("database UpdateCoupon error")
	}
	s.audit.Record(ctx, core.EntityCoupon, core.AuditUpdate, couponID, store.ID, store.UserID)
	return nil
}

func (s *CouponService) DeleteCoupon(ctx context.Context, store *model.Store, couponID primitive.ObjectID) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if _, err := s.GetCoupon(ctx, store, couponID); err != nil {
		return err
	}
	if err := s.couponRepo.DeleteByID(ctx, couponID); err != nil {
		return cErr.DatabaseError("database DeleteCoupon error")
	}
	s.audit.Record(ctx, core.EntityCoupon, core.AuditDelete, couponID, store.ID, store.UserID)
	return nil
}

// DeactivateExpired 將過期仍啟用的折價券關閉，由排程觸發
func (s *CouponService) DeactivateExpired(ctx context.Context) (int64, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	count, err := s.couponRepo.DeactivateExpired(ctx, time.Now().UTC())
	if err != nil {
		return 0, cErr.DatabaseError("database DeactivateExpired error")
	}
	if count > 0 {
		s.logger.Info("deactivated expired coupons", zap.Int64("count", count))
	}
	return count, nil
}
