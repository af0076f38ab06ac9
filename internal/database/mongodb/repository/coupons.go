package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"backoffice/internal/core"
	client "backoffice/internal/database/client"
	"backoffice/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CouponRepository struct {
	collection *mongo.Collection
}

func NewCouponRepository(mongoClient *client.MongoClient) *CouponRepository {
	repository := &CouponRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBBackoffice)).Collection(string(core.MongoCollectionCoupons)),
	}
	_, _ = repository.collection.Indexes().CreateMany(context.Background(), model.CouponIndexes)
	return repository
}

func (repository *CouponRepository) Create(contextValue context.Context, coupon *model.Coupon) (_ *model.Coupon, returnedError error) {
	nowUTC := time.Now().UTC()
	if coupon.ID.IsZero() {
		coupon.ID = primitive.NewObjectID()
	}
	coupon.Code = strings.ToUpper(strings.TrimSpace(coupon.Code))
	coupon.CreatedAt = nowUTC
	coupon.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, coupon)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	coupon.ID = objectID
	return coupon, nil
}

func (repository *CouponRepository) GetByID(contextValue context.Context, couponIdentifier primitive.ObjectID) (_ *model.Coupon, returnedError error) {
	var coupon model.Coupon
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": couponIdentifier}).Decode(&coupon); returnedError != nil {
		return nil, returnedError
	}
	return &coupon, nil
}

// GetByCode 比對不分大小寫（code 儲存時已轉大寫）
func (repository *CouponRepository) GetByCode(contextValue context.Context, storeIdentifier primitive.ObjectID, code string) (_ *model.Coupon, returnedError error) {
	var coupon model.Coupon
	filter := bson.M{"storeId": storeIdentifier, "code": strings.ToUpper(strings.TrimSpace(code))}
	if returnedError = repository.collection.FindOne(contextValue, filter).Decode(&coupon); returnedError != nil {
		return nil, returnedError
	}
	return &coupon, nil
}

func (repository *CouponRepository) List(contextValue context.Context, filter bson.M) (_ []*model.Coupon, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, filter)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.Coupon
	for cursor.Next(contextValue) {
		var coupon model.Coupon
		if decodeError := cursor.Decode(&coupon); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &coupon)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}
	return results, nil
}

func (repository *CouponRepository) UpdateByID(contextValue context.Context, couponIdentifier primitive.ObjectID, update bson.M) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": couponIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	if result.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return result.MatchedCount, nil
}

func (repository *CouponRepository) DeleteByID(contextValue context.Context, couponIdentifier primitive.ObjectID) (returnedError error) {
	_, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"_id": couponIdentifier})
	return returnedError
}

// DeactivateExpired 過期即停用（cron 夜間掃描）
func (repository *CouponRepository) DeactivateExpired(contextValue context.Context, now time.Time) (returnedCount int64, returnedError error) {
	filter := bson.M{"isActive": true, "expiryDate": bson.M{"$lt": now}}
	update := withUpdatedAt(bson.M{"$set": bson.M{"isActive": false}})
	result, updateError := repository.collection.UpdateMany(contextValue, filter, update)
	if updateError != nil {
		return 0, updateError
	}
	return result.ModifiedCount, nil
}
