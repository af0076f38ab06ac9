package repository

import (
	"context"
	"fmt"
	"time"

	"backoffice/internal/core"
	client "backoffice/internal/database/client"
	"backoffice/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(mongoClient *client.MongoClient) *ProductRepository {
	repository := &ProductRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBBackoffice)).Collection(string(core.MongoCollectionProducts)),
	}
	_, _ = repository.collection.Indexes().CreateMany(context.Background(), model.ProductIndexes)
	return repository
}

func (repository *ProductRepository) Create(contextValue context.Context, product *model.Product) (_ *model.Product, returnedError error) {
	nowUTC := time.Now().UTC()
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	product.CreatedAt = nowUTC
	product.UpdatedAt = nowUTC
	if product.FlavourIDs == nil {
		product.FlavourIDs = []primitive.ObjectID{}
	}
	if product.Sizes == nil {
		product.Sizes = []model.ProductSize{}
	}
	if product.Images == nil {
		product.Images = []primitive.ObjectID{}
	}
	if product.Feedbacks == nil {
		product.Feedbacks = []primitive.ObjectID{}
	}

	insertResult, insertError := repository.collection.InsertOne(contextValue, product)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	product.ID = objectID
	return product, nil
}

func (repository *ProductRepository) GetByID(contextValue context.Context, productIdentifier primitive.ObjectID) (_ *model.Product, returnedError error) {
	var product model.Product
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": productIdentifier}).Decode(&product); returnedError != nil {
		return nil, returnedError
	}
	return &product, nil
}

func (repository *ProductRepository) GetBySlug(contextValue context.Context, storeIdentifier primitive.ObjectID, slug string) (_ *model.Product, returnedError error) {
	var product model.Product
	filter := bson.M{"storeId": storeIdentifier, "slug": slug}
	if returnedError = repository.collection.FindOne(contextValue, filter).Decode(&product); returnedError != nil {
		return nil, returnedError
	}
	return &product, nil
}

// SlugExists store 範圍內 slug 是否已被其它文件使用（excludeIdentifier 排除自己）
func (repository *ProductRepository) SlugExists(contextValue context.Context, storeIdentifier primitive.ObjectID, slug string, excludeIdentifier *primitive.ObjectID) (exists bool, returnedError error) {
	filter := bson.M{"storeId": storeIdentifier, "slug": slug}
	if excludeIdentifier != nil {
		filter["_id"] = bson.M{"$ne": *excludeIdentifier}
	}
	count, countError := repository.collection.CountDocuments(contextValue, filter)
	if countError != nil {
		return false, countError
	}
	return count > 0, nil
}

func (repository *ProductRepository) List(contextValue context.Context, listOptions core.ListOptions) (_ []*model.Product, returnedError error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if listOptions.Size > 0 {
		findOptions.SetLimit(listOptions.Size)
		if listOptions.Page > 1 {
			findOptions.SetSkip((listOptions.Page - 1) * listOptions.Size)
		}
	}
	filter := listOptions.Filter
	if filter == nil {
		filter = bson.M{}
	}

	cursor, findError := repository.collection.Find(contextValue, filter, findOptions)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.Product
	for cursor.Next(contextValue) {
		var product model.Product
		if decodeError := cursor.Decode(&product); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &product)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}
	return results, nil
}

func (repository *ProductRepository) Count(contextValue context.Context, filter bson.M) (returnedCount int64, returnedError error) {
	if filter == nil {
		filter = bson.M{}
	}
	return repository.collection.CountDocuments(contextValue, filter)
}

func (repository *ProductRepository) UpdateByID(contextValue context.Context, productIdentifier primitive.ObjectID, update bson.M) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": productIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	if result.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return result.MatchedCount, nil
}

func (repository *ProductRepository) DeleteByID(contextValue context.Context, productIdentifier primitive.ObjectID) (returnedError error) {
	_, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"_id": productIdentifier})
	return returnedError
}

// LinkFeedback / UnlinkFeedback 維護 product.feedbacks 反向參照
func (repository *ProductRepository) LinkFeedback(contextValue context.Context, productIdentifier primitive.ObjectID, feedbackIdentifier primitive.ObjectID) (returnedError error) {
	update := withUpdatedAt(bson.M{"$addToSet": bson.M{"feedbacks": feedbackIdentifier}})
	_, returnedError = repository.collection.UpdateOne(contextValue, bson.M{"_id": productIdentifier}, update)
	return returnedError
}

func (repository *ProductRepository) UnlinkFeedback(contextValue context.Context, productIdentifier primitive.ObjectID, feedbackIdentifier primitive.ObjectID) (returnedError error) {
	update := withUpdatedAt(bson.M{"$pull": bson.M{"feedbacks": feedbackIdentifier}})
	_, returnedError = repository.collection.UpdateOne(contextValue, bson.M{"_id": productIdentifier}, update)
	return returnedError
}

func (repository *ProductRepository) SetImages(contextValue context.Context, productIdentifier primitive.ObjectID, imageIdentifiers []primitive.ObjectID) (returnedError error) {
	if imageIdentifiers == nil {
		imageIdentifiers = []primitive.ObjectID{}
	}
	update := withUpdatedAt(bson.M{"$set": bson.M{"images": imageIdentifiers}})
	_, returnedError = repository.collection.UpdateOne(contextValue, bson.M{"_id": productIdentifier}, update)
	return returnedError
}
