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
)

type SizeRepository struct {
	collection *mongo.Collection
}

func NewSizeRepository(mongoClient *client.MongoClient) *SizeRepository {
	repository := &SizeRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBBackoffice)).Collection(string(core.MongoCollectionSizes)),
	}
	_, _ = repository.collection.Indexes().CreateMany(context.Background(), model.SizeIndexes)
	return repository
}

func (repository *SizeRepository) Create(contextValue context.Context, size *model.Size) (_ *model.Size, returnedError error) {
	nowUTC := time.Now().UTC()
	if size.ID.IsZero() {
		size.ID = primitive.NewObjectID()
	}
	size.CreatedAt = nowUTC
	size.UpdatedAt = nowUTC
	if size.Products == nil {
		size.Products = []primitive.ObjectID{}
	}
	if size.Combos == nil {
		size.Combos = []primitive.ObjectID{}
	}

	insertResult, insertError := repository.collection.InsertOne(contextValue, size)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	size.ID = objectID
	return size, nil
}

func (repository *SizeRepository) GetByID(contextValue context.Context, sizeIdentifier primitive.ObjectID) (_ *model.Size, returnedError error) {
	var size model.Size
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": sizeIdentifier}).Decode(&size); returnedError != nil {
		return nil, returnedError
	}
	return &size, nil
}

func (repository *SizeRepository) List(contextValue context.Context, filter bson.M) (_ []*model.Size, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, filter)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.Size
	for cursor.Next(contextValue) {
		var size model.Size
		if decodeError := cursor.Decode(&size); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &size)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}
	return results, nil
}

// CountByIDs 驗證一批 sizeId 是否全部存在且屬於該 store
func (repository *SizeRepository) CountByIDs(contextValue context.Context, storeIdentifier primitive.ObjectID, sizeIdentifiers []primitive.ObjectID) (returnedCount int64, returnedError error) {
	filter := bson.M{"_id": bson.M{"$in": sizeIdentifiers}, "storeId": storeIdentifier}
	return repository.collection.CountDocuments(contextValue, filter)
}

func (repository *SizeRepository) UpdateByID(contextValue context.Context, sizeIdentifier primitive.ObjectID, update bson.M) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": sizeIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	if result.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return result.MatchedCount, nil
}

func (repository *SizeRepository) DeleteByID(contextValue context.Context, sizeIdentifier primitive.ObjectID) (returnedError error) {
	_, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"_id": sizeIdentifier})
	return returnedError
}

// LinkProduct 把 productId 加進指定 size 群的 products 陣列（批次 $addToSet）
func (repository *SizeRepository) LinkProduct(contextValue context.Context, sizeIdentifiers []primitive.ObjectID, productIdentifier primitive.ObjectID) (returnedError error) {
	if len(sizeIdentifiers) == 0 {
		return nil
	}
	update := withUpdatedAt(bson.M{"$addToSet": bson.M{"products": productIdentifier}})
	_, returnedError = repository.collection.UpdateMany(contextValue, bson.M{"_id": bson.M{"$in": sizeIdentifiers}}, update)
	return returnedError
}

func (repository *SizeRepository) UnlinkProduct(contextValue context.Context, sizeIdentifiers []primitive.ObjectID, productIdentifier primitive.ObjectID) (returnedError error) {
	if len(sizeIdentifiers) == 0 {
		return nil
	}
	update := withUpdatedAt(bson.M{"$pull": bson.M{"products": productIdentifier}})
	_, returnedError = repository.collection.UpdateMany(contextValue, bson.M{"_id": bson.M{"$in": sizeIdentifiers}}, update)
	return returnedError
}

func (repository *SizeRepository) LinkCombo(contextValue context.Context, sizeIdentifiers []primitive.ObjectID, comboIdentifier primitive.ObjectID) (returnedError error) {
	if len(sizeIdentifiers) == 0 {
		return nil
	}
	update := withUpdatedAt(bson.M{"$addToSet": bson.M{"combos": comboIdentifier}})
	_, returnedError = repository.collection.UpdateMany(contextValue, bson.M{"_id": bson.M{"$in": sizeIdentifiers}}, update)
	return returnedError
}

func (repository *SizeRepository) UnlinkCombo(contextValue context.Context, sizeIdentifiers []primitive.ObjectID, comboIdentifier primitive.ObjectID) (returnedError error) {
	if len(sizeIdentifiers) == 0 {
		return nil
	}
	update := withUpdatedAt(bson.M{"$pull": bson.M{"combos": comboIdentifier}})
	_, returnedError = repository.collection.UpdateMany(contextValue, bson.M{"_id": bson.M{"$in": sizeIdentifiers}}, update)
	return returnedError
}
