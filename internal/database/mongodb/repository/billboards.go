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

type BillboardRepository struct {
	collection *mongo.Collection
}

func NewBillboardRepository(mongoClient *client.MongoClient) *BillboardRepository {
	repository := &BillboardRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBBackoffice)).Collection(string(core.MongoCollectionBillboards)),
	}
	_, _ = repository.collection.Indexes().CreateMany(context.Background(), model.BillboardIndexes)
	return repository
}

func (repository *BillboardRepository) Create(contextValue context.Context, billboard *model.Billboard) (_ *model.Billboard, returnedError error) {
	nowUTC := time.Now().UTC()
	if billboard.ID.IsZero() {
		billboard.ID = primitive.NewObjectID()
	}
	billboard.CreatedAt = nowUTC
	billboard.UpdatedAt = nowUTC
	if billboard.Categories == nil {
		billboard.Categories = []primitive.ObjectID{}
	}

	insertResult, insertError := repository.collection.InsertOne(contextValue, billboard)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	billboard.ID = objectID
	return billboard, nil
}

func (repository *BillboardRepository) GetByID(contextValue context.Context, billboardIdentifier primitive.ObjectID) (_ *model.Billboard, returnedError error) {
	var billboard model.Billboard
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": billboardIdentifier}).Decode(&billboard); returnedError != nil {
		return nil, returnedError
	}
	return &billboard, nil
}

func (repository *BillboardRepository) List(contextValue context.Context, filter bson.M) (_ []*model.Billboard, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, filter)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.Billboard
	for cursor.Next(contextValue) {
		var billboard model.Billboard
		if decodeError := cursor.Decode(&billboard); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &billboard)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}
	return results, nil
}

func (repository *BillboardRepository) UpdateByID(contextValue context.Context, billboardIdentifier primitive.ObjectID, update bson.M) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": billboardIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	if result.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return result.MatchedCount, nil
}

func (repository *BillboardRepository) DeleteByID(contextValue context.Context, billboardIdentifier primitive.ObjectID) (returnedError error) {
	_, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"_id": billboardIdentifier})
	return returnedError
}

// LinkCategory / UnlinkCategory 維護 billboard.categories 反向參照
func (repository *BillboardRepository) LinkCategory(contextValue context.Context, billboardIdentifier primitive.ObjectID, categoryIdentifier primitive.ObjectID) (returnedError error) {
	update := withUpdatedAt(bson.M{"$addToSet": bson.M{"categories": categoryIdentifier}})
	_, returnedError = repository.collection.UpdateOne(contextValue, bson.M{"_id": billboardIdentifier}, update)
	return returnedError
}

func (repository *BillboardRepository) UnlinkCategory(contextValue context.Context, billboardIdentifier primitive.ObjectID, categoryIdentifier primitive.ObjectID) (returnedError error) {
	update := withUpdatedAt(bson.M{"$pull": bson.M{"categories": categoryIdentifier}})
	_, returnedError = repository.collection.UpdateOne(contextValue, bson.M{"_id": billboardIdentifier}, update)
	return returnedError
}

func (repository *BillboardRepository) SetCategories(contextValue context.Context, billboardIdentifier primitive.ObjectID, categoryIdentifiers []primitive.ObjectID) (returnedError error) {
	if categoryIdentifiers == nil {
		categoryIdentifiers = []primitive.ObjectID{}
	}
	update := withUpdatedAt(bson.M{"$set": bson.M{"categories": categoryIdentifiers}})
	_, returnedError = repository.collection.UpdateOne(contextValue, bson.M{"_id": billboardIdentifier}, update)
	return returnedError
}
