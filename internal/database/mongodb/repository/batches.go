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

type BatchRepository struct {
	collection *mongo.Collection
}

func NewBatchRepository(mongoClient *client.MongoClient) *BatchRepository {
	repository := &BatchRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBBackoffice)).Collection(string(core.MongoCollectionBatches)),
	}
	_, _ = repository.collection.Indexes().CreateMany(context.Background(), model.BatchIndexes)
	return repository
}

func (repository *BatchRepository) Create(contextValue context.Context, batch *model.Batch) (_ *model.Batch, returnedError error) {
	nowUTC := time.Now().UTC()
	if batch.ID.IsZero() {
		batch.ID = primitive.NewObjectID()
	}
	batch.CreatedAt = nowUTC
	batch.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, batch)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	batch.ID = objectID
	return batch, nil
}

func (repository *BatchRepository) GetByID(contextValue context.Context, batchIdentifier primitive.ObjectID) (_ *model.Batch, returnedError error) {
	var batch model.Batch
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": batchIdentifier}).Decode(&batch); returnedError != nil {
		return nil, returnedError
	}
	return &batch, nil
}

// GetByBatchID 外包裝批號查驗（公開查詢）
func (repository *BatchRepository) GetByBatchID(contextValue context.Context, storeIdentifier primitive.ObjectID, batchID string) (_ *model.Batch, returnedError error) {
	var batch model.Batch
	filter := bson.M{"storeId": storeIdentifier, "batchId": batchID}
	if returnedError = repository.collection.FindOne(contextValue, filter).Decode(&batch); returnedError != nil {
		return nil, returnedError
	}
	return &batch, nil
}

func (repository *BatchRepository) List(contextValue context.Context, filter bson.M) (_ []*model.Batch, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, filter)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.Batch
	for cursor.Next(contextValue) {
		var batch model.Batch
		if decodeError := cursor.Decode(&batch); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &batch)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}
	return results, nil
}

func (repository *BatchRepository) UpdateByID(contextValue context.Context, batchIdentifier primitive.ObjectID, update bson.M) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": batchIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	if result.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return result.MatchedCount, nil
}

func (repository *BatchRepository) DeleteByID(contextValue context.Context, batchIdentifier primitive.ObjectID) (returnedError error) {
	_, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"_id": batchIdentifier})
	return returnedError
}
