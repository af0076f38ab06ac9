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

type SeoRepository struct {
	collection *mongo.Collection
}

func NewSeoRepository(mongoClient *client.MongoClient) *SeoRepository {
	repository := &SeoRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBBackoffice)).Collection(string(core.MongoCollectionSeoMetadata)),
	}
	_, _ = repository.collection.Indexes().CreateMany(context.Background(), model.SeoMetadataIndexes)
	return repository
}

func (repository *SeoRepository) Create(contextValue context.Context, seo *model.SeoMetadata) (_ *model.SeoMetadata, returnedError error) {
	nowUTC := time.Now().UTC()
	if seo.ID.IsZero() {
		seo.ID = primitive.NewObjectID()
	}
	seo.CreatedAt = nowUTC
	seo.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, seo)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	seo.ID = objectID
	return seo, nil
}

func (repository *SeoRepository) GetByID(contextValue context.Context, seoIdentifier primitive.ObjectID) (_ *model.SeoMetadata, returnedError error) {
	var seo model.SeoMetadata
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": seoIdentifier}).Decode(&seo); returnedError != nil {
		return nil, returnedError
	}
	return &seo, nil
}

func (repository *SeoRepository) List(contextValue context.Context, filter bson.M) (_ []*model.SeoMetadata, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, filter)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.SeoMetadata
	for cursor.Next(contextValue) {
		var seo model.SeoMetadata
		if decodeError := cursor.Decode(&seo); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &seo)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}
	return results, nil
}

func (repository *SeoRepository) UpdateByID(contextValue context.Context, seoIdentifier primitive.ObjectID, update bson.M) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": seoIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	if result.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return result.MatchedCount, nil
}

func (repository *SeoRepository) DeleteByID(contextValue context.Context, seoIdentifier primitive.ObjectID) (returnedError error) {
	_, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"_id": seoIdentifier})
	return returnedError
}
