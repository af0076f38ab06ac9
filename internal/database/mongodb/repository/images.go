package repository

import (
	"context"
	"time"

	"backoffice/internal/core"
	client "backoffice/internal/database/client"
	"backoffice/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ImageRepository struct {
	collection *mongo.Collection
}

func NewImageRepository(mongoClient *client.MongoClient) *ImageRepository {
	repository := &ImageRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBBackoffice)).Collection(string(core.MongoCollectionImages)),
	}
	_, _ = repository.collection.Indexes().CreateMany(context.Background(), model.ImageIndexes)
	return repository
}

// CreateMany 圖片一律整批寫（replace-all 替換語意）
func (repository *ImageRepository) CreateMany(contextValue context.Context, images []*model.Image) (_ []*model.Image, returnedError error) {
	if len(images) == 0 {
		return images, nil
	}
	nowUTC := time.Now().UTC()
	documents := make([]interface{}, 0, len(images))
	for _, image := range images {
		if image.ID.IsZero() {
			image.ID = primitive.NewObjectID()
		}
		image.CreatedAt = nowUTC
		image.UpdatedAt = nowUTC
		documents = append(documents, image)
	}
	_, returnedError = repository.collection.InsertMany(contextValue, documents)
	if returnedError != nil {
		return nil, returnedError
	}
	return images, nil
}

func (repository *ImageRepository) ListByProduct(contextValue context.Context, productIdentifier primitive.ObjectID) (_ []*model.Image, returnedError error) {
	return repository.list(contextValue, bson.M{"productId": productIdentifier})
}

func (repository *ImageRepository) ListByCombo(contextValue context.Context, comboIdentifier primitive.ObjectID) (_ []*model.Image, returnedError error) {
	return repository.list(contextValue, bson.M{"comboId": comboIdentifier})
}

func (repository *ImageRepository) list(contextValue context.Context, filter bson.M) (_ []*model.Image, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, filter)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.Image
	for cursor.Next(contextValue) {
		var image model.Image
		if decodeError := cursor.Decode(&image); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &image)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}
	return results, nil
}

func (repository *ImageRepository) DeleteByProduct(contextValue context.Context, productIdentifier primitive.ObjectID) (returnedCount int64, returnedError error) {
	result, deleteError := repository.collection.DeleteMany(contextValue, bson.M{"productId": productIdentifier})
	if deleteError != nil {
		return 0, deleteError
	}
	return result.DeletedCount, nil
}

func (repository *ImageRepository) DeleteByCombo(contextValue context.Context, comboIdentifier primitive.ObjectID) (returnedCount int64, returnedError error) {
	result, deleteError := repository.collection.DeleteMany(contextValue, bson.M{"comboId": comboIdentifier})
	if deleteError != nil {
		return 0, deleteError
	}
	return result.DeletedCount, nil
}
