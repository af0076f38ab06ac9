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

type BlogRepository struct {
	collection *mongo.Collection
}

func NewBlogRepository(mongoClient *client.MongoClient) *BlogRepository {
	repository := &BlogRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBBackoffice)).Collection(string(core.MongoCollectionBlogPosts)),
	}
	_, _ = repository.collection.Indexes().CreateMany(context.Background(), model.BlogPostIndexes)
	return repository
}

func (repository *BlogRepository) Create(contextValue context.Context, post *model.BlogPost) (_ *model.BlogPost, returnedError error) {
	nowUTC := time.Now().UTC()
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	post.CreatedAt = nowUTC
	post.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, post)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	post.ID = objectID
	return post, nil
}

func (repository *BlogRepository) GetByID(contextValue context.Context, postIdentifier primitive.ObjectID) (_ *model.BlogPost, returnedError error) {
	var post model.BlogPost
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": postIdentifier}).Decode(&post); returnedError != nil {
		return nil, returnedError
	}
	return &post, nil
}

func (repository *BlogRepository) List(contextValue context.Context, filter bson.M) (_ []*model.BlogPost, returnedError error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, findError := repository.collection.Find(contextValue, filter, findOptions)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.BlogPost
	for cursor.Next(contextValue) {
		var post model.BlogPost
		if decodeError := cursor.Decode(&post); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &post)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}
	return results, nil
}

func (repository *BlogRepository) UpdateByID(contextValue context.Context, postIdentifier primitive.ObjectID, update bson.M) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": postIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	if result.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return result.MatchedCount, nil
}

func (repository *BlogRepository) DeleteByID(contextValue context.Context, postIdentifier primitive.ObjectID) (returnedError error) {
	_, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"_id": postIdentifier})
	return returnedError
}
