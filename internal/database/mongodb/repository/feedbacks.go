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

type FeedbackRepository struct {
	collection *mongo.Collection
}

func NewFeedbackRepository(mongoClient *client.MongoClient) *FeedbackRepository {
	repository := &FeedbackRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBBackoffice)).Collection(string(core.MongoCollectionFeedbacks)),
	}
	_, _ = repository.collection.Indexes().CreateMany(context.Background(), model.FeedbackIndexes)
	return repository
}

func (repository *FeedbackRepository) Create(contextValue context.Context, feedback *model.Feedback) (_ *model.Feedback, returnedError error) {
	nowUTC := time.Now().UTC()
	if feedback.ID.IsZero() {
		feedback.ID = primitive.NewObjectID()
	}
	feedback.CreatedAt = nowUTC
	feedback.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, feedback)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	feedback.ID = objectID
	return feedback, nil
}

func (repository *FeedbackRepository) GetByID(contextValue context.Context, feedbackIdentifier primitive.ObjectID) (_ *model.Feedback, returnedError error) {
	var feedback model.Feedback
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": feedbackIdentifier}).Decode(&feedback); returnedError != nil {
		return nil, returnedError
	}
	return &feedback, nil
}

func (repository *FeedbackRepository) List(contextValue context.Context, filter bson.M) (_ []*model.Feedback, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, filter)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.Feedback
	for cursor.Next(contextValue) {
		var feedback model.Feedback
		if decodeError := cursor.Decode(&feedback); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &feedback)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}
	return results, nil
}

func (repository *FeedbackRepository) UpdateByID(contextValue context.Context, feedbackIdentifier primitive.ObjectID, update bson.M) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": feedbackIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	if result.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return result.MatchedCount, nil
}

func (repository *FeedbackRepository) DeleteByID(contextValue context.Context, feedbackIdentifier primitive.ObjectID) (returnedError error) {
	_, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"_id": feedbackIdentifier})
	return returnedError
}

// DeleteByIDs 產品/組合刪除時連同其評價一併清除
func (repository *FeedbackRepository) DeleteByIDs(contextValue context.Context, feedbackIdentifiers []primitive.ObjectID) (returnedCount int64, returnedError error) {
	if len(feedbackIdentifiers) == 0 {
		return 0, nil
	}
	result, deleteError := repository.collection.DeleteMany(contextValue, bson.M{"_id": bson.M{"$in": feedbackIdentifiers}})
	if deleteError != nil {
		return 0, deleteError
	}
	return result.DeletedCount, nil
}
