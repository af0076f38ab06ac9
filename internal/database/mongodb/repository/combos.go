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

type ComboRepository struct {
	collection *mongo.Collection
}

func NewComboRepository(mongoClient *client.MongoClient) *ComboRepository {
	repository := &ComboRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBBackoffice)).Collection(string(core.MongoCollectionCombos)),
	}
	_, _ = repository.collection.Indexes().CreateMany(context.Background(), model.ComboIndexes)
	return repository
}

func (repository *ComboRepository) Create(contextValue context.Context, combo *model.Combo) (_ *model.Combo, returnedError error) {
	nowUTC := time.Now().UTC()
	if combo.ID.IsZero() {
		combo.ID = primitive.NewObjectID()
	}
	combo.CreatedAt = nowUTC
	combo.UpdatedAt = nowUTC
	if combo.SizeIDs == nil {
		combo.SizeIDs = []primitive.ObjectID{}
	}
	if combo.FlavourIDs == nil {
		combo.FlavourIDs = []primitive.ObjectID{}
	}
	if combo.Images == nil {
		combo.Images = []primitive.ObjectID{}
	}
	if combo.Feedbacks == nil {
		combo.Feedbacks = []primitive.ObjectID{}
	}

	insertResult, insertError := repository.collection.InsertOne(contextValue, combo)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	combo.ID = objectID
	return combo, nil
}

func (repository *ComboRepository) GetByID(contextValue context.Context, comboIdentifier primitive.ObjectID) (_ *model.Combo, returnedError error) {
	var combo model.Combo
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": comboIdentifier}).Decode(&combo); returnedError != nil {
		return nil, returnedError
	}
	return &combo, nil
}

func (repository *ComboRepository) GetBySlug(contextValue context.Context, storeIdentifier primitive.ObjectID, slug string) (_ *model.Combo, returnedError error) {
	var combo model.Combo
	filter := bson.M{"storeId": storeIdentifier, "slug": slug}
	if returnedError = repository.collection.FindOne(contextValue, filter).Decode(&combo); returnedError != nil {
		return nil, returnedError
	}
	return &combo, nil
}

func (repository *ComboRepository) SlugExists(contextValue context.Context, storeIdentifier primitive.ObjectID, slug string, excludeIdentifier *primitive.ObjectID) (exists bool, returnedError error) {
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

func (repository *ComboRepository) List(contextValue context.Context, listOptions core.ListOptions) (_ []*model.Combo, returnedError error) {
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

	var results []*model.Combo
	for cursor.Next(contextValue) {
		var combo model.Combo
		if decodeError := cursor.Decode(&combo); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &combo)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}
	return results, nil
}

func (repository *ComboRepository) UpdateByID(contextValue context.Context, comboIdentifier primitive.ObjectID, update bson.M) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": comboIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	if result.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return result.MatchedCount, nil
}

func (repository *ComboRepository) DeleteByID(contextValue context.Context, comboIdentifier primitive.ObjectID) (returnedError error) {
	_, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"_id": comboIdentifier})
	return returnedError
}

func (repository *ComboRepository) LinkFeedback(contextValue context.Context, comboIdentifier primitive.ObjectID, feedbackIdentifier primitive.ObjectID) (returnedError error) {
	update := withUpdatedAt(bson.M{"$addToSet": bson.M{"feedbacks": feedbackIdentifier}})
	_, returnedError = repository.collection.UpdateOne(contextValue, bson.M{"_id": comboIdentifier}, update)
	return returnedError
}

func (repository *ComboRepository) UnlinkFeedback(contextValue context.Context, comboIdentifier primitive.ObjectID, feedbackIdentifier primitive.ObjectID) (returnedError error) {
	update := withUpdatedAt(bson.M{"$pull": bson.M{"feedbacks": feedbackIdentifier}})
	_, returnedError = repository.collection.UpdateOne(contextValue, bson.M{"_id": comboIdentifier}, update)
	return returnedError
}

func (repository *ComboRepository) SetImages(contextValue context.Context, comboIdentifier primitive.ObjectID, imageIdentifiers []primitive.ObjectID) (returnedError error) {
	if imageIdentifiers == nil {
		imageIdentifiers = []primitive.ObjectID{}
	}
	update := withUpdatedAt(bson.M{"$set": bson.M{"images": imageIdentifiers}})
	_, returnedError = repository.collection.UpdateOne(contextValue, bson.M{"_id": comboIdentifier}, update)
	return returnedError
}
