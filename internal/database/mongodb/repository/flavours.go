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

type FlavourRepository struct {
	collection *mongo.Collection
}

func NewFlavourRepository(mongoClient *client.MongoClient) *FlavourRepository {
	repository := &FlavourRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBBackoffice)).Collection(string(core.MongoCollectionFlavours)),
	}
	_, _ = repository.collection.Indexes().CreateMany(context.Background(), model.FlavourIndexes)
	return repository
}

func (repository *FlavourRepository) Create(contextValue context.Context, flavour *model.Flavour) (_ *model.Flavour, returnedError error) {
	nowUTC := time.Now().UTC()
	if flavour.ID.IsZero() {
		flavour.ID = primitive.NewObjectID()
	}
	flavour.CreatedAt = nowUTC
	flavour.UpdatedAt = nowUTC
	if flavour.Products == nil {
		flavour.Products = []primitive.ObjectID{}
	}
	if flavour.Combos == nil {
		flavour.Combos = []primitive.ObjectID{}
	}

	insertResult, insertError := repository.collection.InsertOne(contextValue, flavour)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	flavour.ID = objectID
	return flavour, nil
}

func (repository *FlavourRepository) GetByID(contextValue context.Context, flavourIdentifier primitive.ObjectID) (_ *model.Flavour, returnedError error) {
	var flavour model.Flavour
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": flavourIdentifier}).Decode(&flavour); returnedError != nil {
		return nil, returnedError
	}
	return &flavour, nil
}

func (repository *FlavourRepository) List(contextValue context.Context, filter bson.M) (_ []*model.Flavour, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, filter)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.Flavour
	for cursor.Next(contextValue) {
		var flavour model.Flavour
		if decodeError := cursor.Decode(&flavour); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &flavour)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}
	return results, nil
}

func (repository *FlavourRepository) CountByIDs(contextValue context.Context, storeIdentifier primitive.ObjectID, flavourIdentifiers []primitive.ObjectID) (returnedCount int64, returnedError error) {
	filter := bson.M{"_id": bson.M{"$in": flavourIdentifiers}, "storeId": storeIdentifier}
	return repository.collection.CountDocuments(contextValue, filter)
}

func (repository *FlavourRepository) UpdateByID(contextValue context.Context, flavourIdentifier primitive.ObjectID, update bson.M) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": flavourIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	if result.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return result.MatchedCount, nil
}

func (repository *FlavourRepository) DeleteByID(contextValue context.Context, flavourIdentifier primitive.ObjectID) (returnedError error) {
	_, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"_id": flavourIdentifier})
	return returnedError
}

func (repository *FlavourRepository) LinkProduct(contextValue context.Context, flavourIdentifiers []primitive.ObjectID, productIdentifier primitive.ObjectID) (returnedError error) {
	if len(flavourIdentifiers) == 0 {
		return nil
	}
	update := withUpdatedAt(bson.M{"$addToSet": bson.M{"products": productIdentifier}})
	_, returnedError = repository.collection.UpdateMany(contextValue, bson.M{"_id": bson.M{"$in": flavourIdentifiers}}, update)
	return returnedError
}

func (repository *FlavourRepository) UnlinkProduct(contextValue context.Context, flavourIdentifiers []primitive.ObjectID, productIdentifier primitive.ObjectID) (returnedError error) {
	if len(flavourIdentifiers) == 0 {
		return nil
	}
	update := withUpdatedAt(bson.M{"$pull": bson.M{"products": productIdentifier}})
	_, returnedError = repository.collection.UpdateMany(contextValue, bson.M{"_id": bson.M{"$in": flavourIdentifiers}}, update)
	return returnedError
}

func (repository *FlavourRepository) LinkCombo(contextValue context.Context, flavourIdentifiers []primitive.ObjectID, comboIdentifier primitive.ObjectID) (returnedError error) {
	if len(flavourIdentifiers) == 0 {
		return nil
	}
	update := withUpdatedAt(bson.M{"$addToSet": bson.M{"combos": comboIdentifier}})
	_, returnedError = repository.collection.UpdateMany(contextValue, bson.M{"_id": bson.M{"$in": flavourIdentifiers}}, update)
	return returnedError
}

func (repository *FlavourRepository) UnlinkCombo(contextValue context.Context, flavourIdentifiers []primitive.ObjectID, comboIdentifier primitive.ObjectID) (returnedError error) {
	if len(flavourIdentifiers) == 0 {
		return nil
	}
	update := withUpdatedAt(bson.M{"$pull": bson.M{"combos": comboIdentifier}})
	_, returnedError = repository.collection.UpdateMany(contextValue, bson.M{"_id": bson.M{"$in": flavourIdentifiers}}, update)
	return returnedError
}
