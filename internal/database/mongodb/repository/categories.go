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

type CategoryRepository struct {
	collection *mongo.Collection
}

func NewCategoryRepository(mongoClient *client.MongoClient) *CategoryRepository {
	repository := &CategoryRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBBackoffice)).Collection(string(core.MongoCollectionCategories)),
	}
	_, _ = repository.collection.Indexes().CreateMany(context.Background(), model.CategoryIndexes)
	return repository
}

func (repository *CategoryRepository) Create(contextValue context.Context, category *model.Category) (_ *model.Category, returnedError error) {
	nowUTC := time.Now().UTC()
	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}
	category.CreatedAt = nowUTC
	category.UpdatedAt = nowUTC
	if category.Products == nil {
		category.Products = []primitive.ObjectID{}
	}
	if category.Combos == nil {
		category.Combos = []primitive.ObjectID{}
	}

	insertResult, insertError := repository.collection.InsertOne(contextValue, category)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	category.ID = objectID
	return category, nil
}

func (repository *CategoryRepository) GetByID(contextValue context.Context, categoryIdentifier primitive.ObjectID) (_ *model.Category, returnedError error) {
	var category model.Category
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": categoryIdentifier}).Decode(&category); returnedError != nil {
		return nil, returnedError
	}
	return &category, nil
}

func (repository *CategoryRepository) List(contextValue context.Context, filter bson.M) (_ []*model.Category, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, filter)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.Category
	for cursor.Next(contextValue) {
		var category model.Category
		if decodeError := cursor.Decode(&category); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &category)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}
	return results, nil
}

func (repository *CategoryRepository) UpdateByID(contextValue context.Context, categoryIdentifier primitive.ObjectID, update bson.M) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": categoryIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	if result.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return result.MatchedCount, nil
}

func (repository *CategoryRepository) DeleteByID(contextValue context.Context, categoryIdentifier primitive.ObjectID) (returnedError error) {
	_, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"_id": categoryIdentifier})
	return returnedError
}

// CountByBillboard billboard 刪除政策（block 模式）的前置檢查
func (repository *CategoryRepository) CountByBillboard(contextValue context.Context, billboardIdentifier primitive.ObjectID) (returnedCount int64, returnedError error) {
	return repository.collection.CountDocuments(contextValue, bson.M{"billboardId": billboardIdentifier})
}

// DetachBillboard billboard 刪除政策（detach 模式）：清掉所有引用的 billboardId
func (repository *CategoryRepository) DetachBillboard(contextValue context.Context, billboardIdentifier primitive.ObjectID) (returnedCount int64, returnedError error) {
	update := withUpdatedAt(bson.M{"$unset": bson.M{"billboardId": ""}})
	result, updateError := repository.collection.UpdateMany(contextValue, bson.M{"billboardId": billboardIdentifier}, update)
	if updateError != nil {
		return 0, updateError
	}
	return result.ModifiedCount, nil
}

func (repository *CategoryRepository) LinkProduct(contextValue context.Context, categoryIdentifier primitive.ObjectID, productIdentifier primitive.ObjectID) (returnedError error) {
	update := withUpdatedAt(bson.M{"$addToSet": bson.M{"products": productIdentifier}})
	_, returnedError = repository.collection.UpdateOne(contextValue, bson.M{"_id": categoryIdentifier}, update)
	return returnedError
}

func (repository *CategoryRepository) UnlinkProduct(contextValue context.Context, categoryIdentifier primitive.ObjectID, productIdentifier primitive.ObjectID) (returnedError error) {
	update := withUpdatedAt(bson.M{"$pull": bson.M{"products": productIdentifier}})
	_, returnedError = repository.collection.UpdateOne(contextValue, bson.M{"_id": categoryIdentifier}, update)
	return returnedError
}

func (repository *CategoryRepository) LinkCombo(contextValue context.Context, categoryIdentifier primitive.ObjectID, comboIdentifier primitive.ObjectID) (returnedError error) {
	update := withUpdatedAt(bson.M{"$addToSet": bson.M{"combos": comboIdentifier}})
	_, returnedError = repository.collection.UpdateOne(contextValue, bson.M{"_id": categoryIdentifier}, update)
	return returnedError
}

func (repository *CategoryRepository) UnlinkCombo(contextValue context.Context, categoryIdentifier primitive.ObjectID, comboIdentifier primitive.ObjectID) (returnedError error) {
	update := withUpdatedAt(bson.M{"$pull": bson.M{"combos": comboIdentifier}})
	_, returnedError = repository.collection.UpdateOne(contextValue, bson.M{"_id": categoryIdentifier}, update)
	return returnedError
}

func (repository *CategoryRepository) SetProducts(contextValue context.Context, categoryIdentifier primitive.ObjectID, productIdentifiers []primitive.ObjectID) (returnedError error) {
	if productIdentifiers == nil {
		productIdentifiers = []primitive.ObjectID{}
	}
	update := withUpdatedAt(bson.M{"$set": bson.M{"products": productIdentifiers}})
	_, returnedError = repository.collection.UpdateOne(contextValue, bson.M{"_id": categoryIdentifier}, update)
	return returnedError
}

func (repository *CategoryRepository) SetCombos(contextValue context.Context, categoryIdentifier primitive.ObjectID, comboIdentifiers []primitive.ObjectID) (returnedError error) {
	if comboIdentifiers == nil {
		comboIdentifiers = []primitive.ObjectID{}
	}
	update := withUpdatedAt(bson.M{"$set": bson.M{"combos": comboIdentifiers}})
	_, returnedError = repository.collection.UpdateOne(contextValue, bson.M{"_id": categoryIdentifier}, update)
	return returnedError
}
