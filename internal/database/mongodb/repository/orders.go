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

type OrderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(mongoClient *client.MongoClient) *OrderRepository {
	repository := &OrderRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBBackoffice)).Collection(string(core.MongoCollectionOrders)),
	}
	_, _ = repository.collection.Indexes().CreateMany(context.Background(), model.OrderIndexes)
	return repository
}

func (repository *OrderRepository) Create(contextValue context.Context, order *model.Order) (_ *model.Order, returnedError error) {
	nowUTC := time.Now().UTC()
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	order.CreatedAt = nowUTC
	order.UpdatedAt = nowUTC
	if order.Items == nil {
		order.Items = []model.OrderItem{}
	}

	insertResult, insertError := repository.collection.InsertOne(contextValue, order)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	order.ID = objectID
	return order, nil
}

func (repository *OrderRepository) GetByID(contextValue context.Context, orderIdentifier primitive.ObjectID) (_ *model.Order, returnedError error) {
	var order model.Order
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": orderIdentifier}).Decode(&order); returnedError != nil {
		return nil, returnedError
	}
	return &order, nil
}

func (repository *OrderRepository) List(contextValue context.Context, listOptions core.ListOptions) (_ []*model.Order, returnedError error) {
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

	var results []*model.Order
	for cursor.Next(contextValue) {
		var order model.Order
		if decodeError := cursor.Decode(&order); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &order)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}
	return results, nil
}

// ListCompletedByStore 統計分析用：只取已付款訂單
func (repository *OrderRepository) ListCompletedByStore(contextValue context.Context, storeIdentifier primitive.ObjectID) (_ []*model.Order, returnedError error) {
	return repository.List(contextValue, core.ListOptions{
		Filter: bson.M{"storeId": storeIdentifier, "status": core.OrderStatusCompleted},
	})
}

func (repository *OrderRepository) UpdateByID(contextValue context.Context, orderIdentifier primitive.ObjectID, update bson.M) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": orderIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	if result.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return result.MatchedCount, nil
}

// TransitionStatus 條件式更新：只有仍在 pending 的訂單才會被改寫，
// webhook 重送時 ModifiedCount 為 0，呼叫端視為 no-op。
func (repository *OrderRepository) TransitionStatus(
	contextValue context.Context,
	orderIdentifier primitive.ObjectID,
	toStatus core.OrderStatus,
	extraSet bson.M,
) (transitioned bool, returnedError error) {
	setFields := bson.M{"status": toStatus}
	for key, value := range extraSet {
		setFields[key] = value
	}
	filter := bson.M{"_id": orderIdentifier, "status": core.OrderStatusPending}
	update := withUpdatedAt(bson.M{"$set": setFields})

	result, updateError := repository.collection.UpdateOne(contextValue, filter, update)
	if updateError != nil {
		return false, updateError
	}
	return result.ModifiedCount > 0, nil
}

func (repository *OrderRepository) SetSessionID(contextValue context.Context, orderIdentifier primitive.ObjectID, sessionIdentifier string) (returnedError error) {
	update := withUpdatedAt(bson.M{"$set": bson.M{"sessionId": sessionIdentifier}})
	_, returnedError = repository.collection.UpdateOne(contextValue, bson.M{"_id": orderIdentifier}, update)
	return returnedError
}

func (repository *OrderRepository) DeleteByID(contextValue context.Context, orderIdentifier primitive.ObjectID) (returnedError error) {
	_, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"_id": orderIdentifier})
	return returnedError
}
