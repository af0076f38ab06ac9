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

type StoreRepository struct {
	collection *mongo.Collection
}

func NewStoreRepository(mongoClient *client.MongoClient) *StoreRepository {
	repository := &StoreRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBBackoffice)).Collection(string(core.MongoCollectionStores)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *StoreRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.StoreIndexes)
	return nil
}

func (repository *StoreRepository) Create(contextValue context.Context, store *model.Store) (_ *model.Store, returnedError error) {
	nowUTC := time.Now().UTC()
	if store.ID.IsZero() {
		store.ID = primitive.NewObjectID()
	}
	store.CreatedAt = nowUTC
	store.UpdatedAt = nowUTC
	ensureStoreRefs(store)

	insertResult, insertError := repository.collection.InsertOne(contextValue, store)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	store.ID = objectID
	return store, nil
}

// 反向參照欄位一律存空陣列而非 null，$addToSet 才不會踩到型別錯誤
func ensureStoreRefs(store *model.Store) {
	if store.Billboards == nil {
		store.Billboards = []primitive.ObjectID{}
	}
	if store.Categories == nil {
		store.Categories = []primitive.ObjectID{}
	}
	if store.Products == nil {
		store.Products = []primitive.ObjectID{}
	}
	if store.Sizes == nil {
		store.Sizes = []primitive.ObjectID{}
	}
	if store.Flavours == nil {
		store.Flavours = []primitive.ObjectID{}
	}
	if store.Combos == nil {
		store.Combos = []primitive.ObjectID{}
	}
	if store.Orders == nil {
		store.Orders = []primitive.ObjectID{}
	}
}

func (repository *StoreRepository) GetByID(contextValue context.Context, storeIdentifier primitive.ObjectID) (_ *model.Store, returnedError error) {
	var store model.Store
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": storeIdentifier}).Decode(&store); returnedError != nil {
		return nil, returnedError
	}
	return &store, nil
}

// GetByIDAndUser 擁有權檢查用：storeId 與外部身分 subject 同時吻合才回傳
func (repository *StoreRepository) GetByIDAndUser(contextValue context.Context, storeIdentifier primitive.ObjectID, userIdentifier string) (_ *model.Store, returnedError error) {
	var store model.Store
	filter := bson.M{"_id": storeIdentifier, "userId": userIdentifier}
	if returnedError = repository.collection.FindOne(contextValue, filter).Decode(&store); returnedError != nil {
		return nil, returnedError
	}
	return &store, nil
}

func (repository *StoreRepository) GetByUserAndName(contextValue context.Context, userIdentifier string, name string) (_ *model.Store, returnedError error) {
	var store model.Store
	filter := bson.M{"userId": userIdentifier, "name": name}
	if returnedError = repository.collection.FindOne(contextValue, filter).Decode(&store); returnedError != nil {
		return nil, returnedError
	}
	return &store, nil
}

func (repository *StoreRepository) List(contextValue context.Context, filter bson.M) (_ []*model.Store, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, filter)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.Store
	for cursor.Next(contextValue) {
		var store model.Store
		if decodeError := cursor.Decode(&store); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &store)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

func (repository *StoreRepository) UpdateByID(contextValue context.Context, storeIdentifier primitive.ObjectID, update bson.M) (returnedCount int64, returnedError error) {
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": storeIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	if result.MatchedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return result.MatchedCount, nil
}

func (repository *StoreRepository) DeleteByID(contextValue context.Context, storeIdentifier primitive.ObjectID) (returnedError error) {
	_, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"_id": storeIdentifier})
	return returnedError
}

// LinkChild 把子實體 id 加入 store 的反向參照陣列（$addToSet，重複呼叫無效果）
func (repository *StoreRepository) LinkChild(contextValue context.Context, storeIdentifier primitive.ObjectID, field core.StoreRefField, childIdentifier primitive.ObjectID) (returnedError error) {
	update := withUpdatedAt(bson.M{"$addToSet": bson.M{string(field): childIdentifier}})
	_, returnedError = repository.collection.UpdateOne(contextValue, bson.M{"_id": storeIdentifier}, update)
	return returnedError
}

// UnlinkChild 把子實體 id 從 store 的反向參照陣列移除（$pull，不存在時無效果）
func (repository *StoreRepository) UnlinkChild(contextValue context.Context, storeIdentifier primitive.ObjectID, field core.StoreRefField, childIdentifier primitive.ObjectID) (returnedError error) {
	update := withUpdatedAt(bson.M{"$pull": bson.M{string(field): childIdentifier}})
	_, returnedError = repository.collection.UpdateOne(contextValue, bson.M{"_id": storeIdentifier}, update)
	return returnedError
}

// SetChildren 收斂用：整批覆寫某個反向參照陣列
func (repository *StoreRepository) SetChildren(contextValue context.Context, storeIdentifier primitive.ObjectID, field core.StoreRefField, childIdentifiers []primitive.ObjectID) (returnedError error) {
	if childIdentifiers == nil {
		childIdentifiers = []primitive.ObjectID{}
	}
	update := withUpdatedAt(bson.M{"$set": bson.M{string(field): childIdentifiers}})
	_, returnedError = repository.collection.UpdateOne(contextValue, bson.M{"_id": storeIdentifier}, update)
	return returnedError
}
