package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Billboard struct {
	ID         primitive.ObjectID   `json:"id" bson:"_id"`
	StoreID    primitive.ObjectID   `json:"storeId" bson:"storeId"`
	Label      string               `json:"label" bson:"label"`
	ImageUrl   string               `json:"imageUrl" bson:"imageUrl"`
	Categories []primitive.ObjectID `json:"categories" bson:"categories"` // 反向參照
	CreatedAt  time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time            `json:"updatedAt" bson:"updatedAt"`
}

var BillboardIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "storeId", Value: 1}},
		Options: options.Index().SetName("idx_storeId"),
	},
}
