package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Category struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id"`
	StoreID     primitive.ObjectID   `json:"storeId" bson:"storeId"`
	Name        string               `json:"name" bson:"name"`
	ImageUrl    string               `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	BillboardID *primitive.ObjectID  `json:"billboardId,omitempty" bson:"billboardId,omitempty"`
	Products    []primitive.ObjectID `json:"products" bson:"products"` // 反向參照
	Combos      []primitive.ObjectID `json:"combos" bson:"combos"`     // 反向參照
	CreatedAt   time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt" bson:"updatedAt"`
}

var CategoryIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "storeId", Value: 1}},
		Options: options.Index().SetName("idx_storeId"),
	},
	{
		Keys:    bson.D{{Key: "storeId", Value: 1}, {Key: "billboardId", Value: 1}},
		Options: options.Index().SetName("idx_storeId_billboardId"),
	},
}
