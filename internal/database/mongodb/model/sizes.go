package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Size struct {
	ID        primitive.ObjectID   `json:"id" bson:"_id"`
	StoreID   primitive.ObjectID   `json:"storeId" bson:"storeId"`
	Name      string               `json:"name" bson:"name"`
	Value     string               `json:"value" bson:"value"` // 顯示值，例如 "1kg"
	Products  []primitive.ObjectID `json:"products" bson:"products"`
	Combos    []primitive.ObjectID `json:"combos" bson:"combos"`
	CreatedAt time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt" bson:"updatedAt"`
}

var SizeIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "storeId", Value: 1}},
		Options: options.Index().SetName("idx_storeId"),
	},
}
