package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Batch 產品批號登錄（供外包裝查驗）
type Batch struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	StoreID   primitive.ObjectID `json:"storeId" bson:"storeId"`
	BatchID   string             `json:"batchId" bson:"batchId"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

var BatchIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "storeId", Value: 1}, {Key: "batchId", Value: 1}},
		Options: options.Index().SetName("uniq_storeId_batchId").SetUnique(true),
	},
}
