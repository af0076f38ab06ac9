package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	ID     primitive.ObjectID `json:"id" bson:"_id"`
	UserID string             `json:"userId" bson:"userId"` // 外部身分供應商的 subject
	Name   string             `json:"name" bson:"name"`

	// 反向參照（由 reference maintainer 維護，不由 API 直接寫入）
	Billboards []primitive.ObjectID `json:"billboards" bson:"billboards"`
	Categories []primitive.ObjectID `json:"categories" bson:"categories"`
	Products   []primitive.ObjectID `json:"products" bson:"products"`
	Sizes      []primitive.ObjectID `json:"sizes" bson:"sizes"`
	Flavours   []primitive.ObjectID `json:"flavours" bson:"flavours"`
	Combos     []primitive.ObjectID `json:"combos" bson:"combos"`
	Orders     []primitive.ObjectID `json:"orders" bson:"orders"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

var StoreIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "name", Value: 1}},
		Options: options.Index().SetName("uniq_userId_name").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetName("idx_userId"),
	},
}
