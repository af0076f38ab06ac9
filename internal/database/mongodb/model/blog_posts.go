package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BlogPost struct {
	ID          primitive.ObjectID  `json:"id" bson:"_id"`
	StoreID     primitive.ObjectID  `json:"storeId" bson:"storeId"`
	ProductID   *primitive.ObjectID `json:"productId,omitempty" bson:"productId,omitempty"` // 關聯商品（可選）
	Title       string              `json:"title" bson:"title"`
	Content     bson.M              `json:"content,omitempty" bson:"content,omitempty"`
	ContentHtml string              `json:"contentHtml,omitempty" bson:"contentHtml,omitempty"`
	CreatedAt   time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt" bson:"updatedAt"`
}

var BlogPostIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "storeId", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("idx_storeId_createdAt"),
	},
}
