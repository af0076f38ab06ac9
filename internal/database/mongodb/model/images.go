package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Image 隸屬於 product 或 combo 其中之一
type Image struct {
	ID        primitive.ObjectID  `json:"id" bson:"_id"`
	Url       string              `json:"url" bson:"url"`
	ProductID *primitive.ObjectID `json:"productId,omitempty" bson:"productId,omitempty"`
	ComboID   *primitive.ObjectID `json:"comboId,omitempty" bson:"comboId,omitempty"`
	CreatedAt time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt" bson:"updatedAt"`
}

var ImageIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "productId", Value: 1}},
		Options: options.Index().SetName("idx_productId"),
	},
	{
		Keys:    bson.D{{Key: "comboId", Value: 1}},
		Options: options.Index().SetName("idx_comboId"),
	},
}
