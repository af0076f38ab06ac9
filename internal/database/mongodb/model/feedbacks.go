package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Feedback 隸屬於 product 或 combo 其中之一；approved 由後台審核
type Feedback struct {
	ID        primitive.ObjectID  `json:"id" bson:"_id"`
	UserName  string              `json:"userName" bson:"userName"`
	Rating    int                 `json:"rating" bson:"rating"` // 1..5
	Comment   string              `json:"comment,omitempty" bson:"comment,omitempty"`
	Approved  bool                `json:"approved" bson:"approved"`
	ProductID *primitive.ObjectID `json:"productId,omitempty" bson:"productId,omitempty"`
	ComboID   *primitive.ObjectID `json:"comboId,omitempty" bson:"comboId,omitempty"`
	CreatedAt time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt" bson:"updatedAt"`
}

var FeedbackIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "productId", Value: 1}, {Key: "approved", Value: 1}},
		Options: options.Index().SetName("idx_productId_approved"),
	},
	{
		Keys:    bson.D{{Key: "comboId", Value: 1}, {Key: "approved", Value: 1}},
		Options: options.Index().SetName("idx_comboId_approved"),
	},
}
