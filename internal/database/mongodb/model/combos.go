package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Combo struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	StoreID     primitive.ObjectID `json:"storeId" bson:"storeId"`
	CategoryID  primitive.ObjectID `json:"categoryId" bson:"categoryId"`
	Name        string             `json:"name" bson:"name"`
	Slug        string             `json:"slug" bson:"slug"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Content     bson.M             `json:"content,omitempty" bson:"content,omitempty"`
	ContentHtml string             `json:"contentHtml,omitempty" bson:"contentHtml,omitempty"`
	Price       float64            `json:"price" bson:"price"` // combo 是單一價格，不像 product 按 size 定價
	FakePrice   float64            `json:"fakePrice,omitempty" bson:"fakePrice,omitempty"`
	IsFeatured  bool               `json:"isFeatured" bson:"isFeatured"`
	IsArchived  bool               `json:"isArchived" bson:"isArchived"`

	SizeIDs    []primitive.ObjectID `json:"sizeIds" bson:"sizeIds"`
	FlavourIDs []primitive.ObjectID `json:"flavourIds" bson:"flavourIds"`
	Images     []primitive.ObjectID `json:"images" bson:"images"`
	Feedbacks  []primitive.ObjectID `json:"feedbacks" bson:"feedbacks"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

var ComboIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "storeId", Value: 1}, {Key: "slug", Value: 1}},
		Options: options.Index().SetName("uniq_storeId_slug").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "storeId", Value: 1}, {Key: "categoryId", Value: 1}},
		Options: options.Index().SetName("idx_storeId_categoryId"),
	},
}
