package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductSize 產品在某個 size 下的定價
type ProductSize struct {
	SizeID    primitive.ObjectID `json:"sizeId" bson:"sizeId"`
	Price     float64            `json:"price" bson:"price"`
	FakePrice float64            `json:"fakePrice,omitempty" bson:"fakePrice,omitempty"` // 劃掉的原價
}

type Product struct {
	ID             primitive.ObjectID `json:"id" bson:"_id"`
	StoreID        primitive.ObjectID `json:"storeId" bson:"storeId"`
	CategoryID     primitive.ObjectID `json:"categoryId" bson:"categoryId"`
	Name           string             `json:"name" bson:"name"`
	Slug           string             `json:"slug" bson:"slug"` // store 內唯一
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	Content        bson.M             `json:"content,omitempty" bson:"content,omitempty"` // 富文字編輯器原始 json
	ContentHtml    string             `json:"contentHtml,omitempty" bson:"contentHtml,omitempty"`
	Features       []string           `json:"features,omitempty" bson:"features,omitempty"`
	SuggestedUse   string             `json:"suggestedUse,omitempty" bson:"suggestedUse,omitempty"`
	Benefits       string             `json:"benefits,omitempty" bson:"benefits,omitempty"`
	NutritionalUse string             `json:"nutritionalUse,omitempty" bson:"nutritionalUse,omitempty"`
	IsFeatured     bool               `json:"isFeatured" bson:"isFeatured"`
	IsArchived     bool               `json:"isArchived" bson:"isArchived"`

	FlavourIDs []primitive.ObjectID `json:"flavourIds" bson:"flavourIds"`
	Sizes      []ProductSize        `json:"sizes" bson:"sizes"`
	Images     []primitive.ObjectID `json:"images" bson:"images"`
	Feedbacks  []primitive.ObjectID `json:"feedbacks" bson:"feedbacks"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

var ProductIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "storeId", Value: 1}, {Key: "slug", Value: 1}},
		Options: options.Index().SetName("uniq_storeId_slug").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "storeId", Value: 1}, {Key: "categoryId", Value: 1}},
		Options: options.Index().SetName("idx_storeId_categoryId"),
	},
	{
		Keys:    bson.D{{Key: "storeId", Value: 1}, {Key: "isFeatured", Value: 1}},
		Options: options.Index().SetName("idx_storeId_isFeatured"),
	},
}
