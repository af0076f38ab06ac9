package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SeoMetadata struct {
	ID            primitive.ObjectID `json:"id" bson:"_id"`
	StoreID       primitive.ObjectID `json:"storeId" bson:"storeId"`
	Url           string             `json:"url" bson:"url"`
	Title         string             `json:"title,omitempty" bson:"title,omitempty"`
	Description   string             `json:"description,omitempty" bson:"description,omitempty"`
	H1            string             `json:"h1,omitempty" bson:"h1,omitempty"`
	Canonical     string             `json:"canonical,omitempty" bson:"canonical,omitempty"`
	OgTitle       string             `json:"ogTitle,omitempty" bson:"ogTitle,omitempty"`
	OgDescription string             `json:"ogDescription,omitempty" bson:"ogDescription,omitempty"`
	OgImage       string             `json:"ogImage,omitempty" bson:"ogImage,omitempty"`
	Schema        string             `json:"schema,omitempty" bson:"schema,omitempty"` // JSON-LD 原文
	MetaRobots    string             `json:"metaRobots,omitempty" bson:"metaRobots,omitempty"`
	AltTag        string             `json:"altTag,omitempty" bson:"altTag,omitempty"`
	Keywords      []string           `json:"keywords,omitempty" bson:"keywords,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

var SeoMetadataIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "storeId", Value: 1}, {Key: "url", Value: 1}},
		Options: options.Index().SetName("idx_storeId_url"),
	},
}
