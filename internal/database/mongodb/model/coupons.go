package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Coupon struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id"`
	StoreID            primitive.ObjectID `json:"storeId" bson:"storeId"`
	Code               string             `json:"code" bson:"code"` // 儲存時轉大寫，比對不分大小寫
	DiscountPercentage float64            `json:"discountPercentage" bson:"discountPercentage"`
	ExpiryDate         time.Time          `json:"expiryDate" bson:"expiryDate"`
	IsActive           bool               `json:"isActive" bson:"isActive"`
	CreatedAt          time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt" bson:"updatedAt"`
}

var CouponIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "storeId", Value: 1}, {Key: "code", Value: 1}},
		Options: options.Index().SetName("uniq_storeId_code").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "isActive", Value: 1}, {Key: "expiryDate", Value: 1}},
		Options: options.Index().SetName("idx_isActive_expiryDate"),
	},
}
