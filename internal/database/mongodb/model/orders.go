package model

import (
	"time"

	"backoffice/internal/core"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderItem 建單當下凍結的品項快照，之後產品改價不影響既有訂單
type OrderItem struct {
	ProductID primitive.ObjectID  `json:"productId" bson:"productId"`
	Name      string              `json:"name" bson:"name"`
	Quantity  int64               `json:"quantity" bson:"quantity"`
	SizeID    primitive.ObjectID  `json:"sizeId" bson:"sizeId"`
	SizeName  string              `json:"sizeName,omitempty" bson:"sizeName,omitempty"`
	FlavourID *primitive.ObjectID `json:"flavourId,omitempty" bson:"flavourId,omitempty"`
	UnitPrice float64             `json:"unitPrice" bson:"unitPrice"`
}

type Order struct {
	ID         primitive.ObjectID  `json:"id" bson:"_id"`
	StoreID    primitive.ObjectID  `json:"storeId" bson:"storeId"`
	CustomerID string              `json:"customerId,omitempty" bson:"customerId,omitempty"`
	Status     core.OrderStatus    `json:"status" bson:"status"`
	Items      []OrderItem         `json:"items" bson:"items"`
	Subtotal   float64             `json:"subtotal" bson:"subtotal"`
	Discount   float64             `json:"discount" bson:"discount"`
	Total      float64             `json:"total" bson:"total"`
	CouponID   *primitive.ObjectID `json:"couponId,omitempty" bson:"couponId,omitempty"`
	CouponCode string              `json:"couponCode,omitempty" bson:"couponCode,omitempty"`
	Phone      string              `json:"phone,omitempty" bson:"phone,omitempty"`
	Address    string              `json:"address,omitempty" bson:"address,omitempty"`
	SessionID  string              `json:"sessionId,omitempty" bson:"sessionId,omitempty"`
	PaidAt     *time.Time          `json:"paidAt,omitempty" bson:"paidAt,omitempty"`
	CreatedAt  time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt" bson:"updatedAt"`
}

var OrderIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "storeId", Value: 1}, {Key: "status", Value: 1}},
		Options: options.Index().SetName("idx_storeId_status"),
	},
	{
		Keys:    bson.D{{Key: "sessionId", Value: 1}},
		Options: options.Index().SetName("idx_sessionId"),
	},
	{
		Keys:    bson.D{{Key: "storeId", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("idx_storeId_createdAt"),
	},
}
