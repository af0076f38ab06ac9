package core

import "go.mongodb.org/mongo-driver/bson"

// ─── Database Types ────────────────────────────────────────────────────────────

// DatabaseType defines the type of database
type DatabaseType string

const (
	Mongo DatabaseType = "mongo"
	Redis DatabaseType = "redis"
)

// Databases contains all supported database types
var Databases = []DatabaseType{Mongo, Redis}

type MongoDatabaseName string
type MongoCollection string
type RedisKey string
type FluentdSubTag string

// ─── MongoDB ───────────────────────────────────────────────────────────────────
const (
	MongoDBBackoffice MongoDatabaseName = "backoffice"
)

// MongoDB collections
const (
	MongoCollectionStores      MongoCollection = "stores"
	MongoCollectionBillboards  MongoCollection = "billboards"
	MongoCollectionCategories  MongoCollection = "categories"
	MongoCollectionSizes       MongoCollection = "sizes"
	MongoCollectionFlavours    MongoCollection = "flavours"
	MongoCollectionProducts    MongoCollection = "products"
	MongoCollectionCombos      MongoCollection = "combos"
	MongoCollectionImages      MongoCollection = "images"
	MongoCollectionFeedbacks   MongoCollection = "feedbacks"
	MongoCollectionCoupons     MongoCollection = "coupons"
	MongoCollectionOrders      MongoCollection = "orders"
	MongoCollectionSeoMetadata MongoCollection = "seo_metadata"
	MongoCollectionBlogPosts   MongoCollection = "blog_posts"
	MongoCollectionBatches     MongoCollection = "batches"
)

// ─── Redis Keys ────────────────────────────────────────────────────────────────

const (
	RedisKeyRateLimit  RedisKey = "ratelimit"
	RedisKeyServerName RedisKey = "backoffice"
)

const (
	FluentdResponse FluentdSubTag = "response_log"
	FluentdAudit    FluentdSubTag = "catalog_audit_log"
)

type ListOptions struct {
	Filter bson.M `json:"filter,omitempty" bson:"filter,omitempty"`
	Page   int64  `json:"page,omitempty" bson:"page,omitempty"`
	Size   int64  `json:"size,omitempty" bson:"size,omitempty"`
}
