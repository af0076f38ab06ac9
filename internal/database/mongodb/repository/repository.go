package repository

import (
	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/bson"
)

// 統一管理所有 MongoDB repository
type MongoDBRepository struct {
	storeRepo     *StoreRepository
	billboardRepo *BillboardRepository
	categoryRepo  *CategoryRepository
	sizeRepo      *SizeRepository
	flavourRepo   *FlavourRepository
	productRepo   *ProductRepository
	comboRepo     *ComboRepository
	imageRepo     *ImageRepository
	feedbackRepo  *FeedbackRepository
	couponRepo    *CouponRepository
	orderRepo     *OrderRepository
	seoRepo       *SeoRepository
	blogRepo      *BlogRepository
	batchRepo     *BatchRepository
}

// 建立 MongoDB repository 物件
func NewMongoDBRepository(
	storeRepo *StoreRepository,
	billboardRepo *BillboardRepository,
	categoryRepo *CategoryRepository,
	sizeRepo *SizeRepository,
	flavourRepo *FlavourRepository,
	productRepo *ProductRepository,
	comboRepo *ComboRepository,
	imageRepo *ImageRepository,
	feedbackRepo *FeedbackRepository,
	couponRepo *CouponRepository,
	orderRepo *OrderRepository,
	seoRepo *SeoRepository,
	blogRepo *BlogRepository,
	batchRepo *BatchRepository,
) *MongoDBRepository {
	return &MongoDBRepository{
		storeRepo:     storeRepo,
		billboardRepo: billboardRepo,
		categoryRepo:  categoryRepo,
		sizeRepo:      sizeRepo,
		flavourRepo:   flavourRepo,
		productRepo:   productRepo,
		comboRepo:     comboRepo,
		imageRepo:     imageRepo,
		feedbackRepo:  feedbackRepo,
		couponRepo:    couponRepo,
		orderRepo:     orderRepo,
		seoRepo:       seoRepo,
		blogRepo:      blogRepo,
		batchRepo:     batchRepo,
	}
}

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewStoreRepository,
	NewBillboardRepository,
	NewCategoryRepository,
	NewSizeRepository,
	NewFlavourRepository,
	NewProductRepository,
	NewComboRepository,
	NewImageRepository,
	NewFeedbackRepository,
	NewCouponRepository,
	NewOrderRepository,
	NewSeoRepository,
	NewBlogRepository,
	NewBatchRepository,
	NewMongoDBRepository)

func withUpdatedAt(update bson.M) bson.M {
	// 確保 $currentDate 存在
	currentDate, ok := update["$currentDate"].(bson.M)
	if !ok || currentDate == nil {
		currentDate = bson.M{}
	}
	currentDate["updatedAt"] = true
	update["$currentDate"] = currentDate
	return update
}
