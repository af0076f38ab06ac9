package service

import (
	"context"
	"os"
	"testing"

	"backoffice/config"
	client "backoffice/internal/database/client"
	fluentdRepo "backoffice/internal/database/fluentd/repository"
	"backoffice/internal/database/mongodb/model"
	"backoffice/internal/database/mongodb/repository"
	"backoffice/internal/dto"
	"backoffice/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// 需要 replica set 的 mongod（transaction）。未設定 TEST_MONGODB_URI 時跳過。
type catalogFixture struct {
	mongoClient *client.MongoClient
	storeRepo   *repository.StoreRepository
	productRepo *repository.ProductRepository
	comboRepo   *repository.ComboRepository
	imageRepo   *repository.ImageRepository
	store       *model.Store
	category    *model.Category
	size        *model.Size
	flavour     *model.Flavour

	productService *ProductService
	comboService   *ComboService
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()
	uri := os.Getenv("TEST_MONGODB_URI")
	if uri == "" {
		t.Skip("TEST_MONGODB_URI not set; requires a replica-set mongod")
	}

	conf := &config.Configuration{}
	conf.MongoDB.URI = uri

	logger := zap.NewNop()
	trace, err := telemetry.NewTrace(conf)
	require.NoError(t, err)
	metric := telemetry.NewMetric(conf)

	mongoClient, cleanup, err := client.NewMongoClient(logger, conf)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	storeRepo := repository.NewStoreRepository(mongoClient)
	categoryRepo := repository.NewCategoryRepository(mongoClient)
	sizeRepo := repository.NewSizeRepository(mongoClient)
	flavourRepo := repository.NewFlavourRepository(mongoClient)
	productRepo := repository.NewProductRepository(mongoClient)
	comboRepo := repository.NewComboRepository(mongoClient)
	imageRepo := repository.NewImageRepository(mongoClient)
	feedbackRepo := repository.NewFeedbackRepository(mongoClient)
	audit := NewAuditService(logger, fluentdRepo.NewLogRepository(conf, nil), metric)

	ctx := context.Background()
	suffix := primitive.NewObjectID().Hex()

	store, err := storeRepo.Create(ctx, &model.Store{UserID: "user_" + suffix, Name: "store-" + suffix})
	require.NoError(t, err)
	category, err := categoryRepo.Create(ctx, &model.Category{StoreID: store.ID, Name: "protein"})
	require.NoError(t, err)
	size, err := sizeRepo.Create(ctx, &model.Size{StoreID: store.ID, Name: "1kg", Value: "1kg"})
	require.NoError(t, err)
	flavour, err := flavourRepo.Create(ctx, &model.Flavour{StoreID: store.ID, Name: "chocolate", Value: "#5c3a21"})
	require.NoError(t, err)

	return &catalogFixture{
		mongoClient: mongoClient,
		storeRepo:   storeRepo,
		productRepo: productRepo,
		comboRepo:   comboRepo,
		imageRepo:   imageRepo,
		store:       store,
		category:    category,
		size:        size,
		flavour:     flavour,
		productService: NewProductService(trace, metric, mongoClient,
			storeRepo, categoryRepo, sizeRepo, flavourRepo, productRepo, imageRepo, feedbackRepo, audit),
		comboService: NewComboService(trace, metric, mongoClient,
			storeRepo, categoryRepo, sizeRepo, flavourRepo, comboRepo, imageRepo, feedbackRepo, audit),
	}
}

func TestCreateProductPersistsImages(t *testing.T) {
	fixture := newCatalogFixture(t)
	ctx := context.Background()

	created, err := fixture.productService.CreateProduct(ctx, fixture.store, &dto.CreateProductDto{
		CategoryID: fixture.category.ID.Hex(),
		Name:       "whey isolate " + primitive.NewObjectID().Hex(),
		FlavourIDs: []string{fixture.flavour.ID.Hex()},
		Sizes:      []dto.ProductSizeDto{{SizeID: fixture.size.ID.Hex(), Price: 39.9}},
		Images: []string{
			"https://cdn.example.com/products/front.png",
			"https://cdn.example.com/products/back.png",
		},
	})
	require.NoError(t, err)
	require.Len(t, created.Images, 2)

	// 重新讀取，images 必須已寫進資料庫，而不是只留在記憶體
	persisted, err := fixture.productRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, created.Images, persisted.Images)

	imageDocs, err := fixture.imageRepo.ListByProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, imageDocs, 2)

	storeDoc, err := fixture.storeRepo.GetByID(ctx, fixture.store.ID)
	require.NoError(t, err)
	assert.Contains(t, storeDoc.Products, created.ID)
}

func TestCreateComboPersistsImages(t *testing.T) {
	fixture := newCatalogFixture(t)
	ctx := context.Background()

	created, err := fixture.comboService.CreateCombo(ctx, fixture.store, &dto.CreateComboDto{
		CategoryID: fixture.category.ID.Hex(),
		Name:       "starter pack " + primitive.NewObjectID().Hex(),
		Price:      59.9,
		SizeIDs:    []string{fixture.size.ID.Hex()},
		FlavourIDs: []string{fixture.flavour.ID.Hex()},
		Images:     []string{"https://cdn.example.com/combos/bundle.png"},
	})
	require.NoError(t, err)
	require.Len(t, created.Images, 1)

	persisted, err := fixture.comboRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, created.Images, persisted.Images)

	imageDocs, err := fixture.imageRepo.ListByCombo(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, imageDocs, 1)
}
