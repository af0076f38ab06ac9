package service

import (
	"context"

	"backoffice/internal/core"
	"backoffice/internal/database/mongodb/model"
	"backoffice/internal/database/mongodb/repository"
	cErr "backoffice/internal/pkg/error"
	"backoffice/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ReconcileService 以前向參照為準重算所有 back-reference 陣列，
// 把交易範圍外造成的殘留（例如手動改庫）收斂回一致狀態。
type ReconcileService struct {
	trace         *telemetry.Trace
	logger        *zap.Logger
	storeRepo     *repository.StoreRepository
	billboardRepo *repository.BillboardRepository
	categoryRepo  *repository.CategoryRepository
	sizeRepo      *repository.SizeRepository
	flavourRepo   *repository.FlavourRepository
	productRepo   *repository.ProductRepository
	comboRepo     *repository.ComboRepository
	orderRepo     *repository.OrderRepository
	feedbackRepo  *repository.FeedbackRepository
	imageRepo     *repository.ImageRepository
	audit         *AuditService
}

func NewReconcileService(
	trace *telemetry.Trace,
	logger *zap.Logger,
	storeRepo *repository.StoreRepository,
	billboardRepo *repository.BillboardRepository,
	categoryRepo *repository.CategoryRepository,
	sizeRepo *repository.SizeRepository,
	flavourRepo *repository.FlavourRepository,
	productRepo *repository.ProductRepository,
	comboRepo *repository.ComboRepository,
	orderRepo *repository.OrderRepository,
	feedbackRepo *repository.FeedbackRepository,
	imageRepo *repository.ImageRepository,
	audit *AuditService,
) *ReconcileService {
	return &ReconcileService{
		trace:         trace,
		logger:        logger,
		storeRepo:     storeRepo,
		billboardRepo: billboardRepo,
		categoryRepo:  categoryRepo,
		sizeRepo:      sizeRepo,
		flavourRepo:   flavourRepo,
		productRepo:   productRepo,
		comboRepo:     comboRepo,
		orderRepo:     orderRepo,
		feedbackRepo:  feedbackRepo,
		imageRepo:     imageRepo,
		audit:         audit,
	}
}

// ReconcileAll 逐店收斂，單店失敗不中斷其餘店家
func (s *ReconcileService) ReconcileAll(ctx context.Context) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	stores, err := s.storeRepo.List(ctx, bson.M{})
	if err != nil {
		return cErr.DatabaseError("database ReconcileAll error")
	}
	for _, store := range stores {
		if reconcileError := s.ReconcileStore(ctx, store); reconcileError != nil {
			s.logger.Error("store reconcile failed",
				zap.String("storeId", store.ID.Hex()),
				zap.Error(reconcileError))
		}
	}
	return nil
}

// ReconcileStore 重算單一 store 轄下所有反向參照。
// 收斂是冪等的，重跑不會改變已一致的文件。
func (s *ReconcileService) ReconcileStore(ctx context.Context, store *model.Store) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	byStore := bson.M{"storeId": store.ID}

	billboards, err := s.billboardRepo.List(ctx, byStore)
	if err != nil {
		return cErr.DatabaseError("database ReconcileStore error")
	}
	categories, err := s.categoryRepo.List(ctx, byStore)
	if err != nil {
		return cErr.DatabaseError("database ReconcileStore error")
	}
	sizes, err := s.sizeRepo.List(ctx, byStore)
	if err != nil {
		return cErr.DatabaseError("database ReconcileStore error")
	}
	flavours, err := s.flavourRepo.List(ctx, byStore)
	if err != nil {
		return cErr.DatabaseError("database ReconcileStore error")
	}
	products, err := s.productRepo.List(ctx, core.ListOptions{Filter: bson.M{"storeId": store.ID}})
	if err != nil {
		return cErr.DatabaseError("database ReconcileStore error")
	}
	combos, err := s.comboRepo.List(ctx, core.ListOptions{Filter: bson.M{"storeId": store.ID}})
	if err != nil {
		return cErr.DatabaseError("database ReconcileStore error")
	}
	orders, err := s.orderRepo.List(ctx, core.ListOptions{Filter: bson.M{"storeId": store.ID}})
	if err != nil {
		return cErr.DatabaseError("database ReconcileStore error")
	}

	// store 的子實體陣列
	storeRefs := map[core.StoreRefField][]primitive.ObjectID{
		core.StoreRefBillboards: {},
		core.StoreRefCategories: {},
		core.StoreRefSizes:      {},
		core.StoreRefFlavours:   {},
		core.StoreRefProducts:   {},
		core.StoreRefCombos:     {},
		core.StoreRefOrders:     {},
	}
	for _, billboard := range billboards {
		storeRefs[core.StoreRefBillboards] = append(storeRefs[core.StoreRefBillboards], billboard.ID)
	}
	for _, category := range categories {
		storeRefs[core.StoreRefCategories] = append(storeRefs[core.StoreRefCategories], category.ID)
	}
	for _, size := range sizes {
		storeRefs[core.StoreRefSizes] = append(storeRefs[core.StoreRefSizes], size.ID)
	}
	for _, flavour := range flavours {
		storeRefs[core.StoreRefFlavours] = append(storeRefs[core.StoreRefFlavours], flavour.ID)
	}
	for _, product := range products {
		storeRefs[core.StoreRefProducts] = append(storeRefs[core.StoreRefProducts], product.ID)
	}
	for _, combo := range combos {
		storeRefs[core.StoreRefCombos] = append(storeRefs[core.StoreRefCombos], combo.ID)
	}
	for _, order := range orders {
		storeRefs[core.StoreRefOrders] = append(storeRefs[core.StoreRefOrders], order.ID)
	}
	for field, ids := range storeRefs {
		if err = s.storeRepo.SetChildren(ctx, store.ID, field, ids); err != nil {
			return cErr.DatabaseError("database ReconcileStore error")
		}
	}

	// billboard.categories 以 category.billboardId 為準
	billboardCategories := make(map[primitive.ObjectID][]primitive.ObjectID)
	// category.products / category.combos 以前向的 categoryId 為準
	categoryProducts := make(map[primitive.ObjectID][]primitive.ObjectID)
	categoryCombos := make(map[primitive.ObjectID][]primitive.ObjectID)
	// size / flavour 的 products / combos
	sizeProducts := make(map[primitive.ObjectID][]primitive.ObjectID)
	sizeCombos := make(map[primitive.ObjectID][]primitive.ObjectID)
	flavourProducts := make(map[primitive.ObjectID][]primitive.ObjectID)
	flavourCombos := make(map[primitive.ObjectID][]primitive.ObjectID)

	for _, category := range categories {
		if category.BillboardID != nil {
			billboardCategories[*category.BillboardID] = append(billboardCategories[*category.BillboardID], category.ID)
		}
	}
	for _, product := range products {
		categoryProducts[product.CategoryID] = append(categoryProducts[product.CategoryID], product.ID)
		for _, productSize := range product.Sizes {
			sizeProducts[productSize.SizeID] = append(sizeProducts[productSize.SizeID], product.ID)
		}
		for _, flavourID := range product.FlavourIDs {
			flavourProducts[flavourID] = append(flavourProducts[flavourID], product.ID)
		}
	}
	for _, combo := range combos {
		categoryCombos[combo.CategoryID] = append(categoryCombos[combo.CategoryID], combo.ID)
		for _, sizeID := range combo.SizeIDs {
			sizeCombos[sizeID] = append(sizeCombos[sizeID], combo.ID)
		}
		for _, flavourID := range combo.FlavourIDs {
			flavourCombos[flavourID] = append(flavourCombos[flavourID], combo.ID)
		}
	}

	for _, billboard := range billboards {
		if err = s.billboardRepo.SetCategories(ctx, billboard.ID, orEmpty(billboardCategories[billboard.ID])); err != nil {
			return cErr.DatabaseError("database ReconcileStore error")
		}
	}
	for _, category := range categories {
		if err = s.categoryRepo.SetProducts(ctx, category.ID, orEmpty(categoryProducts[category.ID])); err != nil {
			return cErr.DatabaseError("database ReconcileStore error")
		}
		if err = s.categoryRepo.SetCombos(ctx, category.ID, orEmpty(categoryCombos[category.ID])); err != nil {
			return cErr.DatabaseError("database ReconcileStore error")
		}
	}
	for _, size := range sizes {
		update := bson.M{"$set": bson.M{
			"products": orEmpty(sizeProducts[size.ID]),
			"combos":   orEmpty(sizeCombos[size.ID]),
		}}
		if _, err = s.sizeRepo.UpdateByID(ctx, size.ID, update); err != nil {
			return cErr.DatabaseError("database ReconcileStore error")
		}
	}
	for _, flavour := range flavours {
		update := bson.M{"$set": bson.M{
			"products": orEmpty(flavourProducts[flavour.ID]),
			"combos":   orEmpty(flavourCombos[flavour.ID]),
		}}
		if _, err = s.flavourRepo.UpdateByID(ctx, flavour.ID, update); err != nil {
			return cErr.DatabaseError("database ReconcileStore error")
		}
	}

	// product / combo 的 images 與 feedbacks
	for _, product := range products {
		if err = s.reconcileProductOwned(ctx, product); err != nil {
			return err
		}
	}
	for _, combo := range combos {
		if err = s.reconcileComboOwned(ctx, combo); err != nil {
			return err
		}
	}

	s.logger.Info("store reconciled",
		zap.String("storeId", store.ID.Hex()),
		zap.Int("billboards", len(billboards)),
		zap.Int("categories", len(categories)),
		zap.Int("products", len(products)),
		zap.Int("combos", len(combos)))
	s.audit.Record(ctx, core.EntityStore, core.AuditReconcile, store.ID, store.ID, "system")
	return nil
}

func (s *ReconcileService) reconcileProductOwned(ctx context.Context, product *model.Product) error {
	images, err := s.imageRepo.ListByProduct(ctx, product.ID)
	if err != nil {
		return cErr.DatabaseError("database ReconcileStore error")
	}
	imageIDs := make([]primitive.ObjectID, 0, len(images))
	for _, image := range images {
		imageIDs = append(imageIDs, image.ID)
	}
	if err = s.productRepo.SetImages(ctx, product.ID, imageIDs); err != nil {
		return cErr.DatabaseError("database ReconcileStore error")
	}

	feedbacks, err := s.feedbackRepo.List(ctx, bson.M{"productId": product.ID})
	if err != nil {
		return cErr.DatabaseError("database ReconcileStore error")
	}
	feedbackIDs := make([]primitive.ObjectID, 0, len(feedbacks))
	for _, feedback := range feedbacks {
		feedbackIDs = append(feedbackIDs, feedback.ID)
	}
	update := bson.M{"$set": bson.M{"feedbacks": feedbackIDs}}
	if _, err = s.productRepo.UpdateByID(ctx, product.ID, update); err != nil {
		return cErr.DatabaseError("database ReconcileStore error")
	}
	return nil
}

func (s *ReconcileService) reconcileComboOwned(ctx context.Context, combo *model.Combo) error {
	images, err := s.imageRepo.ListByCombo(ctx, combo.ID)
	if err != nil {
		return cErr.DatabaseError("database ReconcileStore error")
	}
	imageIDs := make([]primitive.ObjectID, 0, len(images))
	for _, image := range images {
		imageIDs = append(imageIDs, image.ID)
	}
	if err = s.comboRepo.SetImages(ctx, combo.ID, imageIDs); err != nil {
		return cErr.DatabaseError("database ReconcileStore error")
	}

	feedbacks, err := s.feedbackRepo.List(ctx, bson.M{"comboId": combo.ID})
	if err != nil {
		return cErr.DatabaseError("database ReconcileStore error")
	}
	feedbackIDs := make([]primitive.ObjectID, 0, len(feedbacks))
	for _, feedback := range feedbacks {
		feedbackIDs = append(feedbackIDs, feedback.ID)
	}
	update := bson.M{"$set": bson.M{"feedbacks": feedbackIDs}}
	if _, err = s.comboRepo.UpdateByID(ctx, combo.ID, update); err != nil {
		return cErr.DatabaseError("database ReconcileStore error")
	}
	return nil
}

// orEmpty $set 空陣列而不是 null
func orEmpty(ids []primitive.ObjectID) []primitive.ObjectID {
	if ids == nil {
		return []primitive.ObjectID{}
	}
	return ids
}
