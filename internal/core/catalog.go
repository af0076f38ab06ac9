package core

// CatalogEntity 後台可維護的目錄實體
type CatalogEntity string

const (
	EntityStore     CatalogEntity = "store"
	EntityBillboard CatalogEntity = "billboard"
	EntityCategory  CatalogEntity = "category"
	EntitySize      CatalogEntity = "size"
	EntityFlavour   CatalogEntity = "flavour"
	EntityProduct   CatalogEntity = "product"
	EntityCombo     CatalogEntity = "combo"
	EntityImage     CatalogEntity = "image"
	EntityFeedback  CatalogEntity = "feedback"
	EntityCoupon    CatalogEntity = "coupon"
	EntityOrder     CatalogEntity = "order"
	EntitySeo       CatalogEntity = "seo"
	EntityBlogPost  CatalogEntity = "blog"
	EntityBatch     CatalogEntity = "batch"
)

// AuditAction 異動稽核動作
type AuditAction string

const (
	AuditCreate    AuditAction = "create"
	AuditUpdate    AuditAction = "update"
	AuditDelete    AuditAction = "delete"
	AuditReconcile AuditAction = "reconcile"
)

// StoreRefField Store 文件上各子實體的 back-reference 欄位
type StoreRefField string

const (
	StoreRefBillboards StoreRefField = "billboards"
	StoreRefCategories StoreRefField = "categories"
	StoreRefProducts   StoreRefField = "products"
	StoreRefSizes      StoreRefField = "sizes"
	StoreRefFlavours   StoreRefField = "flavours"
	StoreRefCombos     StoreRefField = "combos"
	StoreRefOrders     StoreRefField = "orders"
)
