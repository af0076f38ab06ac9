package handler

import (
	"backoffice/internal/core"
	"backoffice/internal/dto"
	"backoffice/internal/pkg/response"
	"backoffice/internal/service"
	"backoffice/internal/telemetry"
	"backoffice/utils/validate"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductHandler struct {
	trace          *telemetry.Trace
	productService *service.ProductService
}

func NewProductHandler(trace *telemetry.Trace, productService *service.ProductService) *ProductHandler {
	return &ProductHandler{trace: trace, productService: productService}
}

// Create 建立商品
// @Summary 建立商品
// @Tags Product
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param storeId path string true "Store ID"
// @Param body body dto.CreateProductDto true "商品資訊"
// @Success 201 {object} model.Product
// @Failure 400 {object} map[string]string
// @Router /api/stores/{storeId}/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	var req dto.CreateProductDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	product, err := h.productService.CreateProduct(ctx, store, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, product)
}

// List 商品列表
// @Summary 商品列表，可依分類、口味、規格、精選過濾
// @Tags Product
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Param categoryId query string false "分類 ID"
// @Param flavourId query string false "口味 ID"
// @Param sizeId query string false "規格 ID"
// @Param isFeatured query bool false "只看精選"
// @Param isArchived query bool false "含封存"
// @Param page query int false "頁碼"
// @Param size query int false "每頁筆數"
// @Success 200 {array} model.Product
// @Router /api/stores/{storeId}/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	listOptions, err := productListOptions(c, store.ID, false)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	products, err := h.productService.ListProducts(ctx, listOptions)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, products)
}

// Get 取得商品
// @Summary 取得單一商品
// @Tags Product
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Param productId path string true "Product ID"
// @Success 200 {object} model.Product
// @Failure 404 {object} map[string]string
// @Router /api/stores/{storeId}/products/{productId} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	productID, cause, respErr := validate.ParseObjectID(c, "productId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	product, err := h.productService.GetProduct(ctx, store, productID)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, product)
}

// Update 更新商品
// @Summary 更新商品；名稱變更會重算 slug
// @Tags Product
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param storeId path string true "Store ID"
// @Param productId path string true "Product ID"
// @Param body body dto.UpdateProductDto true "商品資訊"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/stores/{storeId}/products/{productId} [patch]
func (h *ProductHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	productID, cause, respErr := validate.ParseObjectID(c, "productId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	var req dto.UpdateProductDto
	if cause, respErr = validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if err = h.productService.UpdateProduct(ctx, store, productID, &req); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "product updated"})
}

// Delete 刪除商品
// @Summary 刪除商品，連同圖片、評價與所有反向參照
// @Tags Product
// @Security BearerAuth
// @Produce json
// @Param storeId path string true "Store ID"
// @Param productId path string true "Product ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/stores/{storeId}/products/{productId} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	store, err := storeFrom(c)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	productID, cause, respErr := validate.ParseObjectID(c, "productId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if err = h.productService.DeleteProduct(ctx, store, productID); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "product deleted"})
}

// productListOptions 組查詢條件；storefront 端強制排除封存品
func productListOptions(c *gin.Context, storeID primitive.ObjectID, publicOnly bool) (core.ListOptions, error) {
	filter := bson.M{"storeId": storeID}

	if raw := c.Query("categoryId"); raw != "" {
		categoryID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return core.ListOptions{}, parseQueryErr("categoryId")
		}
		filter["categoryId"] = categoryID
	}
	if raw := c.Query("flavourId"); raw != "" {
		flavourID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return core.ListOptions{}, parseQueryErr("flavourId")
		}
		filter["flavourIds"] = flavourID
	}
	if raw := c.Query("sizeId"); raw != "" {
		sizeID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return core.ListOptions{}, parseQueryErr("sizeId")
		}
		filter["sizes.sizeId"] = sizeID
	}
	if raw := c.Query("isFeatured"); raw == "true" {
		filter["isFeatured"] = true
	}
	if publicOnly {
		filter["isArchived"] = false
	} else if raw := c.Query("isArchived"); raw != "" {
		filter["isArchived"] = raw == "true"
	}

	page, err := validate.GetInt64Query(c, "page", 0)
	if err != nil {
		return core.ListOptions{}, parseQueryErr("page")
	}
	size, err := validate.GetInt64Query(c, "size", 20)
	if err != nil {
		return core.ListOptions{}, parseQueryErr("size")
	}
	return core.ListOptions{Filter: filter, Page: page, Size: size}, nil
}
