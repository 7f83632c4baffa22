package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/admin_get_product"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/admin_list_products"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/similar_products"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/create_product"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/delete_product"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/toggle_product_featured"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/toggle_product_status"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/update_product"
)

// ProductHandler serves the catalog endpoints.
type ProductHandler struct {
	listProducts      *list_products.Query
	getProduct        *get_product.Query
	similarProducts   *similar_products.Query
	adminListProducts *admin_list_products.Query
	adminGetProduct   *admin_get_product.Query
	createProduct     *create_product.Interactor
	updateProduct     *update_product.Interactor
	toggleStatus      *toggle_product_status.Interactor
	toggleFeatured    *toggle_product_featured.Interactor
	deleteProduct     *delete_product.Interactor
}

// NewProductHandler creates a new product handler.
func NewProductHandler(
	listProducts *list_products.Query,
	getProduct *get_product.Query,
	similarProducts *similar_products.Query,
	adminListProducts *admin_list_products.Query,
	adminGetProduct *admin_get_product.Query,
	createProduct *create_product.Interactor,
	updateProduct *update_product.Interactor,
	toggleStatus *toggle_product_status.Interactor,
	toggleFeatured *toggle_product_featured.Interactor,
	deleteProduct *delete_product.Interactor,
) *ProductHandler {
	return &ProductHandler{
		listProducts:      listProducts,
		getProduct:        getProduct,
		similarProducts:   similarProducts,
		adminListProducts: adminListProducts,
		adminGetProduct:   adminGetProduct,
		createProduct:     createProduct,
		updateProduct:     updateProduct,
		toggleStatus:      toggleStatus,
		toggleFeatured:    toggleFeatured,
		deleteProduct:     deleteProduct,
	}
}

// List serves GET /api/products.
func (h *ProductHandler) List(c *gin.Context) {
	req := &list_products.Request{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
		Skip:     queryInt64(c, "skip", 0),
		Limit:    queryInt64(c, "limit", 0),
	}
	if raw, ok := c.GetQuery("featured"); ok {
		featured := raw == "true"
		req.Featured = &featured
	}

	result, err := h.listProducts.Execute(c.Request.Context(), req)
	if err != nil {
		respondError(c, "list products", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      result.Products,
		"totalCount": result.TotalCount,
		"hasMore":    result.HasMore,
	})
}

// Get serves GET /api/products/:slug.
func (h *ProductHandler) Get(c *gin.Context) {
	detail, err := h.getProduct.Execute(c.Request.Context(), &get_product.Request{
		Slug: c.Param("slug"),
	})
	if err != nil {
		respondError(c, "get product", err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Similar serves GET /api/products/:slug/similar.
func (h *ProductHandler) Similar(c *gin.Context) {
	detail, err := h.getProduct.Execute(c.Request.Context(), &get_product.Request{
		Slug: c.Param("slug"),
	})
	if err != nil {
		respondError(c, "get product", err)
		return
	}

	cards, err := h.similarProducts.Execute(c.Request.Context(), &similar_products.Request{
		ProductID: detail.ProductID,
		Limit:     queryInt64(c, "limit", 0),
	})
	if err != nil {
		respondError(c, "list similar products", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": cards})
}

// AdminList serves GET /api/admin/products.
func (h *ProductHandler) AdminList(c *gin.Context) {
	result, err := h.adminListProducts.Execute(c.Request.Context(), &admin_list_products.Request{
		Principal: currentPrincipal(c),
		Page:      queryInt64(c, "page", 1),
		Limit:     queryInt64(c, "limit", 0),
		Search:    c.Query("search"),
		Category:  c.Query("category"),
		Status:    c.Query("status"),
	})
	if err != nil {
		respondError(c, "list products", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":       result.Products,
		"totalCount":  result.TotalCount,
		"totalPages":  result.TotalPages,
		"currentPage": result.CurrentPage,
	})
}

// AdminGet serves GET /api/admin/products/:id.
func (h *ProductHandler) AdminGet(c *gin.Context) {
	detail, err := h.adminGetProduct.Execute(c.Request.Context(), &admin_get_product.Request{
		Principal: currentPrincipal(c),
		ProductID: c.Param("id"),
	})
	if err != nil {
		respondError(c, "get product", err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

type createProductBody struct {
	Name         string            `json:"name" binding:"required"`
	Description  string            `json:"description"`
	Price        float64           `json:"price" binding:"required"`
	SalePrice    *float64          `json:"salePrice"`
	Inventory    int64             `json:"inventory"`
	PrimaryImage string            `json:"primaryImage" binding:"required"`
	ModelImage   string            `json:"modelImage"`
	Images       []string          `json:"images"`
	Category     string            `json:"category" binding:"required"`
	ClothType    string            `json:"clothType"`
	Tags         domain.StringList `json:"tags"`
	Sizes        domain.StringList `json:"sizes"`
	Featured     bool              `json:"featured"`
}

// Create serves POST /api/admin/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var body createProductBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	result, err := h.createProduct.Execute(c.Request.Context(), &create_product.Request{
		Principal:    currentPrincipal(c),
		Name:         body.Name,
		Description:  body.Description,
		Price:        body.Price,
		SalePrice:    body.SalePrice,
		Inventory:    body.Inventory,
		PrimaryImage: body.PrimaryImage,
		ModelImage:   body.ModelImage,
		Images:       body.Images,
		Category:     body.Category,
		ClothType:    body.ClothType,
		Tags:         body.Tags,
		Sizes:        body.Sizes,
		Featured:     body.Featured,
	})
	if err != nil {
		respondError(c, "create product", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       result.ProductID,
		"slug":     result.Slug,
		"warnings": result.Warnings,
	})
}

type updateProductBody struct {
	Name         *string            `json:"name"`
	Description  *string            `json:"description"`
	Price        *float64           `json:"price"`
	SalePrice    *float64           `json:"salePrice"`
	Inventory    *int64             `json:"inventory"`
	PrimaryImage *string            `json:"primaryImage"`
	ModelImage   *string            `json:"modelImage"`
	Images       []string           `json:"images"`
	Category     *string            `json:"category"`
	ClothType    *string            `json:"clothType"`
	Tags         *domain.StringList `json:"tags"`
	Sizes        *domain.StringList `json:"sizes"`
	IsActive     *bool              `json:"isActive"`
	Featured     *bool              `json:"featured"`
}

// Update serves PUT /api/admin/products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	var body updateProductBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	req := &update_product.Request{
		Principal:    currentPrincipal(c),
		ProductID:    c.Param("id"),
		Name:         body.Name,
		Description:  body.Description,
		Price:        body.Price,
		SalePrice:    body.SalePrice,
		Inventory:    body.Inventory,
		PrimaryImage: body.PrimaryImage,
		ModelImage:   body.ModelImage,
		Images:       body.Images,
		Category:     body.Category,
		ClothType:    body.ClothType,
		IsActive:     body.IsActive,
		Featured:     body.Featured,
	}
	if body.Tags != nil {
		req.Tags = *body.Tags
	}
	if body.Sizes != nil {
		req.Sizes = *body.Sizes
	}

	result, err := h.updateProduct.Execute(c.Request.Context(), req)
	if err != nil {
		respondError(c, "update product", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"slug":     result.Slug,
		"warnings": result.Warnings,
	})
}

// ToggleStatus serves PATCH /api/admin/products/:id/status.
func (h *ProductHandler) ToggleStatus(c *gin.Context) {
	result, err := h.toggleStatus.Execute(c.Request.Context(), &toggle_product_status.Request{
		Principal: currentPrincipal(c),
		ProductID: c.Param("id"),
	})
	if err != nil {
		respondError(c, "toggle product status", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"isActive": result.IsActive,
		"warnings": result.Warnings,
	})
}

// ToggleFeatured serves PATCH /api/admin/products/:id/featured.
func (h *ProductHandler) ToggleFeatured(c *gin.Context) {
	result, err := h.toggleFeatured.Execute(c.Request.Context(), &toggle_product_featured.Request{
		Principal: currentPrincipal(c),
		ProductID: c.Param("id"),
	})
	if err != nil {
		respondError(c, "toggle product featured", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"featured": result.Featured,
		"warnings": result.Warnings,
	})
}

// Delete serves DELETE /api/admin/products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	result, err := h.deleteProduct.Execute(c.Request.Context(), &delete_product.Request{
		Principal: currentPrincipal(c),
		ProductID: c.Param("id"),
	})
	if err != nil {
		respondError(c, "delete product", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"warnings": result.Warnings})
}

// queryInt64 parses an integer query parameter, falling back on absent
// or malformed values.
func queryInt64(c *gin.Context, name string, fallback int64) int64 {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return value
}
