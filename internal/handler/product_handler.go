package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GTDGit/fas_dashboard/internal/service"
	"github.com/GTDGit/fas_dashboard/internal/utils"
)

// ProductHandler handles product-related HTTP endpoints.
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// GetProducts returns the product list with optional filters and pagination.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	q := parseListQuery(c)

	res, err := h.productService.List(c.Request.Context(), q.criteria, q.page, q.pageSize)
	if err != nil {
		writeError(c, err, "Failed to get products")
		return
	}

	utils.SuccessWithPagination(c, 200, "Products retrieved successfully", gin.H{
		"products": res.Items,
	}, res.Page, res.PageSize, res.Total)
}

// GetProduct returns a single product.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	p, err := h.productService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "Failed to get product")
		return
	}
	utils.Success(c, 200, "Product retrieved successfully", p)
}

// GetQuarantine returns product payloads that failed to load.
func (h *ProductHandler) GetQuarantine(c *gin.Context) {
	entries, err := h.productService.Quarantined(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to get quarantined products")
		return
	}
	utils.Success(c, 200, "Quarantined products retrieved successfully", gin.H{
		"entries": entries,
	})
}

// CreateProduct handles POST /v1/products.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req service.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	p, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "Failed to create product")
		return
	}
	utils.Success(c, 201, "Product created successfully", p)
}

// DeleteProduct handles DELETE /v1/products/:id?force=true.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	force, _ := strconv.ParseBool(c.DefaultQuery("force", "false"))

	res, err := h.productService.Delete(c.Request.Context(), c.Param("id"), force)
	if err != nil {
		writeError(c, err, "Failed to delete product")
		return
	}
	utils.Success(c, 200, "Product deleted successfully", res)
}

// GetCatalog returns the product types and term units.
func (h *ProductHandler) GetCatalog(c *gin.Context) {
	utils.Success(c, 200, "Catalog retrieved successfully", h.productService.Catalog())
}
