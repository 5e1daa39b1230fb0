package controllers

import (
	"net/http"
	"strconv"

	"github.com/Chekwachibuike/ecommerce/models"
	"github.com/Chekwachibuike/ecommerce/services"
	"github.com/Chekwachibuike/ecommerce/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
	defaultLimit    = 8
)

// ProductController handles product endpoints, with a cache-aside layer on
// the read paths.
type ProductController struct {
	service services.ProductService
	cache   *CacheManager
}

func NewProductController(service services.ProductService, cache *CacheManager) *ProductController {
	return &ProductController{service: service, cache: cache}
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	product, svcErr := pc.service.Create(c.Request.Context(), &req)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}

	if pc.cache != nil {
		pc.cache.InvalidateLists(c.Request.Context())
	}
	utils.Success(c, http.StatusCreated, "Product created successfully", product)
}

func (pc *ProductController) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if pc.cache != nil {
		if detail, hit := pc.cache.GetProduct(c.Request.Context(), id.Hex()); hit {
			utils.Success(c, http.StatusOK, "Product fetched successfully", detail)
			return
		}
	}

	detail, svcErr := pc.service.GetByID(c.Request.Context(), id)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}

	if pc.cache != nil {
		pc.cache.SetProductAsync(id.Hex(), detail)
	}
	utils.Success(c, http.StatusOK, "Product fetched successfully", detail)
}

func (pc *ProductController) GetProductBySlug(c *gin.Context) {
	detail, svcErr := pc.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	utils.Success(c, http.StatusOK, "Product fetched successfully", detail)
}

func (pc *ProductController) GetProductBySKU(c *gin.Context) {
	sku, err := strconv.Atoi(c.Param("sku"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid SKU format", nil)
		return
	}

	detail, svcErr := pc.service.GetBySKU(c.Request.Context(), sku)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	utils.Success(c, http.StatusOK, "Product fetched successfully", detail)
}

func (pc *ProductController) GetProductsByCategory(c *gin.Context) {
	categoryID, ok := parseIDParam(c, "categoryId")
	if !ok {
		return
	}

	products, svcErr := pc.service.GetByCategory(c.Request.Context(), categoryID)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	utils.Success(c, http.StatusOK, "Products fetched successfully", products)
}

func (pc *ProductController) GetFeaturedProducts(c *gin.Context) {
	limit := parseIntQuery(c, "limit", defaultLimit)
	products, svcErr := pc.service.GetFeatured(c.Request.Context(), limit)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	utils.Success(c, http.StatusOK, "Products fetched successfully", products)
}

func (pc *ProductController) GetInStockProducts(c *gin.Context) {
	products, svcErr := pc.service.GetInStock(c.Request.Context())
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	utils.Success(c, http.StatusOK, "Products fetched successfully", products)
}

func (pc *ProductController) GetProductsByPriceRange(c *gin.Context) {
	minPrice, err := strconv.ParseFloat(c.DefaultQuery("min", "0"), 64)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid min price", nil)
		return
	}
	maxPrice, err := strconv.ParseFloat(c.DefaultQuery("max", "0"), 64)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid max price", nil)
		return
	}
	if maxPrice < minPrice {
		utils.Error(c, http.StatusBadRequest, "Max price must not be below min price", nil)
		return
	}

	products, svcErr := pc.service.GetByPriceRange(c.Request.Context(), minPrice, maxPrice)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	utils.Success(c, http.StatusOK, "Products fetched successfully", products)
}

func (pc *ProductController) SearchProducts(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		utils.Error(c, http.StatusBadRequest, "Search term is required", nil)
		return
	}

	products, svcErr := pc.service.Search(c.Request.Context(), term)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	utils.Success(c, http.StatusOK, "Products fetched successfully", products)
}

// ListProducts serves the paginated listing with filters, going through the
// list cache when available.
func (pc *ProductController) ListProducts(c *gin.Context) {
	params, err := parseListParams(c)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	if pc.cache != nil {
		if cached, hit := pc.cache.GetProductList(c.Request.Context(), params); hit {
			utils.Success(c, http.StatusOK, "Products fetched successfully", cached)
			return
		}
	}

	products, total, svcErr := pc.service.List(c.Request.Context(), params)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}

	response := map[string]interface{}{
		"products": products,
		"total":    total,
		"page":     params.Page,
		"pageSize": params.PageSize,
	}
	if pc.cache != nil {
		pc.cache.SetProductListAsync(params, response)
	}
	utils.Success(c, http.StatusOK, "Products fetched successfully", response)
}

func (pc *ProductController) GetRelatedProducts(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	limit := parseIntQuery(c, "limit", defaultLimit)
	products, svcErr := pc.service.GetRelated(c.Request.Context(), id, limit)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	utils.Success(c, http.StatusOK, "Products fetched successfully", products)
}

func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	detail, svcErr := pc.service.Update(c.Request.Context(), id, &req)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}

	if pc.cache != nil {
		pc.cache.InvalidateProduct(c.Request.Context(), id.Hex())
	}
	utils.Success(c, http.StatusOK, "Product updated successfully", detail)
}

// UpdateStock sets the quantity for a product; in-stock status follows it.
func (pc *ProductController) UpdateStock(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	detail, svcErr := pc.service.UpdateStock(c.Request.Context(), id, *req.Quantity)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}

	if pc.cache != nil {
		pc.cache.InvalidateProduct(c.Request.Context(), id.Hex())
	}
	utils.Success(c, http.StatusOK, "Stock updated successfully", detail)
}

func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if svcErr := pc.service.Delete(c.Request.Context(), id); svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}

	if pc.cache != nil {
		pc.cache.InvalidateProduct(c.Request.Context(), id.Hex())
	}
	utils.Success(c, http.StatusOK, "Product deleted successfully", nil)
}

func parseIntQuery(c *gin.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(fallback)))
	if err != nil || value < 1 {
		return fallback
	}
	return value
}

func parseListParams(c *gin.Context) (models.ListProductsParams, error) {
	params := models.ListProductsParams{
		Page:     parseIntQuery(c, "page", 1),
		PageSize: parseIntQuery(c, "pageSize", defaultPageSize),
		SortKey:  c.Query("sort"),
		Search:   c.Query("search"),
	}
	if params.PageSize > maxPageSize {
		params.PageSize = maxPageSize
	}

	if raw := c.Query("isFeatured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			return params, errInvalidQuery("isFeatured")
		}
		params.IsFeatured = &featured
	}
	if raw := c.Query("inStock"); raw != "" {
		inStock, err := strconv.ParseBool(raw)
		if err != nil {
			return params, errInvalidQuery("inStock")
		}
		params.InStock = &inStock
	}
	if raw := c.Query("minPrice"); raw != "" {
		minPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return params, errInvalidQuery("minPrice")
		}
		params.MinPrice = &minPrice
	}
	if raw := c.Query("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return params, errInvalidQuery("maxPrice")
		}
		params.MaxPrice = &maxPrice
	}
	if raw := c.Query("category"); raw != "" {
		categoryID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return params, errInvalidQuery("category")
		}
		params.CategoryID = categoryID
	}
	return params, nil
}

type queryError string

func (e queryError) Error() string { return "Invalid query parameter: " + string(e) }

func errInvalidQuery(name string) error { return queryError(name) }
