package controllers

import (
	"net/http"

	"github.com/Chekwachibuike/ecommerce/models"
	"github.com/Chekwachibuike/ecommerce/services"
	"github.com/Chekwachibuike/ecommerce/utils"
	"github.com/gin-gonic/gin"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	service services.CategoryService
	cache   *CacheManager
}

func NewCategoryController(service services.CategoryService, cache *CacheManager) *CategoryController {
	return &CategoryController{service: service, cache: cache}
}

func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	category, svcErr := cc.service.Create(c.Request.Context(), &req)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}

	if cc.cache != nil {
		cc.cache.InvalidateLists(c.Request.Context())
	}
	utils.Success(c, http.StatusCreated, "Category created successfully", category)
}

func (cc *CategoryController) GetCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	category, svcErr := cc.service.GetByID(c.Request.Context(), id)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	utils.Success(c, http.StatusOK, "Category fetched successfully", category)
}

func (cc *CategoryController) ListCategories(c *gin.Context) {
	categories, svcErr := cc.service.List(c.Request.Context())
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	utils.Success(c, http.StatusOK, "Categories fetched successfully", categories)
}

func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	category, svcErr := cc.service.Update(c.Request.Context(), id, &req)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}

	if cc.cache != nil {
		cc.cache.InvalidateLists(c.Request.Context())
	}
	utils.Success(c, http.StatusOK, "Category updated successfully", category)
}

func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if svcErr := cc.service.Delete(c.Request.Context(), id); svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}

	if cc.cache != nil {
		cc.cache.InvalidateLists(c.Request.Context())
	}
	utils.Success(c, http.StatusOK, "Category deleted successfully", nil)
}
