package controllers

import (
	"net/http"

	"github.com/Chekwachibuike/ecommerce/models"
	"github.com/Chekwachibuike/ecommerce/services"
	"github.com/Chekwachibuike/ecommerce/utils"
	"github.com/gin-gonic/gin"
)

// CartItemController handles cart item endpoints.
type CartItemController struct {
	service services.CartItemService
}

func NewCartItemController(service services.CartItemService) *CartItemController {
	return &CartItemController{service: service}
}

func (cc *CartItemController) CreateCartItem(c *gin.Context) {
	var req models.CreateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	item, svcErr := cc.service.Create(c.Request.Context(), &req)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	utils.Success(c, http.StatusCreated, "Cart item created successfully", item)
}

func (cc *CartItemController) GetCartItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	item, svcErr := cc.service.GetByID(c.Request.Context(), id)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	utils.Success(c, http.StatusOK, "Cart item fetched successfully", item)
}

func (cc *CartItemController) ListCartItems(c *gin.Context) {
	items, svcErr := cc.service.List(c.Request.Context())
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	utils.Success(c, http.StatusOK, "Cart items fetched successfully", items)
}

func (cc *CartItemController) ListCartItemsByProduct(c *gin.Context) {
	productID, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}

	items, svcErr := cc.service.ListByProduct(c.Request.Context(), productID)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	utils.Success(c, http.StatusOK, "Cart items fetched successfully", items)
}

func (cc *CartItemController) UpdateCartItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	item, svcErr := cc.service.UpdateQuantity(c.Request.Context(), id, req.Quantity)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	utils.Success(c, http.StatusOK, "Cart item updated successfully", item)
}

func (cc *CartItemController) DeleteCartItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if svcErr := cc.service.Delete(c.Request.Context(), id); svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	utils.Success(c, http.StatusOK, "Cart item deleted successfully", nil)
}
