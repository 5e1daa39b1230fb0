package controllers

import (
	"net/http"

	"github.com/Chekwachibuike/ecommerce/models"
	"github.com/Chekwachibuike/ecommerce/services"
	"github.com/Chekwachibuike/ecommerce/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartController handles cart endpoints, all keyed by user id.
type CartController struct {
	service services.CartService
}

func NewCartController(service services.CartService) *CartController {
	return &CartController{service: service}
}

func (cc *CartController) CreateCart(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	cart, svcErr := cc.service.CreateCart(c.Request.Context(), userID)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	utils.Success(c, http.StatusCreated, "Cart created successfully", cart)
}

func (cc *CartController) GetCart(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	detail, svcErr := cc.service.GetCart(c.Request.Context(), userID)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	utils.Success(c, http.StatusOK, "Cart fetched successfully", detail)
}

func (cc *CartController) AddItemToCart(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}
	cartItemID, err := primitive.ObjectIDFromHex(req.CartItemID)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid cart item ID format", nil)
		return
	}

	cart, svcErr := cc.service.AddItem(c.Request.Context(), userID, cartItemID)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	utils.Success(c, http.StatusOK, "Item added to cart successfully", cart)
}

func (cc *CartController) RemoveItemFromCart(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	cartItemID, ok := parseIDParam(c, "itemId")
	if !ok {
		return
	}

	cart, svcErr := cc.service.RemoveItem(c.Request.Context(), userID, cartItemID)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	utils.Success(c, http.StatusOK, "Item removed from cart successfully", cart)
}

func (cc *CartController) ClearCart(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	if svcErr := cc.service.ClearCart(c.Request.Context(), userID); svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	utils.Success(c, http.StatusOK, "Cart cleared successfully", nil)
}

func (cc *CartController) IsItemInCart(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	cartItemID, ok := parseIDParam(c, "itemId")
	if !ok {
		return
	}

	inCart, svcErr := cc.service.IsItemInCart(c.Request.Context(), userID, cartItemID)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	utils.Success(c, http.StatusOK, "Cart membership checked successfully", gin.H{"inCart": inCart})
}
