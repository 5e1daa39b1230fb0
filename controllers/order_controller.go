package controllers

import (
	"net/http"

	"github.com/Chekwachibuike/ecommerce/models"
	"github.com/Chekwachibuike/ecommerce/services"
	"github.com/Chekwachibuike/ecommerce/utils"
	"github.com/gin-gonic/gin"
)

// OrderController handles order endpoints.
type OrderController struct {
	service services.OrderService
}

func NewOrderController(service services.OrderService) *OrderController {
	return &OrderController{service: service}
}

func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	order, svcErr := oc.service.Create(c.Request.Context(), &req)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	utils.Success(c, http.StatusCreated, "Order created successfully", order)
}

func (oc *OrderController) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detail, svcErr := oc.service.GetByID(c.Request.Context(), id)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	utils.Success(c, http.StatusOK, "Order fetched successfully", detail)
}

func (oc *OrderController) GetOrdersByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	orders, svcErr := oc.service.GetByUserID(c.Request.Context(), userID)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	utils.Success(c, http.StatusOK, "Orders fetched successfully", orders)
}

func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	order, svcErr := oc.service.Update(c.Request.Context(), id, &req)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	utils.Success(c, http.StatusOK, "Order updated successfully", order)
}

func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if svcErr := oc.service.Delete(c.Request.Context(), id); svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	utils.Success(c, http.StatusOK, "Order deleted successfully", nil)
}
