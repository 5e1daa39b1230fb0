package controllers

import (
	"net/http"

	"github.com/Chekwachibuike/ecommerce/models"
	"github.com/Chekwachibuike/ecommerce/services"
	"github.com/Chekwachibuike/ecommerce/utils"
	"github.com/gin-gonic/gin"
)

// BillingController handles billing information endpoints.
type BillingController struct {
	service services.BillingService
}

func NewBillingController(service services.BillingService) *BillingController {
	return &BillingController{service: service}
}

func (bc *BillingController) CreateBillingInfo(c *gin.Context) {
	var req models.CreateBillingInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	info, svcErr := bc.service.Create(c.Request.Context(), &req)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	utils.Success(c, http.StatusCreated, "Billing information created successfully", info)
}

func (bc *BillingController) GetBillingInfo(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	info, svcErr := bc.service.GetByUserID(c.Request.Context(), userID)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	utils.Success(c, http.StatusOK, "Billing information fetched successfully", info)
}

func (bc *BillingController) ListBillingInfo(c *gin.Context) {
	page := parseIntQuery(c, "page", 1)
	limit := parseIntQuery(c, "limit", 10)

	infos, total, svcErr := bc.service.List(c.Request.Context(), page, limit)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	utils.Success(c, http.StatusOK, "Billing information fetched successfully", gin.H{
		"billingInformation": infos,
		"total":              total,
		"page":               page,
		"limit":              limit,
	})
}

func (bc *BillingController) UpdateBillingInfo(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	var req models.UpdateBillingInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	info, svcErr := bc.service.Update(c.Request.Context(), userID, &req)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	utils.Success(c, http.StatusOK, "Billing information updated successfully", info)
}

func (bc *BillingController) DeleteBillingInfo(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	if svcErr := bc.service.Delete(c.Request.Context(), userID); svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	utils.Success(c, http.StatusOK, "Billing information deleted successfully", nil)
}
