package controllers

import (
	"net/http"

	"github.com/Chekwachibuike/ecommerce/services"
	"github.com/Chekwachibuike/ecommerce/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// abortWithServiceError translates a service error into the response envelope.
func abortWithServiceError(c *gin.Context, err *services.ServiceError) {
	utils.Error(c, err.StatusCode, err.Message, nil)
}

// abortWithBindingError reports a failed request binding with the validation
// detail attached.
func abortWithBindingError(c *gin.Context, err error) {
	utils.Error(c, http.StatusBadRequest, "Invalid request payload", err.Error())
}

// parseIDParam reads an ObjectID from a path parameter, writing a 400 response
// itself when the value is malformed.
func parseIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid ID format", nil)
		return primitive.NilObjectID, false
	}
	return id, true
}
