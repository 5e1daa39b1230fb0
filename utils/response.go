package utils

import "github.com/gin-gonic/gin"

// Response is the envelope every endpoint returns. Data carries the payload
// on success; Details carries validation or error specifics on failure.
type Response struct {
	Status     string      `json:"status"`
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Details    interface{} `json:"details,omitempty"`
}

// Success writes a success envelope with the given payload.
func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Status:     "success",
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
	})
}

// Error writes an error envelope. Details is optional.
func Error(c *gin.Context, statusCode int, message string, details interface{}) {
	c.JSON(statusCode, Response{
		Status:     "error",
		StatusCode: statusCode,
		Message:    message,
		Details:    details,
	})
}
