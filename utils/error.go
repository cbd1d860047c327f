package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the uniform error body of the pricing and booking APIs.
// Problems carries the enumerated configuration issues when a request was
// rejected by validation rather than by a server fault.
type ErrorResponse struct {
	Message  string   `json:"message"`
	Details  string   `json:"details,omitempty"`
	Problems []string `json:"problems,omitempty"`
}

// ErrorHandler recovers panics from the handler chain and converts them into
// a uniform 500 response, logging the request that triggered them.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				GetLogger().Error("handler panic",
					zap.Any("panic", r),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "internal server error",
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response.
func JSONError(c *gin.Context, status int, message string, details string) {
	GetLogger().Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// JSONValidationError sends the enumerated problems of a rejected booking or
// modification request.
func JSONValidationError(c *gin.Context, status int, message string, problems []string) {
	GetLogger().Warn(message, zap.Strings("problems", problems))
	c.JSON(status, ErrorResponse{Message: message, Problems: problems})
}
