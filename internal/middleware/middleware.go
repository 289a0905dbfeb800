package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/brvmsim/internal/domain/dto"
	"github.com/guttosm/brvmsim/internal/logger"
)

// ErrorHandler turns errors that handlers attach to the context into a
// standardized JSON 500 response. Handlers that already wrote a response
// are left alone.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.ErrorHandler)
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled request error")
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}

// AbortWithError stops the request with the given status and a JSON error
// body built from message and err.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
