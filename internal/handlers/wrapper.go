package handlers

import "github.com/gin-gonic/gin"

// HandlerFuncE is a request handler that reports failure through an error
// return instead of writing an error response itself.
type HandlerFuncE func(c *gin.Context) error

// Wrap adapts a HandlerFuncE into a gin.HandlerFunc. A non-nil error is
// forwarded to the Gin error channel, where the ErrorHandler middleware turns
// it into an HTTP response. Pure adapter: no error ever goes unobserved, and
// no business logic lives here.
func Wrap(fn HandlerFuncE) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := fn(c); err != nil {
			_ = c.Error(err)
		}
	}
}
