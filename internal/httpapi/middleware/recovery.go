package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/suphakit/gpu-advisor/internal/common"
)

// Recovery converts panics into a JSON 500 instead of killing the process.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic recovered path=%s err=%v", c.Request.URL.Path, r)
				common.Fail(c, http.StatusInternalServerError, 50000, "internal error")
				c.Abort()
			}
		}()
		c.Next()
	}
}
