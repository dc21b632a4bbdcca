package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"

	"gymoffice/internal/pkg/response"
)

// RequestLogger logs every request and recovers panics into a 500 envelope.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				log.Printf(
					"panic method=%s path=%s client_ip=%s error=%q stack=%s",
					c.Request.Method,
					c.Request.URL.Path,
					c.ClientIP(),
					err.Error(),
					string(debug.Stack()),
				)
				response.Error(c, http.StatusInternalServerError,
					"Internal server error", "unexpected error")
				c.Abort()
				return
			}

			log.Printf(
				"request method=%s path=%s query=%s status=%d client_ip=%s latency=%s",
				c.Request.Method,
				c.Request.URL.Path,
				c.Request.URL.RawQuery,
				c.Writer.Status(),
				c.ClientIP(),
				time.Since(start),
			)
		}()

		c.Next()
	}
}
