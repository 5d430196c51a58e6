package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Delay holds every request for d before handling it. A client that gives up
// first gets no response.
func Delay(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-timer.C:
			c.Next()
		case <-c.Request.Context().Done():
			c.Abort()
		}
	}
}
