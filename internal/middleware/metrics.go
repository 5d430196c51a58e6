package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// UnmatchedRoute is the route label of requests no handler matched.
const UnmatchedRoute = "unmatched"

type requestObserver interface {
	ObserveHTTPRequest(method, route string, status int, elapsed time.Duration)
}

// Metrics reports every served request to obs under its route template, so
// /complaints/CMP-1001 and /complaints/CMP-1002 share one series. Routes in
// skip (the scrape endpoint, usually) are not reported.
func Metrics(obs requestObserver, skip ...string) gin.HandlerFunc {
	if obs == nil {
		return func(c *gin.Context) { c.Next() }
	}
	skipped := make(map[string]struct{}, len(skip))
	for _, route := range skip {
		skipped[route] = struct{}{}
	}

	return func(c *gin.Context) {
		route := c.FullPath()
		if _, ok := skipped[route]; ok && route != "" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		if route == "" {
			route = UnmatchedRoute
		}
		obs.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
