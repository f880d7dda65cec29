package middleware

import "github.com/gin-gonic/gin"

// CacheHeader is the response header reporting whether a lookup was served
// from cache.
const CacheHeader = "X-Cache"

// SetCacheStatus stamps the cache outcome onto the response.
func SetCacheStatus(c *gin.Context, hit bool) {
	if hit {
		c.Header(CacheHeader, "HIT")
		return
	}
	c.Header(CacheHeader, "MISS")
}
