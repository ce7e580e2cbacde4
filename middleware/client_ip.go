package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// clientIP resolves the originating address for rate limiting. Proxy headers
// win over the socket address; X-Forwarded-For may carry a chain, in which
// case the leftmost entry is the client.
func clientIP(c *gin.Context) string {
	if chain := c.GetHeader("X-Forwarded-For"); chain != "" {
		first, _, _ := strings.Cut(chain, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if real := strings.TrimSpace(c.GetHeader("X-Real-IP")); real != "" {
		return real
	}
	if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		return host
	}
	return c.Request.RemoteAddr
}
