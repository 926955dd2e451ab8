package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// getClientIP resolves the originating client address for rate limiting,
// preferring proxy headers over the socket peer. Header values are only
// trusted when they parse as an IP; anything else falls through to the next
// source.
func getClientIP(c *gin.Context) string {
	// X-Forwarded-For may carry a comma-separated chain; the first parseable
	// entry is the original client.
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		for _, entry := range strings.Split(xff, ",") {
			if ip := net.ParseIP(strings.TrimSpace(entry)); ip != nil {
				return ip.String()
			}
		}
	}

	if xri := strings.TrimSpace(c.GetHeader("X-Real-IP")); xri != "" {
		if ip := net.ParseIP(xri); ip != nil {
			return ip.String()
		}
	}

	addr := c.Request.RemoteAddr
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
