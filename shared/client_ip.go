package shared

import (
	"net"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ClientIP resolves the requester identity used to key rate-limit and abuse
// state. Proxy headers win over the connection address, so deployments behind
// a load balancer keep per-client granularity. Unresolvable requests share the
// "unknown" bucket.
func ClientIP(c *fiber.Ctx) string {
	forwarded := c.Get("X-Forwarded-For")
	if forwarded != "" {
		ips := strings.Split(forwarded, ",")
		if ip := strings.TrimSpace(ips[0]); ip != "" {
			return ip
		}
	}

	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	addr := c.Context().RemoteAddr().String()
	if ip, _, err := net.SplitHostPort(addr); err == nil && ip != "" {
		return ip
	}
	if addr != "" {
		return addr
	}

	return "unknown"
}
