package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HTTPSEnforcer redirects plain HTTP traffic to HTTPS. It trusts the
// X-Forwarded-Proto header so TLS can terminate at a load balancer, and
// leaves localhost alone for development.
type HTTPSEnforcer struct {
	enabled bool
}

func NewHTTPSEnforcer(enabled bool) *HTTPSEnforcer {
	return &HTTPSEnforcer{enabled: enabled}
}

func (he *HTTPSEnforcer) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !he.enabled {
			c.Next()
			return
		}

		if c.Request.TLS != nil {
			c.Next()
			return
		}

		if c.GetHeader("X-Forwarded-Proto") == "https" {
			c.Next()
			return
		}

		host := c.Request.Host
		if strings.Contains(host, "localhost") || strings.Contains(host, "127.0.0.1") {
			c.Next()
			return
		}

		httpsURL := "https://" + host + c.Request.RequestURI

		log.Info().
			Str("original_url", c.Request.URL.String()).
			Str("https_url", httpsURL).
			Msg("redirecting to HTTPS")

		c.Redirect(http.StatusMovedPermanently, httpsURL)
		c.Abort()
	}
}

func (he *HTTPSEnforcer) IsEnabled() bool {
	return he.enabled
}
