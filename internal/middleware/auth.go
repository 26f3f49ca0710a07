package middleware

import (
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/sha3"

	"github.com/oliverjumpertz/link-shortener/internal/store"
	"github.com/oliverjumpertz/link-shortener/pkg/logger"
	"github.com/oliverjumpertz/link-shortener/pkg/metrics"
)

const (
	apiKeyHeader = "x-api-key"
	settingsID   = "DEFAULT_SETTINGS"
)

// APIKeyAuth gates mutating endpoints behind the shared API key. The stored
// digest is re-fetched on every request so a key rotation takes effect
// without a restart; authentication state is never cached.
func APIKeyAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader(apiKeyHeader)
		if apiKey == "" {
			logger.Error().Str("uri", c.Request.RequestURI).Msg("Unauthorized call to API: No key header received")
			metrics.UnauthenticatedCalls.WithLabelValues(c.Request.RequestURI).Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		setting, err := store.GetSetting(c.Request.Context(), settingsID)
		if err != nil {
			// A dependency outage is not the caller's fault; do not report
			// it as unauthorized.
			logger.Error().Err(err).Msg("Failed to fetch settings for authentication")
			metrics.RequestErrors.WithLabelValues(c.FullPath()).Inc()
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		digest := sha3.Sum256([]byte(apiKey))
		if setting.EncryptedGlobalAPIKey != hex.EncodeToString(digest[:]) {
			logger.Error().Str("uri", c.Request.RequestURI).Msg("Unauthorized call to API: Incorrect key supplied")
			metrics.UnauthenticatedCalls.WithLabelValues(c.Request.RequestURI).Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Next()
	}
}
