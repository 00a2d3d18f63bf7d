package middleware

import (
	"github.com/gin-gonic/gin"

	"solar-storefront-backend/internal/config"
	"solar-storefront-backend/utils"
)

// RequireAdmin guards admin endpoints with a bearer token check.
func RequireAdmin(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.ExtractTokenFromHeader(c.GetHeader("Authorization"))
		if token == "" {
			utils.RespondWithUnauthorized(c, "missing bearer token")
			c.Abort()
			return
		}

		claims, err := utils.ValidateAdminToken(token, cfg.AdminTokenSecret)
		if err != nil {
			utils.RespondWithUnauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set("admin_claims", claims)
		c.Next()
	}
}
