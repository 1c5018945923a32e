package middleware

import (
	"crypto/subtle"
	"net/http"

	"airdrop-tool-backend/internal/common/config"
	usermodels "airdrop-tool-backend/internal/features/user/models"
	userservice "airdrop-tool-backend/internal/features/user/service"

	"github.com/gin-gonic/gin"
)

// AdminTokenHeader carries the alternate admin credential.
const AdminTokenHeader = "X-Admin-Token"

// ResolveUser turns the Telegram identity into a platform user, creating
// the record on first contact.
func ResolveUser(users userservice.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		telegramUser, ok := TelegramUser(c)
		if !ok {
			c.Next()
			return
		}

		user, err := users.GetOrCreate(c.Request.Context(), telegramUser.ID, telegramUser.Username)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve user"})
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}

// RequireAuth rejects requests without a resolved platform user.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(ContextUser); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Telegram Init Data required"})
			return
		}
		c.Next()
	}
}

// RequireAdmin admits Telegram users on the settings admin list, or any
// caller presenting the configured admin access token.
func RequireAdmin(settings *config.Settings, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.Admin.EnableAccessToken && cfg.Admin.AccessToken != "" {
			token := c.GetHeader(AdminTokenHeader)
			if token != "" && subtle.ConstantTimeCompare([]byte(token), []byte(cfg.Admin.AccessToken)) == 1 {
				c.Next()
				return
			}
		}

		telegramUser, ok := TelegramUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Telegram Init Data required"})
			return
		}

		if !settings.Snapshot().IsAdmin(telegramUser.ID) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Next()
	}
}

// CurrentUser returns the platform user attached by ResolveUser.
func CurrentUser(c *gin.Context) (*usermodels.User, bool) {
	value, exists := c.Get(ContextUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*usermodels.User)
	return user, ok
}
