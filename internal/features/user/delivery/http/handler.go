package http

import (
	"net/http"

	"airdrop-tool-backend/internal/common/middleware"
	"airdrop-tool-backend/internal/features/user/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("/me", h.getMe)
	}
}

// @Summary Get current user
// @Description Returns the platform user for the calling Telegram identity, creating it on first contact.
// @Tags users
// @Produce json
// @Security TelegramInitData
// @Success 200 {object} models.User "User data"
// @Failure 401 {object} middleware.ErrorResponse "Missing init data"
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /users/me [get]
func (h *UserHandler) getMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Telegram Init Data required"})
		return
	}

	c.JSON(http.StatusOK, user)
}
