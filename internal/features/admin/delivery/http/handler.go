package http

import (
	"net/http"

	"airdrop-tool-backend/internal/common/config"
	"airdrop-tool-backend/internal/common/logger"
	"airdrop-tool-backend/internal/common/middleware"

	"github.com/gin-gonic/gin"
)

// SettingsView is the admin-facing settings report. Secret material is
// never echoed back, only whether it is configured.
type SettingsView struct {
	TokenMint        string  `json:"token_mint"`
	TokenAmount      float64 `json:"token_amount"`
	TokenDecimals    int     `json:"token_decimals"`
	RPCEndpoint      string  `json:"rpc_endpoint"`
	SenderConfigured bool    `json:"sender_configured"`
	AdminIDs         []int64 `json:"admin_ids"`
	BotUsername      string  `json:"bot_username"`
}

type AdminHandler struct {
	settings *config.Settings
	cfg      *config.Config
}

func NewAdminHandler(settings *config.Settings, cfg *config.Config) *AdminHandler {
	return &AdminHandler{settings: settings, cfg: cfg}
}

func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	admin.Use(middleware.RequireAdmin(h.settings, h.cfg))
	{
		admin.GET("/settings", h.getSettings)
		admin.PUT("/settings", h.updateSettings)
	}
}

// @Summary Get runtime settings
// @Description Reports the current runtime settings. The sender secret key is reported only as configured or not.
// @Tags admin
// @Produce json
// @Security TelegramInitData
// @Success 200 {object} SettingsView "Current settings"
// @Failure 403 {object} middleware.ErrorResponse "Admin access required"
// @Router /admin/settings [get]
func (h *AdminHandler) getSettings(c *gin.Context) {
	snap := h.settings.Snapshot()

	c.JSON(http.StatusOK, SettingsView{
		TokenMint:        snap.TokenMint,
		TokenAmount:      snap.TokenAmount,
		TokenDecimals:    snap.TokenDecimals,
		RPCEndpoint:      snap.RPCEndpoint,
		SenderConfigured: snap.HasSender(),
		AdminIDs:         snap.AdminIDs,
		BotUsername:      snap.BotUsername,
	})
}

// @Summary Update runtime settings
// @Description Applies setting updates by key. All values are validated before any is applied; a bad update changes nothing.
// @Tags admin
// @Accept json
// @Produce json
// @Security TelegramInitData
// @Param updates body map[string]string true "Setting key/value pairs"
// @Success 200 {object} SettingsView "Settings after the update"
// @Failure 400 {object} middleware.ErrorResponse "Unknown key or invalid value"
// @Failure 403 {object} middleware.ErrorResponse "Admin access required"
// @Router /admin/settings [put]
func (h *AdminHandler) updateSettings(c *gin.Context) {
	var updates map[string]string
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.settings.Update(updates); err != nil {
		middleware.RespondError(c, err)
		return
	}

	keys := make([]string, 0, len(updates))
	for key := range updates {
		keys = append(keys, key)
	}
	logger.Info().Strs("keys", keys).Msg("Runtime settings updated")

	h.getSettings(c)
}
