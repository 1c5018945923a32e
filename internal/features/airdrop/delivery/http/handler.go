package http

import (
	"net/http"

	"airdrop-tool-backend/internal/common/config"
	"airdrop-tool-backend/internal/common/middleware"
	"airdrop-tool-backend/internal/features/airdrop/models"
	"airdrop-tool-backend/internal/features/airdrop/service"

	"github.com/gin-gonic/gin"
)

type AirdropHandler struct {
	service  service.AirdropService
	settings *config.Settings
	cfg      *config.Config
}

func NewAirdropHandler(service service.AirdropService, settings *config.Settings, cfg *config.Config) *AirdropHandler {
	return &AirdropHandler{service: service, settings: settings, cfg: cfg}
}

func (h *AirdropHandler) RegisterRoutes(router *gin.RouterGroup) {
	airdrops := router.Group("/airdrops")
	{
		// Status is open to the initiator too, checked in the handler.
		airdrops.GET("/:id/status", h.status)
	}

	admin := router.Group("/airdrops")
	admin.Use(middleware.RequireAdmin(h.settings, h.cfg))
	{
		admin.POST("", h.startAirdrop)
		admin.GET("", h.listAirdrops)
	}
}

// @Summary Start an airdrop
// @Description Creates an airdrop event targeting every registered wallet and enqueues the batch. Empty fields fall back to the configured defaults.
// @Tags airdrops
// @Accept json
// @Produce json
// @Security TelegramInitData
// @Param airdrop body models.EventCreate true "Airdrop parameters"
// @Success 201 {object} models.EventResponse "Created event with recipient count"
// @Failure 400 {object} middleware.ErrorResponse "Invalid parameters, no recipients or sender not configured"
// @Failure 403 {object} middleware.ErrorResponse "Admin access required"
// @Router /airdrops [post]
func (h *AirdropHandler) startAirdrop(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Telegram Init Data required"})
		return
	}

	var input models.EventCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.StartAirdrop(c.Request.Context(), user.ID, &input)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary List airdrops
// @Description Lists all airdrop events, newest first.
// @Tags airdrops
// @Produce json
// @Security TelegramInitData
// @Success 200 {array} models.Event "Events"
// @Failure 403 {object} middleware.ErrorResponse "Admin access required"
// @Router /airdrops [get]
func (h *AirdropHandler) listAirdrops(c *gin.Context) {
	events, err := h.service.ListEvents(c.Request.Context())
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	if events == nil {
		events = []*models.Event{}
	}

	c.JSON(http.StatusOK, events)
}

// @Summary Airdrop progress
// @Description Returns the progress snapshot of an airdrop. Available to admins and the event initiator.
// @Tags airdrops
// @Produce json
// @Security TelegramInitData
// @Param id path string true "Airdrop event ID"
// @Success 200 {object} models.StatusResponse "Progress snapshot"
// @Failure 403 {object} middleware.ErrorResponse "Not the initiator"
// @Failure 404 {object} middleware.ErrorResponse "Airdrop not found"
// @Router /airdrops/{id}/status [get]
func (h *AirdropHandler) status(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Telegram Init Data required"})
		return
	}

	eventID := c.Param("id")
	event, err := h.service.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	if !user.IsAdmin && event.StartedBy != user.ID {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return
	}

	status, err := h.service.Status(c.Request.Context(), eventID)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}
