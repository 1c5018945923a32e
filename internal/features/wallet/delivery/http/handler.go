package http

import (
	"net/http"

	"airdrop-tool-backend/internal/common/middleware"
	"airdrop-tool-backend/internal/features/wallet/models"
	"airdrop-tool-backend/internal/features/wallet/service"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	service service.WalletService
}

func NewWalletHandler(service service.WalletService) *WalletHandler {
	return &WalletHandler{service: service}
}

func (h *WalletHandler) RegisterRoutes(router *gin.RouterGroup) {
	wallets := router.Group("/wallets")
	{
		wallets.POST("", h.registerWallet)
		wallets.GET("", h.listWallets)
		wallets.DELETE("/:id", h.deleteWallet)
		wallets.POST("/:id/withdraw", h.withdraw)
	}
}

// @Summary Register a wallet
// @Description Registers a Solana address for the calling user. The address is validated structurally before anything is stored.
// @Tags wallets
// @Accept json
// @Produce json
// @Security TelegramInitData
// @Param wallet body models.WalletCreate true "Wallet to register"
// @Success 201 {object} models.Wallet "Registered wallet"
// @Failure 400 {object} middleware.ErrorResponse "Invalid address or label"
// @Failure 409 {object} middleware.ErrorResponse "Address already registered by this user"
// @Router /wallets [post]
func (h *WalletHandler) registerWallet(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Telegram Init Data required"})
		return
	}

	var input models.WalletCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wallet, err := h.service.RegisterWallet(c.Request.Context(), user.ID, &input)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, wallet)
}

// @Summary List wallets
// @Description Lists the calling user's registered wallets.
// @Tags wallets
// @Produce json
// @Security TelegramInitData
// @Success 200 {array} models.Wallet "Wallets"
// @Router /wallets [get]
func (h *WalletHandler) listWallets(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Telegram Init Data required"})
		return
	}

	wallets, err := h.service.ListWallets(c.Request.Context(), user.ID)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	if wallets == nil {
		wallets = []*models.Wallet{}
	}

	c.JSON(http.StatusOK, wallets)
}

// @Summary Delete a wallet
// @Description Deletes a wallet. Only the owner may delete it.
// @Tags wallets
// @Produce json
// @Security TelegramInitData
// @Param id path string true "Wallet ID"
// @Success 204 "Deleted"
// @Failure 403 {object} middleware.ErrorResponse "Not the owner"
// @Failure 404 {object} middleware.ErrorResponse "Wallet not found"
// @Router /wallets/{id} [delete]
func (h *WalletHandler) deleteWallet(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Telegram Init Data required"})
		return
	}

	if err := h.service.DeleteWallet(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Withdraw tokens
// @Description Transfers tokens out of the platform with a fee deducted from the amount.
// @Tags wallets
// @Accept json
// @Produce json
// @Security TelegramInitData
// @Param id path string true "Wallet ID"
// @Param withdrawal body models.WithdrawRequest true "Withdrawal parameters"
// @Success 200 {object} models.WithdrawResponse "Withdrawal outcome"
// @Failure 400 {object} middleware.ErrorResponse "Invalid amount or fee"
// @Failure 403 {object} middleware.ErrorResponse "Not the owner"
// @Failure 404 {object} middleware.ErrorResponse "Wallet not found"
// @Router /wallets/{id}/withdraw [post]
func (h *WalletHandler) withdraw(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Telegram Init Data required"})
		return
	}

	var input models.WithdrawRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.Withdraw(c.Request.Context(), user.ID, c.Param("id"), &input)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
