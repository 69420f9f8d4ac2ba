package handler

import (
	"github.com/gin-gonic/gin"

	"fluxa-wallet/internal/adapter/http/dto"
	"fluxa-wallet/internal/core/ports"
	"fluxa-wallet/pkg/apperror"
	"fluxa-wallet/pkg/response"
)

// WalletHandler handles wallet state and vault endpoints.
type WalletHandler struct {
	ledgerSvc ports.LedgerService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(ledgerSvc ports.LedgerService) *WalletHandler {
	return &WalletHandler{ledgerSvc: ledgerSvc}
}

// InitWallet handles POST /api/v1/wallet/init.
func (h *WalletHandler) InitWallet(c *gin.Context) {
	w := h.ledgerSvc.InitWallet()
	response.OK(c, dto.FromWallet(w))
}

// GetWallet handles GET /api/v1/wallet.
func (h *WalletHandler) GetWallet(c *gin.Context) {
	response.OK(c, dto.FromWallet(h.ledgerSvc.Wallet()))
}

// GetStats handles GET /api/v1/wallet/stats.
func (h *WalletHandler) GetStats(c *gin.Context) {
	response.OK(c, dto.FromStats(h.ledgerSvc.Stats()))
}

// VaultDeposit handles POST /api/v1/vault/deposit, moving funds from the
// online balance into the offline vault.
func (h *WalletHandler) VaultDeposit(c *gin.Context) {
	var req dto.VaultTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	w, err := h.ledgerSvc.TransferToVault(req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromWallet(w))
}

// VaultWithdraw handles POST /api/v1/vault/withdraw, moving funds from the
// offline vault back to the online balance.
func (h *WalletHandler) VaultWithdraw(c *gin.Context) {
	var req dto.VaultTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	w, err := h.ledgerSvc.TransferFromVault(req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromWallet(w))
}
