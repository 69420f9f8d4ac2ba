package handler

import (
	"github.com/gin-gonic/gin"

	"fluxa-wallet/internal/adapter/http/dto"
	"fluxa-wallet/internal/core/domain"
	"fluxa-wallet/internal/core/ports"
	"fluxa-wallet/pkg/apperror"
	"fluxa-wallet/pkg/response"
)

// TransactionHandler handles journal endpoints.
type TransactionHandler struct {
	ledgerSvc ports.LedgerService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledgerSvc ports.LedgerService) *TransactionHandler {
	return &TransactionHandler{ledgerSvc: ledgerSvc}
}

// CreateOffline handles POST /api/v1/transactions/offline.
func (h *TransactionHandler) CreateOffline(c *gin.Context) {
	h.create(c, h.ledgerSvc.CreateOfflineTransaction)
}

// CreateOnline handles POST /api/v1/transactions/online.
func (h *TransactionHandler) CreateOnline(c *gin.Context) {
	h.create(c, h.ledgerSvc.CreateOnlineTransaction)
}

func (h *TransactionHandler) create(c *gin.Context, createFn func(string, string, int64) (domain.Transaction, error)) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	tx, err := createFn(req.ToWalletID, req.MerchantName, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.FromTransaction(tx))
}

// List handles GET /api/v1/transactions. Optional "type" and "status"
// query parameters filter the journal; they cannot be combined.
func (h *TransactionHandler) List(c *gin.Context) {
	txType := c.Query("type")
	status := c.Query("status")

	if txType != "" && status != "" {
		response.Error(c, apperror.Validation("type and status filters cannot be combined"))
		return
	}

	switch {
	case txType != "":
		parsed, ok := parseTransactionType(txType)
		if !ok {
			response.Error(c, apperror.Validation("unknown transaction type: "+txType))
			return
		}
		response.OK(c, dto.FromTransactions(h.ledgerSvc.TransactionsByType(parsed)))
	case status != "":
		parsed, ok := parseTransactionStatus(status)
		if !ok {
			response.Error(c, apperror.Validation("unknown transaction status: "+status))
			return
		}
		response.OK(c, dto.FromTransactions(h.ledgerSvc.TransactionsByStatus(parsed)))
	default:
		response.OK(c, dto.FromTransactions(h.ledgerSvc.Transactions()))
	}
}

// Confirm handles POST /api/v1/transactions/:id/confirm.
func (h *TransactionHandler) Confirm(c *gin.Context) {
	tx, err := h.ledgerSvc.ConfirmTransaction(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromTransaction(tx))
}

// Cancel handles POST /api/v1/transactions/:id/cancel. The refunded
// wallet state is returned so clients can update balances immediately.
func (h *TransactionHandler) Cancel(c *gin.Context) {
	w, err := h.ledgerSvc.CancelTransaction(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromWallet(w))
}

func parseTransactionType(s string) (domain.TransactionType, bool) {
	switch domain.TransactionType(s) {
	case domain.TransactionTypeTransfer, domain.TransactionTypeOffline, domain.TransactionTypeOnline:
		return domain.TransactionType(s), true
	}
	return "", false
}

func parseTransactionStatus(s string) (domain.TransactionStatus, bool) {
	switch domain.TransactionStatus(s) {
	case domain.TransactionStatusPending, domain.TransactionStatusConfirmed, domain.TransactionStatusCancelled:
		return domain.TransactionStatus(s), true
	}
	return "", false
}
