package handler

import (
	"github.com/gin-gonic/gin"

	"fluxa-wallet/internal/adapter/http/dto"
	"fluxa-wallet/internal/core/ports"
	"fluxa-wallet/pkg/apperror"
	"fluxa-wallet/pkg/response"
)

// KeysHandler handles key management and signature verification endpoints.
type KeysHandler struct {
	ledgerSvc ports.LedgerService
}

// NewKeysHandler creates a new KeysHandler.
func NewKeysHandler(ledgerSvc ports.LedgerService) *KeysHandler {
	return &KeysHandler{ledgerSvc: ledgerSvc}
}

// InitializeKeys handles POST /api/v1/keys/init. Calling it again replaces
// the key pair, which invalidates signatures on earlier journal entries.
func (h *KeysHandler) InitializeKeys(c *gin.Context) {
	kp := h.ledgerSvc.InitializeKeys()
	response.Created(c, dto.FromKeyPair(kp))
}

// GetPublicKey handles GET /api/v1/keys/public.
func (h *KeysHandler) GetPublicKey(c *gin.Context) {
	pub, err := h.ledgerSvc.PublicKey()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"public_key": pub})
}

// VerifySignature handles POST /api/v1/signatures/verify.
func (h *KeysHandler) VerifySignature(c *gin.Context) {
	var req dto.VerifySignatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	valid, err := h.ledgerSvc.VerifySignature(req.Data, req.Signature)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.VerifySignatureResponse{Valid: valid})
}
