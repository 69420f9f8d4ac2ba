package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"fluxa-wallet/internal/adapter/http/dto"
	"fluxa-wallet/internal/core/domain"
	"fluxa-wallet/internal/core/ports"
	"fluxa-wallet/pkg/apperror"
	"fluxa-wallet/pkg/response"
)

// ProximityHandler handles NFC and Bluetooth transfer endpoints.
type ProximityHandler struct {
	proximitySvc ports.ProximityService
}

// NewProximityHandler creates a new ProximityHandler.
func NewProximityHandler(proximitySvc ports.ProximityService) *ProximityHandler {
	return &ProximityHandler{proximitySvc: proximitySvc}
}

// NFCAvailable handles GET /api/v1/proximity/nfc/available.
func (h *ProximityHandler) NFCAvailable(c *gin.Context) {
	response.OK(c, gin.H{"available": h.proximitySvc.NFCAvailable()})
}

// NFCSend handles POST /api/v1/proximity/nfc/send.
func (h *ProximityHandler) NFCSend(c *gin.Context) {
	var req dto.NFCSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	payload, err := h.proximitySvc.PrepareNFCSend(c.Request.Context(), req.ReceiverID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.FromPayload(payload))
}

// NFCReceive handles POST /api/v1/proximity/nfc/receive.
func (h *ProximityHandler) NFCReceive(c *gin.Context) {
	var req dto.NFCReceiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	inbound := domain.ProximityPayload{
		TxID:      req.TxID,
		Sender:    req.Sender,
		Receiver:  req.Receiver,
		Amount:    req.Amount,
		Signature: req.Signature,
	}
	if req.Timestamp != "" {
		ts, err := time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			response.Error(c, apperror.Validation("timestamp must be RFC3339"))
			return
		}
		inbound.Timestamp = ts
	}

	payload, err := h.proximitySvc.ReceiveNFC(c.Request.Context(), inbound)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromPayload(payload))
}

// BluetoothDevices handles GET /api/v1/proximity/bluetooth/devices.
func (h *ProximityHandler) BluetoothDevices(c *gin.Context) {
	devices, err := h.proximitySvc.BluetoothScan(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromDevices(devices))
}

// BluetoothConnect handles POST /api/v1/proximity/bluetooth/connect.
func (h *ProximityHandler) BluetoothConnect(c *gin.Context) {
	var req dto.BluetoothConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	connected, err := h.proximitySvc.BluetoothConnect(c.Request.Context(), req.DeviceID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"connected": connected, "device_id": req.DeviceID})
}

// BluetoothSend handles POST /api/v1/proximity/bluetooth/send.
func (h *ProximityHandler) BluetoothSend(c *gin.Context) {
	var req dto.BluetoothSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	payload, err := h.proximitySvc.BluetoothSend(c.Request.Context(), req.DeviceID, req.ReceiverID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.FromPayload(payload))
}
