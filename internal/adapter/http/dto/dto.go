package dto

import (
	"time"

	"fluxa-wallet/internal/core/domain"
)

// LoginRequest is the request body for unlocking the local API.
type LoginRequest struct {
	Passphrase string `json:"passphrase" binding:"required,min=1,max=128"`
}

// LoginResponse is the response body for a successful unlock.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// VaultTransferRequest is the request body for vault deposits and withdrawals.
type VaultTransferRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// CreateTransactionRequest is the request body for offline and online sends.
type CreateTransactionRequest struct {
	ToWalletID   string `json:"to_wallet_id" binding:"required,max=100,safe_id"`
	MerchantName string `json:"merchant_name" binding:"required,min=1,max=100"`
	Amount       int64  `json:"amount" binding:"required,gt=0"`
}

// VerifySignatureRequest is the request body for signature verification.
type VerifySignatureRequest struct {
	Data      string `json:"data" binding:"required"`
	Signature string `json:"signature" binding:"required,max=128"`
}

// VerifySignatureResponse reports the result of a verification.
type VerifySignatureResponse struct {
	Valid bool `json:"valid"`
}

// NFCSendRequest is the request body preparing an NFC transfer.
type NFCSendRequest struct {
	ReceiverID string `json:"receiver_id" binding:"required,max=100,safe_id"`
	Amount     int64  `json:"amount" binding:"required,gt=0"`
}

// NFCReceiveRequest carries a payload read from a tag. All fields are
// optional: an empty tx_id asks the service for simulated inbound data.
type NFCReceiveRequest struct {
	TxID      string `json:"tx_id" binding:"omitempty,max=100,safe_id"`
	Sender    string `json:"sender" binding:"omitempty,max=100"`
	Receiver  string `json:"receiver" binding:"omitempty,max=100"`
	Amount    int64  `json:"amount" binding:"omitempty,gte=0"`
	Timestamp string `json:"timestamp" binding:"omitempty"`
	Signature string `json:"signature" binding:"omitempty,max=128"`
}

// BluetoothConnectRequest is the request body for connecting to a device.
type BluetoothConnectRequest struct {
	DeviceID string `json:"device_id" binding:"required,max=100,safe_id"`
}

// BluetoothSendRequest is the request body for a BLE transfer.
type BluetoothSendRequest struct {
	DeviceID   string `json:"device_id" binding:"required,max=100,safe_id"`
	ReceiverID string `json:"receiver_id" binding:"required,max=100,safe_id"`
	Amount     int64  `json:"amount" binding:"required,gt=0"`
}

// WalletResponse is the response body for wallet state.
type WalletResponse struct {
	ID             string `json:"id"`
	OnlineBalance  int64  `json:"online_balance"`
	OfflineBalance int64  `json:"offline_balance"`
	TotalBalance   int64  `json:"total_balance"`
	CreatedAt      string `json:"created_at"`
	LastUpdated    string `json:"last_updated"`
}

// FromWallet maps a domain wallet to its response body.
func FromWallet(w domain.Wallet) WalletResponse {
	return WalletResponse{
		ID:             w.ID,
		OnlineBalance:  w.OnlineBalance,
		OfflineBalance: w.OfflineBalance,
		TotalBalance:   w.TotalBalance,
		CreatedAt:      w.CreatedAt.Format(time.RFC3339),
		LastUpdated:    w.LastUpdated.Format(time.RFC3339),
	}
}

// TransactionResponse is the response body for journal entries.
type TransactionResponse struct {
	ID           string `json:"id"`
	FromWalletID string `json:"from_wallet_id"`
	ToWalletID   string `json:"to_wallet_id"`
	MerchantName string `json:"merchant_name,omitempty"`
	Amount       int64  `json:"amount"`
	Timestamp    string `json:"timestamp"`
	Signature    string `json:"signature,omitempty"`
	Type         string `json:"tx_type"`
	Status       string `json:"status"`
}

// FromTransaction maps a domain transaction to its response body.
func FromTransaction(tx domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           tx.ID,
		FromWalletID: tx.FromWalletID,
		ToWalletID:   tx.ToWalletID,
		MerchantName: tx.MerchantName,
		Amount:       tx.Amount,
		Timestamp:    tx.Timestamp.Format(time.RFC3339),
		Signature:    tx.Signature,
		Type:         string(tx.Type),
		Status:       string(tx.Status),
	}
}

// FromTransactions maps a journal slice, preserving order.
func FromTransactions(txs []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, FromTransaction(tx))
	}
	return out
}

// KeyPairResponse is the response body for key initialization. The private
// key never leaves the process.
type KeyPairResponse struct {
	PublicKey string `json:"public_key"`
	CreatedAt string `json:"created_at"`
}

// FromKeyPair maps a domain key pair to its response body.
func FromKeyPair(kp domain.KeyPair) KeyPairResponse {
	return KeyPairResponse{
		PublicKey: kp.PublicKey,
		CreatedAt: kp.CreatedAt.Format(time.RFC3339),
	}
}

// StatsResponse is the response body for wallet statistics.
type StatsResponse struct {
	TotalTransactions     int    `json:"total_transactions"`
	ConfirmedTransactions int    `json:"confirmed_transactions"`
	TotalVolume           int64  `json:"total_volume"`
	WalletID              string `json:"wallet_id"`
	CreatedAt             string `json:"created_at"`
}

// FromStats maps domain statistics to their response body.
func FromStats(s domain.WalletStats) StatsResponse {
	return StatsResponse{
		TotalTransactions:     s.TotalTransactions,
		ConfirmedTransactions: s.ConfirmedTransactions,
		TotalVolume:           s.TotalVolume,
		WalletID:              s.WalletID,
		CreatedAt:             s.CreatedAt.Format(time.RFC3339),
	}
}

// PayloadResponse is the response body for proximity payloads.
type PayloadResponse struct {
	TxID      string `json:"tx_id"`
	Sender    string `json:"sender"`
	Receiver  string `json:"receiver"`
	Amount    int64  `json:"amount"`
	Timestamp string `json:"timestamp"`
	Signature string `json:"signature"`
}

// FromPayload maps a domain proximity payload to its response body.
func FromPayload(p domain.ProximityPayload) PayloadResponse {
	return PayloadResponse{
		TxID:      p.TxID,
		Sender:    p.Sender,
		Receiver:  p.Receiver,
		Amount:    p.Amount,
		Timestamp: p.Timestamp.Format(time.RFC3339),
		Signature: p.Signature,
	}
}

// DeviceResponse is the response body for a discovered Bluetooth device.
type DeviceResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	RSSI int    `json:"rssi"`
}

// FromDevices maps scan results to their response bodies.
func FromDevices(devices []domain.BluetoothDevice) []DeviceResponse {
	out := make([]DeviceResponse, 0, len(devices))
	for _, d := range devices {
		out = append(out, DeviceResponse{ID: d.ID, Name: d.Name, RSSI: d.RSSI})
	}
	return out
}
