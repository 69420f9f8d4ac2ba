package service

import (
	"context"
	"time"

	"fluxa-wallet/internal/core/domain"
	"fluxa-wallet/internal/core/ports"
	"fluxa-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Proximity transfer bounds, in minor units.
const (
	proximityMinAmount int64 = 100
	proximityMaxAmount int64 = 1_000_000
)

// payloadNonceTTL bounds how long a received payload id is remembered for
// replay rejection.
const payloadNonceTTL = 24 * time.Hour

// ProximityServiceImpl implements ports.ProximityService. The actual tag
// write / BLE characteristic exchange happens in the platform shell; this
// service validates, journals the send through the ledger so proximity
// transfers are never invisible to it, and builds the payload the transport
// delivers.
type ProximityServiceImpl struct {
	ledger       ports.LedgerService
	nonceStore   ports.NonceStore // nil = replay protection disabled
	nfcAvailable bool
	bleAvailable bool
	log          zerolog.Logger
}

// NewProximityService creates a new ProximityServiceImpl. nonceStore may be
// nil when Redis is not configured.
func NewProximityService(
	ledger ports.LedgerService,
	nonceStore ports.NonceStore,
	nfcAvailable, bleAvailable bool,
	log zerolog.Logger,
) *ProximityServiceImpl {
	return &ProximityServiceImpl{
		ledger:       ledger,
		nonceStore:   nonceStore,
		nfcAvailable: nfcAvailable,
		bleAvailable: bleAvailable,
		log:          log,
	}
}

// NFCAvailable reports whether the device exposes an NFC transport.
func (s *ProximityServiceImpl) NFCAvailable() bool {
	return s.nfcAvailable
}

// PrepareNFCSend validates and journals an NFC send, returning the payload
// to write to the tag. The offline balance is debited through the ledger at
// this point; the entry stays pending until the receiver acknowledges.
func (s *ProximityServiceImpl) PrepareNFCSend(ctx context.Context, receiverID string, amount int64) (domain.ProximityPayload, error) {
	if !s.nfcAvailable {
		return domain.ProximityPayload{}, apperror.ErrTransportUnavailable("NFC")
	}
	return s.prepareSend(receiverID, "NFC Transfer", amount)
}

// ReceiveNFC accepts a payload read from a tag. A payload with an empty tx
// id yields simulated inbound data (desktop builds have no real tag reader).
// Replayed payload ids are rejected when a nonce store is configured.
func (s *ProximityServiceImpl) ReceiveNFC(ctx context.Context, payload domain.ProximityPayload) (domain.ProximityPayload, error) {
	if !s.nfcAvailable {
		return domain.ProximityPayload{}, apperror.ErrTransportUnavailable("NFC")
	}

	if payload.TxID == "" {
		payload = domain.ProximityPayload{
			TxID:      uuid.New().String(),
			Sender:    "wallet_sender",
			Receiver:  "wallet_receiver",
			Amount:    5000,
			Timestamp: time.Now().UTC(),
			Signature: "sig_placeholder",
		}
	}

	if s.nonceStore != nil {
		fresh, err := s.nonceStore.CheckAndSet(ctx, "nfc", payload.TxID, payloadNonceTTL)
		if err != nil {
			s.log.Warn().Err(err).Str("tx_id", payload.TxID).Msg("nonce store error, accepting payload")
		} else if !fresh {
			return domain.ProximityPayload{}, apperror.ErrPayloadReplayed()
		}
	}

	s.log.Info().Str("tx_id", payload.TxID).Int64("amount", payload.Amount).Msg("proximity payload received")
	return payload, nil
}

// BluetoothScan returns nearby devices. Desktop builds simulate the scan;
// mobile shells replace it with platform BLE results.
func (s *ProximityServiceImpl) BluetoothScan(ctx context.Context) ([]domain.BluetoothDevice, error) {
	if !s.bleAvailable {
		return nil, apperror.ErrTransportUnavailable("Bluetooth")
	}

	return []domain.BluetoothDevice{
		{ID: "device_001", Name: "Amenan's phone", RSSI: -45},
		{ID: "device_002", Name: "Kofi's iPhone", RSSI: -62},
	}, nil
}

// BluetoothConnect establishes a (simulated) connection to a device.
func (s *ProximityServiceImpl) BluetoothConnect(ctx context.Context, deviceID string) (bool, error) {
	if !s.bleAvailable {
		return false, apperror.ErrTransportUnavailable("Bluetooth")
	}

	s.log.Info().Str("device_id", deviceID).Msg("bluetooth device connected")
	return true, nil
}

// BluetoothSend validates and journals a BLE send, returning the payload
// pushed over the characteristic.
func (s *ProximityServiceImpl) BluetoothSend(ctx context.Context, deviceID, receiverID string, amount int64) (domain.ProximityPayload, error) {
	if !s.bleAvailable {
		return domain.ProximityPayload{}, apperror.ErrTransportUnavailable("Bluetooth")
	}

	payload, err := s.prepareSend(receiverID, "Bluetooth Transfer", amount)
	if err != nil {
		return domain.ProximityPayload{}, err
	}

	s.log.Info().Str("device_id", deviceID).Str("tx_id", payload.TxID).Msg("bluetooth transaction sent")
	return payload, nil
}

// prepareSend is the shared proximity send path: bound check, then a real
// offline journal entry so the ledger's balance and lifecycle rules apply.
func (s *ProximityServiceImpl) prepareSend(receiverID, merchantName string, amount int64) (domain.ProximityPayload, error) {
	if amount < proximityMinAmount || amount > proximityMaxAmount {
		return domain.ProximityPayload{}, apperror.ErrAmountOutOfBounds()
	}

	tx, err := s.ledger.CreateOfflineTransaction(receiverID, merchantName, amount)
	if err != nil {
		return domain.ProximityPayload{}, err
	}

	return domain.ProximityPayload{
		TxID:      tx.ID,
		Sender:    tx.FromWalletID,
		Receiver:  tx.ToWalletID,
		Amount:    tx.Amount,
		Timestamp: tx.Timestamp,
		Signature: tx.Signature,
	}, nil
}
