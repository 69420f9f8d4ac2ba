package ports

import (
	"context"
	"time"

	"fluxa-wallet/internal/core/domain"
)

// LedgerService is the wallet's single source of truth: balance state, the
// append-only transaction journal and the signing keys. Every method is
// atomic with respect to every other; implementations serialize all calls.
type LedgerService interface {
	// InitWallet ensures signing keys exist and returns the wallet snapshot.
	InitWallet() domain.Wallet
	// Wallet returns the current wallet snapshot.
	Wallet() domain.Wallet
	// InitializeKeys generates and installs a fresh key pair, replacing any
	// existing one, and returns it.
	InitializeKeys() domain.KeyPair
	// PublicKey returns the current public key.
	PublicKey() (string, error)

	// TransferToVault moves amount from the online balance into the offline
	// vault. TransferFromVault moves it back. Both journal a confirmed
	// transfer entry and return the updated wallet.
	TransferToVault(amount int64) (domain.Wallet, error)
	TransferFromVault(amount int64) (domain.Wallet, error)

	// CreateOfflineTransaction and CreateOnlineTransaction sign and journal
	// a pending send, optimistically debiting the corresponding balance.
	CreateOfflineTransaction(toWalletID, merchantName string, amount int64) (domain.Transaction, error)
	CreateOnlineTransaction(toWalletID, merchantName string, amount int64) (domain.Transaction, error)

	// ConfirmTransaction settles a pending send; balances stay as debited.
	ConfirmTransaction(txID string) (domain.Transaction, error)
	// CancelTransaction reverses a pending send's optimistic debit and
	// returns the updated wallet.
	CancelTransaction(txID string) (domain.Wallet, error)

	// Journal queries. All return snapshots in insertion order.
	Transactions() []domain.Transaction
	TransactionsByType(txType domain.TransactionType) []domain.Transaction
	TransactionsByStatus(status domain.TransactionStatus) []domain.Transaction

	// VerifySignature recomputes the integrity stamp for data and compares
	// it against signature.
	VerifySignature(data, signature string) (bool, error)

	// Stats aggregates counts and confirmed volume over the journal.
	Stats() domain.WalletStats
}

// SigningService derives integrity stamps from transaction data and the
// wallet's private key. Stamps are deterministic: the same data and key
// always produce the same stamp.
type SigningService interface {
	Sign(data string, privateKey string) string
	// Digest is the plain one-way hash used for key derivation.
	Digest(data string) string
	BuildCanonicalString(txID, senderID, receiverID string, amount int64, timestamp time.Time) string
}

// HashService handles passphrase hashing (Argon2id).
type HashService interface {
	Hash(passphrase string) (string, error)
	Verify(passphrase string, hash string) (bool, error)
}

// TokenService handles local session token operations.
type TokenService interface {
	Generate(walletID string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed session token claims.
type TokenClaims struct {
	WalletID string
}

// AuthService guards the local API with an optional passphrase.
type AuthService interface {
	// Login verifies the passphrase and issues a session token.
	Login(passphrase string) (string, time.Time, error)
	// Enabled reports whether a passphrase is configured at all.
	Enabled() bool
}

// ProximityService prepares and receives short-range wallet-to-wallet
// transfers. Transports themselves (NFC tag I/O, BLE characteristics) are
// platform facilities; this service owns validation, journaling and payload
// construction.
type ProximityService interface {
	NFCAvailable() bool
	PrepareNFCSend(ctx context.Context, receiverID string, amount int64) (domain.ProximityPayload, error)
	ReceiveNFC(ctx context.Context, payload domain.ProximityPayload) (domain.ProximityPayload, error)
	BluetoothScan(ctx context.Context) ([]domain.BluetoothDevice, error)
	BluetoothConnect(ctx context.Context, deviceID string) (bool, error)
	BluetoothSend(ctx context.Context, deviceID, receiverID string, amount int64) (domain.ProximityPayload, error)
}
