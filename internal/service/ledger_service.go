package service

import (
	"sync"
	"time"

	"fluxa-wallet/internal/core/domain"
	"fluxa-wallet/internal/core/ports"
	"fluxa-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Seed balances for a fresh wallet, in minor units.
const (
	seedOnlineBalance  int64 = 25000
	seedOfflineBalance int64 = 15000
)

// LedgerEngine implements ports.LedgerService. It exclusively owns the
// wallet, the optional key pair and the append-only journal; a single mutex
// serializes every operation end to end, so no two mutations interleave.
type LedgerEngine struct {
	mu      sync.Mutex
	wallet  domain.Wallet
	keypair *domain.KeyPair
	journal []domain.Transaction

	signer ports.SigningService
	log    zerolog.Logger
}

// NewLedgerEngine creates an engine with a fresh wallet. No key pair exists
// until InitWallet or InitializeKeys is called.
func NewLedgerEngine(signer ports.SigningService, log zerolog.Logger) *LedgerEngine {
	now := time.Now().UTC()
	walletID := uuid.New().String()

	return &LedgerEngine{
		wallet: domain.Wallet{
			ID:             walletID,
			OnlineBalance:  seedOnlineBalance,
			OfflineBalance: seedOfflineBalance,
			TotalBalance:   seedOnlineBalance + seedOfflineBalance,
			CreatedAt:      now,
			LastUpdated:    now,
		},
		signer: signer,
		log:    log,
	}
}

// InitWallet ensures signing keys exist and returns the wallet snapshot.
func (e *LedgerEngine) InitWallet() domain.Wallet {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.keypair == nil {
		e.installFreshKeys()
	}
	return e.wallet
}

// Wallet returns the current wallet snapshot.
func (e *LedgerEngine) Wallet() domain.Wallet {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.wallet
}

// InitializeKeys generates a fresh key pair, replacing any existing one.
// Callers wanting init-once semantics go through InitWallet instead.
func (e *LedgerEngine) InitializeKeys() domain.KeyPair {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.installFreshKeys()
}

// installFreshKeys derives a key pair from a random seed. Caller holds the lock.
func (e *LedgerEngine) installFreshKeys() domain.KeyPair {
	seed := uuid.New().String()
	privateKey := e.signer.Digest(seed)
	publicKey := e.signer.Digest("pub_" + privateKey)

	kp := domain.KeyPair{
		PublicKey:  publicKey,
		PrivateKey: privateKey,
		CreatedAt:  time.Now().UTC(),
	}
	e.keypair = &kp

	e.log.Info().Str("public_key", kp.PublicKey).Msg("signing keys installed")
	return kp
}

// PublicKey returns the current public key.
func (e *LedgerEngine) PublicKey() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.keypair == nil {
		return "", apperror.ErrKeysNotInitialized()
	}
	return e.keypair.PublicKey, nil
}

// TransferToVault moves amount from the online balance into the offline vault.
func (e *LedgerEngine) TransferToVault(amount int64) (domain.Wallet, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if amount <= 0 {
		return domain.Wallet{}, apperror.ErrInvalidAmount()
	}
	if amount > e.wallet.OnlineBalance {
		return domain.Wallet{}, apperror.ErrInsufficientFunds("online")
	}

	e.wallet.OnlineBalance -= amount
	e.wallet.OfflineBalance += amount
	e.touchWallet()
	e.appendVaultTransfer("Vault Transfer", amount)

	e.log.Info().Int64("amount", amount).Int64("offline_balance", e.wallet.OfflineBalance).Msg("funds moved to vault")
	return e.wallet, nil
}

// TransferFromVault moves amount from the offline vault back to the online balance.
func (e *LedgerEngine) TransferFromVault(amount int64) (domain.Wallet, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if amount <= 0 {
		return domain.Wallet{}, apperror.ErrInvalidAmount()
	}
	if amount > e.wallet.OfflineBalance {
		return domain.Wallet{}, apperror.ErrInsufficientFunds("vault")
	}

	e.wallet.OfflineBalance -= amount
	e.wallet.OnlineBalance += amount
	e.touchWallet()
	e.appendVaultTransfer("Vault Withdrawal", amount)

	e.log.Info().Int64("amount", amount).Int64("online_balance", e.wallet.OnlineBalance).Msg("funds moved from vault")
	return e.wallet, nil
}

// CreateOfflineTransaction signs and journals a pending P2P send debited
// from the offline vault.
func (e *LedgerEngine) CreateOfflineTransaction(toWalletID, merchantName string, amount int64) (domain.Transaction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.createSend(toWalletID, merchantName, amount, domain.TransactionTypeOffline)
}

// CreateOnlineTransaction signs and journals a pending server-validated send
// debited from the online balance.
func (e *LedgerEngine) CreateOnlineTransaction(toWalletID, merchantName string, amount int64) (domain.Transaction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.createSend(toWalletID, merchantName, amount, domain.TransactionTypeOnline)
}

// createSend implements the shared send path. Caller holds the lock.
// The amount is deducted optimistically at creation so two pending sends can
// never spend the same funds; cancellation is the explicit reversal path.
func (e *LedgerEngine) createSend(toWalletID, merchantName string, amount int64, txType domain.TransactionType) (domain.Transaction, error) {
	if amount <= 0 {
		return domain.Transaction{}, apperror.ErrInvalidAmount()
	}

	balance := &e.wallet.OfflineBalance
	balanceName := "offline"
	if txType == domain.TransactionTypeOnline {
		balance = &e.wallet.OnlineBalance
		balanceName = "online"
	}
	if amount > *balance {
		return domain.Transaction{}, apperror.ErrInsufficientFunds(balanceName)
	}

	if e.keypair == nil {
		return domain.Transaction{}, apperror.ErrKeysNotInitialized()
	}

	txID := uuid.New().String()
	timestamp := time.Now().UTC()

	canonical := e.signer.BuildCanonicalString(txID, e.wallet.ID, toWalletID, amount, timestamp)
	signature := e.signer.Sign(canonical, e.keypair.PrivateKey)

	*balance -= amount
	e.touchWallet()

	tx := domain.Transaction{
		ID:           txID,
		FromWalletID: e.wallet.ID,
		ToWalletID:   toWalletID,
		MerchantName: merchantName,
		Amount:       amount,
		Timestamp:    timestamp,
		Signature:    signature,
		Type:         txType,
		Status:       domain.TransactionStatusPending,
	}
	e.journal = append(e.journal, tx)

	e.log.Info().
		Str("tx_id", txID).
		Str("tx_type", string(txType)).
		Int64("amount", amount).
		Msg("pending transaction created")
	return tx, nil
}

// ConfirmTransaction settles a pending send. Confirming an already-confirmed
// entry is an idempotent no-op; confirming a cancelled entry is illegal, as
// its funds were already restored.
func (e *LedgerEngine) ConfirmTransaction(txID string) (domain.Transaction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	tx := e.findTransaction(txID)
	if tx == nil {
		return domain.Transaction{}, apperror.ErrTransactionNotFound()
	}
	if tx.Status == domain.TransactionStatusCancelled {
		return domain.Transaction{}, apperror.ErrInvalidState("Cannot confirm cancelled transaction")
	}

	tx.Status = domain.TransactionStatusConfirmed
	e.log.Info().Str("tx_id", txID).Msg("transaction confirmed")
	return *tx, nil
}

// CancelTransaction reverses the optimistic debit of a pending send and
// marks it cancelled. Only pending -> cancelled is legal: a confirmed entry
// is settled, and re-cancelling a cancelled entry would credit the balance
// twice.
func (e *LedgerEngine) CancelTransaction(txID string) (domain.Wallet, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	tx := e.findTransaction(txID)
	if tx == nil {
		return domain.Wallet{}, apperror.ErrTransactionNotFound()
	}
	if tx.Status == domain.TransactionStatusConfirmed {
		return domain.Wallet{}, apperror.ErrInvalidState("Cannot cancel confirmed transaction")
	}
	if tx.Status == domain.TransactionStatusCancelled {
		return domain.Wallet{}, apperror.ErrInvalidState("Transaction already cancelled")
	}

	switch tx.Type {
	case domain.TransactionTypeOnline:
		e.wallet.OnlineBalance += tx.Amount
	case domain.TransactionTypeOffline:
		e.wallet.OfflineBalance += tx.Amount
	}
	e.touchWallet()

	tx.Status = domain.TransactionStatusCancelled
	e.log.Info().Str("tx_id", txID).Int64("amount", tx.Amount).Msg("transaction cancelled, balance restored")
	return e.wallet, nil
}

// Transactions returns the full journal in insertion order.
func (e *LedgerEngine) Transactions() []domain.Transaction {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]domain.Transaction, len(e.journal))
	copy(out, e.journal)
	return out
}

// TransactionsByType returns journal entries of the given type, in order.
func (e *LedgerEngine) TransactionsByType(txType domain.TransactionType) []domain.Transaction {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]domain.Transaction, 0)
	for _, tx := range e.journal {
		if tx.Type == txType {
			out = append(out, tx)
		}
	}
	return out
}

// TransactionsByStatus returns journal entries in the given state, in order.
func (e *LedgerEngine) TransactionsByStatus(status domain.TransactionStatus) []domain.Transaction {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]domain.Transaction, 0)
	for _, tx := range e.journal {
		if tx.Status == status {
			out = append(out, tx)
		}
	}
	return out
}

// VerifySignature recomputes the integrity stamp for data with the wallet's
// own private key and compares.
func (e *LedgerEngine) VerifySignature(data, signature string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.keypair == nil {
		return false, apperror.ErrKeysNotInitialized()
	}

	expected := e.signer.Sign(data, e.keypair.PrivateKey)
	return StampsEqual(expected, signature), nil
}

// Stats aggregates counts and confirmed volume over the journal.
func (e *LedgerEngine) Stats() domain.WalletStats {
	e.mu.Lock()
	defer e.mu.Unlock()

	stats := domain.WalletStats{
		TotalTransactions: len(e.journal),
		WalletID:          e.wallet.ID,
		CreatedAt:         e.wallet.CreatedAt,
	}
	for _, tx := range e.journal {
		if tx.Status == domain.TransactionStatusConfirmed {
			stats.ConfirmedTransactions++
			stats.TotalVolume += tx.Amount
		}
	}
	return stats
}

// touchWallet recomputes the derived total and bumps LastUpdated.
// Caller holds the lock.
func (e *LedgerEngine) touchWallet() {
	e.wallet.TotalBalance = e.wallet.OnlineBalance + e.wallet.OfflineBalance
	e.wallet.LastUpdated = time.Now().UTC()
}

// appendVaultTransfer journals an internal transfer. Vault moves settle
// instantly and carry no signature. Caller holds the lock.
func (e *LedgerEngine) appendVaultTransfer(label string, amount int64) {
	e.journal = append(e.journal, domain.Transaction{
		ID:           uuid.New().String(),
		FromWalletID: e.wallet.ID,
		ToWalletID:   e.wallet.ID,
		MerchantName: label,
		Amount:       amount,
		Timestamp:    time.Now().UTC(),
		Type:         domain.TransactionTypeTransfer,
		Status:       domain.TransactionStatusConfirmed,
	})
}

// findTransaction returns a pointer into the journal, or nil. Caller holds
// the lock and must not let the pointer escape it.
func (e *LedgerEngine) findTransaction(txID string) *domain.Transaction {
	for i := range e.journal {
		if e.journal[i].ID == txID {
			return &e.journal[i]
		}
	}
	return nil
}
