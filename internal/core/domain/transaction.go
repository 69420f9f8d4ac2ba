package domain

import "time"

// TransactionType represents the kind of money movement.
type TransactionType string

const (
	// TransactionTypeTransfer is an internal move between the online balance
	// and the offline vault. Created already confirmed, never signed.
	TransactionTypeTransfer TransactionType = "transfer"
	// TransactionTypeOffline is a P2P send debited from the offline vault.
	TransactionTypeOffline TransactionType = "offline"
	// TransactionTypeOnline is a server-validated send debited from the
	// online balance.
	TransactionTypeOnline TransactionType = "online"
)

// TransactionStatus represents the lifecycle state of a transaction.
// Legal transitions: pending -> confirmed, pending -> cancelled. Both
// confirmed and cancelled are terminal.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusConfirmed TransactionStatus = "confirmed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// Transaction is an immutable journal entry. Only Status changes after
// creation, and only through the engine's lifecycle operations.
type Transaction struct {
	ID           string            `json:"id"`
	FromWalletID string            `json:"from_wallet_id"`
	ToWalletID   string            `json:"to_wallet_id"`
	MerchantName string            `json:"merchant_name"`
	Amount       int64             `json:"amount"`
	Timestamp    time.Time         `json:"timestamp"`
	Signature    string            `json:"signature"` // Empty for internal vault transfers
	Type         TransactionType   `json:"tx_type"`
	Status       TransactionStatus `json:"status"`
}

// IsTerminal returns true if the transaction is in a final state.
func (t *Transaction) IsTerminal() bool {
	return t.Status == TransactionStatusConfirmed ||
		t.Status == TransactionStatusCancelled
}

// IsCancellable returns true if the transaction may still be cancelled.
// Only pending entries are; a cancelled entry must never be reversed a
// second time, and a confirmed entry is settled.
func (t *Transaction) IsCancellable() bool {
	return t.Status == TransactionStatusPending
}
