package domain

import "time"

// Wallet holds the single user's split balance state. Balances are in the
// smallest currency unit. TotalBalance is derived and recomputed after every
// mutation so it can never drift from its components.
type Wallet struct {
	ID             string    `json:"id"`
	OnlineBalance  int64     `json:"online_balance"`  // Cloud synchronized balance
	OfflineBalance int64     `json:"offline_balance"` // Local vault balance
	TotalBalance   int64     `json:"total_balance"`
	CreatedAt      time.Time `json:"created_at"`
	LastUpdated    time.Time `json:"last_updated"`
}

// WalletStats aggregates journal-wide statistics.
type WalletStats struct {
	TotalTransactions     int       `json:"total_transactions"`
	ConfirmedTransactions int       `json:"confirmed_transactions"`
	TotalVolume           int64     `json:"total_volume"` // Sum of confirmed amounts
	WalletID              string    `json:"wallet_id"`
	CreatedAt             time.Time `json:"created_at"`
}
