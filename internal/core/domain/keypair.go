package domain

import "time"

// KeyPair holds the wallet's signing material.
//
// This is NOT an asymmetric key pair: the public key is merely a tagged hash
// of the private key, and signature verification recomputes the stamp from
// the private key. The "signature" is an integrity stamp only the holder of
// the private key can reproduce; it cannot be verified by a third party.
// Downstream verification depends on this symmetric behavior, so it must not
// be silently replaced with real public-key cryptography.
type KeyPair struct {
	PublicKey  string    `json:"public_key"`
	PrivateKey string    `json:"private_key"`
	CreatedAt  time.Time `json:"created_at"`
}
