package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"time"
)

// SHA256SigningService implements ports.SigningService.
//
// The stamp is hex(SHA-256(data || "|" || privateKey)). Only a holder of the
// private key can reproduce it, so verification means recomputing with the
// same key and comparing. This is an integrity stamp, not a publicly
// verifiable signature; see domain.KeyPair for the full caveat.
type SHA256SigningService struct{}

// NewSHA256SigningService creates a new signing service.
func NewSHA256SigningService() *SHA256SigningService {
	return &SHA256SigningService{}
}

// Sign computes the integrity stamp for data under privateKey.
// Returns lowercase hex.
func (s *SHA256SigningService) Sign(data string, privateKey string) string {
	combined := data + "|" + privateKey
	sum := sha256.Sum256([]byte(combined))
	return hex.EncodeToString(sum[:])
}

// Digest computes the plain one-way hash used for key derivation.
// Returns lowercase hex.
func (s *SHA256SigningService) Digest(data string) string {
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}

// BuildCanonicalString constructs the field-ordered payload that gets
// stamped. Format: TXID|SENDER|RECEIVER|AMOUNT|TIMESTAMP(RFC3339).
func (s *SHA256SigningService) BuildCanonicalString(txID, senderID, receiverID string, amount int64, timestamp time.Time) string {
	return fmt.Sprintf("%s|%s|%s|%d|%s", txID, senderID, receiverID, amount, timestamp.Format(time.RFC3339))
}

// StampsEqual compares two stamps in constant time.
func StampsEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
