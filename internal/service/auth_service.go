package service

import (
	"time"

	"fluxa-wallet/internal/core/ports"
	"fluxa-wallet/pkg/apperror"

	"github.com/rs/zerolog"
)

// LocalAuthService implements ports.AuthService. The passphrase is hashed
// once at startup; only the hash is retained in memory. An empty passphrase
// disables authentication, matching a trusted single-user desktop setup.
type LocalAuthService struct {
	passphraseHash string
	ledger         ports.LedgerService
	hashSvc        ports.HashService
	tokenSvc       ports.TokenService
	log            zerolog.Logger
}

// NewLocalAuthService creates the auth service, hashing the configured
// passphrase up front. passphrase may be empty to disable auth.
func NewLocalAuthService(
	passphrase string,
	ledger ports.LedgerService,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	log zerolog.Logger,
) (*LocalAuthService, error) {
	svc := &LocalAuthService{
		ledger:   ledger,
		hashSvc:  hashSvc,
		tokenSvc: tokenSvc,
		log:      log,
	}

	if passphrase != "" {
		hash, err := hashSvc.Hash(passphrase)
		if err != nil {
			return nil, err
		}
		svc.passphraseHash = hash
	}

	return svc, nil
}

// Enabled reports whether a passphrase is configured.
func (s *LocalAuthService) Enabled() bool {
	return s.passphraseHash != ""
}

// Login verifies the passphrase and issues a session token bound to the
// wallet id.
func (s *LocalAuthService) Login(passphrase string) (string, time.Time, error) {
	if !s.Enabled() {
		// Auth disabled: issue a token anyway so clients can use one code path.
		return s.issue()
	}

	ok, err := s.hashSvc.Verify(passphrase, s.passphraseHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(err)
	}
	if !ok {
		s.log.Warn().Msg("failed login attempt")
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	return s.issue()
}

func (s *LocalAuthService) issue() (string, time.Time, error) {
	walletID := s.ledger.Wallet().ID
	token, expiry, err := s.tokenSvc.Generate(walletID)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(err)
	}

	s.log.Info().Str("wallet_id", walletID).Time("expiry", expiry).Msg("session token issued")
	return token, expiry, nil
}
