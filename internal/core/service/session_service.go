package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/corphq/api/internal/core/domain"
	"github.com/corphq/api/internal/core/ports"
)

const (
	tokenLength = 128
	sessionTTL  = 10 * time.Minute
)

// 62-symbol alphabet. At 128 characters the key space is large enough that
// tokens are not checked for collisions against existing sessions.
const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// SessionService implements session issuance and invalidation.
type SessionService struct {
	sessions ports.SessionRepository
	now      func() time.Time
}

func NewSessionService(sessions ports.SessionRepository) *SessionService {
	return &SessionService{sessions: sessions, now: time.Now}
}

// Create issues a new session for the request and persists it. The returned
// ticket exposes only the token and expiry; the username and address chain
// stay server-side.
func (s *SessionService) Create(ctx context.Context, r ports.SessionRequest) (*domain.SessionTicket, error) {
	required := []struct {
		key   string
		value string
	}{
		{"addressChain", r.AddressChain},
		{"username", r.Username},
	}
	for _, f := range required {
		if f.value == "" {
			return nil, &domain.ValidationError{Field: f.key}
		}
	}

	token, err := generateToken(tokenLength)
	if err != nil {
		return nil, err
	}
	expireAt := s.now().UTC().Add(sessionTTL)

	session := domain.Session{
		Token:        token,
		AddressChain: r.AddressChain,
		Username:     r.Username,
		UserRole:     domain.RoleUser,
		ExpireAt:     expireAt,
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	return &domain.SessionTicket{Token: token, ExpireAt: expireAt}, nil
}

// Expire invalidates the session for token. Expiring a token that was never
// issued, or that the store already removed, succeeds silently.
func (s *SessionService) Expire(ctx context.Context, token string) error {
	return s.sessions.Remove(ctx, token)
}

func generateToken(length int) (string, error) {
	max := big.NewInt(int64(len(tokenAlphabet)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate token: %w", err)
		}
		buf[i] = tokenAlphabet[n.Int64()]
	}
	return string(buf), nil
}
