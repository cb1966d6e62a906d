package ports

import (
	"context"

	"github.com/corphq/api/internal/core/domain"
)

// SessionRequest is the inbound payload for issuing a session.
type SessionRequest struct {
	Username     string
	AddressChain string
}

type SessionService interface {
	Create(ctx context.Context, r SessionRequest) (*domain.SessionTicket, error)
	// Expire invalidates the session for token. Idempotent.
	Expire(ctx context.Context, token string) error
}
