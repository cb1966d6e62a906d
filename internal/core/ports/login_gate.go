package ports

import "context"

// LoginGate throttles login attempts per originating client. Allow reports
// whether another attempt from key may proceed right now.
type LoginGate interface {
	Allow(ctx context.Context, key string) (bool, error)
}
