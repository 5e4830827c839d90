package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	apperrors "resepku/internal/errors"
)

const (
	handlePrefix = "@cook"
	// maxHandleAttempts bounds the collision-retry loop. With a million-slot
	// namespace ten draws only ever exhaust when the space is nearly full,
	// and at that point failing loudly beats spinning.
	maxHandleAttempts = 10
)

// HandleChecker is the store lookup the generator needs.
// repository.UserRepository satisfies it.
type HandleChecker interface {
	HandleExists(ctx context.Context, handle string) (bool, error)
}

// HandleGenerator allocates public @cook###### handles.
type HandleGenerator struct {
	users    HandleChecker
	attempts int
}

// NewHandleGenerator creates a generator backed by the given store lookup.
func NewHandleGenerator(users HandleChecker) *HandleGenerator {
	return &HandleGenerator{users: users, attempts: maxHandleAttempts}
}

// Generate draws random six-digit suffixes until it finds one not yet in the
// store, or gives up with ErrHandleSpaceExhausted. The pre-check is advisory
// only: the unique index on the handle column is the real guarantee, and
// registration retries on a constraint violation.
func (g *HandleGenerator) Generate(ctx context.Context) (string, error) {
	for i := 0; i < g.attempts; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(900000))
		if err != nil {
			return "", fmt.Errorf("draw handle suffix: %w", err)
		}
		handle := fmt.Sprintf("%s%d", handlePrefix, n.Int64()+100000)

		exists, err := g.users.HandleExists(ctx, handle)
		if err != nil {
			return "", fmt.Errorf("check handle: %w", err)
		}
		if !exists {
			return handle, nil
		}
	}
	return "", apperrors.ErrHandleSpaceExhausted
}
