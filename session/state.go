// Package session keeps the per-user wizard state between requests. The
// session id comes from the account service's token; the state lives in the
// local session DB.
package session

import (
	"context"
	"time"

	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
)

type State struct {
	ID        string
	UserEmail string

	// PaymentNonce is sent to the payment service and must come back
	// unchanged on the payment callback.
	PaymentNonce string
	// PreviousPage is where sign out returns to when cancelled.
	PreviousPage string
	// EnteredEmailAddress is held between the provide and check email pages.
	EnteredEmailAddress string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ctxKey int

const (
	stateKey ctxKey = iota
	claimsKey
)

func WithState(ctx context.Context, s *State) context.Context {
	return context.WithValue(ctx, stateKey, s)
}

// FromContext returns the state attached by Middleware, or nil.
func FromContext(ctx context.Context) *State {
	s, _ := ctx.Value(stateKey).(*State)
	return s
}

func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func ClaimsFromContext(ctx context.Context) *Claims {
	c, _ := ctx.Value(claimsKey).(*Claims)
	return c
}

// NewNonce returns a random token for the payment state round trip.
func NewNonce() (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", errors.Wrap(err, "new nonce")
	}
	return id.String(), nil
}
