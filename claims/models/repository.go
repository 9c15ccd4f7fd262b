package models

import "context"

// Repository contains the persistence operations the claims service consumes.
// Claims are insert-only; no update or delete exists.
type Repository interface {
	// CreateClaim inserts the claim and returns the identifier the store
	// assigned to it.
	CreateClaim(ctx context.Context, claim Claim) (uint, error)

	// GetClaimByID returns the claim with the given identifier, or nil if no
	// such claim exists.
	GetClaimByID(ctx context.Context, id uint) (*Claim, error)

	// GetClaims returns every persisted claim.
	GetClaims(ctx context.Context) ([]*Claim, error)
}
