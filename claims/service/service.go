package service

import (
	"context"

	"github.com/pkg/errors"

	claimserrors "github.com/nisavid/32health-assmt-claim-process/claims/errors"
	"github.com/nisavid/32health-assmt-claim-process/claims/models"
	"github.com/nisavid/32health-assmt-claim-process/claims/normalize"
	"github.com/nisavid/32health-assmt-claim-process/log"
)

// ClaimResult is the outcome of processing one submitted payload. Exactly one
// of Claim or Errors is set.
type ClaimResult struct {
	Claim  *models.Claim         `json:"claim,omitempty"`
	Errors normalize.FieldErrors `json:"errors,omitempty"`
}

// Ensure service satisfies the interface
var _ Service = &service{}

// Service contains all of the methods needed to work with claims.
type Service interface {
	// ProcessClaims runs each payload through the
	// normalize/validate/build/persist pipeline. Payloads are processed
	// independently: one payload's validation failure never aborts its
	// siblings, and results come back in input order. The returned error is
	// non-nil only for persistence failures, which are propagated unmasked.
	ProcessClaims(ctx context.Context, payloads []models.RawClaimPayload) ([]ClaimResult, error)

	GetClaim(ctx context.Context, id uint) (*models.Claim, error)

	GetClaims(ctx context.Context) ([]*models.Claim, error)

	// GetTopProviders recomputes the provider ranking from the full claim
	// set; there is no cached aggregate to go stale.
	GetTopProviders(ctx context.Context, limit int) ([]models.ProviderNetFee, error)
}

func NewService(r models.Repository) Service {
	return &service{repository: r}
}

type service struct {
	repository models.Repository
}

func (s *service) ProcessClaims(ctx context.Context, payloads []models.RawClaimPayload) ([]ClaimResult, error) {
	results := make([]ClaimResult, 0, len(payloads))
	for _, payload := range payloads {
		canonical := normalize.Normalize(payload)
		fields, fieldErrs := normalize.Validate(canonical)
		if len(fieldErrs) > 0 {
			log.API.Infof("Claim rejected with %d validation error(s)", len(fieldErrs))
			results = append(results, ClaimResult{Errors: fieldErrs})
			continue
		}

		claim := normalize.Build(*fields)
		id, err := s.repository.CreateClaim(ctx, claim)
		if err != nil {
			return nil, errors.Wrap(err, "failed to persist claim")
		}
		claim.ID = id
		log.API.Infof("Claim %d created for provider %s", id, claim.ProviderNPI)
		results = append(results, ClaimResult{Claim: &claim})
	}
	return results, nil
}

func (s *service) GetClaim(ctx context.Context, id uint) (*models.Claim, error) {
	claim, err := s.repository.GetClaimByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to look up claim %d", id)
	}
	if claim == nil {
		return nil, &claimserrors.ClaimNotFoundError{ClaimID: id}
	}
	return claim, nil
}

func (s *service) GetClaims(ctx context.Context) ([]*models.Claim, error) {
	claims, err := s.repository.GetClaims(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list claims")
	}
	return claims, nil
}

func (s *service) GetTopProviders(ctx context.Context, limit int) ([]models.ProviderNetFee, error) {
	claims, err := s.repository.GetClaims(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load claims for provider ranking")
	}
	return TopProviders(claims, limit), nil
}
