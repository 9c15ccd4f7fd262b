package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/nisavid/32health-assmt-claim-process/claims/models"
)

// DefaultTopProviderLimit is the ranking size served when the caller does not
// ask for a specific limit.
const DefaultTopProviderLimit = 10

// TopProviders groups claims by provider NPI, sums each provider's net fees,
// and returns the providers with the largest sums in descending order,
// truncated to limit. Equal sums are ordered by ascending NPI so the ranking
// is reproducible regardless of claim insertion order or store iteration
// order. Pure function of its input.
func TopProviders(claims []*models.Claim, limit int) []models.ProviderNetFee {
	if limit <= 0 {
		limit = DefaultTopProviderLimit
	}

	totals := make(map[string]decimal.Decimal, len(claims))
	for _, claim := range claims {
		totals[claim.ProviderNPI] = totals[claim.ProviderNPI].Add(claim.NetFee)
	}

	ranking := make([]models.ProviderNetFee, 0, len(totals))
	for npi, total := range totals {
		ranking = append(ranking, models.ProviderNetFee{ProviderNPI: npi, TotalNetFee: total})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if !ranking[i].TotalNetFee.Equal(ranking[j].TotalNetFee) {
			return ranking[i].TotalNetFee.GreaterThan(ranking[j].TotalNetFee)
		}
		return ranking[i].ProviderNPI < ranking[j].ProviderNPI
	})

	if len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking
}
