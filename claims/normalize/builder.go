package normalize

import (
	"github.com/nisavid/32health-assmt-claim-process/claims/models"
)

// Build assembles a persistable Claim from validated fields. The net fee is
// derived as provider fees minus the member's coinsurance and copay; it may
// legitimately be negative. The identifier is left unset for the store to
// assign. Build has no failure path: its input is already validated.
func Build(fields ValidatedFields) models.Claim {
	netFee := fields.ProviderFees.Sub(fields.MemberCoinsurance).Sub(fields.MemberCopay)
	return models.Claim{
		ServiceDate:        fields.ServiceDate,
		SubmittedProcedure: fields.SubmittedProcedure,
		Quadrant:           fields.Quadrant,
		PlanGroupNumber:    fields.PlanGroupNumber,
		SubscriberNumber:   fields.SubscriberNumber,
		ProviderNPI:        fields.ProviderNPI,
		ProviderFees:       fields.ProviderFees,
		MemberCoinsurance:  fields.MemberCoinsurance,
		MemberCopay:        fields.MemberCopay,
		AllowedFees:        fields.AllowedFees,
		NetFee:             netFee,
	}
}
