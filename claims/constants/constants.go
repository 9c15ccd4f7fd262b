package constants

const Version = "1.0.0"

// Canonical claim field names. Every raw spelling accepted on input resolves
// to exactly one of these.
const (
	FieldServiceDate        = "service_date"
	FieldSubmittedProcedure = "submitted_procedure"
	FieldQuadrant           = "quadrant"
	FieldPlanGroupNumber    = "plan_group_number"
	FieldSubscriberNumber   = "subscriber_number"
	FieldProviderNPI        = "provider_npi"
	FieldProviderFees       = "provider_fees"
	FieldMemberCoinsurance  = "member_coinsurance"
	FieldMemberCopay        = "member_copay"
	FieldAllowedFees        = "allowed_fees"
)

// CanonicalFields lists every recognized canonical field name.
var CanonicalFields = []string{
	FieldServiceDate,
	FieldSubmittedProcedure,
	FieldQuadrant,
	FieldPlanGroupNumber,
	FieldSubscriberNumber,
	FieldProviderNPI,
	FieldProviderFees,
	FieldMemberCoinsurance,
	FieldMemberCopay,
	FieldAllowedFees,
}

// RequiredFields lists the canonical fields a claim cannot be created
// without. Quadrant is the only optional field.
var RequiredFields = []string{
	FieldServiceDate,
	FieldSubmittedProcedure,
	FieldPlanGroupNumber,
	FieldSubscriberNumber,
	FieldProviderNPI,
	FieldProviderFees,
	FieldMemberCoinsurance,
	FieldMemberCopay,
	FieldAllowedFees,
}

const DefaultAPIPort = 3000
