package normalize

import (
	"strings"

	"github.com/nisavid/32health-assmt-claim-process/claims/constants"
)

// aliasTable maps the comparison-normalized form of every accepted raw field
// spelling to its canonical name. The table is data, not logic: adding a new
// accepted spelling means adding a row here, nothing else. Keys must already
// be in comparison-normalized form (trimmed, whitespace collapsed,
// lowercased) or lookups will never hit them.
var aliasTable = map[string]string{
	"service_date":    constants.FieldServiceDate,
	"service date":    constants.FieldServiceDate,
	"date of service": constants.FieldServiceDate,

	"submitted_procedure": constants.FieldSubmittedProcedure,
	"submitted procedure": constants.FieldSubmittedProcedure,
	"procedure code":      constants.FieldSubmittedProcedure,

	"quadrant": constants.FieldQuadrant,

	"plan_group_number": constants.FieldPlanGroupNumber,
	"plan group number": constants.FieldPlanGroupNumber,
	"plan/group #":      constants.FieldPlanGroupNumber,
	"plan/group#":       constants.FieldPlanGroupNumber,

	"subscriber_number": constants.FieldSubscriberNumber,
	"subscriber number": constants.FieldSubscriberNumber,
	"subscriber #":      constants.FieldSubscriberNumber,
	"subscriber#":       constants.FieldSubscriberNumber,

	"provider_npi": constants.FieldProviderNPI,
	"provider npi": constants.FieldProviderNPI,
	"npi":          constants.FieldProviderNPI,

	"provider_fees": constants.FieldProviderFees,
	"provider fees": constants.FieldProviderFees,

	"member_coinsurance": constants.FieldMemberCoinsurance,
	"member coinsurance": constants.FieldMemberCoinsurance,

	"member_copay": constants.FieldMemberCopay,
	"member copay": constants.FieldMemberCopay,

	"allowed_fees": constants.FieldAllowedFees,
	"allowed fees": constants.FieldAllowedFees,
}

// CanonicalFieldName resolves a raw field spelling to its canonical name.
// The raw key is trimmed, internal whitespace is collapsed, and the result
// lowercased before lookup, so " Service   Date " and "SERVICE DATE" both
// resolve to service_date.
func CanonicalFieldName(rawKey string) (string, bool) {
	canonical, ok := aliasTable[normalizeKey(rawKey)]
	return canonical, ok
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.Join(strings.Fields(key), " "))
}
