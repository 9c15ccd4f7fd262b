package normalize

import (
	"testing"

	"github.com/nisavid/32health-assmt-claim-process/claims/constants"
	"github.com/stretchr/testify/assert"
)

func TestCanonicalFieldNameVariants(t *testing.T) {
	tests := []struct {
		rawKey    string
		canonical string
	}{
		{" Service Date ", constants.FieldServiceDate},
		{"service_date", constants.FieldServiceDate},
		{"SERVICE DATE", constants.FieldServiceDate},
		{"Service   Date", constants.FieldServiceDate},
		{"Submitted Procedure", constants.FieldSubmittedProcedure},
		{"Quadrant", constants.FieldQuadrant},
		{"Plan/Group #", constants.FieldPlanGroupNumber},
		{"plan_group_number", constants.FieldPlanGroupNumber},
		{"Subscriber#", constants.FieldSubscriberNumber},
		{"Subscriber #", constants.FieldSubscriberNumber},
		{"Provider NPI", constants.FieldProviderNPI},
		{"provider fees", constants.FieldProviderFees},
		{"member CoInsurance", constants.FieldMemberCoinsurance},
		{"member coPay", constants.FieldMemberCopay},
		{"Allowed Fees", constants.FieldAllowedFees},
	}

	for _, tt := range tests {
		t.Run(tt.rawKey, func(t *testing.T) {
			canonical, ok := CanonicalFieldName(tt.rawKey)
			assert.True(t, ok)
			assert.Equal(t, tt.canonical, canonical)
		})
	}
}

func TestCanonicalFieldNameUnknownKey(t *testing.T) {
	for _, rawKey := range []string{"", "   ", "favorite color", "provider_npi2"} {
		_, ok := CanonicalFieldName(rawKey)
		assert.False(t, ok, "expected no match for %q", rawKey)
	}
}

// Every canonical name must resolve to itself so that an already-canonical
// payload survives normalization untouched.
func TestAliasTableCoversCanonicalNames(t *testing.T) {
	for _, field := range constants.CanonicalFields {
		canonical, ok := CanonicalFieldName(field)
		assert.True(t, ok, "canonical field %q missing from alias table", field)
		assert.Equal(t, field, canonical)
	}
}

// Every alias table value must be a recognized canonical field.
func TestAliasTableTargetsAreCanonical(t *testing.T) {
	known := make(map[string]struct{}, len(constants.CanonicalFields))
	for _, field := range constants.CanonicalFields {
		known[field] = struct{}{}
	}
	for alias, canonical := range aliasTable {
		_, ok := known[canonical]
		assert.True(t, ok, "alias %q maps to unknown field %q", alias, canonical)
		// Table keys must already be comparison-normalized
		assert.Equal(t, normalizeKey(alias), alias)
	}
}
