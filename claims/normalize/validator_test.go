package normalize

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/nisavid/32health-assmt-claim-process/claims/constants"
	"github.com/nisavid/32health-assmt-claim-process/claims/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validPayload() models.CanonicalClaimPayload {
	return models.CanonicalClaimPayload{
		constants.FieldServiceDate:        "2024-06-24",
		constants.FieldSubmittedProcedure: "D1234",
		constants.FieldQuadrant:           "UR",
		constants.FieldPlanGroupNumber:    "ABC123",
		constants.FieldSubscriberNumber:   "SUB123456",
		constants.FieldProviderNPI:        "1234567890",
		constants.FieldProviderFees:       json.Number("100.00"),
		constants.FieldMemberCoinsurance:  json.Number("20.00"),
		constants.FieldMemberCopay:        json.Number("10.00"),
		constants.FieldAllowedFees:        json.Number("50.00"),
	}
}

func TestValidateValidPayload(t *testing.T) {
	fields, errs := Validate(validPayload())

	assert.Empty(t, errs)
	assert.NotNil(t, fields)
	assert.Equal(t, models.NewDate(2024, time.June, 24), fields.ServiceDate)
	assert.Equal(t, "D1234", fields.SubmittedProcedure)
	assert.Equal(t, "UR", fields.Quadrant)
	assert.Equal(t, "ABC123", fields.PlanGroupNumber)
	assert.Equal(t, "SUB123456", fields.SubscriberNumber)
	assert.Equal(t, "1234567890", fields.ProviderNPI)
	assert.True(t, fields.ProviderFees.Equal(decimal.RequireFromString("100.00")))
	assert.True(t, fields.MemberCoinsurance.Equal(decimal.RequireFromString("20.00")))
	assert.True(t, fields.MemberCopay.Equal(decimal.RequireFromString("10.00")))
	assert.True(t, fields.AllowedFees.Equal(decimal.RequireFromString("50.00")))
}

func TestValidateEmptyPayloadReportsEveryMissingField(t *testing.T) {
	fields, errs := Validate(models.CanonicalClaimPayload{})

	assert.Nil(t, fields)
	assert.Len(t, errs, len(constants.RequiredFields))
	missing := make(map[string]bool)
	for _, fe := range errs {
		assert.Equal(t, MissingField, fe.Kind)
		missing[fe.Field] = true
	}
	for _, field := range constants.RequiredFields {
		assert.True(t, missing[field], "no MissingField error for %s", field)
	}
}

func TestValidateDateFormats(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{"ISO", "2024-06-24", true},
		{"RFC3339", "2024-06-24T10:30:00Z", true},
		{"ISOWithTime", "2024-06-24 00:00:00", true},
		{"USSlash", "06/24/2024", true},
		{"ShortUSWithTime", "6/24/24 0:00", true},
		{"YearSlash", "2024/06/24", true},
		{"Garbage", "invalid-date", false},
		{"MonthOutOfRange", "2024-13-24", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validPayload()
			payload[constants.FieldServiceDate] = tt.value
			fields, errs := Validate(payload)
			if tt.ok {
				assert.Empty(t, errs)
				assert.Equal(t, models.NewDate(2024, time.June, 24), fields.ServiceDate)
			} else {
				assert.Equal(t, constants.FieldServiceDate, errs[0].Field)
				assert.Equal(t, InvalidFormat, errs[0].Kind)
			}
		})
	}
}

func TestValidateProcedureCode(t *testing.T) {
	for _, bad := range []string{"1234", "D123", "D12345", "DD123", "d12x4"} {
		payload := validPayload()
		payload[constants.FieldSubmittedProcedure] = bad
		_, errs := Validate(payload)
		assert.Len(t, errs, 1, "expected one error for %q", bad)
		assert.Equal(t, constants.FieldSubmittedProcedure, errs[0].Field)
		assert.Equal(t, InvalidFormat, errs[0].Kind)
	}

	// Lowercase letter prefix is accepted
	payload := validPayload()
	payload[constants.FieldSubmittedProcedure] = "d1234"
	_, errs := Validate(payload)
	assert.Empty(t, errs)
}

func TestValidateQuadrant(t *testing.T) {
	// Absent is permitted
	payload := validPayload()
	delete(payload, constants.FieldQuadrant)
	fields, errs := Validate(payload)
	assert.Empty(t, errs)
	assert.Equal(t, "", fields.Quadrant)

	// Case-insensitive, normalized to uppercase
	payload = validPayload()
	payload[constants.FieldQuadrant] = "ll"
	fields, errs = Validate(payload)
	assert.Empty(t, errs)
	assert.Equal(t, "LL", fields.Quadrant)

	payload = validPayload()
	payload[constants.FieldQuadrant] = "XX"
	_, errs = Validate(payload)
	assert.Len(t, errs, 1)
	assert.Equal(t, constants.FieldQuadrant, errs[0].Field)
	assert.Equal(t, InvalidValue, errs[0].Kind)
}

func TestValidateNPI(t *testing.T) {
	for _, bad := range []string{"123456789", "12345678901", "12345abcde", "123-456-78"} {
		payload := validPayload()
		payload[constants.FieldProviderNPI] = bad
		_, errs := Validate(payload)
		assert.Len(t, errs, 1, "expected one error for %q", bad)
		assert.Equal(t, constants.FieldProviderNPI, errs[0].Field)
		assert.Equal(t, InvalidFormat, errs[0].Kind)
	}
}

func TestValidateNegativeAmountFailsThatFieldOnly(t *testing.T) {
	payload := validPayload()
	payload[constants.FieldProviderFees] = json.Number("-100.0")

	fields, errs := Validate(payload)

	assert.Nil(t, fields)
	assert.Len(t, errs, 1)
	assert.Equal(t, constants.FieldProviderFees, errs[0].Field)
	assert.Equal(t, InvalidValue, errs[0].Kind)
}

func TestValidateNonNumericAmount(t *testing.T) {
	payload := validPayload()
	payload[constants.FieldMemberCopay] = "lots"

	_, errs := Validate(payload)

	assert.Len(t, errs, 1)
	assert.Equal(t, constants.FieldMemberCopay, errs[0].Field)
	assert.Equal(t, InvalidFormat, errs[0].Kind)
}

func TestValidateCollectsMultipleErrors(t *testing.T) {
	payload := validPayload()
	payload[constants.FieldServiceDate] = "invalid-date"
	payload[constants.FieldSubmittedProcedure] = "1234"
	payload[constants.FieldProviderFees] = json.Number("-100.0")

	fields, errs := Validate(payload)

	assert.Nil(t, fields)
	assert.Len(t, errs, 3)
	kinds := map[string]ErrorKind{}
	for _, fe := range errs {
		kinds[fe.Field] = fe.Kind
	}
	assert.Equal(t, InvalidFormat, kinds[constants.FieldServiceDate])
	assert.Equal(t, InvalidFormat, kinds[constants.FieldSubmittedProcedure])
	assert.Equal(t, InvalidValue, kinds[constants.FieldProviderFees])
}

func TestValidateBlankRequiredStringIsMissing(t *testing.T) {
	payload := validPayload()
	payload[constants.FieldPlanGroupNumber] = "   "

	_, errs := Validate(payload)

	assert.Len(t, errs, 1)
	assert.Equal(t, constants.FieldPlanGroupNumber, errs[0].Field)
	assert.Equal(t, MissingField, errs[0].Kind)
}

func TestFieldErrorsErrorString(t *testing.T) {
	errs := FieldErrors{
		{constants.FieldProviderNPI, InvalidFormat, `"123" is not a 10-digit NPI`},
	}
	assert.Contains(t, errs.Error(), "provider_npi")
	assert.Contains(t, errs.Error(), "10-digit NPI")
}
