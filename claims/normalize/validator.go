package normalize

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nisavid/32health-assmt-claim-process/claims/constants"
	"github.com/nisavid/32health-assmt-claim-process/claims/models"
)

// ErrorKind classifies a single field validation failure.
type ErrorKind string

const (
	MissingField  ErrorKind = "missing_field"
	InvalidFormat ErrorKind = "invalid_format"
	InvalidValue  ErrorKind = "invalid_value"
)

// FieldError is one field-addressable validation failure.
type FieldError struct {
	Field   string    `json:"field"`
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// FieldErrors is the complete set of validation failures for one payload.
// Validation collects every violation before reporting, so a caller always
// receives the full diagnostic rather than the first failure.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return fmt.Sprintf("claim validation failed: %s", strings.Join(msgs, "; "))
}

// ValidatedFields holds the typed values of a payload that passed validation,
// ready for entity construction.
type ValidatedFields struct {
	ServiceDate        models.Date
	SubmittedProcedure string
	Quadrant           string
	PlanGroupNumber    string
	SubscriberNumber   string
	ProviderNPI        string
	ProviderFees       decimal.Decimal
	MemberCoinsurance  decimal.Decimal
	MemberCopay        decimal.Decimal
	AllowedFees        decimal.Decimal
}

var (
	procedureExp = regexp.MustCompile(`^[A-Za-z][0-9]{4}$`)
	npiExp       = regexp.MustCompile(`^[0-9]{10}$`)
)

var quadrants = map[string]struct{}{
	"UR": {}, "UL": {}, "LR": {}, "LL": {},
}

// dateLayouts are the accepted service date formats. ISO must always be
// accepted; the remaining layouts cover formats seen in human-entered data
// and are all unambiguous.
var dateLayouts = []string{
	models.DateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/06 15:04",
	"2006/01/02",
}

// parseDate attempts each accepted layout in order.
func parseDate(s string) (models.Date, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return models.NewDate(t.Year(), t.Month(), t.Day()), true
		}
	}
	return models.Date{}, false
}

// Validate coerces each canonical field to its target type and collects every
// violation. It performs no field name normalization (Normalize's job) and no
// persistence.
func Validate(payload models.CanonicalClaimPayload) (*ValidatedFields, FieldErrors) {
	var (
		fields ValidatedFields
		errs   FieldErrors
	)

	if s, ferr := requiredString(payload, constants.FieldServiceDate); ferr != nil {
		errs = append(errs, *ferr)
	} else if d, ok := parseDate(s); !ok {
		errs = append(errs, FieldError{constants.FieldServiceDate, InvalidFormat,
			fmt.Sprintf("%q is not a recognized calendar date", s)})
	} else {
		fields.ServiceDate = d
	}

	if s, ferr := requiredString(payload, constants.FieldSubmittedProcedure); ferr != nil {
		errs = append(errs, *ferr)
	} else if !procedureExp.MatchString(s) {
		errs = append(errs, FieldError{constants.FieldSubmittedProcedure, InvalidFormat,
			fmt.Sprintf("%q does not match the procedure code format (a letter followed by 4 digits)", s)})
	} else {
		fields.SubmittedProcedure = s
	}

	// Quadrant is the only optional field
	if raw, present := payload[constants.FieldQuadrant]; present && raw != nil {
		q := strings.ToUpper(strings.TrimSpace(scalarString(raw)))
		if q != "" {
			if _, ok := quadrants[q]; !ok {
				errs = append(errs, FieldError{constants.FieldQuadrant, InvalidValue,
					fmt.Sprintf("%q is not one of UR, UL, LR, LL", q)})
			} else {
				fields.Quadrant = q
			}
		}
	}

	if s, ferr := requiredString(payload, constants.FieldPlanGroupNumber); ferr != nil {
		errs = append(errs, *ferr)
	} else {
		fields.PlanGroupNumber = s
	}

	if s, ferr := requiredString(payload, constants.FieldSubscriberNumber); ferr != nil {
		errs = append(errs, *ferr)
	} else {
		fields.SubscriberNumber = s
	}

	if s, ferr := requiredString(payload, constants.FieldProviderNPI); ferr != nil {
		errs = append(errs, *ferr)
	} else if !npiExp.MatchString(s) {
		errs = append(errs, FieldError{constants.FieldProviderNPI, InvalidFormat,
			fmt.Sprintf("%q is not a 10-digit NPI", s)})
	} else {
		fields.ProviderNPI = s
	}

	amounts := []struct {
		field string
		dest  *decimal.Decimal
	}{
		{constants.FieldProviderFees, &fields.ProviderFees},
		{constants.FieldMemberCoinsurance, &fields.MemberCoinsurance},
		{constants.FieldMemberCopay, &fields.MemberCopay},
		{constants.FieldAllowedFees, &fields.AllowedFees},
	}
	for _, a := range amounts {
		if s, ferr := requiredString(payload, a.field); ferr != nil {
			errs = append(errs, *ferr)
		} else if amount, err := decimal.NewFromString(s); err != nil {
			errs = append(errs, FieldError{a.field, InvalidFormat,
				fmt.Sprintf("%q is not a number", s)})
		} else if amount.IsNegative() {
			errs = append(errs, FieldError{a.field, InvalidValue,
				fmt.Sprintf("%s must not be negative", a.field)})
		} else {
			*a.dest = amount
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &fields, nil
}

// requiredString fetches a field that must be present and non-empty after
// trimming.
func requiredString(payload models.CanonicalClaimPayload, field string) (string, *FieldError) {
	raw, present := payload[field]
	if !present || raw == nil {
		return "", &FieldError{field, MissingField, fmt.Sprintf("%s is required", field)}
	}
	s := strings.TrimSpace(scalarString(raw))
	if s == "" {
		return "", &FieldError{field, MissingField, fmt.Sprintf("%s is required", field)}
	}
	return s, nil
}

// scalarString renders a decoded JSON scalar as its string form. Numbers keep
// their exact wire representation (json.Number), so NPIs and amounts supplied
// as numbers are not mangled by a float round trip.
func scalarString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return fmt.Sprintf("%t", v)
	case float64:
		// Payloads built in code rather than decoded from JSON
		return decimal.NewFromFloat(v).String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
