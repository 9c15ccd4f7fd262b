package normalize

import (
	"strings"

	"github.com/nisavid/32health-assmt-claim-process/claims/models"
)

// Normalize maps a raw claim payload onto the canonical schema. Keys are
// resolved through the alias table; keys with no match are dropped silently.
// When the same canonical field is supplied through more than one alias, the
// later entry in the payload's original key order wins. Normalize never
// fails: an empty or fully unmatched payload normalizes to an empty canonical
// payload, which validation then rejects for its missing required fields.
func Normalize(raw models.RawClaimPayload) models.CanonicalClaimPayload {
	canonical := models.CanonicalClaimPayload{}
	for _, field := range raw.Fields {
		name, ok := CanonicalFieldName(field.Key)
		if !ok {
			continue
		}
		canonical[name] = normalizeValue(field.Value)
	}
	return canonical
}

// normalizeValue trims string values and strips any leading dollar signs so
// that human-entered amounts like " $100.00" coerce cleanly.
func normalizeValue(value interface{}) interface{} {
	s, ok := value.(string)
	if !ok {
		return value
	}
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "$")
	return s
}
