package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Claim is the persisted, fully validated claim record. Claims are created
// exactly once from a validated payload and never updated in place.
type Claim struct {
	ID                 uint            `json:"id"`
	ServiceDate        Date            `json:"service_date"`
	SubmittedProcedure string          `json:"submitted_procedure"`
	Quadrant           string          `json:"quadrant,omitempty"`
	PlanGroupNumber    string          `json:"plan_group_number"`
	SubscriberNumber   string          `json:"subscriber_number"`
	ProviderNPI        string          `json:"provider_npi"`
	ProviderFees       decimal.Decimal `json:"provider_fees"`
	MemberCoinsurance  decimal.Decimal `json:"member_coinsurance"`
	MemberCopay        decimal.Decimal `json:"member_copay"`
	AllowedFees        decimal.Decimal `json:"allowed_fees"`
	NetFee             decimal.Decimal `json:"net_fee"`
}

// ProviderNetFee is one row of the top-provider ranking: a provider NPI and
// the summed net fee across all of that provider's claims. It is computed on
// every request, never persisted.
type ProviderNetFee struct {
	ProviderNPI string          `json:"provider_npi"`
	TotalNetFee decimal.Decimal `json:"total_net_fee"`
}

// RawField is a single key/value entry of a submitted claim payload, with the
// key exactly as supplied by the caller.
type RawField struct {
	Key   string
	Value interface{}
}

// RawClaimPayload is one claim as submitted. Field order matches the original
// JSON object so that duplicate aliases can be resolved last-wins
// deterministically; a Go map would randomize that order.
type RawClaimPayload struct {
	Fields []RawField
}

func (p *RawClaimPayload) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("claim payload must be a JSON object")
	}

	p.Fields = nil
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("claim payload has a non-string key")
		}

		var value interface{}
		if err := dec.Decode(&value); err != nil {
			return err
		}
		p.Fields = append(p.Fields, RawField{Key: key, Value: value})
	}

	// Consume the closing brace
	_, err = dec.Token()
	return err
}

// CanonicalClaimPayload maps canonical field names to raw, not yet
// type-checked values. Unknown keys never appear here.
type CanonicalClaimPayload map[string]interface{}

// DateLayout is the wire format for claim service dates.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time component. It marshals to and from
// ISO YYYY-MM-DD and maps onto a SQL date column.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v.UTC()
		return nil
	case string:
		t, err := time.Parse(DateLayout, v)
		if err != nil {
			return err
		}
		d.Time = t
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

func (d Date) String() string {
	return d.Format(DateLayout)
}
