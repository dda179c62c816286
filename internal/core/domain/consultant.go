package domain

import "github.com/shopspring/decimal"

// Consultant is one row of the delivery roster.
// Local day rates are denominated in AgreementCurrency; the USD fields are
// derived through the exchange-rate table and recomputed on every load or
// edit commit, never edited directly.
type Consultant struct {
	ConsultantID      int             `json:"consultantID"`
	Name              string          `json:"name"`
	HomeCountry       string          `json:"homeCountry"`
	DeliveryCountries []string        `json:"deliveryCountries"`
	AgreementCurrency string          `json:"agreementCurrency"` // e.g. "BRL"
	SoloDayRateLocal  decimal.Decimal `json:"soloDayRateLocal"`
	PairDayRateLocal  decimal.Decimal `json:"pairDayRateLocal"`
	SoloDayRateUSD    decimal.Decimal `json:"soloDayRateUSD"`
	PairDayRateUSD    decimal.Decimal `json:"pairDayRateUSD"`
}

// DeliversTo reports whether the consultant is enabled to run workshops in country.
func (c Consultant) DeliversTo(country string) bool {
	for _, dc := range c.DeliveryCountries {
		if dc == country {
			return true
		}
	}
	return false
}

// DisplayName returns the consultant's name, annotated with travel icons when
// the engagement country differs from their home country. Presentation only;
// it never affects cost or revenue math.
func (c Consultant) DisplayName(country string) string {
	if c.HomeCountry != country {
		return c.Name + " ✈️ 🏨"
	}
	return c.Name
}
