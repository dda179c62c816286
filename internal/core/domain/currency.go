package domain

import "github.com/shopspring/decimal"

// ExchangeRate maps one unit of a local currency to its USD value.
// Rates are reference data fixed for the lifetime of the process.
type ExchangeRate struct {
	CurrencyCode string          `json:"currencyCode"` // e.g. "ARS"
	USDPerUnit   decimal.Decimal `json:"usdPerUnit"`   // how many USD one local unit is worth
}

// SupportedCurrencies lists the agreement currencies the roster may use.
var SupportedCurrencies = []string{"ARS", "BRL", "USD", "COP", "MXN"}

// IsSupportedCurrency reports whether code is one of the enumerated agreement currencies.
func IsSupportedCurrency(code string) bool {
	for _, c := range SupportedCurrencies {
		if c == code {
			return true
		}
	}
	return false
}
