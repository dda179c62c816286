package services

import (
	"github.com/fedemoisello/ADN-2025/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateReaderSvc defines read operations over the static rate table.
type ExchangeRateReaderSvc interface {
	// ListExchangeRates retrieves the full rate table, in reference order.
	ListExchangeRates() []domain.ExchangeRate
}

// CurrencyConverterSvc converts local-currency amounts into USD.
type CurrencyConverterSvc interface {
	// ToUSD converts amount from currencyCode into USD.
	// USD amounts pass through unchanged, zero amounts short-circuit to zero,
	// and unknown currencies degrade to a 1.0 rate.
	ToUSD(amount decimal.Decimal, currencyCode string) decimal.Decimal
}

// ExchangeRateSvcFacade combines all exchange-rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	CurrencyConverterSvc
}
