package dto

import (
	"github.com/fedemoisello/ADN-2025/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateResponse defines the structure for API responses containing one rate table entry.
type ExchangeRateResponse struct {
	CurrencyCode string          `json:"currencyCode"`
	USDPerUnit   decimal.Decimal `json:"usdPerUnit"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		CurrencyCode: rate.CurrencyCode,
		USDPerUnit:   rate.USDPerUnit,
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to a slice of ExchangeRateResponse DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i, rate := range rates {
		responses[i] = ToExchangeRateResponse(rate)
	}
	return responses
}
