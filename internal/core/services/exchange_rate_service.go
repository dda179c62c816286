package services

import (
	"log/slog"

	"github.com/fedemoisello/ADN-2025/internal/core/domain"
	"github.com/fedemoisello/ADN-2025/internal/utils"
	"github.com/shopspring/decimal"
)

const usdCurrencyCode = "USD"

// defaultExchangeRates is the static reference table: how many USD one unit
// of each agreement currency is worth.
var defaultExchangeRates = []domain.ExchangeRate{
	{CurrencyCode: "ARS", USDPerUnit: decimal.RequireFromString("0.00110")},
	{CurrencyCode: "BRL", USDPerUnit: decimal.RequireFromString("0.20000")},
	{CurrencyCode: "USD", USDPerUnit: decimal.RequireFromString("1.00000")},
	{CurrencyCode: "COP", USDPerUnit: decimal.RequireFromString("0.00025")},
	{CurrencyCode: "MXN", USDPerUnit: decimal.RequireFromString("0.05882")},
}

// ExchangeRateService provides currency conversion over a static rate table.
type ExchangeRateService struct {
	rates  []domain.ExchangeRate
	byCode map[string]decimal.Decimal
}

// NewExchangeRateService creates an ExchangeRateService over the default rate table.
func NewExchangeRateService() *ExchangeRateService {
	return NewExchangeRateServiceWithRates(defaultExchangeRates)
}

// NewExchangeRateServiceWithRates creates an ExchangeRateService over a custom
// rate table. Exactly one entry per currency code is expected.
func NewExchangeRateServiceWithRates(rates []domain.ExchangeRate) *ExchangeRateService {
	byCode := make(map[string]decimal.Decimal, len(rates))
	for _, r := range rates {
		byCode[r.CurrencyCode] = r.USDPerUnit
	}
	return &ExchangeRateService{
		rates:  rates,
		byCode: byCode,
	}
}

// ToUSD converts an amount in the given currency to USD.
// USD amounts pass through unchanged (no lookup, no rounding) and zero
// amounts short-circuit to zero so that true zero rates never pick up
// rounding artifacts. Unknown currency codes degrade to a 1.0 rate; this is
// documented behavior, kept observable through the warning log.
func (s *ExchangeRateService) ToUSD(amount decimal.Decimal, currencyCode string) decimal.Decimal {
	if currencyCode == usdCurrencyCode {
		return amount
	}
	if amount.IsZero() {
		return decimal.Zero
	}
	rate, ok := s.byCode[currencyCode]
	if !ok {
		slog.Warn("unknown currency code, falling back to 1.0 rate", slog.String("currency_code", currencyCode))
		rate = decimal.NewFromInt(1)
	}
	return utils.RoundUSD(amount.Mul(rate))
}

// ListExchangeRates retrieves the full rate table, in reference order.
func (s *ExchangeRateService) ListExchangeRates() []domain.ExchangeRate {
	out := make([]domain.ExchangeRate, len(s.rates))
	copy(out, s.rates)
	return out
}
