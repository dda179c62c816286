package utils

import "github.com/shopspring/decimal"

// RoundUSD rounds an amount to the 2-decimal precision used for every stored
// USD value. Half-up, matching the converter contract.
func RoundUSD(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// FormatPercent formats a percentage with the single decimal place the
// profitability view displays.
// Example: 90.56 returns "90.6"; 30 returns "30.0"
func FormatPercent(percent decimal.Decimal) string {
	return percent.StringFixed(1)
}
