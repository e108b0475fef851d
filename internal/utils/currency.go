package utils

import (
	"fmt"
	"strings"
)

// currencyExponents maps supported ISO 4217 codes to their minor-unit
// exponent. Amounts are carried everywhere as integers in minor units.
var currencyExponents = map[string]int{
	"usd": 2,
	"eur": 2,
	"gbp": 2,
	"kes": 2,
	"tzs": 2,
	"ugx": 0,
	"ngn": 2,
	"zar": 2,
}

// NormalizeCurrency lowercases a currency code
func NormalizeCurrency(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// IsSupportedCurrency reports whether the code is a recognized ISO 4217 code
func IsSupportedCurrency(code string) bool {
	_, ok := currencyExponents[NormalizeCurrency(code)]
	return ok
}

// MinorToDecimal formats an integer minor-unit amount as a decimal string in
// major units, e.g. 10000 usd -> "100.00", 1500 ugx -> "1500".
func MinorToDecimal(amount int64, code string) string {
	exp, ok := currencyExponents[NormalizeCurrency(code)]
	if !ok || exp == 0 {
		return fmt.Sprintf("%d", amount)
	}

	divisor := int64(1)
	for i := 0; i < exp; i++ {
		divisor *= 10
	}

	return fmt.Sprintf("%d.%0*d", amount/divisor, exp, amount%divisor)
}

// MinorToMajorUnits converts a minor-unit amount to whole major units,
// rounding down. The STK push API only accepts whole major-unit amounts.
func MinorToMajorUnits(amount int64, code string) int64 {
	exp, ok := currencyExponents[NormalizeCurrency(code)]
	if !ok || exp == 0 {
		return amount
	}

	divisor := int64(1)
	for i := 0; i < exp; i++ {
		divisor *= 10
	}

	return amount / divisor
}
