package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// CountryCode is the international prefix applied to normalized numbers
const CountryCode = "254"

// msisdnPattern matches a subscriber number after country code and leading
// zero stripping: mobile ranges start with 7 or 1 followed by eight digits.
var msisdnPattern = regexp.MustCompile(`^(7|1)\d{8}$`)

// NormalizeMSISDN validates a phone number and normalizes it to the
// canonical international form 254XXXXXXXXX. Accepted inputs are local
// ("712345678"), local with leading zero ("0712345678"), and already
// international ("254712345678"), with optional spaces, dashes, or a plus.
func NormalizeMSISDN(msisdn string) (string, error) {
	// Clean the input by removing separators
	stripped := strings.ReplaceAll(msisdn, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "+", "")

	// Remove country code or leading zero if present
	if strings.HasPrefix(stripped, CountryCode) {
		stripped = stripped[len(CountryCode):]
	} else if strings.HasPrefix(stripped, "0") {
		stripped = stripped[1:]
	}

	if !msisdnPattern.MatchString(stripped) {
		return "", fmt.Errorf("invalid MSISDN format: %q", msisdn)
	}

	return CountryCode + stripped, nil
}
