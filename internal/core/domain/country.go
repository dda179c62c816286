package domain

// SupportedCountries lists the countries where ADN workshops can be scheduled.
// Names are kept in the same form the roster source uses.
var SupportedCountries = []string{"Argentina", "Brasil", "Chile", "Uruguay", "Colombia", "México"}

// IsSupportedCountry reports whether country is one of the enumerated delivery countries.
func IsSupportedCountry(country string) bool {
	for _, c := range SupportedCountries {
		if c == country {
			return true
		}
	}
	return false
}
