package domain

import "strings"

// SuffixToRegion maps ticker suffixes to region labels.
var SuffixToRegion = map[string]string{
	".T":   "Japan",
	".SI":  "Singapore",
	".BK":  "Thailand",
	".KL":  "Malaysia",
	".JK":  "Indonesia",
	".PS":  "Philippines",
	".HK":  "Hong Kong",
	".KS":  "South Korea",
	".KQ":  "South Korea",
	".TW":  "Taiwan",
	".TWO": "Taiwan",
	".SS":  "China",
	".SZ":  "China",
	".L":   "United Kingdom",
	".DE":  "Germany",
	".PA":  "France",
	".TO":  "Canada",
	".AX":  "Australia",
	".SA":  "Brazil",
	".NS":  "India",
	".BO":  "India",
}

// SuffixToCurrency maps ticker suffixes to trading currencies.
var SuffixToCurrency = map[string]string{
	".T":   "JPY",
	".SI":  "SGD",
	".BK":  "THB",
	".KL":  "MYR",
	".JK":  "IDR",
	".PS":  "PHP",
	".HK":  "HKD",
	".KS":  "KRW",
	".KQ":  "KRW",
	".TW":  "TWD",
	".TWO": "TWD",
	".SS":  "CNY",
	".SZ":  "CNY",
	".L":   "GBP",
	".DE":  "EUR",
	".PA":  "EUR",
	".TO":  "CAD",
	".AX":  "AUD",
	".SA":  "BRL",
	".NS":  "INR",
	".BO":  "INR",
}

// IsCash reports whether the symbol is a cash position (e.g. "JPY.CASH").
func IsCash(symbol string) bool {
	return strings.HasSuffix(strings.ToUpper(symbol), ".CASH")
}

// CashCurrency extracts the currency from a cash symbol ("JPY.CASH" -> "JPY").
func CashCurrency(symbol string) string {
	return strings.TrimSuffix(strings.ToUpper(symbol), ".CASH")
}

// ResolvedCurrency returns the holding's trading currency. An explicit
// currency field wins; otherwise the ticker suffix decides, and bare
// symbols default to USD.
func (h Holding) ResolvedCurrency() string {
	if h.Currency != "" {
		return h.Currency
	}
	if IsCash(h.Symbol) {
		return CashCurrency(h.Symbol)
	}
	upper := strings.ToUpper(h.Symbol)
	for suffix, currency := range SuffixToCurrency {
		if strings.HasSuffix(upper, suffix) {
			return currency
		}
	}
	return "USD"
}

// ResolvedRegion returns the holding's region. Explicit country/region
// fields win; otherwise the ticker suffix decides, and bare symbols
// default to US.
func (h Holding) ResolvedRegion() string {
	if h.Country != "" {
		return h.Country
	}
	if h.Region != "" {
		return h.Region
	}
	upper := strings.ToUpper(h.Symbol)
	for suffix, region := range SuffixToRegion {
		if strings.HasSuffix(upper, suffix) {
			return region
		}
	}
	return "US"
}
