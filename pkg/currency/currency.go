// Package currency defines the ISO 4217 currency codes the conversion
// resolver recognizes. Rates are always fetched live; this table only
// gates which three-letter codes are treated as currencies.
package currency

import "strings"

var codes = map[string]string{
	"aed": "UAE Dirham",
	"ars": "Argentine Peso",
	"aud": "Australian Dollar",
	"bgn": "Bulgarian Lev",
	"brl": "Brazilian Real",
	"cad": "Canadian Dollar",
	"chf": "Swiss Franc",
	"clp": "Chilean Peso",
	"cny": "Chinese Yuan",
	"cop": "Colombian Peso",
	"czk": "Czech Koruna",
	"dkk": "Danish Krone",
	"egp": "Egyptian Pound",
	"eur": "Euro",
	"gbp": "Pound Sterling",
	"hkd": "Hong Kong Dollar",
	"huf": "Hungarian Forint",
	"idr": "Indonesian Rupiah",
	"ils": "Israeli New Shekel",
	"inr": "Indian Rupee",
	"isk": "Icelandic Krona",
	"jpy": "Japanese Yen",
	"krw": "South Korean Won",
	"kwd": "Kuwaiti Dinar",
	"mad": "Moroccan Dirham",
	"mxn": "Mexican Peso",
	"myr": "Malaysian Ringgit",
	"ngn": "Nigerian Naira",
	"nok": "Norwegian Krone",
	"nzd": "New Zealand Dollar",
	"pen": "Peruvian Sol",
	"php": "Philippine Peso",
	"pkr": "Pakistani Rupee",
	"pln": "Polish Zloty",
	"qar": "Qatari Riyal",
	"ron": "Romanian Leu",
	"rsd": "Serbian Dinar",
	"rub": "Russian Ruble",
	"sar": "Saudi Riyal",
	"sek": "Swedish Krona",
	"sgd": "Singapore Dollar",
	"thb": "Thai Baht",
	"try": "Turkish Lira",
	"twd": "New Taiwan Dollar",
	"uah": "Ukrainian Hryvnia",
	"usd": "US Dollar",
	"uyu": "Uruguayan Peso",
	"vnd": "Vietnamese Dong",
	"zar": "South African Rand",
}

// IsCode reports whether s is a known ISO 4217 code, case-insensitively.
func IsCode(s string) bool {
	_, ok := codes[strings.ToLower(s)]
	return ok
}

// Name returns the descriptive name for a code.
func Name(code string) (string, bool) {
	name, ok := codes[strings.ToLower(code)]
	return name, ok
}

// Codes returns all known codes in upper case.
func Codes() []string {
	out := make([]string, 0, len(codes))
	for code := range codes {
		out = append(out, strings.ToUpper(code))
	}
	return out
}
