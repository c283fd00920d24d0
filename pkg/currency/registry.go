// Package currency provides the read-only currency reference data shared by
// all calculators, plus the interactive selector used to pick a currency.
package currency

import (
	"errors"
	"fmt"
	"strings"
)

// Currency describes a single ISO 4217 currency.
type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// ErrNotFound is returned when a currency code has no registry entry.
var ErrNotFound = errors.New("currency not found")

// Currencies is the full ISO 4217 registry, sorted by code. It is initialized
// once and never mutated; all calculators share it.
var Currencies = []Currency{
	{Code: "AED", Name: "United Arab Emirates Dirham", Symbol: "د.إ"},
	{Code: "AFN", Name: "Afghan Afghani", Symbol: "AFN"},
	{Code: "ALL", Name: "Albanian Lek", Symbol: "L"},
	{Code: "AMD", Name: "Armenian Dram", Symbol: "֏"},
	{Code: "ANG", Name: "Netherlands Antillean Guilder", Symbol: "ANG"},
	{Code: "AOA", Name: "Angolan Kwanza", Symbol: "AOA"},
	{Code: "ARS", Name: "Argentine Peso", Symbol: "$"},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "A$"},
	{Code: "AWG", Name: "Aruban Florin", Symbol: "AWG"},
	{Code: "AZN", Name: "Azerbaijani Manat", Symbol: "₼"},
	{Code: "BAM", Name: "Bosnia-Herzegovina Convertible Mark", Symbol: "KM"},
	{Code: "BBD", Name: "Barbadian Dollar", Symbol: "$"},
	{Code: "BDT", Name: "Bangladeshi Taka", Symbol: "৳"},
	{Code: "BGN", Name: "Bulgarian Lev", Symbol: "лв"},
	{Code: "BHD", Name: "Bahraini Dinar", Symbol: ".د.ب"},
	{Code: "BIF", Name: "Burundian Franc", Symbol: "FBu"},
	{Code: "BMD", Name: "Bermudian Dollar", Symbol: "$"},
	{Code: "BND", Name: "Brunei Dollar", Symbol: "$"},
	{Code: "BOB", Name: "Bolivian Boliviano", Symbol: "Bs."},
	{Code: "BRL", Name: "Brazilian Real", Symbol: "R$"},
	{Code: "BSD", Name: "Bahamian Dollar", Symbol: "$"},
	{Code: "BTN", Name: "Bhutanese Ngultrum", Symbol: "Nu."},
	{Code: "BWP", Name: "Botswana Pula", Symbol: "P"},
	{Code: "BYN", Name: "Belarusian Ruble", Symbol: "Br"},
	{Code: "BZD", Name: "Belize Dollar", Symbol: "$"},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$"},
	{Code: "CDF", Name: "Congolese Franc", Symbol: "FC"},
	{Code: "CHF", Name: "Swiss Franc", Symbol: "CHF"},
	{Code: "CLP", Name: "Chilean Peso", Symbol: "$"},
	{Code: "CNY", Name: "Chinese Yuan", Symbol: "¥"},
	{Code: "COP", Name: "Colombian Peso", Symbol: "$"},
	{Code: "CRC", Name: "Costa Rican Colón", Symbol: "₡"},
	{Code: "CUP", Name: "Cuban Peso", Symbol: "$"},
	{Code: "CVE", Name: "Cape Verdean Escudo", Symbol: "CV$"},
	{Code: "CZK", Name: "Czech Koruna", Symbol: "Kč"},
	{Code: "DJF", Name: "Djiboutian Franc", Symbol: "Fdj"},
	{Code: "DKK", Name: "Danish Krone", Symbol: "kr"},
	{Code: "DOP", Name: "Dominican Peso", Symbol: "RD$"},
	{Code: "DZD", Name: "Algerian Dinar", Symbol: "د.ج"},
	{Code: "EGP", Name: "Egyptian Pound", Symbol: "£"},
	{Code: "ERN", Name: "Eritrean Nakfa", Symbol: "Nfk"},
	{Code: "ETB", Name: "Ethiopian Birr", Symbol: "Br"},
	{Code: "EUR", Name: "Euro", Symbol: "€"},
	{Code: "FJD", Name: "Fijian Dollar", Symbol: "$"},
	{Code: "FKP", Name: "Falkland Islands Pound", Symbol: "£"},
	{Code: "GBP", Name: "British Pound Sterling", Symbol: "£"},
	{Code: "GEL", Name: "Georgian Lari", Symbol: "₾"},
	{Code: "GGP", Name: "Guernsey Pound", Symbol: "£"},
	{Code: "GHS", Name: "Ghanaian Cedi", Symbol: "₵"},
	{Code: "GIP", Name: "Gibraltar Pound", Symbol: "£"},
	{Code: "GMD", Name: "Gambian Dalasi", Symbol: "D"},
	{Code: "GNF", Name: "Guinean Franc", Symbol: "FG"},
	{Code: "GTQ", Name: "Guatemalan Quetzal", Symbol: "Q"},
	{Code: "GYD", Name: "Guyanese Dollar", Symbol: "$"},
	{Code: "HKD", Name: "Hong Kong Dollar", Symbol: "HK$"},
	{Code: "HNL", Name: "Honduran Lempira", Symbol: "L"},
	{Code: "HRK", Name: "Croatian Kuna", Symbol: "kn"},
	{Code: "HTG", Name: "Haitian Gourde", Symbol: "G"},
	{Code: "HUF", Name: "Hungarian Forint", Symbol: "Ft"},
	{Code: "IDR", Name: "Indonesian Rupiah", Symbol: "Rp"},
	{Code: "ILS", Name: "Israeli New Shekel", Symbol: "₪"},
	{Code: "IMP", Name: "Manx Pound", Symbol: "£"},
	{Code: "INR", Name: "Indian Rupee", Symbol: "₹"},
	{Code: "IQD", Name: "Iraqi Dinar", Symbol: "ع.د"},
	{Code: "IRR", Name: "Iranian Rial", Symbol: "﷼"},
	{Code: "ISK", Name: "Icelandic Króna", Symbol: "kr"},
	{Code: "JEP", Name: "Jersey Pound", Symbol: "£"},
	{Code: "JMD", Name: "Jamaican Dollar", Symbol: "J$"},
	{Code: "JOD", Name: "Jordanian Dinar", Symbol: "JD"},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥"},
	{Code: "KES", Name: "Kenyan Shilling", Symbol: "KSh"},
	{Code: "KGS", Name: "Kyrgystani Som", Symbol: "сом"},
	{Code: "KHR", Name: "Cambodian Riel", Symbol: "៛"},
	{Code: "KMF", Name: "Comorian Franc", Symbol: "CF"},
	{Code: "KPW", Name: "North Korean Won", Symbol: "₩"},
	{Code: "KRW", Name: "South Korean Won", Symbol: "₩"},
	{Code: "KWD", Name: "Kuwaiti Dinar", Symbol: "د.ك"},
	{Code: "KYD", Name: "Cayman Islands Dollar", Symbol: "$"},
	{Code: "KZT", Name: "Kazakhstani Tenge", Symbol: "₸"},
	{Code: "LAK", Name: "Lao Kip", Symbol: "₭"},
	{Code: "LBP", Name: "Lebanese Pound", Symbol: "ل.ل"},
	{Code: "LKR", Name: "Sri Lankan Rupee", Symbol: "Rs"},
	{Code: "LRD", Name: "Liberian Dollar", Symbol: "$"},
	{Code: "LSL", Name: "Lesotho Loti", Symbol: "L"},
	{Code: "LYD", Name: "Libyan Dinar", Symbol: "ل.د"},
	{Code: "MAD", Name: "Moroccan Dirham", Symbol: "د.م."},
	{Code: "MDL", Name: "Moldovan Leu", Symbol: "L"},
	{Code: "MGA", Name: "Malagasy Ariary", Symbol: "Ar"},
	{Code: "MKD", Name: "Macedonian Denar", Symbol: "ден"},
	{Code: "MMK", Name: "Myanma Kyat", Symbol: "Ks"},
	{Code: "MNT", Name: "Mongolian Tögrög", Symbol: "₮"},
	{Code: "MOP", Name: "Macanese Pataca", Symbol: "MOP$"},
	{Code: "MRU", Name: "Mauritanian Ouguiya", Symbol: "UM"},
	{Code: "MUR", Name: "Mauritian Rupee", Symbol: "₨"},
	{Code: "MVR", Name: "Maldivian Rufiyaa", Symbol: "ރ."},
	{Code: "MWK", Name: "Malawian Kwacha", Symbol: "MK"},
	{Code: "MXN", Name: "Mexican Peso", Symbol: "$"},
	{Code: "MYR", Name: "Malaysian Ringgit", Symbol: "RM"},
	{Code: "MZN", Name: "Mozambican Metical", Symbol: "MT"},
	{Code: "NAD", Name: "Namibian Dollar", Symbol: "$"},
	{Code: "NGN", Name: "Nigerian Naira", Symbol: "₦"},
	{Code: "NIO", Name: "Nicaraguan Córdoba", Symbol: "C$"},
	{Code: "NOK", Name: "Norwegian Krone", Symbol: "kr"},
	{Code: "NPR", Name: "Nepalese Rupee", Symbol: "₨"},
	{Code: "NZD", Name: "New Zealand Dollar", Symbol: "NZ$"},
	{Code: "OMR", Name: "Omani Rial", Symbol: "﷼"},
	{Code: "PAB", Name: "Panamanian Balboa", Symbol: "B/."},
	{Code: "PEN", Name: "Peruvian Sol", Symbol: "S/."},
	{Code: "PGK", Name: "Papua New Guinean Kina", Symbol: "K"},
	{Code: "PHP", Name: "Philippine Peso", Symbol: "₱"},
	{Code: "PKR", Name: "Pakistani Rupee", Symbol: "₨"},
	{Code: "PLN", Name: "Polish Złoty", Symbol: "zł"},
	{Code: "PYG", Name: "Paraguayan Guaraní", Symbol: "₲"},
	{Code: "QAR", Name: "Qatari Rial", Symbol: "﷼"},
	{Code: "RON", Name: "Romanian Leu", Symbol: "lei"},
	{Code: "RSD", Name: "Serbian Dinar", Symbol: "дин"},
	{Code: "RUB", Name: "Russian Ruble", Symbol: "₽"},
	{Code: "RWF", Name: "Rwandan Franc", Symbol: "FRw"},
	{Code: "SAR", Name: "Saudi Riyal", Symbol: "﷼"},
	{Code: "SBD", Name: "Solomon Islands Dollar", Symbol: "$"},
	{Code: "SCR", Name: "Seychellois Rupee", Symbol: "₨"},
	{Code: "SDG", Name: "Sudanese Pound", Symbol: "£"},
	{Code: "SEK", Name: "Swedish Krona", Symbol: "kr"},
	{Code: "SGD", Name: "Singapore Dollar", Symbol: "S$"},
	{Code: "SHP", Name: "Saint Helena Pound", Symbol: "£"},
	{Code: "SLL", Name: "Sierra Leonean Leone", Symbol: "Le"},
	{Code: "SOS", Name: "Somali Shilling", Symbol: "S"},
	{Code: "SRD", Name: "Surinamese Dollar", Symbol: "$"},
	{Code: "SSP", Name: "South Sudanese Pound", Symbol: "£"},
	{Code: "STN", Name: "São Tomé and Príncipe Dobra", Symbol: "Db"},
	{Code: "SYP", Name: "Syrian Pound", Symbol: "£"},
	{Code: "SZL", Name: "Swazi Lilangeni", Symbol: "E"},
	{Code: "THB", Name: "Thai Baht", Symbol: "฿"},
	{Code: "TJS", Name: "Tajikistani Somoni", Symbol: "ЅМ"},
	{Code: "TMT", Name: "Turkmenistan Manat", Symbol: "m"},
	{Code: "TND", Name: "Tunisian Dinar", Symbol: "د.ت"},
	{Code: "TOP", Name: "Tongan Paʻanga", Symbol: "T$"},
	{Code: "TRY", Name: "Turkish Lira", Symbol: "₺"},
	{Code: "TTD", Name: "Trinidad and Tobago Dollar", Symbol: "TT$"},
	{Code: "TVD", Name: "Tuvalu Dollar", Symbol: "$"},
	{Code: "TWD", Name: "New Taiwan Dollar", Symbol: "NT$"},
	{Code: "TZS", Name: "Tanzanian Shilling", Symbol: "TSh"},
	{Code: "UAH", Name: "Ukrainian Hryvnia", Symbol: "₴"},
	{Code: "UGX", Name: "Ugandan Shilling", Symbol: "USh"},
	{Code: "USD", Name: "United States Dollar", Symbol: "$"},
	{Code: "UYU", Name: "Uruguayan Peso", Symbol: "$U"},
	{Code: "UZS", Name: "Uzbekistan Som", Symbol: "soʻm"},
	{Code: "VES", Name: "Venezuelan Bolívar Soberano", Symbol: "Bs.S"},
	{Code: "VND", Name: "Vietnamese Dong", Symbol: "₫"},
	{Code: "VUV", Name: "Vanuatu Vatu", Symbol: "VT"},
	{Code: "WST", Name: "Samoan Tala", Symbol: "WS$"},
	{Code: "XAF", Name: "CFA Franc BEAC", Symbol: "FCFA"},
	{Code: "XCD", Name: "East Caribbean Dollar", Symbol: "EC$"},
	{Code: "XOF", Name: "CFA Franc BCEAO", Symbol: "CFA"},
	{Code: "XPF", Name: "CFP Franc", Symbol: "₣"},
	{Code: "YER", Name: "Yemeni Rial", Symbol: "﷼"},
	{Code: "ZAR", Name: "South African Rand", Symbol: "R"},
	{Code: "ZMW", Name: "Zambian Kwacha", Symbol: "ZK"},
	{Code: "ZWL", Name: "Zimbabwean Dollar", Symbol: "Z$"},
}

// Default returns the registry's first entry, used when no explicit selection
// has been made.
func Default() Currency {
	return Currencies[0]
}

// Lookup finds a currency by its ISO code. The registry is small enough that
// a linear scan is fine.
func Lookup(code string) (Currency, error) {
	return lookupIn(Currencies, code)
}

func lookupIn(list []Currency, code string) (Currency, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	for _, c := range list {
		if c.Code == normalized {
			return c, nil
		}
	}
	return Currency{}, fmt.Errorf("%w: %s", ErrNotFound, code)
}

// Filter returns the currencies whose code or name contains the query,
// case-insensitively. An empty or whitespace query returns the full list.
func Filter(list []Currency, query string) []Currency {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return list
	}
	lowered := strings.ToLower(trimmed)
	var matches []Currency
	for _, c := range list {
		if strings.Contains(strings.ToLower(c.Code), lowered) ||
			strings.Contains(strings.ToLower(c.Name), lowered) {
			matches = append(matches, c)
		}
	}
	return matches
}
