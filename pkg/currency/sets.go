package currency

// InvestmentSet is the short list offered on the SIP page. It is a deliberate
// UX subset distinct from the full registry, INR-first.
var InvestmentSet = []Currency{
	{Code: "INR", Name: "Indian Rupee", Symbol: "₹"},
	{Code: "USD", Name: "US Dollar", Symbol: "$"},
	{Code: "EUR", Name: "Euro", Symbol: "€"},
	{Code: "GBP", Name: "British Pound", Symbol: "£"},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "A$"},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$"},
	{Code: "SGD", Name: "Singapore Dollar", Symbol: "S$"},
	{Code: "AED", Name: "UAE Dirham", Symbol: "AED"},
}

// MortgageSet is the short list offered on the mortgage page, USD-first.
var MortgageSet = []Currency{
	{Code: "USD", Name: "US Dollar", Symbol: "$"},
	{Code: "INR", Name: "Indian Rupee", Symbol: "₹"},
	{Code: "EUR", Name: "Euro", Symbol: "€"},
	{Code: "GBP", Name: "British Pound", Symbol: "£"},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "A$"},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$"},
	{Code: "AED", Name: "UAE Dirham", Symbol: "AED"},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥"},
}

// Set names accepted by the HTTP listing endpoint.
const (
	SetFull       = "full"
	SetInvestment = "investment"
	SetMortgage   = "mortgage"
)

// BySet returns the named reference table, defaulting to the full registry.
func BySet(name string) []Currency {
	switch name {
	case SetInvestment:
		return InvestmentSet
	case SetMortgage:
		return MortgageSet
	default:
		return Currencies
	}
}
