package model

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// grouping prints whole amounts with comma thousands separators.
var grouping = message.NewPrinter(language.English)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

// FormatMoney renders amount for display using the currency label. The label
// is cosmetic; no conversion ever happens.
//
//	FormatMoney(decimal.NewFromInt(2500), "USD") -> "$2,500"
//	FormatMoney(decimal.RequireFromString("12.5"), "CHF") -> "CHF 12.50"
func FormatMoney(amount decimal.Decimal, currency string) string {
	prefix := currencyPrefix(currency)

	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	places := int32(2)
	if rounded.Equal(rounded.Truncate(0)) {
		places = 0
	}

	_, frac, _ := strings.Cut(rounded.StringFixed(places), ".")

	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(prefix)
	b.WriteString(grouping.Sprintf("%d", rounded.IntPart()))
	if frac != "" {
		b.WriteString(".")
		b.WriteString(frac)
	}
	return b.String()
}

func currencyPrefix(currency string) string {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == "" {
		return "$"
	}
	if symbol, ok := currencySymbols[code]; ok {
		return symbol
	}
	return code + " "
}
