// Package format renders prices and counts for display.
package format

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	lakh  = 100_000
	crore = 10_000_000
)

var printer = message.NewPrinter(language.English)

// Price abbreviates a listing price to crores or lakhs with two decimals.
// Listing prices are always shown abbreviated, even below one lakh.
func Price(amount int64) string {
	if amount >= crore {
		return fmt.Sprintf("%.2f Cr", float64(amount)/crore)
	}
	return fmt.Sprintf("%.2f L", float64(amount)/lakh)
}

// Listing prefixes Price with symbol.
func Listing(symbol string, amount int64) string {
	return symbol + Price(amount)
}

// Currency formats a computed amount such as a monthly payment. Amounts of a
// lakh or more are abbreviated; smaller amounts are rounded and grouped.
func Currency(symbol string, amount float64) string {
	switch {
	case amount >= crore:
		return fmt.Sprintf("%s%.2f Cr", symbol, amount/crore)
	case amount >= lakh:
		return fmt.Sprintf("%s%.2f L", symbol, amount/lakh)
	case amount < 0:
		return symbol + "0"
	default:
		return symbol + printer.Sprintf("%d", int64(amount+0.5))
	}
}

// Plural picks singular when n == 1.
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// Count renders "n word" with the word pluralised as needed.
func Count(n int, singular, plural string) string {
	return fmt.Sprintf("%d %s", n, Plural(n, singular, plural))
}
