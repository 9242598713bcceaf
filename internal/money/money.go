// Package money formats whole-unit currency amounts for display.
package money

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultCode and DefaultLocale match the scheme's home market.
const (
	DefaultCode   = "INR"
	DefaultLocale = "en-IN"
)

// symbolOverrides pins symbols where the x/text narrow symbol is not what users expect.
var symbolOverrides = map[string]string{
	"INR": "₹",
}

// homeLocale is used when no locale is configured or the configured one does not parse.
var homeLocale = map[string]language.Tag{
	"INR": language.MustParse("en-IN"),
	"USD": language.AmericanEnglish,
	"GBP": language.BritishEnglish,
	"EUR": language.German,
	"JPY": language.Japanese,
}

// Currency renders amounts with a prefixed symbol and locale grouping.
type Currency struct {
	Code    string
	Tag     language.Tag
	symbol  string
	printer *message.Printer
}

// New returns the formatter for an ISO 4217 code and a BCP 47 locale.
// Unknown codes render with the code itself as the symbol.
func New(code, locale string) Currency {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = DefaultCode
	}

	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil || locale == "" {
		if home, ok := homeLocale[code]; ok {
			tag = home
		} else {
			tag = language.English
		}
	}

	c := Currency{
		Code:    code,
		Tag:     tag,
		printer: message.NewPrinter(tag),
	}

	switch unit, err := currency.ParseISO(code); {
	case symbolOverrides[code] != "":
		c.symbol = symbolOverrides[code]
	case err != nil:
		c.symbol = code
	default:
		c.symbol = c.printer.Sprint(currency.NarrowSymbol(unit))
	}
	return c
}

// Default returns the INR / en-IN formatter.
func Default() Currency {
	return New(DefaultCode, DefaultLocale)
}

// Symbol returns the display symbol.
func (c Currency) Symbol() string {
	return c.symbol
}

// Number groups n by the locale's rules without a symbol.
func (c Currency) Number(n int64) string {
	return c.printer.Sprint(number.Decimal(n, number.MaxFractionDigits(0)))
}

// Format renders amount as symbol + grouped digits, e.g. "₹57,400".
func (c Currency) Format(amount int64) string {
	if amount >= 0 {
		return c.symbol + c.Number(amount)
	}
	// Negate in uint64 so math.MinInt64 has a representable magnitude.
	magnitude := uint64(-(amount + 1)) + 1
	return "-" + c.symbol + c.printer.Sprint(number.Decimal(magnitude, number.MaxFractionDigits(0)))
}

// FormatCompact renders chart tick values in thousands, e.g. "₹15k".
func (c Currency) FormatCompact(v float64) string {
	switch {
	case v < 0:
		return "-" + c.FormatCompact(-v)
	case v >= 1e3:
		return fmt.Sprintf("%s%.0fk", c.symbol, math.Round(v/1e3))
	default:
		return fmt.Sprintf("%s%.0f", c.symbol, v)
	}
}
