package advisor

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ten = decimal.NewFromInt(10)

// savingsRate is the rough monthly interest saved per dollar no longer
// carried on a revolving balance.
var savingsRate = decimal.NewFromFloat(0.02)

// ceil10 rounds up to the nearest multiple of 10, so suggested payments
// read as round numbers.
func ceil10(d decimal.Decimal) decimal.Decimal {
	return d.Div(ten).Ceil().Mul(ten)
}

// clampZero floors negative amounts at zero.
func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// estSavings estimates monthly interest saved by retiring the given
// amount of balance, rounded to a whole dollar.
func estSavings(amount decimal.Decimal) float64 {
	return amount.Mul(savingsRate).Round(0).InexactFloat64()
}

// US-style digit grouping for dollar amounts embedded in action titles.
var usPrinter = message.NewPrinter(language.English)

func dollars(d decimal.Decimal) string {
	return usPrinter.Sprintf("$%d", d.IntPart())
}
