package shared

import (
	"fmt"
	"math"
	"strings"
)

// FormatMoney formats a decimal amount for display, e.g. BRL 1234.5 -> "R$ 1.234,50".
func FormatMoney(currency string, amount float64) string {
	switch currency {
	case "BRL":
		return "R$ " + groupDecimal(amount, ".", ",")
	case "EUR":
		return "€" + groupDecimal(amount, ",", ".")
	case "USD":
		return "$" + groupDecimal(amount, ",", ".")
	default:
		return fmt.Sprintf("%.2f %s", amount, currency)
	}
}

func groupDecimal(amount float64, thousands, decimal string) string {
	neg := amount < 0
	s := fmt.Sprintf("%.2f", math.Abs(amount))
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(thousands)
		}
		b.WriteRune(r)
	}
	out := b.String() + decimal + frac
	if neg {
		return "-" + out
	}
	return out
}
