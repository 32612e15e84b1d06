package cashier

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a decimal the way the gateway expects amounts:
// plain decimal string, no exponent, no currency formatting.
func FormatAmount(d decimal.Decimal) string {
	return d.String()
}

// checkAmountMatchesItems verifies that amount equals the sum of
// price*quantity over items. The gateway rejects orders where they
// disagree, so the mismatch is caught client-side at build time.
// Parse failures are reported as field errors; the comparison is skipped
// until every value parses.
func checkAmountMatchesItems(ve *ValidationError, amount string, items []Item) {
	if amount == "" || len(items) == 0 {
		return
	}

	want, err := decimal.NewFromString(amount)
	if err != nil {
		ve.Add("amount", "must be a decimal string")
		return
	}

	total := decimal.Zero
	for i, it := range items {
		price, err := decimal.NewFromString(it.Price)
		if err != nil {
			ve.Add(fmt.Sprintf("items[%d].price", i), "must be a decimal string")
			return
		}
		quantity, err := decimal.NewFromString(it.Quantity)
		if err != nil {
			ve.Add(fmt.Sprintf("items[%d].quantity", i), "must be a decimal string")
			return
		}
		total = total.Add(price.Mul(quantity))
	}

	if !want.Equal(total) {
		ve.Add("amount", fmt.Sprintf("must equal the total cost of items (%s)", total))
	}
}
