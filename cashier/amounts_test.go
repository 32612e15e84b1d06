package cashier

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.NewFromFloat(10.50), "10.5"},
		{decimal.NewFromInt(3), "3"},
		{decimal.RequireFromString("0.07"), "0.07"},
	}
	for _, c := range cases {
		if got := FormatAmount(c.in); got != c.want {
			t.Fatalf("FormatAmount(%s): got %q want %q", c.in, got, c.want)
		}
	}
}

func TestCheckAmountMatchesItems(t *testing.T) {
	ve := &ValidationError{}
	checkAmountMatchesItems(ve, "6.00", []Item{
		{Price: "1.50", Quantity: "2"},
		{Price: "3.00", Quantity: "1"},
	})
	if ve.HasErrors() {
		t.Fatalf("matching totals must not error: %+v", ve.Fields)
	}

	ve = &ValidationError{}
	checkAmountMatchesItems(ve, "7.00", []Item{{Price: "1.50", Quantity: "2"}})
	if !ve.HasErrors() {
		t.Fatalf("mismatching totals must error")
	}

	// Unparsable values report the offending field instead of panicking.
	ve = &ValidationError{}
	checkAmountMatchesItems(ve, "abc", []Item{{Price: "1", Quantity: "1"}})
	if !ve.HasErrors() || ve.Fields[0].Field != "amount" {
		t.Fatalf("unexpected fields: %+v", ve.Fields)
	}

	ve = &ValidationError{}
	checkAmountMatchesItems(ve, "1.00", []Item{{Price: "x", Quantity: "1"}})
	if !ve.HasErrors() || ve.Fields[0].Field != "items[0].price" {
		t.Fatalf("unexpected fields: %+v", ve.Fields)
	}

	// Empty amount or no items: nothing to compare yet.
	ve = &ValidationError{}
	checkAmountMatchesItems(ve, "", nil)
	if ve.HasErrors() {
		t.Fatalf("empty input must not error: %+v", ve.Fields)
	}
}
