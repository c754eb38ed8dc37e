// Package pricing computes the monetary figures of a cart: subtotal, tax,
// tip and total. Computation is pure and always starts from the cart lines,
// so every cart mutation is followed by a full recompute.
package pricing

import (
	"vineyard/internal/model"

	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the sales tax applied when none is configured.
var DefaultTaxRate = decimal.RequireFromString("0.07")

const displayPlaces = 2

// TipKind selects how a tip is derived.
type TipKind int

const (
	TipNone TipKind = iota
	TipPercentage
	TipFixed
)

// Tip describes the gratuity chosen at checkout.
type Tip struct {
	Kind  TipKind
	Value decimal.Decimal
}

// NoTip returns a tip of zero.
func NoTip() Tip {
	return Tip{Kind: TipNone}
}

// Percentage returns a tip of rate times the subtotal, where rate is a
// fraction (0.20 for 20%).
func Percentage(rate decimal.Decimal) Tip {
	return Tip{Kind: TipPercentage, Value: rate}
}

// FixedAmount returns a user-entered tip. Negative amounts are treated as zero.
func FixedAmount(amount decimal.Decimal) Tip {
	return Tip{Kind: TipFixed, Value: amount}
}

func (t Tip) validate() error {
	switch t.Kind {
	case TipNone, TipFixed:
		return nil
	case TipPercentage:
		if t.Value.IsNegative() {
			return &model.InvalidConfigurationError{Parameter: "tip", Reason: "percentage must not be negative"}
		}
		return nil
	default:
		return &model.InvalidConfigurationError{Parameter: "tip", Reason: "unknown tip kind"}
	}
}

func (t Tip) amount(subtotal decimal.Decimal) decimal.Decimal {
	switch t.Kind {
	case TipPercentage:
		return subtotal.Mul(t.Value).Round(displayPlaces)
	case TipFixed:
		if t.Value.IsNegative() {
			return decimal.Zero
		}
		return t.Value.Round(displayPlaces)
	default:
		return decimal.Zero
	}
}

// LineTotal returns price times quantity at full precision.
func LineTotal(line model.CartLine) decimal.Decimal {
	return line.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
}

// Compute returns the totals of c. Either every figure is returned or an
// error is; partial totals are never produced.
func Compute(c model.Cart, taxRate decimal.Decimal, tip Tip) (model.Totals, error) {
	if taxRate.IsNegative() {
		return model.Totals{}, &model.InvalidConfigurationError{Parameter: "taxRate", Reason: "must not be negative"}
	}
	if err := tip.validate(); err != nil {
		return model.Totals{}, err
	}

	subtotal := decimal.Zero
	for _, line := range c.Lines {
		if err := validateLine(line); err != nil {
			return model.Totals{}, err
		}
		subtotal = subtotal.Add(LineTotal(line))
	}

	subtotal = subtotal.Round(displayPlaces)
	tax := subtotal.Mul(taxRate).Round(displayPlaces)
	tipAmount := tip.amount(subtotal)

	return model.Totals{
		Subtotal:  subtotal,
		TaxAmount: tax,
		TipAmount: tipAmount,
		Total:     subtotal.Add(tax).Add(tipAmount).Round(displayPlaces),
	}, nil
}

// BuildReceipt prices c and snapshots it into an unpurchased receipt.
// Identity and timestamps are left for the caller to assign.
func BuildReceipt(c model.Cart, taxRate decimal.Decimal, tip Tip) (model.Receipt, error) {
	totals, err := Compute(c, taxRate, tip)
	if err != nil {
		return model.Receipt{}, err
	}

	items := make([]model.ReceiptLine, len(c.Lines))
	for i, line := range c.Lines {
		items[i] = model.ReceiptLine{
			CartLine:  line,
			LineTotal: LineTotal(line).Round(displayPlaces),
		}
	}

	return model.Receipt{
		OwnerID:   c.OwnerID,
		Items:     items,
		Subtotal:  totals.Subtotal,
		TaxAmount: totals.TaxAmount,
		TipAmount: totals.TipAmount,
		Total:     totals.Total,
		Purchased: false,
	}, nil
}

func validateLine(line model.CartLine) error {
	if line.Price.IsNegative() {
		return &model.InvalidLineError{KeyText: line.KeyText, Reason: "price must not be negative"}
	}
	if line.Quantity < 0 {
		return &model.InvalidLineError{KeyText: line.KeyText, Reason: "quantity must not be negative"}
	}
	return nil
}
