package services

import (
	"jinbbq/internal/core/domain/model/cart"
	"jinbbq/internal/core/domain/model/kernel"
	"jinbbq/internal/core/domain/model/pricing"
)

// PricingCalculator derives the price of a cart or an order from its line items.
//
// All amounts are kept at full precision. Rounding to cents happens only when
// an amount is rendered, so that total always equals subtotal + tax + tip.
//
// Example usage:
//
//	calc := services.NewPricingCalculator()
//	rate, _ := pricing.ParseTaxRate("0.10")
//	tip, _ := pricing.PresetTip(pricing.TipFifteenPercent)
//	b := calc.Breakdown(c.Items(), rate, tip)
//	fmt.Println(b.Total.Display())
type PricingCalculator struct{}

func NewPricingCalculator() PricingCalculator {
	return PricingCalculator{}
}

// Subtotal is Σ(unit price × quantity) over all line items.
func (PricingCalculator) Subtotal(items []cart.LineItem) kernel.Money {
	subtotal := kernel.Zero()
	for _, li := range items {
		subtotal = subtotal.Add(li.LineTotal())
	}
	return subtotal
}

// Tax is subtotal × rate.
func (PricingCalculator) Tax(subtotal kernel.Money, rate pricing.TaxRate) kernel.Money {
	return subtotal.MulRate(rate.Rate())
}

// Tip resolves the active tip selection against the subtotal.
func (PricingCalculator) Tip(subtotal kernel.Money, tip pricing.Tip) kernel.Money {
	return tip.Amount(subtotal)
}

// Total is subtotal + tax + tip.
func (PricingCalculator) Total(subtotal, tax, tip kernel.Money) kernel.Money {
	return subtotal.Add(tax).Add(tip)
}

// Breakdown computes every pricing component in one pass.
func (c PricingCalculator) Breakdown(items []cart.LineItem, rate pricing.TaxRate, tip pricing.Tip) pricing.Breakdown {
	subtotal := c.Subtotal(items)
	tax := c.Tax(subtotal, rate)
	tipAmount := c.Tip(subtotal, tip)

	return pricing.Breakdown{
		Subtotal: subtotal,
		TaxRate:  rate,
		Tax:      tax,
		Tip:      tipAmount,
		Total:    c.Total(subtotal, tax, tipAmount),
	}
}
