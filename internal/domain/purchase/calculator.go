package purchase

// TaxRate is the single flat rate applied to the whole cart (10%).
const TaxRate = 0.10

// Amounts holds the computed totals of one purchase, in minor currency units.
type Amounts struct {
	SubtotalExTax int64
	Tax           int64
	Total         int64
}

// ComputeAmounts sums the cart and applies the flat tax rate, truncating the
// tax toward zero on conversion to minor units. It is pure; persistence of
// the resulting figures is the workflow's concern.
func ComputeAmounts(items []CartItem) (Amounts, error) {
	var subtotal int64
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return Amounts{}, err
		}
		subtotal += item.Price * int64(item.Quantity)
	}

	tax := int64(float64(subtotal) * TaxRate)

	return Amounts{
		SubtotalExTax: subtotal,
		Tax:           tax,
		Total:         subtotal + tax,
	}, nil
}
