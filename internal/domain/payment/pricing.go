package payment

// Tax is charged at a flat 10% of the base price, rounded half-up on whole
// currency minor units.
const taxRatePercent = 10

// Amounts is a checkout breakdown in minor units. BasePrice + Tax == Total
// always holds for forward-computed amounts.
type Amounts struct {
	BasePrice int64
	Tax       int64
	Total     int64
}

// ComputeAmounts derives tax and total from a base price.
func ComputeAmounts(basePrice int64) Amounts {
	tax := roundHalfUpDiv(basePrice*taxRatePercent, 100)
	return Amounts{
		BasePrice: basePrice,
		Tax:       tax,
		Total:     basePrice + tax,
	}
}

// ReverseFromTotal splits a stored total back into base price and tax:
// basePrice = round(total / 1.10), tax = total - basePrice. The inverse is
// lossy; the exact flag reports whether the forward computation of the
// derived base price reproduces the total to the minor unit.
func ReverseFromTotal(total int64) (amounts Amounts, exact bool) {
	base := roundHalfUpDiv(total*100, 100+taxRatePercent)
	amounts = Amounts{
		BasePrice: base,
		Tax:       total - base,
		Total:     total,
	}
	exact = ComputeAmounts(base).Total == total
	return amounts, exact
}

// roundHalfUpDiv computes round(num/den) with halves rounding up, for
// non-negative operands.
func roundHalfUpDiv(num, den int64) int64 {
	return (2*num + den) / (2 * den)
}
