package cart

// Totals are the monetary aggregates derived from the item list. They are
// recomputed from scratch after every mutation and are never allowed to
// drift from what a fresh computation over the items would produce.
//
// @Description Derived cart aggregates
// @Example {"total_items": 3, "subtotal": 241.8, "discount": 26.9, "total": 241.8}
type Totals struct {
	// TotalItems is the sum of all line quantities.
	TotalItems int `json:"total_items" example:"3"`
	// Subtotal is the sum of discounted line totals.
	Subtotal float64 `json:"subtotal" example:"241.8"`
	// Discount is the total amount saved due to line discounts.
	Discount float64 `json:"discount" example:"26.9"`
	// Total equals Subtotal; shipping and tax belong to checkout, not here.
	Total float64 `json:"total" example:"241.8"`
}

// ComputeTotals derives the aggregates for the given items. It is pure and
// deterministic and applies no rounding; formatting is a presentation
// concern. An empty or nil slice yields the zero value.
func ComputeTotals(items []Item) Totals {
	var t Totals
	for _, it := range items {
		effective := it.EffectiveUnitPrice()
		qty := float64(it.Quantity)
		t.TotalItems += it.Quantity
		t.Subtotal += effective * qty
		t.Discount += (it.UnitPrice - effective) * qty
	}
	t.Total = t.Subtotal
	return t
}
