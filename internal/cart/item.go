// Package cart implements the shopping cart engine: the authoritative item
// list for one shopper, duplicate-line merging, derived monetary aggregates,
// and a durable local copy of the list.
package cart

// Variant is an optional size/color selection attached to a line.
// An empty string means "no selection"; Normalize defines the equivalence.
type Variant struct {
	// Size is the selected size, or empty when none was chosen.
	Size string `json:"size,omitempty" bson:"size,omitempty" form:"size" example:"M"`
	// Color is the selected color, or empty when none was chosen.
	Color string `json:"color,omitempty" bson:"color,omitempty" form:"color" example:"black"`
}

// unset is the canonical representation of a variant component with no
// selection. Callers may hand us an absent field, a null, or an empty
// string; all of them decode to this value.
const unset = ""

// normalizeComponent collapses every "no selection" representation to the
// canonical unset value. Non-empty values pass through unchanged: matching
// is case-sensitive and never trims.
func normalizeComponent(s string) string {
	if s == "" {
		return unset
	}
	return s
}

// Normalize returns the variant with each component collapsed to its
// canonical form. A product with no variant selected must collide with
// itself regardless of which empty representation the caller used.
func (v Variant) Normalize() Variant {
	return Variant{
		Size:  normalizeComponent(v.Size),
		Color: normalizeComponent(v.Color),
	}
}

// IsZero reports whether no variant component is selected.
func (v Variant) IsZero() bool {
	n := v.Normalize()
	return n.Size == unset && n.Color == unset
}

// Identity is the (product, size, color) triple that decides whether two
// candidate lines refer to the same purchasable unit.
type Identity struct {
	ProductID int64
	Variant   Variant
}

// Matches reports whether two identities refer to the same line. It is
// pure and symmetric: variants are compared after normalization, so an
// unset component can never create a duplicate line for the same item.
func (id Identity) Matches(other Identity) bool {
	if id.ProductID != other.ProductID {
		return false
	}
	a, b := id.Variant.Normalize(), other.Variant.Normalize()
	return a.Size == b.Size && a.Color == b.Color
}

// Item is one purchasable line in the cart. Title, Image and UnitPrice are
// display snapshots captured at add-time and never re-fetched.
//
// @Description One cart line: a product at a specific variant and quantity
// @Example {"product_id": 42, "title": "Trail Jacket", "image": "jacket.png", "unit_price": 89.9, "discount_percent": 10, "size": "M", "quantity": 2}
type Item struct {
	// ProductID is the stable catalog identifier.
	ProductID int64 `json:"product_id" bson:"product_id" example:"42"`
	// Title is the product title snapshot captured at add-time.
	Title string `json:"title" bson:"title" example:"Trail Jacket"`
	// Image is the product image reference snapshot captured at add-time.
	Image string `json:"image,omitempty" bson:"image,omitempty" example:"jacket.png"`
	// UnitPrice is the non-negative price snapshot captured at add-time.
	UnitPrice float64 `json:"unit_price" bson:"unit_price" example:"89.9"`
	// DiscountPercent is the integer discount in [0, 100]; zero means none.
	DiscountPercent int `json:"discount_percent,omitempty" bson:"discount_percent,omitempty" example:"10"`
	// Variant is the optional size/color selection.
	Variant Variant `json:"variant,omitempty" bson:"variant,omitempty"`
	// Quantity is the number of units, always >= 1 for a line that exists.
	Quantity int `json:"quantity" bson:"quantity" example:"2"`
}

// Identity returns the matching identity of the line.
func (it Item) Identity() Identity {
	return Identity{ProductID: it.ProductID, Variant: it.Variant}
}

// EffectiveUnitPrice is the unit price after the line discount is applied.
func (it Item) EffectiveUnitPrice() float64 {
	return it.UnitPrice * (1 - float64(it.DiscountPercent)/100)
}

// validate rejects a line that would corrupt an invariant if admitted.
// DiscountPercent is not checked here; the store clamps it instead.
func (it Item) validate() error {
	if it.ProductID <= 0 {
		return ErrInvalidProduct
	}
	if it.UnitPrice < 0 {
		return ErrInvalidPrice
	}
	return nil
}
