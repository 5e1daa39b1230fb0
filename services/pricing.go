package services

import "errors"

// ErrInvalidQuantity is returned for line quantities below one.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// LineItem is a priced line in a cart.
type LineItem struct {
	Price    float64
	Quantity int
}

// ComputeLineTotal returns unit price times quantity.
func ComputeLineTotal(unitPrice float64, quantity int) (float64, error) {
	if quantity < 1 {
		return 0, ErrInvalidQuantity
	}
	return unitPrice * float64(quantity), nil
}

// ComputeCartSubtotal sums line totals. An empty list yields 0.
func ComputeCartSubtotal(items []LineItem) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	return subtotal
}

// ComputeOrderTotal returns subTotal + vat + deliveryFee - coupon. The result
// is not floored at zero: a coupon exceeding subTotal+vat+deliveryFee yields a
// negative total.
func ComputeOrderTotal(subTotal, vat, deliveryFee, coupon float64) float64 {
	return subTotal + vat + deliveryFee - coupon
}
