package models

import "time"

// CartLine is one product in the cart: a full snapshot of the product at
// the time it was added, plus a quantity. Quantity is always >= 1; a line
// adjusted to zero is removed, never stored.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// Totals is the cart summary. Amounts are naira, no minor units.
type Totals struct {
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	Total       int64 `json:"total"`
}

// Receipt is the itemized record produced by checkout, after which the
// cart is empty. Checkout is terminal; there is no payment step.
type Receipt struct {
	ID       string     `json:"id"`
	Items    []CartLine `json:"items"`
	Totals   Totals     `json:"totals"`
	PlacedAt time.Time  `json:"placedAt"`
}
