// Package ui declares the contract between the data layer and whatever
// surface presents it. The core never builds output itself; it hands
// collections and outcomes to a Presenter.
package ui

import "github.com/pentoria/pentoria/internal/models"

// Kind classifies a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

// Presenter renders marketplace state for the user.
//
// Contract:
//   - RenderProducts must handle the empty sequence with a distinct
//     "no results" presentation.
//   - RenderCart must handle the empty cart.
//   - Notify is fire-and-forget feedback; every user-facing operation
//     produces exactly one notification, success or first failure.
type Presenter interface {
	RenderProducts(products []models.Product)
	RenderCart(lines []models.CartLine, totals models.Totals)
	Notify(kind Kind, title, message string)
}
