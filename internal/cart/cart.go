// Package cart owns the single active shopping cart and its totals.
// The cart is scoped to the store, not to an account: every signed-in
// buyer on the same installation shares it, matching the original
// storage layout. Not safe for concurrent use.
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/pentoria/pentoria/internal/common"
	"github.com/pentoria/pentoria/internal/logging"
	"github.com/pentoria/pentoria/internal/models"
	"github.com/pentoria/pentoria/internal/store"
)

// Delivery pricing: orders above the threshold ship free, everything
// else pays the flat fee. Amounts are naira.
const (
	FreeDeliveryThreshold = 50000
	FlatDeliveryFee       = 2500
)

type Ledger struct {
	store store.Store
	log   logging.Logger
	lines []models.CartLine
}

// New loads the cart collection from the store.
func New(ctx context.Context, s store.Store, log logging.Logger) (*Ledger, error) {
	l := &Ledger{store: s, log: log.With("component", "cart")}

	data, err := s.Load(ctx, store.KeyCart)
	if err != nil {
		return nil, fmt.Errorf("loading cart: %w", err)
	}
	if data != nil {
		if err := json.Unmarshal(data, &l.lines); err != nil {
			return nil, fmt.Errorf("decoding cart: %w", err)
		}
	}

	return l, nil
}

func (l *Ledger) persist(ctx context.Context, lines []models.CartLine) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encoding cart: %w", err)
	}
	if err := l.store.Save(ctx, store.KeyCart, data); err != nil {
		return err
	}
	l.lines = lines
	return nil
}

// Lines returns the cart contents in insertion order.
func (l *Ledger) Lines() []models.CartLine {
	return slices.Clone(l.lines)
}

// Count returns the badge count: the sum of all line quantities.
func (l *Ledger) Count() int {
	total := 0
	for _, line := range l.lines {
		total += line.Quantity
	}
	return total
}

// Add puts a product in the cart for the acting account. An anonymous
// actor must log in first and sellers cannot buy. A product already in
// the cart gains quantity instead of a second line.
func (l *Ledger) Add(ctx context.Context, p models.Product, actor *models.Account) error {
	if actor == nil {
		return fmt.Errorf("%w: please login to add items to your cart", common.ErrForbidden)
	}
	if actor.IsSeller() {
		return fmt.Errorf("%w: sellers cannot add items to cart", common.ErrForbidden)
	}

	next := slices.Clone(l.lines)
	if idx := l.indexByProduct(p.ID); idx >= 0 {
		next[idx].Quantity++
	} else {
		next = append(next, models.CartLine{Product: p, Quantity: 1})
	}

	return l.persist(ctx, next)
}

// AdjustQuantity changes a line's quantity by delta. A line that would
// drop to zero or below is removed, never stored with a non-positive
// quantity. A stale product id is a no-op reporting NotFound.
func (l *Ledger) AdjustQuantity(ctx context.Context, productID int64, delta int) error {
	idx := l.indexByProduct(productID)
	if idx < 0 {
		return common.ErrNotFound
	}

	next := slices.Clone(l.lines)
	next[idx].Quantity += delta
	if next[idx].Quantity <= 0 {
		next = slices.Delete(next, idx, idx+1)
	}

	return l.persist(ctx, next)
}

// Remove deletes a line regardless of quantity.
func (l *Ledger) Remove(ctx context.Context, productID int64) error {
	idx := l.indexByProduct(productID)
	if idx < 0 {
		return common.ErrNotFound
	}

	next := slices.Delete(slices.Clone(l.lines), idx, idx+1)
	return l.persist(ctx, next)
}

// Totals computes the cart summary. An empty cart is all zeros; a
// non-empty cart pays the flat delivery fee unless the subtotal
// crosses the free-delivery threshold.
func (l *Ledger) Totals() models.Totals {
	if len(l.lines) == 0 {
		return models.Totals{}
	}

	var t models.Totals
	for _, line := range l.lines {
		t.Subtotal += line.Price * int64(line.Quantity)
	}
	if t.Subtotal <= FreeDeliveryThreshold {
		t.DeliveryFee = FlatDeliveryFee
	}
	t.Total = t.Subtotal + t.DeliveryFee
	return t
}

// Checkout captures an itemized receipt with the totals computed at
// that moment, then clears the cart and persists the empty state.
// There is no payment step and no undo.
func (l *Ledger) Checkout(ctx context.Context) (*models.Receipt, error) {
	if len(l.lines) == 0 {
		return nil, common.ErrEmptyCart
	}

	receipt := &models.Receipt{
		ID:       uuid.NewString(),
		Items:    slices.Clone(l.lines),
		Totals:   l.Totals(),
		PlacedAt: time.Now(),
	}

	if err := l.persist(ctx, []models.CartLine{}); err != nil {
		return nil, err
	}

	l.log.Info(ctx, "order placed", "receipt", receipt.ID, "total", receipt.Totals.Total)
	return receipt, nil
}

func (l *Ledger) indexByProduct(productID int64) int {
	return slices.IndexFunc(l.lines, func(line models.CartLine) bool { return line.ID == productID })
}
