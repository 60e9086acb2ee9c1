package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pentoria/pentoria/internal/ui"
)

func (a *App) AddToCart(ctx context.Context, idArg string) error {
	id, err := parseID(idArg)
	if err != nil {
		return a.notifyErr("Cannot add to cart", err)
	}

	p, err := a.cat.ByID(id)
	if err != nil {
		return a.notifyErr("Cannot add to cart", err)
	}

	if err := a.cart.Add(ctx, *p, a.sess.Current()); err != nil {
		return a.notifyErr("Cannot add to cart", err)
	}

	a.presenter.Notify(ui.KindSuccess, "Added to cart", p.Title)
	return nil
}

func (a *App) RemoveFromCart(ctx context.Context, idArg string) error {
	id, err := parseID(idArg)
	if err != nil {
		return a.notifyErr("Cannot update cart", err)
	}

	if err := a.cart.Remove(ctx, id); err != nil {
		return a.notifyErr("Cannot update cart", err)
	}

	a.presenter.Notify(ui.KindSuccess, "Removed from cart", "")
	return nil
}

// AdjustQuantity changes a line's quantity by delta; a line dropping to
// zero disappears from the cart.
func (a *App) AdjustQuantity(ctx context.Context, idArg, deltaArg string) error {
	id, err := parseID(idArg)
	if err != nil {
		return a.notifyErr("Cannot update cart", err)
	}
	delta, err := strconv.Atoi(deltaArg)
	if err != nil {
		return a.notifyErr("Cannot update cart", fmt.Errorf("invalid quantity change %q", deltaArg))
	}

	if err := a.cart.AdjustQuantity(ctx, id, delta); err != nil {
		return a.notifyErr("Cannot update cart", err)
	}

	a.presenter.Notify(ui.KindSuccess, "Cart updated", "")
	return nil
}

func (a *App) ShowCart(_ context.Context) error {
	a.presenter.RenderCart(a.cart.Lines(), a.cart.Totals())
	return nil
}

// Checkout places the order, prints the receipt, and leaves the cart
// empty.
func (a *App) Checkout(ctx context.Context) error {
	receipt, err := a.cart.Checkout(ctx)
	if err != nil {
		return a.notifyErr("Checkout failed", err)
	}

	fmt.Fprintf(a.out, "Order %s placed at %s\n", receipt.ID, receipt.PlacedAt.Format("2006-01-02 15:04"))
	for _, line := range receipt.Items {
		fmt.Fprintf(a.out, "  %s x%d = %s\n", line.Title, line.Quantity, formatNaira(line.Price*int64(line.Quantity)))
	}
	fmt.Fprintf(a.out, "  Total: %s\n", formatNaira(receipt.Totals.Total))

	a.presenter.Notify(ui.KindSuccess, "Order placed", receipt.ID)
	return nil
}
