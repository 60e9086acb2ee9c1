package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pentoria/pentoria/internal/ui"
)

// parseID converts a command argument to a product ID.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid product id %q", arg)
	}
	return id, nil
}

func (a *App) Browse(_ context.Context) error {
	a.presenter.RenderProducts(a.cat.All())
	return nil
}

func (a *App) Search(_ context.Context) error {
	term, err := GetSimpleText(a.reader, "Search term (blank for all)", a.out)
	if err != nil {
		return err
	}
	category, err := GetSimpleText(a.reader, "Category (blank for all)", a.out)
	if err != nil {
		return err
	}

	a.presenter.RenderProducts(a.cat.Search(term, category))
	return nil
}

func (a *App) Sort(_ context.Context, criterion string) error {
	a.presenter.RenderProducts(a.cat.SortedBy(criterion, a.cat.All()))
	return nil
}

// View shows a single product in full and counts the view.
func (a *App) View(ctx context.Context, idArg string) error {
	id, err := parseID(idArg)
	if err != nil {
		return a.notifyErr("Cannot view product", err)
	}

	p, err := a.cat.RecordView(ctx, id)
	if err != nil {
		return a.notifyErr("Cannot view product", err)
	}

	fmt.Fprintf(a.out, "%s\n", p.Title)
	fmt.Fprintf(a.out, "Price:     %s\n", formatNaira(p.Price))
	fmt.Fprintf(a.out, "Category:  %s (%s)\n", p.Category, p.Condition)
	fmt.Fprintf(a.out, "Location:  %s\n", p.Location)
	if p.MeetupAddress != "" {
		fmt.Fprintf(a.out, "Meetup:    %s\n", p.MeetupAddress)
	}
	fmt.Fprintf(a.out, "Seller:    %s (rating %.1f)\n", p.SellerName, p.SellerRating)
	fmt.Fprintf(a.out, "Views:     %d\n", p.Views)
	if p.Description != "" {
		fmt.Fprintf(a.out, "\n%s\n", p.Description)
	}
	return nil
}

// Stats prints the seller dashboard: aggregate numbers plus the seller's
// own listings.
func (a *App) Stats(_ context.Context) error {
	acct := a.sess.Current()
	if !acct.IsSeller() {
		a.presenter.Notify(ui.KindError, "Sellers only", "log in with a seller account to see statistics")
		return nil
	}

	stats := a.cat.StatisticsFor(acct.ID)
	fmt.Fprintf(a.out, "Active listings: %d\n", stats.Count)
	fmt.Fprintf(a.out, "Total views:     %d\n", stats.TotalViews)
	fmt.Fprintf(a.out, "Total value:     %s\n", formatNaira(stats.TotalValue))
	fmt.Fprintf(a.out, "Average views:   %d\n", stats.AverageViews)

	a.presenter.RenderProducts(a.cat.BySeller(acct.ID))
	return nil
}
