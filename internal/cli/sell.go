package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pentoria/pentoria/internal/catalog"
	"github.com/pentoria/pentoria/internal/filex"
	"github.com/pentoria/pentoria/internal/models"
	"github.com/pentoria/pentoria/internal/ui"
)

// Sell walks the upload form and creates a listing for the logged-in
// seller.
func (a *App) Sell(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	category, err := GetSimpleText(a.reader, "Category", a.out)
	if err != nil {
		return err
	}
	priceArg, err := GetSimpleText(a.reader, "Price (naira)", a.out)
	if err != nil {
		return err
	}
	price, err := parsePrice(priceArg)
	if err != nil {
		return a.notifyErr("Cannot create listing", err)
	}

	condition := models.ConditionUsed
	isNew, err := GetYesNo(a.reader, "Is the item new?", false, a.out)
	if err != nil {
		return err
	}
	if isNew {
		condition = models.ConditionNew
	}

	location, err := GetSimpleText(a.reader, "Location", a.out)
	if err != nil {
		return err
	}
	meetup, err := GetSimpleText(a.reader, "Meetup address (blank to skip)", a.out)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Description", a.out)
	if err != nil {
		return err
	}

	var image string
	path, err := GetSimpleText(a.reader, "Photo file (blank to skip)", a.out)
	if err != nil {
		return err
	}
	if path != "" {
		image, err = filex.ReadImageDataURL(ctx, path)
		if err != nil {
			return a.notifyErr("Could not read photo", err)
		}
	}

	featured, err := GetYesNo(a.reader, "Feature this listing?", false, a.out)
	if err != nil {
		return err
	}

	p, err := a.cat.Create(ctx, catalog.NewProduct{
		Title:         title,
		Category:      category,
		Price:         price,
		Condition:     condition,
		Location:      location,
		MeetupAddress: meetup,
		Description:   description,
		Image:         image,
		Featured:      featured,
	}, a.sess.Current())
	if err != nil {
		return a.notifyErr("Cannot create listing", err)
	}

	a.presenter.Notify(ui.KindSuccess, "Listing created", fmt.Sprintf("%s (id %d)", p.Title, p.ID))
	return nil
}

// Unlist deletes one of the seller's own listings.
func (a *App) Unlist(ctx context.Context, idArg string) error {
	id, err := parseID(idArg)
	if err != nil {
		return a.notifyErr("Cannot delete listing", err)
	}

	if err := a.cat.Delete(ctx, id, a.sess.Current()); err != nil {
		return a.notifyErr("Cannot delete listing", err)
	}

	a.presenter.Notify(ui.KindSuccess, "Listing deleted", "")
	return nil
}

func parsePrice(arg string) (int64, error) {
	price, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q", arg)
	}
	return price, nil
}
