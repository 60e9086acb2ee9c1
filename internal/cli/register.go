package cli

import (
	"context"

	"github.com/pentoria/pentoria/internal/directory"
	"github.com/pentoria/pentoria/internal/filex"
	"github.com/pentoria/pentoria/internal/models"
	"github.com/pentoria/pentoria/internal/ui"
)

// Register walks the sign-up form, creates the account, and logs the new
// user straight in.
func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Full name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	phone, err := GetSimpleText(a.reader, "Phone (Nigerian format)", a.out)
	if err != nil {
		return err
	}

	kind := models.AccountKindBuyer
	seller, err := GetYesNo(a.reader, "Register as a seller?", false, a.out)
	if err != nil {
		return err
	}

	var businessName string
	if seller {
		kind = models.AccountKindSeller
		businessName, err = GetSimpleText(a.reader, "Business name", a.out)
		if err != nil {
			return err
		}
	}

	var image string
	path, err := GetSimpleText(a.reader, "Profile picture file (blank to skip)", a.out)
	if err != nil {
		return err
	}
	if path != "" {
		image, err = filex.ReadImageDataURL(ctx, path)
		if err != nil {
			return a.notifyErr("Could not read picture", err)
		}
	}

	password, err := GetPassword("Password", a.out)
	if err != nil {
		return err
	}
	confirm, err := GetPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	acct, err := a.dir.Register(ctx, directory.Registration{
		Name:         name,
		Email:        email,
		Phone:        phone,
		Password:     password,
		Confirm:      confirm,
		Kind:         kind,
		BusinessName: businessName,
		Image:        image,
	})
	if err != nil {
		return a.notifyErr("Registration failed", err)
	}

	if _, err := a.sess.Login(ctx, acct.Email, password); err != nil {
		return a.notifyErr("Registration succeeded but login failed", err)
	}

	a.presenter.Notify(ui.KindSuccess, "Welcome to Pentoria", acct.DisplayName())
	return nil
}
