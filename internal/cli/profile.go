package cli

import (
	"context"
	"fmt"

	"github.com/pentoria/pentoria/internal/directory"
	"github.com/pentoria/pentoria/internal/filex"
	"github.com/pentoria/pentoria/internal/models"
	"github.com/pentoria/pentoria/internal/ui"
)

// requireLogin returns the current account or notifies the user.
func (a *App) requireLogin() *models.Account {
	acct := a.sess.Current()
	if acct == nil {
		a.presenter.Notify(ui.KindError, "Not logged in", "log in or register first")
	}
	return acct
}

func (a *App) Profile(_ context.Context) error {
	acct := a.requireLogin()
	if acct == nil {
		return nil
	}

	fmt.Fprintf(a.out, "Name:    %s\n", acct.Name)
	fmt.Fprintf(a.out, "Email:   %s\n", acct.Email)
	fmt.Fprintf(a.out, "Phone:   %s\n", acct.Phone)
	fmt.Fprintf(a.out, "Type:    %s\n", acct.Kind)
	if acct.BusinessName != "" {
		fmt.Fprintf(a.out, "Business: %s\n", acct.BusinessName)
	}
	fmt.Fprintf(a.out, "Member since: %s\n", acct.CreatedAt.Format("January 2006"))
	return nil
}

// EditProfile re-prompts the mutable fields; a blank answer keeps the
// current value.
func (a *App) EditProfile(ctx context.Context) error {
	acct := a.requireLogin()
	if acct == nil {
		return nil
	}

	askOrKeep := func(prompt, current string) (string, error) {
		v, err := GetSimpleText(a.reader, fmt.Sprintf("%s [%s]", prompt, current), a.out)
		if err != nil {
			return "", err
		}
		if v == "" {
			return current, nil
		}
		return v, nil
	}

	name, err := askOrKeep("Full name", acct.Name)
	if err != nil {
		return err
	}
	email, err := askOrKeep("Email", acct.Email)
	if err != nil {
		return err
	}
	phone, err := askOrKeep("Phone", acct.Phone)
	if err != nil {
		return err
	}

	update := directory.ProfileUpdate{Name: name, Email: email, Phone: phone}
	if acct.IsSeller() {
		update.BusinessName, err = askOrKeep("Business name", acct.BusinessName)
		if err != nil {
			return err
		}
	}

	updated, err := a.dir.UpdateProfile(ctx, acct.ID, update)
	if err != nil {
		return a.notifyErr("Profile update failed", err)
	}
	if err := a.sess.Refresh(ctx, updated); err != nil {
		return a.notifyErr("Profile update failed", err)
	}

	a.presenter.Notify(ui.KindSuccess, "Profile updated", "")
	return nil
}

func (a *App) ChangePassword(ctx context.Context) error {
	acct := a.requireLogin()
	if acct == nil {
		return nil
	}

	oldPassword, err := GetPassword("Current password", a.out)
	if err != nil {
		return err
	}
	newPassword, err := GetPassword("New password", a.out)
	if err != nil {
		return err
	}
	confirm, err := GetPassword("Confirm new password", a.out)
	if err != nil {
		return err
	}
	if newPassword != confirm {
		a.presenter.Notify(ui.KindError, "Password change failed", "new passwords do not match")
		return nil
	}

	if err := a.dir.ChangeCredential(ctx, acct.ID, oldPassword, newPassword); err != nil {
		return a.notifyErr("Password change failed", err)
	}

	a.presenter.Notify(ui.KindSuccess, "Password changed", "")
	return nil
}

// Preferences walks the notification and locale settings.
func (a *App) Preferences(ctx context.Context) error {
	acct := a.requireLogin()
	if acct == nil {
		return nil
	}

	prefs := acct.Preferences
	var err error

	if prefs.EmailNotifications, err = GetYesNo(a.reader, "Email notifications?", prefs.EmailNotifications, a.out); err != nil {
		return err
	}
	if prefs.SMSNotifications, err = GetYesNo(a.reader, "SMS notifications?", prefs.SMSNotifications, a.out); err != nil {
		return err
	}
	if prefs.OrderUpdates, err = GetYesNo(a.reader, "Order updates?", prefs.OrderUpdates, a.out); err != nil {
		return err
	}
	if prefs.PromotionalEmails, err = GetYesNo(a.reader, "Promotional emails?", prefs.PromotionalEmails, a.out); err != nil {
		return err
	}

	language, err := GetSimpleText(a.reader, fmt.Sprintf("Language [%s]", prefs.Language), a.out)
	if err != nil {
		return err
	}
	if language != "" {
		prefs.Language = language
	}
	currency, err := GetSimpleText(a.reader, fmt.Sprintf("Currency [%s]", prefs.Currency), a.out)
	if err != nil {
		return err
	}
	if currency != "" {
		prefs.Currency = currency
	}

	if err := a.dir.UpdatePreferences(ctx, acct.ID, prefs); err != nil {
		return a.notifyErr("Preferences update failed", err)
	}

	updated, err := a.dir.ByID(acct.ID)
	if err != nil {
		return a.notifyErr("Preferences update failed", err)
	}
	if err := a.sess.Refresh(ctx, updated); err != nil {
		return a.notifyErr("Preferences update failed", err)
	}

	a.presenter.Notify(ui.KindSuccess, "Preferences saved", "")
	return nil
}

// UpdatePhoto reads an image file and stores it as the profile picture.
func (a *App) UpdatePhoto(ctx context.Context) error {
	acct := a.requireLogin()
	if acct == nil {
		return nil
	}

	path, err := GetSimpleText(a.reader, "Picture file", a.out)
	if err != nil {
		return err
	}

	dataURL, err := filex.ReadImageDataURL(ctx, path)
	if err != nil {
		return a.notifyErr("Could not read picture", err)
	}

	updated, err := a.dir.UpdateImage(ctx, acct.ID, dataURL)
	if err != nil {
		return a.notifyErr("Picture update failed", err)
	}
	if err := a.sess.Refresh(ctx, updated); err != nil {
		return a.notifyErr("Picture update failed", err)
	}

	a.presenter.Notify(ui.KindSuccess, "Picture updated", "")
	return nil
}
