package cli

import (
	"context"

	"github.com/pentoria/pentoria/internal/ui"
)

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Password", a.out)
	if err != nil {
		return err
	}

	acct, err := a.sess.Login(ctx, email, password)
	if err != nil {
		return a.notifyErr("Login failed", err)
	}

	a.presenter.Notify(ui.KindSuccess, "Welcome back", acct.DisplayName())
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.sess.Logout(ctx); err != nil {
		return a.notifyErr("Logout failed", err)
	}
	a.presenter.Notify(ui.KindInfo, "Logged out", "")
	return nil
}
