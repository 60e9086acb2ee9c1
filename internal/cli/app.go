// Package cli is the terminal surface of the marketplace: a REPL that
// drives the directory, catalog, cart, and session components and
// renders their results through a Presenter.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/pentoria/pentoria/internal/cart"
	"github.com/pentoria/pentoria/internal/catalog"
	"github.com/pentoria/pentoria/internal/config"
	"github.com/pentoria/pentoria/internal/directory"
	"github.com/pentoria/pentoria/internal/logging"
	"github.com/pentoria/pentoria/internal/session"
	"github.com/pentoria/pentoria/internal/store"
	"github.com/pentoria/pentoria/internal/ui"

	_ "modernc.org/sqlite"
)

type App struct {
	cfg  *config.Config
	log  logging.Logger
	db   *sql.DB
	dir  *directory.Directory
	cat  *catalog.Catalog
	cart *cart.Ledger
	sess *session.Session

	reader    *bufio.Reader
	out       io.Writer
	presenter ui.Presenter
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}

	s := store.NewSQLiteStore(db)

	dir, err := directory.New(ctx, s, log)
	if err != nil {
		return nil, err
	}
	cat, err := catalog.New(ctx, s, log)
	if err != nil {
		return nil, err
	}
	if cfg.Seed {
		if err := cat.Seed(ctx); err != nil {
			return nil, err
		}
	}
	ledger, err := cart.New(ctx, s, log)
	if err != nil {
		return nil, err
	}
	sess := session.New(s, dir, []byte(cfg.SessionKey), log)

	out := os.Stdout
	return &App{
		cfg:       cfg,
		log:       log,
		db:        db,
		dir:       dir,
		cat:       cat,
		cart:      ledger,
		sess:      sess,
		reader:    bufio.NewReader(os.Stdin),
		out:       out,
		presenter: NewTerminalPresenter(out),
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.sess.Current() != nil
}

func (a *App) isSeller() bool {
	return a.sess.IsSeller()
}

// status is shown in the REPL prompt.
func (a *App) status() string {
	acct := a.sess.Current()
	if acct == nil {
		return ""
	}
	return fmt.Sprintf("(%s) ", acct.DisplayName())
}

// notifyErr reports a failed operation and passes the error through.
func (a *App) notifyErr(title string, err error) error {
	a.presenter.Notify(ui.KindError, title, err.Error())
	return err
}

func (a *App) Run(ctx context.Context) {
	printlnFn("Pentoria Marketplace CLI (type 'help' for commands)")

	if acct, err := a.sess.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	} else if acct != nil {
		a.presenter.Notify(ui.KindInfo, "Welcome back", acct.DisplayName())
	}

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}
