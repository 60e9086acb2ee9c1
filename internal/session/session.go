// Package session tracks which account, if any, is currently
// authenticated. The pointer is persisted as a signed token carrying a
// full denormalized copy of the account, so a tampered pointer fails
// verification at startup and the process falls back to anonymous.
package session

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pentoria/pentoria/internal/common"
	"github.com/pentoria/pentoria/internal/directory"
	"github.com/pentoria/pentoria/internal/logging"
	"github.com/pentoria/pentoria/internal/models"
	"github.com/pentoria/pentoria/internal/store"
)

// claims wraps the persisted account in a signed token.
type claims struct {
	jwt.RegisteredClaims
	Account models.Account `json:"account"`
}

type Session struct {
	store   store.Store
	log     logging.Logger
	dir     *directory.Directory
	key     []byte
	current *models.Account
}

func New(s store.Store, dir *directory.Directory, signingKey []byte, log logging.Logger) *Session {
	return &Session{
		store: s,
		log:   log.With("component", "session"),
		dir:   dir,
		key:   signingKey,
	}
}

// Restore reads the persisted pointer at startup. A missing, malformed,
// or tampered token means anonymous; the directory is not re-checked.
func (s *Session) Restore(ctx context.Context) (*models.Account, error) {
	data, err := s.store.Load(ctx, store.KeySession)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	acct, err := s.parseToken(string(data))
	if err != nil {
		s.log.Warn(ctx, "discarding unverifiable session pointer", "error", err)
		_ = s.store.Delete(ctx, store.KeySession)
		return nil, nil
	}

	s.current = acct
	return acct, nil
}

// Login checks the credentials against the directory and persists the
// pointer on success.
func (s *Session) Login(ctx context.Context, email, password string) (*models.Account, error) {
	acct, err := s.dir.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := s.persist(ctx, acct); err != nil {
		return nil, err
	}

	s.current = acct
	s.log.Info(ctx, "logged in", "id", acct.ID, "kind", acct.Kind)
	return acct, nil
}

// Logout clears the pointer and its persisted state.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, store.KeySession); err != nil {
		return err
	}
	s.current = nil
	return nil
}

// Refresh re-persists the pointer after a profile mutation so the
// stored copy matches the directory.
func (s *Session) Refresh(ctx context.Context, acct *models.Account) error {
	if s.current == nil || acct == nil || s.current.ID != acct.ID {
		return common.ErrNotFound
	}
	if err := s.persist(ctx, acct); err != nil {
		return err
	}
	s.current = acct
	return nil
}

// Current returns the authenticated account, or nil when anonymous.
func (s *Session) Current() *models.Account {
	return s.current
}

// IsSeller reports whether the current account is a seller; false when
// anonymous.
func (s *Session) IsSeller() bool {
	return s.current.IsSeller()
}

func (s *Session) persist(ctx context.Context, acct *models.Account) error {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{Account: *acct})

	signed, err := token.SignedString(s.key)
	if err != nil {
		return fmt.Errorf("signing session pointer: %w", err)
	}
	return s.store.Save(ctx, store.KeySession, []byte(signed))
}

func (s *Session) parseToken(tokenString string) (*models.Account, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (any, error) {
		return s.key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	return &c.Account, nil
}
