// Package directory manages the accounts collection: registration,
// credential checks, and profile mutation. The collection is held in
// memory and written back to the store as a whole after every mutation.
// A Directory is not safe for concurrent use; all operations are driven
// by the single presentation goroutine.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/pentoria/pentoria/internal/common"
	"github.com/pentoria/pentoria/internal/logging"
	"github.com/pentoria/pentoria/internal/models"
	"github.com/pentoria/pentoria/internal/store"
	"github.com/pentoria/pentoria/internal/validation"
)

// Registration carries the fields of the sign-up form. Image, when set,
// must already be a fully decoded data URL (the blob resolves before
// Register runs, never in the middle of it).
type Registration struct {
	Name         string
	Email        string
	Phone        string
	Password     string
	Confirm      string
	Kind         models.AccountKind
	BusinessName string
	Image        string
}

// ProfileUpdate carries the mutable profile fields.
type ProfileUpdate struct {
	Name         string
	Email        string
	Phone        string
	BusinessName string
}

type Directory struct {
	store    store.Store
	log      logging.Logger
	accounts []models.Account
}

// New loads the accounts collection from the store.
func New(ctx context.Context, s store.Store, log logging.Logger) (*Directory, error) {
	d := &Directory{store: s, log: log.With("component", "directory")}

	data, err := s.Load(ctx, store.KeyAccounts)
	if err != nil {
		return nil, fmt.Errorf("loading accounts: %w", err)
	}
	if data != nil {
		if err := json.Unmarshal(data, &d.accounts); err != nil {
			return nil, fmt.Errorf("decoding accounts: %w", err)
		}
	}

	d.log.Debug(ctx, "accounts loaded", "count", len(d.accounts))
	return d, nil
}

// persist writes the given collection and only then adopts it, so a
// failed save leaves the in-memory state untouched.
func (d *Directory) persist(ctx context.Context, accounts []models.Account) error {
	data, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("encoding accounts: %w", err)
	}
	if err := d.store.Save(ctx, store.KeyAccounts, data); err != nil {
		return err
	}
	d.accounts = accounts
	return nil
}

// nextID derives a fresh monotonic id from the current timestamp,
// bumping past the newest existing id when two registrations land in
// the same millisecond.
func (d *Directory) nextID() int64 {
	id := time.Now().UnixMilli()
	for _, a := range d.accounts {
		if a.ID >= id {
			id = a.ID + 1
		}
	}
	return id
}

// validateRegistration applies the sign-up rules in the fixed
// first-error-wins order: email, phone, confirmation, length,
// business name.
func validateRegistration(r Registration) error {
	if !validation.ValidEmail(r.Email) {
		return fmt.Errorf("%w: please enter a valid email address", common.ErrValidation)
	}
	if !validation.ValidPhone(r.Phone) {
		return fmt.Errorf("%w: please enter a valid Nigerian phone number", common.ErrValidation)
	}
	if r.Password != r.Confirm {
		return fmt.Errorf("%w: passwords do not match", common.ErrValidation)
	}
	if len(r.Password) < validation.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, validation.MinPasswordLength)
	}
	if r.Kind == models.AccountKindSeller && strings.TrimSpace(r.BusinessName) == "" {
		return fmt.Errorf("%w: please enter your business name", common.ErrValidation)
	}
	return nil
}

// Register creates a new account. Nothing is persisted unless every
// rule passes.
func (d *Directory) Register(ctx context.Context, r Registration) (*models.Account, error) {
	r.Name = validation.Sanitize(r.Name)
	r.Email = validation.Sanitize(r.Email)
	r.Phone = validation.Sanitize(r.Phone)
	r.BusinessName = validation.Sanitize(r.BusinessName)

	if err := validateRegistration(r); err != nil {
		return nil, err
	}
	if d.findByEmail(r.Email) != nil {
		return nil, common.ErrDuplicateEmail
	}

	hash, err := hashPassword(r.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing credential: %w", err)
	}

	acct := models.Account{
		ID:           d.nextID(),
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		PasswordHash: hash,
		Kind:         r.Kind,
		Image:        r.Image,
		CreatedAt:    time.Now(),
		Rating:       4.5,
		Preferences:  models.DefaultPreferences(),
	}
	if r.Kind == models.AccountKindSeller {
		acct.BusinessName = r.BusinessName
	}

	next := append(slices.Clone(d.accounts), acct)
	if err := d.persist(ctx, next); err != nil {
		return nil, err
	}

	d.log.Info(ctx, "account registered", "id", acct.ID, "kind", acct.Kind)
	return &acct, nil
}

// Authenticate checks email and password and returns the matching
// account. A missing account and a wrong password are indistinguishable
// to the caller.
func (d *Directory) Authenticate(ctx context.Context, email, password string) (*models.Account, error) {
	acct := d.findByEmail(validation.Sanitize(email))
	if acct == nil || !verifyPassword(acct.PasswordHash, password) {
		return nil, common.ErrInvalidCredentials
	}

	out := *acct
	return &out, nil
}

// UpdateProfile re-validates email and phone and applies the update.
// The business name is only mutable for sellers. Changing the email to
// one already registered fails with ErrDuplicateEmail, preserving the
// directory's uniqueness invariant.
func (d *Directory) UpdateProfile(ctx context.Context, id int64, u ProfileUpdate) (*models.Account, error) {
	u.Name = validation.Sanitize(u.Name)
	u.Email = validation.Sanitize(u.Email)
	u.Phone = validation.Sanitize(u.Phone)
	u.BusinessName = validation.Sanitize(u.BusinessName)

	if !validation.ValidEmail(u.Email) {
		return nil, fmt.Errorf("%w: please enter a valid email address", common.ErrValidation)
	}
	if !validation.ValidPhone(u.Phone) {
		return nil, fmt.Errorf("%w: please enter a valid Nigerian phone number", common.ErrValidation)
	}

	idx := d.indexByID(id)
	if idx < 0 {
		return nil, common.ErrNotFound
	}
	if other := d.findByEmail(u.Email); other != nil && other.ID != id {
		return nil, common.ErrDuplicateEmail
	}

	next := slices.Clone(d.accounts)
	acct := &next[idx]
	acct.Name = u.Name
	acct.Email = u.Email
	acct.Phone = u.Phone
	if acct.Kind == models.AccountKindSeller {
		acct.BusinessName = u.BusinessName
	}

	if err := d.persist(ctx, next); err != nil {
		return nil, err
	}

	out := *acct
	return &out, nil
}

// ChangeCredential replaces the stored hash after verifying the old
// password and the new password's length.
func (d *Directory) ChangeCredential(ctx context.Context, id int64, oldPassword, newPassword string) error {
	idx := d.indexByID(id)
	if idx < 0 {
		return common.ErrNotFound
	}
	if !verifyPassword(d.accounts[idx].PasswordHash, oldPassword) {
		return common.ErrInvalidCredentials
	}
	if len(newPassword) < validation.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, validation.MinPasswordLength)
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hashing credential: %w", err)
	}

	next := slices.Clone(d.accounts)
	next[idx].PasswordHash = hash
	return d.persist(ctx, next)
}

// UpdatePreferences overwrites the preferences record unconditionally.
func (d *Directory) UpdatePreferences(ctx context.Context, id int64, prefs models.Preferences) error {
	idx := d.indexByID(id)
	if idx < 0 {
		return common.ErrNotFound
	}

	next := slices.Clone(d.accounts)
	next[idx].Preferences = prefs
	return d.persist(ctx, next)
}

// UpdateImage replaces the profile image. The data URL must be fully
// decoded before the call.
func (d *Directory) UpdateImage(ctx context.Context, id int64, dataURL string) (*models.Account, error) {
	idx := d.indexByID(id)
	if idx < 0 {
		return nil, common.ErrNotFound
	}

	next := slices.Clone(d.accounts)
	next[idx].Image = dataURL
	if err := d.persist(ctx, next); err != nil {
		return nil, err
	}

	out := next[idx]
	return &out, nil
}

// ByID returns a copy of the account with the given id.
func (d *Directory) ByID(id int64) (*models.Account, error) {
	idx := d.indexByID(id)
	if idx < 0 {
		return nil, common.ErrNotFound
	}
	out := d.accounts[idx]
	return &out, nil
}

func (d *Directory) findByEmail(email string) *models.Account {
	for i := range d.accounts {
		if d.accounts[i].Email == email {
			return &d.accounts[i]
		}
	}
	return nil
}

func (d *Directory) indexByID(id int64) int {
	return slices.IndexFunc(d.accounts, func(a models.Account) bool { return a.ID == id })
}
