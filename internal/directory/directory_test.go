package directory

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pentoria/pentoria/internal/common"
	"github.com/pentoria/pentoria/internal/logging"
	"github.com/pentoria/pentoria/internal/models"
	"github.com/pentoria/pentoria/internal/store"

	_ "modernc.org/sqlite"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupStore(t *testing.T) store.Store {
	t.Helper()
	db, err := store.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return store.NewSQLiteStore(db)
}

func validRegistration() Registration {
	return Registration{
		Name:     "Ada Obi",
		Email:    "ada@example.com",
		Phone:    "08031234567",
		Password: "secret1",
		Confirm:  "secret1",
		Kind:     models.AccountKindBuyer,
	}
}

func TestRegisterThenAuthenticate_ReturnsSameAccount(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	d, err := New(ctx, s, testLogger())
	require.NoError(t, err)

	created, err := d.Register(ctx, validRegistration())
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Equal(t, 4.5, created.Rating)
	assert.True(t, created.Preferences.EmailNotifications)
	assert.Equal(t, "NGN", created.Preferences.Currency)

	got, err := d.Authenticate(ctx, "ada@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Email, got.Email)
}

func TestRegister_DuplicateEmailFails(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	d, err := New(ctx, s, testLogger())
	require.NoError(t, err)

	_, err = d.Register(ctx, validRegistration())
	require.NoError(t, err)

	second := validRegistration()
	second.Name = "Someone Else"
	second.Phone = "08098765432"
	_, err = d.Register(ctx, second)
	require.ErrorIs(t, err, common.ErrDuplicateEmail)
}

func TestRegister_FirstFailingRuleWins(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Registration)
		want   string
	}{
		{"bad email", func(r *Registration) { r.Email = "nope"; r.Phone = "bad" }, "valid email"},
		{"bad phone", func(r *Registration) { r.Phone = "12345"; r.Confirm = "other" }, "phone number"},
		{"confirmation mismatch", func(r *Registration) { r.Confirm = "other"; r.Password = "short" }, "do not match"},
		{"short password", func(r *Registration) { r.Password = "abc"; r.Confirm = "abc" }, "at least 6"},
		{"missing business name", func(r *Registration) { r.Kind = models.AccountKindSeller }, "business name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New(context.Background(), setupStore(t), testLogger())
			require.NoError(t, err)

			r := validRegistration()
			tt.mutate(&r)

			_, err = d.Register(context.Background(), r)
			require.ErrorIs(t, err, common.ErrValidation)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRegister_SellerRequiresAndStoresBusinessName(t *testing.T) {
	d, err := New(context.Background(), setupStore(t), testLogger())
	require.NoError(t, err)

	r := validRegistration()
	r.Kind = models.AccountKindSeller
	r.BusinessName = "Obi Traders"

	acct, err := d.Register(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, "Obi Traders", acct.BusinessName)
	assert.Equal(t, "Obi Traders", acct.DisplayName())
}

func TestAuthenticate_WrongPasswordOrUnknownEmail(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	d, err := New(ctx, s, testLogger())
	require.NoError(t, err)

	_, err = d.Register(ctx, validRegistration())
	require.NoError(t, err)

	_, err = d.Authenticate(ctx, "ada@example.com", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)

	_, err = d.Authenticate(ctx, "nobody@example.com", "secret1")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestAuthenticate_AcceptsLegacyStoredHash(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	// an accounts collection carrying a legacy-format hash
	seed := []models.Account{{
		ID:           1,
		Name:         "Old Timer",
		Email:        "old@example.com",
		Phone:        "08031234567",
		PasswordHash: LegacyHash("secret1"),
		Kind:         models.AccountKindBuyer,
		CreatedAt:    time.Now(),
		Rating:       4.5,
		Preferences:  models.DefaultPreferences(),
	}}
	data, err := json.Marshal(seed)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, store.KeyAccounts, data))

	d, err := New(ctx, s, testLogger())
	require.NoError(t, err)

	got, err := d.Authenticate(ctx, "old@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
}

func TestUpdateProfile_ValidatesAndPersists(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	d, err := New(ctx, s, testLogger())
	require.NoError(t, err)

	acct, err := d.Register(ctx, validRegistration())
	require.NoError(t, err)

	_, err = d.UpdateProfile(ctx, acct.ID, ProfileUpdate{Name: "Ada", Email: "bad", Phone: acct.Phone})
	require.ErrorIs(t, err, common.ErrValidation)

	updated, err := d.UpdateProfile(ctx, acct.ID, ProfileUpdate{
		Name:  "Ada N. Obi",
		Email: "ada.n@example.com",
		Phone: "07011122233",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada N. Obi", updated.Name)

	// survives a reload
	d2, err := New(ctx, s, testLogger())
	require.NoError(t, err)
	got, err := d2.ByID(acct.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada.n@example.com", got.Email)
}

func TestUpdateProfile_EmailTakenByAnotherAccount(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	d, err := New(ctx, s, testLogger())
	require.NoError(t, err)

	first, err := d.Register(ctx, validRegistration())
	require.NoError(t, err)

	second := validRegistration()
	second.Email = "ben@example.com"
	_, err = d.Register(ctx, second)
	require.NoError(t, err)

	_, err = d.UpdateProfile(ctx, first.ID, ProfileUpdate{Name: "Ada", Email: "ben@example.com", Phone: first.Phone})
	require.ErrorIs(t, err, common.ErrDuplicateEmail)
}

func TestUpdateProfile_BusinessNameOnlyForSellers(t *testing.T) {
	d, err := New(context.Background(), setupStore(t), testLogger())
	require.NoError(t, err)

	buyer, err := d.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	updated, err := d.UpdateProfile(context.Background(), buyer.ID, ProfileUpdate{
		Name: buyer.Name, Email: buyer.Email, Phone: buyer.Phone, BusinessName: "Sneaky Ltd",
	})
	require.NoError(t, err)
	assert.Empty(t, updated.BusinessName)
}

func TestChangeCredential(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	d, err := New(ctx, s, testLogger())
	require.NoError(t, err)

	acct, err := d.Register(ctx, validRegistration())
	require.NoError(t, err)

	err = d.ChangeCredential(ctx, acct.ID, "wrong", "newsecret")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)

	err = d.ChangeCredential(ctx, acct.ID, "secret1", "tiny")
	require.ErrorIs(t, err, common.ErrValidation)

	require.NoError(t, d.ChangeCredential(ctx, acct.ID, "secret1", "newsecret"))

	_, err = d.Authenticate(ctx, acct.Email, "secret1")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)

	_, err = d.Authenticate(ctx, acct.Email, "newsecret")
	require.NoError(t, err)
}

func TestUpdatePreferences_UnconditionalOverwrite(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	d, err := New(ctx, s, testLogger())
	require.NoError(t, err)

	acct, err := d.Register(ctx, validRegistration())
	require.NoError(t, err)

	prefs := models.Preferences{Language: "fr", Currency: "NGN", PromotionalEmails: true}
	require.NoError(t, d.UpdatePreferences(ctx, acct.ID, prefs))

	got, err := d.ByID(acct.ID)
	require.NoError(t, err)
	assert.Equal(t, prefs, got.Preferences)
}

func TestStaleAccountID_ReturnsNotFound(t *testing.T) {
	d, err := New(context.Background(), setupStore(t), testLogger())
	require.NoError(t, err)

	_, err = d.ByID(42)
	require.ErrorIs(t, err, common.ErrNotFound)

	err = d.UpdatePreferences(context.Background(), 42, models.Preferences{})
	require.ErrorIs(t, err, common.ErrNotFound)
}
