// Package models defines the marketplace entities persisted by the store.
// JSON field names follow the original storage format so existing data
// round-trips unchanged.
package models

import "time"

// AccountKind classifies an account.
type AccountKind string

const (
	AccountKindBuyer  AccountKind = "buyer"
	AccountKindSeller AccountKind = "seller"
)

// Preferences holds per-account notification and locale settings.
type Preferences struct {
	EmailNotifications bool   `json:"emailNotifications"`
	SMSNotifications   bool   `json:"smsNotifications"`
	OrderUpdates       bool   `json:"orderUpdates"`
	PromotionalEmails  bool   `json:"promotionalEmails"`
	Language           string `json:"language"`
	Currency           string `json:"currency"`
}

// DefaultPreferences returns the settings assigned at registration.
func DefaultPreferences() Preferences {
	return Preferences{
		EmailNotifications: true,
		SMSNotifications:   false,
		OrderUpdates:       true,
		PromotionalEmails:  false,
		Language:           "en",
		Currency:           "NGN",
	}
}

// Account is a registered user, either buyer or seller.
//
// Invariants: Email is unique within the directory; BusinessName is
// present iff Kind is seller.
type Account struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone"`
	PasswordHash string      `json:"password"`
	Kind         AccountKind `json:"accountType"`
	BusinessName string      `json:"businessName,omitempty"`
	Image        string      `json:"profilePicture,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	Orders       int         `json:"orders"`
	Rating       float64     `json:"rating"`
	Preferences  Preferences `json:"preferences"`
}

// IsSeller reports whether the account may list products.
func (a *Account) IsSeller() bool {
	return a != nil && a.Kind == AccountKindSeller
}

// DisplayName is the seller name shown on listings: the business name
// when present, the personal name otherwise.
func (a *Account) DisplayName() string {
	if a.BusinessName != "" {
		return a.BusinessName
	}
	return a.Name
}
