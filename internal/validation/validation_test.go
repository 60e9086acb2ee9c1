package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"plain address", "ada@example.com", true},
		{"subdomain", "ada@mail.example.co", true},
		{"missing at", "ada.example.com", false},
		{"missing tld", "ada@example", false},
		{"embedded space", "ada b@example.com", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidEmail(tt.email))
		})
	}
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{"local with leading zero", "08031234567", true},
		{"country code", "+2348031234567", true},
		{"bare ten digits", "8031234567", true},
		{"spaces ignored", "0803 123 4567", true},
		{"wrong prefix digit", "06031234567", false},
		{"too short", "080312345", false},
		{"too long", "080312345678", false},
		{"letters", "080312345ab", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPhone(tt.phone))
		})
	}
}

func TestSanitize_StripsDangerousCharacters(t *testing.T) {
	assert.Equal(t, "scriptalert(1)/script", Sanitize(`<script>alert('1')</script>`))
	assert.Equal(t, "DROP TABLE users", Sanitize(`DROP TABLE users;--`))
	assert.Equal(t, "plain text", Sanitize("  plain text  "))
	assert.Equal(t, "acommentb", Sanitize("a/*comment*/b"))
}
