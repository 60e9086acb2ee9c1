package directory

import (
	"strconv"
	"strings"
	"unicode/utf16"

	"golang.org/x/crypto/bcrypt"
)

// LegacyHash reproduces the credential hash of the original storage
// format: a 32-bit rolling hash (h = h*31 + c over UTF-16 code units,
// wrapping), absolute value, rendered as lowercase hexadecimal.
// It exists only so accounts stored with the legacy format keep
// authenticating; it is not a security boundary.
func LegacyHash(password string) string {
	var h int32
	for _, c := range utf16.Encode([]rune(password)) {
		h = h*31 + int32(c)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return strconv.FormatInt(v, 16)
}

// hashPassword produces the hash stored for newly registered accounts.
func hashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// verifyPassword checks password against a stored hash, accepting both
// bcrypt hashes and the legacy rolling-hash format.
func verifyPassword(stored, password string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return stored == LegacyHash(password)
}
