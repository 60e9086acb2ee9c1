package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacyHash_MatchesOriginalAlgorithm(t *testing.T) {
	// h("abc") = 97*31*31 + 98*31 + 99 = 96354 = 0x17862
	assert.Equal(t, "17862", LegacyHash("abc"))
	assert.Equal(t, "0", LegacyHash(""))
}

func TestLegacyHash_NegativeAccumulatorUsesAbsoluteValue(t *testing.T) {
	// long inputs wrap the 32-bit accumulator; the rendered value is
	// always the absolute value, so it never carries a sign
	h := LegacyHash("a rather long password that wraps the accumulator")
	assert.NotEmpty(t, h)
	assert.NotContains(t, h, "-")
}

func TestVerifyPassword_BcryptAndLegacy(t *testing.T) {
	bc, err := hashPassword("hunter22")
	require.NoError(t, err)

	assert.True(t, verifyPassword(bc, "hunter22"))
	assert.False(t, verifyPassword(bc, "hunter23"))

	legacy := LegacyHash("hunter22")
	assert.True(t, verifyPassword(legacy, "hunter22"))
	assert.False(t, verifyPassword(legacy, "hunter23"))
}
