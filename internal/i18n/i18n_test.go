// internal/i18n/i18n_test.go
package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslations(t *testing.T) {
	require.NoError(t, Initialize("locales"))

	assert.Equal(t, "Application not found", T("en", "application.not_found"))
	assert.Equal(t, "Lamaran tidak ditemukan", T("id", "application.not_found"))

	// Unknown languages fall back to English.
	assert.Equal(t, "Application not found", T("fr", "application.not_found"))

	// Unknown keys come back verbatim rather than crashing a response.
	assert.Equal(t, "no.such.key", T("en", "no.such.key"))

	// Formatting arguments are interpolated.
	assert.Equal(t, "Invalid input", T("en", KeyValidationInvalid, "input"))
}
