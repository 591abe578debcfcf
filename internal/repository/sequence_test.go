package repository

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"clinicare/internal/models"
)

func TestFormatCode(t *testing.T) {
	assert.Equal(t, "PAT-001", FormatCode(models.PatientCodePrefix, 1))
	assert.Equal(t, "PAT-004", FormatCode(models.PatientCodePrefix, 4))
	assert.Equal(t, "SPEC-042", FormatCode(models.SpecialistCodePrefix, 42))
	assert.Equal(t, "PAT-999", FormatCode(models.PatientCodePrefix, 999))
	// Past three digits the number widens instead of wrapping
	assert.Equal(t, "PAT-1000", FormatCode(models.PatientCodePrefix, 1000))
}

func TestFormatCodeMatchesPatientPattern(t *testing.T) {
	pattern := regexp.MustCompile(`^PAT-\d{3,}$`)
	previous := ""
	for value := int64(1); value <= 120; value++ {
		code := FormatCode(models.PatientCodePrefix, value)
		assert.Regexp(t, pattern, code)
		// Zero-padding keeps codes strictly increasing lexically as well
		assert.Greater(t, code, previous)
		previous = code
	}
}
