package repository

import (
	"fmt"

	"gorm.io/gorm"
)

// nextCode bumps the named code sequence atomically and formats the
// entity code. Running inside the provisioning transaction means a failed
// profile creation rolls the bump back, and concurrent callers can never
// observe the same value.
func nextCode(tx *gorm.DB, sequence, prefix string) (string, error) {
	var value int64
	err := tx.Raw(
		`INSERT INTO code_sequences (name, value) VALUES (?, 1)
		 ON CONFLICT (name) DO UPDATE SET value = code_sequences.value + 1
		 RETURNING value`,
		sequence,
	).Scan(&value).Error
	if err != nil {
		return "", err
	}
	return FormatCode(prefix, value), nil
}

// FormatCode renders an entity code like PAT-004. Values past 999 widen
// the number rather than wrap.
func FormatCode(prefix string, value int64) string {
	return fmt.Sprintf("%s-%03d", prefix, value)
}
