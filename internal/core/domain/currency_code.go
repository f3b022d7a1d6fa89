package domain

import (
	"fmt"
	"strings"

	"github.com/ptapp/purchase_txn_app/internal/apperrors"
)

// normalizeCurrencyCode trims, upper-cases and validates a 3-letter ISO-style
// currency code.
func normalizeCurrencyCode(code string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if len(normalized) != 3 {
		return "", fmt.Errorf("%w: currency code must be exactly 3 letters, got %q", apperrors.ErrValidation, code)
	}
	for _, r := range normalized {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("%w: currency code must contain only letters, got %q", apperrors.ErrValidation, code)
		}
	}
	return normalized, nil
}
