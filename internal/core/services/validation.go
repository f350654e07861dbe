package services

import (
	"time"

	"github.com/SscSPs/precatorio_marketplace/internal/apperrors"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

func requireNonNegative(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return apperrors.NewFieldValidationError(field, "must not be negative")
	}
	return nil
}

func requirePercent(field string, v decimal.Decimal) error {
	if v.IsNegative() || v.GreaterThan(hundred) {
		return apperrors.NewFieldValidationError(field, "must be between 0 and 100")
	}
	return nil
}

func parseDate(field, s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, apperrors.NewFieldValidationError(field, "must be a date in YYYY-MM-DD format")
	}
	return t, nil
}
