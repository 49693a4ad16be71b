package due

import "github.com/sitedesk/sitedesk/internal/shared/errors"

var (
	ErrInvalidPeriod        = errors.NewValidationError("Geçersiz aidat dönemi")
	ErrInvalidAmount        = errors.NewValidationError("Aidat tutarı negatif olamaz")
	ErrInvalidPaymentStatus = errors.NewValidationError("Geçersiz ödeme durumu")
)
