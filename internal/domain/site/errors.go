package site

import "github.com/sitedesk/sitedesk/internal/shared/errors"

var (
	ErrSiteNotFound     = errors.NewNotFoundError("Site bulunamadı")
	ErrSiteRefRequired  = errors.NewValidationError("Site kodu veya kimliği gerekli")
	ErrSiteNameRequired = errors.NewValidationError("Site adı gerekli")
	ErrInvalidDueAmount = errors.NewValidationError("Aidat tutarı negatif olamaz")
	ErrSiteCodeTaken    = errors.NewConflictError("Bu site kodu zaten kullanılıyor")
)
