package resident

import "github.com/sitedesk/sitedesk/internal/shared/errors"

var (
	ErrResidentNotFound  = errors.NewNotFoundError("Sakin bulunamadı")
	ErrPhoneTaken        = errors.NewConflictError("Bu telefon numarası zaten kayıtlı")
	ErrFullNameRequired  = errors.NewValidationError("Ad soyad gerekli")
	ErrPhoneRequired     = errors.NewValidationError("Telefon numarası gerekli")
	ErrInvalidPhone      = errors.NewValidationError("Geçersiz telefon numarası")
	ErrPasswordTooShort  = errors.NewValidationError("Şifre en az 6 karakter olmalı")
	ErrPasswordTooLong   = errors.NewValidationError("Şifre en fazla 72 bayt olabilir")
	ErrResidentNotInSite = errors.NewForbiddenError("Bu sakin bu siteye ait değil")
)
