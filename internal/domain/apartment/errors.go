package apartment

import "github.com/sitedesk/sitedesk/internal/shared/errors"

var (
	ErrApartmentNotFound   = errors.NewNotFoundError("Daire bulunamadı")
	ErrApartmentNoRequired = errors.NewValidationError("Daire numarası gerekli")
	ErrApartmentExists     = errors.NewConflictError("Bu daire zaten mevcut")
	ErrBlockRequired       = errors.NewValidationError("Daire numarası için blok seçilmeli")
)
