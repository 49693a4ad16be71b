package block

import "github.com/sitedesk/sitedesk/internal/shared/errors"

var (
	ErrBlockNotFound          = errors.NewNotFoundError("Blok bulunamadı")
	ErrBlockNameTaken         = errors.NewConflictError("Bu isimde bir blok zaten mevcut")
	ErrBlockNameRequired      = errors.NewValidationError("Blok adı gerekli")
	ErrInvalidApartmentCount  = errors.NewValidationError("Daire sayısı pozitif bir tam sayı olmalı")
	ErrBlockNotInSite         = errors.NewForbiddenError("Bu blok bu siteye ait değil")
	ErrCapacityBelowOccupancy = errors.NewValidationError("Daire sayısı kullanımdaki en yüksek daire numarasından küçük olamaz")
)
