package resident

import (
	"strings"

	"github.com/ttacon/libphonenumber"
)

// MinPasswordLength applies to passwords set by administrators.
const MinPasswordLength = 6

// NormalizePhone parses raw in the context of region (ISO 3166 alpha-2,
// used when raw has no country prefix) and returns it in E.164 form.
func NormalizePhone(raw, region string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrPhoneRequired
	}
	num, err := libphonenumber.Parse(raw, strings.ToUpper(region))
	if err != nil {
		return "", ErrInvalidPhone.WithDetails(err.Error())
	}
	if !libphonenumber.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}
	return libphonenumber.Format(num, libphonenumber.E164), nil
}
