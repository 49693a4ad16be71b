package resident

import "strings"

// ResidentType tells owners from tenants.
type ResidentType string

const (
	ResidentTypeOwner ResidentType = "OWNER"
	ResidentTypeHirer ResidentType = "HIRER"
)

func (t ResidentType) String() string { return string(t) }

// NormalizeResidentType maps client input to a canonical type. Besides the
// canonical names it accepts the legacy status value "active" as HIRER;
// everything else, including "inactive" and blank input, becomes OWNER.
func NormalizeResidentType(raw string) ResidentType {
	v := strings.TrimSpace(raw)
	switch {
	case strings.EqualFold(v, string(ResidentTypeOwner)):
		return ResidentTypeOwner
	case strings.EqualFold(v, string(ResidentTypeHirer)):
		return ResidentTypeHirer
	case strings.EqualFold(v, "active"):
		return ResidentTypeHirer
	default:
		return ResidentTypeOwner
	}
}

// AccountStatus of the resident's login account. Only ACTIVE residents are
// listed on the site roster, counted as occupants and inherited from when
// seeding dues.
type AccountStatus string

const (
	AccountStatusActive  AccountStatus = "ACTIVE"
	AccountStatusPassive AccountStatus = "PASSIVE"
)

func (s AccountStatus) IsValid() bool {
	return s == AccountStatusActive || s == AccountStatusPassive
}
