package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/sitedesk/sitedesk/internal/domain/resident"
)

// maxResidentPasswordBytes is the longest input bcrypt accepts.
const maxResidentPasswordBytes = 72

// ResidentPasswordHasher stores resident login passwords as bcrypt hashes.
// The plain password never reaches the users table.
type ResidentPasswordHasher struct {
	cost int
}

// NewResidentPasswordHasher falls back to bcrypt.DefaultCost when the
// configured auth.password.bcrypt_cost is out of range.
func NewResidentPasswordHasher(cost int) *ResidentPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &ResidentPasswordHasher{cost: cost}
}

// Hash rejects passwords bcrypt would refuse with resident.ErrPasswordTooLong,
// so the caller sees a validation error instead of a storage failure.
func (h *ResidentPasswordHasher) Hash(password string) (string, error) {
	if len(password) > maxResidentPasswordBytes {
		return "", resident.ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash resident password: %w", err)
	}
	return string(hash), nil
}
