package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// SiteCodeAlphabet is uppercase alphanumerics without easily confused
	// glyphs (0/O, 1/I).
	SiteCodeAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

	// SiteCodeLength is the length of generated site codes.
	SiteCodeLength = 6
)

// Generate returns a cryptographically random string of length characters
// drawn from alphabet.
func Generate(alphabet string, length int) (string, error) {
	if length <= 0 || alphabet == "" {
		return "", fmt.Errorf("invalid id parameters: length=%d alphabet=%q", length, alphabet)
	}

	result := make([]byte, length)
	max := big.NewInt(int64(len(alphabet)))
	for i := range result {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[n.Int64()]
	}
	return string(result), nil
}

// NewSiteCode returns a fresh external site code.
func NewSiteCode() (string, error) {
	return Generate(SiteCodeAlphabet, SiteCodeLength)
}
