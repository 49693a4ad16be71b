package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitedesk/sitedesk/internal/shared/errors"
)

func TestNewBlock(t *testing.T) {
	tests := []struct {
		name    string
		siteID  uint
		block   string
		count   int
		wantErr error
	}{
		{"valid", 1, "A Blok", 12, nil},
		{"blank name", 1, "   ", 12, ErrBlockNameRequired},
		{"zero capacity", 1, "A Blok", 0, ErrInvalidApartmentCount},
		{"negative capacity", 1, "A Blok", -3, ErrInvalidApartmentCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBlock(tt.siteID, tt.block, tt.count, "")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, errors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "A Blok", b.Name())
			assert.Equal(t, 12, b.ApartmentCount())
			assert.Zero(t, b.ResidentCount())
		})
	}
}

func TestNewBlock_RequiresSite(t *testing.T) {
	_, err := NewBlock(0, "A", 1, "")
	assert.Error(t, err)
}

func TestBlock_SetApartmentCount(t *testing.T) {
	b, err := NewBlock(1, "A", 10, "")
	require.NoError(t, err)

	assert.ErrorIs(t, b.SetApartmentCount(0, 0), ErrInvalidApartmentCount)

	err = b.SetApartmentCount(5, 8)
	assert.ErrorIs(t, err, ErrCapacityBelowOccupancy)
	assert.Equal(t, 10, b.ApartmentCount())

	require.NoError(t, b.SetApartmentCount(8, 8))
	assert.Equal(t, 8, b.ApartmentCount())

	require.NoError(t, b.SetApartmentCount(2, 0))
	assert.Equal(t, 2, b.ApartmentCount())
}

func TestBlock_NeedsCapacityFor(t *testing.T) {
	b, err := NewBlock(1, "A", 5, "")
	require.NoError(t, err)

	assert.False(t, b.NeedsCapacityFor(5))
	assert.True(t, b.NeedsCapacityFor(8))
}

func TestBlock_Rename(t *testing.T) {
	b, err := NewBlock(1, "A", 5, "")
	require.NoError(t, err)

	assert.ErrorIs(t, b.Rename(" "), ErrBlockNameRequired)
	require.NoError(t, b.Rename(" B Blok "))
	assert.Equal(t, "B Blok", b.Name())
}
