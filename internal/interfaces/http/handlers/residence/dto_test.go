package residence

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleString_AcceptsStringsAndNumbers(t *testing.T) {
	tests := []struct {
		name string
		body string
		want *string
	}{
		{name: "string", body: `{"apartment_no":"D-4"}`, want: strPtr("D-4")},
		{name: "number", body: `{"apartment_no":12}`, want: strPtr("12")},
		{name: "null", body: `{"apartment_no":null}`, want: nil},
		{name: "absent", body: `{}`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req UpdateResidentRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, req.ToCommand(1, 2).Placement.ApartmentNo)
		})
	}
}

func TestFlexibleString_RejectsOtherTypes(t *testing.T) {
	for _, body := range []string{`{"apartment_no":true}`, `{"apartment_no":[1]}`, `{"apartment_no":{}}`} {
		var req CreateResidentRequest
		assert.Error(t, json.Unmarshal([]byte(body), &req), body)
	}
}

func TestCreateBlockRequest_DescriptionOptional(t *testing.T) {
	req := CreateBlockRequest{BlockName: "A", ApartmentCount: 4}
	assert.Empty(t, req.ToCommand(3).Description)

	req.Description = strPtr("Kuzey")
	assert.Equal(t, "Kuzey", req.ToCommand(3).Description)
}

func strPtr(s string) *string { return &s }
