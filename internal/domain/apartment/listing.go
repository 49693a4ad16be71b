package apartment

import (
	"sort"
	"strconv"

	"github.com/sitedesk/sitedesk/internal/shared/utils"
)

// Slot is one apartment of a block as shown to administrators: either a
// materialized row or a phantom number within capacity that has no row yet.
type Slot struct {
	ID            uint
	ApartmentNo   string
	ResidentCount int
	IsOccupied    bool
	Materialized  bool
}

// Slots merges materialized apartments with phantom slots for every number in
// 1..capacity that has no row, ordered naturally by apartment number.
func Slots(capacity int, rows []*Apartment) []Slot {
	taken := make(map[string]struct{}, len(rows))
	slots := make([]Slot, 0, max(capacity, len(rows)))

	for _, a := range rows {
		taken[a.ApartmentNo()] = struct{}{}
		if n, ok := a.Number(); ok {
			taken[strconv.Itoa(n)] = struct{}{}
		}
		slots = append(slots, Slot{
			ID:            a.ID(),
			ApartmentNo:   a.ApartmentNo(),
			ResidentCount: a.ResidentCount(),
			IsOccupied:    a.IsOccupied(),
			Materialized:  true,
		})
	}

	for n := 1; n <= capacity; n++ {
		no := strconv.Itoa(n)
		if _, ok := taken[no]; ok {
			continue
		}
		slots = append(slots, Slot{ApartmentNo: no})
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return utils.CompareApartmentNo(slots[i].ApartmentNo, slots[j].ApartmentNo) < 0
	})
	return slots
}
