// Package setutil provides small id set helpers.
package setutil

// UintSet is an insertion-ordered set of non-zero uint ids.
type UintSet struct {
	items map[uint]struct{}
	order []uint
}

// NewUintSet returns a set holding the non-zero ids given.
func NewUintSet(ids ...uint) *UintSet {
	s := &UintSet{items: make(map[uint]struct{}, len(ids))}
	s.AddAll(ids)
	return s
}

// Add inserts id. Zero ids are ignored; they mean "none" throughout the
// domain (nullable foreign keys).
func (s *UintSet) Add(id uint) {
	if id == 0 {
		return
	}
	if _, ok := s.items[id]; ok {
		return
	}
	s.items[id] = struct{}{}
	s.order = append(s.order, id)
}

func (s *UintSet) AddAll(ids []uint) {
	for _, id := range ids {
		s.Add(id)
	}
}

func (s *UintSet) Has(id uint) bool {
	_, ok := s.items[id]
	return ok
}

// ToSlice returns the ids in insertion order.
func (s *UintSet) ToSlice() []uint {
	out := make([]uint, len(s.order))
	copy(out, s.order)
	return out
}

func (s *UintSet) Len() int {
	return len(s.order)
}
