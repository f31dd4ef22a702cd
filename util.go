package vlist

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func ensure(err error) {
	if err != nil {
		panic(err)
	}
}

// checkIndex reports whether i is a valid slot index for the current count.
func checkIndex(i, count int) bool {
	return i >= 0 && i < count
}

const minCap = 4

// growSlots makes room for at least one more slot, doubling capacity when
// the backing array is full.
func growSlots(slots []*slot) []*slot {
	if len(slots) < cap(slots) {
		return slots
	}
	newCap := cap(slots) * 2
	if newCap < minCap {
		newCap = minCap
	}
	dup := make([]*slot, len(slots), newCap)
	copy(dup, slots)
	return dup
}

// shrinkSlots releases excess capacity once utilization drops below a
// quarter of the backing array.
func shrinkSlots(slots []*slot) []*slot {
	if cap(slots) <= minCap || len(slots) >= cap(slots)/4 {
		return slots
	}
	dup := make([]*slot, len(slots), cap(slots)/2)
	copy(dup, slots)
	return dup
}
