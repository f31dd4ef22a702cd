package vlist

import (
	"fmt"
	"iter"
	"strings"
)

// List is an ordered collection of named typed values. The zero value is
// an empty list ready for use, but most callers go through NewList.
//
// Lists are not safe for concurrent use.
type List struct {
	slots []*slot

	updateDepth int  // BeginUpdate nesting level
	anyChanged  bool // structural change happened while depth > 0

	observer       Observer
	onListChanged  func()
	onValueChanged func(index int)
}

func NewList() *List {
	return &List{}
}

func (l *List) Count() int {
	return len(l.slots)
}

func (l *List) Cap() int {
	return cap(l.slots)
}

// Name returns the name of the value at index i.
func (l *List) Name(i int) (string, error) {
	if !checkIndex(i, len(l.slots)) {
		return "", indexErr(i, len(l.slots))
	}
	return l.slots[i].name, nil
}

// KindAt returns the kind of the value at index i.
func (l *List) KindAt(i int) (Kind, error) {
	if !checkIndex(i, len(l.slots)) {
		return 0, indexErr(i, len(l.slots))
	}
	return l.slots[i].payload.kind(), nil
}

// ValueAt returns the Go-native value at index i: bool, int32, int64,
// float64, time.Time, Currency, string, or the opaque pointer handle.
func (l *List) ValueAt(i int) (any, error) {
	if !checkIndex(i, len(l.slots)) {
		return nil, indexErr(i, len(l.slots))
	}
	return l.slots[i].value(), nil
}

// IndexOf returns the index of the named value, or -1 if the name is
// absent. Names compare under Unicode simple case folding
// (strings.EqualFold); the collation is ordinal, never locale-dependent.
func (l *List) IndexOf(name string) int {
	for i, s := range l.slots {
		if strings.EqualFold(s.name, name) {
			return i
		}
	}
	return -1
}

// IndexOfKind returns the index of the named value of the given kind, or
// -1 if the name is absent or stored under a different kind.
func (l *List) IndexOfKind(name string, kind Kind) int {
	for i, s := range l.slots {
		if s.payload.kind() == kind && strings.EqualFold(s.name, name) {
			return i
		}
	}
	return -1
}

func (l *List) Find(name string) (index int, found bool) {
	index = l.IndexOf(name)
	return index, index >= 0
}

func (l *List) FindKind(name string, kind Kind) (index int, found bool) {
	index = l.IndexOfKind(name, kind)
	return index, index >= 0
}

// Names iterates over the value names in list order.
func (l *List) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, s := range l.slots {
			if !yield(s.name) {
				return
			}
		}
	}
}

// NamedValue is a snapshot of one slot, as produced by All.
type NamedValue struct {
	Name  string
	Kind  Kind
	Value any
}

// All iterates over snapshots of the values in list order.
func (l *List) All() iter.Seq2[int, NamedValue] {
	return func(yield func(int, NamedValue) bool) {
		for i, s := range l.slots {
			if !yield(i, NamedValue{s.name, s.payload.kind(), s.value()}) {
				return
			}
		}
	}
}

// Add appends a fresh zero-valued slot with the given name and kind, and
// returns its index. Fails with ErrDuplicateName if the name already
// exists under any kind.
func (l *List) Add(name string, kind Kind) (int, error) {
	if l.IndexOf(name) >= 0 {
		return -1, nameErr(name, kind, ErrDuplicateName)
	}
	l.slots = append(growSlots(l.slots), newSlot(name, kind))
	l.notifyListChanged()
	return len(l.slots) - 1, nil
}

// Insert adds a fresh zero-valued slot at index i, shifting later slots one
// position down. Inserting at Count() is equivalent to Add.
func (l *List) Insert(i int, name string, kind Kind) error {
	if l.IndexOf(name) >= 0 {
		return nameErr(name, kind, ErrDuplicateName)
	}
	n := len(l.slots)
	if i < 0 || i > n {
		return indexErr(i, n)
	}
	l.slots = append(growSlots(l.slots), nil)
	copy(l.slots[i+1:], l.slots[i:n])
	l.slots[i] = newSlot(name, kind)
	l.notifyListChanged()
	return nil
}

// Move removes the slot at src and reinserts it at dst, shifting the slots
// between them by one position. No-op if src == dst.
func (l *List) Move(src, dst int) error {
	n := len(l.slots)
	if !checkIndex(src, n) {
		return indexErr(src, n)
	}
	if !checkIndex(dst, n) {
		return indexErr(dst, n)
	}
	if src == dst {
		return nil
	}
	s := l.slots[src]
	if src < dst {
		copy(l.slots[src:], l.slots[src+1:dst+1])
	} else {
		copy(l.slots[dst+1:], l.slots[dst:src])
	}
	l.slots[dst] = s
	l.notifyListChanged()
	return nil
}

// Exchange swaps the slots at i and j in place. No-op if i == j.
func (l *List) Exchange(i, j int) error {
	n := len(l.slots)
	if !checkIndex(i, n) {
		return indexErr(i, n)
	}
	if !checkIndex(j, n) {
		return indexErr(j, n)
	}
	if i == j {
		return nil
	}
	l.slots[i], l.slots[j] = l.slots[j], l.slots[i]
	l.notifyListChanged()
	return nil
}

// Delete removes the slot at index i, shifting later slots one position up.
func (l *List) Delete(i int) error {
	n := len(l.slots)
	if !checkIndex(i, n) {
		return indexErr(i, n)
	}
	copy(l.slots[i:], l.slots[i+1:])
	l.slots[n-1] = nil // release the vacated cell
	l.slots = shrinkSlots(l.slots[:n-1])
	l.notifyListChanged()
	return nil
}

// Remove deletes the named value and returns its former index, or -1 if
// the name is absent (absence is not an error and does not mutate).
func (l *List) Remove(name string) int {
	i := l.IndexOf(name)
	if i < 0 {
		return -1
	}
	ensure(l.Delete(i))
	return i
}

// Clear removes all values and releases the backing storage. It always
// notifies, even when the list was already empty.
func (l *List) Clear() {
	l.slots = nil
	l.notifyListChanged()
}

// SetCap resizes the backing storage to exactly n slots. When n is below
// the current count, the slots at indices [n, count) are destroyed. No-op
// when n equals the current capacity.
func (l *List) SetCap(n int) error {
	if n < 0 {
		return fmt.Errorf("capacity %d: %w", n, ErrInvalidValue)
	}
	if n == cap(l.slots) {
		return nil
	}
	count := len(l.slots)
	if count > n {
		count = n
	}
	dup := make([]*slot, count, n)
	copy(dup, l.slots[:count])
	l.slots = dup
	l.notifyListChanged()
	return nil
}

// Clone returns a deep copy of the list (text buffers duplicated).
// Observers and pending notification state are not copied.
func (l *List) Clone() *List {
	dup := &List{slots: make([]*slot, len(l.slots), cap(l.slots))}
	for i, s := range l.slots {
		dup.slots[i] = s.clone()
	}
	return dup
}
