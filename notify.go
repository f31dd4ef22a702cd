package vlist

// Observer receives change notifications from a List. At most one observer
// is registered per list; it is independent of the free-function channels
// set via OnListChanged and OnValueChanged, and both channels fire when
// both are registered (observer first).
//
// Callbacks run synchronously on the mutating goroutine and may reenter
// the list, including nested BeginUpdate/EndUpdate.
type Observer interface {
	// ListChanged is called after any structural or capacity mutation.
	ListChanged(l *List)

	// ValueChanged is called after the value at index changes in place.
	ValueChanged(l *List, index int)
}

// SetObserver registers o as the notification target. Pass nil to remove.
func (l *List) SetObserver(o Observer) {
	l.observer = o
}

// OnListChanged registers a callback for the list-changed event. Pass nil
// to remove.
func (l *List) OnListChanged(f func()) {
	l.onListChanged = f
}

// OnValueChanged registers a callback for the value-changed event. Pass
// nil to remove.
func (l *List) OnValueChanged(f func(index int)) {
	l.onValueChanged = f
}

// BeginUpdate suspends notifications until the matching EndUpdate. Calls
// nest; delivery resumes when the nesting depth returns to zero.
func (l *List) BeginUpdate() {
	if l.updateDepth == 0 {
		l.anyChanged = false
	}
	l.updateDepth++
}

// EndUpdate closes the innermost BeginUpdate scope. When the outermost
// scope closes, it delivers at most one list-changed notification, then
// one value-changed notification per slot changed during the batch, in
// ascending index order. Unbalanced calls are ignored.
func (l *List) EndUpdate() {
	if l.updateDepth == 0 {
		return
	}
	l.updateDepth--
	if l.updateDepth > 0 {
		return
	}
	if l.anyChanged {
		l.anyChanged = false
		l.fireListChanged()
	}
	l.flushPendingValueNotifications()
}

// notifyListChanged fires the list-changed event, or defers it while
// notifications are suspended.
func (l *List) notifyListChanged() {
	if l.updateDepth > 0 {
		l.anyChanged = true
		return
	}
	l.fireListChanged()
}

// notifyValueChanged fires the value-changed event for one slot, or marks
// the slot dirty while notifications are suspended.
func (l *List) notifyValueChanged(index int) {
	if l.updateDepth > 0 {
		l.slots[index].dirty = true
		return
	}
	l.fireValueChanged(index)
}

// flushPendingValueNotifications replays one value-changed notification
// per dirty slot, ascending, clearing each flag as it is delivered.
// Callbacks may mutate the list, so the slot sequence is re-read on every
// step.
func (l *List) flushPendingValueNotifications() {
	for i := 0; i < len(l.slots); i++ {
		if l.slots[i].dirty {
			l.slots[i].dirty = false
			l.fireValueChanged(i)
		}
	}
}

func (l *List) fireListChanged() {
	if l.observer != nil {
		l.observer.ListChanged(l)
	}
	if l.onListChanged != nil {
		l.onListChanged()
	}
}

func (l *List) fireValueChanged(index int) {
	if l.observer != nil {
		l.observer.ValueChanged(l, index)
	}
	if l.onValueChanged != nil {
		l.onValueChanged(index)
	}
}
