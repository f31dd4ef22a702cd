package vlist

import "time"

// prepareValue returns the index of the named slot, creating a zero-valued
// slot of the requested kind when the name is missing. An existing name of
// a different kind fails with ErrTypeMismatch. Every typed setter goes
// through here.
func (l *List) prepareValue(name string, kind Kind) (int, error) {
	if i := l.IndexOf(name); i >= 0 {
		if l.slots[i].payload.kind() != kind {
			return -1, nameErr(name, kind, ErrTypeMismatch)
		}
		return i, nil
	}
	return l.Add(name, kind)
}

// lookupValue returns the index of the named slot of the given kind, or
// ErrUnknownName when the name is absent or stored under a different kind.
// Every typed getter goes through here.
func (l *List) lookupValue(name string, kind Kind) (int, error) {
	i := l.IndexOfKind(name, kind)
	if i < 0 {
		return -1, nameErr(name, kind, ErrUnknownName)
	}
	return i, nil
}

func (l *List) BoolValue(name string) (bool, error) {
	i, err := l.lookupValue(name, KindBool)
	if err != nil {
		return false, err
	}
	return bool(l.slots[i].payload.(boolPayload)), nil
}

func (l *List) SetBoolValue(name string, v bool) error {
	i, err := l.prepareValue(name, KindBool)
	if err != nil {
		return err
	}
	l.slots[i].payload = boolPayload(v)
	l.notifyValueChanged(i)
	return nil
}

func (l *List) Int32Value(name string) (int32, error) {
	i, err := l.lookupValue(name, KindInt32)
	if err != nil {
		return 0, err
	}
	return int32(l.slots[i].payload.(int32Payload)), nil
}

func (l *List) SetInt32Value(name string, v int32) error {
	i, err := l.prepareValue(name, KindInt32)
	if err != nil {
		return err
	}
	l.slots[i].payload = int32Payload(v)
	l.notifyValueChanged(i)
	return nil
}

func (l *List) Int64Value(name string) (int64, error) {
	i, err := l.lookupValue(name, KindInt64)
	if err != nil {
		return 0, err
	}
	return int64(l.slots[i].payload.(int64Payload)), nil
}

func (l *List) SetInt64Value(name string, v int64) error {
	i, err := l.prepareValue(name, KindInt64)
	if err != nil {
		return err
	}
	l.slots[i].payload = int64Payload(v)
	l.notifyValueChanged(i)
	return nil
}

func (l *List) FloatValue(name string) (float64, error) {
	i, err := l.lookupValue(name, KindFloat)
	if err != nil {
		return 0, err
	}
	return float64(l.slots[i].payload.(floatPayload)), nil
}

func (l *List) SetFloatValue(name string, v float64) error {
	i, err := l.prepareValue(name, KindFloat)
	if err != nil {
		return err
	}
	l.slots[i].payload = floatPayload(v)
	l.notifyValueChanged(i)
	return nil
}

func (l *List) TimeValue(name string) (time.Time, error) {
	i, err := l.lookupValue(name, KindDateTime)
	if err != nil {
		return time.Time{}, err
	}
	return time.Time(l.slots[i].payload.(timePayload)), nil
}

func (l *List) SetTimeValue(name string, v time.Time) error {
	i, err := l.prepareValue(name, KindDateTime)
	if err != nil {
		return err
	}
	l.slots[i].payload = timePayload(v)
	l.notifyValueChanged(i)
	return nil
}

func (l *List) CurrencyValue(name string) (Currency, error) {
	i, err := l.lookupValue(name, KindCurrency)
	if err != nil {
		return 0, err
	}
	return Currency(l.slots[i].payload.(currencyPayload)), nil
}

func (l *List) SetCurrencyValue(name string, v Currency) error {
	i, err := l.prepareValue(name, KindCurrency)
	if err != nil {
		return err
	}
	l.slots[i].payload = currencyPayload(v)
	l.notifyValueChanged(i)
	return nil
}

func (l *List) TextValue(name string) (string, error) {
	i, err := l.lookupValue(name, KindText)
	if err != nil {
		return "", err
	}
	return string(l.slots[i].payload.(textPayload)), nil
}

// SetTextValue stores a private copy of v; the slot never aliases caller
// memory, and the previous buffer is dropped on overwrite.
func (l *List) SetTextValue(name string, v string) error {
	i, err := l.prepareValue(name, KindText)
	if err != nil {
		return err
	}
	l.slots[i].payload = textPayload([]byte(v))
	l.notifyValueChanged(i)
	return nil
}

// PointerValue returns the opaque handle stored under name. The list never
// owns, dereferences, or frees pointer values.
func (l *List) PointerValue(name string) (any, error) {
	i, err := l.lookupValue(name, KindPointer)
	if err != nil {
		return nil, err
	}
	return l.slots[i].payload.(ptrPayload).p, nil
}

func (l *List) SetPointerValue(name string, v any) error {
	i, err := l.prepareValue(name, KindPointer)
	if err != nil {
		return err
	}
	l.slots[i].payload = ptrPayload{v}
	l.notifyValueChanged(i)
	return nil
}
