package vlist

import (
	"bytes"
	"fmt"
	"time"
)

// payload is the tagged value of a slot. Exactly one variant exists per
// Kind, so the kind tag and the stored value cannot desynchronize.
type payload interface {
	kind() Kind
}

type (
	boolPayload     bool
	int32Payload    int32
	int64Payload    int64
	floatPayload    float64
	timePayload     time.Time
	currencyPayload Currency
	textPayload     []byte          // owned copy, never aliases caller memory
	ptrPayload      struct{ p any } // unowned opaque handle, never dereferenced
)

func (boolPayload) kind() Kind     { return KindBool }
func (int32Payload) kind() Kind    { return KindInt32 }
func (int64Payload) kind() Kind    { return KindInt64 }
func (floatPayload) kind() Kind    { return KindFloat }
func (timePayload) kind() Kind     { return KindDateTime }
func (currencyPayload) kind() Kind { return KindCurrency }
func (textPayload) kind() Kind     { return KindText }
func (ptrPayload) kind() Kind      { return KindPointer }

type slot struct {
	name    string
	payload payload
	dirty   bool // value changed while notifications were deferred
}

func newSlot(name string, kind Kind) *slot {
	return &slot{name: name, payload: zeroPayload(kind)}
}

func zeroPayload(kind Kind) payload {
	switch kind {
	case KindBool:
		return boolPayload(false)
	case KindInt32:
		return int32Payload(0)
	case KindInt64:
		return int64Payload(0)
	case KindFloat:
		return floatPayload(0)
	case KindDateTime:
		return timePayload(time.Time{})
	case KindCurrency:
		return currencyPayload(0)
	case KindText:
		return textPayload(nil)
	case KindPointer:
		return ptrPayload{}
	default:
		panic(fmt.Errorf("invalid kind %d", int(kind)))
	}
}

// value returns the Go-native representation of the payload.
func (s *slot) value() any {
	switch p := s.payload.(type) {
	case boolPayload:
		return bool(p)
	case int32Payload:
		return int32(p)
	case int64Payload:
		return int64(p)
	case floatPayload:
		return float64(p)
	case timePayload:
		return time.Time(p)
	case currencyPayload:
		return Currency(p)
	case textPayload:
		return string(p)
	case ptrPayload:
		return p.p
	default:
		panic("unreachable")
	}
}

func (s *slot) clone() *slot {
	dup := &slot{name: s.name, payload: s.payload}
	if text, ok := s.payload.(textPayload); ok {
		dup.payload = textPayload(bytes.Clone(text))
	}
	return dup
}
