package vlist

import (
	"testing"
	"time"
)

func TestAccessors_CreateOnWrite(t *testing.T) {
	l := NewList()

	ensure(l.SetInt64Value("x", 5))
	deepEqual(t, l.Count(), 1)
	deepEqual(t, must(l.KindAt(0)), KindInt64)
	deepEqual(t, must(l.Int64Value("x")), int64(5))

	// same name and kind mutates in place
	ensure(l.SetInt64Value("X", 6))
	deepEqual(t, l.Count(), 1)
	deepEqual(t, must(l.Int64Value("x")), int64(6))
}

func TestAccessors_TypeGuard(t *testing.T) {
	l := NewList()
	ensure(l.SetInt64Value("x", 5))

	iserr(t, l.SetBoolValue("x", true), ErrTypeMismatch)
	deepEqual(t, l.Count(), 1)

	_, err := l.BoolValue("x")
	iserr(t, err, ErrUnknownName)

	_, err = l.Int64Value("absent")
	iserr(t, err, ErrUnknownName)
}

func TestAccessors_AllKinds(t *testing.T) {
	l := NewList()
	when := time.Date(2024, 5, 17, 10, 30, 0, 0, time.UTC)
	handle := &recorder{}

	ensure(l.SetBoolValue("b", true))
	ensure(l.SetInt32Value("i32", -7))
	ensure(l.SetInt64Value("i64", 1<<40))
	ensure(l.SetFloatValue("f", 2.5))
	ensure(l.SetTimeValue("t", when))
	ensure(l.SetCurrencyValue("c", CurrencyFromFloat(19.99)))
	ensure(l.SetTextValue("s", "hello"))
	ensure(l.SetPointerValue("p", handle))

	deepEqual(t, l.Count(), 8)
	deepEqual(t, must(l.BoolValue("b")), true)
	deepEqual(t, must(l.Int32Value("i32")), int32(-7))
	deepEqual(t, must(l.Int64Value("i64")), int64(1<<40))
	deepEqual(t, must(l.FloatValue("f")), 2.5)
	deepEqual(t, must(l.TimeValue("t")), when)
	deepEqual(t, must(l.CurrencyValue("c")), Currency(199900))
	deepEqual(t, must(l.TextValue("s")), "hello")
	if p := must(l.PointerValue("p")); p != any(handle) {
		t.Errorf("** pointer handle not returned as-is")
	}

	// fresh slots start zero-valued
	must(l.Add("zero", KindText))
	deepEqual(t, must(l.TextValue("zero")), "")
}

func TestAccessors_TextOverwrite(t *testing.T) {
	l := NewList()
	ensure(l.SetTextValue("s", "a longer first value"))
	ensure(l.SetTextValue("s", "hi"))
	deepEqual(t, must(l.TextValue("s")), "hi")
	deepEqual(t, l.Count(), 1)
}

func TestAccessors_PointerIsOpaque(t *testing.T) {
	l := NewList()
	ensure(l.SetPointerValue("p", nil))
	isnil(t, must(l.PointerValue("p")))

	v := 42
	ensure(l.SetPointerValue("p", &v))
	deepEqual(t, must(l.PointerValue("p")).(*int), &v)
}

func TestCurrency(t *testing.T) {
	deepEqual(t, CurrencyFromFloat(12.3456), Currency(123456))
	deepEqual(t, CurrencyFromFloat(-0.0001), Currency(-1))
	deepEqual(t, Currency(123456).Float64(), 12.3456)
	deepEqual(t, Currency(123456).String(), "12.3456")
	deepEqual(t, Currency(-5).String(), "-0.0005")
	deepEqual(t, Currency(0).String(), "0.0000")
}

func TestKind_String(t *testing.T) {
	deepEqual(t, KindBool.String(), "bool")
	deepEqual(t, KindDateTime.String(), "datetime")
	deepEqual(t, KindPointer.String(), "pointer")
	if got := Kind(99).String(); got == "bool" || got == "" {
		t.Fatalf("unexpected Kind(99).String() = %q", got)
	}
}

func isnil(t testing.TB, a any) {
	if a != nil {
		t.Helper()
		t.Errorf("** got %v, wanted nil", a)
	}
}
