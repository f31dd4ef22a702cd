package stash

import (
	"errors"
	"os"
	"reflect"
	"testing"

	"github.com/andreyvit/vlist"
)

func TestStash_SaveLoadRoundTrip(t *testing.T) {
	s := setup(t)

	l := vlist.NewList()
	ensure(t, l.SetTextValue("greeting", "hello"))
	ensure(t, l.SetInt64Value("count", 42))
	ensure(t, l.SetCurrencyValue("price", vlist.CurrencyFromFloat(19.99)))

	updated := must(s.Save("settings", l))
	if !updated {
		t.Fatalf("first save reported no update")
	}

	got := must(s.Load("settings"))
	deepEqual(t, must(got.TextValue("greeting")), "hello")
	deepEqual(t, must(got.Int64Value("count")), int64(42))
	deepEqual(t, must(got.CurrencyValue("price")), vlist.Currency(199900))
	deepEqual(t, got.Count(), 3)
}

func TestStash_SaveSkipsUnchanged(t *testing.T) {
	s := setup(t)

	l := vlist.NewList()
	ensure(t, l.SetInt64Value("n", 1))

	deepEqual(t, must(s.Save("k", l)), true)
	deepEqual(t, must(s.Save("k", l)), false)

	ensure(t, l.SetInt64Value("n", 2))
	deepEqual(t, must(s.Save("k", l)), true)
	deepEqual(t, must(must(s.Load("k")).Int64Value("n")), int64(2))
}

func TestStash_LoadMissing(t *testing.T) {
	s := setup(t)
	if _, err := s.Load("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got error %v, wanted ErrNotFound", err)
	}
}

func TestStash_KeysAndDelete(t *testing.T) {
	s := setup(t)

	for _, key := range []string{"b", "a", "c"} {
		l := vlist.NewList()
		ensure(t, l.SetTextValue("k", key))
		must(s.Save(key, l))
	}

	deepEqual(t, must(s.Keys()), []string{"a", "b", "c"})

	ensure(t, s.Delete("b"))
	deepEqual(t, must(s.Keys()), []string{"a", "c"})

	if _, err := s.Load("b"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got error %v, wanted ErrNotFound", err)
	}

	ensure(t, s.Delete("b")) // absent keys are fine
}

func TestStash_Reopen(t *testing.T) {
	file := tempFile(t)

	s := must(Open(file, Options{}))
	l := vlist.NewList()
	ensure(t, l.SetBoolValue("flag", true))
	must(s.Save("k", l))
	ensure(t, s.Close())

	s = must(Open(file, Options{}))
	t.Cleanup(func() { s.Close() })

	got := must(s.Load("k"))
	deepEqual(t, must(got.BoolValue("flag")), true)

	// reopened stash still detects unchanged content
	deepEqual(t, must(s.Save("k", l)), false)
}

func setup(t testing.TB) *Stash {
	t.Helper()
	s := must(Open(tempFile(t), Options{}))
	t.Cleanup(func() { s.Close() })
	return s
}

func tempFile(t testing.TB) string {
	t.Helper()
	f := must(os.CreateTemp("", "stash_test_*.db"))
	t.Logf("DB: %s", f.Name())
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })
	return f.Name()
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func ensure(t testing.TB, err error) {
	if err != nil {
		t.Helper()
		t.Fatal(err)
	}
}

func deepEqual[T any](t testing.TB, a, e T) {
	if !reflect.DeepEqual(a, e) {
		t.Helper()
		t.Errorf("** got %v, wanted %v", a, e)
	}
}
