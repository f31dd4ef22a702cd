package vlist

import (
	"fmt"
	"math"
)

// Kind identifies the type of a stored value. A slot's kind is fixed when
// the slot is created; storing a different kind under the same name requires
// removing and re-adding it.
type Kind int

const (
	KindBool Kind = iota
	KindInt32
	KindInt64
	KindFloat
	KindDateTime
	KindCurrency
	KindText
	KindPointer
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindFloat:
		return "float"
	case KindDateTime:
		return "datetime"
	case KindCurrency:
		return "currency"
	case KindText:
		return "text"
	case KindPointer:
		return "pointer"
	default:
		return fmt.Sprintf("invalid kind %d", int(k))
	}
}

// CurrencyScale is the fixed-point denominator of Currency values:
// 1 Currency unit is 1/10000 of a whole.
const CurrencyScale = 10_000

// Currency is a fixed-point monetary amount with 4 decimal digits.
type Currency int64

// CurrencyFromFloat converts a float amount into Currency, rounding to the
// nearest representable value.
func CurrencyFromFloat(f float64) Currency {
	return Currency(math.Round(f * CurrencyScale))
}

func (c Currency) Float64() float64 {
	return float64(c) / CurrencyScale
}

func (c Currency) String() string {
	u := uint64(c)
	if c < 0 {
		u = uint64(-int64(c))
	}
	s := fmt.Sprintf("%d.%04d", u/CurrencyScale, u%CurrencyScale)
	if c < 0 {
		return "-" + s
	}
	return s
}
