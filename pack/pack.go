// Package pack implements a binary encoding of value lists: a format
// version byte followed by a msgpack array of [name, kind, value] triples.
//
// Pointer values are opaque in-process handles and cannot be encoded.
package pack

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/andreyvit/vlist"
)

const (
	formatVer1      = 1
	formatVerLatest = formatVer1

	entryFieldCount = 3 // name, kind, value
)

// ErrPointerValue is returned by Encode when the list holds a pointer-kind
// value.
var ErrPointerValue = errors.New("pointer values cannot be encoded")

// Encode serializes the list. The result round-trips through Decode.
func Encode(l *vlist.List) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte(formatVerLatest)

	enc := msgpack.GetEncoder()
	enc.Reset(&buf)
	err := encodeList(enc, l)
	msgpack.PutEncoder(enc)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeList(enc *msgpack.Encoder, l *vlist.List) error {
	if err := enc.EncodeArrayLen(l.Count()); err != nil {
		return err
	}
	for _, nv := range l.All() {
		if err := encodeEntry(enc, nv); err != nil {
			return err
		}
	}
	return nil
}

func encodeEntry(enc *msgpack.Encoder, nv vlist.NamedValue) error {
	if nv.Kind == vlist.KindPointer {
		return fmt.Errorf("%q: %w", nv.Name, ErrPointerValue)
	}
	if err := enc.EncodeArrayLen(entryFieldCount); err != nil {
		return err
	}
	if err := enc.EncodeString(nv.Name); err != nil {
		return err
	}
	if err := enc.EncodeInt(int64(nv.Kind)); err != nil {
		return err
	}
	switch nv.Kind {
	case vlist.KindBool:
		return enc.EncodeBool(nv.Value.(bool))
	case vlist.KindInt32:
		return enc.EncodeInt(int64(nv.Value.(int32)))
	case vlist.KindInt64:
		return enc.EncodeInt(nv.Value.(int64))
	case vlist.KindFloat:
		return enc.EncodeFloat64(nv.Value.(float64))
	case vlist.KindDateTime:
		return enc.EncodeTime(nv.Value.(time.Time))
	case vlist.KindCurrency:
		return enc.EncodeInt(int64(nv.Value.(vlist.Currency)))
	case vlist.KindText:
		return enc.EncodeString(nv.Value.(string))
	default:
		return fmt.Errorf("%q: cannot encode %v", nv.Name, nv.Kind)
	}
}

// Decode deserializes a list produced by Encode.
func Decode(data []byte) (*vlist.List, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("packed list: empty data")
	}
	if data[0] != formatVer1 {
		return nil, fmt.Errorf("packed list: unsupported format version %d", data[0])
	}

	var r bytes.Reader
	r.Reset(data[1:])
	dec := msgpack.GetDecoder()
	dec.Reset(&r)
	l, err := decodeList(dec)
	msgpack.PutDecoder(dec)
	if err != nil {
		return nil, fmt.Errorf("packed list: %w", err)
	}
	return l, nil
}

func decodeList(dec *msgpack.Decoder) (*vlist.List, error) {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("invalid entry count")
	}

	l := vlist.NewList()
	if err := l.SetCap(n); err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err := decodeEntry(dec, l); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return l, nil
}

func decodeEntry(dec *msgpack.Decoder, l *vlist.List) error {
	fields, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if fields != entryFieldCount {
		return fmt.Errorf("got %d fields, expected %d", fields, entryFieldCount)
	}
	name, err := dec.DecodeString()
	if err != nil {
		return err
	}
	rawKind, err := dec.DecodeInt64()
	if err != nil {
		return err
	}

	switch kind := vlist.Kind(rawKind); kind {
	case vlist.KindBool:
		v, err := dec.DecodeBool()
		if err != nil {
			return err
		}
		return l.SetBoolValue(name, v)
	case vlist.KindInt32:
		v, err := dec.DecodeInt64()
		if err != nil {
			return err
		}
		return l.SetInt32Value(name, int32(v))
	case vlist.KindInt64:
		v, err := dec.DecodeInt64()
		if err != nil {
			return err
		}
		return l.SetInt64Value(name, v)
	case vlist.KindFloat:
		v, err := dec.DecodeFloat64()
		if err != nil {
			return err
		}
		return l.SetFloatValue(name, v)
	case vlist.KindDateTime:
		v, err := dec.DecodeTime()
		if err != nil {
			return err
		}
		return l.SetTimeValue(name, v)
	case vlist.KindCurrency:
		v, err := dec.DecodeInt64()
		if err != nil {
			return err
		}
		return l.SetCurrencyValue(name, vlist.Currency(v))
	case vlist.KindText:
		v, err := dec.DecodeString()
		if err != nil {
			return err
		}
		return l.SetTextValue(name, v)
	default:
		return fmt.Errorf("%q: invalid kind tag %d", name, rawKind)
	}
}

// Checksum returns the xxhash64 checksum of packed data, for cheap
// change detection of stored lists.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
