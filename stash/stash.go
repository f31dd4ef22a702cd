// Package stash persists value lists in a Bolt database, keyed by string.
// Lists go through the pack encoding; a stored xxhash checksum lets Save
// skip the write when a list's content is unchanged.
//
// The vlist core knows nothing about persistence; the stash drives it
// through its public API only.
package stash

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"

	"go.etcd.io/bbolt"

	"github.com/andreyvit/vlist"
	"github.com/andreyvit/vlist/pack"
)

// ErrNotFound is returned by Load for keys that have never been saved.
var ErrNotFound = errors.New("list not found")

var (
	listsBucket = []byte("lists")
	sumsBucket  = []byte("sums")
)

type Options struct {
	// Logger receives debug-level messages. Defaults to slog.Default().
	Logger *slog.Logger
}

type Stash struct {
	bdb    *bbolt.DB
	logger *slog.Logger
}

func Open(path string, opt Options) (*Stash, error) {
	if opt.Logger == nil {
		opt.Logger = slog.Default()
	}

	bdb, err := bbolt.Open(path, 0o644, nil)
	if err != nil {
		return nil, fmt.Errorf("stash: %w", err)
	}
	err = bdb.Update(func(btx *bbolt.Tx) error {
		if _, err := btx.CreateBucketIfNotExists(listsBucket); err != nil {
			return err
		}
		_, err := btx.CreateBucketIfNotExists(sumsBucket)
		return err
	})
	if err != nil {
		bdb.Close()
		return nil, fmt.Errorf("stash: %w", err)
	}
	return &Stash{bdb: bdb, logger: opt.Logger}, nil
}

func (s *Stash) Close() error {
	return s.bdb.Close()
}

// Bolt returns the underlying Bolt database.
func (s *Stash) Bolt() *bbolt.DB {
	return s.bdb
}

// Save stores the list under key, replacing any previous content. Returns
// false without writing when the packed content matches the stored
// checksum.
func (s *Stash) Save(key string, l *vlist.List) (updated bool, err error) {
	data, err := pack.Encode(l)
	if err != nil {
		return false, fmt.Errorf("stash: save %q: %w", key, err)
	}
	sum := pack.Checksum(data)

	err = s.bdb.Update(func(btx *bbolt.Tx) error {
		k := []byte(key)
		sums := btx.Bucket(sumsBucket)
		lists := btx.Bucket(listsBucket)

		if prev := sums.Get(k); len(prev) == 8 && binary.BigEndian.Uint64(prev) == sum && lists.Get(k) != nil {
			s.logger.Debug("stash: unchanged, skipping write", "key", key, "sum", sum)
			return nil
		}

		var sumBuf [8]byte
		binary.BigEndian.PutUint64(sumBuf[:], sum)
		if err := lists.Put(k, data); err != nil {
			return err
		}
		if err := sums.Put(k, sumBuf[:]); err != nil {
			return err
		}
		updated = true
		s.logger.Debug("stash: saved", "key", key, "bytes", len(data), "values", l.Count())
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("stash: save %q: %w", key, err)
	}
	return updated, nil
}

// Load returns the list stored under key, or ErrNotFound.
func (s *Stash) Load(key string) (*vlist.List, error) {
	var data []byte
	err := s.bdb.View(func(btx *bbolt.Tx) error {
		raw := btx.Bucket(listsBucket).Get([]byte(key))
		if raw == nil {
			return fmt.Errorf("%q: %w", key, ErrNotFound)
		}
		data = bytes.Clone(raw) // Bolt memory is only valid inside the tx
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("stash: load: %w", err)
	}

	l, err := pack.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("stash: load %q: %w", key, err)
	}
	return l, nil
}

// Keys returns all saved keys in lexicographic order.
func (s *Stash) Keys() ([]string, error) {
	var keys []string
	err := s.bdb.View(func(btx *bbolt.Tx) error {
		return btx.Bucket(listsBucket).ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("stash: keys: %w", err)
	}
	return keys, nil
}

// Delete removes the list stored under key. Absent keys are not an error.
func (s *Stash) Delete(key string) error {
	err := s.bdb.Update(func(btx *bbolt.Tx) error {
		if err := btx.Bucket(listsBucket).Delete([]byte(key)); err != nil {
			return err
		}
		return btx.Bucket(sumsBucket).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("stash: delete %q: %w", key, err)
	}
	return nil
}
