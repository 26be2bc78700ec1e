// Package cache provides a component-local deduplication cache backed by
// an in-memory moss collection — a per-component cache, not graph
// persistence; the pipeline registry itself never touches this store.
package cache

/*
   Copyright 2018 Bruno Moura <brunotm@gmail.com>

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

import (
	"encoding/binary"
	"fmt"

	"github.com/couchbase/moss"

	"github.com/brunotm/pipeline"
	"github.com/brunotm/pipeline/kvstore"
)

var seen = []byte{1}

// Store wraps a moss.Collection as a full kvstore.Store (Get/Set/Delete/
// Range) plus kvstore.Closer. Ported from
// store/moss/moss.go's Init/Close/Get/Set shape.
type Store struct {
	db moss.Collection
}

// NewStore opens an in-memory moss collection.
func NewStore() (*Store, error) {
	db, err := moss.NewCollection(moss.DefaultCollectionOptions)
	if err != nil {
		return nil, err
	}
	if err := db.Start(); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

var _ kvstore.Store = (*Store)(nil)
var _ kvstore.Closer = (*Store)(nil)

// Get implements kvstore.Store.
func (s *Store) Get(key []byte) (value []byte, err error) {
	value, err = s.db.Get(key, moss.ReadOptions{})
	if value == nil && err == nil {
		return nil, kvstore.ErrKeyNotFound
	}
	return value, err
}

// Set implements kvstore.Store.
func (s *Store) Set(key, value []byte) (err error) {
	batch, err := s.db.NewBatch(1, len(key)+len(value))
	if err != nil {
		return err
	}
	defer batch.Close()

	if err := batch.Set(key, value); err != nil {
		return err
	}
	return s.db.ExecuteBatch(batch, moss.WriteOptions{})
}

// Delete implements kvstore.Store.
func (s *Store) Delete(key []byte) (err error) {
	batch, err := s.db.NewBatch(1, 0)
	if err != nil {
		return err
	}
	defer batch.Close()

	if err := batch.Del(key); err != nil {
		return err
	}
	return s.db.ExecuteBatch(batch, moss.WriteOptions{})
}

// Range implements kvstore.Store.
func (s *Store) Range(from, to []byte, cb func(key, value []byte) error) (err error) {
	snap, err := s.db.Snapshot()
	if err != nil {
		return err
	}
	defer snap.Close()

	iter, err := snap.StartIterator(from, to, moss.IteratorOptions{})
	if err != nil {
		return err
	}
	defer iter.Close()

	for {
		key, val, err := iter.Current()
		if err != nil {
			if err == moss.ErrIteratorDone {
				return nil
			}
			return err
		}
		if err := cb(key, val); err != nil {
			return err
		}
		if err := iter.Next(); err != nil {
			if err == moss.ErrIteratorDone {
				return nil
			}
			return err
		}
	}
}

// Close implements kvstore.Closer.
func (s *Store) Close() error {
	return s.db.Close()
}

// NewDedupeComponent builds a one-input, one-output component that
// forwards its input to downstream only the first time a given value is
// seen, backed by store. A repeated value is suppressed: the component
// returns Empty instead of re-emitting it.
func NewDedupeComponent(name string, store *Store) *pipeline.Component1Node[int, int] {
	var result int

	poll := func(in pipeline.Producer[int]) pipeline.Poll {
		v := in.Value()
		key := keyOf(v)

		if _, err := store.Get(key); err == nil {
			return pipeline.Empty
		}

		if err := store.Set(key, seen); err != nil {
			panic(fmt.Errorf("dedupe cache: %w", err))
		}
		result = v
		return pipeline.Ready
	}

	value := func() int { return result }

	return pipeline.NewComponent1(name, poll, value)
}

// Seen reports whether v has already passed through a dedupe component
// backed by store.
func Seen(store *Store, v int) bool {
	_, err := store.Get(keyOf(v))
	return err == nil
}

func keyOf(v int) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(v))
	return key
}
