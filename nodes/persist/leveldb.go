// Package persist provides a durable sink node backed by a goleveldb
// key/value store.
package persist

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
	"os"

	ldb "github.com/syndtr/goleveldb/leveldb"
	ldbutil "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/brunotm/pipeline"
	"github.com/brunotm/pipeline/kvstore"
)

// Store is a durable key/value store backed by goleveldb. Ported from
// store/leveldb/leveldb.go's Init/Close/Get/Set/Delete/Range shape.
type Store struct {
	db   *ldb.DB
	path string
}

var _ kvstore.Store = (*Store)(nil)
var _ kvstore.Closer = (*Store)(nil)

// Open opens (creating if needed) a leveldb store at path.
func Open(path string) (*Store, error) {
	db, err := ldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, path: path}, nil
}

// Get implements kvstore.Store.
func (s *Store) Get(key []byte) (value []byte, err error) {
	value, err = s.db.Get(key, nil)
	if err == ldb.ErrNotFound {
		return nil, kvstore.ErrKeyNotFound
	}
	return value, err
}

// Set implements kvstore.Store.
func (s *Store) Set(key, value []byte) (err error) {
	return s.db.Put(key, value, nil)
}

// Delete implements kvstore.Store.
func (s *Store) Delete(key []byte) (err error) {
	return s.db.Delete(key, nil)
}

// Range implements kvstore.Store.
func (s *Store) Range(from, to []byte, cb func(key, value []byte) error) (err error) {
	rng := &ldbutil.Range{Start: from, Limit: to}
	iter := s.db.NewIterator(rng, nil)
	defer iter.Release()

	for iter.Next() {
		if err := cb(iter.Key(), iter.Value()); err != nil {
			return err
		}
	}
	return iter.Error()
}

// Close releases the store's resources.
func (s *Store) Close() error {
	return s.db.Close()
}

// Remove closes the store and erases its contents from disk.
func (s *Store) Remove() error {
	if err := s.Close(); err != nil {
		return err
	}
	return os.RemoveAll(s.path)
}

// NewSink builds a durable sink node that encodes each observed value
// with enc and persists it under a monotonically increasing key, backed
// by store. path resolution (where on disk store lives) is left to the
// caller, typically sourced from a pipeline.Config entry such as
// "persist.<name>.path" — the store itself never reads Config.
func NewSink(name string, store *Store, enc func(v int) Encoder) *pipeline.SinkNode[int] {
	seq := uint64(0)

	poll := func(in pipeline.Producer[int]) pipeline.Poll {
		v := in.Value()
		payload, err := enc(v).Encode()
		if err != nil {
			panic(err)
		}

		key := seqKey(seq)
		seq++

		if err := store.Set(key, payload); err != nil {
			panic(err)
		}
		return pipeline.Ready
	}

	return pipeline.NewSink(name, poll)
}

func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		key[i] = byte(seq)
		seq >>= 8
	}
	return key
}
