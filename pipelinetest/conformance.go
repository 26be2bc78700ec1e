// Package pipelinetest provides reusable test helpers for this library's
// example node implementations.
package pipelinetest

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
	"bytes"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brunotm/pipeline/kvstore"
)

// Conformance runs a black-box acceptance suite against any
// kvstore.Store implementation: get-missing, set-and-get, delete, and a
// whole-store Range(nil, nil) checked for lexicographical order. Bounded
// ranges are not exercised. store must already be open and empty.
func Conformance(t *testing.T, store kvstore.Store) {
	key := randBytes(8)
	value := randBytes(32)

	t.Run("get missing key", func(t *testing.T) {
		_, err := store.Get(key)
		assert.Equal(t, kvstore.ErrKeyNotFound, err)
	})

	t.Run("set and get", func(t *testing.T) {
		assert.NoError(t, store.Set(key, value))

		got, err := store.Get(key)
		assert.NoError(t, err)
		assert.True(t, bytes.Equal(got, value))
	})

	t.Run("delete", func(t *testing.T) {
		assert.NoError(t, store.Delete(key))

		_, err := store.Get(key)
		assert.Equal(t, kvstore.ErrKeyNotFound, err)
	})

	keys := make([][]byte, 10)
	for i := range keys {
		keys[i] = randBytes(4)
	}

	sorted := make([][]byte, len(keys))
	copy(sorted, keys)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i], sorted[j]) < 0
	})

	t.Run("range lexicographical", func(t *testing.T) {
		for _, k := range keys {
			assert.NoError(t, store.Set(k, value))
		}

		idx := 0
		err := store.Range(nil, nil, func(key, value []byte) error {
			assert.True(t, bytes.Equal(key, sorted[idx]))
			idx++
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, len(sorted), idx)

		for _, k := range keys {
			assert.NoError(t, store.Delete(k))
		}
	})
}

const letterBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

func randBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = letterBytes[rand.Intn(len(letterBytes))]
	}
	return b
}
