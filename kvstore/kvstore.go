// Package kvstore defines the small key/value store contract shared by the
// example node implementations under nodes/cache and nodes/persist. It is
// infrastructure for those example components, not part of the library's
// core node contract — the graph registry itself never touches a Store.
package kvstore

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

import "errors"

// ErrKeyNotFound is returned when a key has no value in the store.
var ErrKeyNotFound = errors.New("key not found")

// Closer is implemented by any Store that holds resources needing
// release on shutdown.
type Closer interface {
	Close() (err error)
}

// ROStore is a read-only key/value store.
type ROStore interface {
	// Get returns the value for key, or ErrKeyNotFound.
	Get(key []byte) (value []byte, err error)

	// Range iterates the store in byte-wise lexicographical order within
	// [from, to), applying cb to each pair. A nil from or to means the
	// beginning or end of the store; both nil iterates the whole store.
	// Returning an error from cb stops the iteration early.
	Range(from, to []byte, cb func(key, value []byte) error) (err error)
}

// Store is a read/write key/value store.
type Store interface {
	ROStore

	// Set stores value under key.
	Set(key, value []byte) (err error)

	// Delete removes key and its value.
	Delete(key []byte) (err error)
}
