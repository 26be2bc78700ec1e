// Package partition provides a demonstration component that deterministically
// buckets the int values flowing through it, independent of the parity
// routing nodes.NewSkipSource performs internally.
package partition

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
	jump "github.com/dgryski/go-jump"
	"github.com/dgryski/go-wyhash"

	"github.com/brunotm/pipeline"
)

// Bucketed pairs an input value with the bucket it was routed to.
type Bucketed struct {
	Bucket int32
	Value  int
}

// NewComponent builds a one-input, one-output component that routes its
// input into one of buckets logical partitions using a wyhash digest fed
// through go-jump's consistent-hash function, re-emitting the (bucket,
// value) pair, via jump.Hash(hash(value), numBuckets) as a pure,
// single-threaded function call — no channels, no goroutines, since the
// pull scheduler never spawns concurrency.
func NewComponent(name string, buckets int32) *pipeline.Component1Node[int, Bucketed] {
	var result Bucketed

	poll := func(in pipeline.Producer[int]) pipeline.Poll {
		v := in.Value()
		digest := wyhash.Hash(uint64(v), 0)
		result = Bucketed{Bucket: jump.Hash(digest, buckets), Value: v}
		return pipeline.Ready
	}

	value := func() Bucketed { return result }

	return pipeline.NewComponent1(name, poll, value)
}
