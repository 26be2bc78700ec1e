// Package nodes provides reference Node implementations exercising the
// core pipeline contract end to end, used by this library's own
// scheduler tests.
package nodes

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
	"github.com/brunotm/pipeline"
)

// NewCounterSource builds a source that produces 1, 2, ..., bound on
// successive Ready ticks, then Closed forever after.
func NewCounterSource(name string, bound int) *pipeline.SourceNode[int] {
	current := 0

	poll := func() pipeline.Poll {
		if current >= bound {
			return pipeline.Closed
		}
		current++
		return pipeline.Ready
	}

	value := func() int { return current }

	return pipeline.NewSource(name, poll, value)
}

// NewSkipSource builds a source like NewCounterSource, but a tick that
// finds the current value even advances it and returns Empty, while a tick
// that finds it odd advances it and returns Ready; the Ready values are
// therefore 2, 4, 6, ... It closes once bound is reached.
func NewSkipSource(name string, bound int) *pipeline.SourceNode[int] {
	current := 0

	poll := func() pipeline.Poll {
		if current >= bound {
			return pipeline.Closed
		}
		skip := current%2 == 0
		current++

		if skip {
			return pipeline.Empty
		}
		return pipeline.Ready
	}

	value := func() int { return current }

	return pipeline.NewSource(name, poll, value)
}
