package nodes_test

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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brunotm/pipeline"
	"github.com/brunotm/pipeline/nodes"
)

func TestCounterSourceClosesAfterBound(t *testing.T) {
	src := nodes.NewCounterSource("c", 3)

	var got []int
	for {
		poll := src.PollNext()
		if poll == pipeline.Closed {
			break
		}
		assert.Equal(t, pipeline.Ready, poll)
		got = append(got, src.Value())
	}

	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestCounterSourceStaysClosed(t *testing.T) {
	src := nodes.NewCounterSource("c", 0)
	assert.Equal(t, pipeline.Closed, src.PollNext())
	assert.Equal(t, pipeline.Closed, src.PollNext())
}

func TestSkipSourceEmitsOnlyEvenValues(t *testing.T) {
	src := nodes.NewSkipSource("s", 10)

	var got []int
	for {
		poll := src.PollNext()
		if poll == pipeline.Closed {
			break
		}
		if poll != pipeline.Ready {
			continue
		}
		got = append(got, src.Value())
	}

	assert.Equal(t, []int{2, 4, 6, 8, 10}, got)
}
