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
	"strconv"
	"strings"

	"github.com/brunotm/pipeline"
)

// StreamSink collects every value it observes into a space-separated
// string, e.g. "2 4 6 8 10 ".
type StreamSink struct {
	node *pipeline.SinkNode[int]
	sb   strings.Builder
}

// NewStreamSink builds a StreamSink and its underlying sink node.
func NewStreamSink(name string) *StreamSink {
	s := &StreamSink{}

	poll := func(in pipeline.Producer[int]) pipeline.Poll {
		s.sb.WriteString(strconv.Itoa(in.Value()))
		s.sb.WriteByte(' ')
		return pipeline.Ready
	}

	s.node = pipeline.NewSink(name, poll)
	return s
}

// Node returns the sink node to register with a Pipeline.
func (s *StreamSink) Node() *pipeline.SinkNode[int] { return s.node }

// String returns every value observed so far, space-separated.
func (s *StreamSink) String() string { return s.sb.String() }
