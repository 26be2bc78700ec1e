// Package mock provides test doubles for pipeline.Node: a struct of
// scripted return values plus call counters, used by the scheduler's own
// tests.
package mock

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

// make sure we implement the Node interface
var _ pipeline.Node = (*Node)(nil)
var _ pipeline.Producer[int] = (*Node)(nil)

// Data scripts a Node's behaviour and records how many times it was
// invoked.
type Data struct {
	Name        string
	Input       []pipeline.Token
	Output      pipeline.Token
	Polls       []pipeline.Poll // consumed in order, one per PollNext call
	CurrentValue int

	PollCount    int
	ConnectCount int
}

// Node is a scripted pipeline.Node test double. Each PollNext call
// consumes the next entry of Data.Polls (the last entry repeats once
// exhausted), so tests can assert "polled at most once per tick" and
// exercise closure/empty short-circuiting without a real source or sink.
type Node struct {
	Data *Data
}

// New returns a Node wrapping a fresh Data with the given polls script.
func New(name string, input []pipeline.Token, output pipeline.Token, polls ...pipeline.Poll) *Node {
	return &Node{Data: &Data{Name: name, Input: input, Output: output, Polls: polls}}
}

// Name implements pipeline.Node.
func (n *Node) Name() string { return n.Data.Name }

// InputTypes implements pipeline.Node.
func (n *Node) InputTypes() []pipeline.Token { return n.Data.Input }

// OutputType implements pipeline.Node.
func (n *Node) OutputType() pipeline.Token { return n.Data.Output }

// PollNext implements pipeline.Node, consuming the next scripted result.
func (n *Node) PollNext() pipeline.Poll {
	n.Data.PollCount++

	if len(n.Data.Polls) == 0 {
		return pipeline.Ready
	}

	idx := n.Data.PollCount - 1
	if idx >= len(n.Data.Polls) {
		idx = len(n.Data.Polls) - 1
	}

	result := n.Data.Polls[idx]
	if result == pipeline.Ready {
		n.Data.CurrentValue++
	}
	return result
}

// Value implements pipeline.Producer[int].
func (n *Node) Value() int { return n.Data.CurrentValue }

// Connect implements pipeline.Node.
func (n *Node) Connect(pipeline.Node, int) error {
	n.Data.ConnectCount++
	return nil
}
