package pipeline

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

// Poll is the tri-valued outcome of a node's tick operation.
type Poll uint8

const (
	// Ready means the node produced a value this tick; Value() on a
	// Producer may be read for the remainder of the tick.
	Ready Poll = iota
	// Empty means the node was transiently unable to produce a value this
	// tick but may do so on a later tick.
	Empty
	// Closed means the node is permanently exhausted.
	Closed
)

func (p Poll) String() string {
	switch p {
	case Ready:
		return "ready"
	case Empty:
		return "empty"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Node is the capability every graph element must satisfy: a display name,
// a fixed-arity list of input type tokens, an output type token (Void for
// sinks), a tick operation, and a slot binder.
//
// Node does not expose a typed Value accessor. A node that needs its
// upstream's value type-asserts the Node handed to Connect against
// Producer[T] for the T it expects at that slot — the library itself only
// ever compares tokens, never payload types.
type Node interface {
	// Name returns this node's display label. Not necessarily unique.
	Name() string
	// InputTypes returns this node's fixed-arity, ordered input type
	// tokens. Its length is the node's arity; an empty slice means the
	// node is a source.
	InputTypes() []Token
	// OutputType returns this node's output type token. Void marks a sink.
	OutputType() Token
	// PollNext runs this node's tick operation. Called at most once per
	// node per Step. May panic; the scheduler does not recover.
	PollNext() Poll
	// Connect binds an upstream node to the given input slot, or clears
	// the slot if src is nil. Called by the owning Pipeline only after it
	// has validated the slot index and the token match; a source node's
	// Connect is never reachable through Pipeline.Connect since a source
	// has zero slots, any slot index on it is already rejected as
	// KindNoSuchSlot before Connect would be invoked.
	Connect(src Node, slot int) error
}

// Producer is implemented by any node whose output carries values of type
// T. Nodes that consume an upstream type-assert it to Producer[T] inside
// their own Connect implementation to obtain typed read access; Value is
// only meaningful after a PollNext call that returned Ready.
type Producer[T any] interface {
	Node
	Value() T
}

// base holds the bookkeeping shared by every concrete node shape: its
// name and the input/output tokens captured once at construction.
type base struct {
	name       string
	inputTypes []Token
	outputType Token
}

func (b *base) Name() string          { return b.name }
func (b *base) InputTypes() []Token   { return b.inputTypes }
func (b *base) OutputType() Token     { return b.outputType }

// SourceNode is a node with no inputs, producing values of type O.
type SourceNode[O any] struct {
	base
	poll  func() Poll
	value func() O
}

// NewSource constructs a source node. poll implements the tick operation;
// value returns the most recently produced output and is only called by
// downstream nodes after poll returned Ready.
func NewSource[O any](name string, poll func() Poll, value func() O) *SourceNode[O] {
	return &SourceNode[O]{
		base:  base{name: name, outputType: TokenOf[O]()},
		poll:  poll,
		value: value,
	}
}

// PollNext implements Node.
func (s *SourceNode[O]) PollNext() Poll { return s.poll() }

// Value implements Producer[O].
func (s *SourceNode[O]) Value() O { return s.value() }

// Connect implements Node. A source has arity 0; Pipeline.Connect never
// reaches this call since any slot index is already out of range, but we
// still reject defensively since connecting anything to a source is
// always a usage error.
func (s *SourceNode[O]) Connect(Node, int) error {
	return errNoSuchSlot
}

// SinkNode is a node with exactly one input of type I and no output.
type SinkNode[I any] struct {
	base
	upstream Producer[I]
	poll     func(in Producer[I]) Poll
}

// NewSink constructs a sink node. poll is invoked with the currently
// connected upstream (nil if the slot is unfilled) and implements the
// tick operation, typically reading in.Value() when it chooses to.
func NewSink[I any](name string, poll func(in Producer[I]) Poll) *SinkNode[I] {
	return &SinkNode[I]{
		base: base{name: name, inputTypes: []Token{TokenOf[I]()}},
		poll: poll,
	}
}

// PollNext implements Node.
func (s *SinkNode[I]) PollNext() Poll { return s.poll(s.upstream) }

// Connect implements Node.
func (s *SinkNode[I]) Connect(src Node, slot int) error {
	if slot != 0 {
		return errNoSuchSlot
	}
	if src == nil {
		s.upstream = nil
		return nil
	}
	producer, ok := src.(Producer[I])
	if !ok {
		return errConnectionTypeMismatch
	}
	s.upstream = producer
	return nil
}

// Component1Node is an interior node with one input of type I0 and output O.
type Component1Node[I0, O any] struct {
	base
	upstream Producer[I0]
	poll     func(in Producer[I0]) Poll
	value    func() O
}

// NewComponent1 constructs a one-input interior node.
func NewComponent1[I0, O any](name string, poll func(in Producer[I0]) Poll, value func() O) *Component1Node[I0, O] {
	return &Component1Node[I0, O]{
		base:  base{name: name, inputTypes: []Token{TokenOf[I0]()}, outputType: TokenOf[O]()},
		poll:  poll,
		value: value,
	}
}

func (c *Component1Node[I0, O]) PollNext() Poll { return c.poll(c.upstream) }
func (c *Component1Node[I0, O]) Value() O       { return c.value() }

func (c *Component1Node[I0, O]) Connect(src Node, slot int) error {
	if slot != 0 {
		return errNoSuchSlot
	}
	if src == nil {
		c.upstream = nil
		return nil
	}
	producer, ok := src.(Producer[I0])
	if !ok {
		return errConnectionTypeMismatch
	}
	c.upstream = producer
	return nil
}

// Component2Node is an interior node with two inputs, I0 and I1, and output O.
type Component2Node[I0, I1, O any] struct {
	base
	up0   Producer[I0]
	up1   Producer[I1]
	poll  func(in0 Producer[I0], in1 Producer[I1]) Poll
	value func() O
}

// NewComponent2 constructs a two-input interior node.
func NewComponent2[I0, I1, O any](
	name string,
	poll func(in0 Producer[I0], in1 Producer[I1]) Poll,
	value func() O,
) *Component2Node[I0, I1, O] {
	return &Component2Node[I0, I1, O]{
		base: base{
			name:       name,
			inputTypes: []Token{TokenOf[I0](), TokenOf[I1]()},
			outputType: TokenOf[O](),
		},
		poll:  poll,
		value: value,
	}
}

func (c *Component2Node[I0, I1, O]) PollNext() Poll { return c.poll(c.up0, c.up1) }
func (c *Component2Node[I0, I1, O]) Value() O       { return c.value() }

func (c *Component2Node[I0, I1, O]) Connect(src Node, slot int) error {
	switch slot {
	case 0:
		if src == nil {
			c.up0 = nil
			return nil
		}
		producer, ok := src.(Producer[I0])
		if !ok {
			return errConnectionTypeMismatch
		}
		c.up0 = producer
		return nil
	case 1:
		if src == nil {
			c.up1 = nil
			return nil
		}
		producer, ok := src.(Producer[I1])
		if !ok {
			return errConnectionTypeMismatch
		}
		c.up1 = producer
		return nil
	default:
		return errNoSuchSlot
	}
}
