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

import (
	"sort"

	"github.com/brunotm/pipeline/log"
)

// dependency is one outgoing edge from a node: the downstream node id and
// the slot of that downstream node it feeds.
type dependency struct {
	downstream int
	slot       int
}

// envelope is the bookkeeping the registry keeps alongside a user Node:
// which of its slots are filled and by whom (connections), and which
// downstream slots its output feeds (dependencies).
type envelope struct {
	node        Node
	connections map[int]int // slot -> upstream node id
	dependencies []dependency
}

// Pipeline owns a directed acyclic graph of Node instances: the node
// registry. It is not safe for concurrent use — concurrent calls to
// any method on the same Pipeline, including read-only ones, are
// disallowed, matching the single-threaded execution model this library
// targets.
type Pipeline struct {
	name   string
	nextID int
	nodes  map[int]*envelope
	logger log.Logger
	cfg    Config
	tick   int
}

// Option configures a Pipeline at construction time.
type Option func(*Pipeline)

// WithConfig attaches an execution Config to the pipeline. It is read by
// the scheduler for decorative/observability knobs only — Step consults
// "scheduler.log_every" to decide how often to log a tick boundary — and
// never affects step's pull semantics.
func WithConfig(cfg Config) Option {
	return func(p *Pipeline) { p.cfg = cfg }
}

// WithLogger overrides the pipeline's logger. Defaults to a logger tagged
// with the pipeline's name.
func WithLogger(logger log.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

// New creates an empty Pipeline. Identifiers allocated by CreateNode start
// at 1 and increase monotonically for the lifetime of this instance.
func New(name string, opts ...Option) *Pipeline {
	p := &Pipeline{
		name:   name,
		nextID: 1,
		nodes:  make(map[int]*envelope),
		cfg:    NewConfig(nil),
	}
	p.logger = log.New("pipeline", name)

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Name returns this pipeline's name.
func (p *Pipeline) Name() string { return p.name }

// CreateNode registers node in the pipeline and returns its freshly
// allocated id. Infallible: node is assumed to already satisfy the
// concrete-node predicate by virtue of having been built through one of
// NewSource/NewSink/NewComponent1/NewComponent2, or a user type that
// implements Node directly and is responsible for its own token/arity
// consistency.
func (p *Pipeline) CreateNode(node Node) (id int) {
	id = p.nextID
	p.nextID++

	p.nodes[id] = &envelope{
		node:        node,
		connections: make(map[int]int),
	}

	p.logger.Debugw("node created", "id", id, "name", node.Name())
	return id
}

// GetNode returns the node registered under id, or nil if id is unknown or
// has been erased.
func (p *Pipeline) GetNode(id int) Node {
	env, ok := p.nodes[id]
	if !ok {
		return nil
	}
	return env.node
}

// EraseNode removes the node registered under id. Every upstream node
// feeding it has the corresponding dependency entry removed; every
// downstream node it feeds has that slot cleared (left unfilled — the
// downstream node itself is not erased). Fails with KindInvalidNodeID if
// id is unknown.
func (p *Pipeline) EraseNode(id int) error {
	env, ok := p.nodes[id]
	if !ok {
		return errInvalidNodeID
	}

	for _, upID := range env.connections {
		up, ok := p.nodes[upID]
		if !ok {
			continue
		}
		up.dependencies = removeDependency(up.dependencies, id)
	}

	for _, dep := range env.dependencies {
		down, ok := p.nodes[dep.downstream]
		if !ok {
			continue
		}
		delete(down.connections, dep.slot)
		_ = down.node.Connect(nil, dep.slot)
	}

	delete(p.nodes, id)
	p.logger.Debugw("node erased", "id", id, "name", env.node.Name())
	return nil
}

// Connect wires src's output into dst's input slot. All preconditions are
// checked, in the order below, before any mutation; on failure the
// pipeline is left exactly as it was.
//
//  1. KindInvalidNodeID   if either id is unknown.
//  2. KindSlotAlreadyUsed if dst's slot is already occupied.
//  3. KindNoSuchSlot      if slot is out of range for dst's arity.
//  4. KindConnectionTypeMismatch if src's output token doesn't match
//     dst's input token at slot.
func (p *Pipeline) Connect(src, dst int, slot int) error {
	srcEnv, ok := p.nodes[src]
	if !ok {
		return errInvalidNodeID
	}
	dstEnv, ok := p.nodes[dst]
	if !ok {
		return errInvalidNodeID
	}

	if _, used := dstEnv.connections[slot]; used {
		return errSlotAlreadyUsed
	}

	inputs := dstEnv.node.InputTypes()
	if slot < 0 || slot >= len(inputs) {
		return errNoSuchSlot
	}

	if srcEnv.node.OutputType() != inputs[slot] {
		return errConnectionTypeMismatch
	}

	if err := dstEnv.node.Connect(srcEnv.node, slot); err != nil {
		return err
	}

	dstEnv.connections[slot] = src
	srcEnv.dependencies = append(srcEnv.dependencies, dependency{downstream: dst, slot: slot})

	p.logger.Debugw("connected", "src", src, "dst", dst, "slot", slot)
	return nil
}

// Disconnect clears every slot of dst currently fed by src and removes the
// matching dependency entries from src. A no-op, not an error, if src and
// dst are not connected. Fails with KindInvalidNodeID if either id is
// unknown.
func (p *Pipeline) Disconnect(src, dst int) error {
	srcEnv, ok := p.nodes[src]
	if !ok {
		return errInvalidNodeID
	}
	dstEnv, ok := p.nodes[dst]
	if !ok {
		return errInvalidNodeID
	}

	// Snapshot the matching slots before mutating dstEnv.connections, since
	// we cannot safely delete from a map while ranging over it.
	var slots []int
	for slot, upID := range dstEnv.connections {
		if upID == src {
			slots = append(slots, slot)
		}
	}

	for _, slot := range slots {
		delete(dstEnv.connections, slot)
		_ = dstEnv.node.Connect(nil, slot)
	}

	srcEnv.dependencies = removeDependency(srcEnv.dependencies, dst)

	p.logger.Debugw("disconnected", "src", src, "dst", dst)
	return nil
}

// GetDependencies returns a snapshot of the downstream (node id, slot)
// pairs fed by id's output — one entry per outgoing edge, duplicated if
// the same source feeds two slots of the same target. Fails with
// KindInvalidNodeID if id is unknown.
func (p *Pipeline) GetDependencies(id int) ([]Dependency, error) {
	env, ok := p.nodes[id]
	if !ok {
		return nil, errInvalidNodeID
	}

	deps := make([]Dependency, len(env.dependencies))
	for i, d := range env.dependencies {
		deps[i] = Dependency{Downstream: d.downstream, Slot: d.slot}
	}
	return deps, nil
}

// Dependency is a downstream (node id, slot) pair fed by some node's output.
type Dependency struct {
	Downstream int
	Slot       int
}

// Move transfers ownership of every node currently in p to a freshly
// returned Pipeline, leaving p empty but still usable: further CreateNode
// calls on p continue allocating ids from wherever its counter had
// reached, never reusing an id that was ever handed out by p. Go has no
// destructive move; this method is the explicit stand-in for a pipeline
// that must be move-only rather than copyable.
func (p *Pipeline) Move() *Pipeline {
	moved := &Pipeline{
		name:   p.name,
		nextID: p.nextID,
		nodes:  p.nodes,
		logger: p.logger,
		cfg:    p.cfg,
		tick:   p.tick,
	}
	p.nodes = make(map[int]*envelope)
	return moved
}

// ids returns the live node ids in ascending order.
func (p *Pipeline) ids() []int {
	ids := make([]int, 0, len(p.nodes))
	for id := range p.nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func removeDependency(deps []dependency, downstream int) []dependency {
	out := deps[:0]
	for _, d := range deps {
		if d.downstream != downstream {
			out = append(out, d)
		}
	}
	return out
}
