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

// Step executes exactly one tick and returns true iff every sink observed
// Closed during this tick (the termination signal). Step never mutates
// graph structure and never panics on its own account — a panic can only
// originate from a user PollNext implementation, in which case the
// in-flight memo is simply abandoned along with the rest of the tick.
//
// Callers must not mutate p (CreateNode, EraseNode, Connect, Disconnect)
// from inside a PollNext implementation invoked by this Step; doing so is
// undefined behaviour: a tick never mutates graph structure.
func (p *Pipeline) Step() bool {
	p.tick++

	memo := make(map[int]Poll, len(p.nodes))
	allClosed := true

	for _, id := range p.ids() {
		env := p.nodes[id]
		if !env.node.OutputType().IsVoid() {
			continue
		}
		if p.demand(id, memo) != Closed {
			allClosed = false
		}
	}

	if logEvery := p.cfg.Get("scheduler", "log_every").Int(0); logEvery > 0 && p.tick%logEvery == 0 {
		p.logger.Debugw("tick boundary", "pipeline", p.name, "tick", p.tick)
	}

	if allClosed {
		p.logger.Debugw("tick closed", "pipeline", p.name)
	}

	return allClosed
}

// Run invokes Step repeatedly until it reports every sink closed. The
// pipeline must be valid at entry; behaviour on an invalid graph is
// undefined.
func (p *Pipeline) Run() {
	for !p.Step() {
	}
}

// demand evaluates node id's poll result for the current tick, memoizing
// it so that a node with multiple downstream dependents (a diamond) is
// polled at most once per tick, following these rules:
//
//  1. If memoized, return the memoized result.
//  2. For each upstream, recursively demand it; if any returns Closed,
//     memoize and return Closed without polling id. Else if any returns
//     Empty, memoize and return Empty without polling id.
//  3. If every upstream returned Ready (or id has no upstreams), poll id
//     exactly once and memoize that result.
func (p *Pipeline) demand(id int, memo map[int]Poll) Poll {
	if result, ok := memo[id]; ok {
		return result
	}

	env := p.nodes[id]

	sawEmpty := false
	for _, upID := range env.connections {
		switch p.demand(upID, memo) {
		case Closed:
			memo[id] = Closed
			return Closed
		case Empty:
			sawEmpty = true
		}
	}

	if sawEmpty {
		memo[id] = Empty
		return Empty
	}

	result := env.node.PollNext()
	memo[id] = result
	return result
}
