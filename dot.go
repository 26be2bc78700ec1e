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
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Dot renders p as a DOT-format digraph and returns it as a string.
func Dot(p *Pipeline) string {
	sb := &strings.Builder{}
	// WriteDot never fails against a strings.Builder.
	_ = WriteDot(sb, p)
	return sb.String()
}

// WriteDot renders p to w as a DOT-format digraph: a "digraph G {" header,
// one quoted "<id> <name>" line per node in ascending id order, a blank
// line, one quoted "<src> <name>" -> "<dst> <name>" line per outgoing edge
// (sorted by downstream id within each source, duplicates preserved), and
// a closing "}".
func WriteDot(w io.Writer, p *Pipeline) error {
	ids := p.ids()

	if _, err := io.WriteString(w, "digraph G {\n"); err != nil {
		return err
	}

	for _, id := range ids {
		label := dotLabel(id, p.nodes[id].node.Name())
		if _, err := fmt.Fprintf(w, "  %s\n", label); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	for _, id := range ids {
		env := p.nodes[id]
		deps := make([]dependency, len(env.dependencies))
		copy(deps, env.dependencies)
		sort.SliceStable(deps, func(i, j int) bool {
			return deps[i].downstream < deps[j].downstream
		})

		srcLabel := dotLabel(id, env.node.Name())
		for _, dep := range deps {
			dstLabel := dotLabel(dep.downstream, p.nodes[dep.downstream].node.Name())
			if _, err := fmt.Fprintf(w, "  %s -> %s\n", srcLabel, dstLabel); err != nil {
				return err
			}
		}
	}

	_, err := io.WriteString(w, "}\n")
	return err
}

// dotLabel renders a node's "<id> <name>" label in DOT double-quoted form
// with standard C-style escaping of interior quotes and backslashes.
func dotLabel(id int, name string) string {
	return strconv.Quote(strconv.Itoa(id) + " " + name)
}
