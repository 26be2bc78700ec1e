package pipeline_test

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
	"github.com/stretchr/testify/require"

	"github.com/brunotm/pipeline"
	"github.com/brunotm/pipeline/mock"
)

// S5: a straight-line source -> sink pipeline renders byte-exact DOT.
func TestDotStraightLine(t *testing.T) {
	p := pipeline.New("dot")
	src := p.CreateNode(mock.New("src", nil, intToken()))
	sink := p.CreateNode(mock.New("sink", []pipeline.Token{intToken()}, pipeline.Void))
	require.NoError(t, p.Connect(src, sink, 0))

	want := "digraph G {\n" +
		"  \"1 src\"\n" +
		"  \"2 sink\"\n" +
		"\n" +
		"  \"1 src\" -> \"2 sink\"\n" +
		"}\n"

	assert.Equal(t, want, pipeline.Dot(p))
}

// S6: two slots of the same downstream fed by the same source render as
// two distinct, sorted edge lines — duplicates are preserved, not merged.
func TestDotDuplicateEdgesPreserved(t *testing.T) {
	p := pipeline.New("dot")
	src := p.CreateNode(mock.New("src", nil, intToken()))
	sink := p.CreateNode(mock.New("sink", []pipeline.Token{intToken(), intToken()}, pipeline.Void))
	require.NoError(t, p.Connect(src, sink, 0))
	require.NoError(t, p.Connect(src, sink, 1))

	want := "digraph G {\n" +
		"  \"1 src\"\n" +
		"  \"2 sink\"\n" +
		"\n" +
		"  \"1 src\" -> \"2 sink\"\n" +
		"  \"1 src\" -> \"2 sink\"\n" +
		"}\n"

	assert.Equal(t, want, pipeline.Dot(p))
}

func TestDotEdgesSortedByDownstreamID(t *testing.T) {
	p := pipeline.New("dot")
	src := p.CreateNode(mock.New("src", nil, intToken()))
	sinkB := p.CreateNode(mock.New("b", []pipeline.Token{intToken()}, pipeline.Void))
	sinkA := p.CreateNode(mock.New("a", []pipeline.Token{intToken()}, pipeline.Void))

	// connect to the higher id first; the rendered order must still be
	// ascending by downstream id.
	require.NoError(t, p.Connect(src, sinkB, 0))
	require.NoError(t, p.Connect(src, sinkA, 0))

	want := "digraph G {\n" +
		"  \"1 src\"\n" +
		"  \"2 b\"\n" +
		"  \"3 a\"\n" +
		"\n" +
		"  \"1 src\" -> \"2 b\"\n" +
		"  \"1 src\" -> \"3 a\"\n" +
		"}\n"

	assert.Equal(t, want, pipeline.Dot(p))
}

func TestDotLabelEscapesQuotes(t *testing.T) {
	p := pipeline.New("dot")
	p.CreateNode(mock.New(`weird "name"`, nil, intToken()))

	got := pipeline.Dot(p)
	assert.Contains(t, got, `"1 weird \"name\""`)
}
