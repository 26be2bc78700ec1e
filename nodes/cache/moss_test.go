package cache_test

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
	"github.com/brunotm/pipeline/nodes/cache"
	"github.com/brunotm/pipeline/pipelinetest"
)

func TestStoreConformance(t *testing.T) {
	store, err := cache.NewStore()
	require.NoError(t, err)
	defer store.Close()

	pipelinetest.Conformance(t, store)
}

// constProducer is a pipeline.Producer[int] double that always reports the
// same value, used to drive the dedupe component with a repeated input.
type constProducer struct {
	v int
}

func (c *constProducer) Name() string                     { return "const" }
func (c *constProducer) InputTypes() []pipeline.Token     { return nil }
func (c *constProducer) OutputType() pipeline.Token       { return pipeline.TokenOf[int]() }
func (c *constProducer) PollNext() pipeline.Poll          { return pipeline.Ready }
func (c *constProducer) Connect(pipeline.Node, int) error { return nil }
func (c *constProducer) Value() int                       { return c.v }

func TestDedupeComponentSuppressesRepeats(t *testing.T) {
	store, err := cache.NewStore()
	require.NoError(t, err)
	defer store.Close()

	node := cache.NewDedupeComponent("dedupe", store)
	require.NoError(t, node.Connect(&constProducer{v: 42}, 0))

	assert.Equal(t, pipeline.Ready, node.PollNext(), "first observation of a value must be forwarded")
	assert.Equal(t, 42, node.Value())

	assert.Equal(t, pipeline.Empty, node.PollNext(), "a repeated value must be suppressed")
}

func TestSeenTracksFirstObservation(t *testing.T) {
	store, err := cache.NewStore()
	require.NoError(t, err)
	defer store.Close()

	require.False(t, cache.Seen(store, 42))

	node := cache.NewDedupeComponent("dedupe", store)
	_ = node

	require.NoError(t, store.Set([]byte{0, 0, 0, 0, 0, 0, 0, 42}, []byte{1}))
	require.True(t, cache.Seen(store, 42))
}
