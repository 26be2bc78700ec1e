package persist_test

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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunotm/pipeline"
	"github.com/brunotm/pipeline/mock"
	"github.com/brunotm/pipeline/nodes/persist"
	"github.com/brunotm/pipeline/pipelinetest"
)

func openStore(t *testing.T) *persist.Store {
	t.Helper()
	store, err := persist.Open(filepath.Join(t.TempDir(), "state"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreConformance(t *testing.T) {
	pipelinetest.Conformance(t, openStore(t))
}

func TestSinkPersistsEachObservedValue(t *testing.T) {
	store := openStore(t)

	p := pipeline.New("persist")
	sinkID := p.CreateNode(persist.NewSink("sink", store, func(v int) persist.Encoder {
		return persist.IntEncoder(v)
	}))

	src := p.CreateNode(mock.New("src", nil, pipeline.TokenOf[int](), pipeline.Ready, pipeline.Ready))
	require.NoError(t, p.Connect(src, sinkID, 0))

	p.Step()
	p.Step()

	var values []string
	err := store.Range(nil, nil, func(key, value []byte) error {
		values = append(values, string(value))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, values)
}

func TestRemoveDeletesStateDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")
	store, err := persist.Open(dir)
	require.NoError(t, err)

	require.NoError(t, store.Remove())

	_, err = persist.Open(dir)
	require.NoError(t, err, "Remove must leave room for a fresh store at the same path")
}
