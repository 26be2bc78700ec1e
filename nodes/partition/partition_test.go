package partition_test

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
	"github.com/brunotm/pipeline/nodes/partition"
)

func TestComponentRoutesDeterministically(t *testing.T) {
	p := pipeline.New("partition")

	src := p.CreateNode(mock.New("src", nil, pipeline.TokenOf[int](), pipeline.Ready))
	comp := partition.NewComponent("bucket", 4)
	compID := p.CreateNode(comp)

	require.NoError(t, p.Connect(src, compID, 0))

	srcNode := p.GetNode(src).(*mock.Node)
	srcNode.PollNext()

	first := comp.PollNext()
	firstValue := comp.Value()

	second := comp.PollNext()
	secondValue := comp.Value()

	assert.Equal(t, pipeline.Ready, first)
	assert.Equal(t, pipeline.Ready, second)
	assert.Equal(t, firstValue, secondValue, "hashing the same value must route to the same bucket every time")
	assert.GreaterOrEqual(t, firstValue.Bucket, int32(0))
	assert.Less(t, firstValue.Bucket, int32(4))
}
