package nodes_test

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
	"github.com/brunotm/pipeline/nodes"
)

func TestSumAddsBothInputs(t *testing.T) {
	p := pipeline.New("sum")

	left := p.CreateNode(mock.New("left", nil, pipeline.TokenOf[int](), pipeline.Ready))
	right := p.CreateNode(mock.New("right", nil, pipeline.TokenOf[int](), pipeline.Ready))
	sum := p.CreateNode(nodes.NewSum("sum"))

	require.NoError(t, p.Connect(left, sum, 0))
	require.NoError(t, p.Connect(right, sum, 1))

	leftNode := p.GetNode(left).(*mock.Node)
	rightNode := p.GetNode(right).(*mock.Node)
	leftNode.PollNext()
	rightNode.PollNext()

	sumNode := p.GetNode(sum).(*pipeline.Component2Node[int, int, int])
	assert.Equal(t, pipeline.Ready, sumNode.PollNext())

	producer := p.GetNode(sum).(pipeline.Producer[int])
	assert.Equal(t, 2, producer.Value())
}
