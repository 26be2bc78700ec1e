package nodes

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

import "github.com/brunotm/pipeline"

// NewSum builds a two-input component that outputs the sum of its two
// upstream int values on every tick both are Ready.
func NewSum(name string) *pipeline.Component2Node[int, int, int] {
	var result int

	poll := func(in0, in1 pipeline.Producer[int]) pipeline.Poll {
		result = in0.Value() + in1.Value()
		return pipeline.Ready
	}

	value := func() int { return result }

	return pipeline.NewComponent2(name, poll, value)
}
