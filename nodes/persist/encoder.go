package persist

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

import "strconv"

// Encoder serializes a node's output value into the byte form a
// kvstore.Store persists.
type Encoder interface {
	Encode() ([]byte, error)
}

// ByteEncoder implements Encoder for a byte slice directly.
type ByteEncoder []byte

// Encode returns b unchanged.
func (b ByteEncoder) Encode() ([]byte, error) {
	return b, nil
}

// IntEncoder implements Encoder for an int, encoded as its decimal string.
type IntEncoder int

// Encode returns the decimal string form of i.
func (i IntEncoder) Encode() ([]byte, error) {
	return []byte(strconv.Itoa(int(i))), nil
}
