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
	"reflect"

	"github.com/cespare/xxhash"
)

// Token is an opaque, comparable handle representing a value type. Two
// tokens compare equal with == iff they denote the same Go type. Void is
// the distinguished token meaning "no value"; a node whose OutputType is
// Void is a sink.
type Token struct {
	id   uint64
	name string
	typ  reflect.Type
}

// Void denotes "no value". A node with OutputType() == Void is a sink.
var Void = Token{}

// String returns the token's underlying type name, useful for diagnostics
// and DOT labels. It is not part of the equality contract.
func (t Token) String() string {
	if t == Void {
		return "void"
	}
	return t.name
}

// IsVoid reports whether t is the distinguished Void token.
func (t Token) IsVoid() bool {
	return t == Void
}

// TokenOf returns the stable type token for T. Calling TokenOf[T]() from
// anywhere in a program always yields the same token, and TokenOf[T]() ==
// TokenOf[U]() iff T and U are the same type.
func TokenOf[T any]() Token {
	var zero T
	typ := reflect.TypeOf(&zero).Elem()
	name := typ.String()
	// xor with a fixed salt and force the low bit set so that a type named
	// in a way that happens to hash to 0 never collides with Void's zero id.
	// The reflect.Type itself is kept so that two distinct types sharing the
	// same printed name still yield different tokens.
	h := xxhash.Sum64String(name) ^ 0x9e3779b97f4a7c15
	return Token{id: h | 1, name: name, typ: typ}
}
