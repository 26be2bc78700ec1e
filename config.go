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
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Config is a configuration object safe for concurrent gets but not for
// sets. Items are addressed by a dot-separated path, both for setting and
// getting. It never affects the scheduler's pull semantics or
// termination — Config is read only by decorative knobs (how verbosely to
// log a tick, where an example node should persist to disk): Step reads
// "scheduler.log_every" only to decide when to log a tick boundary, and
// IsValid never reads it.
//
// Valid paths:
//
//	a
//	a.nest.key
//	a.nest.key.array.#       append to an array
//	a.nest.key.array.#.key   append a nested element to an array
//	a.nest.key.array.2       get/set the 3rd element of an array
//	a.nest.key.array.2.key   get/set a nested element of an array element
type Config struct {
	data interface{}
}

// NewConfig creates a Config from an existing map[string]interface{}, or
// an empty Config if data is nil.
func NewConfig(data map[string]interface{}) (c Config) {
	if data == nil {
		data = make(map[string]interface{})
	}
	c.data = data
	return c
}

// IsSet returns true if path is set. path may be a single dot-separated
// string or a variadic list of keys.
func (c Config) IsSet(path ...string) (ok bool) {
	if len(path) == 1 {
		path = strings.Split(path[0], ".")
	}
	return search(c.data, path) != nil
}

// Get retrieves the Config item for path.
func (c Config) Get(path ...string) (config Config) {
	if len(path) == 1 {
		path = strings.Split(path[0], ".")
	}
	return Config{search(c.data, path)}
}

// String returns the string value of the current item, or def if the
// item is nil or fails to parse as a string.
func (c Config) String(def string) (value string) {
	if c.data == nil {
		return def
	}
	if value, err := cast.ToStringE(c.data); err == nil {
		return value
	}
	return def
}

// Bool returns the bool value of the current item, or def.
func (c Config) Bool(def bool) (value bool) {
	if c.data == nil {
		return def
	}
	if value, err := cast.ToBoolE(c.data); err == nil {
		return value
	}
	return def
}

// Duration returns the time.Duration value of the current item, or def.
func (c Config) Duration(def time.Duration) (value time.Duration) {
	if c.data == nil {
		return def
	}
	if value, err := cast.ToDurationE(c.data); err == nil {
		return value
	}
	return def
}

// Float64 returns the float64 value of the current item, or def.
func (c Config) Float64(def float64) (value float64) {
	if c.data == nil {
		return def
	}
	if value, err := cast.ToFloat64E(c.data); err == nil {
		return value
	}
	return def
}

// Int returns the int value of the current item, or def.
func (c Config) Int(def int) (value int) {
	if c.data == nil {
		return def
	}
	if value, err := cast.ToIntE(c.data); err == nil {
		return value
	}
	return def
}

// Array returns the config array for the current item, or nil if it is
// not an array.
func (c Config) Array() (value []Config) {
	arr, ok := c.data.([]interface{})
	if !ok {
		return nil
	}
	value = make([]Config, 0, len(arr))
	for _, v := range arr {
		value = append(value, Config{v})
	}
	return value
}

// Set stores value at path, creating any intermediate maps or slices
// needed.
func (c Config) Set(value interface{}, path ...string) {
	if len(path) == 1 {
		path = strings.Split(path[0], ".")
	}
	set(c.data, value, path)
}

func search(source interface{}, path []string) (data interface{}) {
	data = source

	for _, key := range path {
		switch tmp := data.(type) {
		case map[string]interface{}:
			value, ok := tmp[key]
			if !ok {
				return nil
			}
			data = value

		case []interface{}:
			idx, err := strconv.ParseInt(key, 10, 64)
			if err != nil || int(idx) >= len(tmp) {
				return nil
			}
			data = tmp[idx]

		default:
			return nil
		}
	}

	return data
}

func set(source, value interface{}, path []string) {
	m, ok := source.(map[string]interface{})
	if !ok || m == nil {
		return
	}

	for i := 0; i < len(path); i++ {
		currentKey := path[i]
		nextKey := ""
		if i < len(path)-1 {
			nextKey = path[i+1]
		}

		if idx, err := strconv.ParseInt(nextKey, 10, 64); err == nil || nextKey == "#" {
			i++

			tmp, _ := m[currentKey].([]interface{})

			if nextKey == "#" {
				if i < len(path)-1 {
					next := make(map[string]interface{})
					tmp = append(tmp, next)
					m[currentKey] = tmp
					m = next
					continue
				}

				tmp = append(tmp, value)
				m[currentKey] = tmp
				return
			}

			if len(tmp)-1 < int(idx) {
				tmp = append(tmp, make([]interface{}, int(idx+1)-len(tmp))...)
			}

			if i < len(path)-1 {
				next, ok := tmp[idx].(map[string]interface{})
				if !ok {
					next = make(map[string]interface{})
					tmp[idx] = next
				}
				m[currentKey] = tmp
				m = next
				continue
			}

			tmp[idx] = value
			m[currentKey] = tmp
			return
		}

		if i < len(path)-1 {
			next, ok := m[currentKey].(map[string]interface{})
			if !ok {
				next = make(map[string]interface{})
				m[currentKey] = next
			}
			m = next
			continue
		}

		m[currentKey] = value
	}
}
