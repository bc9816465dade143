/*
Copyright 2026 Magnet Authors

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

package uri

import (
	"bytes"
	"strings"
)

// Param is a single key/value query parameter. Key and Value are views
// into the original query string and may be percent-encoded; HasValue
// distinguishes "key=" (empty value) from a bare "key" (no value at all).
type Param struct {
	Key      PctString
	Value    PctString
	HasValue bool
}

// KeyEquals compares the decoded key against plain text without
// materializing a decoded copy. Query components follow the form
// convention, so '+' in the key decodes to a space.
func (p Param) KeyEquals(name string) bool {
	return equalDecoded(string(p.Key), name, true)
}

// DecodeKeyInto decodes the key into the caller-supplied scratch buffer,
// applying the query convention ('+' decodes to a space).
func (p Param) DecodeKeyInto(buf *bytes.Buffer) (string, error) {
	return decodeInto(string(p.Key), buf, true)
}

// DecodeValueInto decodes the value into the caller-supplied scratch
// buffer, applying the query convention ('+' decodes to a space).
func (p Param) DecodeValueInto(buf *bytes.Buffer) (string, error) {
	return decodeInto(string(p.Value), buf, true)
}

// Params is a lazy view over the query parameters of a URI, in their
// original order and without deduplication. Obtain a cursor with Iter;
// each call to Iter restarts from the first parameter.
type Params struct {
	query   string
	present bool
}

// Params returns a view over the query parameters of the URI. A URI
// without a query component yields an empty view.
func (u *URI) Params() Params {
	query, present := u.Query()
	return Params{query: query, present: present}
}

// Iter returns a forward cursor positioned before the first parameter.
func (ps Params) Iter() ParamIter {
	return ParamIter{rest: ps.query, done: !ps.present}
}

// ParamIter is a forward cursor over query parameters.
//
// Usage:
//
//	for it := params.Iter(); it.Next(); {
//		p := it.Param()
//		// process p
//	}
type ParamIter struct {
	rest string
	cur  Param
	done bool
}

// Next advances to the next parameter, returning false when the query is
// exhausted. Empty fields produced by runs of '&' are skipped.
func (it *ParamIter) Next() bool {
	for !it.done {
		field, rest, more := strings.Cut(it.rest, "&")
		it.rest = rest
		if !more {
			it.done = true
		}
		if field == "" {
			continue
		}
		key, value, hasValue := strings.Cut(field, "=")
		it.cur = Param{Key: PctString(key), Value: PctString(value), HasValue: hasValue}
		return true
	}
	return false
}

// Param returns the parameter at the current cursor position. It is only
// valid after a call to Next that returned true.
func (it *ParamIter) Param() Param {
	return it.cur
}
