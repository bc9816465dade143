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

package magnet

import (
	"bytes"

	"github.com/JonKalb/boost.url/uri"
)

// isExactTopic reports whether a query parameter is a magnet "exact topic":
// its decoded key is "xt", or "xt." followed by one or more ASCII digits
// ("xt.1", "xt.23", ...). The comparison is decoding-aware, so a key
// spelled "%78%74" matches, and case-sensitive, so "XT" does not.
func isExactTopic(p uri.Param) bool {
	if p.KeyEquals("xt") {
		return true
	}
	d := p.Key.Decoded()
	for _, want := range []byte{'x', 't', '.'} {
		c, ok := d.Next()
		if !ok || c != want {
			return false
		}
	}
	digits := 0
	for {
		c, ok := d.Next()
		if !ok {
			break
		}
		if !uri.IsDigit(rune(c)) {
			return false
		}
		digits++
	}
	return digits > 0 && d.Err() == nil
}

// urlWithKey matches parameters whose decoded key equals a given literal
// and whose value is itself a URL. These nested URLs are percent-encoded
// twice, so the value is decoded once into the shared scratch buffer
// before attempting the nested parse. A decode or parse failure makes the
// parameter a non-match; it is silently skipped, never an error.
type urlWithKey struct {
	key string
	buf *bytes.Buffer
}

func (f urlWithKey) match(p uri.Param) bool {
	if !p.HasValue || !p.KeyEquals(f.key) {
		return false
	}
	decoded, err := p.DecodeValueInto(f.buf)
	if err != nil {
		return false
	}
	_, err = uri.Parse(decoded)
	return err == nil
}
