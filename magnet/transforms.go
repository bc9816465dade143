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
	"strings"

	"github.com/JonKalb/boost.url/uri"
)

// toTopicURI parses a parameter's value as a URI. Exact-topic values sit
// directly in the query, so they are only percent-encoded once and the
// still-encoded text can be parsed as-is. The grammar rule has already
// validated every exact topic, so the parse cannot fail for parameters
// reaching this transform; a nil result marks the defensive case anyway.
func toTopicURI(p uri.Param) *uri.URI {
	u, err := uri.Parse(string(p.Value))
	if err != nil {
		return nil
	}
	return u
}

// splitTopicPath parses an exact topic's value and splits its path at the
// last colon: "urn:btih:<hash>" has path "btih:<hash>", which splits into
// the protocol chain "btih" and the infohash "<hash>". A path without a
// colon is treated as a bare hash with an empty protocol.
func splitTopicPath(p uri.Param) (protocol, hash string) {
	u, err := uri.Parse(string(p.Value))
	if err != nil {
		return "", ""
	}
	path := u.Path()
	if i := strings.LastIndexByte(path, ':'); i >= 0 {
		return path[:i], path[i+1:]
	}
	return "", path
}

// toInfoHash extracts the infohash from an exact topic's value.
func toInfoHash(p uri.Param) string {
	_, hash := splitTopicPath(p)
	return hash
}

// toProtocol extracts the protocol chain from an exact topic's value.
func toProtocol(p uri.Param) string {
	protocol, _ := splitTopicPath(p)
	return protocol
}

// toDecodedValue returns a transform that reads back the scratch buffer
// the urlWithKey predicate just decoded into. The materialized string is
// taken before the cursor advances, so buffer reuse across elements is
// safe for the returned values.
func toDecodedValue(buf *bytes.Buffer) Transform[string] {
	return func(uri.Param) string {
		return buf.String()
	}
}
