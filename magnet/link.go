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

// Link is a validated view over a magnet link.
//
// Unlike a generic uri.URI, which only represents the general URI syntax,
// a Link exposes the fields that are meaningful to the magnet scheme
// (exact topics, trackers, sources, display name, ...) while ignoring
// elements of the general syntax that are not relevant to it. A Link is
// only ever produced by Parse, so every Link satisfies the scheme's
// invariants: the scheme is "magnet" and the query contains at least one
// exact topic whose value parses as a URI.
//
// The view owns no buffer; its lifetime is bound to the parsed input's
// lifetime, and every accessor recomputes its result on demand.
//
// Specifications:
//   - BEP 9: Extension for Peers to Send Metadata Files
//   - BEP 53: Magnet URI extension
//   - https://en.wikipedia.org/wiki/Magnet_URI_scheme
type Link struct {
	u *uri.URI
}

// URI returns the generically-parsed URI backing the link.
func (l *Link) URI() *uri.URI {
	return l.u
}

// String returns the original text of the link.
func (l *Link) String() string {
	return l.u.String()
}

// ExactTopics returns a view of the URNs naming the file or files.
//
// An exact topic is the main field of a magnet link. A magnet link must
// contain one or more exact topics with the query key "xt" or
// ["xt.1", "xt.2", ...]. The value of each exact topic is a URN carrying
// the file hash and the protocol used to access the file.
func (l *Link) ExactTopics() View[*uri.URI] {
	return NewView(l.u.Params(), isExactTopic, toTopicURI)
}

// InfoHashes returns a view of the info hashes of all exact topics.
func (l *Link) InfoHashes() View[string] {
	return NewView(l.u.Params(), isExactTopic, toInfoHash)
}

// Protocols returns a view of the protocols of all exact topics.
func (l *Link) Protocols() View[string] {
	return NewView(l.u.Params(), isExactTopic, toProtocol)
}

// keysView builds a view of the decoded URLs carried by parameters with
// the given key. Several magnet fields are lists of doubly percent-encoded
// URLs sharing one query key; buffer is the scratch space each element is
// decoded into.
func (l *Link) keysView(key string, buffer *bytes.Buffer) View[string] {
	filter := urlWithKey{key: key, buf: buffer}
	return NewView(l.u.Params(), filter.match, toDecodedValue(buffer))
}

// AddressTrackers returns a view of the tracker URLs of the link ("tr").
// A tracker URL is used to obtain resources for BitTorrent downloads.
// buffer is temporary storage for decoding each URL the view yields.
func (l *Link) AddressTrackers(buffer *bytes.Buffer) View[string] {
	return l.keysView("tr", buffer)
}

// ExactSources returns a view of the exact source URLs of the link ("xs"):
// direct download links to the file.
func (l *Link) ExactSources(buffer *bytes.Buffer) View[string] {
	return l.keysView("xs", buffer)
}

// AcceptableSources returns a view of the acceptable source URLs of the
// link ("as"): direct download links usable as fallbacks for the exact
// sources.
func (l *Link) AcceptableSources(buffer *bytes.Buffer) View[string] {
	return l.keysView("as", buffer)
}

// ManifestTopics returns a view of the manifest topic URLs of the link
// ("mt"): links to metafiles that contain a list of magnet links
// (MAGnet MAnifest).
func (l *Link) ManifestTopics(buffer *bytes.Buffer) View[string] {
	return l.keysView("mt", buffer)
}

// WebSeed returns a view of the web seed URLs of the link ("ws"): the
// payload data served over HTTP(S).
func (l *Link) WebSeed(buffer *bytes.Buffer) View[string] {
	return l.keysView("ws", buffer)
}

// KeywordTopic returns the search keywords to use in P2P networks ("kt"),
// decoded, and whether the field is present.
//
// Example: kt=martin+luther+king+mp3
func (l *Link) KeywordTopic() (string, bool) {
	return l.decodedParam("kt")
}

// DisplayName returns a filename to display to the user ("dn"), decoded,
// and whether the field is present. This field is only used for
// convenience.
func (l *Link) DisplayName() (string, bool) {
	return l.decodedParam("dn")
}

// Param returns the decoded value of the extension parameter "x.<name>"
// and whether it is present. Query keys with the "x." prefix carry
// informal options and parameters; these names are guaranteed to never be
// standardized.
//
// Example: x.parameter_name=parameter_data
func (l *Link) Param(name string) (string, bool) {
	for it := l.u.Params().Iter(); it.Next(); {
		p := it.Param()
		if !extKeyMatches(p.Key, name) {
			continue
		}
		// Only the first occurrence of a key counts; a valueless or
		// undecodable first occurrence makes the field absent.
		if !p.HasValue {
			return "", false
		}
		var buf bytes.Buffer
		decoded, err := p.DecodeValueInto(&buf)
		if err != nil {
			return "", false
		}
		return decoded, true
	}
	return "", false
}

// extKeyMatches reports whether the decoded key is "x." followed exactly
// by name. The decoded cursor avoids materializing the key.
func extKeyMatches(key uri.PctString, name string) bool {
	d := key.Decoded()
	for _, want := range []byte{'x', '.'} {
		c, ok := d.Next()
		if !ok || c != want {
			return false
		}
	}
	for j := 0; ; j++ {
		c, ok := d.Next()
		if !ok {
			return j == len(name) && d.Err() == nil
		}
		if j >= len(name) || name[j] != c {
			return false
		}
	}
}

// decodedParam returns the decoded value of the first parameter with the
// given key, and whether that first occurrence carries a decodable value.
// Later duplicates never stand in for a defective first occurrence.
func (l *Link) decodedParam(key string) (string, bool) {
	for it := l.u.Params().Iter(); it.Next(); {
		p := it.Param()
		if !p.KeyEquals(key) {
			continue
		}
		if !p.HasValue {
			return "", false
		}
		var buf bytes.Buffer
		decoded, err := p.DecodeValueInto(&buf)
		if err != nil {
			return "", false
		}
		return decoded, true
	}
	return "", false
}
