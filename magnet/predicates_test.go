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

//nolint:testpackage // This is a white-box test file for an internal package. It needs to be in the same package to test unexported functions.
package magnet

import (
	"bytes"
	"testing"

	"github.com/JonKalb/boost.url/uri"
)

// TestIsExactTopic tests recognition of the "xt" and "xt.N" query keys,
// including percent-encoded spellings.
func TestIsExactTopic(t *testing.T) {
	tests := []struct {
		name string
		key  uri.PctString
		want bool
	}{
		{"plain xt", "xt", true},
		{"numbered", "xt.1", true},
		{"multi-digit number", "xt.23", true},
		{"encoded xt", "%78%74", true},
		{"encoded dot", "xt%2E1", true},
		{"letter after dot", "xt.a", false},
		{"trailing letter after digits", "xt.1a", false},
		{"dot with no digits", "xt.", false},
		{"no dot", "xta", false},
		{"uppercase", "XT", false},
		{"prefix only", "x", false},
		{"empty", "", false},
		{"different key", "tr", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := uri.Param{Key: tt.key, Value: "urn:btih:abc", HasValue: true}
			if got := isExactTopic(p); got != tt.want {
				t.Errorf("isExactTopic(key %q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

// TestURLWithKeyMatch tests the predicate behind the URL-list fields:
// a parameter matches only if its key is right and its decoded value
// parses as a URL. Anything else is a silent non-match.
func TestURLWithKeyMatch(t *testing.T) {
	tests := []struct {
		name  string
		param uri.Param
		want  bool
	}{
		{
			name:  "valid tracker",
			param: uri.Param{Key: "tr", Value: "udp%3A%2F%2Ftracker.example.com%3A80", HasValue: true},
			want:  true,
		},
		{
			name:  "encoded key still matches",
			param: uri.Param{Key: "%74%72", Value: "udp%3A%2F%2Ftracker.example.com%3A80", HasValue: true},
			want:  true,
		},
		{
			name:  "decoded value is not a URL",
			param: uri.Param{Key: "tr", Value: "no-scheme-here", HasValue: true},
			want:  false,
		},
		{
			name:  "value does not decode",
			param: uri.Param{Key: "tr", Value: "%zz", HasValue: true},
			want:  false,
		},
		{
			name:  "missing value",
			param: uri.Param{Key: "tr"},
			want:  false,
		},
		{
			name:  "wrong key",
			param: uri.Param{Key: "xs", Value: "udp%3A%2F%2Ftracker.example.com%3A80", HasValue: true},
			want:  false,
		},
	}
	var buf bytes.Buffer
	filter := urlWithKey{key: "tr", buf: &buf}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filter.match(tt.param); got != tt.want {
				t.Errorf("match(%+v) = %v, want %v", tt.param, got, tt.want)
			}
		})
	}
}

// TestSplitTopicPath tests the last-colon split of an exact topic's URN
// path into protocol chain and infohash.
func TestSplitTopicPath(t *testing.T) {
	tests := []struct {
		name         string
		value        uri.PctString
		wantProtocol string
		wantHash     string
	}{
		{
			name:         "btih urn",
			value:        "urn:btih:d2474e86c95b19b8bcfdb92bc12c9d44667cfa36",
			wantProtocol: "btih",
			wantHash:     "d2474e86c95b19b8bcfdb92bc12c9d44667cfa36",
		},
		{
			name:         "longer protocol chain splits at the last colon",
			value:        "urn:tree:tiger:abcdef",
			wantProtocol: "tree:tiger",
			wantHash:     "abcdef",
		},
		{
			name:         "path without colon is a bare hash",
			value:        "urn:abcdef",
			wantProtocol: "",
			wantHash:     "abcdef",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := uri.Param{Key: "xt", Value: tt.value, HasValue: true}
			protocol, hash := splitTopicPath(p)
			if protocol != tt.wantProtocol || hash != tt.wantHash {
				t.Errorf("splitTopicPath(%q) = (%q, %q), want (%q, %q)",
					tt.value, protocol, hash, tt.wantProtocol, tt.wantHash)
			}
		})
	}
}
