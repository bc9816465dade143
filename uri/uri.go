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

// Package uri provides a validating parser for absolute URIs (RFC 3986,
// with the internationalized character repertoire of RFC 3987) together
// with zero-copy views over the parsed components.
//
// The package offers:
//   - URI: a view over a parsed absolute URI exposing its scheme,
//     authority, path, query, and fragment as slices of the original
//     input. The view owns no buffer; its lifetime is bound to the input.
//   - PctString: a lazy view over percent-encoded text, with
//     decode-into-buffer and decoding-aware equality.
//   - Params: a lazy, order-preserving enumerator over the key/value
//     pairs of a query string.
//
// Scheme-specific grammars (for example a magnet-link rule) are expected
// to run the generic parser first and then walk the query parameters to
// enforce their own invariants.
package uri

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// ParseError is the error type returned by parsing functions in this package.
// It contains a descriptive message and may wrap a more specific internal error.
type ParseError struct {
	Message string
	Err     error
}

// Error returns the string representation of the parse error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("URI parse error: %s", e.Message)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// URI represents a parsed absolute URI. It is an immutable view: the
// original string is stored exactly as provided, and all component
// accessors slice it without copying.
type URI struct {
	uri       string
	positions Positions
}

// Parse parses and validates a string as an absolute URI. A fragment is
// permitted. The string is parsed as-is, without applying any Unicode
// normalization, which preserves the exact character sequence of the input.
// Inputs without a scheme are rejected; this package has no notion of a
// relative reference.
func Parse(s string) (*URI, error) {
	pos, err := run(s, true, &voidOutputBuffer{})
	if err != nil {
		return nil, newParseError(err)
	}

	return &URI{uri: s, positions: pos}, nil
}

// ParseAbsolute parses a string against the RFC 3986 absolute-URI rule,
// which differs from Parse in that a fragment is rejected. Scheme-specific
// grammar rules that compose with larger grammars delegate to this form.
func ParseAbsolute(s string) (*URI, error) {
	pos, err := run(s, false, &voidOutputBuffer{})
	if err != nil {
		return nil, newParseError(err)
	}

	return &URI{uri: s, positions: pos}, nil
}

// ParseNormalized first normalizes the input string to Unicode
// Normalization Form C (NFC) and then parses it. This is useful when the
// source of the string is not from a pre-normalized Unicode source (e.g.,
// read from paper or converted from a legacy encoding) and canonically
// equivalent inputs must be treated as identical.
func ParseNormalized(s string) (*URI, error) {
	normalized := norm.NFC.String(s)

	pos, err := run(normalized, true, &voidOutputBuffer{})
	if err != nil {
		return nil, newParseError(err)
	}

	return &URI{uri: normalized, positions: pos}, nil
}

// String returns the underlying string representation of the URI.
func (u *URI) String() string {
	return u.uri
}

// Scheme returns the scheme component of the URI (e.g., "magnet"). It is
// guaranteed to be present.
func (u *URI) Scheme() string {
	// The scheme ends one character before the colon.
	return u.uri[:u.positions.SchemeEnd-1]
}

// Authority returns the authority component of the URI (e.g., "example.com:80")
// and a boolean indicating whether it was present. The leading "//" is not included.
func (u *URI) Authority() (string, bool) {
	if u.positions.AuthorityEnd <= u.positions.SchemeEnd {
		return "", false
	}

	authorityComponent := u.uri[u.positions.SchemeEnd:u.positions.AuthorityEnd]
	return strings.TrimPrefix(authorityComponent, "//"), true
}

// Path returns the path component of the URI. A path is always present,
// though it may be an empty string.
func (u *URI) Path() string {
	return u.uri[u.positions.AuthorityEnd:u.positions.PathEnd]
}

// Query returns the query component of the URI (the part after "?", without the "?")
// and a boolean indicating whether it was present.
func (u *URI) Query() (string, bool) {
	if u.positions.PathEnd >= u.positions.QueryEnd {
		return "", false
	}
	// The query starts one character after the '?'.
	return u.uri[u.positions.PathEnd+1 : u.positions.QueryEnd], true
}

// Fragment returns the fragment component of the URI (the part after "#", without the "#")
// and a boolean indicating whether it was present.
func (u *URI) Fragment() (string, bool) {
	if u.positions.QueryEnd >= len(u.uri) {
		return "", false
	}
	// The fragment starts one character after the '#'.
	return u.uri[u.positions.QueryEnd+1:], true
}

// ToASCII renders the URI in its pure-ASCII form, strictly following
// RFC 3987, Section 3.1. It normalizes all components to NFC,
// percent-encodes any non-ASCII characters using their UTF-8
// representation, and applies IDNA (ToASCII) to the host component so the
// result is resolvable in DNS. IP literals are passed through unchanged.
func (u *URI) ToASCII() string {
	var builder strings.Builder
	builder.Grow(len(u.uri))

	builder.WriteString(u.Scheme())
	builder.WriteRune(':')

	if authority, ok := u.Authority(); ok {
		builder.WriteString("//")
		userinfo, host, port := splitAuthority(authority)

		// Per RFC 3987, Section 3.1, Step 1, components must be in NFC
		// before percent-encoding.
		normalizedUserinfo := norm.NFC.String(userinfo)
		percentEncode(normalizedUserinfo, &builder)
		if userinfo != "" {
			builder.WriteRune('@')
		}

		if strings.HasPrefix(host, "[") {
			builder.WriteString(host)
		} else {
			normalizedHost := norm.NFC.String(host)
			if asciiHost, err := idna.ToASCII(normalizedHost); err == nil {
				builder.WriteString(asciiHost)
			}
		}

		if port != "" {
			builder.WriteRune(':')
			builder.WriteString(port)
		}
	}

	percentEncode(norm.NFC.String(u.Path()), &builder)
	if query, ok := u.Query(); ok {
		builder.WriteRune('?')
		percentEncode(norm.NFC.String(query), &builder)
	}
	if fragment, ok := u.Fragment(); ok {
		builder.WriteRune('#')
		percentEncode(norm.NFC.String(fragment), &builder)
	}

	return builder.String()
}

// MarshalJSON implements the json.Marshaler interface, encoding the URI as a JSON string.
func (u *URI) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.uri)
}

// UnmarshalJSON implements the json.Unmarshaler interface. It decodes a JSON string
// into a URI, performing validation in the process.
func (u *URI) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}
