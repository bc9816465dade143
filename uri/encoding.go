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
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// percentEncode is a helper that percent-encodes non-ASCII characters in a
// string. It is used by URI.ToASCII() to render the pure-ASCII URI form.
func percentEncode(s string, b *strings.Builder) {
	for _, ru := range s {
		if ru <= unicode.MaxASCII {
			b.WriteRune(ru)
		} else {
			var buf [utf8.UTFMax]byte
			n := utf8.EncodeRune(buf[:], ru)
			for i := range n {
				fmt.Fprintf(b, "%%%02X", buf[i])
			}
		}
	}
}

// readURLCodepointOrEchar processes a single rune. If it's a '%' it handles
// percent-encoding. Otherwise, it validates the rune against the provided
// predicate and writes it to the output.
func (p *uriParser) readURLCodepointOrEchar(r rune, valid func(rune) bool) error {
	if r == '%' {
		return p.readEchar()
	}

	if valid(r) {
		p.output.writeRune(r)
		return nil
	}

	return &kindError{message: "Invalid URI character", char: r}
}

// readEchar handles a percent-encoded octet (e.g., "%20").
func (p *uriParser) readEchar() error {
	c1, ok1 := p.input.next()
	c2, ok2 := p.input.next()
	if !ok1 || !ok2 || !isASCIIHexDigit(c1) || !isASCIIHexDigit(c2) {
		details := "%"
		if ok1 {
			details += string(c1)
		}
		if ok2 {
			details += string(c2)
		}
		return &kindError{message: "Invalid URI percent encoding", details: details}
	}
	p.output.writeRune('%')
	p.output.writeRune(c1)
	p.output.writeRune(c2)
	return nil
}

// unhex returns the value of a single ASCII hex digit. The caller must have
// checked the digit with isASCIIHexDigit first.
func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// PctString is a view over a possibly percent-encoded piece of a URI, such
// as a query-parameter key or value. It references the original input and
// owns no storage of its own. Decoding happens on demand, either lazily
// (EqualString, Decoded) or into a caller-supplied scratch buffer
// (DecodeInto).
type PctString string

// String returns the raw, still-encoded text of the view.
func (s PctString) String() string {
	return string(s)
}

// DecodeInto percent-decodes the view into the caller-supplied scratch
// buffer and returns the decoded text. The buffer is reset first, so its
// previous contents are overwritten on every call.
func (s PctString) DecodeInto(buf *bytes.Buffer) (string, error) {
	return decodeInto(string(s), buf, false)
}

// EqualString compares the decoded value of the view against plain text
// without materializing a decoded copy. A malformed percent escape never
// compares equal.
func (s PctString) EqualString(plain string) bool {
	return equalDecoded(string(s), plain, false)
}

// Decoded returns a cursor over the decoded bytes of the view.
func (s PctString) Decoded() PctIter {
	return PctIter{s: string(s)}
}

// PctIter iterates over the decoded bytes of a PctString one at a time,
// without allocating. A malformed percent escape stops the iteration; the
// caller can distinguish that from normal exhaustion via Err.
type PctIter struct {
	s   string
	i   int
	err error
}

// Next returns the next decoded byte, or false when the input is exhausted
// or malformed.
func (it *PctIter) Next() (byte, bool) {
	if it.err != nil || it.i >= len(it.s) {
		return 0, false
	}
	c := it.s[it.i]
	if c != '%' {
		it.i++
		return c, true
	}
	if it.i+2 >= len(it.s) || !isASCIIHexDigit(rune(it.s[it.i+1])) || !isASCIIHexDigit(rune(it.s[it.i+2])) {
		it.err = newParseError(&kindError{message: "Invalid percent encoding", details: it.s[it.i:]})
		return 0, false
	}
	b := unhex(it.s[it.i+1])<<4 | unhex(it.s[it.i+2])
	it.i += 3
	return b, true
}

// Err reports whether the iteration stopped on a malformed percent escape.
func (it *PctIter) Err() error {
	return it.err
}

// decodeInto writes the percent-decoded form of s into buf and returns the
// decoded text. When plusIsSpace is set, '+' decodes to a space, which is
// the convention for query components.
func decodeInto(s string, buf *bytes.Buffer, plusIsSpace bool) (string, error) {
	buf.Reset()
	for i := 0; i < len(s); {
		switch c := s[i]; {
		case c == '%':
			if i+2 >= len(s) || !isASCIIHexDigit(rune(s[i+1])) || !isASCIIHexDigit(rune(s[i+2])) {
				return "", newParseError(&kindError{message: "Invalid percent encoding", details: s[i:]})
			}
			buf.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 3
		case plusIsSpace && c == '+':
			buf.WriteByte(' ')
			i++
		default:
			buf.WriteByte(c)
			i++
		}
	}
	return buf.String(), nil
}

// equalDecoded compares the decoded form of s against plain text byte by
// byte, without materializing the decoded string.
func equalDecoded(s, plain string, plusIsSpace bool) bool {
	j := 0
	for i := 0; i < len(s); {
		var c byte
		switch {
		case s[i] == '%':
			if i+2 >= len(s) || !isASCIIHexDigit(rune(s[i+1])) || !isASCIIHexDigit(rune(s[i+2])) {
				return false
			}
			c = unhex(s[i+1])<<4 | unhex(s[i+2])
			i += 3
		case plusIsSpace && s[i] == '+':
			c = ' '
			i++
		default:
			c = s[i]
			i++
		}
		if j >= len(plain) || plain[j] != c {
			return false
		}
		j++
	}
	return j == len(plain)
}
