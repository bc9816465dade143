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

// Positions holds the end indices of the various components of a parsed URI.
// All indices are byte offsets into the original input string:
//
//   - SchemeEnd is the offset just past the ':' terminating the scheme.
//   - AuthorityEnd is the offset just past the authority (including the
//     leading "//"); it equals SchemeEnd when there is no authority.
//   - PathEnd is the offset just past the path.
//   - QueryEnd is the offset just past the query; it equals PathEnd when
//     there is no query.
type Positions struct {
	SchemeEnd    int
	AuthorityEnd int
	PathEnd      int
	QueryEnd     int
}

// run is the main entry point for the URI parser. It parses and validates an
// absolute URI, reporting the component positions over the input string.
func run(s string, allowFragment bool, output outputBuffer) (Positions, error) {
	p := &uriParser{
		uri:           s,
		input:         newParserInput(s),
		output:        output,
		allowFragment: allowFragment,
	}

	err := p.parseSchemeStart()
	return p.outputPositions, err
}

// uriParser holds the state for a single parsing operation.
type uriParser struct {
	uri             string
	input           *parserInput
	output          outputBuffer
	outputPositions Positions
	allowFragment   bool
}

// parseSchemeStart is the initial state of the parser. Unlike a full
// URI-reference grammar there is no fallback to a relative reference: an
// input that does not open with a scheme is rejected.
func (p *uriParser) parseSchemeStart() error {
	r, ok := p.input.peek()
	if !ok || !isASCIILetter(r) {
		return errNoScheme
	}
	return p.parseScheme()
}

// parseScheme consumes the scheme component.
func (p *uriParser) parseScheme() error {
	for {
		r, ok := p.input.next()
		if !ok {
			// Reached end of string without finding ':'.
			return errNoScheme
		}

		switch {
		case isASCIILetter(r) || IsDigit(r) || r == '+' || r == '-' || r == '.':
			p.output.writeRune(r)
		case r == ':':
			p.output.writeRune(':')
			p.outputPositions.SchemeEnd = p.output.len()
			if p.input.startsWith('/') {
				p.input.next()
				p.output.writeRune('/')
				return p.parsePathOrAuthority()
			}
			// No authority, path starts immediately.
			p.outputPositions.AuthorityEnd = p.outputPositions.SchemeEnd
			return p.parsePath()
		default:
			return &kindError{message: "Invalid character in scheme", char: r}
		}
	}
}

// parsePathOrAuthority handles the part of the URI after "scheme:/".
func (p *uriParser) parsePathOrAuthority() error {
	if p.input.startsWith('/') {
		// This is an authority-based URI like "scheme://host/path"
		p.input.next()
		p.output.writeRune('/')
		if err := p.parseAuthority(); err != nil {
			return err
		}
		r, ok := p.input.peek()
		return p.parsePathStart(r, ok)
	}
	// No second slash, so no authority. Path starts here.
	p.outputPositions.AuthorityEnd = p.outputPositions.SchemeEnd
	return p.parsePath()
}

// parsePathStart begins parsing the path component after an authority.
func (p *uriParser) parsePathStart(r rune, ok bool) error {
	if !ok {
		// End of input after authority (e.g., "udp://host.com")
		p.outputPositions.PathEnd = p.output.len()
		p.outputPositions.QueryEnd = p.output.len()
		return nil
	}

	switch r {
	case '?':
		p.input.next() // Consume '?'
		p.outputPositions.PathEnd = p.output.len()
		p.output.writeRune('?')
		return p.parseQuery()
	case '#':
		if !p.allowFragment {
			return errFragmentForbidden
		}
		p.input.next() // Consume '#'
		p.outputPositions.PathEnd = p.output.len()
		p.outputPositions.QueryEnd = p.output.len()
		p.output.writeRune('#')
		return p.parseFragment()
	case '/':
		p.input.next() // Consume '/'
		p.output.writeRune('/')
		return p.parsePath()
	default:
		p.input.next() // Consume the character
		// This is the first character of the first path segment.
		if err := p.readURLCodepointOrEchar(r, func(c rune) bool {
			return isIUnreservedOrSubDelims(c) || c == ':' || c == '@'
		}); err != nil {
			return err
		}
		return p.parsePath()
	}
}

// validateBidiPart checks the bidi validity of the component part that ends
// at the current input position. Positions in the output buffer coincide
// with byte offsets into the input, so the part can be sliced from it.
func (p *uriParser) validateBidiPart(startIndex int) error {
	return validateBidiComponent(p.uri[startIndex:p.input.position()])
}

// handlePathTerminator checks for and processes path terminators ('?' or '#').
// It returns true if a terminator was found and handled, along with any error.
func (p *uriParser) handlePathTerminator(c rune, segmentStartIndex int) (bool, error) {
	if c != '?' && c != '#' {
		return false, nil
	}

	if err := p.validateBidiPart(segmentStartIndex); err != nil {
		return true, err
	}

	if c == '#' && !p.allowFragment {
		return true, errFragmentForbidden
	}

	p.input.next()
	p.outputPositions.PathEnd = p.output.len()

	if c == '?' {
		p.output.writeRune('?')
		return true, p.parseQuery()
	}

	// c must be '#'
	p.outputPositions.QueryEnd = p.output.len()
	p.output.writeRune('#')
	return true, p.parseFragment()
}

// isPathChar is a predicate for characters allowed in a path.
func isPathChar(c rune) bool {
	return isIUnreservedOrSubDelims(c) || c == ':' || c == '@' || c == '/'
}

// parsePath consumes the path component of the URI.
func (p *uriParser) parsePath() error {
	hasAuthority := p.outputPositions.AuthorityEnd > p.outputPositions.SchemeEnd
	var prev rune
	segmentStartIndex := p.output.len()

	for {
		c, ok := p.input.peek()
		if !ok {
			break
		}

		isTerminator, err := p.handlePathTerminator(c, segmentStartIndex)
		if isTerminator {
			return err
		}

		// RFC 3986, Section 3.3: if a URI does not contain an authority component,
		// then the path cannot begin with two slash characters ("//").
		if !hasAuthority && c == '/' && prev == '/' {
			return errPathStartingWithSlashes
		}

		p.input.next()
		if c == '/' {
			if err = p.validateBidiPart(segmentStartIndex); err != nil {
				return err
			}
		}
		err = p.readURLCodepointOrEchar(c, isPathChar)
		if err != nil {
			return err
		}
		if c == '/' {
			segmentStartIndex = p.output.len()
		}
		prev = c
	}

	if err := p.validateBidiPart(segmentStartIndex); err != nil {
		return err
	}

	p.outputPositions.PathEnd = p.output.len()
	p.outputPositions.QueryEnd = p.output.len()
	return nil
}

// isQueryChar is a predicate for characters allowed in a query.
func isQueryChar(c rune) bool {
	return isIUnreservedOrSubDelims(c) || c == ':' || c == '@' || c == '/' || c == '?' ||
		(c >= '\uE000' && c <= '\uF8FF') || // iprivate
		(c >= 0xF0000 && c <= 0xFFFFD) ||
		(c >= 0x100000 && c <= 0x10FFFD)
}

// handleQueryEnd handles the end of a query, either by EOF or a '#' terminator.
func (p *uriParser) handleQueryEnd(isFragment bool, queryStart int) error {
	if err := p.validateBidiPart(queryStart); err != nil {
		return err
	}
	p.outputPositions.QueryEnd = p.output.len()
	if !isFragment {
		return nil
	}
	if !p.allowFragment {
		return errFragmentForbidden
	}
	p.input.next()
	p.output.writeRune('#')
	return p.parseFragment()
}

// parseQuery consumes the query component.
func (p *uriParser) parseQuery() error {
	queryStart := p.output.len()
	for {
		r, ok := p.input.peek()
		if !ok {
			return p.handleQueryEnd(false, queryStart)
		}
		if r == '#' {
			return p.handleQueryEnd(true, queryStart)
		}
		p.input.next()
		if err := p.readURLCodepointOrEchar(r, isQueryChar); err != nil {
			return err
		}
	}
}

// parseFragment consumes the fragment component.
func (p *uriParser) parseFragment() error {
	fragmentStart := p.output.len()
	for {
		r, ok := p.input.next()
		if !ok {
			return p.validateBidiPart(fragmentStart)
		}
		err := p.readURLCodepointOrEchar(r, func(c rune) bool {
			return isIUnreservedOrSubDelims(c) || c == ':' || c == '@' || c == '/' || c == '?'
		})
		if err != nil {
			return err
		}
	}
}
