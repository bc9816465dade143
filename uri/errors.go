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
	"errors"
	"fmt"
)

var (
	// errNoScheme is returned when no scheme (e.g., "magnet:") is found.
	// This package only parses absolute URIs, so an input without a scheme,
	// or one starting with a colon, is rejected outright.
	errNoScheme = &kindError{message: "No scheme found in an absolute URI"}
	// errPathStartingWithSlashes is returned when a URI has a path that
	// starts with "//" but does not have an authority component. This is
	// disallowed by RFC 3986 to avoid ambiguity with network-path references.
	errPathStartingWithSlashes = &kindError{
		message: "A URI path is not allowed to start with // if there is no authority",
	}
	// errFragmentForbidden is returned by ParseAbsolute when the input
	// carries a fragment, which the RFC 3986 absolute-URI rule excludes.
	errFragmentForbidden = &kindError{message: "A fragment is not allowed in an absolute URI"}
)

// newParseError creates a new ParseError, wrapping the original error.
// It returns nil if the input error is nil.
func newParseError(err error) *ParseError {
	if err == nil {
		return nil
	}
	return &ParseError{Message: err.Error(), Err: errors.Unwrap(err)}
}

// kindError is a specialized error type used by the parser to provide
// detailed context about a parsing failure.
type kindError struct {
	message string
	char    rune
	details string
}

// Error formats the error message with any available character, details, or
// wrapped error information.
func (e *kindError) Error() string {
	msg := e.message
	if e.char != 0 {
		msg = fmt.Sprintf("%s '%c'", msg, e.char)
	} else if e.details != "" {
		msg = fmt.Sprintf("%s '%s'", msg, e.details)
	}
	return msg
}
