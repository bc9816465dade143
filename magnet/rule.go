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

// Package magnet validates and projects magnet links.
//
// A magnet link is an ordinary absolute URI whose meaning lives entirely
// in its query parameters. This package runs the generic URI grammar
// first, then enforces the magnet-specific invariants on the query (at
// least one well-formed exact topic, every exact topic a valid nested
// URI) and exposes the result as a Link: a facade of lazy, allocation-
// light views over the semantically meaningful fields.
package magnet

import (
	"errors"
	"fmt"

	"github.com/JonKalb/boost.url/uri"
)

var (
	// ErrNotMagnet is reported when the input is a well-formed URI whose
	// scheme is not "magnet".
	ErrNotMagnet = errors.New(`scheme is not "magnet"`)
	// ErrMissingExactTopic is reported when the query carries no "xt" or
	// "xt.N" parameter. The exact topic is the only mandatory magnet field.
	ErrMissingExactTopic = errors.New("missing mandatory exact topic")
	// ErrInvalidExactTopic is reported when an exact topic's value does
	// not itself parse as a URI.
	ErrInvalidExactTopic = errors.New("exact topic value is not a valid URI")
)

// LinkError is the error type returned by Parse. Err distinguishes the
// cause: a *uri.ParseError for generic syntax failures, or one of the
// sentinel errors of this package for magnet-specific rejections.
type LinkError struct {
	Message string
	Err     error
}

// Error returns the string representation of the link error.
func (e *LinkError) Error() string {
	return fmt.Sprintf("magnet link error: %s", e.Message)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *LinkError) Unwrap() error {
	return e.Err
}

// Parse parses a string as a magnet link, or reports why it is not one.
// It never panics; malformed input is a normal, reportable outcome.
//
// Parsing runs in two phases. Phase one delegates to the generic
// absolute-URI grammar (fragments are not allowed) and checks the scheme.
// Phase two walks the query parameters and enforces the magnet-specific
// invariants: at least one parameter must be an exact topic, and from the
// first exact topic onward every exact topic's value must itself parse as
// a URI. Parameters other than exact topics are not validated here;
// optional fields with malformed values are simply skipped by the views
// that enumerate them.
func Parse(s string) (*Link, error) {
	u, err := uri.ParseAbsolute(s)
	if err != nil {
		return nil, &LinkError{Message: "invalid URI syntax", Err: err}
	}
	if u.Scheme() != "magnet" {
		return nil, &LinkError{Message: fmt.Sprintf("unexpected scheme %q", u.Scheme()), Err: ErrNotMagnet}
	}
	return validateTopics(u)
}

// validateTopics is the scheme-agnostic half of the grammar rule: given
// any generically-parsed URI, it enforces the exact-topic invariants and
// wraps the URI in a Link. Callers composing this rule into a larger
// multi-scheme grammar dispatch on the scheme themselves.
func validateTopics(u *uri.URI) (*Link, error) {
	found := false
	for it := u.Params().Iter(); it.Next(); {
		p := it.Param()
		if !isExactTopic(p) {
			continue
		}
		found = true
		if _, err := uri.Parse(string(p.Value)); err != nil {
			return nil, &LinkError{
				Message: fmt.Sprintf("exact topic %q does not parse as a URI", string(p.Value)),
				Err:     ErrInvalidExactTopic,
			}
		}
	}
	if !found {
		return nil, &LinkError{Message: "no exact topic in the magnet link", Err: ErrMissingExactTopic}
	}
	return &Link{u: u}, nil
}
