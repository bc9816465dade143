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
package uri

import "testing"

// TestParserInputPosition tests that position reports byte offsets into
// the original string across next, peek, and skip. Offsets must stay
// anchored to the full input: component validators slice the original
// string with them after the authority has been skipped over.
func TestParserInputPosition(t *testing.T) {
	p := newParserInput("ab//host/path")

	if got := p.position(); got != 0 {
		t.Fatalf("position() = %d, want 0", got)
	}

	p.next()
	p.next()
	if got := p.position(); got != 2 {
		t.Errorf("position() after two reads = %d, want 2", got)
	}

	// peek must not advance.
	if r, ok := p.peek(); !ok || r != '/' {
		t.Fatalf("peek() = (%q, %v), want '/'", r, ok)
	}
	if got := p.position(); got != 2 {
		t.Errorf("position() after peek = %d, want 2", got)
	}

	if got := p.asStr(); got != "//host/path" {
		t.Errorf("asStr() = %q, want the unread remainder", got)
	}

	// Skipping a consumed sub-span (the authority) keeps offsets global.
	p.next()
	p.next()
	p.skip(len("host"))
	if got := p.position(); got != 8 {
		t.Errorf("position() after skip = %d, want 8", got)
	}
	if r, ok := p.next(); !ok || r != '/' {
		t.Errorf("next() after skip = (%q, %v), want '/'", r, ok)
	}
}
