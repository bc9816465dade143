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
	"testing"

	"github.com/JonKalb/boost.url/uri"
)

func paramsOf(t *testing.T, link string) uri.Params {
	t.Helper()
	u, err := uri.Parse(link)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", link, err)
	}
	return u.Params()
}

func keyIs(key string) Predicate {
	return func(p uri.Param) bool { return p.KeyEquals(key) }
}

func rawValue(p uri.Param) string {
	return string(p.Value)
}

func collect[T any](v View[T]) []T {
	var got []T
	for it := v.Iter(); it.Next(); {
		got = append(got, it.Value())
	}
	return got
}

// TestViewFiltersAndPreservesOrder tests that a view yields exactly the
// matching parameters, transformed, in the source's original order.
func TestViewFiltersAndPreservesOrder(t *testing.T) {
	ps := paramsOf(t, "magnet:?a=1&b=2&a=3&c=4&a=5")
	v := NewView(ps, keyIs("a"), rawValue)

	got := collect(v)
	want := []string{"1", "3", "5"}
	if len(got) != len(want) {
		t.Fatalf("view yielded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// TestViewRestart tests that iteration is restartable and idempotent:
// separate passes over the same view yield identical sequences.
func TestViewRestart(t *testing.T) {
	ps := paramsOf(t, "magnet:?a=1&b=2&a=3")
	v := NewView(ps, keyIs("a"), rawValue)

	first := collect(v)
	second := collect(v)
	if len(first) != 2 || len(second) != len(first) {
		t.Fatalf("passes yielded %v then %v, want two identical passes", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("second pass element[%d] = %q, want %q", i, second[i], first[i])
		}
	}
}

// TestViewEmpty tests a view whose predicate matches nothing.
func TestViewEmpty(t *testing.T) {
	ps := paramsOf(t, "magnet:?a=1&b=2")
	v := NewView(ps, keyIs("zz"), rawValue)
	if got := collect(v); got != nil {
		t.Errorf("view yielded %v, want nothing", got)
	}
}

// TestViewAll tests the range-over-func form, including early exit.
func TestViewAll(t *testing.T) {
	ps := paramsOf(t, "magnet:?a=1&a=2&a=3")
	v := NewView(ps, keyIs("a"), rawValue)

	var got []string
	for s := range v.All() {
		got = append(got, s)
		if len(got) == 2 {
			break
		}
	}
	if len(got) != 2 || got[0] != "1" || got[1] != "2" {
		t.Errorf("early-exit range collected %v, want [1 2]", got)
	}
}

// TestViewTransform tests that the transform runs on each matching
// element, and can change the element type.
func TestViewTransform(t *testing.T) {
	ps := paramsOf(t, "magnet:?a=x&b=y&a=zz")
	v := NewView(ps, keyIs("a"), func(p uri.Param) int { return len(p.Value) })

	got := collect(v)
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("transformed view yielded %v, want [1 2]", got)
	}
}
