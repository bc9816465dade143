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
	"iter"

	"github.com/JonKalb/boost.url/uri"
)

// Predicate decides whether a query parameter belongs to a view.
type Predicate func(uri.Param) bool

// Transform converts a query parameter into a view's element type.
type Transform[T any] func(uri.Param) T

// View is a lazy sequence of transformed query parameters: iterating it
// yields transform(p) for every parameter p of the source that satisfies
// the predicate, in the source's original order.
//
// The view holds no elements; each iteration pass re-reads the source.
// Iteration state is O(1), and the only allocations are the ones the
// transform itself performs. The predicate or transform may share a
// caller-supplied scratch buffer; two interleaved iterations sharing one
// buffer will overwrite each other's decoded contents, so give each
// concurrent pass its own buffer.
type View[T any] struct {
	src  uri.Params
	keep Predicate
	emit Transform[T]
}

// NewView builds a view over src from a predicate and a transform.
func NewView[T any](src uri.Params, keep Predicate, emit Transform[T]) View[T] {
	return View[T]{src: src, keep: keep, emit: emit}
}

// Iter returns a fresh forward cursor positioned before the first matching
// element. Calling Iter again restarts from the source's first parameter.
func (v View[T]) Iter() Iter[T] {
	return Iter[T]{it: v.src.Iter(), keep: v.keep, emit: v.emit}
}

// All returns the view's elements as a range-over-func sequence.
func (v View[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := v.Iter(); it.Next(); {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Iter is a forward cursor over a View. Non-matching source elements are
// skipped eagerly when the cursor advances; the transform runs once per
// matching element, at advance time, so that any scratch buffer written by
// the predicate is still holding that element's decode.
type Iter[T any] struct {
	it   uri.ParamIter
	keep Predicate
	emit Transform[T]
	cur  T
}

// Next advances to the next element satisfying the predicate, returning
// false when the source is exhausted.
func (it *Iter[T]) Next() bool {
	for it.it.Next() {
		p := it.it.Param()
		if !it.keep(p) {
			continue
		}
		it.cur = it.emit(p)
		return true
	}
	return false
}

// Value returns the element at the current cursor position. It is only
// valid after a call to Next that returned true.
func (it *Iter[T]) Value() T {
	return it.cur
}
