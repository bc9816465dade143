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

func TestIsDigit(t *testing.T) {
	for r := '0'; r <= '9'; r++ {
		if !IsDigit(r) {
			t.Errorf("IsDigit(%q) = false, want true", r)
		}
	}
	for _, r := range "aZ./:% " {
		if IsDigit(r) {
			t.Errorf("IsDigit(%q) = true, want false", r)
		}
	}
}

func TestIsASCIIHexDigit(t *testing.T) {
	for _, r := range "0123456789abcdefABCDEF" {
		if !isASCIIHexDigit(r) {
			t.Errorf("isASCIIHexDigit(%q) = false, want true", r)
		}
	}
	for _, r := range "gGzZ /%" {
		if isASCIIHexDigit(r) {
			t.Errorf("isASCIIHexDigit(%q) = true, want false", r)
		}
	}
}
