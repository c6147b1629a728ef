// This file is part of emu6502.
//
// emu6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// emu6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with emu6502.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a pattern and a list of values in the same
// way as fmt.Errorf().
//
// The pattern is what identifies a curated error. Packages that want to
// expose a sentinel error do so by exporting the pattern as a string
// constant:
//
//	const ErrTruncated = "decode: truncated instruction at %#04x"
//
//	err := curated.Errorf(ErrTruncated, 0x1000)
//
//	if curated.Is(err, ErrTruncated) {
//		fmt.Println("true")
//	}
//
// Has() is similar to Is() but searches the entire chain. A curated error
// that wraps another error (by using it as one of its values) forms a chain:
//
//	f := curated.Errorf("shell: %v", err)
//
//	curated.Is(f, ErrTruncated)  // false
//	curated.Has(f, ErrTruncated) // true
//
// The Error() implementation normalises the chain so that duplicate
// adjacent parts are removed. A chain is made of parts separated by the
// sub-string ": " so that wrapping an error with the same prefix does not
// produce messages like "cpu: cpu: halted".
//
// Curated errors also implement Unwrap() so that the errors package in the
// standard library can be used to inspect chains containing uncurated
// errors.
package curated
