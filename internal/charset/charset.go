// Package charset implements the RFC 3986 character classes used by the
// URI recognizer as O(1) membership tests over the 7-bit ASCII range.
//
// Each class is a bitset.BitSet so that membership is a single Test call;
// this mirrors how the root uri package composes its own parsing bitsets.
package charset

import "github.com/bits-and-blooms/bitset"

// Set tests membership of a byte in a fixed, 7-bit ASCII character class.
// Bytes outside the ASCII range are never members.
type Set struct {
	bits *bitset.BitSet
}

// Has reports whether b belongs to the set.
func (s Set) Has(b byte) bool {
	if b >= 0x80 {
		return false
	}

	return s.bits.Test(uint(b))
}

func newSet(members ...byte) Set {
	bs := bitset.New(128)
	for _, m := range members {
		bs.Set(uint(m))
	}

	return Set{bits: bs}
}

func rangeBytes(lo, hi byte) []byte {
	out := make([]byte, 0, int(hi-lo)+1)
	for b := lo; b <= hi; b++ {
		out = append(out, b)
	}

	return out
}

func union(sets ...Set) Set {
	bs := bitset.New(128)
	for _, s := range sets {
		bs.InPlaceUnion(s.bits)
	}

	return Set{bits: bs}
}

func with(s Set, extra ...byte) Set {
	bs := s.bits.Clone()
	for _, b := range extra {
		bs.Set(uint(b))
	}

	return Set{bits: bs}
}

var (
	// Alpha = ALPHA (RFC 5234 core rule).
	Alpha = newSet(append(rangeBytes('A', 'Z'), rangeBytes('a', 'z')...)...)

	// Digit = DIGIT.
	Digit = newSet(rangeBytes('0', '9')...)

	// Hex = HEXDIG.
	Hex = union(Digit, newSet(append(rangeBytes('a', 'f'), rangeBytes('A', 'F')...)...))

	// AlphaNum = ALPHA / DIGIT.
	AlphaNum = union(Alpha, Digit)

	// Unreserved = ALPHA / DIGIT / "-" / "." / "_" / "~".
	Unreserved = with(AlphaNum, '-', '.', '_', '~')

	// SubDelims = "!" / "$" / "&" / "'" / "(" / ")" / "*" / "+" / "," / ";" / "=".
	SubDelims = newSet('!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=')

	// UnreservedAndSubDelims = unreserved / sub-delims.
	UnreservedAndSubDelims = union(Unreserved, SubDelims)

	// SchemeTail = ALPHA / DIGIT / "+" / "-" / ".", the legal bytes after
	// a scheme's first (ALPHA) character.
	SchemeTail = with(AlphaNum, '+', '-', '.')

	// PcharNE = unreserved / sub-delims / ":" / "@" (pchar, excluding pct-encoded).
	PcharNE = with(UnreservedAndSubDelims, ':', '@')

	// QueryFrag = pchar / "/" / "?", excluding pct-encoded.
	QueryFrag = with(PcharNE, '/', '?')

	// UserInfo = unreserved / sub-delims / ":".
	UserInfo = with(UnreservedAndSubDelims, ':')

	// RegName = unreserved / sub-delims.
	RegName = UnreservedAndSubDelims

	// IPvFutureTail = unreserved / sub-delims / ":".
	IPvFutureTail = with(UnreservedAndSubDelims, ':')
)
