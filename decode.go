package uri

import (
	"strconv"
	"strings"

	"github.com/corvidlab/uri3986/internal/charset"
)

// Byte and string literals shared by the parser and the serializer. Kept as
// named constants rather than inline literals so the grammar productions in
// parse.go and uri.go read like the ABNF they implement.
const (
	colonMark          = ':'
	slashMark          = '/'
	questionMark       = '?'
	fragmentMark       = '#'
	atHost             = '@'
	openingBracketMark = '['
	closingBracketMark = ']'
	percentMark        = '%'

	authorityPrefix = "//"
)

// Charset aliases used throughout parse.go, uri.go and builder.go. Declared
// here, next to the codec functions that consume them, rather than in
// internal/charset itself, since they are this package's own grammar
// choices rather than general-purpose RFC 3986 primitives.
var (
	schemeTailSet = charset.SchemeTail
	userInfoSet   = charset.UserInfo
	regNameSet    = charset.RegName
	pcharSet      = charset.PcharNE
	queryFragSet  = charset.QueryFrag
	ipvFutureSet  = charset.IPvFutureTail
)

func formatPort(port uint16) string {
	return strconv.FormatUint(uint64(port), 10)
}

// foldASCII lower-cases the ASCII letters in s, leaving every other byte
// untouched. Used for scheme and registered-name host normalization, which
// RFC 3986 §3.1 and §3.2.2 define as case-insensitive over ASCII only.
func foldASCII(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			hasUpper = true

			break
		}
	}
	if !hasUpper {
		return s
	}

	buf := []byte(s)
	for i, b := range buf {
		if 'A' <= b && b <= 'Z' {
			buf[i] = b - 'A' + 'a'
		}
	}

	return string(buf)
}

// decodeComponent percent-decodes raw and validates it against allowed: any
// byte that appears literally (not as a %HH escape) must be a member of
// allowed, while a percent-escaped byte is always accepted and stored
// decoded regardless of its value. This matches RFC 3986's own stance that
// pct-encoded stands for an octet, not necessarily one drawn from the
// component's literal character class.
func decodeComponent(raw string, allowed charset.Set) (string, error) {
	if !strings.ContainsRune(raw, percentMark) {
		for i := 0; i < len(raw); i++ {
			if !allowed.Has(raw[i]) {
				return "", errorsJoin(ErrInvalidEscaping, errNewf("disallowed character in %q", raw))
			}
		}

		return raw, nil
	}

	var sb strings.Builder
	sb.Grow(len(raw))

	for i := 0; i < len(raw); {
		c := raw[i]

		switch {
		case c == percentMark:
			if i+2 >= len(raw) || !charset.Hex.Has(raw[i+1]) || !charset.Hex.Has(raw[i+2]) {
				return "", errorsJoin(ErrInvalidEscaping, errNewf("malformed percent-escaping in %q", raw))
			}

			v, err := strconv.ParseUint(raw[i+1:i+3], 16, 8)
			if err != nil {
				return "", errorsJoin(ErrInvalidEscaping, err)
			}

			sb.WriteByte(byte(v))
			i += 3

		default:
			if !allowed.Has(c) {
				return "", errorsJoin(ErrInvalidEscaping, errNewf("disallowed character in %q", raw))
			}

			sb.WriteByte(c)
			i++
		}
	}

	return sb.String(), nil
}

// encodeComponent percent-encodes every byte of decoded that is not a
// member of allowed, producing the wire form of a previously decoded
// component. Bytes are encoded individually so multi-byte UTF-8 sequences
// come out as one %HH triple per octet, matching RFC 3986's octet-oriented
// pct-encoded production.
func encodeComponent(decoded string, allowed charset.Set) string {
	needsEscape := false
	for i := 0; i < len(decoded); i++ {
		if !allowed.Has(decoded[i]) {
			needsEscape = true

			break
		}
	}
	if !needsEscape {
		return decoded
	}

	const hexDigits = "0123456789ABCDEF"

	var sb strings.Builder
	sb.Grow(len(decoded) + 8)

	for i := 0; i < len(decoded); i++ {
		c := decoded[i]
		if allowed.Has(c) {
			sb.WriteByte(c)

			continue
		}

		sb.WriteByte(percentMark)
		sb.WriteByte(hexDigits[c>>4])
		sb.WriteByte(hexDigits[c&0x0f])
	}

	return sb.String()
}
