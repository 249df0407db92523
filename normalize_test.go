package uri

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize_LowersSchemeAndHost(t *testing.T) {
	u, err := Parse("HTTP://WWW.Example.COM/Path")
	require.NoError(t, err)

	n, err := u.Normalize()
	require.NoError(t, err)
	require.Equal(t, "http://www.example.com/Path", n)
}

func TestNormalize_ElidesDefaultPort(t *testing.T) {
	u, err := Parse("http://example.com:80/")
	require.NoError(t, err)

	n, err := u.Normalize()
	require.NoError(t, err)
	require.Equal(t, "http://example.com/", n)
}

func TestNormalize_KeepsNonDefaultPort(t *testing.T) {
	u, err := Parse("http://example.com:8080/")
	require.NoError(t, err)

	n, err := u.Normalize()
	require.NoError(t, err)
	require.Equal(t, "http://example.com:8080/", n)
}

func TestNormalize_DotSegments(t *testing.T) {
	u, err := Parse("eXAMPLE://a/./b/../b/%63/%7bfoo%7d")
	require.NoError(t, err)

	n, err := u.Normalize()
	require.NoError(t, err)
	require.Equal(t, "example://a/b/c/%7Bfoo%7D", n)
}

// Non-ASCII host text can only reach a URI through percent-encoded UTF-8
// octets (RFC 3987's IRI-to-URI mapping); decodeComponent decodes escaped
// bytes unconditionally, bypassing the ASCII-only literal character class.
func TestNormalize_IDNAPunycode(t *testing.T) {
	u, err := Parse("http://m%C3%BCnchen.example/")
	require.NoError(t, err)

	host, _ := u.Authority().Host()
	require.Equal(t, "münchen.example", host)

	n, err := u.Normalize()
	require.NoError(t, err)
	require.Equal(t, "http://xn--mnchen-3ya.example/", n)
}

// WithNormalizeStrictIRI only affects the Normalized() value's decoded Host:
// String() always serializes through the ASCII-only wire grammar, so a
// strict-IRI host still comes out percent-encoded once turned back into text.
func TestNormalize_StrictIRIKeepsUnicodeHost(t *testing.T) {
	u, err := Parse("http://m%C3%BCnchen.example/")
	require.NoError(t, err)

	n, err := u.Normalized(WithNormalizeStrictIRI(true))
	require.NoError(t, err)

	host, _ := n.Authority().Host()
	require.Equal(t, "münchen.example", host)
	require.Equal(t, "http://m%C3%BCnchen.example/", n.String())
}

func TestNormalize_CustomDefaultPortFunc(t *testing.T) {
	u, err := Parse("http://example.com:9000/")
	require.NoError(t, err)

	n, err := u.Normalize(WithNormalizeDefaultPortFunc(func(scheme string) int {
		if scheme == "http" {
			return 9000
		}
		return -1
	}))
	require.NoError(t, err)
	require.Equal(t, "http://example.com/", n)
}

func TestNormalize_IsIdempotent(t *testing.T) {
	u, err := Parse("HTTP://WWW.Example.COM:80/a/./b/../c")
	require.NoError(t, err)

	once, err := u.Normalize()
	require.NoError(t, err)

	twice, err := Parse(once)
	require.NoError(t, err)

	n2, err := twice.Normalize()
	require.NoError(t, err)

	require.Equal(t, once, n2)
}

func TestNormalized_DoesNotMutateReceiver(t *testing.T) {
	u, err := Parse("HTTP://Example.COM/")
	require.NoError(t, err)

	_, err = u.Normalized()
	require.NoError(t, err)
	require.Equal(t, "http", u.Scheme())
}
