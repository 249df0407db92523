package uri

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestResolve_RFC3986Examples exercises the reference resolution examples
// from RFC 3986 §5.4, against the fixed base "http://a/b/c/d;p?q".
func TestResolve_RFC3986Examples(t *testing.T) {
	base, err := Parse("http://a/b/c/d;p?q")
	require.NoError(t, err)

	testCases := []struct {
		ref      string
		expected string
	}{
		{ref: "g", expected: "http://a/b/c/g"},
		{ref: "./g", expected: "http://a/b/c/g"},
		{ref: "g/", expected: "http://a/b/c/g/"},
		{ref: "/g", expected: "http://a/g"},
		// Unlike the RFC 3986 §5.4.1 table, an empty-path authority
		// always serializes with an explicit trailing "/" (see the
		// http://example.com# round-trip case in TestParse_EmptyFragment).
		{ref: "//g", expected: "http://g/"},
		{ref: "?y", expected: "http://a/b/c/d;p?y"},
		{ref: "g?y", expected: "http://a/b/c/g?y"},
		{ref: "#s", expected: "http://a/b/c/d;p?q#s"},
		{ref: "g#s", expected: "http://a/b/c/g#s"},
		{ref: "g?y#s", expected: "http://a/b/c/g?y#s"},
		{ref: ";x", expected: "http://a/b/c/;x"},
		{ref: "g;x", expected: "http://a/b/c/g;x"},
		{ref: "g;x?y#s", expected: "http://a/b/c/g;x?y#s"},
		{ref: "", expected: "http://a/b/c/d;p?q"},
		{ref: ".", expected: "http://a/b/c/"},
		{ref: "./", expected: "http://a/b/c/"},
		{ref: "..", expected: "http://a/b/"},
		{ref: "../", expected: "http://a/b/"},
		{ref: "../..", expected: "http://a/"},
		{ref: "../../", expected: "http://a/"},
		{ref: "../g", expected: "http://a/b/g"},
		{ref: "../../g", expected: "http://a/g"},
	}

	for _, tc := range testCases {
		t.Run(tc.ref, func(t *testing.T) {
			ref, err := ParseReference(tc.ref)
			require.NoError(t, err, tc.ref)

			resolved := base.Resolve(ref)
			require.Equal(t, tc.expected, resolved.String(), tc.ref)
		})
	}
}

func TestResolve_SchemeAlwaysWinsFromReference(t *testing.T) {
	base, err := Parse("http://a/b/c/d;p?q")
	require.NoError(t, err)

	ref, err := ParseReference("ftp://other/x")
	require.NoError(t, err)

	resolved := base.Resolve(ref)
	require.Equal(t, "ftp", resolved.Scheme())

	host, _ := resolved.Authority().Host()
	require.Equal(t, "other", host)
}
