package uri

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeDotSegments(t *testing.T) {
	testCases := []struct {
		comment string
		in      []string
		out     []string
	}{
		{
			comment: "absolute path with dot and dot-dot segments",
			in:      []string{"", ".", "b", "..", "b", "c", "{foo}"},
			out:     []string{"", "b", "c", "{foo}"},
		},
		{
			comment: "relative path cannot pop past its start",
			in:      []string{"..", "..", "g"},
			out:     []string{"g"},
		},
		{
			comment: "absolute path cannot pop past the root",
			in:      []string{"", "..", "..", "g"},
			out:     []string{"", "g"},
		},
		{
			comment: "no-op on an already-clean path",
			in:      []string{"", "a", "b"},
			out:     []string{"", "a", "b"},
		},
		{
			comment: "empty path is unchanged",
			in:      nil,
			out:     nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.comment, func(t *testing.T) {
			require.Equal(t, tc.out, normalizeDotSegments(tc.in))
		})
	}
}

func TestURI_NormalizePath(t *testing.T) {
	u, err := Parse("eXAMPLE://a/./b/../b/%63/%7bfoo%7d")
	require.NoError(t, err)

	expected, err := Parse("example://a/b/c/%7Bfoo%7D")
	require.NoError(t, err)

	require.True(t, u.NormalizePath().Equal(expected))
}
