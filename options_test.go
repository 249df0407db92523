package uri

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithSchemeIsDNSFunc_OverridesValidation(t *testing.T) {
	alwaysDNS := func(string) bool { return true }

	_, err := Parse("customscheme://bad_host/", WithSchemeIsDNSFunc(alwaysDNS))
	require.ErrorIs(t, err, ErrInvalidDNSName)

	neverDNS := func(string) bool { return false }

	_, err = Parse("http://bad_host/", WithSchemeIsDNSFunc(neverDNS))
	require.NoError(t, err)
}

func TestNormalizeDefaultPortFunc_OverridesScheme(t *testing.T) {
	u, err := Parse("myproto://example.com:777/", WithSchemeIsDNSFunc(func(string) bool { return false }))
	require.NoError(t, err)

	n, err := u.Normalize(WithNormalizeDefaultPortFunc(func(scheme string) int {
		if scheme == "myproto" {
			return 777
		}
		return -1
	}))
	require.NoError(t, err)
	require.Equal(t, "myproto://example.com/", n)
}

func TestWithReference_AllowsSchemelessParse(t *testing.T) {
	_, err := Parse("//foo.bar/baz")
	require.ErrorIs(t, err, ErrNoSchemeFound)

	u, err := Parse("//foo.bar/baz", WithReference(true))
	require.NoError(t, err)
	require.True(t, u.IsRelativeReference())
}

func TestSetDefaultOptions_AffectsSubsequentCalls(t *testing.T) {
	t.Cleanup(func() {
		SetDefaultOptions(WithSchemeIsDNSFunc(UsesDNSHostValidation))
	})

	SetDefaultOptions(WithSchemeIsDNSFunc(func(string) bool { return false }))

	_, err := Parse("http://bad_host/")
	require.NoError(t, err)
}

func TestResolveOptions_DoesNotMutatePackageDefaults(t *testing.T) {
	_, err := Parse("http://www.example.com/", WithSchemeIsDNSFunc(func(string) bool { return false }))
	require.NoError(t, err)

	_, err = Parse("http://bad_host/")
	require.Error(t, err)
}
