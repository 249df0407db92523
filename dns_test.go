package uri

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUsesDNSHostValidation(t *testing.T) {
	require.True(t, UsesDNSHostValidation("http"))
	require.True(t, UsesDNSHostValidation("https"))
	require.True(t, UsesDNSHostValidation("ldap"))
	require.False(t, UsesDNSHostValidation("file"))
	require.False(t, UsesDNSHostValidation("urn"))
}

func TestDefaultPortForScheme(t *testing.T) {
	require.Equal(t, 80, DefaultPortForScheme("http"))
	require.Equal(t, 443, DefaultPortForScheme("https"))
	require.Equal(t, 22, DefaultPortForScheme("sftp"))
	require.Equal(t, -1, DefaultPortForScheme("urn"))
}

func TestValidateDNSHostForScheme(t *testing.T) {
	testCases := []struct {
		host    string
		wantErr bool
	}{
		{host: "www.example.com", wantErr: false},
		{host: "a.b-c.de", wantErr: false},
		{host: "bad_host", wantErr: true},
		{host: "-startswithhyphen.com", wantErr: true},
		{host: "trailing-.com", wantErr: true},
		{host: "", wantErr: true},
		{host: "a..b", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.host, func(t *testing.T) {
			err := validateDNSHostForScheme(tc.host)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateDNSHostForScheme_LabelTooLong(t *testing.T) {
	label := ""
	for i := 0; i < 64; i++ {
		label += "a"
	}

	err := validateDNSHostForScheme(label + ".com")
	require.ErrorIs(t, err, ErrInvalidDNSName)
}

func TestParse_DNSValidationSkippedForIPHosts(t *testing.T) {
	u, err := Parse("http://192.168.1.1/")
	require.NoError(t, err)

	host, _ := u.Authority().Host()
	require.Equal(t, "192.168.1.1", host)
}

func TestParse_DNSValidationSkippedForNonDNSScheme(t *testing.T) {
	u, err := Parse("file://bad_host/path")
	require.NoError(t, err)

	host, _ := u.Authority().Host()
	require.Equal(t, "bad_host", host)
}
