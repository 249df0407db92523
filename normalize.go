package uri

import (
	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// NormalizeOption tunes Normalize/Normalized, analogous to Option for
// Parse.
type NormalizeOption func(*normalizeOptions)

type normalizeOptions struct {
	defaultPortFunc func(string) int
	idnaFlags       []idna.Option
	withStrictIRI   bool
}

func normalizeOptionsWithDefaults(opts []NormalizeOption) *normalizeOptions {
	o := &normalizeOptions{defaultPortFunc: DefaultPortForScheme}
	for _, apply := range opts {
		apply(o)
	}

	return o
}

// WithNormalizeDefaultPortFunc overrides the function Normalize uses to
// decide a scheme's default port, elided when it matches the URI's
// explicit port.
func WithNormalizeDefaultPortFunc(fn func(string) int) NormalizeOption {
	return func(o *normalizeOptions) {
		o.defaultPortFunc = fn
	}
}

// WithNormalizeIDNAFlags sets the golang.org/x/net/idna options used to
// convert an internationalized host to punycode.
func WithNormalizeIDNAFlags(flags ...idna.Option) NormalizeOption {
	return func(o *normalizeOptions) {
		o.idnaFlags = flags
	}
}

// WithNormalizeStrictIRI keeps a non-ASCII host NFC-normalized but not
// punycode-converted in the Normalized value. String, and so Normalize,
// still percent-encodes the host's non-ASCII bytes.
func WithNormalizeStrictIRI(enabled bool) NormalizeOption {
	return func(o *normalizeOptions) {
		o.withStrictIRI = enabled
	}
}

// Normalize returns the canonical string form of u.
//
// See https://en.wikipedia.org/wiki/URI_normalization
func (u URI) Normalize(opts ...NormalizeOption) (string, error) {
	n, err := u.Normalized(opts...)
	if err != nil {
		return "", err
	}

	return n.String(), nil
}

// Normalized returns a new URI holding u's canonicalized content: the
// scheme and registered-name host lower-cased, the host NFC-normalized and
// (unless WithNormalizeStrictIRI is set) punycode-converted, the port
// elided when it matches the scheme's default, and the path run through
// NormalizePath. u itself is left unmodified.
func (u URI) Normalized(opts ...NormalizeOption) (URI, error) {
	o := normalizeOptionsWithDefaults(opts)

	n := u.NormalizePath()
	n.scheme = foldASCII(n.scheme)

	if n.authority.hasHost && n.authority.hostKind == hostKindRegName && n.authority.host != "" {
		host, err := normalizeHost(n.authority.host, o)
		if err != nil {
			return URI{}, err
		}
		n.authority.host = host
	}

	if n.hasScheme && n.authority.hasPort && o.defaultPortFunc != nil {
		if int(n.authority.port) == o.defaultPortFunc(n.scheme) {
			n.authority.hasPort = false
			n.authority.port = 0
		}
	}

	n.query = norm.NFC.String(n.query)
	n.fragment = norm.NFC.String(n.fragment)

	return n, nil
}

func normalizeHost(host string, o *normalizeOptions) (string, error) {
	folded := foldASCII(host)
	normalized := norm.NFC.String(folded)

	if o.withStrictIRI {
		return normalized, nil
	}

	ascii, err := idna.New(o.idnaFlags...).ToASCII(normalized)
	if err != nil {
		return "", errorsJoin(ErrInvalidHost, err)
	}

	return ascii, nil
}
