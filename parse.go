package uri

import (
	"strconv"
	"strings"

	"github.com/corvidlab/uri3986/internal/charset"
	"github.com/corvidlab/uri3986/internal/ipaddr"
)

// IsURI reports whether raw is a valid RFC 3986 URI.
func IsURI(raw string, opts ...Option) bool {
	_, err := Parse(raw, opts...)

	return err == nil
}

// IsURIReference reports whether raw is a valid RFC 3986 URI reference
// (an absolute URI, or one missing a scheme).
//
// Reference: https://www.rfc-editor.org/rfc/rfc3986#section-4.1
func IsURIReference(raw string, opts ...Option) bool {
	_, err := ParseReference(raw, opts...)

	return err == nil
}

// Parse parses raw as an absolute URI. It returns an error if raw is not
// RFC 3986-compliant, or if it lacks a scheme.
func Parse(raw string, opts ...Option) (URI, error) {
	o := applyURIOptions(opts)

	return parse(raw, o)
}

// ParseReference parses raw as a URI reference: either an absolute URI, or
// a relative reference lacking a scheme (RFC 3986 §4.1). Equivalent to
// Parse(raw, WithReference(true)) but avoids resolving the default options
// twice.
func ParseReference(raw string, opts ...Option) (URI, error) {
	o := applyURIReferenceOptions(opts)

	return parse(raw, o)
}

// parse implements the top-level URI grammar:
//
//	URI = scheme ":" hier-part [ "?" query ] [ "#" fragment ]
//
// It locates the first ':', '?' and '#' to carve out the four top-level
// components, then hands the hier-part off to parseAuthority and the
// whole path/query/fragment strings to their respective validators.
func parse(raw string, o *options) (URI, error) {
	schemeEnd := strings.IndexByte(raw, colonMark)
	hierPartEnd := strings.IndexByte(raw, questionMark)
	queryEnd := strings.IndexByte(raw, fragmentMark)

	// An absolute URI cannot start with ':', '?' or '#'. A URI reference may
	// be a bare query or fragment ("?y", "#s"), but never starts with ':'.
	if schemeEnd == 0 || (!o.withURIReference && (hierPartEnd == 0 || queryEnd == 0)) {
		return URI{}, errorsJoin(ErrInvalidURI, errNewf("a URI cannot start with ':', '?' or '#'"))
	}

	// A colon only introduces a scheme if it precedes any '/', '?' or '#':
	// a colon inside the authority (host:port) or a relative path segment
	// (e.g. "./a:b") must not be mistaken for one.
	slashAt := strings.IndexByte(raw, slashMark)
	looksLikeScheme := schemeEnd > 0 &&
		(slashAt < 0 || schemeEnd < slashAt) &&
		(hierPartEnd < 0 || schemeEnd < hierPartEnd) &&
		(queryEnd < 0 || schemeEnd < queryEnd)

	var scheme string
	hasScheme := false

	switch {
	case looksLikeScheme:
		scheme = foldASCII(raw[:schemeEnd])
		if err := validateScheme(scheme); err != nil {
			return URI{}, err
		}
		hasScheme = true
	case !o.withURIReference:
		return URI{}, errorsJoin(ErrNoSchemeFound, errNewf("a scheme is required for an absolute URI"))
	}

	rest := raw
	if hasScheme {
		rest = raw[schemeEnd+1:]
	}

	hierPart, query, hasQuery, fragment, hasFragment, err := splitQueryFragment(rest)
	if err != nil {
		return URI{}, err
	}

	authority, err := parseAuthority(hierPart)
	if err != nil {
		return URI{}, errorsJoin(ErrInvalidURI, err)
	}

	u := URI{
		hasScheme:   hasScheme,
		scheme:      scheme,
		authority:   authority,
		hasQuery:    hasQuery,
		query:       query,
		hasFragment: hasFragment,
		fragment:    fragment,
	}

	if hasQuery {
		decodedQuery, err := decodeComponent(query, queryFragSet)
		if err != nil {
			return URI{}, errorsJoin(ErrInvalidQuery, err)
		}
		u.query = decodedQuery
	}

	if hasFragment {
		decodedFragment, err := decodeComponent(fragment, queryFragSet)
		if err != nil {
			return URI{}, errorsJoin(ErrInvalidFragment, err)
		}
		u.fragment = decodedFragment
	}

	if !hasScheme || !o.schemeIsDNSFunc(scheme) {
		return u, nil
	}

	if host, ok := u.authority.Host(); ok && u.authority.hostKind == hostKindRegName && host != "" {
		if err := validateDNSHostForScheme(host); err != nil {
			return URI{}, err
		}
	}

	return u, nil
}

// splitQueryFragment carves "hier-part [ '?' query ] [ '#' fragment ]" out
// of rest, which is whatever follows the scheme's ':' (or the whole
// reference, if there was no scheme).
func splitQueryFragment(rest string) (hierPart, query string, hasQuery bool, fragment string, hasFragment bool, err error) {
	fragAt := strings.IndexByte(rest, fragmentMark)

	beforeFrag := rest
	if fragAt >= 0 {
		beforeFrag = rest[:fragAt]
		fragment = rest[fragAt+1:]
		hasFragment = true
	}

	queryAt := strings.IndexByte(beforeFrag, questionMark)
	if queryAt >= 0 {
		hierPart = beforeFrag[:queryAt]
		query = beforeFrag[queryAt+1:]
		hasQuery = true
	} else {
		hierPart = beforeFrag
	}

	return hierPart, query, hasQuery, fragment, hasFragment, nil
}

func validateScheme(scheme string) error {
	if len(scheme) == 0 {
		return errorsJoin(ErrInvalidScheme, errNewf("a scheme must not be empty"))
	}

	if !charset.Alpha.Has(scheme[0]) {
		return errorsJoin(ErrInvalidScheme, errNewf("a scheme must start with a letter: %q", scheme))
	}

	for i := 1; i < len(scheme); i++ {
		if !schemeTailSet.Has(scheme[i]) {
			return errorsJoin(ErrInvalidScheme, errNewf("invalid character %q in scheme %q", scheme[i], scheme))
		}
	}

	return nil
}

// parseAuthority parses the hier-part grammar:
//
//	hier-part = "//" authority path-abempty / path-absolute / path-rootless / path-empty
//	authority = [ userinfo "@" ] host [ ":" port ]
func parseAuthority(hier string) (Authority, error) {
	if !strings.HasPrefix(hier, authorityPrefix) {
		path, err := parsePath(hier)
		if err != nil {
			return Authority{}, err
		}

		return Authority{path: path}, nil
	}

	hier = hier[len(authorityPrefix):]

	slashAt := strings.IndexByte(hier, slashMark)
	authorityPart := hier
	pathPart := ""
	if slashAt >= 0 {
		authorityPart = hier[:slashAt]
		pathPart = hier[slashAt:]
	}

	a, err := parseHostPort(authorityPart)
	if err != nil {
		return Authority{}, err
	}

	path, err := parsePath(pathPart)
	if err != nil {
		return Authority{}, err
	}
	if len(path) == 0 {
		// A host with no path at all ("http://example.com") is
		// canonically equivalent to one with an explicit root
		// ("http://example.com/"): both denote the single empty segment.
		path = []string{""}
	}
	a.path = path

	return a, nil
}

func parseHostPort(raw string) (Authority, error) {
	var a Authority
	a.hasHost = true

	rawHost := raw
	if at := strings.IndexByte(raw, atHost); at >= 0 {
		userinfo := raw[:at]
		rawHost = raw[at+1:]

		name, pass, hasPass, err := parseUserInfo(userinfo)
		if err != nil {
			return Authority{}, err
		}

		a.hasUserinfo = true
		a.userinfoName = name
		a.hasUserinfoPass = hasPass
		a.userinfoPass = pass
	}

	hostPart, port, hasPort, err := splitHostPort(rawHost)
	if err != nil {
		return Authority{}, err
	}

	host, kind, err := parseHost(hostPart)
	if err != nil {
		return Authority{}, err
	}

	a.host = host
	a.hostKind = kind
	a.hasPort = hasPort

	if hasPort && port != "" {
		portNum, err := strconv.ParseUint(port, 10, 32)
		if err != nil || portNum > 65535 {
			return Authority{}, errorsJoin(ErrInvalidPort, errNewf("port out of range (0-65535): %q", port))
		}
		a.port = uint16(portNum)
	}

	return a, nil
}

func parseUserInfo(userinfo string) (name, pass string, hasPass bool, err error) {
	raw := userinfo
	if idx := strings.IndexByte(userinfo, colonMark); idx >= 0 {
		raw = userinfo[:idx]
		pass = userinfo[idx+1:]
		hasPass = true
	}

	name, err = decodeComponent(raw, userInfoSet)
	if err != nil {
		return "", "", false, errorsJoin(ErrInvalidUserInfo, err)
	}

	if hasPass {
		pass, err = decodeComponent(pass, userInfoSet)
		if err != nil {
			return "", "", false, errorsJoin(ErrInvalidUserInfo, err)
		}
	}

	return name, pass, hasPass, nil
}

// splitHostPort separates an IP-literal (bracketed), IPv4, or reg-name
// host from a trailing ":port", without yet validating either side.
func splitHostPort(raw string) (host, port string, hasPort bool, err error) {
	if strings.HasPrefix(raw, string(openingBracketMark)) {
		closeAt := strings.IndexByte(raw, closingBracketMark)
		if closeAt < 0 {
			return "", "", false, errorsJoin(ErrInvalidHostAddress, errNewf("mismatched brackets in %q", raw))
		}
		if closeAt == 1 {
			return "", "", false, errorsJoin(ErrInvalidHostAddress, errNewf("empty IP-literal in %q", raw))
		}

		host = raw[:closeAt+1]
		rest := raw[closeAt+1:]
		if rest == "" {
			return host, "", false, nil
		}
		if rest[0] != colonMark {
			return "", "", false, errorsJoin(ErrInvalidAuthority, errNewf("unexpected characters after IP-literal: %q", rest))
		}

		return host, rest[1:], true, nil
	}

	if idx := strings.IndexByte(raw, colonMark); idx >= 0 {
		return raw[:idx], raw[idx+1:], true, nil
	}

	return raw, "", false, nil
}

// parseHost classifies and decodes a host, returning its kind alongside
// its decoded form. IP-literals (bracketed) are validated but kept
// verbatim, since RFC 3986 forbids percent-encoding inside them (other
// than an IPv6 zone ID's leading "%25").
func parseHost(raw string) (string, hostKind, error) {
	if raw == "" {
		return "", hostKindRegName, nil
	}

	if strings.HasPrefix(raw, string(openingBracketMark)) {
		body := raw[1 : len(raw)-1]

		if len(body) > 0 && (body[0] == 'v' || body[0] == 'V') {
			if err := ipaddr.ValidateIPvFuture(body); err != nil {
				return "", 0, errorsJoin(ErrInvalidHostAddress, err)
			}

			tail := body[strings.IndexByte(body, '.')+1:]
			for i := 0; i < len(tail); i++ {
				if !ipvFutureSet.Has(tail[i]) {
					return "", 0, errorsJoin(ErrInvalidHostAddress, errNewf("invalid character %q in IPvFuture", tail[i]))
				}
			}

			return body, hostKindIPvFuture, nil
		}

		if err := ipaddr.ValidateIPv6(body); err != nil {
			return "", 0, errorsJoin(ErrInvalidHostAddress, err)
		}

		return body, hostKindIPv6, nil
	}

	if ipaddr.IsIPv4(raw) {
		return raw, hostKindIPv4, nil
	}

	decoded, err := decodeComponent(raw, regNameSet)
	if err != nil {
		return "", 0, errorsJoin(ErrInvalidHost, err)
	}

	return foldASCII(decoded), hostKindRegName, nil
}

// parsePath splits a path string on '/' and percent-decodes each segment
// against the pchar grammar. A leading slash yields a leading empty
// segment, marking the path as absolute.
func parsePath(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}

	// A bare "/" is the root path: exactly one empty segment, not the two
	// strings.Split("/", "/") would otherwise yield.
	if raw == string(slashMark) {
		return []string{""}, nil
	}

	parts := strings.Split(raw, string(slashMark))
	segments := make([]string, 0, len(parts))

	for _, part := range parts {
		decoded, err := decodeComponent(part, pcharSet)
		if err != nil {
			return nil, errorsJoin(ErrInvalidPath, err)
		}
		segments = append(segments, decoded)
	}

	return segments, nil
}
