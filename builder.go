package uri

// Builder methods. Each returns a modified copy of u alongside any
// validation error from the part that changed; u itself is never mutated.

// WithScheme sets u's scheme, case-folding and validating it.
func (u URI) WithScheme(scheme string) (URI, error) {
	folded := foldASCII(scheme)
	if err := validateScheme(folded); err != nil {
		return u, err
	}

	u.hasScheme = true
	u.scheme = folded

	return u, nil
}

// WithoutScheme strips u's scheme, turning an absolute URI into a relative
// reference. The rest of u is left untouched.
func (u URI) WithoutScheme() URI {
	u.hasScheme = false
	u.scheme = ""

	return u
}

// WithAuthority replaces u's authority wholesale. authority is assumed
// already-decoded and is not re-validated; construct it via Parse or the
// other With* builders if validation is required.
func (u URI) WithAuthority(authority Authority) (URI, error) {
	u.authority = authority

	return u, nil
}

// WithUserInfo sets u's userinfo name (and, if hasPass is true, its
// password; pass is ignored otherwise). name and pass may contain
// percent-escapes, decoded the same way Parse decodes a wire userinfo.
func (u URI) WithUserInfo(name string, pass string, hasPass bool) (URI, error) {
	decodedName, err := decodeComponent(name, userInfoSet)
	if err != nil {
		return u, errorsJoin(ErrInvalidUserInfo, err)
	}

	var decodedPass string
	if hasPass {
		decodedPass, err = decodeComponent(pass, userInfoSet)
		if err != nil {
			return u, errorsJoin(ErrInvalidUserInfo, err)
		}
	}

	u.authority.hasHost = true
	u.authority.hasUserinfo = true
	u.authority.userinfoName = decodedName
	u.authority.hasUserinfoPass = hasPass
	u.authority.userinfoPass = decodedPass
	if len(u.authority.path) == 0 {
		u.authority.path = []string{""}
	}

	return u, nil
}

// WithHost sets u's host, classifying it as an IP literal or
// registered-name the same way Parse would.
func (u URI) WithHost(host string) (URI, error) {
	raw := host
	if containsColon(host) && host != "" && host[0] != openingBracketMark {
		raw = string(openingBracketMark) + host + string(closingBracketMark)
	}

	decoded, kind, err := parseHost(raw)
	if err != nil {
		return u, err
	}

	u.authority.hasHost = true
	u.authority.host = decoded
	u.authority.hostKind = kind
	if len(u.authority.path) == 0 {
		u.authority.path = []string{""}
	}

	return u, nil
}

func containsColon(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == colonMark {
			return true
		}
	}

	return false
}

// WithPort sets u's port.
func (u URI) WithPort(port uint16) (URI, error) {
	u.authority.hasHost = true
	u.authority.hasPort = true
	u.authority.port = port
	if len(u.authority.path) == 0 {
		u.authority.path = []string{""}
	}

	return u, nil
}

// WithoutPort clears u's port, leaving the rest of the authority untouched.
func (u URI) WithoutPort() URI {
	u.authority.hasPort = false
	u.authority.port = 0

	return u
}

// WithPath replaces u's path wholesale with raw, split and percent-decoded
// the same way Parse's path grammar does.
func (u URI) WithPath(raw string) (URI, error) {
	segments, err := parsePath(raw)
	if err != nil {
		return u, err
	}
	if u.authority.hasHost && len(segments) == 0 {
		segments = []string{""}
	}

	u.authority.path = segments

	return u, nil
}

// WithJoinPath appends elems to u's existing path, joining them the way
// path.Join joins filesystem paths: empty elements are dropped and the
// result is not dot-segment-normalized (call NormalizePath explicitly if
// that's wanted).
func (u URI) WithJoinPath(elems ...string) (URI, error) {
	joined := append([]string{}, u.authority.path...)

	for _, elem := range elems {
		segments, err := parsePath(elem)
		if err != nil {
			return u, err
		}

		for _, s := range segments {
			if s == "" {
				continue
			}
			joined = append(joined, s)
		}
	}

	u.authority.path = joined

	return u, nil
}

// WithQuery sets u's query component. query may contain percent-escapes,
// which are decoded the same way Parse decodes a wire query string.
func (u URI) WithQuery(query string) (URI, error) {
	decoded, err := decodeComponent(query, queryFragSet)
	if err != nil {
		return u, errorsJoin(ErrInvalidQuery, err)
	}

	u.hasQuery = true
	u.query = decoded

	return u, nil
}

// WithoutQuery clears u's query component entirely, distinct from setting
// it to the empty string (which WithQuery("") does, keeping it present).
func (u URI) WithoutQuery() URI {
	u.hasQuery = false
	u.query = ""

	return u
}

// WithFragment sets u's fragment component. fragment may contain
// percent-escapes, decoded the same way as WithQuery.
func (u URI) WithFragment(fragment string) (URI, error) {
	decoded, err := decodeComponent(fragment, queryFragSet)
	if err != nil {
		return u, errorsJoin(ErrInvalidFragment, err)
	}

	u.hasFragment = true
	u.fragment = decoded

	return u, nil
}

// WithoutFragment clears u's fragment component entirely, distinct from
// setting it to the empty string (which WithFragment("") does, keeping it
// present).
func (u URI) WithoutFragment() URI {
	u.hasFragment = false
	u.fragment = ""

	return u
}
