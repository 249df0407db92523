package uri

// Resolve implements RFC 3986 §5.2.2/§5.2.3: u is taken as the base URI
// (which must be absolute) and ref as a reference relative to it. The
// result is an absolute URI. Its path is dot-segment-normalized, except
// when ref's path is empty: the base's path is then kept as it is.
//
// Reference: https://www.rfc-editor.org/rfc/rfc3986#section-5
func (u URI) Resolve(ref URI) URI {
	var t URI

	switch {
	case ref.hasScheme:
		t.hasScheme, t.scheme = true, ref.scheme
		t.authority = ref.authority
		t.authority.path = normalizeDotSegments(ref.authority.path)
		t.hasQuery, t.query = ref.hasQuery, ref.query

	case ref.authority.hasHost:
		t.hasScheme, t.scheme = true, u.scheme
		t.authority = ref.authority
		t.authority.path = normalizeDotSegments(ref.authority.path)
		t.hasQuery, t.query = ref.hasQuery, ref.query

	case len(ref.authority.path) == 0:
		t.hasScheme, t.scheme = true, u.scheme
		t.authority = u.authority
		if ref.hasQuery {
			t.hasQuery, t.query = true, ref.query
		} else {
			t.hasQuery, t.query = u.hasQuery, u.query
		}

	case !ref.HasRelativePath():
		t.hasScheme, t.scheme = true, u.scheme
		t.authority = authorityIdentity(u.authority)
		t.authority.path = normalizeDotSegments(ref.authority.path)
		t.hasQuery, t.query = ref.hasQuery, ref.query

	default:
		t.hasScheme, t.scheme = true, u.scheme
		t.authority = authorityIdentity(u.authority)
		t.authority.path = normalizeDotSegments(mergePaths(u, ref))
		t.hasQuery, t.query = ref.hasQuery, ref.query
	}

	t.hasFragment, t.fragment = ref.hasFragment, ref.fragment

	return t
}

// mergePaths implements RFC 3986 §5.3's merge step: if the base has an
// authority and an empty path, the reference's path becomes absolute;
// otherwise all but the last segment of the base's path is kept, and the
// reference's path is appended after it.
func mergePaths(base, ref URI) []string {
	basePathEmpty := len(base.authority.path) == 0 ||
		(len(base.authority.path) == 1 && base.authority.path[0] == "")

	if base.authority.hasHost && basePathEmpty {
		merged := make([]string, 0, len(ref.authority.path)+1)
		merged = append(merged, "")
		merged = append(merged, ref.authority.path...)

		return merged
	}

	basePath := base.authority.path
	var prefix []string
	if len(basePath) > 0 {
		prefix = basePath[:len(basePath)-1]
	}

	merged := make([]string, 0, len(prefix)+len(ref.authority.path))
	merged = append(merged, prefix...)
	merged = append(merged, ref.authority.path...)

	return merged
}
