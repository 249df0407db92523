package uri

// normalizeDotSegments implements RFC 3986 §5.2.4 remove_dot_segments,
// adapted to operate on an already-split segment slice instead of the raw
// "/a/b/../c" string the RFC's algorithm walks byte by byte. "." segments
// are dropped; ".." pops the last real segment pushed so far (an absolute
// path never pops past its leading empty segment); everything else is
// kept in order. A path ending in "." or ".." denotes a trailing slash in
// the RFC's string-based algorithm, so a final dot segment leaves behind
// an empty trailing segment unless one is already there.
func normalizeDotSegments(path []string) []string {
	if len(path) == 0 {
		return path
	}

	absolute := path[0] == ""

	out := make([]string, 0, len(path))
	lastWasDot := false

	for i, segment := range path {
		if i == 0 && absolute {
			out = append(out, "")

			continue
		}

		switch segment {
		case ".":
			lastWasDot = true
		case "..":
			lastWasDot = true

			switch {
			case len(out) > 1:
				out = out[:len(out)-1]
			case !absolute && len(out) > 0:
				out = out[:len(out)-1]
			}
		default:
			lastWasDot = false
			out = append(out, segment)
		}
	}

	if lastWasDot && (len(out) == 0 || out[len(out)-1] != "") {
		out = append(out, "")
	}

	return out
}

// NormalizePath rewrites u's path by removing "." and ".." segments per
// RFC 3986 §5.2.4, returning a new URI. u itself is left unmodified.
func (u URI) NormalizePath() URI {
	u.authority.path = normalizeDotSegments(u.authority.path)

	return u
}
