package uri

import "strings"

// hostKind distinguishes the four host forms RFC 3986 recognizes.
type hostKind uint8

const (
	hostKindRegName hostKind = iota
	hostKindIPv4
	hostKindIPv6
	hostKindIPvFuture
)

// Authority holds the parsed `[userinfo "@"] host [":" port] [path]` region
// of a URI. Presence of the host is tracked independently of its content
// so that an authority with an empty host (e.g. "file:///path") is
// distinguishable from no authority at all.
type Authority struct {
	hasHost bool

	hasUserinfo  bool
	userinfoName string

	hasUserinfoPass bool
	userinfoPass    string

	host     string
	hostKind hostKind

	hasPort bool
	port    uint16

	// path is the ordered sequence of decoded segments. A leading empty
	// segment marks an absolute path. A nil/empty slice means no path.
	path []string
}

// HasHost reports whether this authority has a host component.
func (a Authority) HasHost() bool { return a.hasHost }

// UserInfoName returns the userinfo name and whether userinfo is present.
func (a Authority) UserInfoName() (string, bool) { return a.userinfoName, a.hasUserinfo }

// UserInfoPass returns the userinfo password and whether one was given.
func (a Authority) UserInfoPass() (string, bool) { return a.userinfoPass, a.hasUserinfoPass }

// Host returns the decoded host and whether a host is present.
func (a Authority) Host() (string, bool) { return a.host, a.hasHost }

// IsIPv6 reports whether the host is an IPv6 (or IPvFuture) literal, i.e.
// whether it must be serialized inside square brackets.
func (a Authority) IsIPv6() bool { return a.hostKind == hostKindIPv6 || a.hostKind == hostKindIPvFuture }

// HasPort reports whether a port was specified.
func (a Authority) HasPort() bool { return a.hasPort }

// Port returns the port number. Only meaningful when HasPort is true.
func (a Authority) Port() uint16 { return a.port }

// Path returns the decoded path segments.
func (a Authority) Path() []string { return a.path }

// authorityIdentity copies everything about an authority except its path,
// used by the reference resolver to keep a base's host/userinfo/port while
// substituting a different path.
func authorityIdentity(a Authority) Authority {
	a.path = nil

	return a
}

func (a Authority) equal(b Authority) bool {
	if a.hasHost != b.hasHost {
		return false
	}

	if a.hasHost {
		if a.hasUserinfo != b.hasUserinfo || a.userinfoName != b.userinfoName {
			return false
		}
		if a.hasUserinfoPass != b.hasUserinfoPass || a.userinfoPass != b.userinfoPass {
			return false
		}
		if a.host != b.host || a.hostKind != b.hostKind {
			return false
		}
		if a.hasPort != b.hasPort || (a.hasPort && a.port != b.port) {
			return false
		}
	}

	if len(a.path) != len(b.path) {
		return false
	}
	for i := range a.path {
		if a.path[i] != b.path[i] {
			return false
		}
	}

	return true
}

// URI is an RFC 3986 URI (or, when parsed with ParseReference, a URI
// reference). All string fields are stored decoded; percent-encoding is
// purely a wire concern handled by Parse and String.
type URI struct {
	hasScheme bool
	scheme    string

	authority Authority

	hasQuery bool
	query    string

	hasFragment bool
	fragment    string
}

// Scheme returns the URI scheme, already case-folded to lower case.
func (u URI) Scheme() string { return u.scheme }

// HasScheme reports whether a scheme is present.
func (u URI) HasScheme() bool { return u.hasScheme }

// Authority returns the URI's authority component.
func (u URI) Authority() Authority { return u.authority }

// Path returns the decoded path segments; a shorthand for Authority().Path().
func (u URI) Path() []string { return u.authority.path }

// HasQuery reports whether a query component is present (distinct from it
// being the empty string).
func (u URI) HasQuery() bool { return u.hasQuery }

// Query returns the decoded query string.
func (u URI) Query() string { return u.query }

// HasFragment reports whether a fragment component is present.
func (u URI) HasFragment() bool { return u.hasFragment }

// Fragment returns the decoded fragment string.
func (u URI) Fragment() string { return u.fragment }

// IsRelativeReference reports whether this value has no scheme, i.e. it is
// a reference that requires a base URI to be resolved into an absolute one.
func (u URI) IsRelativeReference() bool { return !u.hasScheme }

// HasRelativePath reports whether the path is empty or does not begin with
// an absolute (leading-empty) segment.
func (u URI) HasRelativePath() bool {
	return len(u.authority.path) == 0 || u.authority.path[0] != ""
}

// Equal reports whether u and other denote the same URI: scheme and
// registered-name host compare case-insensitively (both are stored
// case-folded already), IP-literal hosts compare byte-for-byte, and all
// other fields compare after decoding.
func (u URI) Equal(other URI) bool {
	if u.hasScheme != other.hasScheme || u.scheme != other.scheme {
		return false
	}
	if !u.authority.equal(other.authority) {
		return false
	}
	if u.hasQuery != other.hasQuery || u.query != other.query {
		return false
	}
	if u.hasFragment != other.hasFragment || u.fragment != other.fragment {
		return false
	}

	return true
}

// NotEqual is the negation of Equal.
func (u URI) NotEqual(other URI) bool { return !u.Equal(other) }

// String serializes u back into its wire representation. See
// encodeComponent for the percent-encoding rules applied.
func (u URI) String() string {
	var sb strings.Builder

	if u.hasScheme {
		sb.WriteString(u.scheme)
		sb.WriteByte(colonMark)
	}

	u.writeAuthority(&sb)
	u.writePath(&sb)

	if u.hasQuery {
		sb.WriteByte(questionMark)
		sb.WriteString(encodeComponent(u.query, queryFragSet))
	}

	if u.hasFragment {
		sb.WriteByte(fragmentMark)
		sb.WriteString(encodeComponent(u.fragment, queryFragSet))
	}

	return sb.String()
}

func (u URI) writeAuthority(sb *strings.Builder) {
	if !u.authority.hasHost {
		return
	}

	sb.WriteString(authorityPrefix)

	if u.authority.hasUserinfo {
		sb.WriteString(encodeComponent(u.authority.userinfoName, userInfoSet))
		if u.authority.hasUserinfoPass {
			sb.WriteByte(colonMark)
			sb.WriteString(encodeComponent(u.authority.userinfoPass, userInfoSet))
		}
		sb.WriteByte(atHost)
	}

	if u.authority.IsIPv6() {
		sb.WriteByte(openingBracketMark)
		sb.WriteString(u.authority.host)
		sb.WriteByte(closingBracketMark)
	} else {
		sb.WriteString(encodeComponent(u.authority.host, regNameSet))
	}

	if u.authority.hasPort && u.authority.port != 0 {
		sb.WriteByte(colonMark)
		sb.WriteString(formatPort(u.authority.port))
	}
}

func (u URI) writePath(sb *strings.Builder) {
	path := u.authority.path

	if u.authority.hasHost && (len(path) == 0 || (len(path) == 1 && path[0] == "")) {
		sb.WriteByte(slashMark)

		return
	}

	for i, segment := range path {
		if i > 0 {
			sb.WriteByte(slashMark)
		}
		sb.WriteString(encodeComponent(segment, pcharSet))
	}
}
