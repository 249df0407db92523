package uri

// MarshalText serializes u to its wire form, satisfying
// encoding.TextMarshaler.
func (u URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// MarshalBinary is an alias for MarshalText, satisfying
// encoding.BinaryMarshaler.
func (u URI) MarshalBinary() ([]byte, error) {
	return u.MarshalText()
}

// UnmarshalText parses b as a URI, satisfying encoding.TextUnmarshaler.
//
// Only package-level default options apply; use SetDefaultOptions to
// change them, or Parse directly for per-call options.
func (u *URI) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}

	*u = v

	return nil
}

// UnmarshalBinary is an alias for UnmarshalText, satisfying
// encoding.BinaryUnmarshaler.
func (u *URI) UnmarshalBinary(b []byte) error {
	return u.UnmarshalText(b)
}
