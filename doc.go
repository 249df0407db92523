// Package uri is an RFC 3986 compliant URI parser, builder, normalizer
// and reference resolver.
//
// This is based on the work from ttacon/uri (credits: Trey Tacon), by way
// of its fredbi/uri fork, restructured around a value type whose optional
// fields are tracked by explicit presence bits rather than sentinel
// strings, and extended with path normalization (RFC 3986 §5.2.4) and
// reference resolution (RFC 3986 §5.2.2).
//
// Reference: https://tools.ietf.org/html/rfc3986
package uri
