package uri

import "sync"

// Option tunes the strictness of Parse and ParseReference; the With*
// builders take no options. Normalize has its own, separate NormalizeOption: the
// two concerns don't overlap, since Parse/ParseReference never normalize
// anything they read.
type Option func(*options)

type options struct {
	schemeIsDNSFunc  func(string) bool
	withURIReference bool
}

var (
	packageLevelDefaults = options{
		schemeIsDNSFunc: func(s string) bool { return UsesDNSHostValidation(s) },
	}

	packageLevelReferenceDefaults = options{
		schemeIsDNSFunc:  func(s string) bool { return UsesDNSHostValidation(s) },
		withURIReference: true,
	}

	muxDefaults sync.Mutex
)

// resolveOptions starts from the relevant package-level defaults and
// applies opts over a private copy, so concurrent Parse calls never share
// mutable state. Unlike the sync.Pool-backed allocator this scheme
// replaces, there is nothing to redeem: the copy is simply discarded by the
// garbage collector once parse returns.
func resolveOptions(base options, opts []Option) *options {
	o := base

	for _, apply := range opts {
		apply(&o)
	}

	return &o
}

func applyURIOptions(opts []Option) *options {
	muxDefaults.Lock()
	base := packageLevelDefaults
	muxDefaults.Unlock()

	return resolveOptions(base, opts)
}

func applyURIReferenceOptions(opts []Option) *options {
	muxDefaults.Lock()
	base := packageLevelReferenceDefaults
	muxDefaults.Unlock()

	o := resolveOptions(base, opts)
	o.withURIReference = true

	return o
}

// SetDefaultOptions tweaks the package-level defaults used whenever Parse
// or ParseReference are called without explicit options. Intended for
// process initialization, since it mutates shared state.
func SetDefaultOptions(opts ...Option) {
	muxDefaults.Lock()
	defer muxDefaults.Unlock()

	for _, apply := range opts {
		apply(&packageLevelDefaults)
		apply(&packageLevelReferenceDefaults)
	}
}

// WithSchemeIsDNSFunc overrides the function used to decide whether a
// (lower-cased) scheme's host should be validated as an Internet domain
// name rather than a bare registered-name.
func WithSchemeIsDNSFunc(fn func(string) bool) Option {
	return func(o *options) {
		o.schemeIsDNSFunc = fn
	}
}

// WithReference tells Parse whether to accept a schemeless URI reference.
// ParseReference always enables this regardless of the option's default.
func WithReference(enabled bool) Option {
	return func(o *options) {
		o.withURIReference = enabled
	}
}
