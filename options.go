package asn1core

/*
options.go contains the Options type, a trimmed, non-reflective
stand-in for the struct-tag driven configuration object many ASN.1
libraries build over reflection. This package's schemas are described
by composing combinator calls directly rather than annotating struct
fields, so Options only needs to carry the handful of knobs those calls
actually consult: a tag/class override and the encoding rule to apply.
*/

// Options carries the optional per-field instructions a combinator
// call may need: an identifier override (for explicit/implicit
// tagging) and the encoding rule governing strictness.
type Options struct {
	Identifier *Identifier
	Rule       EncodingRule
	Explicit   bool
}

// Option mutates an Options value; With applies a sequence of them
// starting from a zero-value Options under DER.
type Option func(*Options)

// With builds an Options value by applying opts in order over a
// DER-strict zero value.
func With(opts ...Option) Options {
	o := Options{Rule: DER}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// WithRule overrides the encoding rule (DER by default).
func WithRule(rule EncodingRule) Option {
	return func(o *Options) { o.Rule = rule }
}

// WithTag sets a custom identifier. EncodeDER and EncodeBER use it
// only when WithExplicit is also given, to wrap the built value; on its
// own it has no effect there, and Decode does not consult it.
func WithTag(class Class, tag int) Option {
	return func(o *Options) { o.Identifier = &Identifier{Class: class, Tag: tag} }
}

// WithExplicit marks a WithTag override as wrapping (explicit) rather
// than replacing (implicit) the value's natural tag.
func WithExplicit() Option {
	return func(o *Options) { o.Explicit = true }
}
