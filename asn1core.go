package asn1core

/*
asn1core.go ties the layers together into the two operations most
callers need: turn a byte slice into a Node tree, and turn a built-up
Writer back into bytes. Everything past this point (which codec to
call, which combinator to compose) is the caller's schema. Both
operations accept the Options functional-configuration surface
(options.go) for the handful of knobs that apply at this top level:
which encoding rule governs a Decode, and whether an Encode's output
should be wrapped in a caller-chosen explicit tag.
*/

// Decode scans input under the rule named by opts (DER unless
// overridden with WithRule) and returns the root Node of the
// resulting tree. It fails if input does not contain exactly one
// well-formed TLV.
func Decode(input []byte, opts ...Option) (Node, error) {
	o := With(opts...)
	nodes, err := Scan(input, o.Rule)
	if err != nil {
		return Node{}, err
	}
	return Tree(nodes), nil
}

// EncodeDER runs build against a fresh DER Writer and returns the
// accumulated bytes. If opts supplies WithTag and WithExplicit, the
// built value is wrapped in a constructed node under that identifier
// instead of being emitted bare, the common convenience of producing
// an explicitly tagged top-level value without hand-writing the
// wrapping call at every use site.
func EncodeDER(build func(w *Writer) error, opts ...Option) ([]byte, error) {
	return encodeUnder(DER, build, opts)
}

// EncodeBER runs build against a fresh BER Writer and returns the
// accumulated bytes, honoring opts the same way EncodeDER does.
func EncodeBER(build func(w *Writer) error, opts ...Option) ([]byte, error) {
	return encodeUnder(BER, build, opts)
}

func encodeUnder(rule EncodingRule, build func(w *Writer) error, opts []Option) ([]byte, error) {
	o := With(opts...)
	w := NewWriter(rule)
	if o.Identifier != nil && o.Explicit {
		if err := w.AppendConstructed(*o.Identifier, build); err != nil {
			return nil, err
		}
		return w.Bytes(), nil
	}
	if err := build(w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}
