package asn1core

/*
combinators.go implements the L4 schema combinators that application
code composes over the L2 node tree and L5 serializer: SEQUENCE, SET,
their "OF" variants, explicit/implicit tagging, and the OPTIONAL/DEFAULT
field modifiers. None of these introduce a new wire format; they
arrange existing TLVs into the shapes higher-level schemas need.
*/

// ParseSequence enters the constructed node at n (expecting the
// universal SEQUENCE tag, or override if non-nil), invokes build with
// an iterator over its children, and then requires the iterator to be
// exhausted: a builder that stops consuming before the last child
// leaves trailing fields unaccounted for, which is always a schema
// mismatch.
func ParseSequence(n Node, override *Identifier, build func(it *ChildIterator) error) error {
	defer debugPath("ParseSequence")()
	debugComposite("ParseSequence", n.Identifier)
	id := expectedIdentifier(TagSequence, true, override)
	if err := expectIdentifier(n.Identifier, id.Tag, id.Class, true); err != nil {
		return err
	}
	it := n.Children()
	if err := build(&it); err != nil {
		return err
	}
	if !it.Done() {
		return errInvalidObject("SEQUENCE has unconsumed trailing fields")
	}
	return nil
}

// SerializeSequence opens a constructed node under the SEQUENCE tag
// (or override) and runs build against the nested Writer.
func SerializeSequence(w *Writer, override *Identifier, build func(inner *Writer) error) error {
	debugComposite("SerializeSequence")
	id := identifierFor(TagSequence, true, override)
	return w.AppendConstructed(id, build)
}

// ParseSet is structurally identical to ParseSequence; SET carries no
// additional parse-time constraint beyond its own tag.
func ParseSet(n Node, override *Identifier, build func(it *ChildIterator) error) error {
	debugComposite("ParseSet", n.Identifier)
	id := expectedIdentifier(TagSet, true, override)
	if err := expectIdentifier(n.Identifier, id.Tag, id.Class, true); err != nil {
		return err
	}
	it := n.Children()
	if err := build(&it); err != nil {
		return err
	}
	if !it.Done() {
		return errInvalidObject("SET has unconsumed trailing fields")
	}
	return nil
}

// SerializeSet opens a constructed node under the SET tag (or
// override) and runs build against the nested Writer.
func SerializeSet(w *Writer, override *Identifier, build func(inner *Writer) error) error {
	debugComposite("SerializeSet")
	id := identifierFor(TagSet, true, override)
	return w.AppendConstructed(id, build)
}

// ParseSequenceOf enters a constructed node under the SEQUENCE tag (or
// override), decodes every child with parseElem, and returns them in
// encoded order.
func ParseSequenceOf[T any](n Node, override *Identifier, parseElem func(Node) (T, error)) ([]T, error) {
	debugComposite("ParseSequenceOf", n.Identifier)
	id := expectedIdentifier(TagSequence, true, override)
	if err := expectIdentifier(n.Identifier, id.Tag, id.Class, true); err != nil {
		return nil, err
	}
	var out []T
	it := n.Children()
	for {
		child, ok := it.Next()
		if !ok {
			break
		}
		v, err := parseElem(child)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// SerializeSequenceOf opens a constructed SEQUENCE node (or override)
// and serializes each element with serializeElem, in order.
func SerializeSequenceOf[T any](w *Writer, override *Identifier, elems []T, serializeElem func(T, *Writer)) error {
	debugComposite("SerializeSequenceOf", len(elems))
	id := identifierFor(TagSequence, true, override)
	return w.AppendConstructed(id, func(inner *Writer) error {
		for _, e := range elems {
			serializeElem(e, inner)
		}
		return nil
	})
}

// ParseSetOf enters a constructed node under the SET tag (or override),
// decodes every child with parseElem, and additionally verifies that
// under DER the children appear in canonical SET OF order.
func ParseSetOf[T any](n Node, rule EncodingRule, override *Identifier, parseElem func(Node) (T, error)) ([]T, error) {
	debugComposite("ParseSetOf", n.Identifier, rule)
	id := expectedIdentifier(TagSet, true, override)
	if err := expectIdentifier(n.Identifier, id.Tag, id.Class, true); err != nil {
		return nil, err
	}
	var out []T
	var prev []byte
	first := true
	it := n.Children()
	for {
		child, ok := it.Next()
		if !ok {
			break
		}
		if rule.strict() {
			if !first && setOfLess(child.EncodedBytes, prev) {
				return nil, errInvalidObject("SET OF children are not in canonical DER order")
			}
			prev = child.EncodedBytes
			first = false
		}
		v, err := parseElem(child)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// SerializeSetOf serializes each element into a scratch buffer, sorts
// them by the canonical SET OF order under DER, and emits a
// constructed SET header followed by the elements in sorted order.
func SerializeSetOf[T any](w *Writer, override *Identifier, elems []T, serializeElem func(T, *Writer)) error {
	debugComposite("SerializeSetOf", len(elems))
	id := identifierFor(TagSet, true, override)
	return w.AppendSetOf(id, len(elems), func(i int, inner *Writer) error {
		serializeElem(elems[i], inner)
		return nil
	})
}

// ParseExplicit unwraps an explicitly tagged value: a constructed node
// under tagID containing exactly one child, which is handed to
// parseInner.
func ParseExplicit[T any](n Node, tagID Identifier, parseInner func(Node) (T, error)) (T, error) {
	var zero T
	debugComposite("ParseExplicit", tagID, n.Identifier)
	if err := expectIdentifier(n.Identifier, tagID.Tag, tagID.Class, true); err != nil {
		return zero, err
	}
	it := n.Children()
	child, ok := it.Next()
	if !ok {
		return zero, errInvalidObject("explicit tag has no inner value")
	}
	if !it.Done() {
		return zero, errInvalidObject("explicit tag has more than one inner value")
	}
	return parseInner(child)
}

// SerializeExplicit opens a constructed node under tagID and
// serializes the single inner value inside it.
func SerializeExplicit(w *Writer, tagID Identifier, writeInner func(inner *Writer) error) error {
	debugComposite("SerializeExplicit", tagID)
	return w.AppendConstructed(tagID, writeInner)
}

// Implicit tagging needs no dedicated combinator: every codec in this
// package already accepts an *Identifier override that replaces its
// natural tag on both parse and serialize, which is exactly implicit
// tagging's wire effect. Types without a natural tag of their own
// (CHOICE-shaped values) are out of scope for this package and must
// not be implicitly tagged by callers.

// OptionalPeek reports whether the next child of it matches the
// expected identifier without consuming the iterator. It implements
// OPTIONAL's non-destructive lookahead by trying the read against a
// cloned cursor and discarding the clone.
func OptionalPeek(it *ChildIterator, wantTag int, wantClass Class) (Node, bool) {
	child, ok := it.Peek()
	if !ok {
		return Node{}, false
	}
	if child.Identifier.Class != wantClass || child.Identifier.Tag != wantTag {
		return Node{}, false
	}
	return child, true
}

// ParseOptional decodes the next child of it as T if present and
// matching the expected identifier; otherwise it leaves the iterator
// untouched and returns ok=false.
func ParseOptional[T any](it *ChildIterator, wantTag int, wantClass Class, parseElem func(Node) (T, error)) (T, bool, error) {
	var zero T
	if _, ok := OptionalPeek(it, wantTag, wantClass); !ok {
		return zero, false, nil
	}
	child, _ := it.Next()
	v, err := parseElem(child)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

// ParseDefault is like ParseOptional but supplies def when the field is
// absent. Under DER, a present value that serializes identically to
// def is a violation (DER forbids encoding DEFAULT at its default
// value); encodeElem is used only to compute that comparison, so it
// must be deterministic.
func ParseDefault[T any](it *ChildIterator, wantTag int, wantClass Class, rule EncodingRule, def T,
	parseElem func(Node) (T, error), encodeElem func(T, *Writer)) (T, error) {

	child, ok := OptionalPeek(it, wantTag, wantClass)
	if !ok {
		return def, nil
	}
	it.Next()
	v, err := parseElem(child)
	if err != nil {
		return def, err
	}
	if rule.strict() {
		defW := NewWriter(rule)
		encodeElem(def, defW)
		if beq(defW.Bytes(), child.EncodedBytes) {
			return def, errInvalidObject("DEFAULT field encoded at its default value")
		}
	}
	return v, nil
}

// SerializeDefault writes v via encodeElem. Under DER it omits the
// field entirely when v encodes identically to def; under BER v is
// always written.
func SerializeDefault[T any](w *Writer, v, def T, encodeElem func(T, *Writer)) {
	if w.Rule().strict() {
		probe := NewWriter(w.Rule())
		encodeElem(v, probe)
		defProbe := NewWriter(w.Rule())
		encodeElem(def, defProbe)
		if beq(probe.Bytes(), defProbe.Bytes()) {
			return
		}
		w.AppendRaw(probe.Bytes())
		return
	}
	encodeElem(v, w)
}
