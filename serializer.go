package asn1core

/*
serializer.go implements the streaming DER/BER writer: a growable byte
buffer with primitives for appending primitive and constructed TLVs,
and deferred SET OF sorting. A constructed TLV's content is built in a
nested Writer and copied into the parent once its length is known;
there is no in-place length back-patch.
*/

// Writer is a growable byte buffer implementing the serializer
// contract. The zero value is ready to use.
type Writer struct {
	rule EncodingRule
	buf  []byte
}

// NewWriter returns a Writer that emits TLVs under rule.
func NewWriter(rule EncodingRule) *Writer { return &Writer{rule: rule} }

// Rule returns the EncodingRule the receiver was constructed with.
func (w *Writer) Rule() EncodingRule { return w.rule }

// Bytes returns the accumulated output. The caller takes ownership of
// the returned slice.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// AppendRaw copies b verbatim into the receiver's buffer. This
// supports raw pass-through re-emission of a previously parsed Node.
func (w *Writer) AppendRaw(b []byte) { w.buf = append(w.buf, b...) }

// AppendPrimitive writes a primitive TLV under id. The content bytes
// are copied into place after the identifier and length.
func (w *Writer) AppendPrimitive(id Identifier, content []byte) {
	id.Constructed = false
	w.buf = encodeIdentifier(w.buf, id)
	w.buf = encodeLength(w.buf, len(content))
	w.buf = append(w.buf, content...)
}

// AppendConstructed writes a constructed TLV under id, running fn
// against a nested Writer to produce the content, then writes the
// identifier, the minimal length header for the measured content size,
// and a copy of the nested Writer's bytes. fn may itself
// call AppendConstructed/AppendPrimitive to recurse arbitrarily.
func (w *Writer) AppendConstructed(id Identifier, fn func(inner *Writer) error) error {
	debugEvent(EventCodec, "append constructed", id)
	id.Constructed = true
	inner := &Writer{rule: w.rule}
	if err := fn(inner); err != nil {
		return err
	}
	w.buf = encodeIdentifier(w.buf, id)
	w.buf = encodeLength(w.buf, len(inner.buf))
	w.buf = append(w.buf, inner.buf...)
	return nil
}

// AppendNode re-emits a previously parsed Node verbatim, preserving its
// original tag, length form and child order. This supports perfect
// round-trips when decoding cannot or should not normalize the bytes.
func (w *Writer) AppendNode(n Node) { w.AppendRaw(n.EncodedBytes) }

// setOfElement records the byte range of one serialized SET OF member,
// used by AppendSetOf to defer emission until the sort order is known.
type setOfElement struct {
	bytes []byte
}

// AppendSetOf serializes n elements (by calling encode(i) for each
// index in [0,n)) into scratch buffers, sorts them by the canonical
// SET OF ordering, then emits a constructed SET header followed by the
// elements in sorted order. Under BER, the order is left as produced
// by encode (BER does not require SET OF sorting).
func (w *Writer) AppendSetOf(id Identifier, n int, encode func(i int, inner *Writer) error) error {
	elems := make([]setOfElement, n)
	for i := 0; i < n; i++ {
		inner := &Writer{rule: w.rule}
		if err := encode(i, inner); err != nil {
			return err
		}
		elems[i] = setOfElement{bytes: inner.buf}
	}

	if w.rule.strict() {
		debugInfo("AppendSetOf: sorting", n, "elements into canonical DER order")
		sortSetOfElements(elems)
	}

	id.Constructed = true
	w.buf = encodeIdentifier(w.buf, id)
	total := 0
	for _, e := range elems {
		total += len(e.bytes)
	}
	w.buf = encodeLength(w.buf, total)
	for _, e := range elems {
		w.buf = append(w.buf, e.bytes...)
	}
	return nil
}

func sortSetOfElements(elems []setOfElement) {
	insertionSortBy(elems, func(a, b setOfElement) bool {
		return setOfLess(a.bytes, b.bytes)
	})
}

// setOfLess implements the canonical SET OF ordering: lexicographic
// comparison of the encoded bytes, treating the shorter operand as if
// padded with trailing zero bytes to the longer's length.
func setOfLess(a, b []byte) bool {
	n := minInt(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	if len(a) == len(b) {
		return false
	}
	if len(a) < len(b) {
		return !allZero(b[n:])
	}
	// len(a) > len(b): a is "less" only if it's actually greater once
	// you account for the implicit zero padding on b, i.e. never,
	// unless a's trailing bytes are themselves all zero (equal).
	return false
}

func allZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

// setOfEqual reports whether two SET OF encodings compare equal under
// the canonical ordering. Nothing in the package calls it;
// ParseDefault compares encodings with beq instead.
func setOfEqual(a, b []byte) bool {
	return !setOfLess(a, b) && !setOfLess(b, a)
}

// insertionSortBy is a tiny stable sort used for SET OF elements. The
// element counts involved are schema-sized (not attacker controlled
// bulk data), so O(n^2) is an acceptable, allocation-free choice; the
// "stable only insofar as equal-encoding elements produce the same
// bytes" requirement from the design notes falls out for free since
// ties never need to move past one another.
func insertionSortBy(elems []setOfElement, less func(a, b setOfElement) bool) {
	for i := 1; i < len(elems); i++ {
		for j := i; j > 0 && less(elems[j], elems[j-1]); j-- {
			elems[j], elems[j-1] = elems[j-1], elems[j]
		}
	}
}
