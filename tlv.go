package asn1core

/*
tlv.go exposes TLV, a flat, standalone snapshot of a single
identifier/length/value triple independent of the Node tree it was
read from. It exists for round-trip and raw-passthrough tests that
want to compare two TLVs structurally without walking a tree.
*/

// TLV is a standalone view of one encoded tag-length-value triple: its
// class, tag, constructed flag, declared length, and value bytes.
type TLV struct {
	Class    Class
	Tag      int
	Compound bool
	Length   int
	Value    []byte
	rule     EncodingRule
}

// Rule reports which encoding rule produced the receiver.
func (t TLV) Rule() EncodingRule { return t.rule }

// NodeTLV snapshots n as a standalone TLV under rule. For a primitive
// node, Length and Value both describe the value bytes; for a
// constructed node, Value is left nil and Length is the sum of its
// children's encoded lengths: the encoded bytes minus the
// identifier/length header for a definite-length node, while an
// indefinite-length node's end-of-contents marker is not counted.
func NodeTLV(n Node, rule EncodingRule) TLV {
	t := TLV{
		Class:    n.Identifier.Class,
		Tag:      n.Identifier.Tag,
		Compound: n.Identifier.Constructed,
		rule:     rule,
	}
	if n.IsPrimitive() {
		t.Value = n.Primitive()
		t.Length = len(t.Value)
		return t
	}
	// A definite-length constructed node's content is exactly the
	// concatenation of its children's encoded bytes, so the content
	// length is their sum.
	it := n.Children()
	for {
		child, ok := it.Next()
		if !ok {
			break
		}
		t.Length += len(child.EncodedBytes)
	}
	return t
}

// Eq reports whether a and b describe the same identifier, constructed
// flag and encoding rule; length is compared only when compareLength is
// true, matching the teacher's optional strict-length comparison.
func (a TLV) Eq(b TLV, compareLength ...bool) bool {
	lenOK := true
	if len(compareLength) > 0 && compareLength[0] {
		lenOK = a.Length == b.Length
	}
	return a.rule == b.rule && a.Compound == b.Compound &&
		a.Class == b.Class && a.Tag == b.Tag && lenOK
}

// String renders a diagnostic view of the receiver.
func (t TLV) String() string {
	out := newStrBuilder()
	out.WriteString("{Rule: " + t.rule.String() +
		", Class:" + itoa(int(t.Class)) +
		", Tag:" + itoa(t.Tag) +
		", Compound:" + bool2str(t.Compound) +
		", Length:" + itoa(t.Length) +
		", Value:[" + hexstr(t.Value) + "]}")
	return out.String()
}
