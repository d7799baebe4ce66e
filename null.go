package asn1core

/*
null.go implements the ASN.1 NULL type (tag 5).
*/

// Null implements the ASN.1 NULL primitive. It carries no data; its
// only meaningful property is presence.
type Null struct{}

func (Null) DefaultTag() int { return TagNull }

// ParseNull decodes a NULL from n. Any content bytes are a failure.
func ParseNull(n Node) (Null, error) {
	if err := expectIdentifier(n.Identifier, TagNull, ClassUniversal, false); err != nil {
		return Null{}, err
	}
	if len(n.Primitive()) != 0 {
		return Null{}, errInvalidObject("NULL: content must be empty")
	}
	return Null{}, nil
}

// Serialize writes the NULL as an empty primitive TLV.
func (Null) Serialize(w *Writer, override *Identifier) {
	id := identifierFor(TagNull, false, override)
	w.AppendPrimitive(id, nil)
}
