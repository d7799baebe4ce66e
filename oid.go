package asn1core

/*
oid.go implements the ASN.1 OBJECT IDENTIFIER type (tag 6), plus its
sibling RELATIVE-OID (tag 13), which shares the same base-128
subidentifier machinery. See also the open question in the design
notes regarding the single-component {0} encoding.
*/

// maxSubidentifierBits is the subidentifier width: values up to
// 2^64 - 1 are accepted.
const maxSubidentifierBits = 64

// ObjectIdentifier is a decoded OBJECT IDENTIFIER: the arc-joined
// sequence of components, with the first two components already
// unfolded from the wire's single leading subidentifier.
type ObjectIdentifier []uint64

func (ObjectIdentifier) DefaultTag() int { return TagOID }

// String renders the dot-separated decimal form.
func (o ObjectIdentifier) String() string {
	parts := make([]string, len(o))
	for i, c := range o {
		parts[i] = fmtUint64(c)
	}
	return join(parts, ".")
}

// Eq reports whether o and other name the same object identifier.
func (o ObjectIdentifier) Eq(other ObjectIdentifier) bool {
	if len(o) != len(other) {
		return false
	}
	for i := range o {
		if o[i] != other[i] {
			return false
		}
	}
	return true
}

// ParseOIDString parses the dot-separated decimal string form of an
// OID. At least two components are required.
func ParseOIDString(s string) (ObjectIdentifier, error) {
	parts := split(s, ".")
	if len(parts) < 2 {
		return nil, errTooFewOIDComponents("OID string requires at least two components")
	}
	out := make(ObjectIdentifier, len(parts))
	for i, p := range parts {
		v, err := parseUint64(p)
		if err != nil {
			return nil, errInvalidStringRepr("malformed OID component " + p)
		}
		out[i] = v
	}
	return out, nil
}

// decodeSubidentifiers splits the raw content bytes of an OID/
// RELATIVE-OID into its base-128 subidentifiers, each delimited by a
// continuation bit. A truncated final subidentifier (top bit still set
// on the last available byte) or a subidentifier whose value overflows
// 64 bits is rejected.
func decodeSubidentifiers(data []byte) ([]uint64, error) {
	if len(data) == 0 {
		return nil, errInvalidObject("OID: zero-length content")
	}
	var out []uint64
	var cur uint64
	inProgress := false
	for _, b := range data {
		inProgress = true
		if cur>>(maxSubidentifierBits-7) != 0 {
			return nil, errInvalidFieldIdentifier("OID subidentifier overflows 64-bit width")
		}
		cur = (cur << 7) | uint64(b&0x7F)
		if b&0x80 == 0 {
			out = append(out, cur)
			cur = 0
			inProgress = false
		}
	}
	if inProgress {
		return nil, errTruncatedField("truncated base-128 subidentifier")
	}
	return out, nil
}

func encodeSubidentifiers(dst []byte, subs []uint64) []byte {
	for _, s := range subs {
		dst = append(dst, encodeBase128(s)...)
	}
	return dst
}

// ParseObjectIdentifier decodes the OID at n.
func ParseObjectIdentifier(n Node, override *Identifier) (ObjectIdentifier, error) {
	id := expectedIdentifier(TagOID, false, override)
	if err := expectIdentifier(n.Identifier, id.Tag, id.Class, false); err != nil {
		return nil, err
	}

	subs, err := decodeSubidentifiers(n.Primitive())
	if err != nil {
		return nil, err
	}

	// Reject zero-subidentifier OIDs, except the single-subidentifier
	// {0} case, which is tolerated and decodes to (0, 0). This
	// preserves the source-language behavior noted as an open
	// question: 06 01 00 is accepted, 06 00 is not (caught above by
	// the zero-length content check).
	if len(subs) == 1 && subs[0] == 0 {
		return ObjectIdentifier{0, 0}, nil
	}

	first, second := unfoldFirstSubidentifier(subs[0])
	out := make(ObjectIdentifier, 0, len(subs)+1)
	out = append(out, first, second)
	out = append(out, subs[1:]...)
	return out, nil
}

func unfoldFirstSubidentifier(x uint64) (first, second uint64) {
	switch {
	case x < 40:
		return 0, x
	case x < 80:
		return 1, x - 40
	default:
		return 2, x - 80
	}
}

// Serialize writes the OID as a primitive TLV, folding the first two
// components into the single leading subidentifier 40*first + second.
func (o ObjectIdentifier) Serialize(w *Writer, override *Identifier) error {
	if len(o) < 2 {
		return errTooFewOIDComponents("OID requires at least two components to encode")
	}
	id := identifierFor(TagOID, false, override)
	subs := make([]uint64, 0, len(o)-1)
	subs = append(subs, 40*o[0]+o[1])
	subs = append(subs, o[2:]...)
	content := encodeSubidentifiers(nil, subs)
	w.AppendPrimitive(id, content)
	return nil
}

// RelativeOID is an ASN.1 RELATIVE-OID (tag 13): a sequence of
// subidentifiers relative to an implied base, with no first-two-arc
// folding.
type RelativeOID []uint64

func (RelativeOID) DefaultTag() int { return TagRelativeOID }

func (o RelativeOID) String() string {
	parts := make([]string, len(o))
	for i, c := range o {
		parts[i] = fmtUint64(c)
	}
	return join(parts, ".")
}

// ParseRelativeOID decodes a RELATIVE-OID at n.
func ParseRelativeOID(n Node, override *Identifier) (RelativeOID, error) {
	id := expectedIdentifier(TagRelativeOID, false, override)
	if err := expectIdentifier(n.Identifier, id.Tag, id.Class, false); err != nil {
		return nil, err
	}
	subs, err := decodeSubidentifiers(n.Primitive())
	if err != nil {
		return nil, err
	}
	return RelativeOID(subs), nil
}

// Serialize writes the RELATIVE-OID as a primitive TLV.
func (o RelativeOID) Serialize(w *Writer, override *Identifier) {
	id := identifierFor(TagRelativeOID, false, override)
	content := encodeSubidentifiers(nil, []uint64(o))
	w.AppendPrimitive(id, content)
}
