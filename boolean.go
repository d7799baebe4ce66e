package asn1core

/*
boolean.go implements the ASN.1 BOOLEAN type (tag 1).
*/

// Boolean implements the ASN.1 BOOLEAN primitive.
type Boolean bool

func (Boolean) DefaultTag() int { return TagBoolean }

// ParseBoolean decodes a BOOLEAN from n. Under DER, only the canonical
// byte values 0x00 (false) and 0xFF (true) are accepted; any other
// single byte is a failure. Content must be exactly one byte.
func ParseBoolean(n Node, rule EncodingRule) (Boolean, error) {
	var zero Boolean
	if err := expectIdentifier(n.Identifier, TagBoolean, ClassUniversal, false); err != nil {
		return zero, err
	}
	data := n.Primitive()
	if len(data) != 1 {
		return zero, errInvalidObject("BOOLEAN: content must be exactly one byte")
	}

	b := data[0]
	if rule.strict() {
		switch b {
		case 0x00:
			return false, nil
		case 0xFF:
			return true, nil
		default:
			return zero, errInvalidObject("DER: BOOLEAN must be canonical 0x00 or 0xFF")
		}
	}
	return Boolean(b != 0x00), nil
}

// Serialize writes the canonical DER encoding of r (0xFF for true,
// 0x00 for false) as a primitive TLV under override, or the BOOLEAN
// universal tag if override is nil.
func (r Boolean) Serialize(w *Writer, override *Identifier) {
	id := identifierFor(TagBoolean, false, override)
	var content byte
	if r {
		content = 0xFF
	}
	w.AppendPrimitive(id, []byte{content})
}
