package asn1core

/*
octetstring.go implements the ASN.1 OCTET STRING type (tag 4). Under
DER only the primitive form is accepted; under BER a constructed OCTET
STRING is permitted and its children's value bytes are concatenated.
Recursion into BER-constructed OCTET STRINGs is already bounded by the
same depth limit the L1 scanner enforces on every node.
*/

// OctetString is a decoded OCTET STRING.
type OctetString []byte

func (OctetString) DefaultTag() int { return TagOctetString }

// ParseOctetString decodes the OCTET STRING at n.
func ParseOctetString(n Node, rule EncodingRule, override *Identifier) (OctetString, error) {
	id := expectedIdentifier(TagOctetString, n.Identifier.Constructed, override)
	if n.Identifier.Class != id.Class || n.Identifier.Tag != id.Tag {
		return nil, errUnexpectedFieldType(Identifier{Class: id.Class, Tag: id.Tag}, n.Identifier)
	}

	if !n.Identifier.Constructed {
		return OctetString(append([]byte(nil), n.Primitive()...)), nil
	}

	if rule.strict() {
		return nil, errInvalidObject("DER: OCTET STRING must be primitive")
	}

	var out []byte
	it := n.Children()
	for {
		child, ok := it.Next()
		if !ok {
			break
		}
		sub, err := ParseOctetString(child, rule, nil)
		if err != nil {
			return nil, err
		}
		out = append(out, sub...)
	}
	return OctetString(out), nil
}

// Serialize writes the OCTET STRING as a primitive TLV.
func (o OctetString) Serialize(w *Writer, override *Identifier) {
	id := identifierFor(TagOctetString, false, override)
	w.AppendPrimitive(id, []byte(o))
}
