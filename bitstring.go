package asn1core

/*
bitstring.go implements the ASN.1 BIT STRING type (tag 3). Only the
primitive wire representation is produced on encode and accepted on
decode; a constructed BIT STRING is rejected under BER as well as DER.
*/

// BitString is a decoded BIT STRING: the raw data bytes plus the
// count of unused (padding) bits in the final data byte.
type BitString struct {
	Bytes       []byte
	PaddingBits int
}

func (BitString) DefaultTag() int { return TagBitString }

// Len returns the number of meaningful bits carried by the receiver.
func (b BitString) Len() int {
	if len(b.Bytes) == 0 {
		return 0
	}
	return len(b.Bytes)*8 - b.PaddingBits
}

// ParseBitString decodes the BIT STRING at n.
func ParseBitString(n Node, override *Identifier) (BitString, error) {
	var zero BitString
	id := expectedIdentifier(TagBitString, false, override)
	if err := expectIdentifier(n.Identifier, id.Tag, id.Class, false); err != nil {
		return zero, err
	}

	data := n.Primitive()
	if len(data) == 0 {
		return zero, errInvalidObject("BIT STRING: content may not be empty")
	}

	padding := int(data[0])
	if padding < 0 || padding > 7 {
		return zero, errInvalidObject("BIT STRING: padding bit count out of range")
	}
	rest := data[1:]

	if len(rest) == 0 {
		if padding != 0 {
			return zero, errInvalidObject("BIT STRING: padding bits declared with no data bytes")
		}
		return BitString{}, nil
	}

	if padding > 0 {
		last := rest[len(rest)-1]
		mask := byte(1<<uint(padding)) - 1
		if last&mask != 0 {
			return zero, errInvalidObject("BIT STRING: non-zero padding bits")
		}
	}

	return BitString{Bytes: append([]byte(nil), rest...), PaddingBits: padding}, nil
}

// Serialize writes the BIT STRING as a primitive TLV, prepending the
// padding-bit count byte.
func (b BitString) Serialize(w *Writer, override *Identifier) {
	id := identifierFor(TagBitString, false, override)
	content := make([]byte, 0, len(b.Bytes)+1)
	content = append(content, byte(b.PaddingBits))
	content = append(content, b.Bytes...)
	w.AppendPrimitive(id, content)
}
