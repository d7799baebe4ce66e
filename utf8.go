package asn1core

/*
utf8.go implements the ASN.1 UTF8String type (tag 12).
*/

// UTF8String is a decoded UTF8String: valid UTF-8 content stored raw.
type UTF8String string

func (UTF8String) DefaultTag() int { return TagUTF8String }

// NewUTF8String validates s as well-formed UTF-8 before wrapping it.
func NewUTF8String(s string) (UTF8String, error) {
	if err := validUTF8([]byte(s)); err != nil {
		return "", err
	}
	return UTF8String(s), nil
}

// ParseUTF8String decodes the UTF8String at n.
func ParseUTF8String(n Node, override *Identifier) (UTF8String, error) {
	data, err := decodeRestrictedString(n, TagUTF8String, override, nil)
	if err != nil {
		return "", err
	}
	if err := validUTF8(data); err != nil {
		return "", err
	}
	return UTF8String(data), nil
}

// Serialize writes the UTF8String as a primitive TLV.
func (s UTF8String) Serialize(w *Writer, override *Identifier) {
	serializeRestrictedString(w, TagUTF8String, override, []byte(s))
}
