package asn1core

/*
bmp.go implements the ASN.1 BMPString type (tag 30): big-endian UTF-16
code unit pairs.
*/

import "unicode/utf16"

// BMPString is a decoded BMPString, stored as the decoded rune
// sequence.
type BMPString []rune

func (BMPString) DefaultTag() int { return TagBMPString }

// ParseBMPString decodes the BMPString at n.
func ParseBMPString(n Node, override *Identifier) (BMPString, error) {
	id := expectedIdentifier(TagBMPString, false, override)
	if err := expectIdentifier(n.Identifier, id.Tag, id.Class, false); err != nil {
		return nil, err
	}
	data := n.Primitive()
	if len(data)%2 != 0 {
		return nil, errInvalidStringRepr("BMPString content is not a multiple of 2 bytes")
	}
	units := make([]uint16, len(data)/2)
	for i := range units {
		units[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}
	return BMPString(utf16.Decode(units)), nil
}

// Serialize writes the BMPString as a primitive TLV of big-endian
// UTF-16 code units.
func (s BMPString) Serialize(w *Writer, override *Identifier) {
	units := utf16.Encode([]rune(s))
	content := make([]byte, 0, len(units)*2)
	for _, u := range units {
		content = append(content, byte(u>>8), byte(u))
	}
	serializeRestrictedString(w, TagBMPString, override, content)
}
