package asn1core

/*
enum.go implements the ASN.1 ENUMERATED type (tag 10) as a thin
reuse of the INTEGER codec's encode/decode machinery under a
different default tag, matching the universal tag table's listing of
ENUMERATED without duplicating the two's-complement validation logic.
*/

// Enumerated is a decoded ENUMERATED value.
type Enumerated int64

func (Enumerated) DefaultTag() int { return TagEnum }

func (r *Enumerated) FromBigEndianSigned(b []byte) error {
	var n NativeInteger
	if err := n.FromBigEndianSigned(b); err != nil {
		return err
	}
	*r = Enumerated(n)
	return nil
}

func (r Enumerated) BigEndianSigned() []byte { return NativeInteger(r).BigEndianSigned() }

// ParseEnumerated decodes the ENUMERATED at n.
func ParseEnumerated(n Node, override *Identifier) (Enumerated, error) {
	var r Enumerated
	err := DecodeInteger(n, &r, override)
	return r, err
}

// Serialize writes the ENUMERATED as a primitive TLV.
func (r Enumerated) Serialize(w *Writer, override *Identifier) {
	EncodeInteger(w, r, override)
}
