package asn1core

/*
strings_common.go contains the shared plumbing behind the restricted
character string family (PrintableString, IA5String, NumericString,
VisibleString, GraphicString, GeneralString, TeletexString,
UniversalString, BMPString, UTF8String): raw-byte storage under a
distinct universal tag, with an optional per-type alphabet validator
run on both decode and construction from a native string.
*/

import "unicode/utf8"

// alphabetFunc reports whether b is a legal byte for some restricted
// string type. A nil alphabetFunc means "no restriction beyond what
// the type's storage width requires" (used by TeletexString,
// GeneralString and GraphicString, whose wire alphabets are
// unconstrained here, and by UTF8String, which checks UTF-8 validity
// separately). UniversalString and BMPString decode their code units
// themselves and do not go through this plumbing on decode.
type alphabetFunc func(b byte) bool

func validateAlphabet(data []byte, allowed alphabetFunc) error {
	if allowed == nil {
		return nil
	}
	for _, b := range data {
		if !allowed(b) {
			return errInvalidStringRepr("character outside permitted alphabet")
		}
	}
	return nil
}

func decodeRestrictedString(n Node, tag int, override *Identifier, allowed alphabetFunc) ([]byte, error) {
	id := expectedIdentifier(tag, false, override)
	if err := expectIdentifier(n.Identifier, id.Tag, id.Class, false); err != nil {
		return nil, err
	}
	data := n.Primitive()
	if err := validateAlphabet(data, allowed); err != nil {
		return nil, err
	}
	return append([]byte(nil), data...), nil
}

func serializeRestrictedString(w *Writer, tag int, override *Identifier, data []byte) {
	id := identifierFor(tag, false, override)
	w.AppendPrimitive(id, data)
}

// isPrintableStringByte implements the PrintableString alphabet:
// A-Z a-z 0-9 space ' ( ) + , - . / : = ?
func isPrintableStringByte(b byte) bool {
	switch {
	case 'A' <= b && b <= 'Z', 'a' <= b && b <= 'z', '0' <= b && b <= '9':
		return true
	}
	switch b {
	case ' ', '\'', '(', ')', '+', ',', '-', '.', '/', ':', '=', '?':
		return true
	}
	return false
}

// isIA5Byte implements the IA5String alphabet: any byte < 128.
func isIA5Byte(b byte) bool { return b < 128 }

// isNumericStringByte implements the NumericString alphabet: digits
// and space.
func isNumericStringByte(b byte) bool { return ('0' <= b && b <= '9') || b == ' ' }

// isVisibleStringByte implements the VisibleString (ISO646 IRV)
// alphabet: printable ASCII, space through tilde.
func isVisibleStringByte(b byte) bool { return b >= 0x20 && b <= 0x7E }

func validUTF8(data []byte) error {
	if !utf8.Valid(data) {
		return errInvalidStringRepr("invalid UTF-8 sequence")
	}
	return nil
}
