package asn1core

/*
errors.go contains the tagged error taxonomy described by the error
handling design: a single error type whose Kind enumerates the
recognized failure classes, each carrying an optional human-readable
Reason. Call sites that need a specific diagnosis use errors.As against
*Error; everything else just treats the return value as a plain error.
*/

import "sync"

// Kind enumerates the discrete failure classes a parse or serialize
// operation may report. See the package error handling design for the
// meaning of each.
type Kind uint8

const (
	KindInvalidFieldIdentifier Kind = iota + 1
	KindUnexpectedFieldType
	KindInvalidObject
	KindInvalidIntegerEncoding
	KindTruncatedField
	KindUnsupportedFieldLength
	KindInvalidPEMDocument
	KindInvalidStringRepresentation
	KindTooFewOIDComponents
)

func (k Kind) String() string {
	switch k {
	case KindInvalidFieldIdentifier:
		return "invalid_field_identifier"
	case KindUnexpectedFieldType:
		return "unexpected_field_type"
	case KindInvalidObject:
		return "invalid_object"
	case KindInvalidIntegerEncoding:
		return "invalid_integer_encoding"
	case KindTruncatedField:
		return "truncated_field"
	case KindUnsupportedFieldLength:
		return "unsupported_field_length"
	case KindInvalidPEMDocument:
		return "invalid_pem_document"
	case KindInvalidStringRepresentation:
		return "invalid_string_representation"
	case KindTooFewOIDComponents:
		return "too_few_oid_components"
	default:
		return "unknown"
	}
}

// Error is the single tagged error type returned by every decoder and
// serializer in this package. Kind identifies the failure class; Reason
// is an optional human-oriented explanation.
type Error struct {
	Kind   Kind
	Reason string

	// Identifier is populated only for KindUnexpectedFieldType, carrying
	// the identifier that was actually observed on the wire.
	Identifier Identifier
}

func (e *Error) Error() string {
	if e.Reason == "" {
		return e.Kind.String()
	}
	return mkerrf(e.Kind.String(), ": ", e.Reason).Error()
}

// Is lets errors.Is(err, ErrTruncated) style comparisons work against a
// bare Kind sentinel, an *Error with an empty Reason.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && t.Reason == ""
}

var mkerrfCache sync.Map

// mkerrf concatenates parts (string or int) into a single message,
// interning the result the same way the teacher's err.go does, and
// returns it as a plain error built through mkerr. Every *Error that
// carries a Reason renders its message through mkerrf; one without a
// Reason renders as its Kind name alone.
func mkerrf(parts ...any) error {
	if len(parts) == 1 {
		if s, ok := parts[0].(string); ok {
			if v, hit := mkerrfCache.Load(s); hit {
				return v.(error)
			}
		}
	}

	b := newStrBuilder()
	for _, p := range parts {
		switch v := p.(type) {
		case string:
			b.WriteString(v)
		case int:
			b.WriteString(itoa(v))
		default:
			b.WriteString("<not supported>")
		}
	}
	msg := b.String()

	if v, hit := mkerrfCache.Load(msg); hit {
		return v.(error)
	}
	e := mkerr(msg)
	mkerrfCache.Store(msg, e)
	return e
}

var errCache sync.Map

func newErr(k Kind, reason string) error {
	type key struct {
		k Kind
		r string
	}
	ck := key{k, reason}
	if v, hit := errCache.Load(ck); hit {
		return v.(error)
	}
	e := &Error{Kind: k, Reason: reason}
	errCache.Store(ck, e)
	return e
}

func errInvalidFieldIdentifier(reason string) error { return newErr(KindInvalidFieldIdentifier, reason) }
func errInvalidObject(reason string) error          { return newErr(KindInvalidObject, reason) }
func errInvalidIntegerEncoding(reason string) error { return newErr(KindInvalidIntegerEncoding, reason) }
func errTruncatedField(reason string) error         { return newErr(KindTruncatedField, reason) }
func errUnsupportedFieldLength(reason string) error { return newErr(KindUnsupportedFieldLength, reason) }
func errInvalidPEMDocument(reason string) error     { return newErr(KindInvalidPEMDocument, reason) }
func errInvalidStringRepr(reason string) error      { return newErr(KindInvalidStringRepresentation, reason) }
func errTooFewOIDComponents(reason string) error    { return newErr(KindTooFewOIDComponents, reason) }

func errUnexpectedFieldType(want Identifier, got Identifier) error {
	return &Error{
		Kind:       KindUnexpectedFieldType,
		Reason:     mkerrf("expected ", want.String(), ", got ", got.String()).Error(),
		Identifier: got,
	}
}

// Sentinels for errors.Is against the common, parameter-free cases.
var (
	ErrTruncated          = &Error{Kind: KindTruncatedField}
	ErrInvalidObject      = &Error{Kind: KindInvalidObject}
	ErrInvalidPEMDocument = &Error{Kind: KindInvalidPEMDocument}
)
