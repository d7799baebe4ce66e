package asn1core

/*
value.go defines the shared contract implemented by every primitive
value codec in this package (INTEGER, OBJECT IDENTIFIER, BIT STRING,
and so on): a default universal tag plus symmetric parse/serialize
operations against a Node / Writer.
*/

// Value is implemented by every primitive codec type. DefaultTag
// returns the type's canonical universal tag number, used whenever the
// caller does not supply an explicit override (see Options).
type Value interface {
	DefaultTag() int
}

// expectIdentifier verifies that got carries wantClass and wantTag,
// which the caller has already resolved from an override or from the
// type's own default universal tag. It also enforces the
// primitive/constructed discrimination the caller requires.
func expectIdentifier(got Identifier, wantTag int, wantClass Class, wantConstructed bool) error {
	want := Identifier{Class: wantClass, Tag: wantTag, Constructed: wantConstructed}
	debugCodec("expectIdentifier", want, got)
	if got.Class != want.Class || got.Tag != want.Tag {
		return errUnexpectedFieldType(want, got)
	}
	if got.Constructed != want.Constructed {
		return errInvalidObject(mkerrf("expected ", constructedWord(want.Constructed),
			" encoding for ", tagName(want.Tag)).Error())
	}
	return nil
}

func constructedWord(c bool) string {
	if c {
		return "constructed"
	}
	return "primitive"
}

// identifierFor resolves the wire identifier to use when serializing a
// value whose natural tag is defaultTag, honoring an optional identifier
// override (explicit/implicit tagging; see combinators.go).
func identifierFor(defaultTag int, constructed bool, override *Identifier) Identifier {
	if override != nil {
		id := *override
		id.Constructed = constructed
		debugCodec("identifierFor", "override", id)
		return id
	}
	id := Identifier{Class: ClassUniversal, Tag: defaultTag, Constructed: constructed}
	debugCodec("identifierFor", "default", id)
	return id
}
