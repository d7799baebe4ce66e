package asn1core

import "testing"

func buildSimpleSequence(t *testing.T) []byte {
	t.Helper()
	w := NewWriter(DER)
	err := SerializeSequence(w, nil, func(inner *Writer) error {
		EncodeInteger(inner, NewNativeInteger(int64(7)), nil)
		Boolean(true).Serialize(inner, nil)
		return nil
	})
	if err != nil {
		t.Fatalf("serialize failed: %v", err)
	}
	return w.Bytes()
}

func TestSequenceParseAndExhaustion(t *testing.T) {
	wire := buildSimpleSequence(t)
	nodes, err := Scan(wire, DER)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	var num NativeInteger
	var flag Boolean
	err = ParseSequence(Tree(nodes), nil, func(it *ChildIterator) error {
		child, _ := it.Next()
		if derr := DecodeInteger(child, &num, nil); derr != nil {
			return derr
		}
		child, _ = it.Next()
		var berr error
		flag, berr = ParseBoolean(child, DER)
		return berr
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != 7 || !bool(flag) {
		t.Fatalf("got num=%d flag=%v, want num=7 flag=true", num, flag)
	}
}

func TestSequenceRejectsUnconsumedTrailingField(t *testing.T) {
	wire := buildSimpleSequence(t)
	nodes, err := Scan(wire, DER)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	err = ParseSequence(Tree(nodes), nil, func(it *ChildIterator) error {
		_, _ = it.Next() // consume only the INTEGER, leave BOOLEAN unconsumed
		return nil
	})
	if err == nil {
		t.Fatal("expected failure for unconsumed trailing SEQUENCE field")
	}
}

func TestSequenceOfRoundTrip(t *testing.T) {
	values := []int64{1, 2, 3}
	w := NewWriter(DER)
	err := SerializeSequenceOf(w, nil, values, func(v int64, inner *Writer) {
		EncodeInteger(inner, NewNativeInteger(v), nil)
	})
	if err != nil {
		t.Fatalf("serialize failed: %v", err)
	}

	nodes, err := Scan(w.Bytes(), DER)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	got, err := ParseSequenceOf(Tree(nodes), nil, func(n Node) (int64, error) {
		var v NativeInteger
		if err := DecodeInteger(n, &v, nil); err != nil {
			return 0, err
		}
		return int64(v), nil
	})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(got) != len(values) {
		t.Fatalf("got %v, want %v", got, values)
	}
	for i := range got {
		if got[i] != values[i] {
			t.Fatalf("got %v, want %v", got, values)
		}
	}
}

func TestExplicitTagRoundTrip(t *testing.T) {
	tagID := Identifier{Class: ClassContextSpecific, Tag: 0, Constructed: true}
	w := NewWriter(DER)
	err := SerializeExplicit(w, tagID, func(inner *Writer) error {
		EncodeInteger(inner, NewNativeInteger(int64(42)), nil)
		return nil
	})
	if err != nil {
		t.Fatalf("serialize failed: %v", err)
	}

	nodes, err := Scan(w.Bytes(), DER)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	got, err := ParseExplicit(Tree(nodes), tagID, func(n Node) (int64, error) {
		var v NativeInteger
		if err := DecodeInteger(n, &v, nil); err != nil {
			return 0, err
		}
		return int64(v), nil
	})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestOptionalFieldAbsentLeavesIteratorIntact(t *testing.T) {
	w := NewWriter(DER)
	_ = SerializeSequence(w, nil, func(inner *Writer) error {
		Boolean(true).Serialize(inner, nil)
		return nil
	})
	nodes, err := Scan(w.Bytes(), DER)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	err = ParseSequence(Tree(nodes), nil, func(it *ChildIterator) error {
		// Look for an INTEGER that is not present; iterator must not advance.
		_, present, err := ParseOptional(it, TagInteger, ClassUniversal, func(n Node) (int64, error) {
			return 0, nil
		})
		if err != nil {
			return err
		}
		if present {
			t.Fatal("expected INTEGER field to be reported absent")
		}
		flagNode, ok := it.Next()
		if !ok {
			t.Fatal("expected BOOLEAN field still available after failed OPTIONAL peek")
		}
		_, err = ParseBoolean(flagNode, DER)
		return err
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSerializeDefaultOmitsFieldAtDefaultUnderDER(t *testing.T) {
	encodeInt := func(v int64, w *Writer) { EncodeInteger(w, NewNativeInteger(v), nil) }

	w := NewWriter(DER)
	_ = SerializeSequence(w, nil, func(inner *Writer) error {
		SerializeDefault(inner, int64(0), int64(0), encodeInt)
		return nil
	})
	nodes, err := Scan(w.Bytes(), DER)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if err := ParseSequence(Tree(nodes), nil, func(it *ChildIterator) error {
		// SerializeDefault should have omitted the field entirely.
		if !it.Done() {
			t.Fatal("expected DEFAULT-at-default field to be omitted on serialize")
		}
		return nil
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
