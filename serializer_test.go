package asn1core

import "testing"

func TestWriterLengthBackpatchLongForm(t *testing.T) {
	w := NewWriter(DER)
	content := make([]byte, 200)
	err := w.AppendConstructed(Identifier{Class: ClassUniversal, Tag: TagSequence, Constructed: true},
		func(inner *Writer) error {
			inner.AppendRaw(content)
			return nil
		})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := w.Bytes()
	// 200 > 127, so length needs long form: 0x81 0xC8 (two bytes).
	if got[0] != 0x30 || got[1] != 0x81 || got[2] != 0xC8 {
		t.Fatalf("unexpected header: %x", got[:3])
	}
	if len(got) != 3+200 {
		t.Fatalf("unexpected total length: %d", len(got))
	}
}

func TestSetOfSortOrder(t *testing.T) {
	// Serializing SET OF BIT STRING of {bytes:[2]}, {bytes:[1]} yields
	// 31 08 03 02 00 01 03 02 00 02.
	elems := []BitString{
		{Bytes: []byte{2}},
		{Bytes: []byte{1}},
	}
	w := NewWriter(DER)
	err := SerializeSetOf(w, nil, elems, func(b BitString, inner *Writer) { b.Serialize(inner, nil) })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0x31, 0x08, 0x03, 0x02, 0x00, 0x01, 0x03, 0x02, 0x00, 0x02}
	if string(w.Bytes()) != string(want) {
		t.Fatalf("got %x, want %x", w.Bytes(), want)
	}
}

func TestSetOfUnsortedRejectedUnderDER(t *testing.T) {
	// Deliberately construct an unsorted SET OF BIT STRING to verify
	// DER-mode parse rejects it.
	w := NewWriter(BER)
	_ = w.AppendConstructed(Identifier{Class: ClassUniversal, Tag: TagSet, Constructed: true},
		func(inner *Writer) error {
			BitString{Bytes: []byte{2}}.Serialize(inner, nil)
			BitString{Bytes: []byte{1}}.Serialize(inner, nil)
			return nil
		})
	nodes, err := Scan(w.Bytes(), DER)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	_, err = ParseSetOf(Tree(nodes), DER, nil, func(n Node) (BitString, error) {
		return ParseBitString(n, nil)
	})
	if err == nil {
		t.Fatal("expected failure for unsorted SET OF under DER")
	}
}
