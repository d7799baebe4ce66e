package asn1core

import "testing"

func parseBitStringNode(t *testing.T, content []byte) Node {
	t.Helper()
	w := NewWriter(DER)
	w.AppendPrimitive(Identifier{Class: ClassUniversal, Tag: TagBitString}, content)
	nodes, err := Scan(w.Bytes(), DER)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	return Tree(nodes)
}

func TestBitStringPadding(t *testing.T) {
	n := parseBitStringNode(t, []byte{0x07, 0x80})
	bs, err := ParseBitString(n, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bs.PaddingBits != 7 || bs.Len() != 1 {
		t.Fatalf("got padding=%d len=%d, want padding=7 len=1", bs.PaddingBits, bs.Len())
	}
}

func TestBitStringNonZeroPaddingRejected(t *testing.T) {
	n := parseBitStringNode(t, []byte{0x07, 0xFF})
	if _, err := ParseBitString(n, nil); err == nil {
		t.Fatal("expected failure for non-zero padding bits")
	}
}

func TestBitStringEmptyContentRejected(t *testing.T) {
	n := parseBitStringNode(t, nil)
	if _, err := ParseBitString(n, nil); err == nil {
		t.Fatal("expected failure for empty BIT STRING content")
	}
}

func TestBitStringSerializeRoundTrip(t *testing.T) {
	bs := BitString{Bytes: []byte{0x80}, PaddingBits: 7}
	w := NewWriter(DER)
	bs.Serialize(w, nil)
	n := parseBitStringNode2(t, w.Bytes())
	got, err := ParseBitString(n, nil)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got.PaddingBits != bs.PaddingBits || string(got.Bytes) != string(bs.Bytes) {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, bs)
	}
}

func parseBitStringNode2(t *testing.T, wire []byte) Node {
	t.Helper()
	nodes, err := Scan(wire, DER)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	return Tree(nodes)
}
