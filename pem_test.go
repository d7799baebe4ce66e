package asn1core

import (
	"strings"
	"testing"
)

func TestPEMEmitParseRoundTrip(t *testing.T) {
	der := make([]byte, 100)
	for i := range der {
		der[i] = byte(i)
	}
	doc := PEMDocument{Discriminator: "CERTIFICATE", DER: der}
	text, err := EmitPEM(doc)
	if err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	if !strings.HasPrefix(text, "-----BEGIN CERTIFICATE-----\n") {
		t.Fatalf("unexpected BEGIN line: %q", text)
	}
	if !strings.HasSuffix(text, "-----END CERTIFICATE-----\n") {
		t.Fatalf("unexpected END line: %q", text)
	}

	got, err := ParsePEM(text)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got.Discriminator != doc.Discriminator || string(got.DER) != string(doc.DER) {
		t.Fatalf("round trip mismatch: got %+v", got)
	}
}

func TestPEMRejectsMismatchedDiscriminator(t *testing.T) {
	text := "-----BEGIN CERTIFICATE-----\nAAAA\n-----END PRIVATE KEY-----\n"
	if _, err := ParsePEM(text); err == nil {
		t.Fatal("expected failure for mismatched BEGIN/END discriminators")
	}
}

func TestPEMRejectsEmptyBody(t *testing.T) {
	text := "-----BEGIN X-----\n-----END X-----\n"
	if _, err := ParsePEM(text); err == nil {
		t.Fatal("expected failure for empty PEM body")
	}
}

func TestPEMRejectsShortNonFinalLine(t *testing.T) {
	line1 := strings.Repeat("A", 63) + "\n" // one short of 64
	line2 := "BBBB\n"
	text := "-----BEGIN X-----\n" + line1 + line2 + "-----END X-----\n"
	if _, err := ParsePEM(text); err == nil {
		t.Fatal("expected failure for a non-final body line shorter than 64 characters")
	}
}

func TestPEMRejectsNonBase64Character(t *testing.T) {
	text := "-----BEGIN X-----\nAA!!\n-----END X-----\n"
	if _, err := ParsePEM(text); err == nil {
		t.Fatal("expected failure for a non-base64 character in the body")
	}
}

func TestPEMParseAllZeroDocuments(t *testing.T) {
	docs, err := ParsePEMAll("just some unrelated text\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected zero documents, got %d", len(docs))
	}
}

func TestPEMParseAllMultiple(t *testing.T) {
	doc1, _ := EmitPEM(PEMDocument{Discriminator: "A", DER: []byte{1, 2, 3}})
	doc2, _ := EmitPEM(PEMDocument{Discriminator: "B", DER: []byte{4, 5, 6}})
	docs, err := ParsePEMAll(doc1 + doc2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].Discriminator != "A" || docs[1].Discriminator != "B" {
		t.Fatalf("unexpected discriminators: %+v", docs)
	}
}

func TestPEMRejectsMixedLineEndings(t *testing.T) {
	text := "-----BEGIN X-----\r\n" + strings.Repeat("A", 64) + "\n" + "BBBB\r\n" + "-----END X-----\r\n"
	if _, err := ParsePEM(text); err == nil {
		t.Fatal("expected failure for mixed LF/CRLF line endings")
	}
}
