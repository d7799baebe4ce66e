package asn1core

import (
	"bytes"
	"strings"
	"testing"
)

func TestNodeHex(t *testing.T) {
	input := []byte{0x02, 0x01, 0x05}
	nodes, err := Scan(input, DER)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	n := Tree(nodes)
	if got, want := n.Hex(), "020105"; got != want {
		t.Fatalf("Hex() = %q, want %q", got, want)
	}
}

func TestDumpPrimitiveNode(t *testing.T) {
	input := []byte{0x02, 0x01, 0x05}
	nodes, err := Scan(input, DER)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	n := Tree(nodes)
	var buf bytes.Buffer
	if err := Dump(&buf, n); err != nil {
		t.Fatalf("dump failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, n.Identifier.String()) {
		t.Fatalf("expected dump to mention identifier, got %q", out)
	}
	if !strings.Contains(out, "05") {
		t.Fatalf("expected dump of a primitive node to include its hex value, got %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("expected exactly one line for a leaf node, got %q", out)
	}
}

func TestDumpConstructedNodeIndentsChildren(t *testing.T) {
	// SEQUENCE { INTEGER 1, SEQUENCE { INTEGER 2 } }
	input := []byte{0x30, 0x08, 0x02, 0x01, 0x01, 0x30, 0x03, 0x02, 0x01, 0x02}
	nodes, err := Scan(input, DER)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	n := Tree(nodes)
	var buf bytes.Buffer
	if err := Dump(&buf, n); err != nil {
		t.Fatalf("dump failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (root + 3 descendants), got %d: %q", len(lines), lines)
	}
	if strings.HasPrefix(lines[0], " ") {
		t.Fatalf("root line should not be indented: %q", lines[0])
	}
	for _, l := range lines[1:3] {
		if !strings.HasPrefix(l, "  ") {
			t.Fatalf("depth-1 line should be indented by two spaces: %q", l)
		}
	}
	if !strings.HasPrefix(lines[3], "    ") {
		t.Fatalf("depth-2 line should be indented by four spaces: %q", lines[3])
	}
}

func TestDumpPropagatesWriteError(t *testing.T) {
	input := []byte{0x02, 0x01, 0x05}
	nodes, err := Scan(input, DER)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	n := Tree(nodes)
	if err := Dump(failingWriter{}, n); err == nil {
		t.Fatal("expected Dump to propagate the writer's error")
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errInvalidObject("simulated write failure")
}
