package asn1core

/*
dump.go contains small diagnostic helpers for inspecting a parsed Node:
a hex rendering of its encoded bytes and a recursive structural dump,
useful when eyeballing a tree during development. Neither is part of
the wire format or the error surface.
*/

import (
	"io"
	"strings"
)

// Hex returns the receiver's encoded bytes as a lowercase hex string.
func (n Node) Hex() string { return hexstr(n.EncodedBytes) }

// Dump writes a recursive, indented structural rendering of n to w,
// one line per node, depth-first.
func Dump(w io.Writer, n Node) error {
	return dumpNode(w, n, 0)
}

func dumpNode(w io.Writer, n Node, depth int) error {
	indent := strings.Repeat("  ", depth)
	line := indent + n.Identifier.String()
	if n.IsPrimitive() {
		line += " " + hexstr(n.Primitive())
	}
	if _, err := io.WriteString(w, line+"\n"); err != nil {
		return err
	}
	if n.IsPrimitive() {
		return nil
	}
	it := n.Children()
	for {
		child, ok := it.Next()
		if !ok {
			break
		}
		if err := dumpNode(w, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}
