package asn1core

/*
scanner.go implements the L1 TLV scanner: a recursive descent over an
input byte slice that produces a flat, pre-order vector of ParserNode
values, hardened against malicious inputs per the depth and fan-out
bounds in the data model.
*/

// maxTreeDepth and maxTreeNodes are the hard ceilings enforced during
// scanning. They exist to bound work on adversarial input; neither is
// configurable, matching the contractual ceilings in the data model.
const (
	maxTreeDepth = 50
	maxTreeNodes = 100_000
)

// ParserNode is the L1-internal record of a single TLV. EncodedBytes
// spans the entire TLV including its header; DataBytes is populated
// only for primitive nodes and spans just the value octets.
type ParserNode struct {
	Identifier   Identifier
	Depth        int
	EncodedBytes []byte
	DataBytes    []byte // present iff !Identifier.Constructed
}

// scanState threads the shared counters through the recursive scan.
type scanState struct {
	rule  EncodingRule
	count int
}

// Scan parses the entirety of input as exactly one well-formed TLV
// under rule and returns the flat, pre-order ParserNode vector.
// Trailing bytes after the root TLV are a fatal error.
func Scan(input []byte, rule EncodingRule) ([]ParserNode, error) {
	defer debugPath("Scan", rule, len(input))()
	st := &scanState{rule: rule}
	nodes, consumed, err := st.scanOne(input, 1)
	if err != nil {
		debugEvent(EventTLV, "scan failed", err)
		return nil, err
	}
	if consumed != len(input) {
		return nil, errInvalidObject("trailing bytes after root TLV")
	}
	return nodes, nil
}

// scanOne parses a single TLV at the head of b, appending itself (and,
// if constructed, its descendants) to the
// returned node slice in pre-order. It returns the number of bytes of
// b consumed by this single TLV (header + content, including any
// trailing end-of-contents marker for indefinite length).
func (st *scanState) scanOne(b []byte, depth int) ([]ParserNode, int, error) {
	if depth > maxTreeDepth {
		return nil, 0, errInvalidObject("excessive stack depth")
	}

	id, idLen, err := decodeIdentifier(b)
	if err != nil {
		return nil, 0, err
	}

	if idLen >= len(b) {
		return nil, 0, errTruncatedField("truncated field")
	}

	length, lenLen, err := decodeLength(b[idLen:], st.rule)
	if err != nil {
		return nil, 0, err
	}

	headerLen := idLen + lenLen

	st.count++
	if st.count > maxTreeNodes {
		return nil, 0, errInvalidObject("excessive number of nodes")
	}
	debugTLV("scanOne", depth, id, length)

	if length >= 0 {
		// Definite length.
		if headerLen+length > len(b) {
			return nil, 0, errTruncatedField("truncated field")
		}
		total := headerLen + length
		node := ParserNode{
			Identifier:   id,
			Depth:        depth,
			EncodedBytes: b[:total],
		}

		if !id.Constructed {
			node.DataBytes = b[headerLen:total]
			return []ParserNode{node}, total, nil
		}

		nodes := []ParserNode{node}
		content := b[headerLen:total]
		off := 0
		for off < len(content) {
			child, n, err := st.scanOne(content[off:], depth+1)
			if err != nil {
				return nil, 0, err
			}
			nodes = append(nodes, child...)
			off += n
		}
		return nodes, total, nil
	}

	// Indefinite length: BER only, constructed only.
	if !id.Constructed {
		return nil, 0, errInvalidObject("indefinite length on primitive node")
	}

	nodes := []ParserNode{{Identifier: id, Depth: depth}} // placeholder, backfilled below
	off := headerLen
	for {
		if off+2 <= len(b) && b[off] == 0x00 && b[off+1] == 0x00 {
			off += 2
			break
		}
		if off >= len(b) {
			return nil, 0, errTruncatedField("truncated field")
		}
		child, n, err := st.scanOne(b[off:], depth+1)
		if err != nil {
			return nil, 0, err
		}
		nodes = append(nodes, child...)
		off += n
	}
	nodes[0].EncodedBytes = b[:off]
	return nodes, off, nil
}
