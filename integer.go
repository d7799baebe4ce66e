package asn1core

/*
integer.go implements the ASN.1 INTEGER type (tag 2) as a polymorphic
codec: decoding and encoding dispatch through a small capability
interface supplied by the caller, so higher-level code may substitute
its own arbitrary-precision representation instead of being forced
into one blessed by this package (see design notes on polymorphic
INTEGER). Two default implementations are provided: NativeInteger for
values that fit a fixed machine width, and BigInteger, backed by
*math/big.Int, for everything else.
*/

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

// IntegerValue is the capability interface every INTEGER
// representation must implement. FromBigEndianSigned consumes the
// two's-complement big-endian content bytes of a decoded INTEGER,
// failing if the magnitude is out of the capability's representable
// range. BigEndianSigned produces the minimal two's-complement
// big-endian encoding of the current value for serialization.
type IntegerValue interface {
	Value
	FromBigEndianSigned(b []byte) error
	BigEndianSigned() []byte
}

// validateIntegerContent enforces the DER/BER uniqueness rules common
// to every INTEGER representation: non-empty content, and no
// removable leading 0x00/0xFF byte.
func validateIntegerContent(data []byte) error {
	if len(data) == 0 {
		return errInvalidIntegerEncoding("zero-length INTEGER content")
	}
	if len(data) > 1 {
		if data[0] == 0x00 && data[1]&0x80 == 0 {
			return errInvalidIntegerEncoding("removable leading 0x00 byte")
		}
		if data[0] == 0xFF && data[1]&0x80 != 0 {
			return errInvalidIntegerEncoding("removable leading 0xFF byte")
		}
	}
	return nil
}

// minimalSignedBytes returns the minimum-length two's-complement
// big-endian encoding carrying the same signed integer value as b,
// trimming redundant leading 0x00/0xFF bytes.
func minimalSignedBytes(b []byte) []byte {
	for len(b) > 1 {
		if b[0] == 0x00 && b[1]&0x80 == 0 {
			b = b[1:]
			continue
		}
		if b[0] == 0xFF && b[1]&0x80 != 0 {
			b = b[1:]
			continue
		}
		break
	}
	if len(b) == 0 {
		return []byte{0x00}
	}
	return b
}

// DecodeInteger decodes the INTEGER at n into dst, which may be any
// IntegerValue (NativeInteger, BigInteger, or a caller-supplied type).
func DecodeInteger(n Node, dst IntegerValue, override *Identifier) error {
	id := expectedIdentifier(dst.DefaultTag(), false, override)
	if err := expectIdentifier(n.Identifier, id.Tag, id.Class, false); err != nil {
		return err
	}
	data := n.Primitive()
	if err := validateIntegerContent(data); err != nil {
		return err
	}
	return dst.FromBigEndianSigned(data)
}

// EncodeInteger serializes src as a primitive INTEGER TLV. Only the
// encoding half of IntegerValue is required, so value types such as
// NativeInteger, BigInteger and Enumerated may be passed directly.
func EncodeInteger(w *Writer, src interface {
	Value
	BigEndianSigned() []byte
}, override *Identifier) {
	id := identifierFor(src.DefaultTag(), false, override)
	content := minimalSignedBytes(src.BigEndianSigned())
	w.AppendPrimitive(id, content)
}

func expectedIdentifier(defaultTag int, constructed bool, override *Identifier) Identifier {
	if override != nil {
		id := *override
		id.Constructed = constructed
		return id
	}
	return Identifier{Class: ClassUniversal, Tag: defaultTag, Constructed: constructed}
}

// NativeInteger is the fixed-width default IntegerValue implementation,
// backed by int64. Decoding a magnitude too large to fit int64 fails.
type NativeInteger int64

func (NativeInteger) DefaultTag() int { return TagInteger }

// NewNativeInteger builds a NativeInteger from any native Go integer
// width, exercising golang.org/x/exp/constraints.Integer so every
// signed or unsigned Go integer kind has a single on-ramp without one
// hand-written overload per width.
func NewNativeInteger[T constraints.Integer](v T) NativeInteger { return NativeInteger(int64(v)) }

func (r *NativeInteger) FromBigEndianSigned(b []byte) error {
	if len(b) > 8 {
		if !fitsInt64(b) {
			return errInvalidIntegerEncoding("magnitude does not fit target width")
		}
	}
	*r = NativeInteger(bigEndianSignedToInt64(b))
	return nil
}

func (r NativeInteger) BigEndianSigned() []byte { return minimalSignedBytes(int64ToBigEndianSigned(int64(r))) }

func fitsInt64(b []byte) bool {
	n := len(b)
	if n <= 8 {
		return true
	}
	ext := byte(0x00)
	if b[0]&0x80 != 0 {
		ext = 0xFF
	}
	for i := 0; i < n-8; i++ {
		if b[i] != ext {
			return false
		}
	}
	// The 9th-from-last byte onward must also agree in sign with the
	// retained top byte of the 8-byte window.
	top := b[n-8]
	if ext == 0x00 && top&0x80 != 0 {
		return false
	}
	if ext == 0xFF && top&0x80 == 0 {
		return false
	}
	return true
}

func bigEndianSignedToInt64(b []byte) int64 {
	pad := byte(0x00)
	if len(b) > 0 && b[0]&0x80 != 0 {
		pad = 0xFF
	}
	var u uint64
	for i := 0; i < 8-len(b); i++ {
		u = (u << 8) | uint64(pad)
	}
	for _, by := range b {
		u = (u << 8) | uint64(by)
	}
	return int64(u)
}

func int64ToBigEndianSigned(v int64) []byte {
	b := make([]byte, 8)
	u := uint64(v)
	for i := 7; i >= 0; i-- {
		b[i] = byte(u)
		u >>= 8
	}
	return b
}

// BigInteger is the arbitrary-width default IntegerValue
// implementation, backed by *math/big.Int. This is the package's
// default "arbitrary byte slice" capability.
type BigInteger struct {
	V *big.Int
}

func (BigInteger) DefaultTag() int { return TagInteger }

// NewBigInteger wraps v (or a freshly allocated zero if v is nil).
func NewBigInteger(v *big.Int) BigInteger {
	if v == nil {
		v = new(big.Int)
	}
	return BigInteger{V: v}
}

func (r *BigInteger) FromBigEndianSigned(b []byte) error {
	v := new(big.Int).SetBytes(b)
	if len(b) > 0 && b[0]&0x80 != 0 {
		bitLen := uint(len(b) * 8)
		twoPow := new(big.Int).Lsh(big.NewInt(1), bitLen)
		v.Sub(v, twoPow)
	}
	r.V = v
	return nil
}

func (r BigInteger) BigEndianSigned() []byte {
	v := r.V
	if v == nil {
		return []byte{0x00}
	}
	if v.Sign() >= 0 {
		b := v.Bytes()
		if len(b) == 0 {
			return []byte{0x00}
		}
		if b[0]&0x80 != 0 {
			b = append([]byte{0x00}, b...)
		}
		return b
	}

	// Two's complement encoding of a negative big.Int: find the
	// smallest byte width that represents it, then mask.
	bitLen := v.BitLen()
	nBytes := bitLen/8 + 1
	twoPow := new(big.Int).Lsh(big.NewInt(1), uint(nBytes*8))
	u := new(big.Int).Add(twoPow, v)
	b := u.Bytes()
	for len(b) < nBytes {
		b = append([]byte{0x00}, b...)
	}
	return b
}
