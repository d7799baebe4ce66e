//go:build !asn1core_debug

package asn1core

func debugEnter(_ ...any)               {}
func debugExit(_ ...any)                {}
func debugEvent(_ EventType, _ ...any)  {}
func debugInfo(_ ...any)                {}
func debugTLV(_ ...any)                 {}
func debugCodec(_ ...any)               {}
func debugComposite(_ ...any)           {}
func debugPEM(_ ...any)                 {}
func debugPath(_ ...any) func(_ ...any) { return func(_ ...any) {} }
