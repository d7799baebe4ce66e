package asn1core

/*
event.go contains EventType constants which are only meaningful when
this package was built or run with the "-tags asn1core_debug" flag.
Otherwise every debug* call compiles to a no-op (see debug_off.go).
*/

// EventType describes a specific kind of trace event. See the
// EventType constants for the full list. This type and its constants
// only have an observable effect under the asn1core_debug build tag.
type EventType int

const (
	EventNone EventType = 0     // no events
	EventAll  EventType = 65535 // all events; use with caution
)

const (
	EventEnter EventType = 1 << iota //    1: function entry
	EventInfo                        //    2: interim event
	EventExit                        //    4: function exit
	EventTLV                          //    8: L1 scanner TLV ops
	EventCodec                        //   16: L3 value codec parse/serialize
	EventComposite                    //   32: L4 SEQUENCE/SET recursion
	EventPEM                          //   64: L5 PEM envelope ops
)
