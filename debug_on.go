//go:build asn1core_debug

package asn1core

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// EnvDebugVar names the environment variable read at package init time
// to seed the default tracer's enabled event mask.
const EnvDebugVar = "ASN1CORE_DEBUG"

var tracerMu sync.Mutex
var tracerOut io.Writer = os.Stderr
var tracerMask EventType = EventEnter | EventExit | EventInfo

func init() {
	if _, ok := os.LookupEnv(EnvDebugVar); ok {
		tracerMask = EventAll
	}
}

func traceEnabled(e EventType) bool { return tracerMask&e != 0 }

func writeTrace(e EventType, label string, args ...any) {
	if !traceEnabled(e) {
		return
	}
	tracerMu.Lock()
	defer tracerMu.Unlock()
	ts := time.Now().Format("15:04:05.000")
	fmt.Fprintf(tracerOut, "%s %-8s %s %v\n", ts, e, label, args)
}

func (e EventType) String() string {
	switch e {
	case EventEnter:
		return "ENTER"
	case EventExit:
		return "EXIT"
	case EventInfo:
		return "INFO"
	case EventTLV:
		return "TLV"
	case EventCodec:
		return "CODEC"
	case EventComposite:
		return "COMPOSITE"
	case EventPEM:
		return "PEM"
	default:
		return "EVENT"
	}
}

func debugEnter(args ...any)              { writeTrace(EventEnter, "enter", args...) }
func debugExit(args ...any)               { writeTrace(EventExit, "exit", args...) }
func debugEvent(e EventType, args ...any) { writeTrace(e, "event", args...) }
func debugInfo(args ...any)               { writeTrace(EventInfo, "info", args...) }
func debugTLV(args ...any)                { writeTrace(EventTLV, "tlv", args...) }
func debugCodec(args ...any)              { writeTrace(EventCodec, "codec", args...) }
func debugComposite(args ...any)          { writeTrace(EventComposite, "composite", args...) }
func debugPEM(args ...any)                { writeTrace(EventPEM, "pem", args...) }

// debugPath logs entry immediately and returns a closure that logs
// exit, for the common "defer debugPath(...)()" call shape.
func debugPath(args ...any) func(_ ...any) {
	debugEnter(args...)
	return func(ret ...any) { debugExit(ret...) }
}
