package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// TraceEvent captures one driver event for post-mortem analysis. Events are
// recorded into a fixed ring with no allocation, so recording is safe from
// interrupt context.
type TraceEvent struct {
	Kind uint8  // Event kind code
	Unit uint8  // Timer unit the event concerns
	A    uint32 // Context-dependent value
	B    uint32 // Context-dependent value
}

// Event kind codes
const (
	EvtClockInit = 1 // clock generator configured (A=generator, B=resolution)
	EvtConfigure = 2 // unit configured and started (A=period, B=oneShot)
	EvtStop      = 3 // unit stopped
	EvtDispatch  = 4 // overflow dispatched and acknowledged
	EvtSpurious  = 5 // vector entered with no overflow flag set
)

const (
	TraceRingSize = 32 // Keep last 32 events for post-mortem
)

var (
	// debugPrintln is the global debug print function (set by target code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active
	debugEnabled bool = false

	// Trace capture ring buffer (non-blocking, for post-mortem)
	traceRing     [TraceRingSize]TraceEvent
	traceRingHead uint8
	traceEnabled  bool = true
)

// SetDebugWriter sets the platform-specific debug output function
// This allows targets to redirect debug output to UART, USB, etc.
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// DebugPrintln writes a debug message using the platform-specific writer
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// recordTrace captures a driver event in the ring buffer. Non-blocking and
// fast enough for the dispatch path.
func recordTrace(kind, unit uint8, a, b uint32) {
	if !traceEnabled {
		return
	}
	idx := traceRingHead
	traceRing[idx] = TraceEvent{Kind: kind, Unit: unit, A: a, B: b}
	traceRingHead = (idx + 1) % TraceRingSize
}

// SetTraceEnabled enables or disables trace capture.
func SetTraceEnabled(enabled bool) {
	traceEnabled = enabled
}

// DumpTrace outputs the trace ring through the debug writer, oldest first.
// Call it from the main program, not from a callback.
func DumpTrace() {
	if debugPrintln == nil {
		return
	}

	debugPrintln("[TRACE] === Driver Event Dump ===")
	start := traceRingHead
	for i := uint8(0); i < TraceRingSize; i++ {
		idx := (start + i) % TraceRingSize
		evt := &traceRing[idx]
		if evt.Kind == 0 {
			continue // Empty slot
		}

		var name string
		switch evt.Kind {
		case EvtClockInit:
			name = "CLOCK_INIT"
		case EvtConfigure:
			name = "CONFIGURE"
		case EvtStop:
			name = "STOP"
		case EvtDispatch:
			name = "DISPATCH"
		case EvtSpurious:
			name = "SPURIOUS"
		default:
			name = "UNKNOWN"
		}

		debugPrintln("[TRACE] " + name +
			" unit=" + itoa(int(evt.Unit)) +
			" a=" + utoa(evt.A) +
			" b=" + utoa(evt.B))
	}
	debugPrintln("[TRACE] === End Dump ===")
}

// ClearTrace clears the trace ring.
func ClearTrace() {
	for i := range traceRing {
		traceRing[i] = TraceEvent{}
	}
	traceRingHead = 0
}
