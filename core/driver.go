// Package core drives the SAMD21 TC4 and TC5 timer/counters as periodic or
// one-shot interrupt sources. One generic clock generator feeds both units a
// 1 kHz reference; each unit counts in the configured resolution (seconds or
// milliseconds) and invokes a caller-supplied callback from interrupt
// context on every overflow.
//
// The register sequencing is written against the Bus and IRQController
// interfaces in hal.go. Targets attach real MMIO implementations; the sim
// package attaches a software model for tests.
package core

// Config holds the one-time driver configuration. The zero value selects
// seconds resolution and the default clock generator.
type Config struct {
	// Resolution fixes the tick unit for both timers.
	Resolution Resolution

	// Generator is the generic clock generator ID to take over. 0 selects
	// the default, generator 4: generator 0 drives the CPU clock and is
	// never a usable choice, and 4 is conventionally free on SAMD21
	// boards. The generator is reprogrammed for any other consumer sharing
	// that ID.
	Generator uint8
}

const defaultGenerator = 4

// timers is the driver facade. Exactly one exists, the package-level Timers;
// the type is unexported so no second instance can be constructed.
type timers struct {
	resolution Resolution
	callbacks  [2]func()
}

// Timers is the single driver instance for the program, mirroring the single
// pair of hardware units it owns.
var Timers = &timers{}

// Configure sets up the clock tree and fixes the tick resolution for both
// units. It must be called once before any Start, Stop, or SetCallback;
// starting a unit first leaves the clock tree unconfigured and the unit's
// behavior undefined. Calling Configure again reprograms the generator and
// changes the resolution for subsequent Starts.
func (t *timers) Configure(cfg Config) {
	gen := cfg.Generator
	if gen == 0 {
		gen = defaultGenerator
	}
	t.resolution = cfg.Resolution
	configureClock(gen, cfg.Resolution)
	recordTrace(EvtClockInit, 0, uint32(gen), uint32(cfg.Resolution))
}

// SetCallback registers fn to run, from interrupt context, on every overflow
// of the unit. nil clears the registration; an overflow with no callback is
// acknowledged silently.
//
// The slot is a single word shared with the interrupt handler. Registration
// masks interrupts around the store so the handler never observes a torn
// value; the handler itself reads the slot once per dispatch with no lock. A
// dispatch already in flight uses whichever callback it read. Callbacks run
// on the interrupt stack: keep them to flag and counter updates, and treat
// anything they touch as shared with the main program.
func (t *timers) SetCallback(unit Unit, fn func()) {
	state := disableInterrupts()
	t.callbacks[unit] = fn
	restoreInterrupts(state)
}

// Start programs the unit to overflow every period ticks of the configured
// resolution and starts it counting from zero. With oneShot the unit halts
// itself after the first overflow and can be restarted with another Start.
// Calling Start on a running unit reprograms it: the period restarts from
// the new value.
//
// period 0 is not meaningful and underflows to a 65536-tick cycle; see
// configureTC.
func (t *timers) Start(unit Unit, period uint16, oneShot bool) {
	configureTC(unit, period, oneShot, t.resolution)
}

// Stop halts the unit and disables its interrupt. After Stop returns no
// further callback runs for the unit until the next Start, except that an
// overflow latched before the stop command landed may deliver one final
// dispatch. Stopping a stopped unit is a no-op.
func (t *timers) Stop(unit Unit) {
	stopTC(unit)
}

// Count returns the unit's live counter value, synchronized for read.
func (t *timers) Count(unit Unit) uint16 {
	return readCount(unit)
}

// Stopped reports whether the unit's counter is halted. Useful for polling
// one-shot completion without a callback.
func (t *timers) Stopped(unit Unit) bool {
	return readStopped(unit)
}
