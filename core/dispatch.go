package core

import "gotick/samd21"

// HandleTC4 and HandleTC5 are the two fixed interrupt entry points. On
// hardware the target package wires them to the TC4 and TC5 vectors; the
// simulated machine calls them when its NVIC model delivers a line.
//
// Each checks the overflow flag (the vector could in principle wake for
// another flag bit, though only overflow is enabled), invokes the registered
// callback if any, and only then acknowledges the flag. A slow callback
// therefore delays the acknowledge; callback bodies must stay short.

// HandleTC4 services the TC4 overflow interrupt.
func HandleTC4() {
	dispatch(TC4)
}

// HandleTC5 services the TC5 overflow interrupt.
func HandleTC5() {
	dispatch(TC5)
}

func dispatch(unit Unit) {
	intflag := reg8{MustBus(), unitInfo[unit].base + samd21.TC_COUNT16_INTFLAG}
	if !intflag.HasBits(samd21.TC_COUNT16_INT_OVF) {
		recordTrace(EvtSpurious, uint8(unit), 0, 0)
		return
	}

	// Single whole-word read of the slot; whichever callback value is
	// current when we get here is the one that runs.
	if cb := Timers.callbacks[unit]; cb != nil {
		cb()
	}

	// Write-one-to-clear, after the callback returns.
	intflag.Set(samd21.TC_COUNT16_INT_OVF)
	recordTrace(EvtDispatch, uint8(unit), 0, 0)
}
