package core

import "gotick/samd21"

// Unit identifies one of the two timer/counters the driver owns.
type Unit uint8

const (
	// TC4 is the first timer/counter unit.
	TC4 Unit = iota
	// TC5 is the second timer/counter unit.
	TC5
)

// unitInfo maps a Unit to its register block base and interrupt line. The
// two units are register-compatible, so all sequencing below is shared.
var unitInfo = [2]struct {
	base uintptr
	irq  int
}{
	{samd21.TC4_BASE, samd21.IRQ_TC4},
	{samd21.TC5_BASE, samd21.IRQ_TC5},
}

// tcBlock is the 16-bit counter view of one TC register block.
type tcBlock struct {
	ctrla    reg16
	readreq  reg16
	ctrlbset reg8
	intenclr reg8
	intenset reg8
	intflag  reg8
	status   reg8
	count    reg16
	cc0      reg16
}

func tcFor(unit Unit) tcBlock {
	b := MustBus()
	base := unitInfo[unit].base
	return tcBlock{
		ctrla:    reg16{b, base + samd21.TC_COUNT16_CTRLA},
		readreq:  reg16{b, base + samd21.TC_COUNT16_READREQ},
		ctrlbset: reg8{b, base + samd21.TC_COUNT16_CTRLBSET},
		intenclr: reg8{b, base + samd21.TC_COUNT16_INTENCLR},
		intenset: reg8{b, base + samd21.TC_COUNT16_INTENSET},
		intflag:  reg8{b, base + samd21.TC_COUNT16_INTFLAG},
		status:   reg8{b, base + samd21.TC_COUNT16_STATUS},
		count:    reg16{b, base + samd21.TC_COUNT16_COUNT},
		cc0:      reg16{b, base + samd21.TC_COUNT16_CC0},
	}
}

// syncWait spins until the unit reports its last register write has crossed
// into the counter clock domain.
func (tc tcBlock) syncWait() {
	for tc.status.HasBits(samd21.TC_COUNT16_STATUS_SYNCBUSY) {
	}
}

// configureTC programs the unit for 16-bit match-frequency counting with a
// top of period-1 and starts it. Each step is ordered and synchronized; the
// unit must be disabled before any mode field may be rewritten.
//
// A period of 0 underflows: the compare value becomes 65535, giving a full
// 65536-tick cycle. That matches the hardware arithmetic and is deliberately
// not clamped.
func configureTC(unit Unit, period uint16, oneShot bool, resolution Resolution) {
	tc := tcFor(unit)

	// The generator feeds both units 1024 Hz. DIV1024 brings that to 1 Hz
	// for seconds; DIV1 leaves ~1 ms ticks for milliseconds.
	prescaler := samd21.TC_COUNT16_CTRLA_PRESCALER_DIV1024
	if resolution == Milliseconds {
		prescaler = samd21.TC_COUNT16_CTRLA_PRESCALER_DIV1
	}

	// Disable the unit so the mode fields become writable.
	tc.syncWait()
	tc.ctrla.ClearBits(samd21.TC_COUNT16_CTRLA_ENABLE)
	tc.syncWait()

	// 16-bit counting, MFRQ so CC0 is TOP and overflow fires exactly once
	// per period, keep running in standby. This full write also resets the
	// counter to zero.
	tc.ctrla.Set(samd21.TC_COUNT16_CTRLA_MODE_COUNT16<<samd21.TC_COUNT16_CTRLA_MODE_Pos |
		samd21.TC_COUNT16_CTRLA_WAVEGEN_MFRQ<<samd21.TC_COUNT16_CTRLA_WAVEGEN_Pos |
		samd21.TC_COUNT16_CTRLA_RUNSTDBY |
		prescaler<<samd21.TC_COUNT16_CTRLA_PRESCALER_Pos)
	tc.syncWait()

	// In MFRQ mode one-shot produces exactly one overflow interrupt and
	// then the unit halts itself.
	if oneShot {
		tc.ctrlbset.Set(samd21.TC_COUNT16_CTRLB_ONESHOT)
		tc.syncWait()
	}

	// CC0 is TOP in MFRQ mode. The overflow interrupt fires on the count
	// after the match, so program one tick less than requested.
	tc.cc0.Set(period - 1)
	tc.syncWait()

	tc.intenset.Set(samd21.TC_COUNT16_INT_OVF)
	tc.syncWait()

	tc.ctrla.SetBits(samd21.TC_COUNT16_CTRLA_ENABLE)
	tc.syncWait()

	// Enable the unit's vector at the highest priority so overflow
	// dispatch is not starved by other interrupt sources.
	irq := unitInfo[unit].irq
	ctrl := MustIRQController()
	ctrl.ClearPendingIRQ(irq)
	ctrl.EnableIRQ(irq)
	ctrl.SetPriority(irq, 0)

	recordTrace(EvtConfigure, uint8(unit), uint32(period), boolTrace(oneShot))
}

// stopTC issues a stop command to the unit, disables its overflow interrupt,
// and clears and disables its vector. Safe to call on a unit that is already
// stopped.
//
// An overflow latched before the stop command lands may still deliver one
// final dispatch; stop does not try to win that race.
func stopTC(unit Unit) {
	tc := tcFor(unit)

	tc.syncWait()
	tc.ctrlbset.Set(samd21.TC_COUNT16_CTRLB_CMD_STOP << samd21.TC_COUNT16_CTRLB_CMD_Pos)
	tc.syncWait()

	tc.intenclr.Set(samd21.TC_COUNT16_INT_OVF)
	tc.syncWait()

	irq := unitInfo[unit].irq
	ctrl := MustIRQController()
	ctrl.ClearPendingIRQ(irq)
	ctrl.DisableIRQ(irq)

	recordTrace(EvtStop, uint8(unit), 0, 0)
}

// readCount requests a synchronized read of the unit's live counter value.
func readCount(unit Unit) uint16 {
	tc := tcFor(unit)
	tc.readreq.Set(samd21.TC_COUNT16_READREQ_RREQ |
		samd21.TC_COUNT16_COUNT<<samd21.TC_COUNT16_READREQ_ADDR_Pos)
	tc.syncWait()
	return tc.count.Get()
}

// readStopped reports whether the unit's counter is halted, either by a stop
// command or by one-shot completion.
func readStopped(unit Unit) bool {
	return tcFor(unit).status.HasBits(samd21.TC_COUNT16_STATUS_STOP)
}

func boolTrace(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
