package sim

import "gotick/samd21"

// tcUnit models one TC peripheral in its 16-bit counter view. The counter is
// held in a uint32 so the 65536-tick cycle of a 0xFFFF top is representable
// without wrapping tricks.
type tcUnit struct {
	ctrla   uint16
	ctrlb   uint8
	cc0     uint16
	count   uint32
	inten   uint8
	intflag uint8
	stopped bool

	sync        int
	prescaleAcc uint32
}

// prescaleDivs maps the CTRLA.PRESCALER field to its divider.
var prescaleDivs = [8]uint32{1, 2, 4, 8, 16, 64, 256, 1024}

func tcBase(unit int) uintptr {
	if unit == 0 {
		return samd21.TC4_BASE
	}
	return samd21.TC5_BASE
}

func (tc *tcUnit) read8(off uintptr) uint8 {
	switch off {
	case samd21.TC_COUNT16_CTRLBSET, samd21.TC_COUNT16_CTRLBCLR:
		// CMD always reads back as zero.
		return tc.ctrlb
	case samd21.TC_COUNT16_INTENCLR, samd21.TC_COUNT16_INTENSET:
		// Both views read back the interrupt enable mask.
		return tc.inten
	case samd21.TC_COUNT16_INTFLAG:
		return tc.intflag
	case samd21.TC_COUNT16_STATUS:
		var s uint8
		if tc.stopped {
			s |= samd21.TC_COUNT16_STATUS_STOP
		}
		if tc.sync > 0 {
			tc.sync--
			s |= samd21.TC_COUNT16_STATUS_SYNCBUSY
		}
		return s
	}
	return 0
}

func (tc *tcUnit) read16(off uintptr) uint16 {
	switch off {
	case samd21.TC_COUNT16_CTRLA:
		return tc.ctrla
	case samd21.TC_COUNT16_COUNT:
		return uint16(tc.count)
	case samd21.TC_COUNT16_CC0:
		return tc.cc0
	}
	return 0
}

func (m *Machine) tcWrite8(unit int, off uintptr, value uint8) {
	tc := &m.tcs[unit]
	switch off {
	case samd21.TC_COUNT16_CTRLBSET:
		if tc.sync > 0 {
			m.SyncViolations++
		}
		tc.ctrlb |= value &^ (0x3 << samd21.TC_COUNT16_CTRLB_CMD_Pos)
		cmd := value >> samd21.TC_COUNT16_CTRLB_CMD_Pos & 0x3
		switch cmd {
		case samd21.TC_COUNT16_CTRLB_CMD_STOP:
			tc.stopped = true
		case samd21.TC_COUNT16_CTRLB_CMD_RETRIGGER:
			tc.stopped = false
			tc.count = 0
		}
		tc.sync = syncLatency
	case samd21.TC_COUNT16_CTRLBCLR:
		if tc.sync > 0 {
			m.SyncViolations++
		}
		tc.ctrlb &^= value
		tc.sync = syncLatency
	case samd21.TC_COUNT16_INTENSET:
		tc.inten |= value
	case samd21.TC_COUNT16_INTENCLR:
		tc.inten &^= value
	case samd21.TC_COUNT16_INTFLAG:
		// Write-one-to-clear.
		tc.intflag &^= value
	}
}

func (m *Machine) tcWrite16(unit int, off uintptr, value uint16) {
	tc := &m.tcs[unit]
	switch off {
	case samd21.TC_COUNT16_CTRLA:
		if tc.sync > 0 {
			m.SyncViolations++
		}
		if value&samd21.TC_COUNT16_CTRLA_ENABLE == 0 {
			// Reprogramming while disabled resets the count.
			tc.count = 0
			tc.prescaleAcc = 0
		} else {
			tc.stopped = false
		}
		tc.ctrla = value
		tc.sync = syncLatency
	case samd21.TC_COUNT16_CC0:
		if tc.sync > 0 {
			m.SyncViolations++
		}
		tc.cc0 = value
		tc.sync = syncLatency
	case samd21.TC_COUNT16_COUNT:
		if tc.sync > 0 {
			m.SyncViolations++
		}
		tc.count = uint32(value)
		tc.sync = syncLatency
	case samd21.TC_COUNT16_READREQ:
		// A read request synchronizes COUNT into the bus clock domain.
		tc.sync = syncLatency
	}
}

// stepTC advances one unit by one generator tick.
func (m *Machine) stepTC(unit int) {
	tc := &m.tcs[unit]
	if tc.ctrla&samd21.TC_COUNT16_CTRLA_ENABLE == 0 || tc.stopped {
		return
	}

	presc := prescaleDivs[tc.ctrla>>samd21.TC_COUNT16_CTRLA_PRESCALER_Pos&0x7]
	tc.prescaleAcc++
	if tc.prescaleAcc < presc {
		return
	}
	tc.prescaleAcc = 0

	// In MFRQ mode CC0 is TOP; otherwise the counter runs its full width.
	top := uint32(0xFFFF)
	if tc.ctrla>>samd21.TC_COUNT16_CTRLA_WAVEGEN_Pos&0x3 == uint16(samd21.TC_COUNT16_CTRLA_WAVEGEN_MFRQ) {
		top = uint32(tc.cc0)
	}

	tc.count++
	if tc.count <= top {
		return
	}
	tc.count = 0

	// Overflow.
	tc.intflag |= samd21.TC_COUNT16_INT_OVF
	if tc.ctrlb&samd21.TC_COUNT16_CTRLB_ONESHOT != 0 {
		tc.ctrla &^= samd21.TC_COUNT16_CTRLA_ENABLE
		tc.stopped = true
	}
	if tc.inten&samd21.TC_COUNT16_INT_OVF != 0 {
		m.pend(tcIRQ(unit))
	}
}

// Enabled reports whether the unit's CTRLA.ENABLE bit is set. unit is 0 for
// TC4, 1 for TC5.
func (m *Machine) Enabled(unit int) bool {
	return m.tcs[unit].ctrla&samd21.TC_COUNT16_CTRLA_ENABLE != 0
}

// Stopped reports the unit's STATUS.STOP state.
func (m *Machine) Stopped(unit int) bool {
	return m.tcs[unit].stopped
}

// Compare returns the unit's CC0 (TOP) value.
func (m *Machine) Compare(unit int) uint16 {
	return m.tcs[unit].cc0
}

// OverflowPending reports whether the unit's OVF flag is raised.
func (m *Machine) OverflowPending(unit int) bool {
	return m.tcs[unit].intflag&samd21.TC_COUNT16_INT_OVF != 0
}

// OverflowEnabled reports whether the unit's overflow interrupt is enabled.
func (m *Machine) OverflowEnabled(unit int) bool {
	return m.tcs[unit].inten&samd21.TC_COUNT16_INT_OVF != 0
}

// TCSnapshot is the observable register state of one unit, for idempotence
// comparisons in tests.
type TCSnapshot struct {
	CTRLA   uint16
	CTRLB   uint8
	CC0     uint16
	Count   uint32
	IntEn   uint8
	IntFlag uint8
	Stopped bool
}

// SnapshotTC captures the unit's register state.
func (m *Machine) SnapshotTC(unit int) TCSnapshot {
	tc := &m.tcs[unit]
	return TCSnapshot{
		CTRLA:   tc.ctrla,
		CTRLB:   tc.ctrlb,
		CC0:     tc.cc0,
		Count:   tc.count,
		IntEn:   tc.inten,
		IntFlag: tc.intflag,
		Stopped: tc.stopped,
	}
}
