// Package sim models the slice of SAMD21 hardware the driver touches: the
// 32 kHz oscillators, the generic clock generators, the power manager's
// APBC mask, the TC4/TC5 counters, and the NVIC lines for their vectors.
//
// Machine implements the driver's Bus and IRQController interfaces, so the
// identical register sequences that run on hardware run against it. Tests
// advance simulated time with Advance and observe register state through
// the same addresses the driver uses.
package sim

import "gotick/samd21"

// syncLatency is how many STATUS reads a synchronized write stays busy for.
const syncLatency = 2

// numGenerators is the number of generic clock generators on the SAMD21.
const numGenerators = 9

// oscFrequency is the frequency of all three 32 kHz oscillator sources.
const oscFrequency = 32768

// Machine is one simulated chip. The zero value is unusable; call New.
type Machine struct {
	// SYSCTRL
	xosc32k uint16

	// GCLK
	gendiv   [numGenerators]uint32
	genctrl  [numGenerators]uint32
	clkctrl  map[uint8]uint16
	gclkSync int

	// PM
	apbcmask uint32

	tcs  [2]tcUnit
	nvic [32]nvicLine

	// SyncViolations counts writes to synchronized registers issued while
	// the hardware still reported busy. Correctly placed sync waits keep
	// it at zero.
	SyncViolations int
}

type nvicLine struct {
	enabled  bool
	pending  bool
	priority uint8
	handler  func()
}

// New returns a machine in its power-on state.
func New() *Machine {
	return &Machine{clkctrl: make(map[uint8]uint16)}
}

// OnInterrupt wires a handler to an interrupt line. The simulated NVIC calls
// it synchronously, on the goroutine that caused the delivery.
func (m *Machine) OnInterrupt(irq int, handler func()) {
	m.nvic[irq].handler = handler
}

// IRQController implementation.

func (m *Machine) EnableIRQ(irq int) {
	m.nvic[irq].enabled = true
	m.deliver(irq)
}

func (m *Machine) DisableIRQ(irq int) {
	m.nvic[irq].enabled = false
}

func (m *Machine) ClearPendingIRQ(irq int) {
	m.nvic[irq].pending = false
}

func (m *Machine) SetPriority(irq int, priority uint8) {
	m.nvic[irq].priority = priority
}

// Priority returns the line's configured priority.
func (m *Machine) Priority(irq int) uint8 {
	return m.nvic[irq].priority
}

// IRQEnabled reports whether the line is enabled.
func (m *Machine) IRQEnabled(irq int) bool {
	return m.nvic[irq].enabled
}

// IRQPending reports whether the line has a latched, undelivered request.
func (m *Machine) IRQPending(irq int) bool {
	return m.nvic[irq].pending
}

// pend latches a request on the line and delivers it if the line is
// enabled. A request latched while disabled stays pending until the line is
// enabled or the pending state is cleared.
func (m *Machine) pend(irq int) {
	m.nvic[irq].pending = true
	m.deliver(irq)
}

func (m *Machine) deliver(irq int) {
	line := &m.nvic[irq]
	if line.enabled && line.pending && line.handler != nil {
		line.pending = false
		line.handler()
	}
}

// tcIndex maps a TC register block address to a unit index, or -1.
func tcIndex(addr uintptr) int {
	switch {
	case addr >= samd21.TC4_BASE && addr < samd21.TC4_BASE+0x20:
		return 0
	case addr >= samd21.TC5_BASE && addr < samd21.TC5_BASE+0x20:
		return 1
	}
	return -1
}

func tcIRQ(unit int) int {
	if unit == 0 {
		return samd21.IRQ_TC4
	}
	return samd21.IRQ_TC5
}

// Bus implementation. Addresses outside the modeled peripherals read as
// zero and ignore writes, like reserved address space.

func (m *Machine) Read8(addr uintptr) uint8 {
	switch addr {
	case samd21.GCLK_BASE + samd21.GCLK_STATUS:
		if m.gclkSync > 0 {
			m.gclkSync--
			return samd21.GCLK_STATUS_SYNCBUSY
		}
		return 0
	}
	if unit := tcIndex(addr); unit >= 0 {
		return m.tcs[unit].read8(addr - tcBase(unit))
	}
	return 0
}

func (m *Machine) Write8(addr uintptr, value uint8) {
	if unit := tcIndex(addr); unit >= 0 {
		m.tcWrite8(unit, addr-tcBase(unit), value)
	}
}

func (m *Machine) Read16(addr uintptr) uint16 {
	switch addr {
	case samd21.SYSCTRL_BASE + samd21.SYSCTRL_XOSC32K:
		return m.xosc32k
	}
	if unit := tcIndex(addr); unit >= 0 {
		return m.tcs[unit].read16(addr - tcBase(unit))
	}
	return 0
}

func (m *Machine) Write16(addr uintptr, value uint16) {
	switch addr {
	case samd21.SYSCTRL_BASE + samd21.SYSCTRL_XOSC32K:
		m.xosc32k = value
		return
	case samd21.GCLK_BASE + samd21.GCLK_CLKCTRL:
		id := uint8(value >> samd21.GCLK_CLKCTRL_ID_Pos & 0x3F)
		m.clkctrl[id] = value
		m.gclkSync = syncLatency
		return
	}
	if unit := tcIndex(addr); unit >= 0 {
		m.tcWrite16(unit, addr-tcBase(unit), value)
	}
}

func (m *Machine) Read32(addr uintptr) uint32 {
	switch addr {
	case samd21.PM_BASE + samd21.PM_APBCMASK:
		return m.apbcmask
	}
	return 0
}

func (m *Machine) Write32(addr uintptr, value uint32) {
	switch addr {
	case samd21.GCLK_BASE + samd21.GCLK_GENDIV:
		// GENDIV self-identifies its generator; it is not synchronized.
		id := value >> samd21.GCLK_GENDIV_ID_Pos & 0xF
		if id < numGenerators {
			m.gendiv[id] = value
		}
	case samd21.GCLK_BASE + samd21.GCLK_GENCTRL:
		if m.gclkSync > 0 {
			m.SyncViolations++
		}
		id := value >> samd21.GCLK_GENCTRL_ID_Pos & 0xF
		if id < numGenerators {
			m.genctrl[id] = value
		}
		m.gclkSync = syncLatency
	case samd21.PM_BASE + samd21.PM_APBCMASK:
		m.apbcmask = value
	}
}

// GeneratorFrequency returns the output frequency of a generic clock
// generator in Hz, or 0 if the generator is disabled.
func (m *Machine) GeneratorFrequency(generator uint8) uint32 {
	ctrl := m.genctrl[generator]
	if ctrl&samd21.GCLK_GENCTRL_GENEN == 0 {
		return 0
	}
	div := m.gendiv[generator] >> samd21.GCLK_GENDIV_DIV_Pos & 0xFFFF
	if ctrl&samd21.GCLK_GENCTRL_DIVSEL != 0 {
		return oscFrequency >> (div + 1)
	}
	if div == 0 {
		div = 1
	}
	return oscFrequency / div
}

// GeneratorSource returns the oscillator source field of the generator.
func (m *Machine) GeneratorSource(generator uint8) uint32 {
	return m.genctrl[generator] >> samd21.GCLK_GENCTRL_SRC_Pos & 0x1F
}

// XOSC32K returns the raw XOSC32K control register value.
func (m *Machine) XOSC32K() uint16 {
	return m.xosc32k
}

// APBCMask returns the raw power manager APBC mask.
func (m *Machine) APBCMask() uint32 {
	return m.apbcmask
}

// TCClockEnabled reports whether the shared TC4/TC5 clock channel is enabled
// and fed from the given generator.
func (m *Machine) TCClockEnabled(generator uint8) bool {
	ctrl := m.clkctrl[samd21.GCLK_CLKCTRL_ID_TC4_TC5]
	return ctrl&samd21.GCLK_CLKCTRL_CLKEN != 0 &&
		uint8(ctrl>>samd21.GCLK_CLKCTRL_GEN_Pos&0xF) == generator
}

// tcClockGenerator returns the generator currently routed to the TC channel
// and whether the channel is enabled.
func (m *Machine) tcClockGenerator() (uint8, bool) {
	ctrl := m.clkctrl[samd21.GCLK_CLKCTRL_ID_TC4_TC5]
	if ctrl&samd21.GCLK_CLKCTRL_CLKEN == 0 {
		return 0, false
	}
	return uint8(ctrl >> samd21.GCLK_CLKCTRL_GEN_Pos & 0xF), true
}

// Advance steps the machine by n generator ticks. Each enabled, running TC
// unit counts through its prescaler; overflows raise INTFLAG.OVF and, when
// the overflow interrupt is enabled, pend the unit's NVIC line. Interrupt
// handlers run synchronously inside Advance.
func (m *Machine) Advance(n int) {
	gen, ok := m.tcClockGenerator()
	if !ok || m.GeneratorFrequency(gen) == 0 {
		return
	}
	for i := 0; i < n; i++ {
		for unit := range m.tcs {
			m.stepTC(unit)
		}
	}
}

// AdvanceSeconds advances by whole seconds of generator time (the generator
// runs at 1024 Hz once the driver has configured it).
func (m *Machine) AdvanceSeconds(s int) {
	m.Advance(s * 1024)
}

// AdvanceMillis advances by whole milliseconds: one generator tick each, at
// the driver's nominal 1 kHz reference.
func (m *Machine) AdvanceMillis(ms int) {
	m.Advance(ms)
}
