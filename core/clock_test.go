package core_test

import (
	"testing"

	"gotick/core"
	"gotick/samd21"
	"gotick/sim"
)

// newMachine builds a fresh simulated chip and attaches it to the driver,
// wiring the two fixed dispatch entry points to their vectors.
func newMachine(t *testing.T) *sim.Machine {
	t.Helper()
	m := sim.New()
	core.SetBus(m)
	core.SetIRQController(m)
	m.OnInterrupt(samd21.IRQ_TC4, core.HandleTC4)
	m.OnInterrupt(samd21.IRQ_TC5, core.HandleTC5)
	core.Timers.SetCallback(core.TC4, nil)
	core.Timers.SetCallback(core.TC5, nil)
	return m
}

func TestConfigureSecondsClockTree(t *testing.T) {
	m := newMachine(t)

	core.Timers.Configure(core.Config{})

	if got := m.GeneratorFrequency(4); got != 1024 {
		t.Errorf("generator 4 frequency = %d Hz, want 1024", got)
	}
	if got := m.GeneratorSource(4); got != samd21.GCLK_GENCTRL_SRC_XOSC32K {
		t.Errorf("generator 4 source = %#x, want XOSC32K", got)
	}
	if !m.TCClockEnabled(4) {
		t.Error("TC4/TC5 clock channel not enabled from generator 4")
	}

	xosc := m.XOSC32K()
	for _, bit := range []uint16{
		samd21.SYSCTRL_XOSC32K_ENABLE,
		samd21.SYSCTRL_XOSC32K_XTALEN,
		samd21.SYSCTRL_XOSC32K_EN32K,
		samd21.SYSCTRL_XOSC32K_RUNSTDBY,
		samd21.SYSCTRL_XOSC32K_ONDEMAND,
	} {
		if xosc&bit == 0 {
			t.Errorf("XOSC32K = %#06x, missing bit %#06x", xosc, bit)
		}
	}

	if mask := m.APBCMask(); mask&samd21.PM_APBCMASK_TC4 == 0 || mask&samd21.PM_APBCMASK_TC5 == 0 {
		t.Errorf("APBCMASK = %#x, TC4/TC5 not unmasked", mask)
	}
	if m.SyncViolations != 0 {
		t.Errorf("clock configuration raced synchronization: %d violations", m.SyncViolations)
	}
}

func TestConfigureMillisecondsClockTree(t *testing.T) {
	m := newMachine(t)

	core.Timers.Configure(core.Config{Resolution: core.Milliseconds, Generator: 5})

	if got := m.GeneratorFrequency(5); got != 1024 {
		t.Errorf("generator 5 frequency = %d Hz, want 1024", got)
	}
	if got := m.GeneratorSource(5); got != samd21.GCLK_GENCTRL_SRC_OSCULP32K {
		t.Errorf("generator 5 source = %#x, want OSCULP32K", got)
	}
	if !m.TCClockEnabled(5) {
		t.Error("TC4/TC5 clock channel not enabled from generator 5")
	}
	// OSCULP32K is always running; milliseconds mode must not touch the
	// crystal oscillator.
	if m.XOSC32K() != 0 {
		t.Errorf("XOSC32K written in milliseconds mode: %#06x", m.XOSC32K())
	}
}

func TestConfigureDefaultsToGeneratorFour(t *testing.T) {
	m := newMachine(t)

	core.Timers.Configure(core.Config{Resolution: core.Milliseconds})

	if !m.TCClockEnabled(4) {
		t.Error("zero-value Generator did not select generator 4")
	}
}
