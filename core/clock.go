package core

import "gotick/samd21"

// Resolution selects the tick unit both timers count in. It is fixed at
// Configure time and shared by TC4 and TC5.
type Resolution uint8

const (
	// Seconds ticks once per second, sourced from the external 32.768 kHz
	// crystal for accuracy over long periods.
	Seconds Resolution = iota

	// Milliseconds ticks roughly once per millisecond (1/1024 s), sourced
	// from the always-running internal ultra-low-power oscillator.
	Milliseconds
)

// configureClock programs the 32 kHz oscillator appropriate for the
// resolution, sets up generic clock generator `generator` to emit the
// nominal 1 kHz reference (32768 Hz / 2^5), and routes that generator to
// the shared TC4/TC5 clock input.
//
// The generator is shared process-wide hardware state: any other peripheral
// fed from the same generator ID will see the new configuration. Callers
// pick a generator the rest of the application leaves alone.
func configureClock(generator uint8, resolution Resolution) {
	b := MustBus()
	xosc32k := reg16{b, samd21.SYSCTRL_BASE + samd21.SYSCTRL_XOSC32K}
	gclkStatus := reg8{b, samd21.GCLK_BASE + samd21.GCLK_STATUS}
	gendiv := reg32{b, samd21.GCLK_BASE + samd21.GCLK_GENDIV}
	genctrl := reg32{b, samd21.GCLK_BASE + samd21.GCLK_GENCTRL}
	clkctrl := reg16{b, samd21.GCLK_BASE + samd21.GCLK_CLKCTRL}

	source := samd21.GCLK_GENCTRL_SRC_OSCULP32K
	if resolution == Seconds {
		// Bring up the external 32.768 kHz crystal. The whole register is
		// written in one operation, ENABLE included, and the oscillator is
		// left in on-demand mode so it starts when the generator requests
		// it. STARTUP(6) gives the crystal time to stabilize.
		xosc32k.Set(samd21.SYSCTRL_XOSC32K_ONDEMAND |
			samd21.SYSCTRL_XOSC32K_RUNSTDBY |
			samd21.SYSCTRL_XOSC32K_EN32K |
			samd21.SYSCTRL_XOSC32K_XTALEN |
			6<<samd21.SYSCTRL_XOSC32K_STARTUP_Pos |
			samd21.SYSCTRL_XOSC32K_ENABLE)
		source = samd21.GCLK_GENCTRL_SRC_XOSC32K
	}
	// Milliseconds mode uses OSCULP32K, which is always running and needs
	// no SYSCTRL programming.

	// GENDIV.DIV=4 with GENCTRL.DIVSEL set gives a divider of 2^(4+1)=32,
	// so the generator emits 32768/32 = 1024 Hz. GENDIV must be written in
	// a single operation; it is not write-synchronized.
	gendiv.Set(uint32(generator)<<samd21.GCLK_GENDIV_ID_Pos |
		4<<samd21.GCLK_GENDIV_DIV_Pos)

	// GENCTRL is also a single-operation write and is synchronized.
	for gclkStatus.HasBits(samd21.GCLK_STATUS_SYNCBUSY) {
	}
	genctrl.Set(samd21.GCLK_GENCTRL_GENEN |
		source<<samd21.GCLK_GENCTRL_SRC_Pos |
		uint32(generator)<<samd21.GCLK_GENCTRL_ID_Pos |
		samd21.GCLK_GENCTRL_DIVSEL)
	for gclkStatus.HasBits(samd21.GCLK_STATUS_SYNCBUSY) {
	}

	// Route the generator to the clock channel TC4 and TC5 share.
	clkctrl.Set(samd21.GCLK_CLKCTRL_CLKEN |
		uint16(generator)<<samd21.GCLK_CLKCTRL_GEN_Pos |
		samd21.GCLK_CLKCTRL_ID_TC4_TC5<<samd21.GCLK_CLKCTRL_ID_Pos)
	for gclkStatus.HasBits(samd21.GCLK_STATUS_SYNCBUSY) {
	}

	// Unmask TC4 and TC5 on the APBC bus.
	apbcmask := reg32{b, samd21.PM_BASE + samd21.PM_APBCMASK}
	apbcmask.SetBits(samd21.PM_APBCMASK_TC4)
	apbcmask.SetBits(samd21.PM_APBCMASK_TC5)
}
