// Package samd21 holds the register addresses and bit definitions for the
// SAMD21 peripherals gotick touches: the system controller's 32 kHz
// oscillators, the generic clock controller, the power manager, and the
// TC4/TC5 timer/counters in their 16-bit view. Names follow the device
// header conventions so the sequences read like the datasheet.
package samd21

// Peripheral base addresses.
const (
	PM_BASE      uintptr = 0x40000400
	SYSCTRL_BASE uintptr = 0x40000800
	GCLK_BASE    uintptr = 0x40000C00
	TC4_BASE     uintptr = 0x42003000
	TC5_BASE     uintptr = 0x42003400
)

// SYSCTRL register offsets.
const (
	SYSCTRL_PCLKSR    = 0x0C // 32-bit, read-only status
	SYSCTRL_XOSC32K   = 0x14 // 16-bit
	SYSCTRL_OSCULP32K = 0x1C // 8-bit
)

// SYSCTRL_PCLKSR bits.
const (
	SYSCTRL_PCLKSR_XOSC32KRDY uint32 = 1 << 1
)

// SYSCTRL_XOSC32K bits. The register must be written in a single
// operation; ENABLE may be part of that write.
const (
	SYSCTRL_XOSC32K_ENABLE   uint16 = 1 << 1
	SYSCTRL_XOSC32K_XTALEN   uint16 = 1 << 2
	SYSCTRL_XOSC32K_EN32K    uint16 = 1 << 3
	SYSCTRL_XOSC32K_EN1K     uint16 = 1 << 4
	SYSCTRL_XOSC32K_AAMPEN   uint16 = 1 << 5
	SYSCTRL_XOSC32K_RUNSTDBY uint16 = 1 << 6
	SYSCTRL_XOSC32K_ONDEMAND uint16 = 1 << 7
)

// SYSCTRL_XOSC32K field positions.
const (
	SYSCTRL_XOSC32K_STARTUP_Pos = 8
)

// GCLK register offsets.
const (
	GCLK_CTRL    = 0x00 // 8-bit
	GCLK_STATUS  = 0x01 // 8-bit
	GCLK_CLKCTRL = 0x02 // 16-bit, single-operation write
	GCLK_GENCTRL = 0x04 // 32-bit, single-operation write
	GCLK_GENDIV  = 0x08 // 32-bit, single-operation write
)

// GCLK_STATUS bits.
const (
	GCLK_STATUS_SYNCBUSY uint8 = 1 << 7
)

// GCLK_CLKCTRL fields: routes a generator to a peripheral clock channel.
const (
	GCLK_CLKCTRL_CLKEN uint16 = 1 << 14
)

const (
	GCLK_CLKCTRL_ID_Pos     = 0
	GCLK_CLKCTRL_GEN_Pos    = 8
	GCLK_CLKCTRL_ID_TC4_TC5 = 0x1C // shared TC4/TC5 clock channel
)

// GCLK_GENCTRL bits.
const (
	GCLK_GENCTRL_GENEN    uint32 = 1 << 16
	GCLK_GENCTRL_IDC      uint32 = 1 << 17
	GCLK_GENCTRL_OOV      uint32 = 1 << 18
	GCLK_GENCTRL_OE       uint32 = 1 << 19
	GCLK_GENCTRL_DIVSEL   uint32 = 1 << 20
	GCLK_GENCTRL_RUNSTDBY uint32 = 1 << 21
)

// GCLK_GENCTRL field positions and source values.
const (
	GCLK_GENCTRL_ID_Pos  = 0
	GCLK_GENCTRL_SRC_Pos = 8
)

const (
	GCLK_GENCTRL_SRC_OSCULP32K uint32 = 0x03
	GCLK_GENCTRL_SRC_OSC32K    uint32 = 0x04
	GCLK_GENCTRL_SRC_XOSC32K   uint32 = 0x05
)

// GCLK_GENDIV field positions.
const (
	GCLK_GENDIV_ID_Pos  = 0
	GCLK_GENDIV_DIV_Pos = 8
)

// PM register offsets.
const (
	PM_APBCMASK = 0x20 // 32-bit
)

// PM_APBCMASK bits.
const (
	PM_APBCMASK_TC4 uint32 = 1 << 12
	PM_APBCMASK_TC5 uint32 = 1 << 13
)

// TC COUNT16 register offsets, relative to a TC base address.
const (
	TC_COUNT16_CTRLA    = 0x00 // 16-bit
	TC_COUNT16_READREQ  = 0x02 // 16-bit
	TC_COUNT16_CTRLBCLR = 0x04 // 8-bit
	TC_COUNT16_CTRLBSET = 0x05 // 8-bit
	TC_COUNT16_CTRLC    = 0x06 // 8-bit
	TC_COUNT16_DBGCTRL  = 0x08 // 8-bit
	TC_COUNT16_EVCTRL   = 0x0A // 16-bit
	TC_COUNT16_INTENCLR = 0x0C // 8-bit
	TC_COUNT16_INTENSET = 0x0D // 8-bit
	TC_COUNT16_INTFLAG  = 0x0E // 8-bit
	TC_COUNT16_STATUS   = 0x0F // 8-bit
	TC_COUNT16_COUNT    = 0x10 // 16-bit
	TC_COUNT16_CC0      = 0x18 // 16-bit
	TC_COUNT16_CC1      = 0x1A // 16-bit
)

// TC_COUNT16_CTRLA bits.
const (
	TC_COUNT16_CTRLA_SWRST    uint16 = 1 << 0
	TC_COUNT16_CTRLA_ENABLE   uint16 = 1 << 1
	TC_COUNT16_CTRLA_RUNSTDBY uint16 = 1 << 11
)

// TC_COUNT16_CTRLA field positions and values.
const (
	TC_COUNT16_CTRLA_MODE_Pos      = 2
	TC_COUNT16_CTRLA_WAVEGEN_Pos   = 5
	TC_COUNT16_CTRLA_PRESCALER_Pos = 8
)

const (
	TC_COUNT16_CTRLA_MODE_COUNT16      uint16 = 0x0
	TC_COUNT16_CTRLA_WAVEGEN_MFRQ      uint16 = 0x1
	TC_COUNT16_CTRLA_PRESCALER_DIV1    uint16 = 0x0
	TC_COUNT16_CTRLA_PRESCALER_DIV1024 uint16 = 0x7
)

// TC_COUNT16_READREQ fields.
const (
	TC_COUNT16_READREQ_RCONT uint16 = 1 << 14
	TC_COUNT16_READREQ_RREQ  uint16 = 1 << 15
)

const (
	TC_COUNT16_READREQ_ADDR_Pos = 0
)

// TC_COUNT16_CTRLBSET / CTRLBCLR bits.
const (
	TC_COUNT16_CTRLB_DIR     uint8 = 1 << 0
	TC_COUNT16_CTRLB_ONESHOT uint8 = 1 << 2
)

const (
	TC_COUNT16_CTRLB_CMD_Pos = 6
)

const (
	TC_COUNT16_CTRLB_CMD_RETRIGGER uint8 = 0x1
	TC_COUNT16_CTRLB_CMD_STOP      uint8 = 0x2
)

// TC_COUNT16_INTENCLR / INTENSET / INTFLAG bits.
const (
	TC_COUNT16_INT_OVF     uint8 = 1 << 0
	TC_COUNT16_INT_ERR     uint8 = 1 << 1
	TC_COUNT16_INT_SYNCRDY uint8 = 1 << 3
	TC_COUNT16_INT_MC0     uint8 = 1 << 4
	TC_COUNT16_INT_MC1     uint8 = 1 << 5
)

// TC_COUNT16_STATUS bits.
const (
	TC_COUNT16_STATUS_STOP     uint8 = 1 << 3
	TC_COUNT16_STATUS_SLAVE    uint8 = 1 << 4
	TC_COUNT16_STATUS_SYNCBUSY uint8 = 1 << 7
)

// Interrupt lines for the two timer/counters.
const (
	IRQ_TC4 = 19
	IRQ_TC5 = 20
)
