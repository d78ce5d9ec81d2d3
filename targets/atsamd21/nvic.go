//go:build atsamd21

package atsamd21

import (
	"runtime/volatile"
	"unsafe"
)

// Cortex-M0+ NVIC memory map. The SAMD21 has 28 interrupt lines, so the
// enable/pending registers are single words.
const (
	nvicISER = 0xE000E100 // Interrupt set-enable
	nvicICER = 0xE000E180 // Interrupt clear-enable
	nvicISPR = 0xE000E200 // Interrupt set-pending
	nvicICPR = 0xE000E280 // Interrupt clear-pending
	nvicIPR  = 0xE000E400 // Interrupt priority, 4 lines per word
)

var (
	iser = (*volatile.Register32)(unsafe.Pointer(uintptr(nvicISER)))
	icer = (*volatile.Register32)(unsafe.Pointer(uintptr(nvicICER)))
	icpr = (*volatile.Register32)(unsafe.Pointer(uintptr(nvicICPR)))
)

// nvic implements the driver's IRQController over the real controller.
type nvic struct{}

func (nvic) EnableIRQ(irq int) {
	// Set-enable: writing 1 enables, writing 0 is ignored.
	iser.Set(1 << uint(irq))
}

func (nvic) DisableIRQ(irq int) {
	icer.Set(1 << uint(irq))
}

func (nvic) ClearPendingIRQ(irq int) {
	icpr.Set(1 << uint(irq))
}

func (nvic) SetPriority(irq int, priority uint8) {
	// The M0+ only supports word access to IPR, with four priority bytes
	// per word and the two significant bits at the top of each byte.
	addr := uintptr(nvicIPR) + uintptr(irq/4)*4
	reg := (*volatile.Register32)(unsafe.Pointer(addr))
	shift := uint(irq%4) * 8
	v := reg.Get()
	v &^= 0xFF << shift
	v |= uint32(priority&0x3) << (shift + 6)
	reg.Set(v)
}
