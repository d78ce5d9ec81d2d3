//go:build atsamd21

// Package atsamd21 binds the driver core to real SAMD21 hardware: volatile
// MMIO register access, the Cortex-M0+ NVIC, and the TC4/TC5 interrupt
// vectors. Importing the package attaches everything; sketches only need
//
//	import _ "gotick/targets/atsamd21"
package atsamd21

import (
	"runtime/volatile"
	"unsafe"
)

// mmioBus performs width-typed volatile accesses at absolute addresses.
type mmioBus struct{}

func (mmioBus) Read8(addr uintptr) uint8 {
	return (*volatile.Register8)(unsafe.Pointer(addr)).Get()
}

func (mmioBus) Write8(addr uintptr, value uint8) {
	(*volatile.Register8)(unsafe.Pointer(addr)).Set(value)
}

func (mmioBus) Read16(addr uintptr) uint16 {
	return (*volatile.Register16)(unsafe.Pointer(addr)).Get()
}

func (mmioBus) Write16(addr uintptr, value uint16) {
	(*volatile.Register16)(unsafe.Pointer(addr)).Set(value)
}

func (mmioBus) Read32(addr uintptr) uint32 {
	return (*volatile.Register32)(unsafe.Pointer(addr)).Get()
}

func (mmioBus) Write32(addr uintptr, value uint32) {
	(*volatile.Register32)(unsafe.Pointer(addr)).Set(value)
}
