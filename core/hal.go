package core

// Bus is the abstract register access interface that core code uses.
// Target-specific code provides a volatile MMIO implementation; the
// pure-logic tests provide a simulated machine.
type Bus interface {
	// Read8 reads an 8-bit register at an absolute address.
	Read8(addr uintptr) uint8

	// Write8 writes an 8-bit register at an absolute address.
	Write8(addr uintptr, value uint8)

	// Read16 reads a 16-bit register. The write side is a single bus
	// transaction; registers documented as must-be-atomic rely on that.
	Read16(addr uintptr) uint16

	// Write16 writes a 16-bit register in a single transaction.
	Write16(addr uintptr, value uint16)

	// Read32 reads a 32-bit register.
	Read32(addr uintptr) uint32

	// Write32 writes a 32-bit register in a single transaction.
	Write32(addr uintptr, value uint32)
}

// IRQController is the abstract interrupt controller interface. The two
// timer vectors are fixed lines; core code enables, disables, acknowledges,
// and prioritizes them through this.
type IRQController interface {
	// EnableIRQ enables the given interrupt line.
	EnableIRQ(irq int)

	// DisableIRQ disables the given interrupt line.
	DisableIRQ(irq int)

	// ClearPendingIRQ clears any latched pending state for the line.
	ClearPendingIRQ(irq int)

	// SetPriority sets the line's preemption priority (0 = highest).
	SetPriority(irq int, priority uint8)
}

// Global singletons used by core code.
var (
	bus     Bus
	irqCtrl IRQController
)

// SetBus is called by target-specific code to register its register bus.
func SetBus(b Bus) {
	bus = b
}

// MustBus returns the configured bus or panics if missing.
func MustBus() Bus {
	if bus == nil {
		panic("register bus not configured")
	}
	return bus
}

// SetIRQController is called by target-specific code to register its
// interrupt controller.
func SetIRQController(c IRQController) {
	irqCtrl = c
}

// MustIRQController returns the configured controller or panics if missing.
func MustIRQController() IRQController {
	if irqCtrl == nil {
		panic("IRQ controller not configured")
	}
	return irqCtrl
}

// reg8, reg16, and reg32 are width-typed register handles. They keep the
// configuration sequences reading like volatile register code while going
// through whatever Bus is attached.

type reg8 struct {
	bus  Bus
	addr uintptr
}

func (r reg8) Get() uint8           { return r.bus.Read8(r.addr) }
func (r reg8) Set(v uint8)          { r.bus.Write8(r.addr, v) }
func (r reg8) SetBits(m uint8)      { r.bus.Write8(r.addr, r.bus.Read8(r.addr)|m) }
func (r reg8) ClearBits(m uint8)    { r.bus.Write8(r.addr, r.bus.Read8(r.addr)&^m) }
func (r reg8) HasBits(m uint8) bool { return r.bus.Read8(r.addr)&m != 0 }

type reg16 struct {
	bus  Bus
	addr uintptr
}

func (r reg16) Get() uint16           { return r.bus.Read16(r.addr) }
func (r reg16) Set(v uint16)          { r.bus.Write16(r.addr, v) }
func (r reg16) SetBits(m uint16)      { r.bus.Write16(r.addr, r.bus.Read16(r.addr)|m) }
func (r reg16) ClearBits(m uint16)    { r.bus.Write16(r.addr, r.bus.Read16(r.addr)&^m) }
func (r reg16) HasBits(m uint16) bool { return r.bus.Read16(r.addr)&m != 0 }

type reg32 struct {
	bus  Bus
	addr uintptr
}

func (r reg32) Get() uint32           { return r.bus.Read32(r.addr) }
func (r reg32) Set(v uint32)          { r.bus.Write32(r.addr, v) }
func (r reg32) SetBits(m uint32)      { r.bus.Write32(r.addr, r.bus.Read32(r.addr)|m) }
func (r reg32) ClearBits(m uint32)    { r.bus.Write32(r.addr, r.bus.Read32(r.addr)&^m) }
func (r reg32) HasBits(m uint32) bool { return r.bus.Read32(r.addr)&m != 0 }
