//go:build atsamd21

package atsamd21

import (
	"runtime/interrupt"

	"gotick/core"
	"gotick/samd21"
)

func init() {
	core.SetBus(mmioBus{})
	core.SetIRQController(nvic{})
}

// The vector table entries for TC4 and TC5. The handlers stay registered for
// the life of the program; the driver gates delivery at the NVIC.
var (
	tc4Vector = interrupt.New(samd21.IRQ_TC4, handleTC4)
	tc5Vector = interrupt.New(samd21.IRQ_TC5, handleTC5)
)

func handleTC4(interrupt.Interrupt) {
	core.HandleTC4()
}

func handleTC5(interrupt.Interrupt) {
	core.HandleTC5()
}
