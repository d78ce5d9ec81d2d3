//go:build atsamd21

// hwcheck is the on-hardware half of the integration test. It runs both
// timer units in milliseconds mode (TC4 at 1000 ms, TC5 at 1500 ms) and
// emits one checksummed tick frame per callback over the serial monitor.
// Run host/cmd/tickmon against the board:
//
//	tickmon -device /dev/ttyACM0 -expect4 1000 -expect5 1500
//
// The callbacks only bump a sequence counter; the main loop notices the
// change, timestamps it, and writes the frame. Frame timing therefore
// includes main-loop latency, which is why tickmon takes a tolerance.
package main

import (
	"machine"
	"time"

	"gotick/core"
	_ "gotick/targets/atsamd21"
	"gotick/wire"
)

const (
	tc4PeriodMs = 1000
	tc5PeriodMs = 1500
)

// Sequence counters, written only by their unit's callback.
var (
	tc4Seq uint32
	tc5Seq uint32
)

func main() {
	start := time.Now()

	core.Timers.Configure(core.Config{Resolution: core.Milliseconds})
	core.Timers.SetCallback(core.TC4, func() { tc4Seq++ })
	core.Timers.SetCallback(core.TC5, func() { tc5Seq++ })
	core.Timers.Start(core.TC4, tc4PeriodMs, false)
	core.Timers.Start(core.TC5, tc5PeriodMs, false)

	var sent4, sent5 uint32
	buf := make([]byte, 0, 64)

	for {
		now := uint32(time.Since(start).Milliseconds())

		if seq := tc4Seq; seq != sent4 {
			sent4 = seq
			buf = wire.AppendFrame(buf[:0], wire.Report{Unit: 4, Seq: seq, Ms: now})
			machine.Serial.Write(buf)
		}
		if seq := tc5Seq; seq != sent5 {
			sent5 = seq
			buf = wire.AppendFrame(buf[:0], wire.Report{Unit: 5, Seq: seq, Ms: now})
			machine.Serial.Write(buf)
		}

		time.Sleep(time.Millisecond)
	}
}
