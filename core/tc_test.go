package core_test

import (
	"testing"

	"gotick/core"
	"gotick/samd21"
)

func TestStartSetsCompareAndEnable(t *testing.T) {
	periods := []uint16{1, 2, 10, 1000, 65535}

	for _, p := range periods {
		m := newMachine(t)
		core.Timers.Configure(core.Config{})

		core.Timers.Start(core.TC4, p, false)

		if got := m.Compare(0); got != p-1 {
			t.Errorf("period %d: CC0 = %d, want %d", p, got, p-1)
		}
		if !m.Enabled(0) {
			t.Errorf("period %d: enable bit not set", p)
		}
		if !m.OverflowEnabled(0) {
			t.Errorf("period %d: overflow interrupt not enabled", p)
		}
		if !m.IRQEnabled(samd21.IRQ_TC4) {
			t.Errorf("period %d: TC4 vector not enabled", p)
		}
		if prio := m.Priority(samd21.IRQ_TC4); prio != 0 {
			t.Errorf("period %d: TC4 vector priority = %d, want 0", p, prio)
		}
		if m.SyncViolations != 0 {
			t.Errorf("period %d: %d synchronization violations", p, m.SyncViolations)
		}
	}
}

func TestStartPeriodZeroUnderflows(t *testing.T) {
	m := newMachine(t)
	core.Timers.Configure(core.Config{Resolution: core.Milliseconds})

	calls := 0
	core.Timers.SetCallback(core.TC4, func() { calls++ })

	// period 0 is the documented edge case: the compare value underflows
	// to 65535 and the cycle becomes 65536 ticks. Not clamped.
	core.Timers.Start(core.TC4, 0, false)

	if got := m.Compare(0); got != 65535 {
		t.Fatalf("CC0 = %d, want 65535", got)
	}

	m.AdvanceMillis(65535)
	if calls != 0 {
		t.Fatalf("callback fired after 65535 ticks, want 65536")
	}
	m.AdvanceMillis(1)
	if calls != 1 {
		t.Fatalf("callback count after 65536 ticks = %d, want 1", calls)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	m := newMachine(t)
	core.Timers.Configure(core.Config{})
	core.Timers.Start(core.TC5, 10, false)

	core.Timers.Stop(core.TC5)
	once := m.SnapshotTC(1)

	core.Timers.Stop(core.TC5)
	twice := m.SnapshotTC(1)

	if once != twice {
		t.Errorf("second stop changed register state:\nafter one:  %+v\nafter two: %+v", once, twice)
	}
	if !once.Stopped {
		t.Error("unit not stopped after stop")
	}
	if once.IntEn&samd21.TC_COUNT16_INT_OVF != 0 {
		t.Error("overflow interrupt still enabled after stop")
	}
	if m.IRQEnabled(samd21.IRQ_TC5) {
		t.Error("TC5 vector still enabled after stop")
	}
}

func TestUnitsCountIndependently(t *testing.T) {
	m := newMachine(t)
	core.Timers.Configure(core.Config{Resolution: core.Milliseconds})

	var tc4Calls, tc5Calls int
	core.Timers.SetCallback(core.TC4, func() { tc4Calls++ })
	core.Timers.SetCallback(core.TC5, func() { tc5Calls++ })

	core.Timers.Start(core.TC4, 2, false)
	core.Timers.Start(core.TC5, 3, false)

	m.AdvanceMillis(6)

	if tc4Calls != 3 {
		t.Errorf("TC4 callbacks = %d, want 3", tc4Calls)
	}
	if tc5Calls != 2 {
		t.Errorf("TC5 callbacks = %d, want 2", tc5Calls)
	}
}

func TestCountTracksTicks(t *testing.T) {
	m := newMachine(t)
	core.Timers.Configure(core.Config{Resolution: core.Milliseconds})
	core.Timers.Start(core.TC4, 1000, false)

	m.AdvanceMillis(250)

	if got := core.Timers.Count(core.TC4); got != 250 {
		t.Errorf("Count = %d, want 250", got)
	}
	if m.SyncViolations != 0 {
		t.Errorf("synchronized COUNT read raced: %d violations", m.SyncViolations)
	}
}

func TestOverflowFlagClearedAfterCallback(t *testing.T) {
	m := newMachine(t)
	core.Timers.Configure(core.Config{Resolution: core.Milliseconds})

	sawFlag := false
	core.Timers.SetCallback(core.TC4, func() {
		// The dispatch contract acknowledges the flag only after the
		// callback returns.
		sawFlag = m.OverflowPending(0)
	})
	core.Timers.Start(core.TC4, 5, false)

	m.AdvanceMillis(5)

	if !sawFlag {
		t.Error("overflow flag already cleared while callback was running")
	}
	if m.OverflowPending(0) {
		t.Error("overflow flag not acknowledged after dispatch")
	}
}
