package sim

import (
	"testing"

	"gotick/samd21"
)

func TestGeneratorFrequencyDividerModes(t *testing.T) {
	testCases := []struct {
		name   string
		div    uint32
		divsel bool
		want   uint32
	}{
		{"divsel 2^5", 4, true, 1024},
		{"divsel 2^1", 0, true, 16384},
		{"linear div 32", 32, false, 1024},
		{"linear div 0 counts as 1", 0, false, 32768},
	}

	for _, tc := range testCases {
		m := New()
		m.Write32(samd21.GCLK_BASE+samd21.GCLK_GENDIV,
			2<<samd21.GCLK_GENDIV_ID_Pos|tc.div<<samd21.GCLK_GENDIV_DIV_Pos)
		ctrl := samd21.GCLK_GENCTRL_GENEN |
			samd21.GCLK_GENCTRL_SRC_XOSC32K<<samd21.GCLK_GENCTRL_SRC_Pos |
			2<<samd21.GCLK_GENCTRL_ID_Pos
		if tc.divsel {
			ctrl |= samd21.GCLK_GENCTRL_DIVSEL
		}
		m.Write32(samd21.GCLK_BASE+samd21.GCLK_GENCTRL, ctrl)

		if got := m.GeneratorFrequency(2); got != tc.want {
			t.Errorf("%s: frequency = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestGeneratorDisabledReadsZeroFrequency(t *testing.T) {
	m := New()
	if got := m.GeneratorFrequency(3); got != 0 {
		t.Errorf("unprogrammed generator frequency = %d, want 0", got)
	}
}

func TestNVICLatchesWhileDisabled(t *testing.T) {
	m := New()

	fired := 0
	m.OnInterrupt(samd21.IRQ_TC4, func() { fired++ })

	// A request latched with the line disabled stays pending.
	m.pend(samd21.IRQ_TC4)
	if fired != 0 {
		t.Fatal("disabled line delivered an interrupt")
	}
	if !m.IRQPending(samd21.IRQ_TC4) {
		t.Fatal("request not latched while line disabled")
	}

	// Enabling the line delivers the latched request.
	m.EnableIRQ(samd21.IRQ_TC4)
	if fired != 1 {
		t.Fatalf("delivery on enable: fired = %d, want 1", fired)
	}
	if m.IRQPending(samd21.IRQ_TC4) {
		t.Error("pending state not consumed by delivery")
	}
}

func TestNVICClearPendingDropsRequest(t *testing.T) {
	m := New()

	fired := 0
	m.OnInterrupt(samd21.IRQ_TC5, func() { fired++ })

	m.pend(samd21.IRQ_TC5)
	m.ClearPendingIRQ(samd21.IRQ_TC5)
	m.EnableIRQ(samd21.IRQ_TC5)

	if fired != 0 {
		t.Errorf("cleared request still delivered: fired = %d", fired)
	}
}

func TestSyncViolationDetection(t *testing.T) {
	m := New()

	// Back-to-back synchronized writes with no intervening STATUS poll
	// must be flagged.
	m.Write16(samd21.TC4_BASE+samd21.TC_COUNT16_CC0, 9)
	m.Write16(samd21.TC4_BASE+samd21.TC_COUNT16_CC0, 11)
	if m.SyncViolations != 1 {
		t.Errorf("SyncViolations = %d, want 1", m.SyncViolations)
	}

	// Polling STATUS until SYNCBUSY clears makes the next write clean.
	for m.Read8(samd21.TC4_BASE+samd21.TC_COUNT16_STATUS)&samd21.TC_COUNT16_STATUS_SYNCBUSY != 0 {
	}
	m.Write16(samd21.TC4_BASE+samd21.TC_COUNT16_CC0, 13)
	if m.SyncViolations != 1 {
		t.Errorf("SyncViolations after clean write = %d, want 1", m.SyncViolations)
	}
}
