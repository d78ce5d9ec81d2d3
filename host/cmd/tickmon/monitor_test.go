package main

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"gotick/wire"
)

func testMonitor(expect4 uint32) *monitor {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return newMonitor(log, map[uint8]uint32{4: expect4}, 5)
}

func TestMonitorCleanStream(t *testing.T) {
	m := testMonitor(1000)

	for i := uint32(0); i < 5; i++ {
		m.observe(wire.Report{Unit: 4, Seq: i, Ms: i * 1000})
	}

	if m.gaps != 0 || m.drifts != 0 {
		t.Errorf("clean stream flagged: gaps=%d drifts=%d", m.gaps, m.drifts)
	}
	if m.frames != 5 {
		t.Errorf("frames = %d, want 5", m.frames)
	}
}

func TestMonitorDetectsSequenceGap(t *testing.T) {
	m := testMonitor(1000)

	m.observe(wire.Report{Unit: 4, Seq: 1, Ms: 1000})
	m.observe(wire.Report{Unit: 4, Seq: 3, Ms: 3000})

	if m.gaps != 1 {
		t.Errorf("gaps = %d, want 1", m.gaps)
	}
	// The jump in ms across the gap must not also count as drift.
	if m.drifts != 0 {
		t.Errorf("drifts = %d, want 0 across a gap", m.drifts)
	}
}

func TestMonitorDetectsDrift(t *testing.T) {
	m := testMonitor(1000)

	m.observe(wire.Report{Unit: 4, Seq: 1, Ms: 1000})
	m.observe(wire.Report{Unit: 4, Seq: 2, Ms: 2004}) // within tolerance
	m.observe(wire.Report{Unit: 4, Seq: 3, Ms: 3020}) // 16 ms late

	if m.drifts != 1 {
		t.Errorf("drifts = %d, want 1", m.drifts)
	}
}

func TestMonitorIgnoresUncheckedUnit(t *testing.T) {
	m := testMonitor(1000)

	m.observe(wire.Report{Unit: 5, Seq: 1, Ms: 100})
	m.observe(wire.Report{Unit: 5, Seq: 2, Ms: 9999})

	if m.drifts != 0 {
		t.Errorf("unchecked unit produced drift warnings: %d", m.drifts)
	}
}

func TestMonitorTracksUnitsSeparately(t *testing.T) {
	m := testMonitor(1000)

	m.observe(wire.Report{Unit: 4, Seq: 1, Ms: 1000})
	m.observe(wire.Report{Unit: 5, Seq: 10, Ms: 1500})
	m.observe(wire.Report{Unit: 4, Seq: 2, Ms: 2000})
	m.observe(wire.Report{Unit: 5, Seq: 11, Ms: 3000})

	if m.gaps != 0 {
		t.Errorf("interleaved units produced %d gaps, want 0", m.gaps)
	}
}
