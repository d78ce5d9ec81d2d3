package main

import (
	"github.com/sirupsen/logrus"

	"gotick/wire"
)

// monitor tracks the frame stream per unit: sequence continuity and the
// spacing of the sketch's millisecond timestamps against the expected
// callback interval.
type monitor struct {
	log       *logrus.Logger
	expected  map[uint8]uint32 // expected interval per unit, 0 = unchecked
	tolerance uint32

	last   map[uint8]wire.Report
	frames uint64
	gaps   uint64
	drifts uint64
}

func newMonitor(log *logrus.Logger, expected map[uint8]uint32, tolerance uint32) *monitor {
	return &monitor{
		log:       log,
		expected:  expected,
		tolerance: tolerance,
		last:      make(map[uint8]wire.Report),
	}
}

func (m *monitor) observe(r wire.Report) {
	m.frames++

	prev, seen := m.last[r.Unit]
	m.last[r.Unit] = r
	if !seen {
		return
	}

	if r.Seq != prev.Seq+1 {
		m.gaps++
		m.log.WithFields(logrus.Fields{
			"unit": r.Unit,
			"prev": prev.Seq,
			"seq":  r.Seq,
		}).Warn("sequence gap: frames dropped or sketch restarted")
		// Interval math is meaningless across a gap.
		return
	}

	want := m.expected[r.Unit]
	if want == 0 {
		return
	}
	interval := r.Ms - prev.Ms
	if drift(interval, want) > m.tolerance {
		m.drifts++
		m.log.WithFields(logrus.Fields{
			"unit":     r.Unit,
			"seq":      r.Seq,
			"interval": interval,
			"want":     want,
		}).Warn("callback interval out of tolerance")
	}
}

func (m *monitor) summary() {
	m.log.WithFields(logrus.Fields{
		"frames": m.frames,
		"gaps":   m.gaps,
		"drifts": m.drifts,
	}).Info("stream ended")
}

func drift(got, want uint32) uint32 {
	if got > want {
		return got - want
	}
	return want - got
}
