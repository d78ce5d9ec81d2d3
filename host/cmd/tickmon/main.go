// tickmon watches a board running the hardware check sketch (test/hwcheck)
// and validates the stream of tick report frames it emits: one line per
// timer callback, carrying the unit, a sequence number, and the sketch's
// millisecond uptime. It flags dropped frames and callback intervals that
// drift outside tolerance.
package main

import (
	"bufio"
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"gotick/host/serial"
	"gotick/wire"
)

var (
	device    = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud      = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	expect4   = flag.Uint("expect4", 0, "Expected TC4 interval in ms (0 = don't check)")
	expect5   = flag.Uint("expect5", 0, "Expected TC5 interval in ms (0 = don't check)")
	tolerance = flag.Uint("tolerance", 5, "Allowed interval drift in ms")
	verbose   = flag.Bool("verbose", false, "Log every frame")
)

func main() {
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud
	port, err := serial.Open(cfg)
	if err != nil {
		log.WithField("device", *device).Fatalf("open serial port: %v", err)
	}
	defer port.Close()

	log.WithFields(logrus.Fields{
		"device":    *device,
		"expect4":   *expect4,
		"expect5":   *expect5,
		"tolerance": *tolerance,
	}).Info("watching tick frames")

	mon := newMonitor(log, map[uint8]uint32{
		4: uint32(*expect4),
		5: uint32(*expect5),
	}, uint32(*tolerance))

	scanner := bufio.NewScanner(port)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		report, err := wire.ParseFrame(line)
		if err != nil {
			log.WithField("line", line).Warnf("discarding frame: %v", err)
			continue
		}

		log.WithFields(logrus.Fields{
			"unit": report.Unit,
			"seq":  report.Seq,
			"ms":   report.Ms,
		}).Debug("frame")

		mon.observe(report)
	}

	if err := scanner.Err(); err != nil {
		log.Errorf("serial read: %v", err)
		os.Exit(1)
	}

	mon.summary()
}
