// Package wire defines the line-oriented report frame the on-hardware check
// sketch emits once per timer callback and the host monitor consumes. A
// frame is a single ASCII line:
//
//	tick u=<4|5> seq=<n> ms=<n>*<crc16 hex>
//
// The checksum covers everything before the '*'. The encode path avoids fmt
// so the sketch can build frames cheaply; parsing happens on the host and
// uses the standard library freely.
package wire

import (
	"fmt"
	"strconv"
	"strings"
)

// Report is one callback observation: which unit fired, its sequence number
// since boot, and the sketch's millisecond uptime when the main loop drained
// the event.
type Report struct {
	Unit uint8 // 4 or 5
	Seq  uint32
	Ms   uint32
}

const framePrefix = "tick "

// AppendFrame appends the framed, checksummed line for r to buf and returns
// the extended slice. No allocation beyond buf growth.
func AppendFrame(buf []byte, r Report) []byte {
	start := len(buf)
	buf = append(buf, framePrefix...)
	buf = append(buf, "u="...)
	buf = appendUint(buf, uint32(r.Unit))
	buf = append(buf, " seq="...)
	buf = appendUint(buf, r.Seq)
	buf = append(buf, " ms="...)
	buf = appendUint(buf, r.Ms)

	crc := CRC16(buf[start:])
	buf = append(buf, '*')
	buf = appendHex16(buf, crc)
	buf = append(buf, '\n')
	return buf
}

func appendUint(buf []byte, n uint32) []byte {
	if n == 0 {
		return append(buf, '0')
	}
	var tmp [10]byte
	pos := len(tmp)
	for n > 0 {
		pos--
		tmp[pos] = byte('0' + n%10)
		n /= 10
	}
	return append(buf, tmp[pos:]...)
}

const hexDigits = "0123456789ABCDEF"

func appendHex16(buf []byte, v uint16) []byte {
	return append(buf,
		hexDigits[v>>12&0xF],
		hexDigits[v>>8&0xF],
		hexDigits[v>>4&0xF],
		hexDigits[v&0xF])
}

// ParseFrame parses one frame line (with or without the trailing newline),
// verifies its checksum, and returns the report.
func ParseFrame(line string) (Report, error) {
	line = strings.TrimRight(line, "\r\n")

	star := strings.LastIndexByte(line, '*')
	if star < 0 {
		return Report{}, fmt.Errorf("no checksum delimiter in %q", line)
	}
	payload, sum := line[:star], line[star+1:]

	want, err := strconv.ParseUint(sum, 16, 16)
	if err != nil {
		return Report{}, fmt.Errorf("bad checksum field %q: %w", sum, err)
	}
	if got := CRC16([]byte(payload)); got != uint16(want) {
		return Report{}, fmt.Errorf("checksum mismatch: frame says %04X, computed %04X", want, got)
	}

	if !strings.HasPrefix(payload, framePrefix) {
		return Report{}, fmt.Errorf("not a tick frame: %q", payload)
	}

	var r Report
	for _, field := range strings.Fields(payload[len(framePrefix):]) {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return Report{}, fmt.Errorf("malformed field %q", field)
		}
		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return Report{}, fmt.Errorf("field %s: %w", key, err)
		}
		switch key {
		case "u":
			if n != 4 && n != 5 {
				return Report{}, fmt.Errorf("unknown unit %d", n)
			}
			r.Unit = uint8(n)
		case "seq":
			r.Seq = uint32(n)
		case "ms":
			r.Ms = uint32(n)
		default:
			return Report{}, fmt.Errorf("unknown field %q", key)
		}
	}
	if r.Unit == 0 {
		return Report{}, fmt.Errorf("frame missing unit: %q", line)
	}
	return r, nil
}
