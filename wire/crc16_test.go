package wire

import "testing"

func TestCRC16Empty(t *testing.T) {
	if got := CRC16(nil); got != 0xFFFF {
		t.Errorf("CRC16(nil) = %04X, want FFFF", got)
	}
}

func TestCRC16Consistency(t *testing.T) {
	data := []byte("tick u=4 seq=17 ms=17000")

	crc1 := CRC16(data)
	crc2 := CRC16(data)

	if crc1 != crc2 {
		t.Errorf("CRC16 not consistent: first=%04X, second=%04X", crc1, crc2)
	}
}

func TestCRC16Different(t *testing.T) {
	crc1 := CRC16([]byte("tick u=4 seq=1 ms=1000"))
	crc2 := CRC16([]byte("tick u=5 seq=1 ms=1000"))

	if crc1 == crc2 {
		t.Errorf("CRC16 collision: both inputs produced %04X", crc1)
	}
}
