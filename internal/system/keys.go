package system

import "encoding/binary"

// Linux input-event-codes.h
const (
	evKey = 0x01

	KeyF1 = 59
	KeyF2 = 60
	KeyF3 = 61
	KeyF4 = 62
	KeyF5 = 63
)

// KeyBindings maps a key code to the action run when it is pressed.
type KeyBindings map[uint16]func()

// keyPresses extracts the codes of key-down events from a buffer of raw
// input_event records. timevalSize is the platform size of struct timeval.
func keyPresses(buf []byte, timevalSize int) []uint16 {
	eventSize := timevalSize + 2 + 2 + 4
	var codes []uint16
	for off := 0; off+eventSize <= len(buf); off += eventSize {
		rec := buf[off : off+eventSize]
		typ := binary.LittleEndian.Uint16(rec[timevalSize : timevalSize+2])
		code := binary.LittleEndian.Uint16(rec[timevalSize+2 : timevalSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[timevalSize+4 : timevalSize+8]))
		if typ == evKey && value == 1 {
			codes = append(codes, code)
		}
	}
	return codes
}
