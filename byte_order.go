package binreader

import (
	"encoding/binary"
	"fmt"
)

// ByteOrder selects how multi-byte integers are decoded.
type ByteOrder int

const (
	// BigEndian reads the most significant byte first. It is the default.
	BigEndian ByteOrder = iota
	// LittleEndian reads the least significant byte first.
	LittleEndian
)

func (b ByteOrder) String() string {
	switch b {
	case BigEndian:
		return "big-endian"
	case LittleEndian:
		return "little-endian"
	}

	return fmt.Sprintf("ByteOrder(%d)", int(b))
}

func (b ByteOrder) binary() binary.ByteOrder {
	if b == LittleEndian {
		return binary.LittleEndian
	}

	return binary.BigEndian
}
