package reader

import "fmt"

// RangeError is returned when a read does not fit inside the buffer.
type RangeError struct {
	Offset int
	Size   int
	Length int
}

func (r RangeError) Error() string {
	return fmt.Sprintf("read of %d bytes at offset %d is out of range for length %d", r.Size, r.Offset, r.Length)
}

// Buffer is a cursor over an in-memory byte slice.
//
// The offset is moved before the range is checked, so a failed read still
// consumes n bytes. Negative sizes are rejected without moving the offset.
type Buffer struct {
	offset int
	data   []byte
}

func NewBuffer(data []byte) *Buffer {
	return &Buffer{
		data: data,
	}
}

func (b *Buffer) Offset() int {
	return b.offset
}

func (b *Buffer) SetOffset(offset int) {
	b.offset = offset
}

func (b *Buffer) Len() int {
	return len(b.data)
}

// Data returns the underlying slice starting at from, or nil when from is out
// of range.
func (b *Buffer) Data(from int) []byte {
	if from < 0 || from > len(b.data) {
		return nil
	}

	return b.data[from:]
}

func (b *Buffer) ReadBytes(n int) ([]byte, error) {
	offset := b.offset

	if n < 0 {
		return nil, RangeError{Offset: offset, Size: n, Length: len(b.data)}
	}

	b.SkipBytes(n)

	if !b.inRange(offset, n) {
		return nil, RangeError{Offset: offset, Size: n, Length: len(b.data)}
	}

	return b.data[offset : offset+n : offset+n], nil
}

func (b *Buffer) SkipBytes(n int) {
	b.offset += n
}

func (b *Buffer) inRange(offset, n int) bool {
	return offset >= 0 && n <= len(b.data)-offset
}
