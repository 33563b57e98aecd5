package binreader

import (
	"errors"
	"fmt"
)

// ErrInvalidAlignment is returned by Align when the boundary is not positive.
var ErrInvalidAlignment = errors.New("alignment boundary must be positive")

// ErrPositionOverflow is returned by Align when the aligned position does not
// fit in an int.
var ErrPositionOverflow = errors.New("aligned position overflows int")

// OutOfRangeError is returned when a read extends past either end of the
// buffer. The position has already been moved by Size when this is returned
// from ReadBytes or an integer read.
type OutOfRangeError struct {
	Offset int
	Size   int
	Length int
}

func (o OutOfRangeError) Error() string {
	return fmt.Sprintf("read of %d bytes at offset %d is out of range for buffer length %d", o.Size, o.Offset, o.Length)
}

// UnterminatedStringError is returned when no null byte is found between the
// offset and the end of the buffer.
type UnterminatedStringError struct {
	Offset int
}

func (u UnterminatedStringError) Error() string {
	return fmt.Sprintf("unterminated string at offset %d", u.Offset)
}

// InvalidEncodingError is returned when a null-terminated string is not valid
// UTF-8.
type InvalidEncodingError struct {
	Offset int
	Length int
}

func (i InvalidEncodingError) Error() string {
	return fmt.Sprintf("invalid UTF-8 string of length %d at offset %d", i.Length, i.Offset)
}

// SourceError is returned when the source of a reader cannot be read.
type SourceError struct {
	Path string
	Err  error
}

func (s SourceError) Error() string {
	if s.Path == "" {
		return fmt.Sprintf("failed to read source: %v", s.Err)
	}

	return fmt.Sprintf("failed to read source %q: %v", s.Path, s.Err)
}

func (s SourceError) Unwrap() error {
	return s.Err
}
