package binreader

import (
	"bytes"
	"unicode/utf8"
)

// ReadCString reads a null-terminated UTF-8 string and moves the position past
// the terminator. Once the terminator is found the position moves even if the
// string is not valid UTF-8. When no terminator is found, the position is left
// untouched.
func (r *Reader) ReadCString() (string, error) {
	offset := r.buf.Offset()

	if offset < 0 || offset > r.buf.Len() {
		return "", OutOfRangeError{Offset: offset, Size: 1, Length: r.buf.Len()}
	}

	data := r.buf.Data(offset)
	end := bytes.IndexByte(data, 0)

	if end < 0 {
		return "", UnterminatedStringError{Offset: offset}
	}

	r.buf.SkipBytes(end + 1)

	if !utf8.Valid(data[:end]) {
		return "", InvalidEncodingError{Offset: offset, Length: end}
	}

	return string(data[:end]), nil
}
