// Package binreader reads fixed-width integers, byte ranges and
// null-terminated strings from an in-memory buffer.
package binreader

import (
	"bytes"
	"errors"
	"io"
	"io/ioutil"
	"os"

	"github.com/tommy351/binreader/internal/reader"
)

const maxInt = int(^uint(0) >> 1)

// Reader is a cursor over a byte buffer which is owned by the reader and never
// modified after construction.
//
// ReadBytes, the integer reads and Advance move the position by the requested
// size whether or not the read succeeds. Seek and Advance never validate the
// position; an invalid position is only reported by the next read. Advancing
// past the maximum int wraps around to a negative position.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	buf   *reader.Buffer
	order ByteOrder
}

// NewReader returns a Reader over a copy of data.
func NewReader(data []byte) *Reader {
	buf := make([]byte, len(data))
	copy(buf, data)

	return newReader(buf)
}

// NewReaderFromBuffer returns a Reader over a copy of the unread bytes of buf.
// buf is not drained.
func NewReaderFromBuffer(buf *bytes.Buffer) *Reader {
	return NewReader(buf.Bytes())
}

// NewReaderFromStream reads r until EOF and returns a Reader over the data.
func NewReaderFromStream(r io.Reader) (*Reader, error) {
	return readSource("", r)
}

// Open reads the whole file at path into a new Reader.
func Open(path string) (*Reader, error) {
	file, err := os.Open(path)

	if err != nil {
		return nil, SourceError{Path: path, Err: err}
	}

	defer file.Close()

	return readSource(path, file)
}

func readSource(path string, r io.Reader) (*Reader, error) {
	data, err := ioutil.ReadAll(r)

	if err != nil {
		return nil, SourceError{Path: path, Err: err}
	}

	return newReader(data), nil
}

func newReader(data []byte) *Reader {
	return &Reader{
		buf:   reader.NewBuffer(data),
		order: BigEndian,
	}
}

func (r *Reader) ByteOrder() ByteOrder {
	return r.order
}

// SetByteOrder changes the byte order of subsequent reads.
func (r *Reader) SetByteOrder(order ByteOrder) {
	r.order = order
}

func (r *Reader) Position() int {
	return r.buf.Offset()
}

// Len returns the size of the buffer.
func (r *Reader) Len() int {
	return r.buf.Len()
}

// Remaining returns the number of bytes after the position. It is negative
// when the position is past the end.
func (r *Reader) Remaining() int {
	return r.buf.Len() - r.buf.Offset()
}

// Seek moves the position to pos.
func (r *Reader) Seek(pos int) {
	r.buf.SetOffset(pos)
}

// Advance moves the position forward by n bytes.
func (r *Reader) Advance(n int) {
	r.buf.SkipBytes(n)
}

// Align rounds the position up to the next multiple of boundary.
func (r *Reader) Align(boundary int) error {
	if boundary <= 0 {
		return ErrInvalidAlignment
	}

	pos := r.buf.Offset()

	if rem := pos % boundary; rem > 0 {
		if pos > maxInt-(boundary-rem) {
			return ErrPositionOverflow
		}

		pos += boundary - rem
	} else if rem < 0 {
		pos -= rem
	}

	r.buf.SetOffset(pos)
	return nil
}

// ReadBytes returns the next n bytes. The returned slice shares memory with the
// reader and must not be modified. A negative n fails without moving the
// position.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	buf, err := r.buf.ReadBytes(n)

	if err != nil {
		return nil, wrapRangeError(err)
	}

	return buf, nil
}

func (r *Reader) ReadUint8() (uint8, error) {
	v, err := reader.ReadUint8(r.buf)
	return v, wrapRangeError(err)
}

func (r *Reader) ReadUint16() (uint16, error) {
	v, err := reader.ReadUint16(r.buf, r.order.binary())
	return v, wrapRangeError(err)
}

func (r *Reader) ReadUint32() (uint32, error) {
	v, err := reader.ReadUint32(r.buf, r.order.binary())
	return v, wrapRangeError(err)
}

func (r *Reader) ReadUint64() (uint64, error) {
	v, err := reader.ReadUint64(r.buf, r.order.binary())
	return v, wrapRangeError(err)
}

func (r *Reader) ReadInt8() (int8, error) {
	v, err := reader.ReadInt8(r.buf)
	return v, wrapRangeError(err)
}

func (r *Reader) ReadInt16() (int16, error) {
	v, err := reader.ReadInt16(r.buf, r.order.binary())
	return v, wrapRangeError(err)
}

func (r *Reader) ReadInt32() (int32, error) {
	v, err := reader.ReadInt32(r.buf, r.order.binary())
	return v, wrapRangeError(err)
}

func (r *Reader) ReadInt64() (int64, error) {
	v, err := reader.ReadInt64(r.buf, r.order.binary())
	return v, wrapRangeError(err)
}

func wrapRangeError(err error) error {
	var rangeErr reader.RangeError

	if errors.As(err, &rangeErr) {
		return OutOfRangeError{
			Offset: rangeErr.Offset,
			Size:   rangeErr.Size,
			Length: rangeErr.Length,
		}
	}

	return err
}
