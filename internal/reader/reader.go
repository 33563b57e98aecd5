package reader

import (
	"encoding/binary"
)

type BytesReader interface {
	ReadBytes(n int) ([]byte, error)
}

func ReadUint8(r BytesReader) (uint8, error) {
	buf, err := r.ReadBytes(1)

	if err != nil {
		return 0, err
	}

	return buf[0], nil
}

func ReadUint16(r BytesReader, order binary.ByteOrder) (uint16, error) {
	buf, err := r.ReadBytes(2)

	if err != nil {
		return 0, err
	}

	return order.Uint16(buf), nil
}

func ReadUint32(r BytesReader, order binary.ByteOrder) (uint32, error) {
	buf, err := r.ReadBytes(4)

	if err != nil {
		return 0, err
	}

	return order.Uint32(buf), nil
}

func ReadUint64(r BytesReader, order binary.ByteOrder) (uint64, error) {
	buf, err := r.ReadBytes(8)

	if err != nil {
		return 0, err
	}

	return order.Uint64(buf), nil
}

func ReadInt8(r BytesReader) (int8, error) {
	v, err := ReadUint8(r)

	if err != nil {
		return 0, err
	}

	return int8(v), nil
}

func ReadInt16(r BytesReader, order binary.ByteOrder) (int16, error) {
	v, err := ReadUint16(r, order)

	if err != nil {
		return 0, err
	}

	return int16(v), nil
}

func ReadInt32(r BytesReader, order binary.ByteOrder) (int32, error) {
	v, err := ReadUint32(r, order)

	if err != nil {
		return 0, err
	}

	return int32(v), nil
}

func ReadInt64(r BytesReader, order binary.ByteOrder) (int64, error) {
	v, err := ReadUint64(r, order)

	if err != nil {
		return 0, err
	}

	return int64(v), nil
}
