package reader

import (
	"encoding/binary"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("decode helpers", func() {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x88}

	DescribeTable("big-endian", func(read func(BytesReader) (interface{}, error), expected interface{}) {
		Expect(read(NewBuffer(data))).To(Equal(expected))
	},
		Entry("uint8", func(r BytesReader) (interface{}, error) { return ReadUint8(r) }, uint8(0x01)),
		Entry("uint16", func(r BytesReader) (interface{}, error) { return ReadUint16(r, binary.BigEndian) }, uint16(0x0102)),
		Entry("uint32", func(r BytesReader) (interface{}, error) { return ReadUint32(r, binary.BigEndian) }, uint32(0x01020304)),
		Entry("uint64", func(r BytesReader) (interface{}, error) { return ReadUint64(r, binary.BigEndian) }, uint64(0x0102030405060788)),
	)

	DescribeTable("little-endian", func(read func(BytesReader) (interface{}, error), expected interface{}) {
		Expect(read(NewBuffer(data))).To(Equal(expected))
	},
		Entry("uint16", func(r BytesReader) (interface{}, error) { return ReadUint16(r, binary.LittleEndian) }, uint16(0x0201)),
		Entry("uint32", func(r BytesReader) (interface{}, error) { return ReadUint32(r, binary.LittleEndian) }, uint32(0x04030201)),
		Entry("int64", func(r BytesReader) (interface{}, error) { return ReadInt64(r, binary.LittleEndian) }, int64(-0x77f8f9fafbfcfdff)),
	)

	It("returns the error of the underlying reader", func() {
		b := NewBuffer(data[:1])
		_, err := ReadInt16(b, binary.BigEndian)
		Expect(err).To(Equal(RangeError{Offset: 0, Size: 2, Length: 1}))
	})
})
