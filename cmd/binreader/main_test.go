package main

import (
	"bytes"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("run", func() {
	var printer *collectPrinter

	BeforeEach(func() {
		printer = &collectPrinter{}
	})

	AfterEach(func() {
		byteOrder = "big"
	})

	DescribeTable("byte order", func(order string, expected uint16) {
		byteOrder = order

		opts := SourceOptions{Stdin: bytes.NewReader([]byte{0x00, 0x01})}
		Expect(run(opts, []Step{{Op: opUint16}}, printer)).To(Succeed())
		Expect(printer.fields).To(Equal([]*Field{
			{Step: "u16", Offset: 0, Value: expected},
		}))
	},
		Entry("default", "", uint16(1)),
		Entry("big", "big", uint16(1)),
		Entry("little", "little", uint16(256)),
	)

	It("lets the layout switch back to big-endian", func() {
		byteOrder = "little"

		opts := SourceOptions{Stdin: bytes.NewReader([]byte{0x00, 0x01})}
		Expect(run(opts, []Step{{Op: opBig}, {Op: opUint16}}, printer)).To(Succeed())
		Expect(printer.fields[0].Value).To(Equal(uint16(1)))
	})

	It("rejects an unsupported byte order", func() {
		byteOrder = "middle"

		err := run(SourceOptions{Stdin: bytes.NewReader(nil)}, nil, printer)
		Expect(err).To(MatchError(`unsupported byte order "middle"`))
		Expect(printer.started).To(BeFalse())
	})
})

var _ = Describe("newPrinter", func() {
	AfterEach(func() {
		outputFormat = "json"
	})

	DescribeTable("formats", func(format string, expected interface{}) {
		outputFormat = format

		printer, err := newPrinter(&bytes.Buffer{})
		Expect(err).NotTo(HaveOccurred())
		Expect(printer).To(BeAssignableToTypeOf(expected))
	},
		Entry("json", "json", &JSONPrinter{}),
		Entry("text", "text", &TextPrinter{}),
	)

	It("rejects an unsupported format", func() {
		outputFormat = "xml"

		printer, err := newPrinter(&bytes.Buffer{})
		Expect(printer).To(BeNil())
		Expect(err).To(MatchError(`unsupported format "xml"`))
	})
})
