package main

import (
	"bytes"
	"os"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/tommy351/binreader"
)

var _ = Describe("OpenSource", func() {
	It("reads a file", func() {
		r, err := OpenSource(SourceOptions{Path: "../../fixtures/u16_pair.bin"})
		Expect(err).NotTo(HaveOccurred())
		Expect(r.ReadUint16()).To(Equal(uint16(1)))
		Expect(r.ReadUint16()).To(Equal(uint16(2)))
	})

	It("reads stdin when no path is given", func() {
		r, err := OpenSource(SourceOptions{Stdin: bytes.NewReader([]byte{0x00, 0x01})})
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Len()).To(Equal(2))
	})

	It("returns SourceError for a missing file", func() {
		_, err := OpenSource(SourceOptions{Path: "../../fixtures/missing.bin"})
		Expect(err).To(BeAssignableToTypeOf(binreader.SourceError{}))
	})

	It("decompresses LZF input", func() {
		// A single literal run of three bytes.
		compressed := []byte{0x02, 'a', 'b', 'c'}

		r, err := OpenSource(SourceOptions{
			Stdin:   bytes.NewReader(compressed),
			LZFSize: 3,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Len()).To(Equal(3))
		Expect(r.ReadBytes(3)).To(Equal([]byte("abc")))
	})

	It("fails on a truncated LZF stream", func() {
		_, err := OpenSource(SourceOptions{
			Stdin:   bytes.NewReader([]byte{0x05, 'a'}),
			LZFSize: 6,
		})
		Expect(err).To(MatchError(HavePrefix("failed to decompress LZF")))
	})

	It("requires a Redis key", func() {
		_, err := OpenSource(SourceOptions{RedisAddr: "localhost:6379"})
		Expect(err).To(MatchError("redis key is required"))
	})

	When("REDIS_ADDR is set", func() {
		It("reads a missing key as a source error", func() {
			addr := os.Getenv("REDIS_ADDR")

			if addr == "" {
				Skip("REDIS_ADDR is not set")
			}

			_, err := OpenSource(SourceOptions{RedisAddr: addr, RedisKey: "binreader-missing-key"})
			Expect(err).To(BeAssignableToTypeOf(binreader.SourceError{}))
		})
	})
})
