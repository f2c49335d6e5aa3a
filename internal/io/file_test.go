package io_test

import (
	"io"
	"os"
	"path/filepath"

	iopkg "github.com/jrh3k5/nft-price-checker/internal/io"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("OpenOptional", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("reports a missing file without an error", func() {
		reader, closer, found, err := iopkg.OpenOptional(filepath.Join(dir, "missing.yaml"))
		Expect(err).ToNot(HaveOccurred())
		Expect(found).To(BeFalse())
		Expect(reader).To(BeNil())
		Expect(closer).To(BeNil())
	})

	It("opens an existing file and strips its BOM", func() {
		filePath := filepath.Join(dir, "config.yaml")
		Expect(os.WriteFile(filePath, append([]byte{0xEF, 0xBB, 0xBF}, []byte("api_key: abc")...), 0o600)).To(Succeed())

		reader, closer, found, err := iopkg.OpenOptional(filePath)
		Expect(err).ToNot(HaveOccurred())
		Expect(found).To(BeTrue())
		defer func() { _ = closer.Close() }()

		b, err := io.ReadAll(reader)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(b)).To(Equal("api_key: abc"))
	})
})

var _ = Describe("FileExists", func() {
	It("distinguishes present and absent files", func() {
		dir := GinkgoT().TempDir()
		filePath := filepath.Join(dir, "present")
		Expect(os.WriteFile(filePath, []byte("x"), 0o600)).To(Succeed())

		exists, err := iopkg.FileExists(filePath)
		Expect(err).ToNot(HaveOccurred())
		Expect(exists).To(BeTrue())

		exists, err = iopkg.FileExists(filepath.Join(dir, "absent"))
		Expect(err).ToNot(HaveOccurred())
		Expect(exists).To(BeFalse())
	})
})
