package lookup_test

import (
	"github.com/jrh3k5/nft-price-checker/internal/lookup"
	"github.com/jrh3k5/nft-price-checker/internal/nft"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("State", func() {
	It("only exposes the data of the active variant", func() {
		success := lookup.Success(nft.DisplayRecord{Name: "x"})
		_, hasMessage := success.Message()
		Expect(hasMessage).To(BeFalse())

		record, hasRecord := success.Record()
		Expect(hasRecord).To(BeTrue())
		Expect(record.Name).To(Equal("x"))

		failure := lookup.Failure("nope")
		_, hasRecord = failure.Record()
		Expect(hasRecord).To(BeFalse())
		Expect(failure.String()).To(Equal("failure: nope"))

		for _, state := range []lookup.State{lookup.Idle(), lookup.Loading()} {
			_, hasRecord = state.Record()
			_, hasMessage = state.Message()
			Expect(hasRecord).To(BeFalse())
			Expect(hasMessage).To(BeFalse())
		}
	})
})
