package numeric_test

import (
	"encoding/json"
	"time"

	"github.com/jrh3k5/nft-price-checker/internal/numeric"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FormatFixed", func() {
	It("formats strings and numbers to fixed places", func() {
		cases := []struct {
			in     any
			places int32
			exp    string
		}{
			{"12.3", 2, "12.30"},
			{" 7 ", 2, "7.00"},
			{"0.00456", 5, "0.00456"},
			{json.Number("1.5"), 5, "1.50000"},
			{float64(3), 2, "3.00"},
			{"1.005", 2, "1.01"},
		}

		for _, c := range cases {
			s, err := numeric.FormatFixed(c.in, c.places)
			Expect(err).ToNot(HaveOccurred())
			Expect(s).To(Equal(c.exp))
		}
	})

	It("rejects values that are not numeric", func() {
		for _, in := range []any{"", "abc", "12abc", true, nil, map[string]any{}} {
			_, err := numeric.FormatFixed(in, 2)
			Expect(err).To(HaveOccurred(), "expected an error for %v", in)
		}
	})
	It("rejects values too large or too precise to format", func() {
		for _, in := range []any{"1e20000000", "1e-20000000", json.Number("1e2000000000"), "1e65", float64(1e300)} {
			start := time.Now()
			_, err := numeric.FormatFixed(in, 2)
			Expect(err).To(MatchError(numeric.ErrOutOfRange), "expected an out of range error for %v", in)
			Expect(time.Since(start)).To(BeNumerically("<", time.Second))
		}
	})

	It("accepts values within range", func() {
		s, err := numeric.FormatFixed("1e20", 2)
		Expect(err).ToNot(HaveOccurred())
		Expect(s).To(Equal("100000000000000000000.00"))
	})
})
