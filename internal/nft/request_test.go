package nft_test

import (
	"context"
	"errors"
	"net/http"

	"github.com/jrh3k5/nft-price-checker/internal/nft"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RequestBuilder", func() {
	var builder *nft.RequestBuilder

	BeforeEach(func() {
		builder = nft.NewRequestBuilder("https://nft.example.local", "apikeygoeshere")
	})

	It("builds the lookup URL and headers", func() {
		req, err := builder.Build(nft.Input{
			Chain:           nft.ChainPolygon,
			ContractAddress: "0xABC",
			TokenID:         "42",
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(req.Method()).To(Equal(http.MethodGet))
		Expect(req.URL()).To(Equal("https://nft.example.local/v1/nfts/contract/0xABC/token/42?chain=poly-main"))
		Expect(req.Headers()).To(Equal(map[string]string{
			"Accept":    "application/json",
			"X-API-KEY": "apikeygoeshere",
		}))
	})

	It("trims input and defaults the chain", func() {
		req, err := builder.Build(nft.Input{
			ContractAddress: "  0xdeadbeef\t",
			TokenID:         " 7 ",
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(req.URL()).To(Equal("https://nft.example.local/v1/nfts/contract/0xdeadbeef/token/7?chain=eth-main"))
	})

	It("keeps the base URL's own path", func() {
		req, err := nft.NewRequestBuilder("http://localhost:8080/api/", "k").Build(nft.Input{
			Chain:           nft.ChainBSC,
			ContractAddress: "0x1",
			TokenID:         "2",
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(req.URL()).To(Equal("http://localhost:8080/api/v1/nfts/contract/0x1/token/2?chain=bsc-main"))
	})

	It("keeps dot segments in the contract and token positions", func() {
		cases := []struct {
			input nft.Input
			exp   string
		}{
			{nft.Input{ContractAddress: "0xABC", TokenID: ".."}, "https://nft.example.local/v1/nfts/contract/0xABC/token/%2E%2E?chain=eth-main"},
			{nft.Input{ContractAddress: "0xABC", TokenID: "."}, "https://nft.example.local/v1/nfts/contract/0xABC/token/%2E?chain=eth-main"},
			{nft.Input{ContractAddress: "..", TokenID: "42"}, "https://nft.example.local/v1/nfts/contract/%2E%2E/token/42?chain=eth-main"},
			{nft.Input{ContractAddress: "0xABC", TokenID: "..."}, "https://nft.example.local/v1/nfts/contract/0xABC/token/...?chain=eth-main"},
		}

		for _, c := range cases {
			req, err := builder.Build(c.input)
			Expect(err).ToNot(HaveOccurred())
			Expect(req.URL()).To(Equal(c.exp))

			httpReq, err := req.HTTPRequest(context.Background())
			Expect(err).ToNot(HaveOccurred())
			Expect(httpReq.URL.String()).To(Equal(c.exp))
		}
	})

	It("escapes path separators in the input", func() {
		req, err := builder.Build(nft.Input{ContractAddress: "0xABC", TokenID: "1/../2"})
		Expect(err).ToNot(HaveOccurred())
		Expect(req.URL()).To(Equal("https://nft.example.local/v1/nfts/contract/0xABC/token/1%2F..%2F2?chain=eth-main"))
	})

	It("does not let callers mutate the built headers", func() {
		req, err := builder.Build(nft.Input{ContractAddress: "0x1", TokenID: "2"})
		Expect(err).ToNot(HaveOccurred())

		headers := req.Headers()
		headers["X-API-KEY"] = "tampered"
		Expect(req.Headers()["X-API-KEY"]).To(Equal("apikeygoeshere"))
	})

	It("produces identical requests for identical input", func() {
		input := nft.Input{Chain: nft.ChainArbitrum, ContractAddress: "0x1", TokenID: "2"}
		first, err := builder.Build(input)
		Expect(err).ToNot(HaveOccurred())
		second, err := builder.Build(input)
		Expect(err).ToNot(HaveOccurred())

		Expect(second).ToNot(BeIdenticalTo(first))
		Expect(second.URL()).To(Equal(first.URL()))
		Expect(second.Headers()).To(Equal(first.Headers()))
	})

	It("creates an HTTP request carrying the headers", func() {
		req, err := builder.Build(nft.Input{ContractAddress: "0x1", TokenID: "2"})
		Expect(err).ToNot(HaveOccurred())

		httpReq, err := req.HTTPRequest(context.Background())
		Expect(err).ToNot(HaveOccurred())
		Expect(httpReq.Method).To(Equal(http.MethodGet))
		Expect(httpReq.URL.String()).To(Equal(req.URL()))
		Expect(httpReq.Header.Get("Accept")).To(Equal("application/json"))
		Expect(httpReq.Header.Get("X-API-KEY")).To(Equal("apikeygoeshere"))
	})

	When("a required field is blank", func() {
		It("returns a missing field error", func() {
			cases := []struct {
				input nft.Input
				field string
			}{
				{nft.Input{ContractAddress: "", TokenID: "1"}, "contract_address"},
				{nft.Input{ContractAddress: "   ", TokenID: "1"}, "contract_address"},
				{nft.Input{ContractAddress: "0x1", TokenID: ""}, "token_id"},
				{nft.Input{ContractAddress: "0x1", TokenID: "\t\n"}, "token_id"},
				{nft.Input{Chain: "not-a-chain"}, "contract_address"},
			}

			for _, c := range cases {
				req, err := builder.Build(c.input)
				Expect(req).To(BeNil())

				var validationErr *nft.ValidationError
				Expect(errors.As(err, &validationErr)).To(BeTrue(), "expected a validation error for %+v", c.input)
				Expect(validationErr.Kind).To(Equal(nft.MissingField))
				Expect(validationErr.Field).To(Equal(c.field))
				Expect(validationErr.UserMessage()).ToNot(BeEmpty())
			}
		})
	})

	When("the chain is not supported", func() {
		It("returns an unsupported chain error", func() {
			for _, chain := range []nft.Chain{"eth-sepolia", "ETH-MAIN", "solana"} {
				req, err := builder.Build(nft.Input{Chain: chain, ContractAddress: "0x1", TokenID: "2"})
				Expect(req).To(BeNil())

				var validationErr *nft.ValidationError
				Expect(errors.As(err, &validationErr)).To(BeTrue())
				Expect(validationErr.Kind).To(Equal(nft.UnsupportedChain))
				Expect(validationErr.Chain).To(Equal(chain))
				Expect(validationErr.UserMessage()).To(ContainSubstring("eth-goerli"))
			}
		})
	})

	It("accepts every supported chain", func() {
		for _, chain := range nft.SupportedChains() {
			req, err := builder.Build(nft.Input{Chain: chain, ContractAddress: "0x1", TokenID: "2"})
			Expect(err).ToNot(HaveOccurred())
			Expect(req.URL()).To(HaveSuffix("?chain=" + chain.String()))
		}
	})
})
