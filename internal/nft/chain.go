package nft

// Chain identifies the blockchain network a lookup targets.
type Chain string

const (
	ChainEthereum Chain = "eth-main"
	ChainArbitrum Chain = "arbitrum-main"
	ChainOptimism Chain = "optimism-main"
	ChainPolygon  Chain = "poly-main"
	ChainBSC      Chain = "bsc-main"
	ChainGoerli   Chain = "eth-goerli"

	// DefaultChain is used when no chain is given.
	DefaultChain = ChainEthereum
)

var supportedChains = []Chain{
	ChainEthereum,
	ChainArbitrum,
	ChainOptimism,
	ChainPolygon,
	ChainBSC,
	ChainGoerli,
}

// SupportedChains returns the chains the upstream service can be queried for, in display order.
func SupportedChains() []Chain {
	out := make([]Chain, len(supportedChains))
	copy(out, supportedChains)

	return out
}

// IsSupported reports whether the chain is one of SupportedChains.
func (c Chain) IsSupported() bool {
	for _, supported := range supportedChains {
		if c == supported {
			return true
		}
	}

	return false
}

func (c Chain) String() string {
	return string(c)
}
