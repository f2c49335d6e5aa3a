package nft

// NotAvailable is substituted for any display value the upstream response did not provide.
const NotAvailable = "N/A"

// DisplayRecord is the display-ready projection of an upstream NFT response.
// Every string field holds either a concrete value or NotAvailable.
type DisplayRecord struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	TokenName       string `json:"token_name"`
	TokenType       string `json:"token_type"`
	ContractAddress string `json:"contract_address"`
	RarityRank      string `json:"rarity_rank"`
	RarityScore     string `json:"rarity_score"`
	// ImageURL is only meaningful when ImageAvailable is true.
	ImageURL       string `json:"image_url,omitempty"`
	ImageAvailable bool   `json:"image_available"`
	PriceUSD       string `json:"price_usd"`
	PriceNative    string `json:"price_native"`
}

// SummaryRow is a single labelled value in a record summary.
type SummaryRow struct {
	Label string
	Value string
}

// Summary lists the record's key facts in display order.
// Rarity rows are left out when the upstream service had no rarity data.
func (r DisplayRecord) Summary() []SummaryRow {
	rows := []SummaryRow{
		{Label: "Id", Value: r.ID},
		{Label: "Token Name", Value: r.TokenName},
		{Label: "Token Type", Value: r.TokenType},
		{Label: "Contract", Value: r.ContractAddress},
	}

	if r.RarityRank != NotAvailable {
		rows = append(rows, SummaryRow{Label: "Rarity Rank", Value: r.RarityRank})
	}
	if r.RarityScore != NotAvailable {
		rows = append(rows, SummaryRow{Label: "Rarity Score", Value: r.RarityScore})
	}

	return append(rows,
		SummaryRow{Label: "Recent Price (USD)", Value: r.PriceUSD},
		SummaryRow{Label: "Recent Price", Value: r.PriceNative},
	)
}
