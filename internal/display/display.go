package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/jrh3k5/nft-price-checker/internal/lookup"
	"github.com/jrh3k5/nft-price-checker/internal/nft"
)

const (
	// Title heads every rendered result.
	Title = "NFT Price Checker"

	imageUnavailable = "[image not available]"
	loadingText      = "Checking recent price..."
)

// Renderer turns lookup states into terminal text.
type Renderer struct {
	title   lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	failure lipgloss.Style
	border  lipgloss.Style
}

// NewRenderer creates a Renderer whose colour support is detected from w.
func NewRenderer(w io.Writer) *Renderer {
	renderer := lipgloss.NewRenderer(w)

	return &Renderer{
		title:   renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		label:   renderer.NewStyle().Bold(true),
		muted:   renderer.NewStyle().Faint(true),
		failure: renderer.NewStyle().Foreground(lipgloss.Color("9")),
		border:  renderer.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Render renders the state. Idle renders nothing.
func (r *Renderer) Render(state lookup.State) string {
	switch state.Status() {
	case lookup.StatusLoading:
		return r.muted.Render(loadingText)
	case lookup.StatusSuccess:
		record, _ := state.Record()

		return r.renderRecord(record)
	case lookup.StatusFailure:
		message, _ := state.Message()

		return r.failure.Render(message)
	default:
		return ""
	}
}

func (r *Renderer) renderRecord(record nft.DisplayRecord) string {
	var sb strings.Builder
	sb.WriteString(r.title.Render(Title))
	sb.WriteString("\n\n")
	sb.WriteString(r.label.Render(record.Name))
	sb.WriteString("\n")

	if record.ImageAvailable {
		sb.WriteString("Image: " + record.ImageURL)
	} else {
		sb.WriteString(r.muted.Render(imageUnavailable))
	}
	sb.WriteString("\n")

	sb.WriteString(Headline(record))
	sb.WriteString("\n")

	rows := make([][]string, 0, len(record.Summary()))
	for _, row := range record.Summary() {
		rows = append(rows, []string{row.Label, row.Value})
	}

	summary := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.border).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.label.Padding(0, 1)
			}

			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("Field", "Value").
		Rows(rows...)
	sb.WriteString(summary.String())

	return sb.String()
}

// Headline summarizes a record on one line, e.g.
// "Id: 1 | Token Name: Apes | Rarity: 5 | Recent Price: $12.30 (0.00456 ETH)".
func Headline(record nft.DisplayRecord) string {
	parts := []string{
		"Id: " + record.ID,
		"Token Name: " + record.TokenName,
	}

	if record.RarityRank != nft.NotAvailable {
		parts = append(parts, "Rarity: "+record.RarityRank)
	}

	price := record.PriceUSD
	if price != nft.NotAvailable {
		price = "$" + price
	}

	return strings.Join(parts, " | ") + fmt.Sprintf(" | Recent Price: %s (%s)", price, record.PriceNative)
}

type jsonFailure struct {
	Error string `json:"error"`
}

// WriteJSON writes a finished state as JSON: the record on success, or an error object on failure.
func WriteJSON(w io.Writer, state lookup.State) error {
	var payload any
	switch state.Status() {
	case lookup.StatusSuccess:
		record, _ := state.Record()
		payload = record
	case lookup.StatusFailure:
		message, _ := state.Message()
		payload = jsonFailure{Error: message}
	default:
		return fmt.Errorf("cannot write a %s lookup as JSON", state.Status())
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		return fmt.Errorf("failed to encode lookup result as JSON: %w", err)
	}

	return nil
}
