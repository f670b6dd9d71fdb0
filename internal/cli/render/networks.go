package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/witnet/witnet-evm/internal/domain"
	"github.com/witnet/witnet-evm/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out   io.Writer
	color bool
}

var _ Renderer[*usecase.ListNetworksResult] = (*NetworksRenderer)(nil)

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, color bool) *NetworksRenderer {
	return &NetworksRenderer{
		out:   out,
		color: color,
	}
}

// Render lists networks grouped by ecosystem, in table order
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No supported networks match")
		return nil
	}

	title := cases.Title(language.English)
	groupStyle := color.New(color.FgHiCyan, color.Bold)
	mainnetStyle := color.New(color.FgGreen)
	testnetStyle := color.New(color.FgYellow)

	var (
		order  []string
		groups = make(map[string][]domain.NetworkConfig)
	)
	for _, network := range result.Networks {
		ecosystem := ecosystemOf(network.Name)
		if _, ok := groups[ecosystem]; !ok {
			order = append(order, ecosystem)
		}
		groups[ecosystem] = append(groups[ecosystem], network)
	}

	for i, ecosystem := range order {
		if i > 0 {
			fmt.Fprintln(r.out)
		}
		fmt.Fprintln(r.out, paint(r.color, groupStyle, title.String(ecosystem)))

		t := newTable("EVM NETWORK", "CHAIN ID", "SYMBOL", "KIND")
		for _, network := range groups[ecosystem] {
			kind := paint(r.color, testnetStyle, "testnet")
			if network.Mainnet {
				kind = paint(r.color, mainnetStyle, "mainnet")
			}
			symbol := network.Symbol
			if symbol == "" {
				symbol = domain.DefaultNetworkSymbol
			}
			t.AppendRow(table.Row{network.Name, network.NetworkID.String(), symbol, kind})
		}
		fmt.Fprintln(r.out, t.Render())
	}

	return nil
}

// ecosystemOf returns the leading segment of a network name, "polygon" for "polygon:amoy"
func ecosystemOf(name string) string {
	ecosystem, _, _ := strings.Cut(name, ":")
	return ecosystem
}
