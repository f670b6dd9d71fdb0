package render

import (
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/witnet/witnet-evm/internal/domain"
	"github.com/witnet/witnet-evm/internal/usecase"
)

// QueryRenderer prints the status of a WitOracle query
type QueryRenderer struct {
	out   io.Writer
	color bool
}

var _ Renderer[*usecase.InspectQueryResult] = (*QueryRenderer)(nil)

// NewQueryRenderer creates a new query renderer
func NewQueryRenderer(out io.Writer, color bool) *QueryRenderer {
	return &QueryRenderer{out: out, color: color}
}

func (r *QueryRenderer) Render(result *usecase.InspectQueryResult) error {
	fmt.Fprintf(r.out, "Network:   %s\n", result.Network)
	fmt.Fprintf(r.out, "WitOracle: %s\n", result.WitOracle.Hex())
	if result.Registry != (common.Address{}) {
		fmt.Fprintf(r.out, "Registry:  %s\n", result.Registry.Hex())
	}
	fmt.Fprintf(r.out, "Query:     #%s\n", result.QueryID)
	fmt.Fprintf(r.out, "Status:    %s\n", paint(r.color, statusColor(result.Status), string(result.Status)))
	return nil
}

func statusColor(status domain.QueryStatus) *color.Color {
	switch status {
	case domain.QueryStatusReported, domain.QueryStatusFinalized:
		return color.New(color.FgGreen)
	case domain.QueryStatusPosted, domain.QueryStatusDelayed:
		return color.New(color.FgYellow)
	case domain.QueryStatusExpired, domain.QueryStatusDisputed:
		return color.New(color.FgRed)
	default:
		return color.New(color.Faint)
	}
}
