package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/witnet/witnet-evm/internal/usecase"
)

// ReportRenderer prints the encodings of a data push report
type ReportRenderer struct {
	out   io.Writer
	color bool
}

var _ Renderer[*usecase.EncodeReportResult] = (*ReportRenderer)(nil)

// NewReportRenderer creates a new report renderer
func NewReportRenderer(out io.Writer, color bool) *ReportRenderer {
	return &ReportRenderer{out: out, color: color}
}

// Render prints the tuple as JSON, then the message and digest when available
func (r *ReportRenderer) Render(result *usecase.EncodeReportResult) error {
	tuple, err := json.Marshal(result.Tuple)
	if err != nil {
		return fmt.Errorf("failed to marshal report tuple: %w", err)
	}

	label := color.New(color.Bold)
	fmt.Fprintf(r.out, "%s %s\n", paint(r.color, label, "Tuple: "), tuple)
	if len(result.Message) > 0 {
		fmt.Fprintf(r.out, "%s %s\n", paint(r.color, label, "Message:"), result.Message)
		fmt.Fprintf(r.out, "%s %s\n", paint(r.color, label, "Digest: "), result.Digest.Hex())
	}
	return nil
}
