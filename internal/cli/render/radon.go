package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/witnet/witnet-evm/internal/usecase"
)

// RadonRenderer prints the ABI tuple of a Radon asset as JSON
type RadonRenderer struct {
	out io.Writer
}

var _ Renderer[*usecase.EncodeRadonAssetResult] = (*RadonRenderer)(nil)

// NewRadonRenderer creates a new radon renderer
func NewRadonRenderer(out io.Writer) *RadonRenderer {
	return &RadonRenderer{out: out}
}

func (r *RadonRenderer) Render(result *usecase.EncodeRadonAssetResult) error {
	encoded, err := json.Marshal(result.Encoded)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", result.Kind, err)
	}
	fmt.Fprintln(r.out, string(encoded))
	return nil
}
