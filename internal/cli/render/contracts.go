package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/witnet/witnet-evm/internal/domain"
	"github.com/witnet/witnet-evm/internal/usecase"
)

var (
	networkHeaderStyle = color.New(color.FgHiCyan, color.Bold)
	keyStyle           = color.New(color.FgWhite)
	keySelectedStyle   = color.New(color.FgHiWhite, color.Bold)
	addrStyle          = color.New(color.FgBlue)
	addrSelectedStyle  = color.New(color.FgHiBlue)
	specsStyle         = color.New(color.FgGreen)
	specsSelectedStyle = color.New(color.FgHiGreen)
	classStyle         = color.New(color.FgYellow)
	classSelectedStyle = color.New(color.FgHiYellow)
	versionStyle       = color.New(color.Faint)
)

// ContractsRenderer renders the framework artifacts found on a network
type ContractsRenderer struct {
	out     io.Writer
	color   bool
	verbose bool
}

var _ Renderer[*usecase.DiscoverArtifactsResult] = (*ContractsRenderer)(nil)

// NewContractsRenderer creates a new contracts renderer. Verbose adds the
// class and version tag columns.
func NewContractsRenderer(out io.Writer, color bool, verbose bool) *ContractsRenderer {
	return &ContractsRenderer{
		out:     out,
		color:   color,
		verbose: verbose,
	}
}

// Render prints the network header, the artifacts table and, when requested,
// the templates and modals tables
func (r *ContractsRenderer) Render(result *usecase.DiscoverArtifactsResult) error {
	fmt.Fprintln(r.out, paint(r.color, networkHeaderStyle, strings.ToUpper(result.Network)))
	if result.Signer != (common.Address{}) {
		fmt.Fprintf(r.out, "Signer: %s (%s)\n", result.Signer.Hex(), result.Symbol)
	}
	fmt.Fprintln(r.out)

	if len(result.Artifacts) == 0 {
		fmt.Fprintln(r.out, "No Wit/Oracle artifacts found")
	} else {
		fmt.Fprintln(r.out, r.artifactsTable(result).Render())
	}

	if len(result.Templates) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, r.deployablesTable("WIT/ORACLE REQUEST TEMPLATE", result.Templates).Render())
	}
	if len(result.Modals) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, r.deployablesTable("WIT/ORACLE REQUEST MODAL", result.Modals).Render())
	}

	r.renderSuggestions(result.Suggestions)
	return nil
}

func (r *ContractsRenderer) artifactsTable(result *usecase.DiscoverArtifactsResult) table.Writer {
	headers := []string{"WIT/ORACLE FRAMEWORK", "EVM CONTRACT ADDRESS", "EVM SPECS"}
	if r.verbose {
		headers = append(headers, "EVM CONTRACT CLASS", "EVM VERSION TAG")
	}
	t := newTable(headers...)

	for _, record := range result.Artifacts {
		selected := result.IsSelected(record.Key)
		row := table.Row{
			paint(r.color, pick(selected, keySelectedStyle, keyStyle), record.Key),
			paint(r.color, pick(selected, addrSelectedStyle, addrStyle), record.Address.Hex()),
			paint(r.color, pick(selected, specsSelectedStyle, specsStyle), record.InterfaceID),
		}
		if r.verbose {
			row = append(row,
				paint(r.color, pick(selected, classSelectedStyle, classStyle), record.Class),
				paint(r.color, versionStyle, record.Version),
			)
		}
		t.AppendRow(row)
	}

	return t
}

func (r *ContractsRenderer) deployablesTable(title string, records []domain.TemplateRecord) table.Writer {
	t := newTable(title, "EVM CONTRACT ADDRESS")
	for _, record := range records {
		t.AppendRow(table.Row{
			paint(r.color, keyStyle, record.Key),
			paint(r.color, addrStyle, record.Address.Hex()),
		})
	}
	return t
}

func (r *ContractsRenderer) renderSuggestions(suggestions map[string][]string) {
	if len(suggestions) == 0 {
		return
	}

	filters := make([]string, 0, len(suggestions))
	for filter := range suggestions {
		filters = append(filters, filter)
	}
	sort.Strings(filters)

	fmt.Fprintln(r.out)
	for _, filter := range filters {
		message := fmt.Sprintf("No artifact matches %q", filter)
		if names := suggestions[filter]; len(names) > 0 {
			message += fmt.Sprintf(", did you mean %s?", strings.Join(names, ", "))
		}
		if r.color {
			fmt.Fprintln(r.out, FormatWarning(message))
		} else {
			fmt.Fprintf(r.out, "⚠️  %s\n", message)
		}
	}
}

func pick(selected bool, on, off *color.Color) *color.Color {
	if selected {
		return on
	}
	return off
}
