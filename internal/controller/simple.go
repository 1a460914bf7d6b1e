package controller

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/animfind/internal/model"
)

// SimpleUI implements UI by writing to the command's output stream.
type SimpleUI struct {
	cmd       *cobra.Command
	format    Format
	showAsset bool
}

// SimpleUIOption configures a SimpleUI.
type SimpleUIOption func(*SimpleUI)

// WithFormat selects table, JSON or YAML output.
func WithFormat(format Format) SimpleUIOption {
	return func(s *SimpleUI) {
		if format != "" {
			s.format = format
		}
	}
}

// WithAssetColumn adds the asset path column to result tables.
func WithAssetColumn(show bool) SimpleUIOption {
	return func(s *SimpleUI) {
		s.showAsset = show
	}
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, opts ...SimpleUIOption) *SimpleUI {
	s := &SimpleUI{cmd: cmd, format: FormatTable}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {

}

// Wait returns immediately; there is nothing interactive to wait for.
func (s *SimpleUI) Wait() error {
	return nil
}

// DisplayProgress is a no-op; plain output only carries results.
func (s *SimpleUI) DisplayProgress(_ m.Progress) {}

// DisplayResults prints the search outcome in the configured format.
func (s *SimpleUI) DisplayResults(outcome m.SearchOutcome) error {
	switch s.format {
	case FormatJSON:
		return s.writeJSON(outcome)
	case FormatYAML:
		return s.writeYAML(outcome)
	}

	if outcome.Status == m.StatusMissingInput || outcome.Matches() == 0 {
		s.printf("%s\n", outcome.StatusText())
		return nil
	}

	header := []string{"Animation Clip", "Path", "Property"}
	if s.showAsset {
		header = append(header, "Asset")
	}

	rows := make([][]string, 0, len(outcome.Results))

	for _, r := range outcome.Results {
		row := []string{r.ClipName, r.BindingPath, r.PropertyName}
		if s.showAsset {
			row = append(row, string(r.AssetPath))
		}

		rows = append(rows, row)
	}

	footer := make([]string, len(header))
	footer[0] = outcome.StatusText()

	s.renderTable(header, rows, footer)

	return nil
}

// DisplayClips prints the enumerated clips or the enumeration error.
func (s *SimpleUI) DisplayClips(clips []m.ClipSummary, err error) error {
	if err != nil {
		s.printf("clip listing error: %v\n", err)
		return err
	}

	switch s.format {
	case FormatJSON:
		return s.writeJSON(clips)
	case FormatYAML:
		return s.writeYAML(clips)
	}

	rows := make([][]string, 0, len(clips))
	total := 0

	for _, clip := range clips {
		rows = append(rows, []string{clip.Name, fmt.Sprintf("%d", clip.Bindings), string(clip.AssetPath)})
		total += clip.Bindings
	}

	s.renderTable(
		[]string{"Animation Clip", "Bindings", "Asset"},
		rows,
		[]string{fmt.Sprintf("Total Clips %d", len(clips)), fmt.Sprintf("%d", total), ""},
	)

	return nil
}

// DisplayPresets prints the property presets.
func (s *SimpleUI) DisplayPresets(presets []string) error {
	switch s.format {
	case FormatJSON:
		return s.writeJSON(presets)
	case FormatYAML:
		return s.writeYAML(presets)
	}

	for _, p := range presets {
		s.printf("%s\n", p)
	}

	return nil
}

func (s *SimpleUI) renderTable(header []string, rows [][]string, footer []string) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows)

	if footer != nil {
		table.SetFooter(footer)
	}

	table.Render()
	s.printf("\n%s", tableBuffer.String())
}

func (s *SimpleUI) writeJSON(v any) error {
	enc := json.NewEncoder(s.cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

func (s *SimpleUI) writeYAML(v any) error {
	enc := yaml.NewEncoder(s.cmd.OutOrStdout())
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
