package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"chroma/internal/color"
	"chroma/internal/harmony"
	"chroma/internal/mcpserver"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates a --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	case "":
		return OutputFormatTable, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want table, json or yaml)", s)
	}
}

// Printer writes results in one OutputFormat.
type Printer struct {
	w      io.Writer
	format OutputFormat
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer, format OutputFormat) *Printer {
	if format == "" {
		format = OutputFormatTable
	}
	return &Printer{w: w, format: format}
}

// Palette prints a generated palette.
func (p *Printer) Palette(res mcpserver.PaletteResult) error {
	switch p.format {
	case OutputFormatTable:
		t := p.newTable()
		t.SetTitle("Scheme: %s", res.Scheme.Title())
		t.AppendHeader(headerRow("#", "SWATCH", "HEX", "RGB", "HSL", "TEXT"))
		for i, c := range res.Colors {
			t.AppendRow(table.Row{i + 1, swatchCell(c.HSL), c.Hex, c.RGB.String(), c.HSL.String(), c.TextColor})
		}
		t.AppendFooter(table.Row{"", "", "", "", "Detected", harmony.Label(res.Harmony).String()})
		t.Render()
		return nil
	default:
		return p.encode(res)
	}
}

// Color prints one colour description.
func (p *Printer) Color(info mcpserver.ColorInfo) error {
	switch p.format {
	case OutputFormatTable:
		t := p.newTable()
		t.AppendHeader(headerRow("PROPERTY", "VALUE"))
		t.AppendRows([]table.Row{
			{propertyCell("swatch"), swatchCell(info.HSL)},
			{propertyCell("hex"), info.Hex},
			{propertyCell("rgb"), info.RGB.String()},
			{propertyCell("hsl"), info.HSL.String()},
			{propertyCell("textColor"), info.TextColor},
			{propertyCell("luminance"), fmt.Sprintf("%.4f", info.Luminance)},
		})
		t.Render()
		return nil
	default:
		return p.encode(info)
	}
}

// Harmony prints a detected harmony label.
func (p *Printer) Harmony(label harmony.Label) error {
	switch p.format {
	case OutputFormatTable:
		_, err := fmt.Fprintf(p.w, "%s %s\n", text.FgHiBlue.Sprint("Detected:"), label.String())
		return err
	default:
		return p.encode(map[string]string{
			"harmony": string(label),
			"display": label.String(),
		})
	}
}

// Raw prints the JSON text returned by a tool call. Palette results get
// the palette table; other objects a property table.
func (p *Printer) Raw(jsonText string) error {
	var data interface{}
	if err := json.Unmarshal([]byte(jsonText), &data); err != nil {
		_, werr := fmt.Fprintln(p.w, jsonText)
		return werr
	}

	switch p.format {
	case OutputFormatJSON:
		_, err := fmt.Fprintln(p.w, jsonText)
		return err
	case OutputFormatYAML:
		return p.encode(data)
	}

	obj, ok := data.(map[string]interface{})
	if !ok {
		_, err := fmt.Fprintln(p.w, jsonText)
		return err
	}
	if _, hasColors := obj["colors"]; hasColors {
		var res mcpserver.PaletteResult
		if err := json.Unmarshal([]byte(jsonText), &res); err == nil {
			return p.Palette(res)
		}
	}
	return p.keyValueTable(obj)
}

func (p *Printer) keyValueTable(data map[string]interface{}) error {
	t := p.newTable()
	t.AppendHeader(headerRow("PROPERTY", "VALUE"))

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		t.AppendRow(table.Row{propertyCell(key), formatCellValue(data[key])})
	}
	t.Render()
	return nil
}

func (p *Printer) encode(v interface{}) error {
	switch p.format {
	case OutputFormatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case OutputFormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to convert to YAML: %w", err)
		}
		_, err = p.w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", p.format)
	}
}

func (p *Printer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(p.w)
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	return t
}

func headerRow(cols ...string) table.Row {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = text.FgHiCyan.Sprint(c)
	}
	return row
}

func propertyCell(name string) string {
	return text.FgYellow.Sprint(name)
}

// swatchCell paints a short block in c.
func swatchCell(c color.HSL) string {
	return color.Swatch(c).Render("      ")
}

func formatCellValue(value interface{}) string {
	if value == nil {
		return text.FgHiBlack.Sprint("-")
	}
	switch v := value.(type) {
	case map[string]interface{}, []interface{}:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	default:
		return fmt.Sprintf("%v", v)
	}
}
