package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"chroma/internal/color"
	"chroma/internal/harmony"
	"chroma/internal/mcpserver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testPalette() mcpserver.PaletteResult {
	colors := []color.HSL{
		{H: 0, S: 100, L: 50},
		{H: 180, S: 100, L: 50},
		{H: 0, S: 100, L: 70},
		{H: 180, S: 100, L: 30},
		{H: 0, S: 80, L: 90},
	}
	return mcpserver.NewPaletteResult(harmony.SchemeComplementary, colors)
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{in: "", want: OutputFormatTable},
		{in: "table", want: OutputFormatTable},
		{in: "JSON", want: OutputFormatJSON},
		{in: " yaml ", want: OutputFormatYAML},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrinterPaletteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, OutputFormatTable).Palette(testPalette()))

	out := buf.String()
	assert.Contains(t, out, "Scheme: Complementary")
	assert.Contains(t, out, "#ff0000")
	assert.Contains(t, out, "#00ffff")
	assert.Contains(t, out, "rgb(255, 0, 0)")
	assert.Contains(t, out, "hsl(0, 100%, 50%)")
	assert.Contains(t, out, "Custom / Mixed")
}

func TestPrinterPaletteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, OutputFormatJSON).Palette(testPalette()))

	var got mcpserver.PaletteResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, testPalette(), got)
}

func TestPrinterPaletteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, OutputFormatYAML).Palette(testPalette()))

	var got map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "complementary", got["scheme"])
	assert.Len(t, got["colors"], 5)
	assert.Contains(t, buf.String(), "textColor:")
}

func TestPrinterColor(t *testing.T) {
	info := mcpserver.NewColorInfo(color.HSL{H: 210, S: 80.4, L: 50})

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, OutputFormatTable).Color(info))
	out := buf.String()
	assert.Contains(t, out, "#1980e6")
	assert.Contains(t, out, "textColor")
	assert.Contains(t, out, "#000000")

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, OutputFormatJSON).Color(info))
	assert.Contains(t, buf.String(), `"hex": "#1980e6"`)
}

func TestPrinterHarmony(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, OutputFormatTable).Harmony(harmony.LabelAnalogous))
	assert.Contains(t, buf.String(), "Analogous")

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, OutputFormatJSON).Harmony(harmony.LabelCustomMixed))
	var got map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "custom-mixed", got["harmony"])
	assert.Equal(t, "Custom / Mixed", got["display"])
}

func TestPrinterRaw(t *testing.T) {
	t.Run("palette json becomes a palette table", func(t *testing.T) {
		data, err := json.Marshal(testPalette())
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, NewPrinter(&buf, OutputFormatTable).Raw(string(data)))
		assert.Contains(t, buf.String(), "Scheme: Complementary")
	})

	t.Run("object becomes a property table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewPrinter(&buf, OutputFormatTable).Raw(`{"textColor":"#ffffff","background":"#000080"}`))
		assert.Contains(t, buf.String(), "background")
		assert.Contains(t, buf.String(), "#000080")
	})

	t.Run("json passes through", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewPrinter(&buf, OutputFormatJSON).Raw(`{"a":1}`))
		assert.Equal(t, "{\"a\":1}\n", buf.String())
	})

	t.Run("non-json text is printed as is", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewPrinter(&buf, OutputFormatTable).Raw("plain"))
		assert.Equal(t, "plain\n", buf.String())
	})
}

func TestParseToolArgs(t *testing.T) {
	args, err := ParseToolArgs([]string{"hex=#ff0000", "h=210", "s=80.5", "colors=#fff,#000"})
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", args["hex"])
	assert.Equal(t, 210.0, args["h"])
	assert.Equal(t, 80.5, args["s"])
	assert.Equal(t, "#fff,#000", args["colors"])

	_, err = ParseToolArgs([]string{"novalue"})
	assert.Error(t, err)
	_, err = ParseToolArgs([]string{"=x"})
	assert.Error(t, err)
}
