package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"chroma/internal/color"
	"chroma/internal/harmony"
	"chroma/internal/palette"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ColorInfo is the JSON shape returned for every colour.
type ColorInfo struct {
	Hex       string    `json:"hex" yaml:"hex"`
	HSL       color.HSL `json:"hsl" yaml:"hsl"`
	RGB       color.RGB `json:"rgb" yaml:"rgb"`
	TextColor string    `json:"textColor" yaml:"textColor"`
	Luminance float64   `json:"luminance" yaml:"luminance"`
}

// NewColorInfo describes c.
func NewColorInfo(c color.HSL) ColorInfo {
	rgb := c.RGB()
	return ColorInfo{
		Hex:       rgb.Hex(),
		HSL:       c,
		RGB:       rgb,
		TextColor: c.TextColor(),
		Luminance: color.Luminance(rgb.R, rgb.G, rgb.B),
	}
}

// NewHexColorInfo describes a parsed hex colour. The exact input channels
// are reported rather than the HSL round trip.
func NewHexColorInfo(rgb color.RGB) ColorInfo {
	info := NewColorInfo(rgb.HSL())
	info.RGB = rgb
	info.Hex = rgb.Hex()
	return info
}

// PaletteResult is returned by generate_palette.
type PaletteResult struct {
	Scheme  harmony.Scheme `json:"scheme" yaml:"scheme"`
	Harmony string         `json:"harmony" yaml:"harmony"`
	Colors  []ColorInfo    `json:"colors" yaml:"colors"`
}

// NewPaletteResult describes colors generated under scheme.
func NewPaletteResult(scheme harmony.Scheme, colors []color.HSL) PaletteResult {
	infos := make([]ColorInfo, len(colors))
	for i, c := range colors {
		infos[i] = NewColorInfo(c)
	}
	return PaletteResult{
		Scheme:  scheme,
		Harmony: string(harmony.Detect(colors)),
		Colors:  infos,
	}
}

// PaletteTools implements the MCP tool handlers.
type PaletteTools struct {
	// gen wraps a *rand.Rand, which is not safe for concurrent use.
	mu  sync.Mutex
	gen *palette.Generator
}

// NewPaletteTools creates the tool handlers around gen.
func NewPaletteTools(gen *palette.Generator) *PaletteTools {
	return &PaletteTools{gen: gen}
}

func schemeEnum() []string {
	all := harmony.Schemes()
	out := make([]string, len(all))
	for i, s := range all {
		out[i] = string(s)
	}
	return out
}

// GetTools returns the tool definitions.
func (pt *PaletteTools) GetTools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool("generate_palette",
			mcp.WithDescription("Generate a five-colour palette using a colour-harmony scheme"),
			mcp.WithString("scheme",
				mcp.Description("Harmony scheme (default random)"),
				mcp.Enum(schemeEnum()...),
			),
			mcp.WithString("base",
				mcp.Description("Optional base colour as #rgb or #rrggbb; a random base is used when omitted"),
			),
		),
		mcp.NewTool("detect_harmony",
			mcp.WithDescription("Classify five colours as monochromatic, analogous or custom-mixed"),
			mcp.WithString("colors",
				mcp.Required(),
				mcp.Description("Five hex colours separated by commas or spaces"),
			),
		),
		mcp.NewTool("convert_color",
			mcp.WithDescription("Convert a hex colour to RGB and HSL and report its legible text colour"),
			mcp.WithString("hex",
				mcp.Required(),
				mcp.Description("Colour as #rgb or #rrggbb"),
			),
		),
		mcp.NewTool("text_color",
			mcp.WithDescription("Choose black or white text for an HSL background"),
			mcp.WithNumber("h", mcp.Required(), mcp.Description("Hue in degrees")),
			mcp.WithNumber("s", mcp.Required(), mcp.Description("Saturation percentage 0-100")),
			mcp.WithNumber("l", mcp.Required(), mcp.Description("Lightness percentage 0-100")),
		),
	}
}

// ServerTools pairs every tool with its handler.
func (pt *PaletteTools) ServerTools() []server.ServerTool {
	handlers := map[string]server.ToolHandlerFunc{
		"generate_palette": pt.HandleGeneratePalette,
		"detect_harmony":   pt.HandleDetectHarmony,
		"convert_color":    pt.HandleConvertColor,
		"text_color":       pt.HandleTextColor,
	}

	var out []server.ServerTool
	for _, tool := range pt.GetTools() {
		out = append(out, server.ServerTool{Tool: tool, Handler: handlers[tool.Name]})
	}
	return out
}

// HandleGeneratePalette handles generate_palette.
func (pt *PaletteTools) HandleGeneratePalette(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	scheme := harmony.SchemeRandom
	if raw := stringArg(args, "scheme"); raw != "" {
		s, err := harmony.ParseScheme(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		scheme = s
	}

	var colors []color.HSL
	pt.mu.Lock()
	if base := stringArg(args, "base"); base != "" {
		rgb, ok := color.ParseHex(base)
		if !ok {
			pt.mu.Unlock()
			return mcp.NewToolResultError(fmt.Sprintf("invalid base colour %q", base)), nil
		}
		colors = pt.gen.FromBase(rgb.HSL(), scheme)
	} else {
		colors = pt.gen.Colors(scheme)
	}
	pt.mu.Unlock()

	return jsonResult(NewPaletteResult(scheme, colors))
}

// HandleDetectHarmony handles detect_harmony.
func (pt *PaletteTools) HandleDetectHarmony(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("colors")
	if err != nil {
		return mcp.NewToolResultError("colors parameter is required"), nil
	}

	hexes := splitHexList(raw)
	if len(hexes) != harmony.PaletteSize {
		return mcp.NewToolResultError(fmt.Sprintf("expected %d colours, got %d", harmony.PaletteSize, len(hexes))), nil
	}

	colors := make([]color.HSL, len(hexes))
	for i, h := range hexes {
		rgb, ok := color.ParseHex(h)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid colour %q", h)), nil
		}
		colors[i] = rgb.HSL()
	}

	label := harmony.Detect(colors)
	return jsonResult(map[string]string{
		"harmony": string(label),
		"display": label.String(),
	})
}

// HandleConvertColor handles convert_color.
func (pt *PaletteTools) HandleConvertColor(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hex, err := req.RequireString("hex")
	if err != nil {
		return mcp.NewToolResultError("hex parameter is required"), nil
	}
	rgb, ok := color.ParseHex(hex)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("invalid colour %q", hex)), nil
	}

	return jsonResult(NewHexColorInfo(rgb))
}

// HandleTextColor handles text_color.
func (pt *PaletteTools) HandleTextColor(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	var hsl [3]float64
	for i, name := range []string{"h", "s", "l"} {
		v, ok := numberArg(args, name)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("%s parameter is required and must be a number", name)), nil
		}
		hsl[i] = v
	}

	c := color.HSL{H: color.NormalizeHue(hsl[0]), S: color.Clamp(hsl[1]), L: color.Clamp(hsl[2])}
	return jsonResult(map[string]string{
		"background": c.Hex(),
		"textColor":  c.TextColor(),
	})
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func stringArg(args map[string]any, name string) string {
	s, _ := args[name].(string)
	return strings.TrimSpace(s)
}

func numberArg(args map[string]any, name string) (float64, bool) {
	switch v := args[name].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// splitHexList accepts colours separated by commas and/or whitespace.
func splitHexList(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
