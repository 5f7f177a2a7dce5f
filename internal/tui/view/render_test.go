package view

import (
	"strings"
	"testing"

	"chroma/internal/color"
	"chroma/internal/config"
	"chroma/internal/harmony"
	"chroma/internal/palette"
	"chroma/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func newTestModel(width, height int) *model.Model {
	m := model.InitialModel(config.GetDefaultConfig(), palette.NewSeededGenerator(3), false, nil)
	m.Width = width
	m.Height = height
	return m
}

func TestRenderWaitsForWindowSize(t *testing.T) {
	m := newTestModel(0, 0)
	assert.Contains(t, Render(m), "waiting for window size")
}

func TestRenderQuitting(t *testing.T) {
	m := newTestModel(80, 24)
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Bye!"
	assert.Contains(t, Render(m), "Bye!")
}

func TestRenderDashboard(t *testing.T) {
	m := newTestModel(120, 30)
	m.Palette = m.Palette.SetHex(0, "#1980e6")
	out := Render(m)

	assert.Contains(t, out, "chroma")
	assert.Contains(t, out, "Scheme: Random")
	assert.Contains(t, out, "Detected: "+m.Harmony().String())
	assert.Contains(t, out, "#1980e6")
	assert.Contains(t, out, "1/5 locked")
	for _, hex := range m.Palette.Hexes() {
		assert.Contains(t, out, hex)
	}
}

func TestRenderDashboardFitsWidth(t *testing.T) {
	m := newTestModel(100, 30)
	out := Render(m)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 100)
	}
}

func TestRenderHexInput(t *testing.T) {
	m := newTestModel(100, 30)
	m.CurrentAppMode = model.ModeHexInput
	m.HexInput.SetValue("#abc")
	out := Render(m)
	assert.Contains(t, out, "#abc")
	assert.Contains(t, out, "esc cancel")
}

func TestRenderStatusMessage(t *testing.T) {
	m := newTestModel(120, 30)
	m.Toast("Color #ff0000 copied!", model.StatusBarSuccess)
	assert.Contains(t, Render(m), "Color #ff0000 copied!")
}

func TestRenderHelpOverlay(t *testing.T) {
	m := newTestModel(120, 40)
	m.CurrentAppMode = model.ModeHelpOverlay
	out := Render(m)
	assert.Contains(t, out, "KEYBOARD SHORTCUTS")
	assert.Contains(t, out, "regenerate")
	assert.Contains(t, out, "copy palette")
}

func TestRenderLogOverlay(t *testing.T) {
	m := newTestModel(100, 20)
	m.CurrentAppMode = model.ModeLogOverlay
	m.LogViewport.Width, m.LogViewport.Height = LogOverlaySize(m.Width, m.Height)
	m.LogViewport.SetContent(PrepareLogContent([]string{"12:00:00 [INFO] [TUI] started"}, m.LogViewport.Width))

	out := Render(m)
	assert.Contains(t, out, "Activity Log")
	assert.Contains(t, out, "started")
}

func TestLogOverlaySize(t *testing.T) {
	w, h := LogOverlaySize(100, 20)
	assert.Equal(t, 100-OverlayStyle.GetHorizontalFrameSize(), w)
	assert.Equal(t, 20-OverlayStyle.GetVerticalFrameSize()-1, h)

	w, h = LogOverlaySize(1, 1)
	assert.Equal(t, 0, w)
	assert.Equal(t, 0, h)
}

func TestPrepareLogContentKeepsLines(t *testing.T) {
	lines := []string{"[ERROR] a", "[WARN] b", "[DEBUG] c", "[INFO] d"}
	out := PrepareLogContent(lines, 80)
	assert.Len(t, strings.Split(out, "\n"), len(lines))
	for _, l := range lines {
		assert.Contains(t, out, l)
	}
}

func TestHarmonyBadge(t *testing.T) {
	assert.Contains(t, renderHarmonyBadge(harmony.LabelMonochromatic), "Detected: Monochromatic")
	assert.Contains(t, renderHarmonyBadge(harmony.LabelAnalogous), "Detected: Analogous")
	assert.Contains(t, renderHarmonyBadge(harmony.LabelCustomMixed), "Detected: Custom / Mixed")
}

func TestSwatchSize(t *testing.T) {
	w, h := swatchSize(100, 10)
	assert.Equal(t, 100/palette.Size-FocusedBorderStyle.GetHorizontalFrameSize(), w)
	assert.Equal(t, 10-FocusedBorderStyle.GetVerticalFrameSize(), h)

	w, h = swatchSize(10, 2)
	assert.Equal(t, minSwatchWidth, w)
	assert.Equal(t, minSwatchHeight, h)

	_, h = swatchSize(100, 100)
	assert.Equal(t, maxSwatchHeight, h)
}

func TestRenderSwatchShowsLockAndColour(t *testing.T) {
	slot := palette.Slot{Color: color.HSL{H: 0, S: 100, L: 50}, Locked: true}
	out := renderSwatch(slot, 2, true, 20, 6)
	assert.Contains(t, out, IconLocked)
	assert.Contains(t, out, "3")
	assert.Contains(t, out, "#ff0000")
	assert.Contains(t, out, "hsl(0, 100%, 50%)")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hsl(…", Truncate("hsl(210, 80%, 50%)", 5))
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "", Truncate("anything", 0))
}

func TestSafeIcon(t *testing.T) {
	assert.Equal(t, IconLocked+"  ", SafeIcon(IconLocked))
}
