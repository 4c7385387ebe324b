package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestRender_DegenerateInputs(t *testing.T) {
	tr := NewTerrainRenderer()
	require.Equal(t, "", tr.Render(nil, 80, 24))
	require.Equal(t, "", tr.Render(Terrain{{X: 0, Y: 0}}, 80, 24))
	require.Equal(t, "", tr.Render(Terrain{{X: 0, Y: 0}, {X: 100, Y: 50}}, 0, 24))
}

func TestRender_RowCountMatchesHeight(t *testing.T) {
	tr := NewTerrainRenderer()
	terrain := Terrain{
		{X: 0, Y: 300},
		{X: 400, Y: 100},
		{X: 800, Y: 500},
	}
	out := tr.Render(terrain, 60, 20)
	require.NotEmpty(t, out)
	require.Equal(t, 20, len(strings.Split(out, "\n")))
}

func TestRender_DrawsTheProfile(t *testing.T) {
	tr := NewTerrainRenderer()
	terrain := Terrain{
		{X: 0, Y: 300},
		{X: 800, Y: 300},
	}
	out := tr.Render(terrain, 40, 10)
	if !strings.Contains(out, "▀") {
		t.Fatal("expected half-block pixels in rendered output")
	}
}

// Consecutive renders must not bleed into each other; the pooled grids are
// cleared on every call.
func TestRender_ClearsBetweenFrames(t *testing.T) {
	tr := NewTerrainRenderer()
	top := Terrain{{X: 0, Y: 50}, {X: 800, Y: 50}}
	bottom := Terrain{{X: 0, Y: 550}, {X: 800, Y: 550}}

	tr.Render(top, 40, 10)
	out := tr.Render(bottom, 40, 10)

	rows := strings.Split(out, "\n")
	require.Equal(t, 10, len(rows))
	// The first row maps to the top of the surface and must be blank now.
	require.Equal(t, "", strings.TrimSpace(rows[0]))
}

func TestHexColorRoundTrip(t *testing.T) {
	cases := []struct{ r, g, b uint8 }{
		{0, 0, 0},
		{255, 255, 255},
		{0x3D, 0xFF, 0x4E},
		{0x12, 0xAB, 0xCD},
	}
	for _, tc := range cases {
		c := uint8ToHex(tc.r, tc.g, tc.b)
		r, g, b, ok := parseHex(string(c))
		require.True(t, ok)
		require.Equal(t, tc.r, r)
		require.Equal(t, tc.g, g)
		require.Equal(t, tc.b, b)
	}
}

func TestParseHex_RejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "#FFF", "123456", "1234567", "#FF00AA0"} {
		if _, _, _, ok := parseHex(s); ok {
			t.Errorf("parseHex(%q) accepted malformed input", s)
		}
	}
}

func TestBlendColors_Endpoints(t *testing.T) {
	rc := NewRenderCache()
	a := lipgloss.Color("#FF0000")
	b := lipgloss.Color("#0000FF")
	require.Equal(t, a, rc.BlendColors(a, b, 0))
	require.Equal(t, b, rc.BlendColors(a, b, 1))
}
