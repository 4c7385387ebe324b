package main

import (
	"math"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// RenderCache reuses the per-frame allocations of the terrain renderer:
// the color/intensity pixel grids, the output string builder, and the
// lipgloss styles keyed by fg/bg pair.
type RenderCache struct {
	colorPool     sync.Pool
	intensityPool sync.Pool
	builderPool   sync.Pool
	styleCache    map[string]lipgloss.Style
	styleMu       sync.RWMutex
}

func NewRenderCache() *RenderCache {
	return &RenderCache{
		colorPool: sync.Pool{
			New: func() interface{} {
				return make([][]lipgloss.Color, 0)
			},
		},
		intensityPool: sync.Pool{
			New: func() interface{} {
				return make([][]float64, 0)
			},
		},
		builderPool: sync.Pool{
			New: func() interface{} {
				return new(strings.Builder)
			},
		},
		styleCache: make(map[string]lipgloss.Style, 1024),
	}
}

// GetGrids returns cleared color and intensity grids of the requested size.
// Clearing here is what gives the renderer its blank surface every frame.
func (rc *RenderCache) GetGrids(height, width int) ([][]lipgloss.Color, [][]float64) {
	colorGrid := rc.colorPool.Get().([][]lipgloss.Color)
	intensityGrid := rc.intensityPool.Get().([][]float64)

	if len(colorGrid) < height {
		colorGrid = make([][]lipgloss.Color, height)
		intensityGrid = make([][]float64, height)
	}
	for y := 0; y < height; y++ {
		if len(colorGrid[y]) < width {
			colorGrid[y] = make([]lipgloss.Color, width)
			intensityGrid[y] = make([]float64, width)
		}
		for x := 0; x < width; x++ {
			colorGrid[y][x] = lipgloss.Color("")
			intensityGrid[y][x] = 0
		}
	}
	return colorGrid[:height], intensityGrid[:height]
}

func (rc *RenderCache) ReturnGrids(colorGrid [][]lipgloss.Color, intensityGrid [][]float64) {
	rc.colorPool.Put(colorGrid)
	rc.intensityPool.Put(intensityGrid)
}

func (rc *RenderCache) GetBuilder() *strings.Builder {
	sb := rc.builderPool.Get().(*strings.Builder)
	sb.Reset()
	return sb
}

func (rc *RenderCache) ReturnBuilder(sb *strings.Builder) {
	rc.builderPool.Put(sb)
}

// GetStyleFGBG returns a cached style for a half-block cell: foreground is
// the top pixel, background the bottom pixel.
func (rc *RenderCache) GetStyleFGBG(fg, bg lipgloss.Color) lipgloss.Style {
	key := string(fg) + "," + string(bg)
	rc.styleMu.RLock()
	style, ok := rc.styleCache[key]
	rc.styleMu.RUnlock()
	if ok {
		return style
	}

	rc.styleMu.Lock()
	defer rc.styleMu.Unlock()
	if style, ok = rc.styleCache[key]; ok {
		return style
	}
	style = lipgloss.NewStyle().Foreground(fg).Background(bg)
	rc.styleCache[key] = style
	return style
}

// ApplyGradient dims or brightens baseColor by intensity, shifting the
// hottest values toward white.
func (rc *RenderCache) ApplyGradient(baseColor lipgloss.Color, intensity float64) lipgloss.Color {
	r, g, b, ok := parseHex(string(baseColor))
	if !ok {
		return baseColor
	}

	brightness := 0.25 + math.Pow(intensity, 0.7)*0.75

	heat := 0.0
	if intensity > 0.85 {
		heat = (intensity - 0.85) / 0.15
	}

	rf := float64(r) * brightness
	gf := float64(g) * brightness
	bf := float64(b) * brightness

	rf = rf*(1-heat) + 255*heat
	gf = gf*(1-heat) + 255*heat
	bf = bf*(1-heat) + 255*heat

	return uint8ToHex(uint8(rf), uint8(gf), uint8(bf))
}

// BlendColors mixes c1 into c2 by ratio.
func (rc *RenderCache) BlendColors(c1, c2 lipgloss.Color, ratio float64) lipgloss.Color {
	r1, g1, b1, ok1 := parseHex(string(c1))
	r2, g2, b2, ok2 := parseHex(string(c2))
	if !ok1 {
		return c2
	}
	if !ok2 {
		return c1
	}

	r := uint8(float64(r1)*(1-ratio) + float64(r2)*ratio)
	g := uint8(float64(g1)*(1-ratio) + float64(g2)*ratio)
	b := uint8(float64(b1)*(1-ratio) + float64(b2)*ratio)

	return uint8ToHex(r, g, b)
}

func uint8ToHex(r, g, b uint8) lipgloss.Color {
	const hex = "0123456789ABCDEF"
	var res [7]byte
	res[0] = '#'
	res[1] = hex[r>>4]
	res[2] = hex[r&0x0F]
	res[3] = hex[g>>4]
	res[4] = hex[g&0x0F]
	res[5] = hex[b>>4]
	res[6] = hex[b&0x0F]
	return lipgloss.Color(string(res[:]))
}

func parseHex(hex string) (uint8, uint8, uint8, bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	return hexToUint8(hex[1], hex[2]), hexToUint8(hex[3], hex[4]), hexToUint8(hex[5], hex[6]), true
}

func hexToUint8(h, l byte) uint8 {
	return (unhex(h) << 4) | unhex(l)
}

func unhex(b byte) uint8 {
	switch {
	case '0' <= b && b <= '9':
		return b - '0'
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10
	case 'A' <= b && b <= 'F':
		return b - 'A' + 10
	}
	return 0
}
