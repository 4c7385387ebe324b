package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Virtual drawing surface the generator's screen-space coordinates target.
// The renderer rescales this surface onto whatever cell grid the terminal
// provides.
const (
	surfaceWidth  = 800.0
	surfaceHeight = 600.0
)

var originalScheme = terrainScheme{
	high: lipgloss.Color("#E8E8FF"), // sunlit peaks
	low:  lipgloss.Color("#4A4A66"), // valley shadow
	zone: lipgloss.Color("#3DFF4E"), // landing pad green
}

var retroScheme = terrainScheme{
	high: lipgloss.Color("#FF00CC"),
	low:  lipgloss.Color("#3300FF"),
	zone: lipgloss.Color("#00FFFF"),
}

type terrainScheme struct {
	high lipgloss.Color
	low  lipgloss.Color
	zone lipgloss.Color
}

// TerrainRenderer draws a terrain polyline onto a half-block character
// grid, two pixels per terminal row. The surface is cleared on every call.
type TerrainRenderer struct {
	scheme terrainScheme
	cache  *RenderCache
}

func NewTerrainRenderer() *TerrainRenderer {
	return &TerrainRenderer{
		scheme: originalScheme,
		cache:  NewRenderCache(),
	}
}

func (tr *TerrainRenderer) SetColorScheme(scheme string) {
	switch scheme {
	case "retro":
		tr.scheme = retroScheme
	default:
		tr.scheme = originalScheme
	}
}

// Render maps the terrain from the 800x600 virtual surface onto a
// width x height cell view and returns the styled string.
func (tr *TerrainRenderer) Render(terrain Terrain, width, height int) string {
	if width <= 0 || height <= 0 || len(terrain) < 2 {
		return ""
	}

	// Two vertical pixels per terminal row.
	renderHeight := height * 2

	colorGrid, intensityGrid := tr.cache.GetGrids(renderHeight, width)
	defer tr.cache.ReturnGrids(colorGrid, intensityGrid)

	for i := 1; i < len(terrain); i++ {
		prev, cur := terrain[i-1], terrain[i]
		flat := cur.Y == prev.Y && cur.X > prev.X
		tr.drawSegment(colorGrid, intensityGrid, prev, cur, width, renderHeight, flat)
	}

	return tr.gridToStringHalfBlock(colorGrid, intensityGrid, width, height)
}

// drawSegment rasterizes one polyline edge, stepping densely enough that
// no pixel gap opens between consecutive plots.
func (tr *TerrainRenderer) drawSegment(
	colorGrid [][]lipgloss.Color,
	intensityGrid [][]float64,
	from, to Coordinate,
	width, renderHeight int,
	flat bool,
) {
	x0, y0 := tr.toPixel(from, width, renderHeight)
	x1, y1 := tr.toPixel(to, width, renderHeight)

	steps := int(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))) + 1
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		px := int(x0 + (x1-x0)*t)
		py := int(y0 + (y1-y0)*t)
		if px < 0 || px >= width || py < 0 || py >= renderHeight {
			continue
		}

		color := tr.pixelColor(py, renderHeight, flat)
		tr.plot(colorGrid, intensityGrid, px, py, color, 1.0)

		// Soft glow one pixel below gives the profile some body.
		if py+1 < renderHeight {
			tr.plot(colorGrid, intensityGrid, px, py+1, color, 0.35)
		}
	}
}

func (tr *TerrainRenderer) plot(
	colorGrid [][]lipgloss.Color,
	intensityGrid [][]float64,
	x, y int,
	color lipgloss.Color,
	intensity float64,
) {
	current := intensityGrid[y][x]
	if intensity <= current {
		return
	}
	colorGrid[y][x] = tr.cache.ApplyGradient(color, intensity)
	intensityGrid[y][x] = intensity
}

func (tr *TerrainRenderer) toPixel(c Coordinate, width, renderHeight int) (float64, float64) {
	return c.X / surfaceWidth * float64(width), c.Y / surfaceHeight * float64(renderHeight)
}

// pixelColor grades the line from the low color at the surface bottom to
// the high color at the top; landing zones override with the zone color.
func (tr *TerrainRenderer) pixelColor(py, renderHeight int, flat bool) lipgloss.Color {
	if flat {
		return tr.scheme.zone
	}
	altitude := 1.0 - float64(py)/float64(renderHeight)
	return tr.cache.BlendColors(tr.scheme.low, tr.scheme.high, altitude)
}

func (tr *TerrainRenderer) gridToStringHalfBlock(
	colorGrid [][]lipgloss.Color,
	intensityGrid [][]float64,
	width, height int,
) string {
	sb := tr.cache.GetBuilder()
	defer tr.cache.ReturnBuilder(sb)

	for y := 0; y < height*2; y += 2 {
		x := 0
		for x < width {
			if intensityGrid[y][x] < 0.05 && (y+1 >= height*2 || intensityGrid[y+1][x] < 0.05) {
				sb.WriteString(" ")
				x++
				continue
			}

			// Group runs with the same fg/bg so each style renders once.
			start := x
			fg := colorGrid[y][x]
			var bg lipgloss.Color
			if y+1 < height*2 {
				bg = colorGrid[y+1][x]
			}

			x++
			for x < width {
				nextFG := colorGrid[y][x]
				var nextBG lipgloss.Color
				if y+1 < height*2 {
					nextBG = colorGrid[y+1][x]
				}
				if nextFG != fg || nextBG != bg {
					break
				}
				x++
			}

			// Upper half block: foreground paints the top pixel,
			// background the bottom one.
			style := tr.cache.GetStyleFGBG(fg, bg)
			sb.WriteString(style.Render(strings.Repeat("▀", x-start)))
		}
		if y < (height*2)-2 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
