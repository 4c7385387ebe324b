package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/stat"
)

// TerrainStats summarizes one generated terrain for the header panel.
type TerrainStats struct {
	Points    int
	FlatSpans int     // adjacent vertex pairs sharing the same y (landing zones)
	SpanX     float64 // horizontal extent of the profile
	MinY      float64
	MaxY      float64
	MeanY     float64
	StdDevY   float64
}

// SummarizeTerrain computes the display statistics for t.
func SummarizeTerrain(t Terrain) TerrainStats {
	s := TerrainStats{Points: len(t)}
	if len(t) == 0 {
		return s
	}

	ys := make([]float64, len(t))
	s.MinY = t[0].Y
	s.MaxY = t[0].Y
	for i, c := range t {
		ys[i] = c.Y
		s.MinY = math.Min(s.MinY, c.Y)
		s.MaxY = math.Max(s.MaxY, c.Y)
	}
	s.SpanX = t[len(t)-1].X - t[0].X
	s.MeanY = stat.Mean(ys, nil)
	if len(ys) > 1 {
		s.StdDevY = stat.StdDev(ys, nil)
	}

	for i := 1; i < len(t); i++ {
		if t[i].Y == t[i-1].Y && t[i].X > t[i-1].X {
			s.FlatSpans++
		}
	}
	return s
}

// RenderStats creates the top header section with the current terrain summary.
func RenderStats(stats TerrainStats, seed int64, width int) string {
	var output strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF00FF")).
		Background(lipgloss.Color("#1A0033")).
		Width(width).
		Align(lipgloss.Center)

	output.WriteString(titleStyle.Render("▲ LANDER TERRAIN ▲"))
	output.WriteString("\n")

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF")).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))

	output.WriteString(labelStyle.Render("Seed: "))
	output.WriteString(valueStyle.Render(fmt.Sprintf("%d", seed)))
	output.WriteString(labelStyle.Render("   Points: "))
	output.WriteString(valueStyle.Render(fmt.Sprintf("%d", stats.Points)))
	output.WriteString(labelStyle.Render("   Flats: "))
	output.WriteString(valueStyle.Render(fmt.Sprintf("%d", stats.FlatSpans)))
	output.WriteString("\n")

	output.WriteString(labelStyle.Render("Elevation: "))
	output.WriteString(valueStyle.Render(fmt.Sprintf(
		"min %.0f  max %.0f  mean %.0f  σ %.1f",
		stats.MinY, stats.MaxY, stats.MeanY, stats.StdDevY)))
	output.WriteString("\n")

	separatorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FF00FF"))
	if width > 2 {
		output.WriteString(separatorStyle.Render(strings.Repeat("═", width-2)))
	}
	output.WriteString("\n")

	return output.String()
}
